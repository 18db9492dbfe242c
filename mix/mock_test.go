// SPDX-License-Identifier: EPL-2.0

package mix

import "encoding/binary"

// Test helpers local to the package. These intentionally mirror
// internal/audiotest, which cannot be imported here without a cycle.

func pcm16Payload(samples []int16) []byte {
	out := make([]byte, len(samples)*2)
	for i, s := range samples {
		binary.LittleEndian.PutUint16(out[i*2:], uint16(s))
	}
	return out
}

func constantPCM16(frames, channels int, value int16) []byte {
	samples := make([]int16, frames*channels)
	for i := range samples {
		samples[i] = value
	}
	return pcm16Payload(samples)
}

func rampPCM16(frames, channels int, start, step int16) []byte {
	samples := make([]int16, frames*channels)
	for f := 0; f < frames; f++ {
		v := start + int16(f)*step
		for c := 0; c < channels; c++ {
			samples[f*channels+c] = v
		}
	}
	return pcm16Payload(samples)
}

// pcm16Decoder is a minimal in-package stand-in for the decode
// package's 16-bit PCM decoder.
type pcm16Decoder struct {
	channels int
}

func (d pcm16Decoder) Decode(data []byte, frameOffset int, dst []int16) {
	avail := len(data)/(2*d.channels) - frameOffset
	if avail < 0 {
		avail = 0
	}
	n := len(dst) / d.channels
	if n > avail {
		n = avail
	}
	for i := 0; i < n*d.channels; i++ {
		dst[i] = int16(binary.LittleEndian.Uint16(data[(frameOffset*d.channels)*2+i*2:]))
	}
	for i := n * d.channels; i < len(dst); i++ {
		dst[i] = 0
	}
}

type voiceRecorder struct {
	bufferStarts []any
	bufferEnds   []any
	loopEnds     []any
	streamEnds   int
	passStarts   []int
	passEnds     int
}

func (r *voiceRecorder) OnBufferStart(ctx any) { r.bufferStarts = append(r.bufferStarts, ctx) }
func (r *voiceRecorder) OnBufferEnd(ctx any)   { r.bufferEnds = append(r.bufferEnds, ctx) }
func (r *voiceRecorder) OnLoopEnd(ctx any)     { r.loopEnds = append(r.loopEnds, ctx) }
func (r *voiceRecorder) OnStreamEnd()          { r.streamEnds++ }
func (r *voiceRecorder) OnVoiceProcessingPassStart(bytes int) {
	r.passStarts = append(r.passStarts, bytes)
}
func (r *voiceRecorder) OnVoiceProcessingPassEnd() { r.passEnds++ }

type engineRecorder struct {
	name string
	log  *[]string
}

func (r *engineRecorder) OnProcessingPassStart() { *r.log = append(*r.log, r.name+":start") }
func (r *engineRecorder) OnProcessingPassEnd()   { *r.log = append(*r.log, r.name+":end") }

// identityResampler copies samples through unchanged, the in-package
// stand-in for resample.Identity.
type identityResampler struct{}

func (identityResampler) Resample(in []float32, out []float32) int {
	return copy(out, in)
}

func monoFormat(rate int) Format {
	return Format{Tag: TagPCM, Channels: 1, SampleRate: rate, BitsPerSample: 16, BlockAlign: 2}
}

func stereoFormat(rate int) Format {
	return Format{Tag: TagPCM, Channels: 2, SampleRate: rate, BitsPerSample: 16, BlockAlign: 4}
}
