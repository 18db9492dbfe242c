// SPDX-License-Identifier: EPL-2.0

// Package audiotest provides payload generators and recording
// callbacks for testing the mixing pipeline.
package audiotest

import (
	"encoding/binary"
	"math"

	"github.com/ik5/audmix/mix"
)

// PCM16Payload packs samples as the little-endian bytes a 16-bit PCM
// source voice decodes.
func PCM16Payload(samples []int16) []byte {
	out := make([]byte, len(samples)*2)
	for i, s := range samples {
		binary.LittleEndian.PutUint16(out[i*2:], uint16(s))
	}
	return out
}

// ConstantPCM16 generates frames of the same value on every channel.
func ConstantPCM16(frames, channels int, value int16) []byte {
	samples := make([]int16, frames*channels)
	for i := range samples {
		samples[i] = value
	}
	return PCM16Payload(samples)
}

// RampPCM16 generates frames counting up from start in steps of step,
// identical across channels. Useful for asserting exact positions.
func RampPCM16(frames, channels int, start, step int16) []byte {
	samples := make([]int16, frames*channels)
	for f := 0; f < frames; f++ {
		v := start + int16(f)*step
		for c := 0; c < channels; c++ {
			samples[f*channels+c] = v
		}
	}
	return PCM16Payload(samples)
}

// SinePCM16 generates a sine wave at the given frequency.
func SinePCM16(frames, channels, sampleRate int, frequency float64) []byte {
	samples := make([]int16, frames*channels)
	for f := 0; f < frames; f++ {
		t := float64(f) / float64(sampleRate)
		v := int16(math.Sin(2*math.Pi*frequency*t) * 30000)
		for c := 0; c < channels; c++ {
			samples[f*channels+c] = v
		}
	}
	return PCM16Payload(samples)
}

// MonoADPCMBlock packs one mono MSADPCM block from its preamble and
// nibble bytes. nibbles is padded with zeros (or truncated) to the
// align+15 bytes a block carries.
func MonoADPCMBlock(predictor byte, delta, sample1, sample2 int16, nibbles []byte, align int) []byte {
	block := make([]byte, align+22)
	block[0] = predictor
	binary.LittleEndian.PutUint16(block[1:], uint16(delta))
	binary.LittleEndian.PutUint16(block[3:], uint16(sample1))
	binary.LittleEndian.PutUint16(block[5:], uint16(sample2))
	copy(block[7:], nibbles)
	return block
}

// StereoADPCMBlock packs one stereo MSADPCM block. Each nibble byte
// carries the left sample in the high nibble and the right sample in
// the low nibble; nibbles is padded to (align+15)*2 bytes.
func StereoADPCMBlock(
	predictorL, predictorR byte,
	deltaL, deltaR, sample1L, sample1R, sample2L, sample2R int16,
	nibbles []byte, align int,
) []byte {
	block := make([]byte, (align+22)*2)
	block[0] = predictorL
	block[1] = predictorR
	binary.LittleEndian.PutUint16(block[2:], uint16(deltaL))
	binary.LittleEndian.PutUint16(block[4:], uint16(deltaR))
	binary.LittleEndian.PutUint16(block[6:], uint16(sample1L))
	binary.LittleEndian.PutUint16(block[8:], uint16(sample1R))
	binary.LittleEndian.PutUint16(block[10:], uint16(sample2L))
	binary.LittleEndian.PutUint16(block[12:], uint16(sample2R))
	copy(block[14:], nibbles)
	return block
}

// VoiceRecorder implements mix.VoiceCallback and records every event
// in order of arrival.
type VoiceRecorder struct {
	BufferStarts []any
	BufferEnds   []any
	LoopEnds     []any
	StreamEnds   int
	PassStarts   []int
	PassEnds     int
}

func (r *VoiceRecorder) OnBufferStart(ctx any) { r.BufferStarts = append(r.BufferStarts, ctx) }
func (r *VoiceRecorder) OnBufferEnd(ctx any)   { r.BufferEnds = append(r.BufferEnds, ctx) }
func (r *VoiceRecorder) OnLoopEnd(ctx any)     { r.LoopEnds = append(r.LoopEnds, ctx) }
func (r *VoiceRecorder) OnStreamEnd()          { r.StreamEnds++ }
func (r *VoiceRecorder) OnVoiceProcessingPassStart(bytes int) {
	r.PassStarts = append(r.PassStarts, bytes)
}
func (r *VoiceRecorder) OnVoiceProcessingPassEnd() { r.PassEnds++ }

var _ mix.VoiceCallback = (*VoiceRecorder)(nil)

// EngineRecorder implements mix.EngineCallback, tagging each event
// with its name so registration order is observable.
type EngineRecorder struct {
	Name string
	Log  *[]string
}

func (r *EngineRecorder) OnProcessingPassStart() { *r.Log = append(*r.Log, r.Name+":start") }
func (r *EngineRecorder) OnProcessingPassEnd()   { *r.Log = append(*r.Log, r.Name+":end") }

var _ mix.EngineCallback = (*EngineRecorder)(nil)
