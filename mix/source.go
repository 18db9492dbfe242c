// SPDX-License-Identifier: EPL-2.0

package mix

import "github.com/ik5/audmix/fixed"

// extraDecodePadding is the fixed number of trailing frames decoded
// beyond the strict request so the linear interpolator always has a
// sample to look ahead at. Decoders zero-fill past the payload, so the
// padding never reads out of bounds.
const extraDecodePadding = 2

// SourceVoice feeds queued payload buffers through its decoder and the
// fixed-point resampler into its send targets, one block at a time.
type SourceVoice struct {
	voiceProperties

	engine   *Engine
	format   Format
	decoder  Decoder
	callback VoiceCallback

	active bool

	queue []*Buffer

	// Play position inside the current buffer: integer frame plus a
	// Q32.32 fraction always below fixed.One.
	curBufferOffset    uint32
	curBufferOffsetDec fixed.Value

	// resampleStep is a pure function of (freqRatio, source rate,
	// destination rate); resampleFreqRatio remembers the ratio the
	// cached step was computed from.
	freqRatio         float64
	resampleFreqRatio float64
	resampleStep      fixed.Value
	resampleOffset    fixed.Value

	decodeCache   []int16
	resampleCache []float32
}

// Format returns the voice's payload format.
func (v *SourceVoice) Format() Format { return v.format }

// Start lets the voice participate in subsequent blocks.
func (v *SourceVoice) Start() { v.active = true }

// Stop removes the voice from subsequent blocks. Queued buffers and
// the play position are retained.
func (v *SourceVoice) Stop() { v.active = false }

// FrequencyRatio returns the current playback rate multiplier.
func (v *SourceVoice) FrequencyRatio() float64 { return v.freqRatio }

// SetFrequencyRatio sets the playback rate multiplier. The cached
// resample step is recomputed on the next block.
func (v *SourceVoice) SetFrequencyRatio(ratio float64) {
	v.freqRatio = ratio
}

// SetSends replaces the voice's outgoing edges. Multiple sends fan the
// voice out; multiple voices sending into one target are additive.
// Changing sends may change the destination rate, so the cached
// resample step is recomputed on the next block.
func (v *SourceVoice) SetSends(sends []Send) error {
	if err := v.setSends(sends, v.format.Channels); err != nil {
		return err
	}
	v.resampleFreqRatio = -1.0
	return nil
}

// QueuedBuffers returns the number of buffers waiting on the voice,
// including the one currently being decoded.
func (v *SourceVoice) QueuedBuffers() int { return len(v.queue) }

// SubmitBuffer appends b to the voice's queue. The queue owns b from
// this point until it is released at its consumption boundary.
func (v *SourceVoice) SubmitBuffer(b *Buffer) error {
	if b.PlayLength == 0 {
		return ErrNoPlayLength
	}
	// PCM payload sizes are knowable up front; compressed payloads are
	// only bounded by their decoder.
	if v.format.Tag == TagPCM && v.format.BlockAlign > 0 {
		frames := uint32(len(b.Data) / v.format.BlockAlign)
		if b.PlayBegin+b.PlayLength > frames {
			return ErrPlayOutOfRange
		}
	}
	if b.LoopCount > 0 {
		if b.LoopBegin < b.PlayBegin ||
			b.LoopBegin >= b.PlayBegin+b.PlayLength {
			return ErrLoopOutOfRange
		}
		if b.LoopLength == 0 {
			// Loop to the end of the play window.
			b.LoopLength = b.PlayBegin + b.PlayLength - b.LoopBegin
		}
		if b.LoopBegin+b.LoopLength > b.PlayBegin+b.PlayLength {
			return ErrLoopOutOfRange
		}
	}
	if len(v.queue) == 0 {
		v.curBufferOffset = b.PlayBegin
	}
	v.queue = append(v.queue, b)
	return nil
}

// FlushBuffers releases every queued buffer, firing OnBufferEnd for
// each, and resets the play position.
func (v *SourceVoice) FlushBuffers() {
	for _, b := range v.queue {
		if v.callback != nil {
			v.callback.OnBufferEnd(b.Context)
		}
	}
	v.queue = v.queue[:0]
	v.curBufferOffset = 0
	v.curBufferOffsetDec = 0
}

// outputRate is the rate the voice resamples to: the input rate of its
// first send target, or the master rate when it has no sends.
func (v *SourceVoice) outputRate() int {
	if len(v.sends) == 0 {
		return v.engine.master.sampleRate
	}
	return v.sends[0].Target.inputSampleRate()
}

func (v *SourceVoice) ensureCaches(decodeSamples, outputSamples int) {
	if cap(v.decodeCache) < decodeSamples {
		v.decodeCache = make([]int16, decodeSamples)
	}
	v.decodeCache = v.decodeCache[:cap(v.decodeCache)]
	if cap(v.resampleCache) < outputSamples {
		v.resampleCache = make([]float32, outputSamples)
	}
	v.resampleCache = v.resampleCache[:cap(v.resampleCache)]
}

// mixInto runs one block of the source pipeline: refresh the cached
// step, decode and resample until the output quota is met or the queue
// empties, then distribute into every send target.
func (v *SourceVoice) mixInto() {
	nCh := v.format.Channels

	// Recompute the resample step only when the effective ratio moved.
	if v.resampleFreqRatio != v.freqRatio {
		step := v.freqRatio *
			float64(v.format.SampleRate) /
			float64(v.outputRate())
		v.resampleStep = fixed.FromFloat(step)
		v.resampleFreqRatio = v.freqRatio
	}

	// Output quota in frames at the destination rate, plus the worst
	// case decode demand it implies.
	quota := v.engine.blockFramesAt(v.outputRate())
	maxDecode := int((uint64(quota)*uint64(v.resampleStep)+
		uint64(fixed.One-1))>>32) + extraDecodePadding
	v.ensureCaches((maxDecode+extraDecodePadding)*nCh, quota*nCh)

	// Last call for buffer data!
	if v.callback != nil {
		v.callback.OnVoiceProcessingPassStart(maxDecode * nCh * 2)
	}

	mixed := 0
	if len(v.queue) > 0 {
		mixed = v.fillResampleCache(quota, nCh)
	}

	if mixed > 0 && len(v.sends) > 0 {
		v.distribute(mixed, nCh)
	}

	if v.callback != nil {
		v.callback.OnVoiceProcessingPassEnd()
	}
}

// fillResampleCache produces up to quota frames of normalized float
// output in resampleCache and returns how many it actually produced.
func (v *SourceVoice) fillResampleCache(quota, nCh int) int {
	mixed := 0
	for mixed < quota && len(v.queue) > 0 {
		// Source frames needed for the remaining quota: int to fixed,
		// rounded up past the current fractional offset.
		toDecode := uint64(quota-mixed) * uint64(v.resampleStep)
		toDecode += uint64(v.curBufferOffsetDec) + uint64(fixed.One-1)
		toDecode >>= 32

		decoded, resetOffset := v.decodeBuffers(int(toDecode))

		// Invert the step to learn how many output frames the decoded
		// span yields, then clamp to the remaining quota.
		toResample := uint64(decoded) << 32
		if toResample <= uint64(v.curBufferOffsetDec) {
			break
		}
		toResample -= uint64(v.curBufferOffsetDec)
		toResample /= uint64(v.resampleStep)
		if toResample > uint64(quota-mixed) {
			toResample = uint64(quota - mixed)
		}
		produced := int(toResample)

		dst := v.resampleCache[mixed*nCh : (mixed+produced)*nCh]
		if v.resampleStep == fixed.One {
			// No rate change: pure int16 to float conversion.
			for i := 0; i < produced*nCh; i++ {
				dst[i] = float32(v.decodeCache[i]) / 32768.0
			}
		} else {
			v.resamplePCM(dst, produced)
		}

		// Fold the resampled span back into the play position. A
		// buffer switch mid-decode invalidates naive accumulation;
		// resetOffset carries the correction.
		if len(v.queue) > 0 {
			v.curBufferOffsetDec += fixed.Value(uint64(produced) * uint64(v.resampleStep))
			v.curBufferOffset += uint32(v.curBufferOffsetDec.Whole())
			v.curBufferOffset -= resetOffset
			v.curBufferOffsetDec = v.curBufferOffsetDec.Frac()
		} else {
			v.curBufferOffset = 0
			v.curBufferOffsetDec = 0
		}

		mixed += produced
		if produced == 0 {
			break
		}
	}
	return mixed
}

// distribute accumulates the float cache into every send target,
// folding in per-channel gain, voice gain and the send matrix. Targets
// are summed into, never overwritten, and every accumulation is
// clamped to the symmetric ceiling.
func (v *SourceVoice) distribute(mixed, nCh int) {
	for _, s := range v.sends {
		stream := s.Target.inputBuffer()
		oChan := s.Target.inputChannels()
		frames := mixed
		if limit := len(stream) / oChan; frames > limit {
			frames = limit
		}
		for j := 0; j < frames; j++ {
			for co := 0; co < oChan; co++ {
				for ci := 0; ci < nCh; ci++ {
					sample := stream[j*oChan+co] +
						v.resampleCache[j*nCh+ci]*
							v.channelVolume[ci]*
							v.volume*
							s.Coefficients[co*nCh+ci]
					stream[j*oChan+co] = clampVolume(sample)
				}
			}
		}
	}
}

func clampVolume(s float32) float32 {
	if s > MaxVolumeLevel {
		return MaxVolumeLevel
	}
	if s < -MaxVolumeLevel {
		return -MaxVolumeLevel
	}
	return s
}
