// SPDX-License-Identifier: EPL-2.0

package mix

// Resampler is the pluggable rate converter a submix voice runs over
// its accumulated input. Counts are interleaved samples, not frames;
// the implementation converts the rate and preserves the channel
// layout. It returns the number of samples written to out.
//
// The resample package provides implementations.
type Resampler interface {
	Resample(in []float32, out []float32) int
}

// SubmixVoice is an intermediate bus: source voices and lower-stage
// submixes accumulate into its input buffer during a block, then the
// bus resamples, applies gain and redistributes to its own sends.
type SubmixVoice struct {
	voiceProperties

	engine    *Engine
	channels  int
	inputRate int
	stage     int
	resampler Resampler

	// inputCache is the accumulator sends write into; outputCache holds
	// the post-resample, post-gain samples for this bus's own sends.
	// Both persist across blocks and only grow.
	inputCache  []float32
	outputCache []float32
}

// Channels returns the bus channel count.
func (m *SubmixVoice) Channels() int { return m.channels }

// InputSampleRate returns the rate of the bus accumulator in Hz.
func (m *SubmixVoice) InputSampleRate() int { return m.inputRate }

// Stage returns the processing stage; lower stages are mixed first.
func (m *SubmixVoice) Stage() int { return m.stage }

// SetSends replaces the bus's outgoing edges.
func (m *SubmixVoice) SetSends(sends []Send) error {
	return m.setSends(sends, m.channels)
}

func (m *SubmixVoice) inputBuffer() []float32 { return m.inputCache }
func (m *SubmixVoice) inputChannels() int     { return m.channels }
func (m *SubmixVoice) inputSampleRate() int   { return m.inputRate }

// mixDown runs one block of the submix pipeline. With no sends the
// accumulated input is discarded, but the end-of-block reset still
// happens: the accumulator is always cleared for the next block.
func (m *SubmixVoice) mixDown() {
	if len(m.sends) > 0 {
		resampled := m.resampler.Resample(m.inputCache, m.outputCache)

		// Gain applies before distribution here, unlike the source
		// pipeline: any future effect stage is defined relative to
		// post-gain, pre-distribution samples.
		frames := resampled / m.channels
		for i := 0; i < frames; i++ {
			for ci := 0; ci < m.channels; ci++ {
				m.outputCache[i*m.channels+ci] *=
					m.channelVolume[ci] * m.volume
			}
		}

		for _, s := range m.sends {
			stream := s.Target.inputBuffer()
			oChan := s.Target.inputChannels()
			n := frames
			if limit := len(stream) / oChan; n > limit {
				n = limit
			}
			for j := 0; j < n; j++ {
				for co := 0; co < oChan; co++ {
					for ci := 0; ci < m.channels; ci++ {
						sample := stream[j*oChan+co] +
							m.outputCache[j*m.channels+ci]*
								s.Coefficients[co*m.channels+ci]
						stream[j*oChan+co] = clampVolume(sample)
					}
				}
			}
		}
	}

	// Zero this at the end, for the next update.
	for i := range m.inputCache {
		m.inputCache[i] = 0
	}
}
