// SPDX-License-Identifier: EPL-2.0

package resample

import "github.com/oov/audio/resampler"

// DefaultQuality is a good speed/quality trade-off for Sinc.
const DefaultQuality = 10

// Sinc converts between sample rates with the windowed-sinc resampler
// from github.com/oov/audio. The underlying resampler is planar, so
// interleaved input is split per channel, processed and re-interleaved.
type Sinc struct {
	channels int
	r        *resampler.Resampler

	planarIn  [][]float32
	planarOut [][]float32
}

func NewSinc(channels, inRate, outRate, quality int) *Sinc {
	s := &Sinc{
		channels:  channels,
		r:         resampler.New(channels, inRate, outRate, quality),
		planarIn:  make([][]float32, channels),
		planarOut: make([][]float32, channels),
	}
	return s
}

// Resample converts in into out and returns the samples written.
func (s *Sinc) Resample(in []float32, out []float32) int {
	frames := len(in) / s.channels
	outFrames := len(out) / s.channels

	for c := 0; c < s.channels; c++ {
		if cap(s.planarIn[c]) < frames {
			s.planarIn[c] = make([]float32, frames)
		}
		s.planarIn[c] = s.planarIn[c][:frames]
		if cap(s.planarOut[c]) < outFrames {
			s.planarOut[c] = make([]float32, outFrames)
		}
		s.planarOut[c] = s.planarOut[c][:outFrames]
	}

	for i := 0; i < frames; i++ {
		for c := 0; c < s.channels; c++ {
			s.planarIn[c][i] = in[i*s.channels+c]
		}
	}

	written := 0
	for c := 0; c < s.channels; c++ {
		_, written = s.r.ProcessFloat32(c, s.planarIn[c], s.planarOut[c])
	}

	for i := 0; i < written; i++ {
		for c := 0; c < s.channels; c++ {
			out[i*s.channels+c] = s.planarOut[c][i]
		}
	}

	return written * s.channels
}
