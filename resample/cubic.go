// SPDX-License-Identifier: EPL-2.0

package resample

import "github.com/ik5/audmix/utils"

// Cubic converts between sample rates with Catmull-Rom interpolation.
// It keeps the fractional read position across blocks so consecutive
// blocks stay phase-continuous; neighbor frames are clamped at block
// edges.
type Cubic struct {
	channels int
	ratio    float64 // input frames per output frame
	pos      float64
}

func NewCubic(channels, inRate, outRate int) *Cubic {
	return &Cubic{
		channels: channels,
		ratio:    float64(inRate) / float64(outRate),
	}
}

// Resample interpolates in into out and returns the samples written.
func (r *Cubic) Resample(in []float32, out []float32) int {
	frames := len(in) / r.channels
	if frames == 0 {
		return 0
	}
	outFrames := len(out) / r.channels

	written := 0
	pos := r.pos
	for written < outFrames && pos < float64(frames) {
		i1 := int(pos)
		alpha := float32(pos - float64(i1))

		i0 := i1 - 1
		if i0 < 0 {
			i0 = 0
		}
		i2 := i1 + 1
		if i2 >= frames {
			i2 = frames - 1
		}
		i3 := i1 + 2
		if i3 >= frames {
			i3 = frames - 1
		}

		for c := 0; c < r.channels; c++ {
			out[written*r.channels+c] = utils.CubicInterpolate(
				in[i0*r.channels+c],
				in[i1*r.channels+c],
				in[i2*r.channels+c],
				in[i3*r.channels+c],
				alpha,
			)
		}

		written++
		pos += r.ratio
	}

	// Carry the remainder into the next block relative to the frames
	// actually consumed: all of them when the input ran out, only the
	// walked-over ones when the output filled up first.
	consumed := frames
	if pos < float64(frames) {
		consumed = int(pos)
	}
	r.pos = pos - float64(consumed)

	return written * r.channels
}
