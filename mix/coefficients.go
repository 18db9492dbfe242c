// SPDX-License-Identifier: EPL-2.0

package mix

// DefaultCoefficients builds the [dst][src] gain matrix used when a
// Send carries no explicit coefficients. Matching channel counts route
// one-to-one; otherwise every destination channel receives the average
// of all source channels, so a mono source fans out at unity and a
// multi-channel source folds down without gain.
func DefaultCoefficients(srcChannels, dstChannels int) []float32 {
	m := make([]float32, dstChannels*srcChannels)

	if srcChannels == dstChannels {
		for c := 0; c < srcChannels; c++ {
			m[c*srcChannels+c] = 1.0
		}
		return m
	}

	switch srcChannels {
	case 1:
		for co := 0; co < dstChannels; co++ {
			m[co] = 1.0
		}
	case 2: // Stereo (most common)
		for co := 0; co < dstChannels; co++ {
			m[co*2] = 0.5
			m[co*2+1] = 0.5
		}
	case 4: // Quad
		for co := 0; co < dstChannels; co++ {
			for ci := 0; ci < 4; ci++ {
				m[co*4+ci] = 0.25
			}
		}
	default: // Generic path
		inv := float32(1.0) / float32(srcChannels)
		for co := 0; co < dstChannels; co++ {
			for ci := 0; ci < srcChannels; ci++ {
				m[co*srcChannels+ci] = inv
			}
		}
	}

	return m
}
