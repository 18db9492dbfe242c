// SPDX-License-Identifier: EPL-2.0

package mix

// resamplePCM converts frames output frames from the 16-bit decode
// cache into normalized floats in dst, linearly interpolating at the
// voice's fixed-point step.
//
// The read position advances only by whole frames; the fraction is
// retained in the cumulative resample offset so the walk never drifts,
// no matter how many blocks it runs for. Stereo gets its own unrolled
// loop; every other channel count shares the generic one.
func (v *SourceVoice) resamplePCM(dst []float32, frames int) {
	cur := v.resampleOffset.Frac()
	dc := 0
	out := 0

	if v.format.Channels == 2 {
		for i := 0; i < frames; i++ {
			// lerp, then convert to float value
			frac := cur.Float()
			dst[out] = float32(
				float64(v.decodeCache[dc])+
					float64(v.decodeCache[dc+2]-v.decodeCache[dc])*frac,
			) / 32768.0
			dst[out+1] = float32(
				float64(v.decodeCache[dc+1])+
					float64(v.decodeCache[dc+3]-v.decodeCache[dc+1])*frac,
			) / 32768.0
			out += 2

			v.resampleOffset += v.resampleStep
			cur += v.resampleStep

			// Advance the read position by whole frames only; for slow
			// rates this stays at 0 until enough steps accumulate.
			dc += int(cur.Whole()) * 2
			cur = cur.Frac()
		}
		return
	}

	nCh := v.format.Channels
	for i := 0; i < frames; i++ {
		frac := cur.Float()
		for c := 0; c < nCh; c++ {
			dst[out] = float32(
				float64(v.decodeCache[dc+c])+
					float64(v.decodeCache[dc+nCh+c]-v.decodeCache[dc+c])*frac,
			) / 32768.0
			out++
		}

		v.resampleOffset += v.resampleStep
		cur += v.resampleStep
		dc += int(cur.Whole()) * nCh
		cur = cur.Frac()
	}
}
