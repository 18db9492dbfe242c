// SPDX-License-Identifier: EPL-2.0

package mix

// decodeBuffers runs the buffer-queue state machine: it produces
// toDecode frames (plus the resampler lookahead padding) of 16-bit PCM
// into decodeCache, consuming across loop and buffer boundaries as
// needed and firing lifecycle notifications along the way.
//
// It returns the frames decoded net of padding, and the frame count
// produced before any queue rewind. The caller subtracts the latter
// from its running offset: a mid-call buffer switch invalidates naive
// offset accumulation.
func (v *SourceVoice) decodeBuffers(toDecode int) (int, uint32) {
	nCh := v.format.Channels

	toDecode += extraDecodePadding
	if cap(v.decodeCache) < toDecode*nCh {
		v.decodeCache = make([]int16, toDecode*nCh)
	}
	v.decodeCache = v.decodeCache[:cap(v.decodeCache)]

	decoded := 0
	resetOffset := uint32(0)

	for decoded < toDecode && len(v.queue) > 0 {
		buf := v.queue[0]
		decoding := toDecode - decoded

		// Start-of-buffer behavior
		if !buf.started && v.curBufferOffset == buf.PlayBegin {
			buf.started = true
			if v.callback != nil {
				v.callback.OnBufferStart(buf.Context)
			}
		}

		// The end of the current iteration is the loop window end while
		// an active loop remains, the play window end otherwise.
		var end uint32
		if buf.LoopCount > 0 && buf.LoopLength > 0 {
			end = buf.LoopBegin + buf.LoopLength
		} else {
			end = buf.PlayBegin + buf.PlayLength
		}
		endRead := 0
		if end > v.curBufferOffset {
			endRead = int(end - v.curBufferOffset)
		}
		if endRead > decoding {
			endRead = decoding
		}

		v.decoder.Decode(
			buf.Data,
			int(v.curBufferOffset),
			v.decodeCache[decoded*nCh:(decoded+endRead)*nCh],
		)

		// End-of-buffer behavior
		if endRead < decoding {
			resetOffset += uint32(endRead)
			if buf.LoopCount > 0 {
				v.curBufferOffset = buf.LoopBegin
				if buf.LoopCount < LoopInfinite {
					buf.LoopCount--
				}
				if v.callback != nil {
					v.callback.OnLoopEnd(buf.Context)
				}
			} else {
				// Stream boundaries do not preserve sub-sample phase.
				if buf.EndOfStream {
					v.curBufferOffsetDec = 0
				}

				if v.callback != nil {
					v.callback.OnBufferEnd(buf.Context)
					if buf.EndOfStream {
						v.callback.OnStreamEnd()
					}
				}

				// Release the finished buffer, advance to the next.
				v.queue = v.queue[1:]
				if len(v.queue) > 0 {
					v.curBufferOffset = v.queue[0].PlayBegin
				} else {
					// Starvation degrades to silence, never to
					// undefined data.
					zero := v.decodeCache[(decoded+endRead)*nCh : (decoded+decoding)*nCh]
					for i := range zero {
						zero[i] = 0
					}
				}
			}
		}

		decoded += endRead
	}

	decoded -= extraDecodePadding
	if decoded < 0 {
		decoded = 0
	}
	return decoded, resetOffset
}
