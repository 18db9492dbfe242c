// SPDX-License-Identifier: EPL-2.0

package audmix

import (
	"fmt"
	"io"

	"github.com/ik5/audmix/formats/wav"
	"github.com/ik5/audmix/mix"
	"github.com/ik5/audmix/utils"
)

// Render drives the engine for the given number of blocks and collects
// the master output as interleaved 16-bit PCM.
//
// This is the offline counterpart of a real-time caller: it owns the
// block buffer, pre-clears it before every update and converts the
// mixed floats after. An inactive engine renders silence.
func Render(e *mix.Engine, blocks int) []int16 {
	master := e.Master()
	block := make([]float32, master.Channels()*e.BlockFrames())
	pcm := make([]int16, 0, blocks*len(block))

	for b := 0; b < blocks; b++ {
		for i := range block {
			block[i] = 0
		}
		e.Update(block)
		for _, s := range block {
			pcm = append(pcm, utils.Float32ToInt16(s))
		}
	}

	return pcm
}

// RenderWAV renders blocks of master output and writes them to w as a
// PCM WAV file at the master rate and channel count.
func RenderWAV(w io.WriteSeeker, e *mix.Engine, blocks int) error {
	pcm := Render(e, blocks)
	master := e.Master()
	if err := wav.WritePCM16(w, master.SampleRate(), master.Channels(), pcm); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}
