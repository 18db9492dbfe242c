// SPDX-License-Identifier: EPL-2.0

package audmix_test

import (
	"fmt"

	"github.com/ik5/audmix"
	"github.com/ik5/audmix/decode"
	"github.com/ik5/audmix/mix"
)

func Example() {
	engine, _ := mix.NewEngine(1, 48000, 4)

	// Eight frames at half scale: 16384 little-endian.
	payload := make([]byte, 16)
	for i := 0; i < 8; i++ {
		payload[i*2+1] = 0x40
	}

	format := mix.Format{
		Tag:           mix.TagPCM,
		Channels:      1,
		SampleRate:    48000,
		BitsPerSample: 16,
		BlockAlign:    2,
	}
	decoder, _ := decode.ForFormat(format)
	voice, _ := engine.NewSourceVoice(format, decoder, nil)
	_ = voice.SubmitBuffer(&mix.Buffer{Data: payload, PlayLength: 8, EndOfStream: true})

	fmt.Println(audmix.Render(engine, 1))
	// Output: [16383 16383 16383 16383]
}
