// SPDX-License-Identifier: EPL-2.0

// Package mp3 supplies an external decode capability for MP3 payloads,
// backed by github.com/hajimehoshi/go-mp3.
//
// The codec converts the compressed payload to 16-bit PCM once, at
// voice-configuration time, and serves decode windows from the
// conversion cache. The mixing core treats it like any other decoder.
package mp3

import (
	"bytes"
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"

	"github.com/ik5/audmix/mix"
)

// Codec implements mix.Decoder for one MP3 payload.
type Codec struct {
	pcm      []int16
	channels int
}

// NewCodec decodes the MP3 payload in data and returns the codec plus
// the format a source voice should be configured with.
func NewCodec(data []byte) (*Codec, mix.Format, error) {
	dec, err := gomp3.NewDecoder(bytes.NewReader(data))
	if err != nil {
		return nil, mix.Format{}, fmt.Errorf("%w", err)
	}

	// go-mp3 always produces 16-bit little-endian stereo.
	raw, err := io.ReadAll(dec)
	if err != nil {
		return nil, mix.Format{}, fmt.Errorf("%w", err)
	}

	pcm := make([]int16, len(raw)/2)
	for i := range pcm {
		pcm[i] = int16(uint16(raw[i*2]) | uint16(raw[i*2+1])<<8)
	}

	c := &Codec{pcm: pcm, channels: 2}
	f := mix.Format{
		Tag:           mix.TagExternal,
		Channels:      2,
		SampleRate:    dec.SampleRate(),
		BitsPerSample: 16,
		BlockAlign:    4,
	}
	return c, f, nil
}

// Frames returns the decoded frame count, for sizing the buffer's play
// window.
func (c *Codec) Frames() int { return len(c.pcm) / c.channels }

// Decode serves frames from the conversion cache. The payload bytes
// are ignored; the codec converted them up front.
func (c *Codec) Decode(_ []byte, frameOffset int, dst []int16) {
	start := frameOffset * c.channels
	n := 0
	if start < len(c.pcm) {
		n = copy(dst, c.pcm[start:])
	}
	for i := n; i < len(dst); i++ {
		dst[i] = 0
	}
}

// Factory resolves MP3 payloads through a decode.Registry.
type Factory struct{}

func (Factory) New(data []byte) (mix.Decoder, mix.Format, error) {
	c, f, err := NewCodec(data)
	if err != nil {
		return nil, mix.Format{}, err
	}
	return c, f, nil
}
