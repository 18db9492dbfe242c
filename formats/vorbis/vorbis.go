// SPDX-License-Identifier: EPL-2.0

// Package vorbis supplies an external decode capability for Ogg Vorbis
// payloads, backed by github.com/jfreymuth/oggvorbis.
package vorbis

import (
	"bytes"
	"fmt"
	"io"

	"github.com/jfreymuth/oggvorbis"

	"github.com/ik5/audmix/mix"
	"github.com/ik5/audmix/utils"
)

// Codec implements mix.Decoder for one Ogg Vorbis payload.
type Codec struct {
	pcm      []int16
	channels int
}

// NewCodec decodes the Vorbis payload in data and returns the codec
// plus the format a source voice should be configured with.
func NewCodec(data []byte) (*Codec, mix.Format, error) {
	dec, err := oggvorbis.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, mix.Format{}, fmt.Errorf("%w", err)
	}

	channels := dec.Channels()
	var pcm []int16
	buf := make([]float32, 4096)
	for {
		n, err := dec.Read(buf)
		for i := 0; i < n; i++ {
			pcm = append(pcm, utils.Float32ToInt16(buf[i]))
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, mix.Format{}, fmt.Errorf("%w", err)
		}
	}

	c := &Codec{pcm: pcm, channels: channels}
	f := mix.Format{
		Tag:           mix.TagExternal,
		Channels:      channels,
		SampleRate:    dec.SampleRate(),
		BitsPerSample: 16,
		BlockAlign:    channels * 2,
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

// Factory resolves Ogg Vorbis payloads through a decode.Registry.
type Factory struct{}

func (Factory) New(data []byte) (mix.Decoder, mix.Format, error) {
	c, f, err := NewCodec(data)
	if err != nil {
		return nil, mix.Format{}, err
	}
	return c, f, nil
}
