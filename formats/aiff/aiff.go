// SPDX-License-Identifier: EPL-2.0

// Package aiff loads AIFF files into submit-ready mix buffers via
// github.com/go-audio/aiff.
package aiff

import (
	"fmt"
	"io"

	"github.com/go-audio/aiff"

	"github.com/ik5/audmix/mix"
)

// Load reads a 16-bit PCM AIFF file and returns a buffer covering the
// whole payload (EndOfStream set) together with its format descriptor.
func Load(r io.ReadSeeker) (*mix.Buffer, mix.Format, error) {
	d := aiff.NewDecoder(r)
	if !d.IsValidFile() {
		return nil, mix.Format{}, ErrNotAiffFile
	}

	buf, err := d.FullPCMBuffer()
	if err != nil {
		return nil, mix.Format{}, fmt.Errorf("%w", err)
	}
	if d.BitDepth != 16 {
		return nil, mix.Format{}, ErrOnlyPCM16Supported
	}

	channels := int(d.NumChans)
	payload := make([]byte, len(buf.Data)*2)
	for i, v := range buf.Data {
		payload[i*2] = byte(v)
		payload[i*2+1] = byte(v >> 8)
	}

	f := mix.Format{
		Tag:           mix.TagPCM,
		Channels:      channels,
		SampleRate:    int(d.SampleRate),
		BitsPerSample: 16,
		BlockAlign:    channels * 2,
	}
	return &mix.Buffer{
		Data:        payload,
		PlayLength:  uint32(len(buf.Data) / channels),
		EndOfStream: true,
	}, f, nil
}
