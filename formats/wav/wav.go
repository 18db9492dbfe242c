// SPDX-License-Identifier: EPL-2.0

// Package wav loads WAV files into submit-ready mix buffers and writes
// rendered PCM back out, via github.com/go-audio/wav and
// github.com/go-audio/riff.
package wav

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/riff"
	"github.com/go-audio/wav"

	"github.com/ik5/audmix/mix"
)

const (
	wavFormatPCM     = 1
	wavFormatMSADPCM = 2
)

// msadpcmPreamble is the per-channel block preamble size the alignment
// constant excludes: predictor byte plus delta and two seed samples.
const msadpcmPreamble = 22

// Load reads a WAV file and returns a buffer covering the whole
// payload (EndOfStream set) together with its format descriptor.
//
// Uncompressed PCM is widened for the PCM decoders, with 8-bit samples
// rebased from WAV's unsigned convention. MSADPCM payloads pass
// through block-aligned and untouched for the ADPCM decoders.
func Load(r io.ReadSeeker) (*mix.Buffer, mix.Format, error) {
	d := wav.NewDecoder(r)
	d.ReadInfo()
	if d.Err() != nil || d.NumChans == 0 {
		return nil, mix.Format{}, ErrNotWavFile
	}

	switch d.WavAudioFormat {
	case wavFormatPCM:
		return loadPCM(d)
	case wavFormatMSADPCM:
		return loadMSADPCM(r)
	}
	return nil, mix.Format{}, ErrOnlyPCMSupported
}

func loadPCM(d *wav.Decoder) (*mix.Buffer, mix.Format, error) {
	buf, err := d.FullPCMBuffer()
	if err != nil {
		return nil, mix.Format{}, fmt.Errorf("%w", err)
	}

	channels := int(d.NumChans)
	var payload []byte
	switch d.BitDepth {
	case 8:
		payload = make([]byte, len(buf.Data))
		for i, v := range buf.Data {
			payload[i] = byte(int8(v - 128))
		}
	case 16:
		payload = make([]byte, len(buf.Data)*2)
		for i, v := range buf.Data {
			payload[i*2] = byte(v)
			payload[i*2+1] = byte(v >> 8)
		}
	default:
		return nil, mix.Format{}, ErrUnsupportedBitDepth
	}

	f := mix.Format{
		Tag:           mix.TagPCM,
		Channels:      channels,
		SampleRate:    int(d.SampleRate),
		BitsPerSample: int(d.BitDepth),
		BlockAlign:    channels * int(d.BitDepth) / 8,
	}
	return &mix.Buffer{
		Data:        payload,
		PlayLength:  uint32(len(buf.Data) / channels),
		EndOfStream: true,
	}, f, nil
}

// loadMSADPCM re-walks the RIFF chunks itself: the wav decoder only
// surfaces PCM, but the compressed payload just needs the fmt block
// align and the raw data chunk.
func loadMSADPCM(r io.ReadSeeker) (*mix.Buffer, mix.Format, error) {
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return nil, mix.Format{}, fmt.Errorf("%w", err)
	}

	p := riff.New(r)
	if err := p.ParseHeaders(); err != nil {
		return nil, mix.Format{}, ErrNotWavFile
	}

	var data []byte
	for data == nil {
		chunk, err := p.NextChunk()
		if err != nil {
			return nil, mix.Format{}, fmt.Errorf("%w", err)
		}
		switch chunk.ID {
		case riff.FmtID:
			if err := chunk.DecodeWavHeader(p); err != nil {
				return nil, mix.Format{}, fmt.Errorf("%w", err)
			}
		case riff.DataFormatID:
			data = make([]byte, chunk.Size)
			if _, err := io.ReadFull(chunk, data); err != nil {
				return nil, mix.Format{}, fmt.Errorf("%w", err)
			}
		default:
			chunk.Drain()
		}
	}

	channels := int(p.NumChannels)
	if channels == 0 {
		return nil, mix.Format{}, ErrInvalidBlockAlign
	}
	blockBytes := int(p.BlockAlign)
	align := blockBytes/channels - msadpcmPreamble
	if align <= 0 {
		return nil, mix.Format{}, ErrInvalidBlockAlign
	}
	framesPerBlock := (align + 16) * 2

	f := mix.Format{
		Tag:           mix.TagMSADPCM,
		Channels:      channels,
		SampleRate:    int(p.SampleRate),
		BitsPerSample: int(p.BitsPerSample),
		BlockAlign:    align,
	}
	return &mix.Buffer{
		Data:        data,
		PlayLength:  uint32(len(data) / blockBytes * framesPerBlock),
		EndOfStream: true,
	}, f, nil
}

// WritePCM16 writes interleaved 16-bit samples as a PCM WAV file.
func WritePCM16(w io.WriteSeeker, sampleRate, channels int, samples []int16) error {
	e := wav.NewEncoder(w, sampleRate, 16, channels, 1)

	buf := &goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: channels,
			SampleRate:  sampleRate,
		},
		Data:           make([]int, len(samples)),
		SourceBitDepth: 16,
	}
	for i, s := range samples {
		buf.Data[i] = int(s)
	}

	if err := e.Write(buf); err != nil {
		return fmt.Errorf("%w", err)
	}
	if err := e.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}
