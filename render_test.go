// SPDX-License-Identifier: EPL-2.0

package audmix_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ik5/audmix"
	"github.com/ik5/audmix/decode"
	"github.com/ik5/audmix/formats/wav"
	"github.com/ik5/audmix/internal/audiotest"
	"github.com/ik5/audmix/mix"
)

func halfScaleEngine(t *testing.T, blockFrames, payloadFrames int) *mix.Engine {
	t.Helper()

	e, err := mix.NewEngine(1, 48000, blockFrames)
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}

	f := mix.Format{Tag: mix.TagPCM, Channels: 1, SampleRate: 48000, BitsPerSample: 16, BlockAlign: 2}
	d, err := decode.ForFormat(f)
	if err != nil {
		t.Fatalf("ForFormat() error = %v", err)
	}
	v, err := e.NewSourceVoice(f, d, nil)
	if err != nil {
		t.Fatalf("NewSourceVoice() error = %v", err)
	}
	err = v.SubmitBuffer(&mix.Buffer{
		Data:        audiotest.ConstantPCM16(payloadFrames, 1, 16384),
		PlayLength:  uint32(payloadFrames),
		EndOfStream: true,
	})
	if err != nil {
		t.Fatalf("SubmitBuffer() error = %v", err)
	}
	return e
}

func TestRender(t *testing.T) {
	t.Parallel()

	e := halfScaleEngine(t, 8, 64)

	pcm := audmix.Render(e, 3)
	if len(pcm) != 24 {
		t.Fatalf("Render() = %d samples, want 24", len(pcm))
	}
	for i, s := range pcm {
		if s != 16383 {
			t.Fatalf("pcm[%d] = %d, want 16383", i, s)
		}
	}
}

func TestRender_InactiveEngine(t *testing.T) {
	t.Parallel()

	e := halfScaleEngine(t, 8, 64)
	e.Stop()

	pcm := audmix.Render(e, 2)
	if len(pcm) != 16 {
		t.Fatalf("Render() = %d samples, want 16", len(pcm))
	}
	for i, s := range pcm {
		if s != 0 {
			t.Fatalf("pcm[%d] = %d, want silence from a stopped engine", i, s)
		}
	}
}

func TestRenderWAV(t *testing.T) {
	t.Parallel()

	e := halfScaleEngine(t, 8, 64)
	path := filepath.Join(t.TempDir(), "render.wav")

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if err := audmix.RenderWAV(f, e, 4); err != nil {
		t.Fatalf("RenderWAV() error = %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	f, err = os.Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer f.Close()

	buf, format, err := wav.Load(f)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if format.SampleRate != 48000 || format.Channels != 1 {
		t.Errorf("format = %+v, want mono 48kHz", format)
	}
	if buf.PlayLength != 32 {
		t.Errorf("PlayLength = %d, want 32", buf.PlayLength)
	}
}
