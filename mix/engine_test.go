// SPDX-License-Identifier: EPL-2.0

package mix

import (
	"errors"
	"testing"
)

func TestNewEngine(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		channels    int
		rate        int
		blockFrames int
		wantErr     error
	}{
		{name: "stereo 48k", channels: 2, rate: 48000, blockFrames: 480},
		{name: "zero channels", channels: 0, rate: 48000, blockFrames: 480, wantErr: ErrInvalidChannelCount},
		{name: "zero rate", channels: 2, rate: 0, blockFrames: 480, wantErr: ErrInvalidSampleRate},
		{name: "zero block", channels: 2, rate: 48000, blockFrames: 0, wantErr: ErrInvalidBlockSize},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			e, err := NewEngine(tc.channels, tc.rate, tc.blockFrames)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("NewEngine() error = %v, want %v", err, tc.wantErr)
			}
			if tc.wantErr != nil {
				return
			}
			if e.Master().Channels() != tc.channels {
				t.Errorf("Master().Channels() = %d, want %d", e.Master().Channels(), tc.channels)
			}
			if e.Master().SampleRate() != tc.rate {
				t.Errorf("Master().SampleRate() = %d, want %d", e.Master().SampleRate(), tc.rate)
			}
			if e.BlockFrames() != tc.blockFrames {
				t.Errorf("BlockFrames() = %d, want %d", e.BlockFrames(), tc.blockFrames)
			}
		})
	}
}

func TestEngine_NewSourceVoiceValidation(t *testing.T) {
	t.Parallel()

	e := newBlockEngine(t, 1, 48000, 32)

	if _, err := e.NewSourceVoice(Format{Tag: TagPCM, SampleRate: 48000}, pcm16Decoder{1}, nil); !errors.Is(err, ErrInvalidChannelCount) {
		t.Errorf("zero channels: error = %v, want %v", err, ErrInvalidChannelCount)
	}
	if _, err := e.NewSourceVoice(Format{Tag: TagPCM, Channels: 1}, pcm16Decoder{1}, nil); !errors.Is(err, ErrInvalidSampleRate) {
		t.Errorf("zero rate: error = %v, want %v", err, ErrInvalidSampleRate)
	}
	if _, err := e.NewSourceVoice(monoFormat(48000), nil, nil); !errors.Is(err, ErrNilDecoder) {
		t.Errorf("nil decoder: error = %v, want %v", err, ErrNilDecoder)
	}
}

func TestEngine_NewSubmixVoiceValidation(t *testing.T) {
	t.Parallel()

	e := newBlockEngine(t, 1, 48000, 32)

	if _, err := e.NewSubmixVoice(0, 48000, 0, identityResampler{}); !errors.Is(err, ErrInvalidChannelCount) {
		t.Errorf("zero channels: error = %v, want %v", err, ErrInvalidChannelCount)
	}
	if _, err := e.NewSubmixVoice(1, 0, 0, identityResampler{}); !errors.Is(err, ErrInvalidSampleRate) {
		t.Errorf("zero rate: error = %v, want %v", err, ErrInvalidSampleRate)
	}
	if _, err := e.NewSubmixVoice(1, 48000, -1, identityResampler{}); !errors.Is(err, ErrNegativeStage) {
		t.Errorf("negative stage: error = %v, want %v", err, ErrNegativeStage)
	}
	if _, err := e.NewSubmixVoice(1, 48000, 0, nil); !errors.Is(err, ErrNilResampler) {
		t.Errorf("nil resampler: error = %v, want %v", err, ErrNilResampler)
	}
}

func TestEngine_InactiveUpdatePerformsNoWrites(t *testing.T) {
	t.Parallel()

	e := newBlockEngine(t, 1, 48000, 16)
	log := []string{}
	e.RegisterCallback(&engineRecorder{name: "a", log: &log})

	v, err := e.NewSourceVoice(monoFormat(48000), pcm16Decoder{1}, nil)
	if err != nil {
		t.Fatalf("NewSourceVoice() error = %v", err)
	}
	mustSubmit(t, v, &Buffer{Data: constantPCM16(64, 1, 16384), PlayLength: 64})

	e.Stop()

	out := make([]float32, 16)
	for i := range out {
		out[i] = 123.0
	}
	e.Update(out)

	for i, s := range out {
		if s != 123.0 {
			t.Fatalf("output[%d] = %v, inactive update must leave the block alone", i, s)
		}
	}
	if len(log) != 0 {
		t.Errorf("engine callbacks fired while stopped: %v", log)
	}

	e.Start()
	for i := range out {
		out[i] = 0
	}
	e.Update(out)
	if out[0] != 0.5 {
		t.Errorf("output[0] = %v after Start, want 0.5", out[0])
	}
}

func TestEngine_CallbackOrder(t *testing.T) {
	t.Parallel()

	e := newBlockEngine(t, 1, 48000, 16)
	log := []string{}
	e.RegisterCallback(&engineRecorder{name: "a", log: &log})
	e.RegisterCallback(&engineRecorder{name: "b", log: &log})

	e.Update(make([]float32, 16))

	want := []string{"a:start", "b:start", "a:end", "b:end"}
	if len(log) != len(want) {
		t.Fatalf("callback log = %v, want %v", log, want)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Fatalf("callback log = %v, want %v", log, want)
		}
	}
}

func TestEngine_UnregisterCallback(t *testing.T) {
	t.Parallel()

	e := newBlockEngine(t, 1, 48000, 16)
	log := []string{}
	a := &engineRecorder{name: "a", log: &log}
	b := &engineRecorder{name: "b", log: &log}
	e.RegisterCallback(a)
	e.RegisterCallback(b)
	e.UnregisterCallback(a)

	e.Update(make([]float32, 16))

	if len(log) != 2 || log[0] != "b:start" || log[1] != "b:end" {
		t.Errorf("callback log = %v, want only b's events", log)
	}
}

func TestEngine_MasterUnboundBetweenBlocks(t *testing.T) {
	t.Parallel()

	e := newBlockEngine(t, 1, 48000, 16)
	e.Update(make([]float32, 16))

	if e.master.output != nil {
		t.Error("master still references the caller's block after Update")
	}
}

func TestEngine_DestroyVoices(t *testing.T) {
	t.Parallel()

	e := newBlockEngine(t, 1, 48000, 16)
	sm, err := e.NewSubmixVoice(1, 48000, 0, identityResampler{})
	if err != nil {
		t.Fatalf("NewSubmixVoice() error = %v", err)
	}
	v, err := e.NewSourceVoice(monoFormat(48000), pcm16Decoder{1}, nil)
	if err != nil {
		t.Fatalf("NewSourceVoice() error = %v", err)
	}
	if err := v.SetSends([]Send{{Target: sm}}); err != nil {
		t.Fatalf("SetSends() error = %v", err)
	}
	mustSubmit(t, v, &Buffer{Data: constantPCM16(64, 1, 16384), PlayLength: 64})

	e.DestroySourceVoice(v)

	out := make([]float32, 16)
	e.Update(out)
	for i, s := range out {
		if s != 0 {
			t.Fatalf("output[%d] = %v, destroyed source must not mix", i, s)
		}
	}

	e.DestroySubmixVoice(sm)
	e.Update(out)
	for i, s := range out {
		if s != 0 {
			t.Fatalf("output[%d] = %v after destroying the bus", i, s)
		}
	}
}

func TestEngine_BlockFramesAt(t *testing.T) {
	t.Parallel()

	e := newBlockEngine(t, 2, 48000, 480)

	tests := []struct {
		rate int
		want int
	}{
		{rate: 48000, want: 480},
		{rate: 24000, want: 240},
		{rate: 96000, want: 960},
		{rate: 44100, want: 441},
	}
	for _, tc := range tests {
		if got := e.blockFramesAt(tc.rate); got != tc.want {
			t.Errorf("blockFramesAt(%d) = %d, want %d", tc.rate, got, tc.want)
		}
	}
}
