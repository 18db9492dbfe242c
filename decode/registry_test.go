// SPDX-License-Identifier: EPL-2.0

package decode

import (
	"testing"

	"github.com/ik5/audmix/mix"
)

type stubFactory struct {
	format mix.Format
}

func (f stubFactory) New(data []byte) (mix.Decoder, mix.Format, error) {
	return monoPCM16{}, f.format, nil
}

func TestRegistry(t *testing.T) {
	t.Parallel()

	r := NewRegistry()

	if _, ok := r.Get("mp3"); ok {
		t.Fatal("Get() on an empty registry reported a codec")
	}

	want := stubFactory{format: mix.Format{Tag: mix.TagExternal, Channels: 2, SampleRate: 44100}}
	r.Register("mp3", want)

	got, ok := r.Get("mp3")
	if !ok {
		t.Fatal("Get() did not find a registered codec")
	}
	if got != want {
		t.Errorf("Get() = %#v, want %#v", got, want)
	}

	// Re-registering a key replaces the factory.
	replacement := stubFactory{format: mix.Format{Tag: mix.TagExternal, Channels: 1, SampleRate: 48000}}
	r.Register("mp3", replacement)
	if got, _ := r.Get("mp3"); got != replacement {
		t.Errorf("Get() after replace = %#v, want %#v", got, replacement)
	}
}
