// SPDX-License-Identifier: EPL-2.0

package decode

import (
	"sync"

	"github.com/ik5/audmix/mix"
)

// CodecFactory builds an external decoder for a compressed payload.
// The factory inspects the payload once, at voice-configuration time,
// and returns the decoder plus the payload's decoded format.
type CodecFactory interface {
	New(data []byte) (mix.Decoder, mix.Format, error)
}

// Registry maps codec keys (e.g. "mp3", "ogg vorbis") to factories so
// applications can resolve external codecs dynamically.
type Registry struct {
	codecs map[string]CodecFactory

	mtx *sync.Mutex
}

func NewRegistry() *Registry {
	return &Registry{
		codecs: make(map[string]CodecFactory),
		mtx:    &sync.Mutex{},
	}
}

func (r *Registry) Register(key string, f CodecFactory) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.codecs[key] = f
}

func (r *Registry) Get(key string) (CodecFactory, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	f, ok := r.codecs[key]
	return f, ok
}
