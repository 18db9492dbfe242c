// SPDX-License-Identifier: EPL-2.0

package mix

// Engine owns the voice graph and drives it one fixed-size block at a
// time. It is single-threaded and cooperative: the caller's audio
// clock invokes Update once per block period, and the whole pipeline
// for that block completes synchronously. Nothing in the update path
// blocks or takes a lock.
type Engine struct {
	master *MasterVoice

	sources   []*SourceVoice
	submixes  []*SubmixVoice
	callbacks []EngineCallback

	blockFrames int
	stageCount  int
	active      bool
}

// NewEngine creates an engine whose master voice has the given channel
// count and sample rate, producing blockFrames frames per update. The
// engine starts active.
func NewEngine(masterChannels, masterRate, blockFrames int) (*Engine, error) {
	if masterChannels <= 0 {
		return nil, ErrInvalidChannelCount
	}
	if masterRate <= 0 {
		return nil, ErrInvalidSampleRate
	}
	if blockFrames <= 0 {
		return nil, ErrInvalidBlockSize
	}

	e := &Engine{
		blockFrames: blockFrames,
		active:      true,
	}
	e.master = &MasterVoice{
		voiceProperties: newVoiceProperties(masterChannels),
		channels:        masterChannels,
		sampleRate:      masterRate,
	}
	return e, nil
}

// Master returns the engine's master voice.
func (e *Engine) Master() *MasterVoice { return e.master }

// BlockFrames returns the number of master-rate frames per update.
func (e *Engine) BlockFrames() int { return e.blockFrames }

// Start resumes block processing.
func (e *Engine) Start() { e.active = true }

// Stop makes subsequent Update calls no-ops. It is the only coarse
// control; there is no cancellation mid-block.
func (e *Engine) Stop() { e.active = false }

// RegisterCallback adds an engine callback. Callbacks fire in
// registration order on both edges of every block.
func (e *Engine) RegisterCallback(cb EngineCallback) {
	e.callbacks = append(e.callbacks, cb)
}

// UnregisterCallback removes a previously registered callback.
func (e *Engine) UnregisterCallback(cb EngineCallback) {
	for i, c := range e.callbacks {
		if c == cb {
			e.callbacks = append(e.callbacks[:i], e.callbacks[i+1:]...)
			return
		}
	}
}

// blockFramesAt converts the block length to a voice rate.
func (e *Engine) blockFramesAt(rate int) int {
	if rate == e.master.sampleRate {
		return e.blockFrames
	}
	return e.blockFrames * rate / e.master.sampleRate
}

// NewSourceVoice creates a source voice for payloads in format f,
// decoded by d. cb may be nil. The voice starts active with a default
// send to the master voice and a frequency ratio of 1.
func (e *Engine) NewSourceVoice(f Format, d Decoder, cb VoiceCallback) (*SourceVoice, error) {
	if f.Channels <= 0 {
		return nil, ErrInvalidChannelCount
	}
	if f.SampleRate <= 0 {
		return nil, ErrInvalidSampleRate
	}
	if d == nil {
		return nil, ErrNilDecoder
	}

	v := &SourceVoice{
		voiceProperties: newVoiceProperties(f.Channels),
		engine:          e,
		format:          f,
		decoder:         d,
		callback:        cb,
		active:          true,
		freqRatio:       1.0,
	}
	if err := v.SetSends([]Send{{Target: e.master}}); err != nil {
		return nil, err
	}
	e.sources = append(e.sources, v)
	return v, nil
}

// NewSubmixVoice creates an intermediate bus with the given channel
// count, accumulator rate and processing stage, using rs to convert
// the accumulated input to the master rate. The bus starts with a
// default send to the master voice.
func (e *Engine) NewSubmixVoice(channels, inputRate, stage int, rs Resampler) (*SubmixVoice, error) {
	if channels <= 0 {
		return nil, ErrInvalidChannelCount
	}
	if inputRate <= 0 {
		return nil, ErrInvalidSampleRate
	}
	if stage < 0 {
		return nil, ErrNegativeStage
	}
	if rs == nil {
		return nil, ErrNilResampler
	}

	m := &SubmixVoice{
		voiceProperties: newVoiceProperties(channels),
		engine:          e,
		channels:        channels,
		inputRate:       inputRate,
		stage:           stage,
		resampler:       rs,
		inputCache:      make([]float32, e.blockFramesAt(inputRate)*channels),
		outputCache:     make([]float32, e.blockFrames*channels),
	}
	if err := m.SetSends([]Send{{Target: e.master}}); err != nil {
		return nil, err
	}
	if stage+1 > e.stageCount {
		e.stageCount = stage + 1
	}
	e.submixes = append(e.submixes, m)
	return m, nil
}

// DestroySourceVoice detaches v from the engine. Must happen between
// blocks, never during an Update.
func (e *Engine) DestroySourceVoice(v *SourceVoice) {
	for i, s := range e.sources {
		if s == v {
			e.sources = append(e.sources[:i], e.sources[i+1:]...)
			return
		}
	}
}

// DestroySubmixVoice detaches m from the engine.
func (e *Engine) DestroySubmixVoice(m *SubmixVoice) {
	for i, s := range e.submixes {
		if s == m {
			e.submixes = append(e.submixes[:i], e.submixes[i+1:]...)
			return
		}
	}
}

// Update mixes one block into output, which must hold master channels
// times block frames samples and is summed into, not cleared: the
// caller owns and pre-clears it. An inactive engine performs no writes
// at all.
//
// Sources mix first, in unspecified order; submixes follow in
// ascending stage order, so a bus never runs before everything that
// feeds it has been accumulated this block.
func (e *Engine) Update(output []float32) {
	if !e.active {
		return
	}

	for _, cb := range e.callbacks {
		cb.OnProcessingPassStart()
	}

	// Writes to master go directly to the caller's block.
	e.master.output = output

	for _, v := range e.sources {
		if v.active {
			v.mixInto()
		}
	}

	for stage := 0; stage < e.stageCount; stage++ {
		for _, m := range e.submixes {
			if m.stage == stage {
				m.mixDown()
			}
		}
	}

	e.master.output = nil

	for _, cb := range e.callbacks {
		cb.OnProcessingPassEnd()
	}
}
