// SPDX-License-Identifier: EPL-2.0

package mix

// VoiceCallback receives lifecycle notifications for a source voice.
// A nil callback disables all notifications; embed NoopVoiceCallback
// to implement only the methods you care about.
type VoiceCallback interface {
	// OnBufferStart fires exactly once per buffer, when the play
	// position first equals the buffer's play-window start.
	OnBufferStart(context any)
	// OnBufferEnd fires when a buffer's last playable sample has been
	// decoded and the buffer is released.
	OnBufferEnd(context any)
	// OnLoopEnd fires every time the play position rewinds to the loop
	// window start.
	OnLoopEnd(context any)
	// OnStreamEnd fires after OnBufferEnd when the released buffer was
	// flagged end-of-stream.
	OnStreamEnd()
	// OnVoiceProcessingPassStart fires before the voice is mixed,
	// advertising the maximum bytes this pass may still decode. This is
	// the last chance to submit data for the current block.
	OnVoiceProcessingPassStart(bytesRequired int)
	// OnVoiceProcessingPassEnd fires after the voice is mixed, even if
	// no samples were produced.
	OnVoiceProcessingPassEnd()
}

// NoopVoiceCallback implements VoiceCallback with empty methods.
type NoopVoiceCallback struct{}

func (NoopVoiceCallback) OnBufferStart(any) {}
func (NoopVoiceCallback) OnBufferEnd(any) {}
func (NoopVoiceCallback) OnLoopEnd(any) {}
func (NoopVoiceCallback) OnStreamEnd() {}
func (NoopVoiceCallback) OnVoiceProcessingPassStart(int) {}
func (NoopVoiceCallback) OnVoiceProcessingPassEnd() {}

// EngineCallback receives engine-wide notifications around each block.
// Callbacks fire in registration order.
type EngineCallback interface {
	OnProcessingPassStart()
	OnProcessingPassEnd()
}

// NoopEngineCallback implements EngineCallback with empty methods.
type NoopEngineCallback struct{}

func (NoopEngineCallback) OnProcessingPassStart() {}
func (NoopEngineCallback) OnProcessingPassEnd() {}
