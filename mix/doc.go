// SPDX-License-Identifier: EPL-2.0

// Package mix implements the signal path of a graph-routed audio
// mixing engine: queued payload buffers are decoded, rate-converted
// and summed through intermediate buses into a single master block.
//
// # Voice Graph
//
// Three voice variants form a directed graph:
//   - SourceVoice decodes and resamples its queued buffers
//   - SubmixVoice accumulates input from other voices and re-sends it
//   - MasterVoice terminates the graph in the caller's output block
//
// Edges are Sends: gain-weighted, per-channel-matrixed connections.
// Fan-out (several sends from one voice) and fan-in (several voices
// into one target) are both additive.
//
//	engine, _ := mix.NewEngine(2, 48000, 480)
//	voice, _ := engine.NewSourceVoice(format, decoder, nil)
//	voice.SubmitBuffer(&mix.Buffer{Data: pcm, PlayLength: frames})
//
//	block := make([]float32, 2*480)
//	engine.Update(block) // one fully mixed block
//
// # Update Model
//
// The engine is single-threaded and deadline-driven: one real-time
// audio clock calls Update once per block period and the entire
// pipeline runs synchronously inside it. Nothing in the update path
// blocks on I/O or takes a lock. Scratch buffers are owned per voice,
// persist across blocks and only ever grow; a configuration change may
// allocate, steady-state playback does not.
//
// Submix voices carry a processing stage. Sources always mix first,
// then stages run in ascending order, so a bus at stage k never runs
// before every voice feeding it has been accumulated this block.
//
// # Position Tracking
//
// Play positions and resample steps are Q32.32 fixed-point values
// (package fixed). The fractional phase is carried exactly across
// blocks, so long-running playback never drifts the way float
// accumulation would.
//
// # Notifications
//
// VoiceCallback and EngineCallback deliver the lifecycle events:
// buffer start/end, loop end, stream end, and the per-voice and
// per-engine processing pass edges. All methods are optional via the
// Noop embeddings, and a nil voice callback disables notification
// entirely.
//
// # Error Model
//
// Errors exist only at configuration time. The block path itself never
// fails: a starved buffer queue degrades to silence, and the mix
// always produces a full block.
package mix
