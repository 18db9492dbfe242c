// SPDX-License-Identifier: EPL-2.0

// Package audmix is a software audio mixing engine: a multi-voice,
// graph-routed signal path that decodes queued sample buffers,
// converts their rate, applies gain and sums everything through
// intermediate buses into fixed-size master blocks.
//
// The heavy lifting lives in the subpackages:
//   - mix — the voice graph, buffer queue, resampler and update loop
//   - decode — built-in PCM and MSADPCM sample decoders
//   - resample — rate converters for submix buses
//   - fixed — the Q32.32 fixed-point positions everything steps by
//   - formats/{wav,aiff} — file loaders for submit-ready buffers
//   - formats/{mp3,vorbis} — external codec capabilities
//
// # Quick Start
//
// Build a graph, queue a payload and render:
//
//	engine, _ := mix.NewEngine(2, 48000, 480)
//
//	buffer, format, _ := wav.Load(file)
//	decoder, _ := decode.ForFormat(format)
//	voice, _ := engine.NewSourceVoice(format, decoder, nil)
//	voice.SubmitBuffer(buffer)
//
//	pcm := audmix.Render(engine, 100) // one second at 48kHz
//
// Render drives the engine's update loop block by block; a real-time
// caller would instead invoke engine.Update from its audio clock with
// a pre-cleared output block.
//
// # Compressed Payloads
//
// Compressed formats plug in as external decode capabilities selected
// at voice-configuration time:
//
//	codec, format, _ := mp3.NewCodec(mp3Bytes)
//	voice, _ := engine.NewSourceVoice(format, codec, nil)
//
// # Routing
//
// Voices connect through sends: gain-weighted edges with per-channel
// coefficient matrices. Submix buses group voices and are processed in
// ascending stage order, so multi-level routing stays deterministic.
// See the mix package documentation for the full model.
package audmix
