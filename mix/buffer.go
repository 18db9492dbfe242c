// SPDX-License-Identifier: EPL-2.0

package mix

// LoopInfinite makes a buffer loop forever; the loop counter is never
// decremented and the buffer never finalizes through the loop path.
const LoopInfinite uint8 = 0xFF

// Buffer is one queued audio payload for a source voice.
//
// Data is immutable once submitted; the queue owns the Buffer from
// submission until it is released at its consumption boundary. All
// positions and lengths are in frames.
type Buffer struct {
	// Data is the encoded payload, interpreted by the voice's decoder.
	Data []byte

	// PlayBegin and PlayLength delimit the playable window
	// [PlayBegin, PlayBegin+PlayLength).
	PlayBegin  uint32
	PlayLength uint32

	// LoopBegin and LoopLength delimit the loop window
	// [LoopBegin, LoopBegin+LoopLength). Ignored while LoopCount is 0.
	// With a nonzero LoopCount, a zero LoopLength loops from LoopBegin
	// to the end of the play window.
	LoopBegin  uint32
	LoopLength uint32

	// LoopCount is the number of additional traversals of the loop
	// window: 0 plays straight through, 1-254 repeat that many times,
	// LoopInfinite repeats forever.
	LoopCount uint8

	// EndOfStream marks the final buffer of a logical stream. Crossing
	// it resets the voice's fractional position; stream boundaries do
	// not preserve sub-sample phase.
	EndOfStream bool

	// Context is handed back verbatim on lifecycle notifications.
	Context any

	started bool
}
