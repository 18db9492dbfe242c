// SPDX-License-Identifier: EPL-2.0

package mix

// Tag identifies how a source payload is encoded.
type Tag uint16

const (
	// TagPCM marks uncompressed signed PCM, 8 or 16 bits per sample.
	TagPCM Tag = 1
	// TagMSADPCM marks block-based Microsoft ADPCM, 4 bits per sample.
	TagMSADPCM Tag = 2
	// TagExternal marks a payload handled by an externally supplied
	// codec; the attached Decoder owns the interpretation of the bytes.
	TagExternal Tag = 3
)

// Format describes the encoding of a source voice's payload. It is
// fixed at voice creation and consulted when selecting a decoder.
type Format struct {
	Tag           Tag
	Channels      int
	SampleRate    int
	BitsPerSample int
	// BlockAlign is the codec block size. For MSADPCM it determines
	// how many frames a compressed block expands to.
	BlockAlign int
}

// Decoder converts a window of a source payload into interleaved
// 16-bit PCM. Implementations are selected once, at voice
// configuration time, and must fully populate dst; a window that
// extends past the payload is zero-filled, never read out of bounds.
//
// frameOffset is an absolute frame position within data. dst holds
// len(dst)/channels frames.
type Decoder interface {
	Decode(data []byte, frameOffset int, dst []int16)
}
