package wav

import "errors"

var (
	ErrNotWavFile          = errors.New("not a WAV file")
	ErrOnlyPCMSupported    = errors.New("only uncompressed PCM supported")
	ErrUnsupportedBitDepth = errors.New("only 8-bit and 16-bit PCM supported")
	ErrInvalidBlockAlign   = errors.New("ADPCM block align too small for the channel count")
)
