// SPDX-License-Identifier: EPL-2.0

// Package decode provides the built-in sample decoders: uncompressed
// 8/16-bit PCM and Microsoft ADPCM, each specialized for mono and
// stereo. ForFormat selects the matching decoder for a payload format
// at voice-configuration time.
//
// Every decoder is bounds-checked: a decode window that extends past
// the payload produces zeros for the missing span instead of reading
// out of range. The mixing core relies on this to decode a little
// lookahead padding past the logical end of a buffer.
package decode

import "github.com/ik5/audmix/mix"

// ForFormat selects the built-in decoder for f. Formats with
// mix.TagExternal carry their own codec and are not resolved here.
func ForFormat(f mix.Format) (mix.Decoder, error) {
	switch f.Tag {
	case mix.TagPCM:
		switch f.BitsPerSample {
		case 8:
			switch f.Channels {
			case 1:
				return monoPCM8{}, nil
			case 2:
				return stereoPCM8{}, nil
			}
			return nil, ErrUnsupportedChannels
		case 16:
			switch f.Channels {
			case 1:
				return monoPCM16{}, nil
			case 2:
				return stereoPCM16{}, nil
			}
			return nil, ErrUnsupportedChannels
		}
		return nil, ErrUnsupportedFormat
	case mix.TagMSADPCM:
		if f.BlockAlign <= 0 {
			return nil, ErrUnsupportedFormat
		}
		switch f.Channels {
		case 1:
			return newMonoMSADPCM(f.BlockAlign), nil
		case 2:
			return newStereoMSADPCM(f.BlockAlign), nil
		}
		return nil, ErrUnsupportedChannels
	}
	return nil, ErrUnsupportedFormat
}
