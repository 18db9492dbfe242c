// SPDX-License-Identifier: EPL-2.0

package decode

import "errors"

var (
	ErrUnsupportedFormat   = errors.New("unsupported payload format")
	ErrUnsupportedChannels = errors.New("only mono and stereo payloads supported")
)
