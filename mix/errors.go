// SPDX-License-Identifier: EPL-2.0

package mix

import "errors"

var (
	ErrInvalidBlockSize    = errors.New("block size must be positive")
	ErrInvalidChannelCount = errors.New("channel count must be positive")
	ErrInvalidSampleRate   = errors.New("sample rate must be positive")
	ErrChannelVolumeCount  = errors.New("channel volume count must match voice channels")
	ErrCoefficientCount    = errors.New("send coefficients must be destination channels times source channels")
	ErrSendRateMismatch    = errors.New("send targets must share one input sample rate")
	ErrNoPlayLength        = errors.New("buffer play length must be positive")
	ErrPlayOutOfRange      = errors.New("play window must lie within the buffer payload")
	ErrLoopOutOfRange      = errors.New("loop window must lie within the play window")
	ErrNilDecoder          = errors.New("source voice requires a decoder")
	ErrNilResampler        = errors.New("submix voice requires a resampler")
	ErrNegativeStage       = errors.New("processing stage must be non-negative")
)
