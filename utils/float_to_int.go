package utils

// Float32ToInt16 converts one normalized mix sample to a signed 16-bit
// value for the render output. Input outside [-1, 1] saturates; the
// scale is 32767 on both sides so +1.0 cannot wrap.
func Float32ToInt16(x float32) int16 {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	return int16(x * 32767.0)
}
