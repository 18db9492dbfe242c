// SPDX-License-Identifier: EPL-2.0

package decode

import "encoding/binary"

// The PCM decoders widen signed payload samples to 16-bit: 8-bit
// samples shift left by eight, 16-bit samples copy through. Each
// clamps its window to the payload and zero-fills whatever the payload
// cannot supply.

type monoPCM8 struct{}

func (monoPCM8) Decode(data []byte, frameOffset int, dst []int16) {
	avail := len(data) - frameOffset
	n := clampFrames(len(dst), avail)
	for i := 0; i < n; i++ {
		dst[i] = int16(int8(data[frameOffset+i])) << 8
	}
	zeroTail(dst, n)
}

type stereoPCM8 struct{}

func (stereoPCM8) Decode(data []byte, frameOffset int, dst []int16) {
	avail := len(data)/2 - frameOffset
	n := clampFrames(len(dst)/2, avail)
	for i := 0; i < n; i++ {
		dst[i*2] = int16(int8(data[(frameOffset+i)*2])) << 8
		dst[i*2+1] = int16(int8(data[(frameOffset+i)*2+1])) << 8
	}
	zeroTail(dst, n*2)
}

type monoPCM16 struct{}

func (monoPCM16) Decode(data []byte, frameOffset int, dst []int16) {
	avail := len(data)/2 - frameOffset
	n := clampFrames(len(dst), avail)
	for i := 0; i < n; i++ {
		dst[i] = int16(binary.LittleEndian.Uint16(data[(frameOffset+i)*2:]))
	}
	zeroTail(dst, n)
}

type stereoPCM16 struct{}

func (stereoPCM16) Decode(data []byte, frameOffset int, dst []int16) {
	avail := len(data)/4 - frameOffset
	n := clampFrames(len(dst)/2, avail)
	for i := 0; i < n*2; i++ {
		dst[i] = int16(binary.LittleEndian.Uint16(data[frameOffset*4+i*2:]))
	}
	zeroTail(dst, n*2)
}

func clampFrames(want, avail int) int {
	if avail < 0 {
		return 0
	}
	if want > avail {
		return avail
	}
	return want
}

func zeroTail(dst []int16, from int) {
	for i := from; i < len(dst); i++ {
		dst[i] = 0
	}
}
