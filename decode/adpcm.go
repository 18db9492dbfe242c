// SPDX-License-Identifier: EPL-2.0

package decode

import "encoding/binary"

// Microsoft ADPCM: 4-bit predictive coding in self-contained blocks.
// Each block opens with a preamble carrying the predictor index, the
// initial delta and two seed samples per channel, followed by packed
// nibbles. A block of alignment a expands to (a+16)*2 frames.

var adaptionTable = [16]int32{
	230, 230, 230, 230, 307, 409, 512, 614,
	768, 614, 512, 409, 307, 230, 230, 230,
}

var adaptCoeff1 = [7]int32{256, 512, 0, 192, 240, 460, 392}

var adaptCoeff2 = [7]int32{0, -256, 0, 64, 0, -208, -232}

// adpcmState is the per-channel predictor state threaded through a
// block's nibbles.
type adpcmState struct {
	predictor uint8
	delta     int16
	sample1   int16
	sample2   int16
}

func parseNibble(nibble uint8, st *adpcmState) int16 {
	signed := int32(nibble)
	if signed&0x08 != 0 {
		signed -= 0x10
	}

	sample := (int32(st.sample1)*adaptCoeff1[st.predictor] +
		int32(st.sample2)*adaptCoeff2[st.predictor]) / 256
	sample += signed * int32(st.delta)
	if sample > 32767 {
		sample = 32767
	} else if sample < -32768 {
		sample = -32768
	}

	st.sample2 = st.sample1
	st.sample1 = int16(sample)
	st.delta = int16(adaptionTable[nibble] * int32(st.delta) / 256)
	if st.delta < 16 {
		st.delta = 16
	}
	return int16(sample)
}

func readState(b []byte, stride, channel int) adpcmState {
	st := adpcmState{
		predictor: b[channel],
		delta:     int16(binary.LittleEndian.Uint16(b[stride+channel*2:])),
		sample1:   int16(binary.LittleEndian.Uint16(b[stride*3+channel*2:])),
		sample2:   int16(binary.LittleEndian.Uint16(b[stride*5+channel*2:])),
	}
	if st.predictor > 6 {
		st.predictor = 6
	}
	return st
}

type monoMSADPCM struct {
	align      int
	blockCache []int16
}

func newMonoMSADPCM(align int) *monoMSADPCM {
	return &monoMSADPCM{
		align:      align,
		blockCache: make([]int16, (align+16)*2),
	}
}

func (d *monoMSADPCM) Decode(data []byte, frameOffset int, dst []int16) {
	blockFrames := (d.align + 16) * 2
	blockBytes := d.align + 22

	pos := (frameOffset / blockFrames) * blockBytes
	mid := frameOffset % blockFrames

	out := 0
	for out < len(dst) {
		if pos+blockBytes > len(data) {
			zeroTail(dst, out)
			return
		}
		d.decodeBlock(data[pos : pos+blockBytes])

		n := len(dst) - out
		if n > blockFrames-mid {
			n = blockFrames - mid
		}
		copy(dst[out:out+n], d.blockCache[mid:mid+n])
		out += n
		pos += blockBytes
		mid = 0
	}
}

func (d *monoMSADPCM) decodeBlock(block []byte) {
	st := readState(block, 1, 0)
	d.blockCache[0] = st.sample1
	d.blockCache[1] = st.sample2

	out := 2
	for _, nb := range block[7:] {
		d.blockCache[out] = parseNibble(nb>>4, &st)
		d.blockCache[out+1] = parseNibble(nb&0x0F, &st)
		out += 2
	}
}

type stereoMSADPCM struct {
	align      int
	blockCache []int16
}

func newStereoMSADPCM(align int) *stereoMSADPCM {
	return &stereoMSADPCM{
		align:      align,
		blockCache: make([]int16, (align+16)*4),
	}
}

func (d *stereoMSADPCM) Decode(data []byte, frameOffset int, dst []int16) {
	blockFrames := (d.align + 16) * 2
	blockBytes := (d.align + 22) * 2

	pos := (frameOffset / blockFrames) * blockBytes
	mid := frameOffset % blockFrames

	out := 0
	frames := len(dst) / 2
	for out < frames {
		if pos+blockBytes > len(data) {
			zeroTail(dst, out*2)
			return
		}
		d.decodeBlock(data[pos : pos+blockBytes])

		n := frames - out
		if n > blockFrames-mid {
			n = blockFrames - mid
		}
		copy(dst[out*2:(out+n)*2], d.blockCache[mid*2:(mid+n)*2])
		out += n
		pos += blockBytes
		mid = 0
	}
}

func (d *stereoMSADPCM) decodeBlock(block []byte) {
	left := readState(block, 2, 0)
	right := readState(block, 2, 1)
	d.blockCache[0] = left.sample2
	d.blockCache[1] = right.sample2
	d.blockCache[2] = left.sample1
	d.blockCache[3] = right.sample1

	out := 4
	for _, nb := range block[14:] {
		d.blockCache[out] = parseNibble(nb>>4, &left)
		d.blockCache[out+1] = parseNibble(nb&0x0F, &right)
		out += 2
	}
}
