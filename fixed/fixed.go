// SPDX-License-Identifier: EPL-2.0

// Package fixed implements the Q32.32 fixed-point values used for
// playback positions and resample stepping.
//
// Sample-rate conversion has to walk a source stream at a fractional
// speed for millions of blocks without drifting. Floating point
// accumulates error; a 64-bit fixed-point offset does not. A Value
// stores the integer part in the high 32 bits and the fraction in the
// low 32 bits:
//
//	00000000000000000000000000000001 10000000000000000000000000000000
//	^ integer part (1)               ^ fraction part (0.5)
//
// which represents 1.5.
package fixed

const precision = 32

// One is the fixed-point representation of 1.0.
const One Value = 1 << precision

const fractionMask = One - 1

// Value is a Q32.32 fixed-point number.
type Value uint64

// FromFloat converts f to fixed-point, rounding half up.
func FromFloat(f float64) Value {
	return Value(f*float64(One) + 0.5)
}

// Float converts v back to a float64. The conversion is exact for the
// integer part; the fraction keeps its full 32 bits of precision.
func (v Value) Float() float64 {
	return float64(v>>precision) + float64(v&fractionMask)*(1.0/float64(One))
}

// Whole returns the integer part of v.
func (v Value) Whole() uint64 {
	return uint64(v >> precision)
}

// Frac returns v with the integer part dropped.
func (v Value) Frac() Value {
	return v & fractionMask
}
