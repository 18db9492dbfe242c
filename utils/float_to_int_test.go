// SPDX-License-Identifier: EPL-2.0

package utils

import "testing"

func TestFloat32ToInt16(t *testing.T) {
	t.Parallel()

	// The scale is 32767 on both sides and conversion truncates toward
	// zero, so every expectation here is exact.
	tests := []struct {
		name  string
		input float32
		want  int16
	}{
		{name: "silence", input: 0.0, want: 0},
		{name: "full scale", input: 1.0, want: 32767},
		{name: "full scale negative", input: -1.0, want: -32767},
		{name: "half scale", input: 0.5, want: 16383},
		{name: "half scale negative", input: -0.5, want: -16383},
		{name: "quarter scale", input: 0.25, want: 8191},
		{name: "saturates above", input: 1.5, want: 32767},
		{name: "saturates below", input: -1.5, want: -32767},
		{name: "saturates far above", input: 1e9, want: 32767},
		{name: "saturates far below", input: -1e9, want: -32767},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			if got := Float32ToInt16(tc.input); got != tc.want {
				t.Errorf("Float32ToInt16(%v) = %v, want %v", tc.input, got, tc.want)
			}
		})
	}
}

func TestFloat32ToInt16_Symmetric(t *testing.T) {
	t.Parallel()

	// Truncation toward zero makes the conversion an odd function, so a
	// sample and its negation never differ in magnitude.
	for _, v := range []float32{0.1, 0.25, 0.5, 0.75, 0.9, 0.99, 1.0, 2.0} {
		if pos, neg := Float32ToInt16(v), Float32ToInt16(-v); pos != -neg {
			t.Errorf("Float32ToInt16(±%v) = %v and %v, want mirrored", v, pos, neg)
		}
	}
}

func TestFloat32ToInt16_Monotonic(t *testing.T) {
	t.Parallel()

	prev := Float32ToInt16(-2.0)
	for i := -199; i <= 200; i++ {
		curr := Float32ToInt16(float32(i) / 100.0)
		if curr < prev {
			t.Fatalf("Float32ToInt16(%v) = %v below previous %v", float32(i)/100.0, curr, prev)
		}
		prev = curr
	}
}

func BenchmarkFloat32ToInt16(b *testing.B) {
	// A block's worth of conversions, the shape the render loop runs.
	in := make([]float32, 1024)
	out := make([]int16, 1024)
	for i := range in {
		in[i] = float32(i%200-100) / 100.0
	}

	b.ReportAllocs()
	for n := 0; n < b.N; n++ {
		for i := range in {
			out[i] = Float32ToInt16(in[i])
		}
	}
}
