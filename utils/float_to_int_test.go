// SPDX-License-Identifier: EPL-2.0

package utils

import "testing"

func TestFloat64ToInt16(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   float64
		want int16
	}{
		{"zero", 0, 0},
		{"half scale", 0.5, 16384},
		{"negative half scale", -0.5, -16384},
		{"full scale clamps", 1.0, 32767},
		{"negative full scale", -1.0, -32768},
		{"above range clamps", 2.5, 32767},
		{"below range clamps", -2.5, -32768},
		{"rounds to nearest", 0.50001, 16384},
		{"small value", 1.0 / 32768.0, 1},
		{"rounds half away from zero", 1.5 / 32768.0, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Float64ToInt16(tt.in); got != tt.want {
				t.Errorf("Float64ToInt16(%v) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestInt16ToFloat64(t *testing.T) {
	t.Parallel()

	if got := Int16ToFloat64(16384); got != 0.5 {
		t.Errorf("Int16ToFloat64(16384) = %v, want 0.5", got)
	}
	if got := Int16ToFloat64(-32768); got != -1.0 {
		t.Errorf("Int16ToFloat64(-32768) = %v, want -1", got)
	}
	if got := Int16ToFloat64(0); got != 0 {
		t.Errorf("Int16ToFloat64(0) = %v, want 0", got)
	}
}

func TestFloat64ToInt16RoundTrip(t *testing.T) {
	t.Parallel()

	// Quantizing a value that came from an int16 must give it back.
	for _, s := range []int16{-32768, -12345, -1, 0, 1, 300, 16384, 32767} {
		if got := Float64ToInt16(Int16ToFloat64(s)); got != s {
			t.Errorf("round trip of %d = %d", s, got)
		}
	}
}
