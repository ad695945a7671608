// SPDX-License-Identifier: EPL-2.0

package audplay

import "math"

// Defaults for Beep: CD-grade sample rate and a tenth of a second of
// fade on each end, enough to keep the tone click free.
const (
	DefaultBeepRate = 44100.0
	DefaultBeepRamp = 0.1
)

// sineTone synthesizes duration seconds of a frequency Hz sine wave at
// rate samples per second, with linear fade ramps of ramp seconds on
// both ends. Arguments are assumed validated.
func sineTone(duration, frequency, rate, ramp float64) []float64 {
	n := int(math.Round(duration * rate))
	if n < 1 {
		n = 1
	}

	samples := make([]float64, n)
	for k := range samples {
		samples[k] = math.Sin(2 * math.Pi * frequency * float64(k) / rate)
	}

	nr := int(math.Round(ramp * rate))
	if nr > n/2 {
		// Overlapping ramps would scale the middle twice.
		nr = n / 2
	}
	for k := 0; k < nr; k++ {
		scale := float64(k) / float64(nr)
		samples[k] *= scale
		samples[n-1-k] *= scale
	}

	return samples
}
