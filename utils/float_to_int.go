package utils

import "math"

func Float64ToInt16(x float64) int16 {
	// Clamp, scale by 2^15, round to nearest
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	v := math.Round(x * 32768.0)

	// 2^15 overflows the positive side by one
	if v > 32767 {
		v = 32767
	}

	return int16(v)
}

func Int16ToFloat64(s int16) float64 {
	return float64(s) / 32768.0
}
