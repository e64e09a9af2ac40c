package common

import "math"

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// Signum returns 1 or -1 following the sign bit of v, so +0 maps to 1 and
// -0 maps to -1. It never returns 0.
func Signum(v float64) float64 {
	return math.Copysign(1, v)
}
