package vmath

// ClampF limits v to [lo, hi]
func ClampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// LerpF interpolates between a and b, t is not clamped
func LerpF(a, b, t float64) float64 {
	return a + (b-a)*t
}
