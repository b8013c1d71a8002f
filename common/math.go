package common

import "github.com/jakecoffman/cp"

// ClampInt bounds v to [lo, hi].
func ClampInt(v, lo, hi int) int {
	return int(cp.Clamp(float64(v), float64(lo), float64(hi)))
}

// Sign returns -1, 0 or 1.
func Sign(v float64) float64 {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}

// Approach moves v toward zero by step without crossing it.
func Approach(v, step float64) float64 {
	if v > 0 {
		v -= step
		if v < 0 {
			return 0
		}
		return v
	}
	if v < 0 {
		v += step
		if v > 0 {
			return 0
		}
	}
	return v
}
