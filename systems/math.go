package systems

import "math"

// sqrtf computes the square root in float32.
func sqrtf(v float32) float32 {
	return float32(math.Sqrt(float64(v)))
}

// limit scales (x, y) down to maxMag if it is longer.
// Zero vectors are left untouched.
func limit(x, y, maxMag float32) (float32, float32) {
	magSq := x*x + y*y
	if magSq > maxMag*maxMag {
		mag := sqrtf(magSq)
		if mag > 0 {
			return x / mag * maxMag, y / mag * maxMag
		}
	}
	return x, y
}

// setMag rescales (x, y) to magnitude m. Zero vectors stay zero.
func setMag(x, y, m float32) (float32, float32) {
	magSq := x*x + y*y
	if magSq > 0 {
		mag := sqrtf(magSq)
		return x / mag * m, y / mag * m
	}
	return x, y
}

// clampInt clamps v to [lo, hi].
func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// absInt returns |v|.
func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
