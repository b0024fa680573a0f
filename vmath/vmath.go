package vmath

import "math"

// ClampF restricts v to [lo, hi]
func ClampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Deg converts degrees to radians
func Deg(d float64) float64 {
	return d * math.Pi / 180
}

// MirrorAngle reflects an angle across the vertical axis
func MirrorAngle(a float64) float64 {
	return math.Pi - a
}

// ApproxEqual reports whether a and b differ by less than eps
func ApproxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) < eps
}
