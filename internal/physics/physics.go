// Package physics provides the small amount of 2D math the game needs:
// vectors, clamping and interval checks.
package physics

// Vec is a 2D point or vector.
type Vec struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

// Scale returns v multiplied by s on both axes.
func (v Vec) Scale(s float64) Vec {
	return Vec{X: v.X * s, Y: v.Y * s}
}

// Clamp limits value to the closed interval [lower, higher].
func Clamp(value, lower, higher float64) float64 {
	return max(lower, min(value, higher))
}

// Sign returns -1 for negative values and 1 otherwise (zero counts as positive).
func Sign(x float64) float64 {
	if x < 0 {
		return -1
	}
	return 1
}

// Between reports whether x lies strictly inside (lo, hi).
func Between(x, lo, hi float64) bool {
	return x > lo && x < hi
}
