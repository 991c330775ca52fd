package physics

import "github.com/lixenwraith/neural-field/vmath"

// BounceProfile defines soft edge bounce behavior
type BounceProfile struct {
	Margin  float64 // Distance kept from the edges
	Damping float64 // Multiplier on the target axis velocity, negative inverts
	Jitter  float64 // Span of the random perturbation added after bounce
}

// AxisBounds returns the allowed [lo, hi] range for an axis of the given size
// Sizes smaller than two margins collapse to the midpoint
func AxisBounds(size, margin float64) (lo, hi float64) {
	lo, hi = margin, size-margin
	if hi < lo {
		mid := size * 0.5
		return mid, mid
	}
	return lo, hi
}

// SoftBounceAxis inverts and damps the target velocity when pos leaves [lo, hi], then clamps pos
// Only the target axis is reflected, actual velocity catches up over following frames
// Returns true if a bounce occurred
func SoftBounceAxis(pos, targetV *float64, lo, hi float64, profile *BounceProfile, rng *vmath.FastRand) bool {
	if *pos >= lo && *pos <= hi {
		return false
	}
	*targetV *= profile.Damping
	*targetV += rng.Centered(profile.Jitter)
	*pos = vmath.Clamp(*pos, lo, hi)
	return true
}
