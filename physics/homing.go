package physics

import (
	"math"
)

// AttractProfile defines pointer attraction parameters
type AttractProfile struct {
	Radius    float64 // Capture radius, no force at or beyond
	Gain      float64 // Force multiplier after quadratic falloff
	DepthGain float64 // Extra response per unit of depth
	MaxSpeed  float64 // Ceiling applied to the resulting velocity
}

// ApplyAttraction pulls a target velocity toward (px, py) from (x, y)
// Force falls off quadratically from the pointer to the capture radius
// Returns true if the point was inside the radius and force was applied
func ApplyAttraction(targetVX, targetVY *float64, x, y, px, py, depth float64, profile *AttractProfile) bool {
	dx := px - x
	dy := py - y
	distSq := dx*dx + dy*dy
	if distSq >= profile.Radius*profile.Radius || distSq == 0 {
		return false
	}

	dist := math.Sqrt(distSq)
	falloff := (profile.Radius - dist) / profile.Radius
	force := falloff * falloff * profile.Gain * (1 + depth*profile.DepthGain)
	inv := 1 / dist
	*targetVX += dx * inv * force
	*targetVY += dy * inv * force

	CapSpeed(targetVX, targetVY, profile.MaxSpeed)
	return true
}
