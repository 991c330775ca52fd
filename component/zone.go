package component

import "github.com/lixenwraith/neural-field/vmath"

// ExclusionZone is a host-supplied rectangle entities are kept out of
type ExclusionZone struct {
	X, Y          float64
	Width, Height float64
	Strength      float64 // Repulsion/fade multiplier, 0 means default
}

// Rect returns the zone bounds
func (z ExclusionZone) Rect() vmath.Rect {
	return vmath.Rect{X: z.X, Y: z.Y, Width: z.Width, Height: z.Height}
}

// EffectiveStrength returns Strength, or defaultStrength when unset
func (z ExclusionZone) EffectiveStrength(defaultStrength float64) float64 {
	if z.Strength <= 0 {
		return defaultStrength
	}
	return z.Strength
}
