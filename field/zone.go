package field

import (
	"math"

	"github.com/lixenwraith/neural-field/component"
	"github.com/lixenwraith/neural-field/parameter"
)

// Repulsion is the zone response for one point
type Repulsion struct {
	X, Y  float64 // Additive push, zero unless the point is inside a zone
	Alpha float64 // Visibility multiplier in [0,1]
}

// featherFade returns the alpha for a point at distSq from a zone edge, 1 outside the feather band
func featherFade(distSq, strength float64) float64 {
	if distSq >= parameter.ZoneFeather*parameter.ZoneFeather {
		return 1
	}
	dist := math.Sqrt(distSq)
	fade := 1 - (parameter.ZoneFeather-dist)/parameter.ZoneFeather*strength
	if fade < 0 {
		return 0
	}
	return fade
}

// ZoneFade returns the visibility multiplier of (x, y) against zones
// Inside any zone is 0, within the feather band the most restrictive zone wins
func ZoneFade(x, y float64, zones []component.ExclusionZone) float64 {
	if len(zones) == 0 {
		return 1
	}

	alpha := 1.0
	for i := range zones {
		r := zones[i].Rect()
		if r.Contains(x, y) {
			return 0
		}
		nx, ny := r.Nearest(x, y)
		dx, dy := x-nx, y-ny
		alpha = math.Min(alpha, featherFade(dx*dx+dy*dy, zones[i].EffectiveStrength(parameter.ZoneDefaultStrength)))
	}
	return alpha
}

// ZoneRepulsion returns the visibility and outward push for a node at (x, y)
// A point inside a zone is pushed toward the zone's nearest edge, a point exactly on it gets no push
func ZoneRepulsion(x, y float64, zones []component.ExclusionZone) Repulsion {
	if len(zones) == 0 {
		return Repulsion{Alpha: 1}
	}

	res := Repulsion{Alpha: 1}
	for i := range zones {
		r := zones[i].Rect()
		strength := zones[i].EffectiveStrength(parameter.ZoneDefaultStrength)

		if r.Contains(x, y) {
			res.Alpha = 0
			ex, ey := r.NearestEdge(x, y)
			dx, dy := ex-x, ey-y
			distSq := dx*dx + dy*dy
			if distSq > 0 {
				inv := 1 / math.Sqrt(distSq)
				res.X += dx * inv * parameter.ZoneRepulsion * strength
				res.Y += dy * inv * parameter.ZoneRepulsion * strength
			}
			continue
		}

		nx, ny := r.Nearest(x, y)
		dx, dy := x-nx, y-ny
		res.Alpha = math.Min(res.Alpha, featherFade(dx*dx+dy*dy, strength))
	}
	return res
}
