package field

import (
	"math"
	"testing"

	"github.com/lixenwraith/neural-field/component"
)

func TestZoneRepulsionNoZones(t *testing.T) {
	points := [][2]float64{{0, 0}, {100, 50}, {-20, 3000}, {1e6, -1e6}}
	for _, p := range points {
		rep := ZoneRepulsion(p[0], p[1], nil)
		if rep.X != 0 || rep.Y != 0 || rep.Alpha != 1 {
			t.Errorf("ZoneRepulsion(%v) = %+v, want zero push and alpha 1", p, rep)
		}
		if fade := ZoneFade(p[0], p[1], nil); fade != 1 {
			t.Errorf("ZoneFade(%v) = %v, want 1", p, fade)
		}
	}
}

func TestZoneFade(t *testing.T) {
	zones := []component.ExclusionZone{{X: 100, Y: 100, Width: 200, Height: 100}}

	tests := []struct {
		name string
		x, y float64
		want float64
	}{
		{"Inside", 150, 150, 0},
		{"On edge", 100, 150, 0},
		{"Far away", 0, 0, 1},
		{"Exactly feather distance", 50, 150, 1},
		{"Half feather", 75, 150, 0.5},
		{"Just outside", 99, 150, 0.02},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ZoneFade(tt.x, tt.y, zones)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("ZoneFade(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestZoneFadeTakesMostRestrictive(t *testing.T) {
	zones := []component.ExclusionZone{
		{X: 0, Y: 0, Width: 10, Height: 10},   // 40 units away
		{X: 60, Y: 0, Width: 10, Height: 10},  // 10 units away
		{X: 500, Y: 0, Width: 10, Height: 10}, // out of range
	}
	got := ZoneFade(50, 5, zones)
	want := 1 - (50.0-10.0)/50.0
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("ZoneFade = %v, want %v", got, want)
	}
}

func TestZoneFadeStrongZoneClampsAtZero(t *testing.T) {
	zones := []component.ExclusionZone{{X: 100, Y: 0, Width: 10, Height: 10, Strength: 5}}
	if got := ZoneFade(90, 5, zones); got != 0 {
		t.Errorf("ZoneFade = %v, want 0", got)
	}
}

func TestZoneRepulsionInsidePushesTowardNearestEdge(t *testing.T) {
	zones := []component.ExclusionZone{{X: 0, Y: 0, Width: 200, Height: 100}}

	// Closer to the left edge than any other
	rep := ZoneRepulsion(20, 50, zones)
	if rep.Alpha != 0 {
		t.Errorf("alpha inside zone = %v, want 0", rep.Alpha)
	}
	if math.Abs(rep.X+0.2) > 1e-9 || rep.Y != 0 {
		t.Errorf("repulsion = (%v, %v), want (-0.2, 0)", rep.X, rep.Y)
	}

	// Strength scales the push
	zones[0].Strength = 2
	rep = ZoneRepulsion(20, 50, zones)
	if math.Abs(rep.X+0.4) > 1e-9 {
		t.Errorf("strength 2 repulsion X = %v, want -0.4", rep.X)
	}
}

func TestZoneRepulsionOnBoundaryHasNoForce(t *testing.T) {
	zones := []component.ExclusionZone{{X: 0, Y: 0, Width: 200, Height: 100}}
	rep := ZoneRepulsion(0, 50, zones)
	if rep.X != 0 || rep.Y != 0 {
		t.Errorf("repulsion on boundary = (%v, %v), want zero", rep.X, rep.Y)
	}
	if rep.Alpha != 0 {
		t.Errorf("alpha on boundary = %v, want 0", rep.Alpha)
	}
}

func TestZoneRepulsionDoesNotMutateZones(t *testing.T) {
	zones := []component.ExclusionZone{{X: 1, Y: 2, Width: 3, Height: 4}}
	before := zones[0]
	ZoneRepulsion(2, 3, zones)
	ZoneFade(2, 3, zones)
	if zones[0] != before {
		t.Errorf("zone mutated: %+v -> %+v", before, zones[0])
	}
}
