package component

import "testing"

func TestTrailEvictsOldestFirst(t *testing.T) {
	var tr Trail
	for i := 0; i < TrailCapacity+3; i++ {
		tr.Push(float64(i), float64(-i))
		if tr.Len() > TrailCapacity {
			t.Fatalf("trail exceeded capacity: %d", tr.Len())
		}
	}

	if tr.Len() != TrailCapacity {
		t.Fatalf("expected full trail, got %d", tr.Len())
	}

	// Oldest three (0,1,2) evicted
	for i := 0; i < TrailCapacity; i++ {
		p := tr.At(i)
		if p.X != float64(i+3) {
			t.Errorf("At(%d).X = %v, want %v", i, p.X, float64(i+3))
		}
	}
}

func TestTrailPartial(t *testing.T) {
	var tr Trail
	tr.Push(1, 1)
	tr.Push(2, 2)

	pts := tr.Points()
	if len(pts) != 2 || pts[0].X != 1 || pts[1].X != 2 {
		t.Errorf("unexpected points: %+v", pts)
	}
}

func TestNodeConnected(t *testing.T) {
	n := Node{Connections: []int{3, 5}}
	if !n.Connected(5) || n.Connected(4) {
		t.Error("Connected mismatch")
	}
}

func TestZoneEffectiveStrength(t *testing.T) {
	if s := (ExclusionZone{}).EffectiveStrength(1); s != 1 {
		t.Errorf("unset strength = %v, want 1", s)
	}
	if s := (ExclusionZone{Strength: 2.5}).EffectiveStrength(1); s != 2.5 {
		t.Errorf("explicit strength = %v, want 2.5", s)
	}
}
