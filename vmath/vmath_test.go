package vmath

import (
	"math"
	"testing"
)

func TestFastRandFloat64Range(t *testing.T) {
	rng := NewFastRand(42)
	for i := 0; i < 10000; i++ {
		v := rng.Float64()
		if v < 0 || v >= 1 {
			t.Fatalf("Float64 out of range at %d: %f", i, v)
		}
	}
}

func TestFastRandZeroSeed(t *testing.T) {
	rng := NewFastRand(0)
	if rng.Next() == 0 {
		t.Error("zero seed must not produce a stuck generator")
	}
}

func TestFastRandCentered(t *testing.T) {
	rng := NewFastRand(7)
	for i := 0; i < 1000; i++ {
		v := rng.Centered(0.3)
		if v < -0.15 || v >= 0.15 {
			t.Fatalf("Centered(0.3) out of range: %f", v)
		}
	}
}

func TestClampMagnitude(t *testing.T) {
	tests := []struct {
		name         string
		x, y, max    float64
		wantX, wantY float64
	}{
		{"Below limit", 1, 1, 2, 1, 1},
		{"Zero vector", 0, 0, 2, 0, 0},
		{"Above limit", 3, 4, 2, 1.2, 1.6},
		{"Exactly at limit", 0, 2, 2, 0, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := ClampMagnitude(tt.x, tt.y, tt.max)
			if math.Abs(x-tt.wantX) > 1e-9 || math.Abs(y-tt.wantY) > 1e-9 {
				t.Errorf("ClampMagnitude(%v, %v, %v) = (%v, %v), want (%v, %v)",
					tt.x, tt.y, tt.max, x, y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestNormalize2DZeroSafe(t *testing.T) {
	x, y := Normalize2D(0, 0)
	if x != 0 || y != 0 {
		t.Errorf("expected zero vector, got (%v, %v)", x, y)
	}
	x, y = Normalize2D(3, 4)
	if math.Abs(Magnitude(x, y)-1) > 1e-9 {
		t.Errorf("expected unit vector, got magnitude %v", Magnitude(x, y))
	}
}

func TestRectNearestEdge(t *testing.T) {
	r := Rect{X: 0, Y: 0, Width: 100, Height: 50}

	tests := []struct {
		name         string
		x, y         float64
		wantX, wantY float64
	}{
		{"Near left", 10, 25, 0, 25},
		{"Near right", 95, 25, 100, 25},
		{"Near top", 50, 5, 50, 0},
		{"Near bottom", 50, 45, 50, 50},
		{"Outside clamps", 150, 25, 100, 25},
		{"On edge", 0, 25, 0, 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := r.NearestEdge(tt.x, tt.y)
			if x != tt.wantX || y != tt.wantY {
				t.Errorf("NearestEdge(%v, %v) = (%v, %v), want (%v, %v)", tt.x, tt.y, x, y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestRectContainsInclusive(t *testing.T) {
	r := Rect{X: 10, Y: 10, Width: 10, Height: 10}
	if !r.Contains(10, 10) || !r.Contains(20, 20) {
		t.Error("edges must be inside")
	}
	if r.Contains(20.01, 15) {
		t.Error("point past right edge must be outside")
	}
}
