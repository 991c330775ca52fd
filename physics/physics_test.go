package physics

import (
	"math"
	"testing"

	"github.com/lixenwraith/neural-field/vmath"
)

func TestApproachVelocityConverges(t *testing.T) {
	vx, vy := 0.0, 0.0
	for i := 0; i < 500; i++ {
		ApproachVelocity(&vx, &vy, 1, -1, 0.05)
	}
	if math.Abs(vx-1) > 1e-6 || math.Abs(vy+1) > 1e-6 {
		t.Errorf("velocity did not converge: (%v, %v)", vx, vy)
	}
}

func TestApproachVelocityIsGradual(t *testing.T) {
	vx, vy := 0.0, 0.0
	ApproachVelocity(&vx, &vy, 1, 0, 0.05)
	if math.Abs(vx-0.05) > 1e-12 {
		t.Errorf("first step = %v, want 0.05", vx)
	}
}

func TestWrapAxis(t *testing.T) {
	tests := []struct {
		name    string
		v, size float64
		want    float64
		wrapped bool
	}{
		{"Inside", 5, 10, 5, false},
		{"Below zero", -0.1, 10, 10, true},
		{"Above size", 10.1, 10, 0, true},
		{"On edge", 10, 10, 10, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := tt.v
			got := WrapAxis(&v, tt.size)
			if got != tt.wrapped || v != tt.want {
				t.Errorf("WrapAxis(%v, %v) = %v (%v), want %v (%v)", tt.v, tt.size, v, got, tt.want, tt.wrapped)
			}
		})
	}
}

func TestSoftBounceAxis(t *testing.T) {
	rng := vmath.NewFastRand(1)
	profile := &BounceProfile{Margin: 20, Damping: -0.95, Jitter: 0.05}

	pos, targetV := 15.0, -1.0
	if !SoftBounceAxis(&pos, &targetV, 20, 780, profile, rng) {
		t.Fatal("expected bounce below margin")
	}
	if pos != 20 {
		t.Errorf("pos not clamped: %v", pos)
	}
	// -1 * -0.95 = 0.95, jitter within ±0.025
	if targetV < 0.925 || targetV > 0.975 {
		t.Errorf("target velocity after bounce = %v", targetV)
	}

	pos, targetV = 400, 1
	if SoftBounceAxis(&pos, &targetV, 20, 780, profile, rng) {
		t.Error("no bounce expected inside bounds")
	}
	if targetV != 1 {
		t.Error("target velocity must be untouched inside bounds")
	}
}

func TestAxisBoundsCollapse(t *testing.T) {
	lo, hi := AxisBounds(30, 20)
	if lo != 15 || hi != 15 {
		t.Errorf("AxisBounds(30, 20) = (%v, %v), want (15, 15)", lo, hi)
	}
	lo, hi = AxisBounds(800, 20)
	if lo != 20 || hi != 780 {
		t.Errorf("AxisBounds(800, 20) = (%v, %v)", lo, hi)
	}
}

func TestApplyAttraction(t *testing.T) {
	profile := &AttractProfile{Radius: 200, Gain: 0.15, DepthGain: 0.5, MaxSpeed: 2}

	t.Run("Outside radius", func(t *testing.T) {
		vx, vy := 0.0, 0.0
		if ApplyAttraction(&vx, &vy, 0, 0, 300, 0, 0.5, profile) {
			t.Error("no force expected outside radius")
		}
	})

	t.Run("Pulls toward pointer", func(t *testing.T) {
		vx, vy := 0.0, 0.0
		if !ApplyAttraction(&vx, &vy, 0, 0, 100, 0, 0, profile) {
			t.Fatal("force expected inside radius")
		}
		// ((200-100)/200)^2 * 0.15 = 0.0375
		if math.Abs(vx-0.0375) > 1e-9 || vy != 0 {
			t.Errorf("velocity = (%v, %v), want (0.0375, 0)", vx, vy)
		}
	})

	t.Run("Caps speed", func(t *testing.T) {
		vx, vy := 5.0, 0.0
		ApplyAttraction(&vx, &vy, 0, 0, 10, 0, 1, profile)
		if vmath.Magnitude(vx, vy) > 2+1e-9 {
			t.Errorf("speed not capped: %v", vmath.Magnitude(vx, vy))
		}
	})

	t.Run("Zero distance ignored", func(t *testing.T) {
		vx, vy := 0.0, 0.0
		if ApplyAttraction(&vx, &vy, 5, 5, 5, 5, 0, profile) {
			t.Error("no force expected at zero distance")
		}
	})
}
