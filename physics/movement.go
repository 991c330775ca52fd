package physics

import (
	"github.com/lixenwraith/neural-field/vmath"
)

// CapSpeed limits the velocity vector magnitude to maxSpeed
// Returns true if velocity was clamped
func CapSpeed(velX, velY *float64, maxSpeed float64) bool {
	if vmath.MagnitudeSq(*velX, *velY) <= maxSpeed*maxSpeed {
		return false
	}
	*velX, *velY = vmath.ClampMagnitude(*velX, *velY, maxSpeed)
	return true
}
