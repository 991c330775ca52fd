package physics

// ApproachVelocity closes lerp of the gap between velocity and target velocity
func ApproachVelocity(vx, vy *float64, targetVX, targetVY, lerp float64) {
	*vx += (targetVX - *vx) * lerp
	*vy += (targetVY - *vy) * lerp
}

// Integrate advances position by one frame of velocity, no delta-time scaling
func Integrate(x, y *float64, vx, vy float64) {
	*x += vx
	*y += vy
}

// Damp scales a velocity pair by factor
func Damp(vx, vy *float64, factor float64) {
	*vx *= factor
	*vy *= factor
}

// WrapAxis moves a coordinate that left [0, size] to the opposite edge
// Returns true if wrapping occurred
func WrapAxis(v *float64, size float64) bool {
	if *v < 0 {
		*v = size
		return true
	}
	if *v > size {
		*v = 0
		return true
	}
	return false
}
