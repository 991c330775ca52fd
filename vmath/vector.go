package vmath

import "math"

// MagnitudeSq returns squared magnitude without sqrt
func MagnitudeSq(x, y float64) float64 {
	return x*x + y*y
}

// Magnitude returns vector length
func Magnitude(x, y float64) float64 {
	return math.Sqrt(x*x + y*y)
}

// DistanceSq returns squared distance between two points
func DistanceSq(x1, y1, x2, y2 float64) float64 {
	dx := x1 - x2
	dy := y1 - y2
	return dx*dx + dy*dy
}

// Normalize2D returns unit vector, zero-safe
func Normalize2D(x, y float64) (nx, ny float64) {
	magSq := x*x + y*y
	if magSq == 0 {
		return 0, 0
	}
	inv := 1 / math.Sqrt(magSq)
	return x * inv, y * inv
}

// ClampMagnitude limits vector to maxMag while preserving direction
// Returns unchanged vector if magnitude <= maxMag
func ClampMagnitude(x, y, maxMag float64) (cx, cy float64) {
	magSq := x*x + y*y
	if magSq <= maxMag*maxMag || magSq == 0 {
		return x, y
	}
	scale := maxMag / math.Sqrt(magSq)
	return x * scale, y * scale
}

// LerpPoint interpolates between two points
func LerpPoint(x1, y1, x2, y2, t float64) (x, y float64) {
	return x1 + (x2-x1)*t, y1 + (y2-y1)*t
}
