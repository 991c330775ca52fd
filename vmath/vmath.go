package vmath

import (
	"math"
)

// TwoPi is a full turn in radians
const TwoPi = 2 * math.Pi

// --- Arithmetic ---

// Clamp bounds v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Clamp01 bounds v to [0, 1]
func Clamp01(v float64) float64 {
	return Clamp(v, 0, 1)
}

// Lerp linearly interpolates from a to b, t is not clamped
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Sq returns v*v
func Sq(v float64) float64 {
	return v * v
}

// --- Randomness ---

// FastRand is a xorshift64 generator, one per owner, not safe for concurrent use
type FastRand struct {
	state uint64
}

func NewFastRand(seed uint64) *FastRand {
	if seed == 0 {
		seed = 1
	}
	return &FastRand{state: seed}
}

func (r *FastRand) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

func (r *FastRand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}

// Float64 returns a value in [0, 1) from the top 53 bits
func (r *FastRand) Float64() float64 {
	return float64(r.Next()>>11) / (1 << 53)
}

// Range returns a value in [lo, lo+span)
func (r *FastRand) Range(lo, span float64) float64 {
	return lo + r.Float64()*span
}

// Centered returns a value in [-0.5, 0.5) scaled by s
func (r *FastRand) Centered(s float64) float64 {
	return (r.Float64() - 0.5) * s
}
