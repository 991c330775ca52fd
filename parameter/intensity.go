package parameter

import "strings"

// Intensity selects a speed/frequency/alpha profile
type Intensity string

const (
	IntensityLow    Intensity = "low"
	IntensityMedium Intensity = "medium"
	IntensityHigh   Intensity = "high"
)

// IntensityProfile holds the values an intensity scales
type IntensityProfile struct {
	NodeSpeed      float64 // Base target speed of nodes
	PulseFrequency float64 // Per-frame probability of a pulse spawn attempt
	ParticleAlpha  float64 // Particle opacity scale
}

var intensityProfiles = map[Intensity]IntensityProfile{
	IntensityLow:    {NodeSpeed: 0.12, PulseFrequency: 0.0015, ParticleAlpha: 0.18},
	IntensityMedium: {NodeSpeed: 0.22, PulseFrequency: 0.004, ParticleAlpha: 0.28},
	IntensityHigh:   {NodeSpeed: 0.35, PulseFrequency: 0.007, ParticleAlpha: 0.38},
}

// Profile returns the profile for i, unknown values fall back to medium
func (i Intensity) Profile() IntensityProfile {
	if p, ok := intensityProfiles[i]; ok {
		return p
	}
	return intensityProfiles[IntensityMedium]
}

// Valid reports whether i names a known profile
func (i Intensity) Valid() bool {
	_, ok := intensityProfiles[i]
	return ok
}

// ParseIntensity normalizes user input, ok is false for unknown names
func ParseIntensity(s string) (Intensity, bool) {
	i := Intensity(strings.ToLower(strings.TrimSpace(s)))
	return i, i.Valid()
}
