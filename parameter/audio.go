package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 100 * time.Millisecond
)

// Pulse Chime
const (
	ChimeFrequency     = 659.25 // Hz, E5
	ChimeOvertoneRatio = 2.76   // Bell-like inharmonic partial
	ChimeOvertoneGain  = -0.7   // effects.Gain offset, partial at 30%
	ChimeDuration      = 400 * time.Millisecond
	ChimeAttack        = 5 * time.Millisecond
	ChimeRelease       = 120 * time.Millisecond // Exponential decay time constant

	// ChimeMinGap rate-limits chimes, pulses complete in bursts at high intensity
	ChimeMinGap = 250 * time.Millisecond

	DefaultChimeVolume = 0.4
)
