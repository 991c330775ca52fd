// Package audio plays a soft chime when a data pulse reaches its target node.
// Sound is optional: failure to open the speaker leaves the chimer silent.
package audio

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/neural-field/parameter"
	"github.com/lixenwraith/neural-field/vmath"
)

const sampleRate = beep.SampleRate(parameter.AudioSampleRate)

// Chimer mixes rate-limited chime voices into the speaker
type Chimer struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	gap         time.Duration
	last        time.Time
	initialized bool
	played      int
}

// NewChimer creates a chimer, volume in [0,1]
func NewChimer(volume float64, gap time.Duration) *Chimer {
	return &Chimer{
		mixer:  &beep.Mixer{},
		volume: vmath.Clamp01(volume),
		gap:    gap,
	}
}

// Initialize opens the speaker and starts the mixer
func (c *Chimer) Initialize() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(parameter.AudioBufferDuration)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}

	speaker.Play(c.mixer)
	c.initialized = true
	return nil
}

// Cleanup drops queued voices, the speaker stays open for the process lifetime
func (c *Chimer) Cleanup() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}
	speaker.Lock()
	c.mixer.Clear()
	speaker.Unlock()
	c.initialized = false
}

// Chime queues one chime voice, returns false when silent or rate-limited
func (c *Chimer) Chime() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized || c.volume == 0 || !c.allow(time.Now()) {
		return false
	}

	voice, err := NewChimeStreamer(sampleRate, parameter.ChimeFrequency, parameter.ChimeDuration, c.volume)
	if err != nil {
		return false
	}

	speaker.Lock()
	c.mixer.Add(voice)
	speaker.Unlock()
	c.played++
	return true
}

// allow applies the minimum gap between chimes, caller holds mu
func (c *Chimer) allow(now time.Time) bool {
	if !c.last.IsZero() && now.Sub(c.last) < c.gap {
		return false
	}
	c.last = now
	return true
}

// Played returns the number of chimes queued
func (c *Chimer) Played() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.played
}

// NewChimeStreamer builds a finite bell voice: a sine with a quieter inharmonic partial
// shaped by a short attack and exponential decay
func NewChimeStreamer(sr beep.SampleRate, freq float64, duration time.Duration, volume float64) (beep.Streamer, error) {
	fundamental, err := generators.SineTone(sr, freq)
	if err != nil {
		return nil, fmt.Errorf("chime fundamental: %w", err)
	}
	overtone, err := generators.SineTone(sr, freq*parameter.ChimeOvertoneRatio)
	if err != nil {
		return nil, fmt.Errorf("chime overtone: %w", err)
	}

	mixed := beep.Mix(fundamental, &effects.Gain{Streamer: overtone, Gain: parameter.ChimeOvertoneGain})
	env := &envelope{
		streamer: mixed,
		attack:   sr.N(parameter.ChimeAttack),
		release:  sr.N(parameter.ChimeRelease),
		gain:     vmath.Clamp01(volume) * 0.5,
	}
	return beep.Take(sr.N(duration), env), nil
}

// envelope applies a linear attack then exponential decay
type envelope struct {
	streamer beep.Streamer
	pos      int
	attack   int
	release  int
	gain     float64
}

func (e *envelope) level(pos int) float64 {
	if pos < e.attack {
		return float64(pos) / float64(e.attack)
	}
	if e.release <= 0 {
		return 0
	}
	return math.Exp(-float64(pos-e.attack) / float64(e.release))
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		amp := e.gain * e.level(e.pos)
		samples[i][0] *= amp
		samples[i][1] *= amp
		e.pos++
	}
	return n, ok
}

func (e *envelope) Err() error {
	return e.streamer.Err()
}
