package config

import (
	"errors"
	"fmt"
	"math"

	"github.com/lixenwraith/neural-field/parameter"
	"github.com/lixenwraith/neural-field/render"
	"github.com/lixenwraith/neural-field/vmath"
)

var (
	ErrInvalidIntensity = errors.New("invalid intensity")
	ErrInvalidZone      = errors.New("invalid exclusion zone")
	ErrInvalidColorMode = errors.New("invalid color mode")
)

// Validate rejects unusable values and clamps counts and rates into supported ranges
func (c *Config) Validate() error {
	i, ok := parameter.ParseIntensity(c.Field.Intensity)
	if !ok {
		return fmt.Errorf("%w: %q (want low, medium or high)", ErrInvalidIntensity, c.Field.Intensity)
	}
	c.Field.Intensity = string(i)

	for idx, z := range c.Zones {
		if err := validateZone(z); err != nil {
			return fmt.Errorf("zone %d: %w", idx, err)
		}
	}

	switch c.Display.ColorMode {
	case "", "auto", "256", "truecolor":
	default:
		return fmt.Errorf("%w: %q", ErrInvalidColorMode, c.Display.ColorMode)
	}

	c.Field.NodeCount = clampInt(c.Field.NodeCount, 0, parameter.MaxNodeCount)
	c.Field.ParticleCount = clampInt(c.Field.ParticleCount, 0, parameter.MaxParticleCount)
	if c.Field.ConnectionDistance <= 0 {
		c.Field.ConnectionDistance = parameter.DefaultConnectionDistance
	}
	c.Field.ConnectionDistance = vmath.Clamp(c.Field.ConnectionDistance, parameter.MinConnectionDistance, parameter.MaxConnectionDistance)

	if c.Display.FrameRate == 0 {
		c.Display.FrameRate = parameter.DefaultFrameRate
	}
	c.Display.FrameRate = clampInt(c.Display.FrameRate, parameter.MinFrameRate, parameter.MaxFrameRate)
	if c.Display.PixelRatio <= 0 {
		c.Display.PixelRatio = parameter.DefaultPixelRatio
	}
	c.Display.PixelRatio = vmath.Clamp(c.Display.PixelRatio, parameter.MinPixelRatio, parameter.MaxPixelRatio)

	c.Audio.Volume = vmath.Clamp01(c.Audio.Volume)
	if c.Audio.GapMs < 0 {
		c.Audio.GapMs = 0
	}
	return nil
}

func validateZone(z ZoneConfig) error {
	for _, v := range []float64{z.X, z.Y, z.Width, z.Height, z.Strength} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: non-finite value", ErrInvalidZone)
		}
	}
	if z.Width <= 0 || z.Height <= 0 {
		return fmt.Errorf("%w: size %gx%g must be positive", ErrInvalidZone, z.Width, z.Height)
	}
	if z.Strength < 0 {
		return fmt.Errorf("%w: negative strength %g", ErrInvalidZone, z.Strength)
	}
	return nil
}

// ColorMode resolves the configured mode, "auto" detects from environment
func (c *Config) ColorMode() render.ColorMode {
	return render.ParseColorMode(c.Display.ColorMode)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
