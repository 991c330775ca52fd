// Package config loads, validates, and watches the neural field settings file.
package config

import (
	"os"
	"path/filepath"

	"github.com/lixenwraith/neural-field/component"
	"github.com/lixenwraith/neural-field/field"
	"github.com/lixenwraith/neural-field/parameter"
)

// Config holds neural field configuration
type Config struct {
	Field   FieldConfig   `toml:"field" yaml:"field"`
	Display DisplayConfig `toml:"display" yaml:"display"`
	Audio   AudioConfig   `toml:"audio" yaml:"audio"`
	Log     LogConfig     `toml:"log" yaml:"log"`
	Zones   []ZoneConfig  `toml:"zones" yaml:"zones"`
}

// FieldConfig controls the simulation
type FieldConfig struct {
	NodeCount          int     `toml:"node_count" yaml:"node_count"`
	ParticleCount      int     `toml:"particle_count" yaml:"particle_count"`
	ConnectionDistance float64 `toml:"connection_distance" yaml:"connection_distance"`
	Interactive        bool    `toml:"interactive" yaml:"interactive"`
	Intensity          string  `toml:"intensity" yaml:"intensity"` // "low", "medium", "high"
	Seed               uint64  `toml:"seed" yaml:"seed"`           // 0 picks a fixed default
}

// DisplayConfig controls terminal presentation
type DisplayConfig struct {
	FrameRate     int     `toml:"frame_rate" yaml:"frame_rate"`
	PixelRatio    float64 `toml:"pixel_ratio" yaml:"pixel_ratio"`
	ColorMode     string  `toml:"color_mode" yaml:"color_mode"` // "auto", "256", "truecolor"
	ReducedMotion bool    `toml:"reduced_motion" yaml:"reduced_motion"`
	DebugZones    bool    `toml:"debug_zones" yaml:"debug_zones"`
}

// AudioConfig controls the pulse chime
type AudioConfig struct {
	Enabled bool    `toml:"enabled" yaml:"enabled"`
	Volume  float64 `toml:"volume" yaml:"volume"`
	GapMs   int     `toml:"gap_ms" yaml:"gap_ms"`
}

// LogConfig controls the file logger
type LogConfig struct {
	File    string `toml:"file" yaml:"file"`
	Verbose bool   `toml:"verbose" yaml:"verbose"`
}

// ZoneConfig is one exclusion rectangle in logical units
type ZoneConfig struct {
	X        float64 `toml:"x" yaml:"x"`
	Y        float64 `toml:"y" yaml:"y"`
	Width    float64 `toml:"width" yaml:"width"`
	Height   float64 `toml:"height" yaml:"height"`
	Strength float64 `toml:"strength,omitempty" yaml:"strength,omitempty"`
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Field: FieldConfig{
			NodeCount:          parameter.DefaultNodeCount,
			ParticleCount:      parameter.DefaultParticleCount,
			ConnectionDistance: parameter.DefaultConnectionDistance,
			Interactive:        true,
			Intensity:          string(parameter.IntensityMedium),
		},
		Display: DisplayConfig{
			FrameRate:  parameter.DefaultFrameRate,
			PixelRatio: parameter.DefaultPixelRatio,
			ColorMode:  "auto",
		},
		Audio: AudioConfig{
			Enabled: false,
			Volume:  parameter.DefaultChimeVolume,
			GapMs:   int(parameter.ChimeMinGap.Milliseconds()),
		},
	}
}

// ConfigDir returns the neural-field config directory path
func ConfigDir() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, _ := os.UserHomeDir()
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "neural-field")
}

// DefaultPath returns the default config file location
func DefaultPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// Intensity returns the parsed intensity, medium when unknown
func (c *Config) Intensity() parameter.Intensity {
	i, ok := parameter.ParseIntensity(c.Field.Intensity)
	if !ok {
		return parameter.IntensityMedium
	}
	return i
}

// ExclusionZones converts configured zones to simulation zones
func (c *Config) ExclusionZones() []component.ExclusionZone {
	if len(c.Zones) == 0 {
		return nil
	}
	zones := make([]component.ExclusionZone, len(c.Zones))
	for i, z := range c.Zones {
		zones[i] = component.ExclusionZone{X: z.X, Y: z.Y, Width: z.Width, Height: z.Height, Strength: z.Strength}
	}
	return zones
}

// FieldConfig builds the simulation config
func (c *Config) FieldConfig() field.Config {
	return field.Config{
		NodeCount:          c.Field.NodeCount,
		ParticleCount:      c.Field.ParticleCount,
		ConnectionDistance: c.Field.ConnectionDistance,
		Interactive:        c.Field.Interactive,
		Intensity:          c.Intensity(),
		Zones:              c.ExclusionZones(),
		Seed:               c.Field.Seed,
	}
}
