package config

import (
	"os"
	"strconv"
	"strings"
)

// Environment overrides
const (
	EnvIntensity     = "NEURAL_INTENSITY"
	EnvReducedMotion = "NEURAL_REDUCED_MOTION"
	EnvReduceMotion  = "REDUCE_MOTION" // Generic accessibility signal
	EnvConfigPath    = "NEURAL_CONFIG"
)

// ApplyEnv overlays environment overrides, unparsable values are ignored
func ApplyEnv(c *Config) {
	if v, ok := os.LookupEnv(EnvIntensity); ok && strings.TrimSpace(v) != "" {
		c.Field.Intensity = v
	}
	if ReducedMotionFromEnv() {
		c.Display.ReducedMotion = true
	}
}

// ReducedMotionFromEnv reports whether either reduced-motion variable is set true
func ReducedMotionFromEnv() bool {
	for _, key := range []string{EnvReducedMotion, EnvReduceMotion} {
		v, ok := os.LookupEnv(key)
		if !ok {
			continue
		}
		if on, err := strconv.ParseBool(strings.TrimSpace(v)); err == nil && on {
			return true
		}
	}
	return false
}

// PathFromEnv returns the config path override, or the default path
func PathFromEnv() string {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p
	}
	return DefaultPath()
}
