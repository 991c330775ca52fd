package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/neural-field/config"
)

// parse resets shared flag state and parses args against a fresh command tree
func parse(t *testing.T, args ...string) (*config.Config, error) {
	t.Helper()
	opts = options{}
	root := newRootCmd()
	require.NoError(t, root.ParseFlags(args))
	return loadConfig(root)
}

func TestFlagsOverrideConfigFile(t *testing.T) {
	t.Setenv(config.EnvIntensity, "")
	t.Setenv(config.EnvReducedMotion, "")
	t.Setenv(config.EnvReduceMotion, "")

	path := filepath.Join(t.TempDir(), "field.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[field]
node_count = 30
intensity = "low"
seed = 7

[display]
frame_rate = 30
`), 0o644))

	cfg, err := parse(t, "--config", path, "--nodes", "12", "--intensity", "high", "--reduced-motion")
	require.NoError(t, err)

	assert.Equal(t, 12, cfg.Field.NodeCount)
	assert.Equal(t, "high", cfg.Field.Intensity)
	assert.Equal(t, 30, cfg.Display.FrameRate, "unset flag keeps file value")
	assert.Equal(t, uint64(7), cfg.Field.Seed)
	assert.True(t, cfg.Display.ReducedMotion)
}

func TestFlagsRandomSeedWhenUnset(t *testing.T) {
	cfg, err := parse(t, "--config", filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)
	assert.NotZero(t, cfg.Field.Seed)
	assert.True(t, cfg.Field.Interactive)
}

func TestFlagsRejectBadIntensity(t *testing.T) {
	_, err := parse(t, "--config", "", "--intensity", "extreme")
	assert.ErrorIs(t, err, config.ErrInvalidIntensity)
}

func TestNoInteractiveFlag(t *testing.T) {
	cfg, err := parse(t, "--config", "", "--no-interactive", "--debug-zones")
	require.NoError(t, err)
	assert.False(t, cfg.Field.Interactive)
	assert.True(t, cfg.Display.DebugZones)
}

func TestSubcommandsRegistered(t *testing.T) {
	root := newRootCmd()
	for _, name := range []string{"run", "zones", "headless", "config"} {
		cmd, _, err := root.Find([]string{name})
		require.NoError(t, err, name)
		assert.Equal(t, name, cmd.Name())
	}
}

func TestFlagOverlaySurvivesReload(t *testing.T) {
	t.Setenv(config.EnvReducedMotion, "")
	t.Setenv(config.EnvReduceMotion, "")

	opts = options{}
	root := newRootCmd()
	require.NoError(t, root.ParseFlags([]string{"--reduced-motion", "--intensity", "low", "--debug-zones"}))

	// A reloaded file that never mentions these keys
	path := filepath.Join(t.TempDir(), "field.toml")
	require.NoError(t, os.WriteFile(path, []byte("[field]\nintensity = \"high\"\n"), 0o644))
	reloaded, err := config.Load(path)
	require.NoError(t, err)
	require.False(t, reloaded.Display.ReducedMotion)

	flagOverlay(root)(reloaded)
	require.NoError(t, reloaded.Validate())

	assert.True(t, reloaded.Display.ReducedMotion)
	assert.True(t, reloaded.Display.DebugZones)
	assert.Equal(t, "low", reloaded.Field.Intensity)
}
