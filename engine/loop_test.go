package engine

import (
	"context"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/lixenwraith/neural-field/config"
)

func newSimController(t *testing.T, mutate func(*config.Config), updates <-chan *config.Config) (*Controller, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(testCols, testRows)

	c, err := New(Options{Config: testConfig(mutate), Screen: screen, Updates: updates})
	require.NoError(t, err)
	return c, screen
}

func runAsync(c *Controller, ctx context.Context) <-chan error {
	done := make(chan error, 1)
	go func() { done <- c.Run(ctx) }()
	return done
}

func waitRun(t *testing.T, done <-chan error) {
	t.Helper()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return")
	}
}

func TestRunWithoutScreen(t *testing.T) {
	c := newHeadless(t, nil)
	assert.ErrorIs(t, c.Run(context.Background()), ErrNoScreen)
}

func TestRunReducedMotionRendersOnce(t *testing.T) {
	defer goleak.VerifyNone(t)

	c, _ := newSimController(t, func(cfg *config.Config) { cfg.Display.ReducedMotion = true }, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()
	waitRun(t, runAsync(c, ctx))

	assert.Equal(t, uint64(1), c.FramesRendered())
	assert.Equal(t, uint64(1), c.Initializations())
}

func TestRunAnimatesUntilCancelled(t *testing.T) {
	defer goleak.VerifyNone(t)

	c, _ := newSimController(t, func(cfg *config.Config) { cfg.Display.FrameRate = 120 }, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()
	waitRun(t, runAsync(c, ctx))

	assert.Greater(t, c.FramesRendered(), uint64(1))
}

func TestRunQuitKey(t *testing.T) {
	defer goleak.VerifyNone(t)

	c, screen := newSimController(t, nil, nil)
	require.NoError(t, screen.PostEvent(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)))

	waitRun(t, runAsync(c, context.Background()))
	assert.GreaterOrEqual(t, c.FramesRendered(), uint64(1))
}

func TestRunPresentsHalfBlocks(t *testing.T) {
	defer goleak.VerifyNone(t)

	c, screen := newSimController(t, func(cfg *config.Config) { cfg.Display.ReducedMotion = true }, nil)
	require.NoError(t, screen.PostEvent(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)))

	// Inspect the back buffer before Run finalizes the screen
	c.Resize(screen.Size())
	c.Frame()
	mainc, _, _, _ := screen.GetContent(0, 0)
	assert.Equal(t, '▀', mainc)

	waitRun(t, runAsync(c, context.Background()))
}

func TestRunAppliesUpdates(t *testing.T) {
	defer goleak.VerifyNone(t)

	updates := make(chan *config.Config, 1)
	c, _ := newSimController(t, nil, updates)

	updates <- testConfig(func(cfg *config.Config) {
		cfg.Zones = []config.ZoneConfig{{X: 0, Y: 0, Width: 100, Height: 100}}
		cfg.Display.DebugZones = true
	})

	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()
	waitRun(t, runAsync(c, ctx))

	assert.Len(t, c.Field().Zones(), 1)
	assert.True(t, c.Painter().DebugZones())
}
