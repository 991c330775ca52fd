package engine

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/neural-field/core"
	"github.com/lixenwraith/neural-field/parameter"
)

// Run drives the frame loop until ctx is done or a quit key arrives
// Run takes ownership of the screen and finalizes it on return
func (c *Controller) Run(ctx context.Context) error {
	if c.screen == nil {
		return ErrNoScreen
	}

	if c.cfg.Field.Interactive {
		c.screen.EnableMouse(tcell.MouseMotionEvents)
	}
	c.screen.EnableFocus()

	events := make(chan tcell.Event, parameter.EventChannelSize)
	stopPoll := make(chan struct{})
	pollDone := make(chan struct{})
	core.Go(func() {
		defer close(pollDone)
		for {
			ev := c.screen.PollEvent()
			if ev == nil {
				return // Screen finalized
			}
			select {
			case events <- ev:
			case <-stopPoll:
				return
			}
		}
	})

	ticker := time.NewTicker(c.frameInterval)
	status := time.NewTicker(parameter.StatusLogInterval)

	defer func() {
		ticker.Stop()
		status.Stop()
		close(stopPoll)
		c.screen.Fini()
		<-pollDone
		c.logger.Info("controller stopped",
			zap.Uint64("frames", c.FramesRendered()),
			zap.Uint64("initializations", c.Initializations()),
		)
	}()

	cols, rows := c.screen.Size()
	c.Resize(cols, rows)

	running := c.Frame()
	if !running {
		ticker.Stop()
	}
	lastFrames := c.FramesRendered()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev := <-events:
			if !c.HandleEvent(ev) {
				return nil
			}
			running = c.resume(ticker, running)

		case cfg := <-c.updates:
			c.Apply(cfg)
			running = c.resume(ticker, running)

		case <-ticker.C:
			if !c.Frame() {
				ticker.Stop()
				running = false
			}

		case <-status.C:
			frames := c.FramesRendered()
			t := c.totals
			c.logger.Debug("frame stats",
				zap.Float64("fps", float64(frames-lastFrames)/parameter.StatusLogInterval.Seconds()),
				zap.Int("connections", t.LastConnections),
				zap.Int("visible_particles", t.LastVisibleMotes),
				zap.Int("pulses", len(c.field.Pulses())),
				zap.Uint64("pulses_completed", t.PulsesCompleted),
			)
			lastFrames = frames
		}
	}
}

// resume restarts a stopped ticker once the controller wants frames again
// A pending static frame is drawn immediately
func (c *Controller) resume(ticker *time.Ticker, running bool) bool {
	if running {
		return true
	}
	if c.Frame() {
		ticker.Reset(c.frameInterval)
		return true
	}
	return false
}
