// Package engine drives a neural field on a terminal: sizing, the frame loop, input, and live config.
package engine

import (
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lixenwraith/neural-field/component"
	"github.com/lixenwraith/neural-field/config"
	"github.com/lixenwraith/neural-field/field"
	"github.com/lixenwraith/neural-field/parameter"
	"github.com/lixenwraith/neural-field/render"
	"github.com/lixenwraith/neural-field/render/renderer"
)

// ErrNoScreen is returned by Run on a headless controller
var ErrNoScreen = errors.New("engine: no screen")

// Chime is notified when data pulses complete
type Chime interface {
	Chime() bool
}

// Options configures a Controller
type Options struct {
	Config *config.Config

	// Screen is presented to every frame, nil runs headless
	Screen tcell.Screen

	Logger  *zap.Logger
	Chime   Chime
	Updates <-chan *config.Config
}

// Totals accumulates step statistics since creation
type Totals struct {
	Steps            uint64
	PulsesSpawned    uint64
	PulsesCompleted  uint64
	RebornParticles  uint64
	Bounces          uint64
	ChimesPlayed     uint64
	LastConnections  int
	LastVisibleMotes int
}

// Controller owns one field, its canvas, and its painter
// All methods except the counters must be called from a single goroutine, Run's loop when running
type Controller struct {
	cfg     *config.Config
	field   *field.Field
	canvas  *render.Canvas
	painter *renderer.Painter
	screen  tcell.Screen

	viewport      Viewport
	frameInterval time.Duration

	logger  *zap.Logger
	session string
	chime   Chime
	updates <-chan *config.Config

	reducedMotion bool
	staticDrawn   bool
	paused        bool

	totals Totals

	framesRendered  atomic.Uint64
	initializations atomic.Uint64
}

// New creates a controller, entities are created on the first non-empty Resize
func New(opts Options) (*Controller, error) {
	if opts.Config == nil {
		return nil, fmt.Errorf("engine: nil config")
	}
	cfg := opts.Config
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("engine: %w", err)
	}

	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	session := uuid.NewString()

	f := field.New(cfg.FieldConfig())
	canvas := render.NewCanvas(0, 0, cfg.Display.PixelRatio)
	painter := renderer.NewPainter(f, canvas, cfg.ColorMode())
	painter.SetDebugZones(cfg.Display.DebugZones)

	c := &Controller{
		cfg:           cfg,
		field:         f,
		canvas:        canvas,
		painter:       painter,
		screen:        opts.Screen,
		viewport:      Viewport{Ratio: cfg.Display.PixelRatio},
		frameInterval: parameter.FrameInterval(cfg.Display.FrameRate),
		logger:        logger.With(zap.String("session", session)),
		session:       session,
		chime:         opts.Chime,
		updates:       opts.Updates,
		reducedMotion: cfg.Display.ReducedMotion,
	}

	c.logger.Info("controller created",
		zap.Int("nodes", cfg.Field.NodeCount),
		zap.Int("particles", cfg.Field.ParticleCount),
		zap.String("intensity", string(cfg.Intensity())),
		zap.Bool("reduced_motion", c.reducedMotion),
		zap.Stringer("color_mode", cfg.ColorMode()),
	)
	return c, nil
}

// Resize applies a terminal size in cells
// Returns true if entities were (re)initialized
// Repeated sizes are ignored, terminals report the initial size more than once
func (c *Controller) Resize(cols, rows int) bool {
	if cols == c.viewport.Cols && rows == c.viewport.Rows && c.field.Ready() {
		return false
	}
	c.viewport.Cols, c.viewport.Rows = cols, rows
	c.staticDrawn = false

	if c.viewport.Empty() {
		c.canvas.Resize(0, 0)
		c.field.Resize(0, 0)
		c.logger.Debug("resize deferred, empty terminal", zap.Int("cols", cols), zap.Int("rows", rows))
		return false
	}

	pw, ph := c.viewport.PixelSize()
	c.canvas.Resize(pw, ph)

	w, h := c.viewport.LogicalSize()
	if !c.field.Resize(w, h) {
		return false
	}

	c.initializations.Add(1)
	c.logger.Info("field initialized",
		zap.Float64("width", w),
		zap.Float64("height", h),
		zap.Uint64("initializations", c.initializations.Load()),
	)
	return true
}

// Frame runs one simulation and render pass
// Returns whether another frame should be scheduled: false once the reduced-motion frame is drawn
func (c *Controller) Frame() bool {
	if !c.field.Ready() {
		return true
	}

	if c.reducedMotion {
		if !c.staticDrawn {
			c.painter.PaintStatic(c.screen)
			c.staticDrawn = true
			c.framesRendered.Add(1)
		}
		return false
	}

	if c.paused {
		return true
	}

	stats := c.field.Step()
	c.painter.Paint(c.screen)
	c.framesRendered.Add(1)
	c.record(stats)

	if stats.PulsesCompleted > 0 && c.chime != nil && c.chime.Chime() {
		c.totals.ChimesPlayed++
	}
	return true
}

func (c *Controller) record(s field.StepStats) {
	c.totals.Steps++
	c.totals.PulsesSpawned += uint64(s.PulsesSpawned)
	c.totals.PulsesCompleted += uint64(s.PulsesCompleted)
	c.totals.RebornParticles += uint64(s.RebornParticles)
	c.totals.Bounces += uint64(s.Bounces)
	c.totals.LastConnections = s.Connections
	c.totals.LastVisibleMotes = s.VisibleParticles
}

// SetZones replaces exclusion zones
func (c *Controller) SetZones(zones []component.ExclusionZone) {
	c.field.SetZones(zones)
	c.logger.Debug("zones replaced", zap.Int("count", len(zones)))
}

// SetReducedMotion switches between the animated and the single static frame
func (c *Controller) SetReducedMotion(on bool) {
	if c.reducedMotion == on {
		return
	}
	c.reducedMotion = on
	c.staticDrawn = false
	c.logger.Info("reduced motion changed", zap.Bool("reduced_motion", on))
}

// ReducedMotion reports the current motion preference
func (c *Controller) ReducedMotion() bool {
	return c.reducedMotion
}

// SetPaused freezes the animation, the last frame stays on screen
func (c *Controller) SetPaused(on bool) {
	c.paused = on
}

// Paused reports whether the animation is frozen
func (c *Controller) Paused() bool {
	return c.paused
}

// Reseed discards all entities and creates a fresh network at the current size
func (c *Controller) Reseed() {
	if !c.field.Ready() {
		return
	}
	c.field.Reset()
	c.canvas.Clear()
	c.staticDrawn = false
	c.initializations.Add(1)
	c.logger.Info("field reseeded")
}

// Apply takes the live-reloadable parts of a config
// Geometry and counts need a restart, everything drawn per frame follows the new values
func (c *Controller) Apply(cfg *config.Config) {
	if cfg == nil {
		return
	}
	c.SetZones(cfg.ExclusionZones())
	c.painter.SetDebugZones(cfg.Display.DebugZones)
	c.painter.SetColorMode(cfg.ColorMode())
	c.field.SetIntensity(cfg.Intensity())
	c.SetReducedMotion(cfg.Display.ReducedMotion)
	c.logger.Info("config applied",
		zap.Int("zones", len(cfg.Zones)),
		zap.Bool("debug_zones", cfg.Display.DebugZones),
		zap.String("intensity", string(cfg.Intensity())),
		zap.Stringer("color_mode", cfg.ColorMode()),
	)
}

// Field returns the simulated field
func (c *Controller) Field() *field.Field {
	return c.field
}

// Painter returns the frame painter
func (c *Controller) Painter() *renderer.Painter {
	return c.painter
}

// Viewport returns the current cell-to-logical mapping
func (c *Controller) Viewport() Viewport {
	return c.viewport
}

// Session returns the controller's log session id
func (c *Controller) Session() string {
	return c.session
}

// FramesRendered returns the number of frames painted, animated and static
func (c *Controller) FramesRendered() uint64 {
	return c.framesRendered.Load()
}

// Initializations returns how many times entities were (re)created
func (c *Controller) Initializations() uint64 {
	return c.initializations.Load()
}

// Totals returns accumulated step statistics
func (c *Controller) Totals() Totals {
	return c.totals
}
