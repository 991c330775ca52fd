package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/neural-field/parameter"
)

type layerEntry struct {
	layer    Layer
	priority RenderPriority
	index    int // registration order for stable sort
}

// Orchestrator coordinates the render pipeline over one canvas
type Orchestrator struct {
	canvas   *Canvas
	mode     ColorMode
	layers   []layerEntry
	regCount int
}

// NewOrchestrator creates an orchestrator drawing onto canvas
func NewOrchestrator(canvas *Canvas, mode ColorMode) *Orchestrator {
	return &Orchestrator{
		canvas: canvas,
		mode:   mode,
		layers: make([]layerEntry, 0, 8),
	}
}

// Register adds a layer at the specified priority. Maintains sorted order via insertion sort
func (o *Orchestrator) Register(l Layer, priority RenderPriority) {
	entry := layerEntry{
		layer:    l,
		priority: priority,
		index:    o.regCount,
	}
	o.regCount++

	pos := len(o.layers)
	for i, e := range o.layers {
		if priority < e.priority || (priority == e.priority && entry.index < e.index) {
			pos = i
			break
		}
	}

	o.layers = append(o.layers, layerEntry{})
	copy(o.layers[pos+1:], o.layers[pos:])
	o.layers[pos] = entry
}

// Canvas returns the drawing surface
func (o *Orchestrator) Canvas() *Canvas {
	return o.canvas
}

// SetColorMode changes the presentation color mode
func (o *Orchestrator) SetColorMode(mode ColorMode) {
	o.mode = mode
}

// ColorMode returns the presentation color mode
func (o *Orchestrator) ColorMode() ColorMode {
	return o.mode
}

// RenderFrame executes the pipeline: fade or clear, render all layers, present, show
// A nil screen composes the canvas only
func (o *Orchestrator) RenderFrame(ctx RenderContext, screen tcell.Screen) {
	if ctx.Static {
		o.canvas.Clear()
	} else {
		o.canvas.Fade(RGBBlack, parameter.TrailFadeAlpha)
	}

	for _, entry := range o.layers {
		if vt, ok := entry.layer.(VisibilityToggle); ok && !vt.IsVisible() {
			continue
		}
		entry.layer.Render(ctx, o.canvas)
	}

	if screen != nil {
		o.canvas.Present(screen, o.mode)
		screen.Show()
	}
}
