package renderer

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/neural-field/field"
	"github.com/lixenwraith/neural-field/render"
)

// Painter draws a field onto a canvas through a fixed layer stack
type Painter struct {
	field *field.Field
	orch  *render.Orchestrator

	nodes *NodeRenderer
	zones *ZoneRenderer

	frame uint64
}

// NewPainter wires the layer stack for f onto canvas
func NewPainter(f *field.Field, canvas *render.Canvas, mode render.ColorMode) *Painter {
	p := &Painter{
		field: f,
		orch:  render.NewOrchestrator(canvas, mode),
		nodes: NewNodeRenderer(f),
		zones: NewZoneRenderer(f),
	}

	p.orch.Register(NewParticleRenderer(f), render.PriorityParticles)
	p.orch.Register(NewConnectionRenderer(f), render.PriorityConnections)
	p.orch.Register(NewPulseRenderer(f), render.PriorityPulses)
	p.orch.Register(p.nodes, render.PriorityNodes)
	p.orch.Register(p.zones, render.PriorityDebug)
	return p
}

// Paint composes one animated frame from the field's current state
// Call after field.Step, a nil screen composes the canvas only
func (p *Painter) Paint(screen tcell.Screen) {
	if !p.field.Ready() || p.orch.Canvas().Empty() {
		return
	}
	p.orch.RenderFrame(p.context(false), screen)
	p.frame++
}

// PaintStatic composes the reduced-motion frame: links and nodes only, no trails
func (p *Painter) PaintStatic(screen tcell.Screen) {
	if !p.field.Ready() || p.orch.Canvas().Empty() {
		return
	}
	// Static frames draw links at rest, no step has run to build them
	p.field.Connect()
	p.orch.RenderFrame(p.context(true), screen)
}

func (p *Painter) context(static bool) render.RenderContext {
	w, h := p.field.Size()
	return render.RenderContext{
		Frame:  p.frame,
		Static: static,
		Width:  w,
		Height: h,
	}
}

// SetDebugZones toggles the exclusion zone overlay
func (p *Painter) SetDebugZones(on bool) {
	p.zones.visible = on
}

// DebugZones reports whether the zone overlay is drawn
func (p *Painter) DebugZones() bool {
	return p.zones.visible
}

// SetColorMode changes presentation color depth
func (p *Painter) SetColorMode(mode render.ColorMode) {
	p.orch.SetColorMode(mode)
}

// ColorMode returns the presentation color depth
func (p *Painter) ColorMode() render.ColorMode {
	return p.orch.ColorMode()
}

// Frames returns the number of animated frames painted
func (p *Painter) Frames() uint64 {
	return p.frame
}

// Canvas returns the drawing surface
func (p *Painter) Canvas() *render.Canvas {
	return p.orch.Canvas()
}
