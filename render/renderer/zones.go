package renderer

import (
	"github.com/lixenwraith/neural-field/field"
	"github.com/lixenwraith/neural-field/parameter"
	"github.com/lixenwraith/neural-field/parameter/visual"
	"github.com/lixenwraith/neural-field/render"
)

// ZoneRenderer outlines exclusion zones for layout debugging
type ZoneRenderer struct {
	field   *field.Field
	visible bool
}

func NewZoneRenderer(f *field.Field) *ZoneRenderer {
	return &ZoneRenderer{field: f}
}

// IsVisible implements render.VisibilityToggle
func (r *ZoneRenderer) IsVisible() bool {
	return r.visible
}

func (r *ZoneRenderer) Render(ctx render.RenderContext, canvas *render.Canvas) {
	if ctx.Static {
		return
	}
	for _, z := range r.field.Zones() {
		canvas.StrokeRect(z.X, z.Y, z.Width, z.Height, visual.RgbZoneDebug, parameter.ZoneDebugStrokeAlpha)
		canvas.FillRect(z.X, z.Y, z.Width, z.Height, visual.RgbZoneDebug, parameter.ZoneDebugFillAlpha)
	}
}
