package renderer

import (
	"github.com/lixenwraith/neural-field/field"
	"github.com/lixenwraith/neural-field/parameter"
	"github.com/lixenwraith/neural-field/parameter/visual"
	"github.com/lixenwraith/neural-field/render"
)

// PulseRenderer draws data pulses as a fading trail, a soft glow and a bright core
type PulseRenderer struct {
	field *field.Field
	stops [3]render.GradientStop // Reused per pulse
}

func NewPulseRenderer(f *field.Field) *PulseRenderer {
	return &PulseRenderer{field: f}
}

func (r *PulseRenderer) Render(ctx render.RenderContext, canvas *render.Canvas) {
	if ctx.Static {
		return
	}
	pulses := r.field.Pulses()
	for i := range pulses {
		p := &pulses[i]
		if p.Trail.Len() == 0 {
			continue
		}
		x, y, ok := r.field.PulsePosition(p)
		if !ok {
			continue
		}
		col := visual.PulsePalette[p.Color%len(visual.PulsePalette)]

		// Trail, oldest point faintest and smallest
		n := p.Trail.Len()
		inv := 1 / float64(n)
		for t := 0; t < n; t++ {
			pt := p.Trail.At(t)
			ratio := float64(t) * inv
			alpha := ratio * parameter.PulseTrailAlpha
			if alpha <= 0 {
				continue
			}
			size := parameter.PulseTrailSize + ratio*parameter.PulseTrailGrowth
			r.stops[0] = render.GradientStop{Offset: 0, Color: col, Alpha: alpha}
			r.stops[1] = render.GradientStop{Offset: 1, Color: col, Alpha: 0}
			canvas.RadialGlow(pt.X, pt.Y, size, r.stops[:2])
		}

		// Glow
		r.stops[0] = render.GradientStop{Offset: 0, Color: col, Alpha: parameter.PulseBaseAlpha}
		r.stops[1] = render.GradientStop{Offset: 0.5, Color: col, Alpha: 0.4}
		r.stops[2] = render.GradientStop{Offset: 1, Color: col, Alpha: 0}
		canvas.RadialGlow(x, y, parameter.PulseGlowRadius, r.stops[:])

		// Core
		canvas.FillCircle(x, y, parameter.PulseCoreRadius, col, 1)
	}
}
