package renderer

import (
	"github.com/lixenwraith/neural-field/field"
	"github.com/lixenwraith/neural-field/parameter"
	"github.com/lixenwraith/neural-field/parameter/visual"
	"github.com/lixenwraith/neural-field/render"
)

// ParticleRenderer draws the background motes collected by the last step
type ParticleRenderer struct {
	field *field.Field
}

func NewParticleRenderer(f *field.Field) *ParticleRenderer {
	return &ParticleRenderer{field: f}
}

// Render draws visible sprites, discs when larger than a unit, dots otherwise
func (r *ParticleRenderer) Render(ctx render.RenderContext, canvas *render.Canvas) {
	if ctx.Static {
		return
	}
	for _, s := range r.field.Sprites() {
		col := visual.DepthTint(s.Depth, parameter.ParticleTintGain)
		if s.Size > 1 {
			canvas.FillCircle(s.X, s.Y, s.Size*0.5, col, s.Alpha)
		} else {
			canvas.Dot(s.X, s.Y, col, s.Alpha)
		}
	}
}
