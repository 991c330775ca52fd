package renderer

import (
	"github.com/lixenwraith/neural-field/field"
	"github.com/lixenwraith/neural-field/parameter"
	"github.com/lixenwraith/neural-field/parameter/visual"
	"github.com/lixenwraith/neural-field/render"
)

// ConnectionRenderer draws links between nearby nodes
// Alpha fades with distance and depth, each end weighted by its own node's depth
type ConnectionRenderer struct {
	field *field.Field
}

func NewConnectionRenderer(f *field.Field) *ConnectionRenderer {
	return &ConnectionRenderer{field: f}
}

func (r *ConnectionRenderer) Render(ctx render.RenderContext, canvas *render.Canvas) {
	nodes := r.field.Nodes()
	invDist := 1 / r.field.ConnectionDistance()

	for _, seg := range r.field.Segments() {
		if seg.A >= len(nodes) || seg.B >= len(nodes) {
			continue
		}
		a, b := &nodes[seg.A], &nodes[seg.B]
		distRatio := 1 - seg.Dist*invDist
		avgDepth := (a.Depth + b.Depth) * 0.5
		depthFactor := parameter.ConnectionDepthBase + avgDepth*parameter.ConnectionDepthGain

		if ctx.Static {
			alpha := distRatio * parameter.ConnectionStaticAlpha * depthFactor
			width := parameter.ConnectionWidthBase + distRatio*parameter.ConnectionStaticWidthGain*avgDepth
			canvas.Line(a.X, a.Y, b.X, b.Y, width, visual.RgbConnection, visual.RgbConnection, alpha, alpha)
			continue
		}

		avgAlpha := (a.AlphaMultiplier + b.AlphaMultiplier) * 0.5
		alpha := distRatio * parameter.ConnectionAlpha * depthFactor * avgAlpha
		if alpha <= parameter.VisibilityThreshold {
			continue
		}
		width := parameter.ConnectionWidthBase + distRatio*parameter.ConnectionWidthGain*avgDepth
		a1 := alpha * (parameter.ConnectionEndBase + a.Depth*parameter.ConnectionEndGain)
		a2 := alpha * (parameter.ConnectionEndBase + b.Depth*parameter.ConnectionEndGain)
		canvas.Line(a.X, a.Y, b.X, b.Y, width, visual.RgbConnection, visual.RgbConnection, a1, a2)
	}
}
