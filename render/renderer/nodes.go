package renderer

import (
	"math"
	"sort"

	"github.com/lixenwraith/neural-field/field"
	"github.com/lixenwraith/neural-field/parameter"
	"github.com/lixenwraith/neural-field/parameter/visual"
	"github.com/lixenwraith/neural-field/render"
)

// NodeRenderer draws nodes back to front by depth
type NodeRenderer struct {
	field *field.Field

	// Node indices sorted by ascending depth
	// Depth is immutable so the order is refreshed only periodically or when the nodes are replaced
	order      []int
	generation uint64
	stops [3]render.GradientStop
}

func NewNodeRenderer(f *field.Field) *NodeRenderer {
	return &NodeRenderer{field: f}
}

// refreshOrder re-sorts on the sort interval or when the node set changed
func (r *NodeRenderer) refreshOrder(ctx render.RenderContext) {
	nodes := r.field.Nodes()
	gen := r.field.Generation()
	if len(r.order) == len(nodes) && gen == r.generation {
		if ctx.Static || ctx.Frame%parameter.DepthSortInterval != 0 {
			return
		}
	}

	r.generation = gen
	r.order = r.order[:0]
	for i := range nodes {
		r.order = append(r.order, i)
	}
	sort.SliceStable(r.order, func(a, b int) bool {
		return nodes[r.order[a]].Depth < nodes[r.order[b]].Depth
	})
}

// Order returns the current draw order
func (r *NodeRenderer) Order() []int {
	return r.order
}

func (r *NodeRenderer) Render(ctx render.RenderContext, canvas *render.Canvas) {
	r.refreshOrder(ctx)
	nodes := r.field.Nodes()

	for _, idx := range r.order {
		if idx >= len(nodes) {
			continue
		}
		n := &nodes[idx]
		if ctx.Static {
			r.renderStatic(canvas, n.X, n.Y, n.Radius, n.Depth)
			continue
		}
		if n.AlphaMultiplier == 0 {
			continue
		}

		pulse := math.Sin(n.PulsePhase)*0.25 + 0.75
		depthAlpha := (parameter.NodeDepthBase + n.Depth*parameter.NodeDepthGain) * n.AlphaMultiplier
		a := pulse * depthAlpha

		// Glow
		glowRadius := n.Radius * (parameter.NodeGlowBase + n.Depth*parameter.NodeGlowDepthGain)
		r.stops[0] = render.GradientStop{Offset: 0, Color: visual.RgbNodeGlow, Alpha: parameter.NodeGlowInner * a}
		r.stops[1] = render.GradientStop{Offset: 0.4, Color: visual.RgbNodeGlow, Alpha: parameter.NodeGlowMid * a}
		r.stops[2] = render.GradientStop{Offset: 1, Color: visual.RgbNodeGlow, Alpha: 0}
		canvas.RadialGlow(n.X, n.Y, glowRadius, r.stops[:])

		// Core
		canvas.FillCircle(n.X, n.Y, n.Radius, visual.DepthTint(n.Depth, parameter.NodeCoreTintGain), a)

		// Highlight, larger on near nodes
		canvas.FillCircle(n.X, n.Y, n.Radius*(0.35+n.Depth*0.15), visual.RgbWhite, parameter.NodeHighlight*a)

		if n.Depth > parameter.NodeRingDepth {
			ringAlpha := parameter.NodeRingAlpha * pulse * n.Depth * n.AlphaMultiplier
			canvas.StrokeCircle(n.X, n.Y, n.Radius*parameter.NodeRingScale, visual.RgbConnection, ringAlpha)
		}
	}
}

func (r *NodeRenderer) renderStatic(canvas *render.Canvas, x, y, radius, depth float64) {
	depthAlpha := parameter.StaticDepthBase + depth*parameter.StaticDepthGain

	r.stops[0] = render.GradientStop{Offset: 0, Color: visual.RgbNodeGlow, Alpha: parameter.StaticGlowAlpha * depthAlpha}
	r.stops[1] = render.GradientStop{Offset: 1, Color: visual.RgbNodeGlow, Alpha: 0}
	canvas.RadialGlow(x, y, radius*parameter.StaticGlowScale, r.stops[:2])

	canvas.FillCircle(x, y, radius, visual.RgbConnection, parameter.StaticCoreAlpha*depthAlpha)
	canvas.FillCircle(x, y, radius*parameter.StaticHighlightScale, visual.RgbWhite, parameter.StaticHighlightAlpha*depthAlpha)
}
