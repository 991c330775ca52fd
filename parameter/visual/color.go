package visual

import (
	"github.com/lixenwraith/neural-field/render"
)

// render.RGB color definitions for the field
var (
	RgbBlack = render.RGB{R: 0, G: 0, B: 0}
	RgbWhite = render.RGB{R: 255, G: 255, B: 255}

	RgbNodeGlow   = render.RGB{R: 14, G: 116, B: 144} // Deep cyan glow around nodes
	RgbConnection = render.RGB{R: 99, G: 179, B: 237} // Sky blue links and outer rings

	RgbZoneDebug = render.RGB{R: 255, G: 0, B: 0} // Exclusion zone outlines
)

// PulsePalette is the fixed set of data pulse colors
var PulsePalette = [3]render.RGB{
	{R: 14, G: 116, B: 144}, // Primary cyan-blue
	{R: 139, G: 92, B: 246}, // Secondary purple
	{R: 240, G: 109, B: 89}, // Accent coral
}

// DepthTint returns the blue-shifted tint used by particles and node cores
// Red grows with depth by gain, green follows red +80, blue fixed
func DepthTint(depth, gain float64) render.RGB {
	b := 99 + int(depth*gain)
	g := b + 80
	if g > 255 {
		g = 255
	}
	return render.RGB{R: uint8(b), G: uint8(g), B: 237}
}
