package render

// RenderContext provides frame state for layers, passed by value
type RenderContext struct {
	// Frame counter of the painter, advances once per animated frame
	Frame uint64

	// Static marks the reduced-motion frame: hard clear, no particles or pulses
	Static bool

	// Logical field dimensions
	Width  float64
	Height float64
}

// Contains reports whether logical point (x, y) lies on the field
func (rc *RenderContext) Contains(x, y float64) bool {
	return x >= 0 && x <= rc.Width && y >= 0 && y <= rc.Height
}
