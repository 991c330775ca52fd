package render

// Canvas is an RGB pixel surface addressed in logical units
// Logical coordinates are multiplied by scale (surface pixels per logical unit) before rasterizing
// Two pixel rows map onto one terminal row when presented
type Canvas struct {
	pix    []RGB
	width  int
	height int
	scale  float64
}

// NewCanvas creates a surface with the specified pixel dimensions
func NewCanvas(width, height int, scale float64) *Canvas {
	c := &Canvas{scale: scale}
	c.Resize(width, height)
	return c
}

// Resize adjusts surface dimensions, reallocates only if capacity insufficient
// Contents are cleared
func (c *Canvas) Resize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	size := width * height
	if cap(c.pix) < size {
		c.pix = make([]RGB, size)
	} else {
		c.pix = c.pix[:size]
	}
	c.width = width
	c.height = height
	c.Clear()
}

// Scale returns surface pixels per logical unit
func (c *Canvas) Scale() float64 {
	return c.scale
}

// Bounds returns surface dimensions in pixels
func (c *Canvas) Bounds() (width, height int) {
	return c.width, c.height
}

// Empty reports a zero-area surface, all drawing is a no-op
func (c *Canvas) Empty() bool {
	return c.width == 0 || c.height == 0
}

// Pixel returns the color at pixel (x, y), black when out of bounds
func (c *Canvas) Pixel(x, y int) RGB {
	if !c.inBounds(x, y) {
		return RGBBlack
	}
	return c.pix[y*c.width+x]
}

// inBounds returns true if in surface bounds
func (c *Canvas) inBounds(x, y int) bool {
	return x >= 0 && x < c.width && y >= 0 && y < c.height
}

// Clear resets all pixels to black using exponential copy
func (c *Canvas) Clear() {
	if len(c.pix) == 0 {
		return
	}
	c.pix[0] = RGBBlack
	for filled := 1; filled < len(c.pix); filled *= 2 {
		copy(c.pix[filled:], c.pix[:filled])
	}
}

// Fade blends every pixel toward col by alpha
// A low-alpha black fade each frame leaves short motion trails instead of a hard clear
func (c *Canvas) Fade(col RGB, alpha float64) {
	if alpha <= 0 {
		return
	}
	for i := range c.pix {
		c.pix[i] = Blend(c.pix[i], col, alpha)
	}
}

// BlendPixel composites col over pixel (x, y) with source-over alpha
func (c *Canvas) BlendPixel(x, y int, col RGB, alpha float64) {
	if alpha <= 0 || !c.inBounds(x, y) {
		return
	}
	idx := y*c.width + x
	c.pix[idx] = Blend(c.pix[idx], col, alpha)
}
