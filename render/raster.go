package render

import (
	"math"

	"github.com/lixenwraith/neural-field/vmath"
)

// GradientStop is one color stop of a radial gradient, Offset in [0,1]
type GradientStop struct {
	Offset float64
	Color  RGB
	Alpha  float64
}

// sampleStops interpolates color and alpha at t across sorted stops
func sampleStops(stops []GradientStop, t float64) (RGB, float64) {
	if t <= stops[0].Offset {
		return stops[0].Color, stops[0].Alpha
	}
	for i := 1; i < len(stops); i++ {
		if t <= stops[i].Offset {
			a, b := stops[i-1], stops[i]
			span := b.Offset - a.Offset
			if span <= 0 {
				return b.Color, b.Alpha
			}
			k := (t - a.Offset) / span
			return Lerp(a.Color, b.Color, k), vmath.Lerp(a.Alpha, b.Alpha, k)
		}
	}
	last := stops[len(stops)-1]
	return last.Color, last.Alpha
}

// pixelRange returns the pixel index range covering [lo, hi] in pixel space, clipped to size
func pixelRange(lo, hi float64, size int) (start, end int) {
	start = int(math.Floor(lo))
	end = int(math.Ceil(hi))
	if start < 0 {
		start = 0
	}
	if end > size {
		end = size
	}
	return start, end
}

// Dot plots the pixel containing logical point (x, y)
// Sub-pixel primitives collapse to a dot so they stay visible at coarse scales
func (c *Canvas) Dot(x, y float64, col RGB, alpha float64) {
	px := int(math.Floor(x * c.scale))
	py := int(math.Floor(y * c.scale))
	c.BlendPixel(px, py, col, alpha)
}

// FillCircle fills an antialiased disc of logical radius r
func (c *Canvas) FillCircle(x, y, r float64, col RGB, alpha float64) {
	if c.Empty() || alpha <= 0 {
		return
	}
	cx, cy, rp := x*c.scale, y*c.scale, r*c.scale
	if rp < 0.5 {
		c.Dot(x, y, col, alpha)
		return
	}

	x0, x1 := pixelRange(cx-rp-1, cx+rp+1, c.width)
	y0, y1 := pixelRange(cy-rp-1, cy+rp+1, c.height)
	for py := y0; py < y1; py++ {
		dy := float64(py) + 0.5 - cy
		for px := x0; px < x1; px++ {
			dx := float64(px) + 0.5 - cx
			cov := vmath.Clamp01(rp + 0.5 - math.Sqrt(dx*dx+dy*dy))
			if cov > 0 {
				c.BlendPixel(px, py, col, alpha*cov)
			}
		}
	}
}

// RadialGlow fills a disc of logical radius r with a multi-stop radial gradient
// Stops must be sorted by offset, beyond r nothing is drawn
func (c *Canvas) RadialGlow(x, y, r float64, stops []GradientStop) {
	if c.Empty() || len(stops) == 0 || r <= 0 {
		return
	}
	cx, cy, rp := x*c.scale, y*c.scale, r*c.scale
	if rp < 0.5 {
		c.Dot(x, y, stops[0].Color, stops[0].Alpha)
		return
	}

	x0, x1 := pixelRange(cx-rp, cx+rp, c.width)
	y0, y1 := pixelRange(cy-rp, cy+rp, c.height)
	inv := 1 / rp
	for py := y0; py < y1; py++ {
		dy := float64(py) + 0.5 - cy
		for px := x0; px < x1; px++ {
			dx := float64(px) + 0.5 - cx
			d := math.Sqrt(dx*dx + dy*dy)
			if d >= rp {
				continue
			}
			col, a := sampleStops(stops, d*inv)
			c.BlendPixel(px, py, col, a)
		}
	}
}

// StrokeCircle draws an antialiased ring of logical radius r
func (c *Canvas) StrokeCircle(x, y, r float64, col RGB, alpha float64) {
	if c.Empty() || alpha <= 0 {
		return
	}
	cx, cy, rp := x*c.scale, y*c.scale, r*c.scale
	if rp < 0.5 {
		c.Dot(x, y, col, alpha)
		return
	}

	x0, x1 := pixelRange(cx-rp-1, cx+rp+1, c.width)
	y0, y1 := pixelRange(cy-rp-1, cy+rp+1, c.height)
	for py := y0; py < y1; py++ {
		dy := float64(py) + 0.5 - cy
		for px := x0; px < x1; px++ {
			dx := float64(px) + 0.5 - cx
			cov := 1 - math.Abs(math.Sqrt(dx*dx+dy*dy)-rp)
			if cov > 0 {
				c.BlendPixel(px, py, col, alpha*cov)
			}
		}
	}
}

// Line draws an antialiased line with color and alpha interpolated from start to end
// Logical width below one unit thins the line by lowering its alpha, never below half
func (c *Canvas) Line(x1, y1, x2, y2, width float64, from, to RGB, a1, a2 float64) {
	if c.Empty() || (a1 <= 0 && a2 <= 0) {
		return
	}
	px1, py1 := x1*c.scale, y1*c.scale
	px2, py2 := x2*c.scale, y2*c.scale
	dx, dy := px2-px1, py2-py1
	widthAlpha := vmath.Clamp(width, 0.5, 1)

	steps := int(math.Ceil(math.Max(math.Abs(dx), math.Abs(dy))))
	if steps == 0 {
		c.Dot(x1, y1, from, a1*widthAlpha)
		return
	}

	// Only the part of the segment over the surface is stepped, gradients keep the full-segment parameter
	t0, t1, ok := clipSegment(px1, py1, dx, dy, float64(c.width), float64(c.height))
	if !ok {
		return
	}
	first := max(0, int(math.Floor(t0*float64(steps))))
	last := min(steps, int(math.Ceil(t1*float64(steps))))

	steep := math.Abs(dy) > math.Abs(dx)
	inv := 1 / float64(steps)
	for i := first; i <= last; i++ {
		fi := float64(i)
		t := fi * inv
		x := px1 + dx*fi/float64(steps)
		y := py1 + dy*fi/float64(steps)
		col := Lerp(from, to, t)
		a := vmath.Lerp(a1, a2, t) * widthAlpha

		// Split coverage between the two pixels straddling the line on the minor axis
		if steep {
			base := math.Floor(x - 0.5)
			frac := x - 0.5 - base
			row := int(math.Floor(y))
			c.BlendPixel(int(base), row, col, a*(1-frac))
			c.BlendPixel(int(base)+1, row, col, a*frac)
		} else {
			base := math.Floor(y - 0.5)
			frac := y - 0.5 - base
			column := int(math.Floor(x))
			c.BlendPixel(column, int(base), col, a*(1-frac))
			c.BlendPixel(column, int(base)+1, col, a*frac)
		}
	}
}

// FillRect fills a logical rectangle, edge pixels weighted by covered area
func (c *Canvas) FillRect(x, y, w, h float64, col RGB, alpha float64) {
	if c.Empty() || alpha <= 0 || w <= 0 || h <= 0 {
		return
	}
	rx0, ry0 := x*c.scale, y*c.scale
	rx1, ry1 := (x+w)*c.scale, (y+h)*c.scale

	x0, x1 := pixelRange(rx0, rx1, c.width)
	y0, y1 := pixelRange(ry0, ry1, c.height)
	for py := y0; py < y1; py++ {
		covY := math.Min(float64(py+1), ry1) - math.Max(float64(py), ry0)
		if covY <= 0 {
			continue
		}
		for px := x0; px < x1; px++ {
			covX := math.Min(float64(px+1), rx1) - math.Max(float64(px), rx0)
			if covX <= 0 {
				continue
			}
			c.BlendPixel(px, py, col, alpha*covX*covY)
		}
	}
}

// clipSegment returns the parameter range of p + d*t, t in [0,1], inside the surface plus a one-pixel border
func clipSegment(x, y, dx, dy, w, h float64) (t0, t1 float64, ok bool) {
	t0, t1 = 0, 1
	p := [4]float64{-dx, dx, -dy, dy}
	q := [4]float64{x + 1, w + 1 - x, y + 1, h + 1 - y}
	for i := range p {
		if p[i] == 0 {
			if q[i] < 0 {
				return 0, 0, false
			}
			continue
		}
		r := q[i] / p[i]
		if p[i] < 0 {
			if r > t1 {
				return 0, 0, false
			}
			t0 = max(t0, r)
		} else {
			if r < t0 {
				return 0, 0, false
			}
			t1 = min(t1, r)
		}
	}
	return t0, t1, true
}

// StrokeRect outlines a logical rectangle with one-pixel lines
func (c *Canvas) StrokeRect(x, y, w, h float64, col RGB, alpha float64) {
	if c.Empty() || alpha <= 0 {
		return
	}
	// Edges run through pixel centers of the outermost covered pixels
	inset := 0.5 / c.scale
	l, t := x+inset, y+inset
	r, b := x+w-inset, y+h-inset
	c.Line(l, t, r, t, 1, col, col, alpha, alpha)
	c.Line(l, b, r, b, 1, col, col, alpha, alpha)
	c.Line(l, t, l, b, 1, col, col, alpha, alpha)
	c.Line(r, t, r, b, 1, col, col, alpha, alpha)
}
