package vmath

// Rect is an axis-aligned rectangle in logical units, bounds are inclusive
type Rect struct {
	X, Y          float64 // Top-left corner
	Width, Height float64
}

func (r Rect) Right() float64  { return r.X + r.Width }
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// Center returns the midpoint of the rectangle
func (r Rect) Center() (x, y float64) {
	return r.X + r.Width*0.5, r.Y + r.Height*0.5
}

// Contains checks if point is within rect, edges included
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.Right() && y >= r.Y && y <= r.Bottom()
}

// Nearest returns the closest point of the filled rectangle to (x, y)
// For interior points this is the point itself
func (r Rect) Nearest(x, y float64) (nx, ny float64) {
	return Clamp(x, r.X, r.Right()), Clamp(y, r.Y, r.Bottom())
}

// NearestEdge returns the closest point on the rectangle's boundary to (x, y)
// Ties between edges resolve left, right, top, bottom in that order
func (r Rect) NearestEdge(x, y float64) (ex, ey float64) {
	if !r.Contains(x, y) {
		return r.Nearest(x, y)
	}
	left := x - r.X
	right := r.Right() - x
	top := y - r.Y
	bottom := r.Bottom() - y

	ex, ey = r.X, y
	best := left
	if right < best {
		best = right
		ex, ey = r.Right(), y
	}
	if top < best {
		best = top
		ex, ey = x, r.Y
	}
	if bottom < best {
		ex, ey = x, r.Bottom()
	}
	return ex, ey
}
