package engine

// Viewport maps terminal cells onto the logical field
// Each cell holds two stacked surface pixels, each pixel spans 1/ratio logical units
type Viewport struct {
	Cols, Rows int
	Ratio      float64
}

// PixelSize returns surface dimensions in half-block pixels
func (v Viewport) PixelSize() (width, height int) {
	return v.Cols, v.Rows * 2
}

// LogicalSize returns field dimensions in logical units
func (v Viewport) LogicalSize() (width, height float64) {
	if v.Ratio <= 0 {
		return 0, 0
	}
	return float64(v.Cols) / v.Ratio, float64(v.Rows*2) / v.Ratio
}

// Empty reports a zero-area terminal
func (v Viewport) Empty() bool {
	return v.Cols <= 0 || v.Rows <= 0
}

// CellToLogical returns the logical position of a cell's center
// ok is false outside the viewport
func (v Viewport) CellToLogical(col, row int) (x, y float64, ok bool) {
	if v.Ratio <= 0 || col < 0 || row < 0 || col >= v.Cols || row >= v.Rows {
		return 0, 0, false
	}
	return (float64(col) + 0.5) / v.Ratio, float64(row*2+1) / v.Ratio, true
}
