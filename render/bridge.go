package render

import "github.com/gdamore/tcell/v2"

// upperHalfBlock shows the upper pixel as foreground and the lower pixel as background
const upperHalfBlock = '▀'

// RGBToTcell converts RGB to tcell.Color for the given mode
func RGBToTcell(rgb RGB, mode ColorMode) tcell.Color {
	if mode == ColorMode256 {
		return tcell.PaletteColor(int(RGBTo256(rgb)))
	}
	return tcell.NewRGBColor(int32(rgb.R), int32(rgb.G), int32(rgb.B))
}

// Present writes the surface to screen, one cell per pixel column and pixel row pair
// Cells outside the screen are skipped, the caller decides when to Show
func (c *Canvas) Present(screen tcell.Screen, mode ColorMode) {
	if screen == nil || c.Empty() {
		return
	}
	cols, rows := screen.Size()
	if cols > c.width {
		cols = c.width
	}
	if rows > (c.height+1)/2 {
		rows = (c.height + 1) / 2
	}

	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			upper := c.Pixel(col, row*2)
			lower := c.Pixel(col, row*2+1)
			style := tcell.StyleDefault.
				Foreground(RGBToTcell(upper, mode)).
				Background(RGBToTcell(lower, mode))
			screen.SetContent(col, row, upperHalfBlock, nil, style)
		}
	}
}
