package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var white = RGB{255, 255, 255}

func TestCanvasResizeClears(t *testing.T) {
	c := NewCanvas(4, 4, 1)
	c.BlendPixel(1, 1, white, 1)
	require.Equal(t, white, c.Pixel(1, 1))

	c.Resize(2, 6)
	w, h := c.Bounds()
	assert.Equal(t, 2, w)
	assert.Equal(t, 6, h)
	assert.Equal(t, RGBBlack, c.Pixel(1, 1))

	c.Resize(0, 0)
	assert.True(t, c.Empty())
	c.FillCircle(1, 1, 5, white, 1) // no-op on empty surface
}

func TestCanvasOutOfBounds(t *testing.T) {
	c := NewCanvas(3, 3, 1)
	c.BlendPixel(-1, 0, white, 1)
	c.BlendPixel(3, 3, white, 1)
	assert.Equal(t, RGBBlack, c.Pixel(-1, 0))
	assert.Equal(t, RGBBlack, c.Pixel(5, 5))
}

func TestFadeLeavesTrail(t *testing.T) {
	c := NewCanvas(2, 2, 1)
	c.BlendPixel(0, 0, white, 1)

	c.Fade(RGBBlack, 0.08)
	p := c.Pixel(0, 0)
	assert.Less(t, p.R, uint8(255))
	assert.Greater(t, p.R, uint8(200), "single fade keeps most of the previous frame")

	for i := 0; i < 200; i++ {
		c.Fade(RGBBlack, 0.08)
	}
	assert.Equal(t, RGBBlack, c.Pixel(0, 0))
}

func TestFillCircle(t *testing.T) {
	c := NewCanvas(20, 20, 1)
	c.FillCircle(10, 10, 3, white, 1)

	assert.Equal(t, white, c.Pixel(10, 10))
	assert.Equal(t, white, c.Pixel(8, 10))
	assert.Equal(t, RGBBlack, c.Pixel(0, 0))
	assert.Equal(t, RGBBlack, c.Pixel(15, 10))
}

func TestSubPixelPrimitivesStayVisible(t *testing.T) {
	c := NewCanvas(10, 10, 0.125)

	c.FillCircle(12, 12, 1, white, 1)
	assert.Equal(t, white, c.Pixel(1, 1), "radius 1 at 1/8 scale plots one pixel")

	c.RadialGlow(44, 4, 2, []GradientStop{{Offset: 0, Color: white, Alpha: 1}})
	assert.Equal(t, white, c.Pixel(5, 0))
}

func TestRadialGlowFalloff(t *testing.T) {
	c := NewCanvas(21, 21, 1)
	c.RadialGlow(10.5, 10.5, 10, []GradientStop{
		{Offset: 0, Color: white, Alpha: 1},
		{Offset: 1, Color: white, Alpha: 0},
	})

	center := c.Pixel(10, 10).R
	mid := c.Pixel(15, 10).R
	edge := c.Pixel(20, 10).R
	assert.Greater(t, center, mid)
	assert.Greater(t, mid, edge)
	assert.Equal(t, RGBBlack, c.Pixel(0, 0), "corner lies outside the radius")
}

func TestSampleStops(t *testing.T) {
	stops := []GradientStop{
		{Offset: 0, Color: white, Alpha: 1},
		{Offset: 0.5, Color: white, Alpha: 0.4},
		{Offset: 1, Color: RGBBlack, Alpha: 0},
	}

	tests := []struct {
		name  string
		t     float64
		alpha float64
	}{
		{"start", 0, 1},
		{"first half", 0.25, 0.7},
		{"middle stop", 0.5, 0.4},
		{"second half", 0.75, 0.2},
		{"end", 1, 0},
		{"beyond", 1.5, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, a := sampleStops(stops, tt.t)
			assert.InDelta(t, tt.alpha, a, 1e-9)
		})
	}
}

func TestLine(t *testing.T) {
	t.Run("full width is opaque", func(t *testing.T) {
		c := NewCanvas(20, 5, 1)
		c.Line(0, 2.5, 19, 2.5, 1, white, white, 1, 1)
		assert.Equal(t, white, c.Pixel(5, 2))
		assert.Equal(t, RGBBlack, c.Pixel(5, 0))
	})

	t.Run("thin line halves alpha", func(t *testing.T) {
		c := NewCanvas(20, 5, 1)
		c.Line(0, 2.5, 19, 2.5, 0.25, white, white, 1, 1)
		assert.Equal(t, uint8(127), c.Pixel(5, 2).R)
	})

	t.Run("alpha gradient along segment", func(t *testing.T) {
		c := NewCanvas(20, 5, 1)
		c.Line(0, 2.5, 19, 2.5, 1, white, white, 1, 0.1)
		assert.Greater(t, c.Pixel(2, 2).R, c.Pixel(17, 2).R)
	})

	t.Run("steep line", func(t *testing.T) {
		c := NewCanvas(5, 20, 1)
		c.Line(2.5, 0, 2.5, 19, 1, white, white, 1, 1)
		assert.Equal(t, white, c.Pixel(2, 10))
	})

	t.Run("huge segment steps only the visible part", func(t *testing.T) {
		c := NewCanvas(20, 5, 1)
		c.Line(-1e12, 2.5, 1e12, 2.5, 1, white, white, 1, 1)
		assert.Equal(t, white, c.Pixel(0, 2))
		assert.Equal(t, white, c.Pixel(19, 2))
		assert.Equal(t, RGBBlack, c.Pixel(10, 0))
	})

	t.Run("segment off the surface draws nothing", func(t *testing.T) {
		c := NewCanvas(20, 5, 1)
		c.Line(-100, -50, 100, -50, 1, white, white, 1, 1)
		c.Line(30, 0, 40, 4, 1, white, white, 1, 1)
		for y := 0; y < 5; y++ {
			for x := 0; x < 20; x++ {
				assert.Equal(t, RGBBlack, c.Pixel(x, y))
			}
		}
	})

	t.Run("degenerate line plots a dot", func(t *testing.T) {
		c := NewCanvas(5, 5, 1)
		c.Line(2.2, 2.2, 2.2, 2.2, 1, white, white, 1, 1)
		assert.Equal(t, white, c.Pixel(2, 2))
	})
}

func TestFillRectAreaWeighted(t *testing.T) {
	c := NewCanvas(4, 4, 1)
	c.FillRect(0, 0, 0.5, 1, white, 1)
	assert.Equal(t, uint8(127), c.Pixel(0, 0).R)

	c.FillRect(1, 1, 2, 2, white, 1)
	assert.Equal(t, white, c.Pixel(1, 1))
	assert.Equal(t, white, c.Pixel(2, 2))
	assert.Equal(t, RGBBlack, c.Pixel(3, 3))
}

func TestStrokeRectHugeZone(t *testing.T) {
	c := NewCanvas(10, 10, 0.125)
	c.StrokeRect(0, 0, 1e12, 1e12, white, 1)
	assert.Equal(t, white, c.Pixel(0, 5), "left edge crosses the surface")
	assert.Equal(t, white, c.Pixel(5, 0), "top edge crosses the surface")
	assert.Equal(t, RGBBlack, c.Pixel(5, 5))
}

func TestStrokeRectOutline(t *testing.T) {
	c := NewCanvas(10, 10, 1)
	c.StrokeRect(1, 1, 6, 6, white, 1)

	assert.NotEqual(t, RGBBlack, c.Pixel(1, 1))
	assert.NotEqual(t, RGBBlack, c.Pixel(6, 4))
	assert.Equal(t, RGBBlack, c.Pixel(4, 4), "interior untouched")
}

func TestPresentHalfBlocks(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	defer screen.Fini()
	screen.SetSize(3, 2)

	c := NewCanvas(3, 4, 1)
	c.BlendPixel(0, 0, white, 1)
	c.BlendPixel(1, 3, RGB{10, 20, 30}, 1)
	c.Present(screen, ColorModeTrueColor)

	mainc, _, style, _ := screen.GetContent(0, 0)
	assert.Equal(t, upperHalfBlock, mainc)
	assert.Equal(t, tcell.StyleDefault.
		Foreground(tcell.NewRGBColor(255, 255, 255)).
		Background(tcell.NewRGBColor(0, 0, 0)), style)

	_, _, style, _ = screen.GetContent(1, 1)
	assert.Equal(t, tcell.StyleDefault.
		Foreground(tcell.NewRGBColor(0, 0, 0)).
		Background(tcell.NewRGBColor(10, 20, 30)), style)
}

func TestPresentPalette(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	defer screen.Fini()
	screen.SetSize(1, 1)

	c := NewCanvas(1, 2, 1)
	c.BlendPixel(0, 0, white, 1)
	c.Present(screen, ColorMode256)

	_, _, style, _ := screen.GetContent(0, 0)
	assert.Equal(t, tcell.StyleDefault.
		Foreground(tcell.PaletteColor(int(RGBTo256(white)))).
		Background(tcell.PaletteColor(int(RGBTo256(RGBBlack)))), style)
}
