package core

import "math"

// Canvas maps a fixed logical drawing surface onto a region of a Screen.
// Logical rectangles are scaled to whole cells, so anything with a positive
// area covers at least one cell.
type Canvas struct {
	screen   *Screen
	region   Rect
	logicalW float64
	logicalH float64
}

// NewCanvas creates a canvas of logical size w x h drawn into region of screen.
func NewCanvas(screen *Screen, region Rect, w, h float64) *Canvas {
	return &Canvas{
		screen:   screen,
		region:   region,
		logicalW: w,
		logicalH: h,
	}
}

// Size returns the logical size of the surface.
func (c *Canvas) Size() (w, h float64) {
	return c.logicalW, c.logicalH
}

// Region returns the screen cells the canvas draws into.
func (c *Canvas) Region() Rect {
	return c.region
}

// SetRegion moves or resizes the canvas on its screen.
func (c *Canvas) SetRegion(r Rect) {
	c.region = r
}

// Clear paints the whole region with the background color.
func (c *Canvas) Clear(col Color) {
	c.FillRect(0, 0, c.logicalW, c.logicalH, col)
}

// FillRect paints a logical rectangle. Parts outside the surface are clipped.
func (c *Canvas) FillRect(x, y, w, h float64, col Color) {
	if w <= 0 || h <= 0 || c.region.W <= 0 || c.region.H <= 0 {
		return
	}

	sx := float64(c.region.W) / c.logicalW
	sy := float64(c.region.H) / c.logicalH

	x0 := Clamp(int(math.Floor(x*sx)), 0, c.region.W)
	x1 := Clamp(int(math.Ceil((x+w)*sx)), 0, c.region.W)
	y0 := Clamp(int(math.Floor(y*sy)), 0, c.region.H)
	y1 := Clamp(int(math.Ceil((y+h)*sy)), 0, c.region.H)

	r := runeFor(col)
	for cy := y0; cy < y1; cy++ {
		for cx := x0; cx < x1; cx++ {
			c.screen.SetColor(c.region.X+cx, c.region.Y+cy, r, col)
		}
	}
}

// runeFor picks the glyph used to shade a color in a terminal.
func runeFor(col Color) rune {
	switch col {
	case ColorSky, ColorDefault:
		return ' '
	case ColorCloud:
		return '▒'
	case ColorEye:
		return '•'
	default:
		return '█'
	}
}
