package tui

import (
	"math"

	"github.com/vovakirdan/pingpong/internal/core"
)

// Visual characters for rendering
const (
	RectChar   = '█'
	CircleChar = '●'
)

// CellCanvas draws field-pixel shapes into a terminal cell buffer.
// The whole field is stretched over the screen, so one cell covers
// fieldW/width by fieldH/height pixels.
type CellCanvas struct {
	screen *core.Screen
	fieldW float64
	fieldH float64
}

// NewCellCanvas creates a canvas over screen for a field of the given size.
func NewCellCanvas(screen *core.Screen, fieldW, fieldH float64) *CellCanvas {
	return &CellCanvas{screen: screen, fieldW: fieldW, fieldH: fieldH}
}

func (c *CellCanvas) cellSize() (float64, float64) {
	return c.fieldW / float64(max(c.screen.Width(), 1)), c.fieldH / float64(max(c.screen.Height(), 1))
}

// ClearBackground blanks the screen. The terminal's own background shows
// through, so the color only tints blank cells.
func (c *CellCanvas) ClearBackground(col core.Color) {
	if col == core.ColorBlack {
		col = core.ColorDefault
	}
	c.screen.Fill(' ', col)
}

// DrawRectangle fills every cell the rectangle touches, at least one.
func (c *CellCanvas) DrawRectangle(x, y, w, h float64, col core.Color) {
	cw, ch := c.cellSize()
	x0, y0 := int(math.Floor(x/cw)), int(math.Floor(y/ch))
	x1 := max(int(math.Ceil((x+w)/cw))-1, x0)
	y1 := max(int(math.Ceil((y+h)/ch))-1, y0)
	c.screen.FillCells(x0, y0, x1, y1, RectChar, col)
}

// DrawCircle marks the cell under the center plus every cell whose center
// lies within the radius.
func (c *CellCanvas) DrawCircle(x, y, r float64, col core.Color) {
	cw, ch := c.cellSize()
	c.screen.Set(int(math.Floor(x/cw)), int(math.Floor(y/ch)), CircleChar, col)

	for cy := int(math.Floor((y - r) / ch)); cy <= int(math.Floor((y+r)/ch)); cy++ {
		for cx := int(math.Floor((x - r) / cw)); cx <= int(math.Floor((x+r)/cw)); cx++ {
			dx := (float64(cx)+0.5)*cw - x
			dy := (float64(cy)+0.5)*ch - y
			if dx*dx+dy*dy <= r*r {
				c.screen.Set(cx, cy, CircleChar, col)
			}
		}
	}
}
