// Package core provides fundamental types and utilities shared by the game
// and its frontends. It contains no external dependencies (especially no
// Bubble Tea or Ebiten) to keep game logic pure and testable.
package core

// Vec2 is a point or displacement in field pixels.
type Vec2 struct {
	X, Y float64
}

// Rect represents an axis-aligned box in field pixels.
type Rect struct {
	X, Y float64 // Top-left corner position
	W, H float64 // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// ContainsStrict reports whether p lies strictly inside the rectangle.
// Points on an edge are outside.
func (r Rect) ContainsStrict(p Vec2) bool {
	return r.X < p.X && p.X < r.Right() && r.Y < p.Y && p.Y < r.Bottom()
}

// Sign returns -1, 0 or 1 matching the sign of x.
func Sign(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}
