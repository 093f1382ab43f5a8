package pong

import "github.com/vovakirdan/pingpong/internal/core"

// Canvas is the drawing surface a frontend hands to the game each frame.
// Coordinates are field pixels.
type Canvas interface {
	ClearBackground(c core.Color)
	DrawRectangle(x, y, w, h float64, c core.Color)
	DrawCircle(x, y, r float64, c core.Color)
}
