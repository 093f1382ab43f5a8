package pong

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/pingpong/internal/core"
)

// keys is an Input backed by a set of held actions.
type keys map[core.Action]bool

func (k keys) IsKeyDown(a core.Action) bool { return k[a] }

// recordingCanvas logs every draw call in order.
type recordingCanvas struct {
	ops []string
}

func (c *recordingCanvas) ClearBackground(col core.Color) {
	c.ops = append(c.ops, fmt.Sprintf("clear %d", col))
}

func (c *recordingCanvas) DrawRectangle(x, y, w, h float64, _ core.Color) {
	c.ops = append(c.ops, fmt.Sprintf("rect %g,%g %gx%g", x, y, w, h))
}

func (c *recordingCanvas) DrawCircle(x, y, r float64, _ core.Color) {
	c.ops = append(c.ops, fmt.Sprintf("circle %g,%g r%g", x, y, r))
}

func testBall(cfg Config) *Ball {
	return NewBall(cfg, rand.New(rand.NewSource(1)))
}
