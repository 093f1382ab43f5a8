package pong

import "github.com/vovakirdan/pingpong/internal/core"

// Paddle is a vertical-only rectangle driven by a Controller.
type Paddle struct {
	Position core.Vec2 // Top-left corner
	Size     core.Vec2

	controller Controller
	cfg        Config
}

// NewPaddle creates a paddle with its left edge at x and the configured
// start height.
func NewPaddle(cfg Config, x float64, c Controller) *Paddle {
	return &Paddle{
		Position:   core.Vec2{X: x, Y: cfg.PaddleStartY},
		Size:       core.Vec2{X: cfg.PaddleWidth, Y: cfg.PaddleHeight},
		controller: c,
		cfg:        cfg,
	}
}

// MoveVertical shifts the paddle by amount. A move that would bring the
// paddle within the margin of the top or bottom edge is undone entirely.
// Returns whether the move was kept.
func (p *Paddle) MoveVertical(amount float64) bool {
	p.Position.Y += amount
	if p.Position.Y < p.cfg.PaddleMargin || p.Position.Y+p.Size.Y+p.cfg.PaddleMargin > p.cfg.FieldHeight {
		p.Position.Y -= amount
		return false
	}
	return true
}

// Update applies this frame's move from the paddle's controller.
func (p *Paddle) Update(ball *Ball) {
	if p.controller == nil {
		return
	}
	if amount := p.controller.Decide(p, ball); amount != 0 {
		p.MoveVertical(amount)
	}
}

// IsBot reports whether the paddle is driven by the bot.
func (p *Paddle) IsBot() bool {
	_, ok := p.controller.(BotControlled)
	return ok
}

// Rect returns the paddle's bounds.
func (p *Paddle) Rect() core.Rect {
	return core.NewRect(p.Position.X, p.Position.Y, p.Size.X, p.Size.Y)
}

// Draw renders the paddle as a filled rectangle.
func (p *Paddle) Draw(c Canvas) {
	c.DrawRectangle(p.Position.X, p.Position.Y, p.Size.X, p.Size.Y, p.cfg.Foreground)
}
