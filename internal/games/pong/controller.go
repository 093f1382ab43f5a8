package pong

import "github.com/vovakirdan/pingpong/internal/core"

// Input reports whether a logical key is held during the current frame.
type Input interface {
	IsKeyDown(a core.Action) bool
}

// Controller decides how far a paddle moves vertically this frame.
// Zero means hold still.
type Controller interface {
	Decide(p *Paddle, ball *Ball) float64
}

// HumanControlled moves the paddle from keyboard input.
// Up is checked first; with both keys held only up applies.
type HumanControlled struct {
	Input Input
}

// Decide implements Controller.
func (h HumanControlled) Decide(p *Paddle, _ *Ball) float64 {
	if h.Input == nil {
		return 0
	}
	if h.Input.IsKeyDown(core.ActionUp) {
		return -p.cfg.PaddleSpeed
	}
	if h.Input.IsKeyDown(core.ActionDown) {
		return p.cfg.PaddleSpeed
	}
	return 0
}

// BotControlled steers toward the ball's current height. It is not
// predictive: only the ball position matters, never its velocity.
type BotControlled struct {
	// Deadband is the half-width of the error range where the bot holds still.
	Deadband float64
}

// Decide implements Controller.
func (b BotControlled) Decide(p *Paddle, ball *Ball) float64 {
	direction := (ball.Position.Y - p.Size.Y/2) - p.Position.Y
	if direction > -b.Deadband && direction < b.Deadband {
		return 0
	}
	return core.Sign(direction) * p.cfg.PaddleSpeed
}
