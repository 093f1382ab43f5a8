package pong

import (
	"math/rand"

	"github.com/vovakirdan/pingpong/internal/core"
)

// Ball is a circle moving at a fixed diagonal speed.
type Ball struct {
	Position core.Vec2 // Center
	Velocity core.Vec2
	Radius   float64

	cfg Config
	rng *rand.Rand
}

// NewBall creates a ball at the field center with a random diagonal velocity.
func NewBall(cfg Config, rng *rand.Rand) *Ball {
	b := &Ball{
		Position: cfg.Center(),
		Radius:   cfg.BallRadius,
		cfg:      cfg,
		rng:      rng,
	}
	b.ResetVelocity()
	return b
}

// MoveHorizontal advances x. Leaving [0, width] serves the ball again from
// the center; the check runs after the move, so the ball may be drawn one
// frame past the edge. Returns whether the ball was served.
func (b *Ball) MoveHorizontal() bool {
	b.Position.X += b.Velocity.X
	if b.Position.X < 0 || b.Position.X > b.cfg.FieldWidth {
		b.Position = b.cfg.Center()
		b.ResetVelocity()
		return true
	}
	return false
}

// MoveVertical advances y, or bounces off the top/bottom wall by stepping
// back and reflecting vy. Returns whether it bounced.
func (b *Ball) MoveVertical() bool {
	if b.Position.Y-b.Radius < 0 || b.pastBottom() {
		b.Position.Y -= b.Velocity.Y
		b.Velocity.Y = -b.Velocity.Y
		return true
	}
	b.Position.Y += b.Velocity.Y
	return false
}

func (b *Ball) pastBottom() bool {
	if b.cfg.LegacyBottomWall {
		return b.Position.Y-b.Radius > b.cfg.FieldHeight
	}
	return b.Position.Y+b.Radius > b.cfg.FieldHeight
}

// ResetVelocity picks each component independently from {+speed, -speed}.
func (b *Ball) ResetVelocity() {
	b.Velocity.X = b.randomDirection() * b.cfg.BallSpeed
	b.Velocity.Y = b.randomDirection() * b.cfg.BallSpeed
}

func (b *Ball) randomDirection() float64 {
	if b.rng.Intn(2) == 0 {
		return -1
	}
	return 1
}

// CheckCollisionWith reverses vx when the paddle strictly contains the
// ball's center. Position and vy are left alone. Returns whether it fired.
func (b *Ball) CheckCollisionWith(p *Paddle) bool {
	if !p.Rect().ContainsStrict(b.Position) {
		return false
	}
	b.Velocity.X = -b.Velocity.X
	return true
}

// Update moves horizontally then vertically. The vertical step is skipped
// on a serve so the ball starts exactly at the center.
// Returns whether the ball was served this frame.
func (b *Ball) Update() bool {
	if b.MoveHorizontal() {
		return true
	}
	b.MoveVertical()
	return false
}

// Draw renders the ball as a filled circle.
func (b *Ball) Draw(c Canvas) {
	c.DrawCircle(b.Position.X, b.Position.Y, b.Radius, b.cfg.Foreground)
}
