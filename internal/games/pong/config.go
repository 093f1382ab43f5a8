package pong

import (
	"fmt"

	"github.com/vovakirdan/pingpong/internal/core"
)

// Built-in tuning. The field is 210x160 logical pixels scaled by Scale.
const (
	Scale = 5

	DefaultFieldWidth   = 210 * Scale
	DefaultFieldHeight  = 160 * Scale
	DefaultPaddleWidth  = 10
	DefaultPaddleHeight = 24 * Scale
	DefaultPaddleSpeed  = 2.0 * Scale
	DefaultPaddleMargin = 0.5
	DefaultPaddleInset  = 4 * Scale // Gap between side wall and paddle
	DefaultPaddleStartY = 300
	DefaultBallSpeed    = 3.0
	DefaultBallRadius   = 1.5 * Scale
	DefaultBotDeadband  = 3.0
)

// Config holds every tunable of a game. It is fixed at construction and
// copied into the entities; nothing mutates it afterwards.
type Config struct {
	FieldWidth   float64
	FieldHeight  float64
	PaddleWidth  float64
	PaddleHeight float64
	PaddleSpeed  float64
	PaddleMargin float64
	PaddleInset  float64
	PaddleStartY float64
	BallSpeed    float64
	BallRadius   float64
	BotDeadband  float64

	// LegacyBottomWall uses the older bottom-wall test (y - r > height),
	// which lets the ball sink into the bottom edge before bouncing.
	LegacyBottomWall bool

	Background core.Color
	Foreground core.Color
}

// DefaultConfig returns the built-in game configuration.
func DefaultConfig() Config {
	return Config{
		FieldWidth:   DefaultFieldWidth,
		FieldHeight:  DefaultFieldHeight,
		PaddleWidth:  DefaultPaddleWidth,
		PaddleHeight: DefaultPaddleHeight,
		PaddleSpeed:  DefaultPaddleSpeed,
		PaddleMargin: DefaultPaddleMargin,
		PaddleInset:  DefaultPaddleInset,
		PaddleStartY: DefaultPaddleStartY,
		BallSpeed:    DefaultBallSpeed,
		BallRadius:   DefaultBallRadius,
		BotDeadband:  DefaultBotDeadband,
		Background:   core.ColorBlack,
		Foreground:   core.ColorWhite,
	}
}

// Center returns the middle of the field, where the ball is served from.
func (c Config) Center() core.Vec2 {
	return core.Vec2{X: c.FieldWidth / 2, Y: c.FieldHeight / 2}
}

// LeftPaddleX returns the x of paddle one's left edge.
func (c Config) LeftPaddleX() float64 {
	return c.PaddleInset
}

// RightPaddleX returns the x of paddle two's left edge.
func (c Config) RightPaddleX() float64 {
	return c.FieldWidth - c.PaddleInset - c.PaddleWidth
}

// Validate checks that the configuration describes a playable field.
func (c Config) Validate() error {
	positive := []struct {
		name string
		v    float64
	}{
		{"field width", c.FieldWidth},
		{"field height", c.FieldHeight},
		{"paddle width", c.PaddleWidth},
		{"paddle height", c.PaddleHeight},
		{"paddle speed", c.PaddleSpeed},
		{"ball speed", c.BallSpeed},
		{"ball radius", c.BallRadius},
	}
	for _, p := range positive {
		if p.v <= 0 {
			return fmt.Errorf("pong: %s must be positive, got %v", p.name, p.v)
		}
	}
	if c.PaddleMargin < 0 || c.BotDeadband < 0 {
		return fmt.Errorf("pong: paddle margin and bot deadband must not be negative")
	}
	if c.PaddleStartY < c.PaddleMargin || c.PaddleStartY+c.PaddleHeight+c.PaddleMargin > c.FieldHeight {
		return fmt.Errorf("pong: paddle start y %v leaves the field margin", c.PaddleStartY)
	}
	if c.RightPaddleX() <= c.LeftPaddleX()+c.PaddleWidth {
		return fmt.Errorf("pong: field width %v too narrow for paddle inset %v", c.FieldWidth, c.PaddleInset)
	}
	return nil
}
