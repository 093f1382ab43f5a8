// Package config provides YAML-based configuration loading for pingpong.
package config

import (
	"fmt"
	"time"

	"github.com/vovakirdan/pingpong/internal/core"
	"github.com/vovakirdan/pingpong/internal/games/pong"
)

// PongConfig is the on-disk configuration file.
type PongConfig struct {
	Field    FieldConfig    `yaml:"field"`
	Paddles  PaddleConfig   `yaml:"paddles"`
	Ball     BallConfig     `yaml:"ball"`
	Bot      BotConfig      `yaml:"bot"`
	Loop     LoopConfig     `yaml:"loop"`
	Terminal TerminalConfig `yaml:"terminal"`
}

// FieldConfig defines the play field in pixels.
type FieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PaddleConfig defines paddle size and movement.
type PaddleConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Speed  float64 `yaml:"speed"`
	Margin float64 `yaml:"margin"`
	Inset  float64 `yaml:"inset"`
	StartY float64 `yaml:"start_y"`
}

// BallConfig defines ball size, speed and wall behavior.
type BallConfig struct {
	Speed            float64 `yaml:"speed"`
	Radius           float64 `yaml:"radius"`
	LegacyBottomWall bool    `yaml:"legacy_bottom_wall"`
}

// BotConfig defines the bot controller.
type BotConfig struct {
	Deadband float64 `yaml:"deadband"`
}

// LoopConfig defines frame pacing.
type LoopConfig struct {
	TickRate int `yaml:"tick_rate"`
}

// TerminalConfig defines terminal frontend behavior.
type TerminalConfig struct {
	KeyInitialHoldMS int `yaml:"key_initial_hold_ms"` // Hold after a fresh press, spans the repeat delay
	KeyHoldMS        int `yaml:"key_hold_ms"`         // Hold added by each auto-repeat press
}

// Game converts the file into the immutable game configuration.
func (c PongConfig) Game() pong.Config {
	cfg := pong.DefaultConfig()
	cfg.FieldWidth = c.Field.Width
	cfg.FieldHeight = c.Field.Height
	cfg.PaddleWidth = c.Paddles.Width
	cfg.PaddleHeight = c.Paddles.Height
	cfg.PaddleSpeed = c.Paddles.Speed
	cfg.PaddleMargin = c.Paddles.Margin
	cfg.PaddleInset = c.Paddles.Inset
	cfg.PaddleStartY = c.Paddles.StartY
	cfg.BallSpeed = c.Ball.Speed
	cfg.BallRadius = c.Ball.Radius
	cfg.LegacyBottomWall = c.Ball.LegacyBottomWall
	cfg.BotDeadband = c.Bot.Deadband
	return cfg
}

// KeyTiming returns the terminal key hold windows.
func (c PongConfig) KeyTiming() core.KeyTiming {
	return core.KeyTiming{
		Initial: time.Duration(c.Terminal.KeyInitialHoldMS) * time.Millisecond,
		Repeat:  time.Duration(c.Terminal.KeyHoldMS) * time.Millisecond,
	}
}

// Validate checks the file describes a playable game.
func (c PongConfig) Validate() error {
	if err := c.Game().Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if c.Loop.TickRate <= 0 {
		return fmt.Errorf("config: tick_rate must be positive, got %d", c.Loop.TickRate)
	}
	if c.Terminal.KeyInitialHoldMS <= 0 {
		return fmt.Errorf("config: key_initial_hold_ms must be positive, got %d", c.Terminal.KeyInitialHoldMS)
	}
	if c.Terminal.KeyHoldMS <= 0 {
		return fmt.Errorf("config: key_hold_ms must be positive, got %d", c.Terminal.KeyHoldMS)
	}
	return nil
}
