package config

import (
	_ "embed"

	"github.com/vovakirdan/pingpong/internal/core"
	"github.com/vovakirdan/pingpong/internal/games/pong"
)

//go:embed defaults/pong.yaml
var defaultPongYAML []byte

// DefaultPongConfig returns the built-in configuration. It matches the
// embedded defaults/pong.yaml.
func DefaultPongConfig() PongConfig {
	return PongConfig{
		Field: FieldConfig{
			Width:  pong.DefaultFieldWidth,
			Height: pong.DefaultFieldHeight,
		},
		Paddles: PaddleConfig{
			Width:  pong.DefaultPaddleWidth,
			Height: pong.DefaultPaddleHeight,
			Speed:  pong.DefaultPaddleSpeed,
			Margin: pong.DefaultPaddleMargin,
			Inset:  pong.DefaultPaddleInset,
			StartY: pong.DefaultPaddleStartY,
		},
		Ball: BallConfig{
			Speed:  pong.DefaultBallSpeed,
			Radius: pong.DefaultBallRadius,
		},
		Bot: BotConfig{
			Deadband: pong.DefaultBotDeadband,
		},
		Loop: LoopConfig{
			TickRate: core.DefaultConfig().TickRate,
		},
		Terminal: TerminalConfig{
			KeyInitialHoldMS: int(core.DefaultInitialHold.Milliseconds()),
			KeyHoldMS:        int(core.DefaultRepeatHold.Milliseconds()),
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultPongYAML
}
