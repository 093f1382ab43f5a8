package pong

// Snapshot is a flat copy of the game state, for logging and frame dumps.
type Snapshot struct {
	BallX      float64
	BallY      float64
	BallVX     float64
	BallVY     float64
	PaddleOneY float64
	PaddleTwoY float64
	Stats      Stats
}

// Snapshot returns the current game state.
func (g *GameState) Snapshot() Snapshot {
	return Snapshot{
		BallX:      g.Ball.Position.X,
		BallY:      g.Ball.Position.Y,
		BallVX:     g.Ball.Velocity.X,
		BallVY:     g.Ball.Velocity.Y,
		PaddleOneY: g.PlayerOne.Position.Y,
		PaddleTwoY: g.PlayerTwo.Position.Y,
		Stats:      g.stats,
	}
}

// Draw renders the snapshot exactly as GameState.Draw renders live state.
// Remote viewers hold only snapshots, so sizes come from cfg.
func (s Snapshot) Draw(c Canvas, cfg Config) {
	c.DrawCircle(s.BallX, s.BallY, cfg.BallRadius, cfg.Foreground)
	c.DrawRectangle(cfg.LeftPaddleX(), s.PaddleOneY, cfg.PaddleWidth, cfg.PaddleHeight, cfg.Foreground)
	c.DrawRectangle(cfg.RightPaddleX(), s.PaddleTwoY, cfg.PaddleWidth, cfg.PaddleHeight, cfg.Foreground)
}
