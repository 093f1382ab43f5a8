// Package pong implements a two-paddle ball game with a bot opponent.
// The game is pure state plus arithmetic; frontends supply input, a
// Canvas and the frame clock.
package pong

import (
	"math/rand"
)

// Stats counts what happened since the game started. It is observational
// only: the game has no score and never ends.
type Stats struct {
	Frames       uint64
	LeftReturns  int // Paddle one collisions
	RightReturns int // Paddle two collisions
	Serves       int // Ball left the field and was re-served
}

// GameState owns both paddles and the ball.
type GameState struct {
	PlayerOne *Paddle
	PlayerTwo *Paddle
	Ball      *Ball

	cfg   Config
	stats Stats
}

// New creates a game with paddle one on the left and paddle two on the right.
// The seed drives the ball's serve directions.
func New(cfg Config, one, two Controller, seed int64) *GameState {
	rng := rand.New(rand.NewSource(seed)) //nolint:gosec // gameplay randomness
	return &GameState{
		PlayerOne: NewPaddle(cfg, cfg.LeftPaddleX(), one),
		PlayerTwo: NewPaddle(cfg, cfg.RightPaddleX(), two),
		Ball:      NewBall(cfg, rng),
		cfg:       cfg,
	}
}

// NewVsBot creates the standard game: a human on the left against the bot.
func NewVsBot(cfg Config, in Input, seed int64) *GameState {
	return New(cfg, HumanControlled{Input: in}, BotControlled{Deadband: cfg.BotDeadband}, seed)
}

// Config returns the configuration the game was built with.
func (g *GameState) Config() Config {
	return g.cfg
}

// Update advances the game by one frame. Paddles react to the ball after it
// has moved; collisions are checked last, paddle one first.
func (g *GameState) Update() {
	g.stats.Frames++

	if g.Ball.Update() {
		g.stats.Serves++
	}

	g.PlayerOne.Update(g.Ball)
	g.PlayerTwo.Update(g.Ball)

	if g.Ball.CheckCollisionWith(g.PlayerOne) {
		g.stats.LeftReturns++
	}
	if g.Ball.CheckCollisionWith(g.PlayerTwo) {
		g.stats.RightReturns++
	}
}

// Draw renders the ball, then paddle one, then paddle two.
func (g *GameState) Draw(c Canvas) {
	g.Ball.Draw(c)
	g.PlayerOne.Draw(c)
	g.PlayerTwo.Draw(c)
}

// Stats returns the counters accumulated so far.
func (g *GameState) Stats() Stats {
	return g.stats
}
