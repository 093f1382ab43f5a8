package pong

import (
	"context"
	"time"

	"github.com/vovakirdan/pingpong/internal/core"
)

// Clock blocks until the next frame is due.
type Clock interface {
	Wait(ctx context.Context) error
}

// TickerClock paces frames at a fixed rate.
type TickerClock struct {
	ticker *time.Ticker
}

// NewTickerClock creates a clock that fires tickRate times per second.
func NewTickerClock(tickRate int) *TickerClock {
	if tickRate <= 0 {
		tickRate = core.DefaultTickRate
	}
	return &TickerClock{ticker: time.NewTicker(time.Second / time.Duration(tickRate))}
}

// Wait implements Clock.
func (c *TickerClock) Wait(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-c.ticker.C:
		return nil
	}
}

// Stop releases the ticker.
func (c *TickerClock) Stop() {
	c.ticker.Stop()
}

// FreeRunClock never waits. Used for headless simulation.
type FreeRunClock struct{}

// Wait implements Clock.
func (FreeRunClock) Wait(ctx context.Context) error {
	return ctx.Err()
}

// Loop is the fixed-step frame loop: simulate, render, wait.
type Loop struct {
	state  *GameState
	canvas Canvas
}

// NewLoop binds a game to the canvas it draws on.
func NewLoop(state *GameState, canvas Canvas) *Loop {
	return &Loop{state: state, canvas: canvas}
}

// State returns the game being driven.
func (l *Loop) State() *GameState {
	return l.state
}

// Step runs one whole frame.
func (l *Loop) Step() {
	l.Simulate()
	l.Render()
}

// Simulate advances the game one frame without drawing.
func (l *Loop) Simulate() {
	l.state.Update()
}

// Render clears the canvas and draws the current state.
func (l *Loop) Render() {
	if l.canvas == nil {
		return
	}
	l.canvas.ClearBackground(l.state.cfg.Background)
	l.state.Draw(l.canvas)
}

// Run steps the game, waiting on clock between frames, until maxFrames
// have run (0 = no limit) or ctx is done. Reaching maxFrames returns nil.
func (l *Loop) Run(ctx context.Context, clock Clock, maxFrames uint64) error {
	for ran := uint64(0); maxFrames == 0 || ran < maxFrames; ran++ {
		l.Step()
		if err := clock.Wait(ctx); err != nil {
			return err
		}
	}
	return nil
}
