package core

import "time"

// DefaultTickRate is the frame rate frontends fall back to.
const DefaultTickRate = 60

// RuntimeConfig is what a frontend knows at start-up: the size of its
// surface, its frame rate and the serve seed.
type RuntimeConfig struct {
	ScreenW  int   // Columns (terminal) or pixels (window)
	ScreenH  int   // Rows (terminal) or pixels (window)
	TickRate int   // Frames per second
	Seed     int64 // Serve RNG seed; 0 picks one from the clock
}

// DefaultConfig returns the runtime of a standard 80x24 terminal.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: DefaultTickRate}
}

// Resolved fills every unset field: missing sizes and tick rate come from
// DefaultConfig and a zero seed is taken from now.
func (c RuntimeConfig) Resolved(now time.Time) RuntimeConfig {
	def := DefaultConfig()
	if c.ScreenW <= 0 {
		c.ScreenW = def.ScreenW
	}
	if c.ScreenH <= 0 {
		c.ScreenH = def.ScreenH
	}
	if c.TickRate <= 0 {
		c.TickRate = def.TickRate
	}
	if c.Seed == 0 {
		c.Seed = now.UnixNano()
	}
	return c
}
