// Package tui runs the game in a terminal through Bubble Tea, locally or
// over SSH. It handles the frame ticks, key input and cell rendering.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/pingpong/internal/core"
)

// TickMsg is the frame signal: each one runs exactly one game frame.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends the next tick message.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = core.DefaultTickRate
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
