package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/pingpong/internal/core"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:     lipgloss.NewStyle(),
	core.ColorBlack:       styleFor(core.ColorBlack),
	core.ColorWhite:       styleFor(core.ColorWhite),
	core.ColorGray:        styleFor(core.ColorGray),
	core.ColorBrightWhite: styleFor(core.ColorBrightWhite),
}

func styleFor(c core.Color) lipgloss.Style {
	code := c.ANSI()
	if code == "" {
		return lipgloss.NewStyle()
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(code))
}

// RenderScreen converts a Screen buffer to a styled string. Cells are
// emitted in same-color runs so each run costs one escape sequence.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	run := make([]rune, 0, s.Width())
	for y := range s.Height() {
		if y > 0 {
			sb.WriteByte('\n')
		}

		run = run[:0]
		runColor := core.ColorDefault
		for x := range s.Width() {
			cell := s.GetCell(x, y)
			if cell.Color != runColor && len(run) > 0 {
				sb.WriteString(renderRun(run, runColor))
				run = run[:0]
			}
			runColor = cell.Color
			run = append(run, cell.Rune)
		}
		sb.WriteString(renderRun(run, runColor))
	}
	return sb.String()
}

// renderRun styles one run of same-colored cells.
func renderRun(run []rune, c core.Color) string {
	style, ok := colorStyles[c]
	if !ok || c == core.ColorDefault {
		return string(run)
	}
	return style.Render(string(run))
}
