package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/pingpong/internal/core"
	"github.com/vovakirdan/pingpong/internal/games/pong"
	"github.com/vovakirdan/pingpong/internal/multiplayer"
)

// VersusPhase is where a head-to-head session is in its lifecycle.
type VersusPhase int

const (
	VersusConnecting VersusPhase = iota // Waiting for the coordinator
	VersusHosting                       // Lobby open, waiting for a joiner
	VersusPlaying                       // Match running
	VersusEnded                         // Match over or lobby failed
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	codeStyle  = lipgloss.NewStyle().Bold(true).Border(lipgloss.RoundedBorder()).Padding(0, 2)
	dimStyle   = lipgloss.NewStyle().Faint(true)
)

// VersusOptions configures a head-to-head session.
type VersusOptions struct {
	Game        pong.Config
	Width       int
	Height      int
	JoinCode    string // Empty hosts a new lobby
	Session     *multiplayer.ChannelSession
	Coordinator *multiplayer.Coordinator
}

// VersusModel is the Bubble Tea model for one player of a remote match.
// It never simulates: it sends key presses and draws the frames it receives.
type VersusModel struct {
	phase       VersusPhase
	cfg         pong.Config
	session     *multiplayer.ChannelSession
	coordinator *multiplayer.Coordinator
	joinCode    string

	screen *core.Screen
	canvas *CellCanvas
	keyMap KeyMap
	help   help.Model
	width  int
	height int

	code     string
	matchID  multiplayer.MatchID
	side     multiplayer.Side
	opponent string
	stats    pong.Stats
	message  string
	quitting bool
}

// NewVersusModel creates a head-to-head model. The bottom row holds the
// status line.
func NewVersusModel(opts VersusOptions) VersusModel {
	screen := core.NewScreen(opts.Width, max(opts.Height-1, 1))
	h := help.New()
	h.Width = opts.Width
	return VersusModel{
		phase:       VersusConnecting,
		cfg:         opts.Game,
		session:     opts.Session,
		coordinator: opts.Coordinator,
		joinCode:    strings.ToUpper(strings.TrimSpace(opts.JoinCode)),
		screen:      screen,
		canvas:      NewCellCanvas(screen, opts.Game.FieldWidth, opts.Game.FieldHeight),
		keyMap:      DefaultKeyMap(),
		help:        h,
		width:       opts.Width,
		height:      opts.Height,
	}
}

// Init asks the coordinator for a lobby (or to join one) and starts
// listening for its events.
func (m VersusModel) Init() tea.Cmd {
	if m.joinCode != "" {
		m.coordinator.Send(multiplayer.JoinLobbyMsg{SessionID: m.session.ID(), Code: m.joinCode})
	} else {
		m.coordinator.Send(multiplayer.CreateLobbyMsg{SessionID: m.session.ID()})
	}
	return m.waitForEvent()
}

// waitForEvent returns a command that blocks on the next session event.
func (m VersusModel) waitForEvent() tea.Cmd {
	events := m.session.Events()
	done := m.session.Done()
	return func() tea.Msg {
		select {
		case evt := <-events:
			return evt
		case <-done:
			return nil
		}
	}
}

// Update handles messages.
func (m VersusModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.screen.Resize(msg.Width, max(msg.Height-1, 1))
		m.help.Width = msg.Width
		return m, nil

	case multiplayer.LobbyCreatedEvent:
		m.phase = VersusHosting
		m.code = msg.Code
		return m, m.waitForEvent()

	case multiplayer.LobbyErrorEvent:
		m.phase = VersusEnded
		m.message = msg.Message
		return m, m.waitForEvent()

	case multiplayer.LobbyClosedEvent:
		m.phase = VersusEnded
		m.message = msg.Reason.String()
		return m, m.waitForEvent()

	case multiplayer.MatchStartedEvent:
		m.phase = VersusPlaying
		m.matchID = msg.MatchID
		m.code = msg.Code
		m.side = msg.Side
		m.opponent = msg.Opponent
		return m, m.waitForEvent()

	case multiplayer.FrameEvent:
		if msg.MatchID == m.matchID {
			m.stats = msg.Snapshot.Stats
			m.canvas.ClearBackground(m.cfg.Background)
			msg.Snapshot.Draw(m.canvas, m.cfg)
		}
		return m, m.waitForEvent()

	case multiplayer.MatchEndedEvent:
		m.phase = VersusEnded
		m.stats = msg.Stats
		m.message = msg.Reason.String()
		return m, m.waitForEvent()
	}

	return m, nil
}

func (m VersusModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMap.Action(msg)
	switch action {
	case core.ActionQuit:
		m.quitting = true
		if m.phase != VersusEnded {
			m.coordinator.Send(multiplayer.LeaveMsg{SessionID: m.session.ID()})
		}
		return m, tea.Quit
	case core.ActionUp, core.ActionDown:
		if m.phase == VersusPlaying {
			m.coordinator.Send(multiplayer.InputMsg{MatchID: m.matchID, Side: m.side, Action: action})
		}
	}
	return m, nil
}

// View renders the current phase.
func (m VersusModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.phase {
	case VersusHosting:
		return m.centered(
			titleStyle.Render("HOSTING GAME"),
			"Share this code with your opponent:",
			codeStyle.Render(m.code),
			dimStyle.Render(fmt.Sprintf("They join with: ssh -t <server> join %s", m.code)),
			"Waiting for player to join...",
			dimStyle.Render("q: cancel"),
		)
	case VersusPlaying:
		status := fmt.Sprintf("%s paddle vs %s  returns %d:%d  ",
			m.side, m.opponent, m.stats.LeftReturns, m.stats.RightReturns)
		return RenderScreen(m.screen) + "\n" + status + m.help.View(m.keyMap)
	case VersusEnded:
		lines := []string{titleStyle.Render("GAME OVER"), m.message}
		if m.stats.Frames > 0 {
			lines = append(lines, fmt.Sprintf("Frames: %d  Returns: %d:%d  Serves: %d",
				m.stats.Frames, m.stats.LeftReturns, m.stats.RightReturns, m.stats.Serves))
		}
		lines = append(lines, dimStyle.Render("q: quit"))
		return m.centered(lines...)
	default:
		if m.joinCode != "" {
			return m.centered(fmt.Sprintf("Joining game %s...", m.joinCode))
		}
		return m.centered("Creating lobby...")
	}
}

func (m VersusModel) centered(lines ...string) string {
	block := lipgloss.JoinVertical(lipgloss.Center, intersperse(lines, "")...)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, block)
}

// intersperse puts sep between every pair of lines.
func intersperse(lines []string, sep string) []string {
	out := make([]string, 0, len(lines)*2)
	for i, l := range lines {
		if i > 0 {
			out = append(out, sep)
		}
		out = append(out, l)
	}
	return out
}

// Phase returns the session's current phase.
func (m VersusModel) Phase() VersusPhase {
	return m.phase
}

// Side returns the paddle this session controls once a match started.
func (m VersusModel) Side() multiplayer.Side {
	return m.side
}
