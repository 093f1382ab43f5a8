package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/pingpong/internal/core"
	"github.com/vovakirdan/pingpong/internal/games/pong"
)

// Options configures a terminal game session.
type Options struct {
	Game     pong.Config
	Runtime  core.RuntimeConfig
	Keys     core.KeyTiming
	Recorder *Recorder

	// Now overrides the key-hold clock, for tests.
	Now func() time.Time
}

// Model is the Bubble Tea model running one game against the bot.
type Model struct {
	loop     *pong.Loop
	state    *pong.GameState
	screen   *core.Screen
	keys     *core.KeyState
	keyMap   KeyMap
	help     help.Model
	recorder *Recorder
	tickRate int
	quitting bool
}

// NewModel creates a new Bubble Tea model. The bottom terminal row is kept
// for the help bar.
func NewModel(opts Options) Model {
	opts.Runtime = opts.Runtime.Resolved(time.Now())

	keys := core.NewKeyState(opts.Keys, opts.Now)
	state := pong.NewVsBot(opts.Game, keys, opts.Runtime.Seed)
	screen := core.NewScreen(opts.Runtime.ScreenW, max(opts.Runtime.ScreenH-1, 1))
	canvas := NewCellCanvas(screen, opts.Game.FieldWidth, opts.Game.FieldHeight)

	if opts.Recorder != nil {
		opts.Recorder.Track(state)
	}

	return Model{
		loop:     pong.NewLoop(state, canvas),
		state:    state,
		screen:   screen,
		keys:     keys,
		keyMap:   DefaultKeyMap(),
		help:     help.New(),
		recorder: opts.Recorder,
		tickRate: opts.Runtime.TickRate,
	}
}

// Init starts the frame ticks.
func (m Model) Init() tea.Cmd {
	m.loop.Render()
	return tickCmd(m.tickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, max(msg.Height-1, 1))
		m.help.Width = msg.Width
		m.loop.Render()
		return m, nil

	case TickMsg:
		if m.quitting {
			return m, nil
		}
		m.loop.Step()
		return m, tickCmd(m.tickRate)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMap.Action(msg)
	if action == core.ActionQuit {
		m.quitting = true
		m.recorder.Finish()
		return m, tea.Quit
	}
	m.keys.Press(action)
	return m, nil
}

// View renders the last drawn frame plus the help bar.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keyMap)
}

// State returns the game being played.
func (m Model) State() *pong.GameState {
	return m.state
}

// Run starts the Bubble Tea program for a local terminal session.
func Run(opts Options) error {
	model := NewModel(opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	opts.Recorder.Finish()
	return err
}
