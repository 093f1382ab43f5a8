// Package window runs the game in a desktop window through Ebiten.
// Ebiten's fixed-rate Update simulates one frame; Draw renders it.
package window

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/pingpong/internal/core"
	"github.com/vovakirdan/pingpong/internal/games/pong"
)

// Title is the window title.
const Title = "Ping Pong"

// Options configures a window session.
type Options struct {
	Game     pong.Config
	TickRate int
	Seed     int64
	Logger   *log.Logger
}

// keyboard reads held keys straight from Ebiten.
type keyboard struct{}

// IsKeyDown implements pong.Input.
func (keyboard) IsKeyDown(a core.Action) bool {
	switch a {
	case core.ActionUp:
		return ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp)
	case core.ActionDown:
		return ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown)
	case core.ActionQuit:
		return ebiten.IsKeyPressed(ebiten.KeyEscape)
	}
	return false
}

// imageCanvas draws onto an Ebiten image.
type imageCanvas struct {
	dst *ebiten.Image
}

func (c imageCanvas) ClearBackground(col core.Color) {
	c.dst.Fill(col.RGBA())
}

func (c imageCanvas) DrawRectangle(x, y, w, h float64, col core.Color) {
	vector.DrawFilledRect(c.dst, float32(x), float32(y), float32(w), float32(h), col.RGBA(), false)
}

func (c imageCanvas) DrawCircle(x, y, r float64, col core.Color) {
	vector.DrawFilledCircle(c.dst, float32(x), float32(y), float32(r), col.RGBA(), true)
}

// Game implements ebiten.Game, which has Update, Draw and Layout methods.
type Game struct {
	state  *pong.GameState
	cfg    pong.Config
	input  pong.Input
	logger *log.Logger
}

// NewGame creates a window game with the human on the left.
func NewGame(opts Options) *Game {
	in := keyboard{}
	return &Game{
		state:  pong.NewVsBot(opts.Game, in, opts.Seed),
		cfg:    opts.Game,
		input:  in,
		logger: opts.Logger,
	}
}

// State returns the game being played.
func (g *Game) State() *pong.GameState {
	return g.state
}

// Update advances the game one frame.
func (g *Game) Update() error {
	if g.input.IsKeyDown(core.ActionQuit) {
		return ebiten.Termination
	}
	g.state.Update()
	return nil
}

// Draw renders the current frame.
func (g *Game) Draw(screen *ebiten.Image) {
	c := imageCanvas{dst: screen}
	c.ClearBackground(g.cfg.Background)
	g.state.Draw(c)

	st := g.state.Stats()
	ebitenutil.DebugPrint(screen, fmt.Sprintf("returns %d:%d  serves %d", st.LeftReturns, st.RightReturns, st.Serves))
}

// Layout keeps the logical screen at field size; Ebiten scales the window.
func (g *Game) Layout(_, _ int) (int, int) {
	return int(g.cfg.FieldWidth), int(g.cfg.FieldHeight)
}

// Run opens the window and blocks until it is closed.
// Returns the game so the caller can read its final stats.
func Run(opts Options) (*Game, error) {
	g := NewGame(opts)

	ebiten.SetWindowSize(int(opts.Game.FieldWidth), int(opts.Game.FieldHeight))
	ebiten.SetWindowTitle(Title)
	if opts.TickRate > 0 {
		ebiten.SetTPS(opts.TickRate)
	}

	if g.logger != nil {
		g.logger.Info("opening window", "width", opts.Game.FieldWidth, "height", opts.Game.FieldHeight, "tps", ebiten.TPS())
	}

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return g, fmt.Errorf("window: %w", err)
	}
	return g, nil
}
