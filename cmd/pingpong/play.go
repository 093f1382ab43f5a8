package main

import (
	"fmt"
	"os"
	"os/user"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/pingpong/internal/core"
	"github.com/vovakirdan/pingpong/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Play against the bot in the terminal.

Controls:
  W/Up       - Move up
  S/Down     - Move down
  Q/Esc      - Quit

The whole field is scaled to fit the terminal.

Examples:
  pingpong play
  pingpong play --seed 42
  pingpong play --config ./my-pong.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	logger := newLogger("pingpong")

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	// Logging would garble the alt screen; the recorder stays quiet.
	rec := tui.NewRecorder(store, nil, "terminal", currentUser())

	err = tui.Run(tui.Options{
		Game: cfg.Game(),
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: cfg.Loop.TickRate,
			Seed:     flagSeed,
		},
		Keys:     cfg.KeyTiming(),
		Recorder: rec,
	})
	if err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

func currentUser() string {
	if u, err := user.Current(); err == nil {
		return u.Username
	}
	return ""
}
