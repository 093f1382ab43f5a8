package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pingpong/internal/platform/window"
	"github.com/vovakirdan/pingpong/internal/storage"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open a window the size of the field and play against the bot.

Controls:
  W/Up       - Move up
  S/Down     - Move down
  Esc        - Quit

Examples:
  pingpong window
  pingpong window --fps 120`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func runWindow(_ *cobra.Command, _ []string) error {
	logger := newLogger("pingpong")

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	started := time.Now()
	g, err := window.Run(window.Options{
		Game:     cfg.Game(),
		TickRate: cfg.Loop.TickRate,
		Seed:     seed,
		Logger:   logger,
	})
	if err != nil {
		return err
	}

	stats := g.State().Stats()
	logger.Info("window closed", "frames", stats.Frames, "serves", stats.Serves)

	if store := openStore(logger); store != nil {
		defer store.Close()
		if _, err := store.SaveSession(storage.NewSession("window", currentUser(), started, stats)); err != nil {
			logger.Warn("could not save session", "error", err)
		}
	}
	return nil
}
