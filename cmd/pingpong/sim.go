package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pingpong/internal/core"
	"github.com/vovakirdan/pingpong/internal/games/pong"
	"github.com/vovakirdan/pingpong/internal/platform/tui"
	"github.com/vovakirdan/pingpong/internal/storage"
)

var (
	flagSimFrames uint64
	flagSimPaced  bool
	flagSimDump   bool
	flagSimCols   int
	flagSimRows   int
	flagSimSave   bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless bot-vs-bot game",
	Long: `Run the game with a bot on both paddles and no window.

By default frames run as fast as possible. With --paced the loop waits
for the tick rate between frames, like a real game.

Examples:
  pingpong sim
  pingpong sim --frames 36000 --seed 7
  pingpong sim --frames 600 --dump --cols 105 --rows 40
  pingpong sim --paced --frames 0    # run until Ctrl+C`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().Uint64Var(&flagSimFrames, "frames", 3600, "Frames to simulate (0 = until interrupted)")
	simCmd.Flags().BoolVar(&flagSimPaced, "paced", false, "Wait for the tick rate between frames")
	simCmd.Flags().BoolVar(&flagSimDump, "dump", false, "Print the final frame as text")
	simCmd.Flags().IntVar(&flagSimCols, "cols", 80, "Columns of the dumped frame")
	simCmd.Flags().IntVar(&flagSimRows, "rows", 24, "Rows of the dumped frame")
	simCmd.Flags().BoolVar(&flagSimSave, "save", false, "Record the run in session history")
}

func runSim(_ *cobra.Command, _ []string) error {
	logger := newLogger("pingpong-sim")

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	game := cfg.Game()

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	bot := pong.BotControlled{Deadband: game.BotDeadband}
	state := pong.New(game, bot, bot, seed)

	var (
		screen *core.Screen
		canvas pong.Canvas
	)
	if flagSimDump {
		screen = core.NewScreen(flagSimCols, flagSimRows)
		canvas = tui.NewCellCanvas(screen, game.FieldWidth, game.FieldHeight)
	}
	loop := pong.NewLoop(state, canvas)

	var clock pong.Clock = pong.FreeRunClock{}
	if flagSimPaced {
		ticker := pong.NewTickerClock(cfg.Loop.TickRate)
		defer ticker.Stop()
		clock = ticker
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("simulation starting", "frames", flagSimFrames, "seed", seed, "paced", flagSimPaced)

	started := time.Now()
	err = loop.Run(ctx, clock, flagSimFrames)
	if err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("simulation: %w", err)
	}

	snap := state.Snapshot()
	logger.Info("simulation finished",
		"frames", snap.Stats.Frames,
		"left_returns", snap.Stats.LeftReturns,
		"right_returns", snap.Stats.RightReturns,
		"serves", snap.Stats.Serves,
		"elapsed", time.Since(started).Round(time.Millisecond),
	)
	logger.Debug("final state",
		"ball_x", snap.BallX, "ball_y", snap.BallY,
		"ball_vx", snap.BallVX, "ball_vy", snap.BallVY,
		"paddle_one_y", snap.PaddleOneY, "paddle_two_y", snap.PaddleTwoY,
	)

	if screen != nil {
		fmt.Println(screen.String())
	}

	if flagSimSave {
		if store := openStore(logger); store != nil {
			defer store.Close()
			if _, err := store.SaveSession(storage.NewSession("sim", currentUser(), started, snap.Stats)); err != nil {
				logger.Warn("could not save session", "error", err)
			}
		}
	}
	return nil
}
