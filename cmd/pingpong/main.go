// pingpong is a two-paddle ball game played against a simple bot.
//
// Usage:
//
//	pingpong play      - Play in the terminal
//	pingpong window    - Play in a desktop window
//	pingpong serve     - Start SSH server for remote play
//	pingpong sim       - Run a headless bot-vs-bot game
//	pingpong history   - Show recorded sessions
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: from config, 60)
//	--seed <value>       - Set RNG seed for reproducible serves
//	--config <path>      - Load game tuning from a YAML file
//	--db <path>          - Set database path (default: ~/.pingpong/sessions.db)
//	--log-level <level>  - debug, info, warn, error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/pingpong/internal/config"
	"github.com/vovakirdan/pingpong/internal/storage"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagDBPath   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pingpong",
	Short: "Ping Pong - bounce a ball past a bot",
	Long: `Ping Pong is a two-paddle ball game. You hold the left paddle,
a bot holds the right one. There is no score: the ball is served again
from the center whenever it leaves the field.

Available commands:
  play     - Play in the terminal
  window   - Play in a desktop window
  serve    - Start SSH server for remote play
  sim      - Run a headless bot-vs-bot game
  history  - Show recorded sessions

Examples:
  pingpong play
  pingpong window --fps 120
  pingpong serve --ssh :2222
  pingpong sim --frames 36000 --seed 7`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (frames per second, 0 = from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.pingpong/sessions.db", "Path to session history database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(historyCmd)
}

// newLogger builds the process logger from --log-level.
func newLogger(prefix string) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		logger.Warn("unknown log level, using info", "level", flagLogLevel)
		level = log.InfoLevel
	}
	logger.SetLevel(level)
	return logger
}

// loadConfig loads the game config and applies --fps.
func loadConfig() (config.PongConfig, error) {
	cfg, err := config.LoadPong(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagFPS > 0 {
		cfg.Loop.TickRate = flagFPS
	}
	return cfg, nil
}

// openStore opens the history database. Games still run without it.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open session database", "error", err)
		return nil
	}
	return store
}
