package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pingpong/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
	flagLobbyWait   time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection gets its own game against the bot. Two players can
play each other instead: one runs the "host" command and shares the join
code it shows, the other runs "join <code>". Sessions and matches are
recorded in the server's history database.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.pingpong/host_key

Examples:
  pingpong serve                           # Listen on :23234 with auto-generated key
  pingpong serve --ssh :2222               # Listen on port 2222
  pingpong serve --host-key ./my_host_key  # Use specific host key

Users can connect with:
  ssh localhost -p 23234                  # play the bot
  ssh -t localhost -p 23234 host          # host a head-to-head game
  ssh -t localhost -p 23234 join ABCDEF   # join one`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().DurationVar(&flagLobbyWait, "lobby-timeout", 2*time.Minute, "How long a hosted game waits for an opponent")
}

func runServe(_ *cobra.Command, _ []string) error {
	logger := newLogger("pingpong-ssh")

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	server, err := tui.NewSSHServer(tui.SSHServerConfig{
		Address:      flagSSHAddr,
		HostKeyPath:  flagHostKey,
		DBPath:       flagDBPath,
		IdleTimeout:  time.Duration(flagIdleTimeout) * time.Minute,
		Game:         cfg,
		LobbyTimeout: flagLobbyWait,
	}, logger)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	logger.Info("press Ctrl+C to stop",
		"addr", server.Addr(),
		"connect", server.ConnectCommand(),
		"versus", server.ConnectCommand()+" -t host",
	)

	return server.ListenAndServe()
}
