package tui

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/pingpong/internal/config"
	"github.com/vovakirdan/pingpong/internal/core"
	"github.com/vovakirdan/pingpong/internal/multiplayer"
	"github.com/vovakirdan/pingpong/internal/storage"
)

type (
	recorderKey struct{}
	versusKey   struct{}
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.pingpong/host_key.
	HostKeyPath string

	// DBPath is the path to the session history database.
	DBPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	// Game is the configuration every session plays with.
	Game config.PongConfig

	// LobbyTimeout is how long a hosted game waits for an opponent.
	LobbyTimeout time.Duration
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:      ":23234",
		DBPath:       "~/.pingpong/sessions.db",
		IdleTimeout:  30 * time.Minute,
		Game:         config.DefaultPongConfig(),
		LobbyTimeout: 2 * time.Minute,
	}
}

// SSHServer wraps a Wish SSH server. A plain connection plays its own game
// against the bot. The "host" and "join <code>" commands pair two
// connections through the coordinator for a head-to-head match.
type SSHServer struct {
	config      SSHServerConfig
	server      *ssh.Server
	store       *storage.Store
	logger      *log.Logger
	sessions    *multiplayer.SessionRegistry
	coordinator *multiplayer.Coordinator
}

// NewSSHServer creates a new SSH server with the given configuration.
func NewSSHServer(cfg SSHServerConfig, logger *log.Logger) (*SSHServer, error) {
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "pingpong-ssh",
		})
	}

	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		logger.Warn("could not open session database", "error", err)
		store = nil
	}

	sessions := multiplayer.NewSessionRegistry()
	coordinator := multiplayer.NewCoordinator(multiplayer.CoordinatorConfig{
		Game:         cfg.Game,
		LobbyTimeout: cfg.LobbyTimeout,
	}, sessions, logger)
	if store != nil {
		coordinator.SetResultSaver(matchSaver{store: store})
	}

	srv := &SSHServer{
		config:      cfg,
		store:       store,
		logger:      logger,
		sessions:    sessions,
		coordinator: coordinator,
	}

	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return nil, fmt.Errorf("cannot get home directory: %w", homeErr)
		}
		hostKeyPath = filepath.Join(home, ".pingpong", "host_key")
	}

	if mkdirErr := os.MkdirAll(filepath.Dir(hostKeyPath), 0o700); mkdirErr != nil {
		return nil, fmt.Errorf("cannot create host key directory: %w", mkdirErr)
	}

	server, err := wish.NewServer(
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.loggingMiddleware,
		),
	)
	if err != nil {
		if store != nil {
			store.Close()
		}
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// teaHandler creates a game model for each SSH session. The session's
// command picks the mode: none plays the bot, "host" opens a lobby and
// "join <code>" joins one.
func (s *SSHServer) teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sshSession.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sshSession.User())
		return nil, nil
	}

	switch cmd := sshSession.Command(); {
	case len(cmd) == 1 && cmd[0] == "host":
		return s.versusModel(sshSession, pty, ""), []tea.ProgramOption{tea.WithAltScreen()}
	case len(cmd) == 2 && cmd[0] == "join":
		return s.versusModel(sshSession, pty, cmd[1]), []tea.ProgramOption{tea.WithAltScreen()}
	case len(cmd) > 0:
		s.logger.Warn("unknown command, playing the bot", "user", sshSession.User(), "command", strings.Join(cmd, " "))
	}

	rec := NewRecorder(s.store, s.logger, "ssh", sshSession.User())
	sshSession.Context().SetValue(recorderKey{}, rec)

	model := NewModel(Options{
		Game: s.config.Game.Game(),
		Runtime: core.RuntimeConfig{
			ScreenW:  pty.Window.Width,
			ScreenH:  pty.Window.Height,
			TickRate: s.config.Game.Loop.TickRate,
			Seed:     time.Now().UnixNano(),
		},
		Keys:     s.config.Game.KeyTiming(),
		Recorder: rec,
	})

	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
	}
}

// versusModel registers the connection with the coordinator and returns
// its head-to-head model.
func (s *SSHServer) versusModel(sshSession ssh.Session, pty ssh.Pty, joinCode string) tea.Model {
	id := multiplayer.SessionID(fmt.Sprintf("%s-%d", sshSession.User(), time.Now().UnixNano()))
	session := multiplayer.NewChannelSession(id, sshSession.User(), multiplayer.DefaultEventBuffer)
	s.sessions.Register(session)
	sshSession.Context().SetValue(versusKey{}, session)

	return NewVersusModel(VersusOptions{
		Game:        s.config.Game.Game(),
		Width:       pty.Window.Width,
		Height:      pty.Window.Height,
		JoinCode:    joinCode,
		Session:     session,
		Coordinator: s.coordinator,
	})
}

// loggingMiddleware logs SSH session events and records the session once
// the game program has exited, however the connection ended.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		s.logger.Info("session started",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
		next(sshSession)
		if rec, ok := sshSession.Context().Value(recorderKey{}).(*Recorder); ok {
			rec.Finish()
		}
		if session, ok := sshSession.Context().Value(versusKey{}).(*multiplayer.ChannelSession); ok {
			s.coordinator.Send(multiplayer.SessionDisconnectedMsg{SessionID: session.ID()})
			session.Close()
			s.sessions.Unregister(session.ID())
		}
		s.logger.Info("session ended",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
	}
}

// ListenAndServe starts the SSH server and blocks until shutdown.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("starting SSH server", "address", s.config.Address)
	s.coordinator.Start()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-done:
		s.logger.Info("shutting down...")
		return s.Shutdown()
	case err := <-errCh:
		s.logger.Error("server error", "error", err)
		s.Shutdown() //nolint:errcheck // already failing
		return err
	}
}

// Shutdown gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err := s.server.Shutdown(ctx)
	s.coordinator.Stop()
	if s.store != nil {
		s.store.Close()
	}
	return err
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}

// ConnectCommand returns the ssh command a local player runs to connect.
func (s *SSHServer) ConnectCommand() string {
	host, port, err := net.SplitHostPort(s.Addr())
	if err != nil {
		return "ssh " + s.Addr()
	}
	if host == "" || host == "0.0.0.0" || host == "::" {
		host = "localhost"
	}
	if port == "22" {
		return "ssh " + host
	}
	return fmt.Sprintf("ssh %s -p %s", host, port)
}
