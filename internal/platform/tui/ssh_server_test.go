package tui

import (
	"io"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSSHServer(t *testing.T, addr string) *SSHServer {
	t.Helper()
	dir := t.TempDir()

	cfg := DefaultSSHServerConfig()
	cfg.Address = addr
	cfg.HostKeyPath = filepath.Join(dir, "host_key")
	cfg.DBPath = filepath.Join(dir, "sessions.db")

	srv, err := NewSSHServer(cfg, log.New(io.Discard))
	require.NoError(t, err)
	t.Cleanup(func() { _ = srv.Shutdown() })
	return srv
}

func TestSSHServerAddr(t *testing.T) {
	srv := newTestSSHServer(t, "127.0.0.1:23999")

	assert.Equal(t, "127.0.0.1:23999", srv.Addr())
	assert.Equal(t, "ssh 127.0.0.1 -p 23999", srv.ConnectCommand())
}

func TestSSHServerConnectCommand(t *testing.T) {
	tests := map[string]string{
		":23234":          "ssh localhost -p 23234",
		"0.0.0.0:2222":    "ssh localhost -p 2222",
		"arcade.lan:2222": "ssh arcade.lan -p 2222",
		"arcade.lan:22":   "ssh arcade.lan",
	}

	for addr, expected := range tests {
		t.Run(addr, func(t *testing.T) {
			srv := &SSHServer{config: SSHServerConfig{Address: addr}}
			assert.Equal(t, expected, srv.ConnectCommand())
		})
	}
}
