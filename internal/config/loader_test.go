package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/pingpong/internal/core"
	"github.com/vovakirdan/pingpong/internal/games/pong"
)

func TestEmbeddedDefaultsMatchBuiltIn(t *testing.T) {
	cfg, err := Parse(DefaultYAML())

	require.NoError(t, err)
	assert.Equal(t, DefaultPongConfig(), cfg)
	assert.Equal(t, pong.DefaultConfig(), cfg.Game())
}

func TestParsePartialKeepsDefaults(t *testing.T) {
	cfg, err := Parse([]byte("ball:\n  speed: 5\n  legacy_bottom_wall: true\n"))

	require.NoError(t, err)
	assert.Equal(t, 5.0, cfg.Ball.Speed)
	assert.True(t, cfg.Game().LegacyBottomWall)
	assert.Equal(t, pong.DefaultBallRadius, cfg.Ball.Radius)
	assert.Equal(t, 60, cfg.Loop.TickRate)
}

func TestParseRejectsInvalid(t *testing.T) {
	tests := map[string]string{
		"bad yaml":        "field: [",
		"zero speed":      "paddles:\n  speed: 0\n",
		"zero tick rate":  "loop:\n  tick_rate: 0\n",
		"zero key hold":   "terminal:\n  key_hold_ms: -1\n",
		"zero first hold": "terminal:\n  key_initial_hold_ms: 0\n",
	}

	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(data))
			assert.Error(t, err)
		})
	}
}

func TestLoadPongCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pong.yaml")
	require.NoError(t, os.WriteFile(path, []byte("bot:\n  deadband: 8\n"), 0o600))

	cfg, err := LoadPong(path)

	require.NoError(t, err)
	assert.Equal(t, 8.0, cfg.Game().BotDeadband)
}

func TestLoadPongMissingCustomPath(t *testing.T) {
	_, err := LoadPong(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadPongFallsBackToDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, err := LoadPong("")

	require.NoError(t, err)
	assert.Equal(t, DefaultPongConfig(), cfg)
}

func TestLoadPongLocalFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "configs"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, LocalPath), []byte("loop:\n  tick_rate: 30\n"), 0o600))

	cfg, err := LoadPong("")

	require.NoError(t, err)
	assert.Equal(t, 30, cfg.Loop.TickRate)
}

func TestKeyTiming(t *testing.T) {
	cfg := DefaultPongConfig()
	timing := cfg.KeyTiming()
	assert.Equal(t, core.DefaultKeyTiming(), timing)
	assert.Greater(t, timing.Initial, timing.Repeat, "first press must outlast the terminal repeat delay")

	cfg, err := Parse([]byte("terminal:\n  key_initial_hold_ms: 650\n"))
	require.NoError(t, err)
	assert.Equal(t, 650*time.Millisecond, cfg.KeyTiming().Initial)
	assert.Equal(t, core.DefaultRepeatHold, cfg.KeyTiming().Repeat)
}
