package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/pingpong/internal/games/pong"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreExpandsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := Open("~/.pingpong/sessions.db")
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(filepath.Join(home, ".pingpong", "sessions.db")); err != nil {
		t.Errorf("Database should be created under HOME: %v", err)
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)
	base := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)

	for i, frontend := range []string{"terminal", "window", "sim"} {
		sess := Session{
			Frontend:     frontend,
			Player:       "alice",
			StartedAt:    base.Add(time.Duration(i) * time.Hour),
			EndedAt:      base.Add(time.Duration(i)*time.Hour + time.Minute),
			Frames:       uint64(3600 * (i + 1)),
			LeftReturns:  i,
			RightReturns: i + 1,
			Serves:       2,
		}
		id, err := store.SaveSession(sess)
		if err != nil {
			t.Fatalf("SaveSession() failed: %v", err)
		}
		if id == "" {
			t.Fatal("SaveSession() should assign an ID")
		}
	}

	sessions, err := store.RecentSessions(2)
	if err != nil {
		t.Fatalf("RecentSessions() failed: %v", err)
	}
	if len(sessions) != 2 {
		t.Fatalf("Expected 2 sessions, got %d", len(sessions))
	}

	// Newest first
	if sessions[0].Frontend != "sim" || sessions[1].Frontend != "window" {
		t.Errorf("Unexpected order: %s, %s", sessions[0].Frontend, sessions[1].Frontend)
	}
	if sessions[0].Frames != 10800 {
		t.Errorf("Frames = %d, expected 10800", sessions[0].Frames)
	}
	if !sessions[0].StartedAt.Equal(base.Add(2 * time.Hour)) {
		t.Errorf("StartedAt = %v", sessions[0].StartedAt)
	}
	if sessions[0].Duration() != time.Minute {
		t.Errorf("Duration() = %v, expected 1m", sessions[0].Duration())
	}
	if sessions[0].Player != "alice" {
		t.Errorf("Player = %q", sessions[0].Player)
	}
}

func TestStoreKeepsGivenID(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveSession(Session{ID: "fixed", Frontend: "ssh", StartedAt: time.Now(), EndedAt: time.Now()})
	if err != nil {
		t.Fatalf("SaveSession() failed: %v", err)
	}
	if id != "fixed" {
		t.Errorf("id = %q, expected fixed", id)
	}

	if _, err := store.SaveSession(Session{ID: "fixed", Frontend: "ssh"}); err == nil {
		t.Error("Duplicate ID should fail")
	}
}

func TestStoreTotals(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.Totals()
	if err != nil {
		t.Fatalf("Totals() failed: %v", err)
	}
	if empty != (Totals{}) {
		t.Errorf("Empty store totals = %+v", empty)
	}

	start := time.Now().Add(-time.Minute)
	store.SaveSession(NewSession("sim", "", start, pong.Stats{Frames: 100, LeftReturns: 2, RightReturns: 3, Serves: 1}))
	store.SaveSession(NewSession("sim", "", start, pong.Stats{Frames: 50, LeftReturns: 1, Serves: 4}))

	totals, err := store.Totals()
	if err != nil {
		t.Fatalf("Totals() failed: %v", err)
	}
	want := Totals{Sessions: 2, Frames: 150, Returns: 6, Serves: 5}
	if totals != want {
		t.Errorf("Totals() = %+v, expected %+v", totals, want)
	}
}

func TestStoreClearSessions(t *testing.T) {
	store := openTestStore(t)
	store.SaveSession(NewSession("terminal", "", time.Now(), pong.Stats{}))

	if err := store.ClearSessions(); err != nil {
		t.Fatalf("ClearSessions() failed: %v", err)
	}

	sessions, err := store.RecentSessions(10)
	if err != nil {
		t.Fatalf("RecentSessions() failed: %v", err)
	}
	if len(sessions) != 0 {
		t.Errorf("Expected no sessions after clear, got %d", len(sessions))
	}
}

func TestNewSession(t *testing.T) {
	start := time.Now().Add(-time.Second)
	sess := NewSession("window", "bob", start, pong.Stats{Frames: 60, Serves: 1})

	if sess.Frontend != "window" || sess.Player != "bob" {
		t.Errorf("NewSession() = %+v", sess)
	}
	if sess.Frames != 60 || sess.Serves != 1 {
		t.Errorf("Stats not copied: %+v", sess)
	}
	if sess.EndedAt.Before(start) {
		t.Error("EndedAt should be after StartedAt")
	}
}
