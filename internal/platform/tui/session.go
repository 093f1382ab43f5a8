package tui

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pingpong/internal/games/pong"
	"github.com/vovakirdan/pingpong/internal/multiplayer"
	"github.com/vovakirdan/pingpong/internal/storage"
)

// Recorder saves a game's stats to the session history once it ends.
// A nil store makes it a no-op.
type Recorder struct {
	store    *storage.Store
	logger   *log.Logger
	frontend string
	player   string
	started  time.Time
	state    *pong.GameState
	once     sync.Once
}

// NewRecorder creates a recorder for one session.
func NewRecorder(store *storage.Store, logger *log.Logger, frontend, player string) *Recorder {
	return &Recorder{
		store:    store,
		logger:   logger,
		frontend: frontend,
		player:   player,
		started:  time.Now(),
	}
}

// Track sets the game whose stats are saved on Finish.
func (r *Recorder) Track(state *pong.GameState) {
	r.state = state
}

// Finish records the session. Only the first call has any effect.
func (r *Recorder) Finish() {
	if r == nil {
		return
	}
	r.once.Do(func() {
		if r.store == nil || r.state == nil {
			return
		}
		sess := storage.NewSession(r.frontend, r.player, r.started, r.state.Stats())
		id, err := r.store.SaveSession(sess)
		if r.logger == nil {
			return
		}
		if err != nil {
			r.logger.Warn("could not save session", "error", err)
			return
		}
		r.logger.Debug("session saved", "id", id, "frames", sess.Frames, "player", r.player)
	})
}

// matchSaver records finished head-to-head matches in the session history.
type matchSaver struct {
	store *storage.Store
}

// SaveMatchResult implements multiplayer.ResultSaver.
func (m matchSaver) SaveMatchResult(r multiplayer.MatchResult) error {
	sess := storage.NewSession("versus", r.Left.Name()+" vs "+r.Right.Name(), r.StartedAt, r.Stats)
	sess.EndedAt = r.EndedAt
	_, err := m.store.SaveSession(sess)
	return err
}
