package multiplayer

import (
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/pingpong/internal/core"
)

type recordingSaver struct {
	mu      sync.Mutex
	results []MatchResult
}

func (s *recordingSaver) SaveMatchResult(r MatchResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.results = append(s.results, r)
	return nil
}

func (s *recordingSaver) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.results)
}

func newTestCoordinator(t *testing.T) (*Coordinator, *SessionRegistry) {
	t.Helper()
	reg := NewSessionRegistry()
	c := NewCoordinator(DefaultCoordinatorConfig(), reg, nil)
	c.Start()
	t.Cleanup(c.Stop)
	return c, reg
}

func newTestSession(reg *SessionRegistry, id, name string) *ChannelSession {
	s := NewChannelSession(SessionID(id), name, 256)
	reg.Register(s)
	return s
}

// waitFor returns the next event of type T, skipping any others.
func waitFor[T SessionEvent](t *testing.T, s *ChannelSession) T {
	t.Helper()
	timeout := time.After(2 * time.Second)
	for {
		select {
		case evt := <-s.Events():
			if want, ok := evt.(T); ok {
				return want
			}
		case <-timeout:
			var zero T
			t.Fatalf("timed out waiting for %T", zero)
			return zero
		}
	}
}

func hostLobby(t *testing.T, c *Coordinator, host *ChannelSession) string {
	t.Helper()
	c.Send(CreateLobbyMsg{SessionID: host.ID()})
	return waitFor[LobbyCreatedEvent](t, host).Code
}

func TestCreateLobby(t *testing.T) {
	c, reg := newTestCoordinator(t)
	host := newTestSession(reg, "h", "alice")

	code := hostLobby(t, c, host)

	assert.Len(t, code, 6)
	assert.Equal(t, 1, c.LobbyCount())
	lobby, ok := c.Lobby(strings.ToLower(code))
	require.True(t, ok)
	assert.Same(t, host, lobby.Host)
}

func TestCreateLobbyTwiceFails(t *testing.T) {
	c, reg := newTestCoordinator(t)
	host := newTestSession(reg, "h", "alice")
	hostLobby(t, c, host)

	c.Send(CreateLobbyMsg{SessionID: host.ID()})

	assert.Equal(t, "Already in a game", waitFor[LobbyErrorEvent](t, host).Message)
	assert.Equal(t, 1, c.LobbyCount())
}

func TestJoinLobbyErrors(t *testing.T) {
	c, reg := newTestCoordinator(t)
	host := newTestSession(reg, "h", "alice")
	guest := newTestSession(reg, "g", "bob")
	code := hostLobby(t, c, host)

	c.Send(JoinLobbyMsg{SessionID: guest.ID(), Code: "ZZZZZZ"})
	assert.Equal(t, "Lobby not found", waitFor[LobbyErrorEvent](t, guest).Message)

	c.Send(JoinLobbyMsg{SessionID: host.ID(), Code: code})
	assert.Equal(t, "Already in a game", waitFor[LobbyErrorEvent](t, host).Message)
}

func TestHostLeavingClosesLobby(t *testing.T) {
	c, reg := newTestCoordinator(t)
	host := newTestSession(reg, "h", "alice")
	guest := newTestSession(reg, "g", "bob")
	code := hostLobby(t, c, host)

	c.Send(LeaveMsg{SessionID: host.ID()})
	c.Send(JoinLobbyMsg{SessionID: guest.ID(), Code: code})

	assert.Equal(t, "Lobby not found", waitFor[LobbyErrorEvent](t, guest).Message)
	assert.Equal(t, 0, c.LobbyCount())
	assert.Equal(t, 0, c.MatchCount())

	// The host is free to open a new lobby.
	assert.NotEmpty(t, hostLobby(t, c, host))
	assert.Equal(t, 1, c.LobbyCount())
}

func TestJoinStartsMatch(t *testing.T) {
	c, reg := newTestCoordinator(t)
	saver := &recordingSaver{}
	c.SetResultSaver(saver)
	host := newTestSession(reg, "h", "alice")
	guest := newTestSession(reg, "g", "bob")
	code := hostLobby(t, c, host)

	c.Send(JoinLobbyMsg{SessionID: guest.ID(), Code: " " + strings.ToLower(code)})

	hostStart := waitFor[MatchStartedEvent](t, host)
	guestStart := waitFor[MatchStartedEvent](t, guest)
	assert.Equal(t, SideLeft, hostStart.Side)
	assert.Equal(t, "bob", hostStart.Opponent)
	assert.Equal(t, SideRight, guestStart.Side)
	assert.Equal(t, "alice", guestStart.Opponent)
	assert.Equal(t, hostStart.MatchID, guestStart.MatchID)
	assert.Equal(t, code, hostStart.Code)
	assert.Equal(t, 0, c.LobbyCount())
	assert.Equal(t, 1, c.MatchCount())

	frame := waitFor[FrameEvent](t, guest)
	assert.Equal(t, hostStart.MatchID, frame.MatchID)

	c.Send(LeaveMsg{SessionID: host.ID()})

	hostEnd := waitFor[MatchEndedEvent](t, host)
	guestEnd := waitFor[MatchEndedEvent](t, guest)
	assert.Equal(t, EndReasonLeft, hostEnd.Reason)
	assert.Equal(t, hostEnd, guestEnd)
	assert.Positive(t, hostEnd.Stats.Frames)
	assert.Equal(t, 0, c.MatchCount())
	require.Eventually(t, func() bool { return saver.count() == 1 }, 2*time.Second, 10*time.Millisecond)
}

func TestInputReachesMatch(t *testing.T) {
	c, reg := newTestCoordinator(t)
	host := newTestSession(reg, "h", "alice")
	guest := newTestSession(reg, "g", "bob")
	code := hostLobby(t, c, host)
	c.Send(JoinLobbyMsg{SessionID: guest.ID(), Code: code})
	start := waitFor[MatchStartedEvent](t, host)

	c.Send(InputMsg{MatchID: start.MatchID, Side: SideLeft, Action: core.ActionDown})

	timeout := time.After(2 * time.Second)
	for {
		select {
		case evt := <-host.Events():
			if f, ok := evt.(FrameEvent); ok && f.Snapshot.PaddleOneY > 300 {
				return
			}
		case <-timeout:
			t.Fatal("left paddle never moved")
		}
	}
}

func TestHostDisconnectClosesLobby(t *testing.T) {
	c, reg := newTestCoordinator(t)
	host := newTestSession(reg, "h", "alice")
	hostLobby(t, c, host)

	c.Send(SessionDisconnectedMsg{SessionID: host.ID()})

	require.Eventually(t, func() bool { return c.LobbyCount() == 0 }, 2*time.Second, 10*time.Millisecond)
}

func TestExpiredLobbiesAreSwept(t *testing.T) {
	c, reg := newTestCoordinator(t)
	host := newTestSession(reg, "h", "alice")
	code := hostLobby(t, c, host)

	c.cleanupExpiredLobbies(time.Now().Add(time.Minute))
	assert.Equal(t, 1, c.LobbyCount())

	c.cleanupExpiredLobbies(time.Now().Add(3 * time.Minute))

	closed := waitFor[LobbyClosedEvent](t, host)
	assert.Equal(t, code, closed.Code)
	assert.Equal(t, EndReasonExpired, closed.Reason)
	assert.Equal(t, 0, c.LobbyCount())
}

func TestStopEndsMatches(t *testing.T) {
	c, reg := newTestCoordinator(t)
	host := newTestSession(reg, "h", "alice")
	guest := newTestSession(reg, "g", "bob")
	code := hostLobby(t, c, host)
	c.Send(JoinLobbyMsg{SessionID: guest.ID(), Code: code})
	waitFor[MatchStartedEvent](t, guest)

	c.Stop()

	assert.Equal(t, EndReasonShutdown, waitFor[MatchEndedEvent](t, guest).Reason)
	assert.Equal(t, 0, c.MatchCount())
}

func TestGenerateJoinCode(t *testing.T) {
	for range 100 {
		code := generateJoinCode()
		require.Len(t, code, 6)
		for _, r := range code {
			assert.True(t, (r >= 'A' && r <= 'Z') || (r >= '2' && r <= '7'), "unexpected %q in %s", r, code)
		}
	}
}
