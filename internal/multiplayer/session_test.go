package multiplayer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChannelSessionDropsOldestWhenFull(t *testing.T) {
	s := NewChannelSession("s1", "alice", 2)

	s.Send(LobbyErrorEvent{Message: "1"})
	s.Send(LobbyErrorEvent{Message: "2"})
	s.Send(LobbyErrorEvent{Message: "3"})

	require.Len(t, s.Events(), 2)
	assert.Equal(t, LobbyErrorEvent{Message: "2"}, <-s.Events())
	assert.Equal(t, LobbyErrorEvent{Message: "3"}, <-s.Events())
}

func TestChannelSessionClose(t *testing.T) {
	s := NewChannelSession("s1", "alice", 0)

	s.Close()
	s.Close()
	s.Send(LobbyCreatedEvent{Code: "ABCDEF"})

	assert.Empty(t, s.Events())
	select {
	case <-s.Done():
	default:
		t.Fatal("Done not closed")
	}
}

func TestChannelSessionIdentity(t *testing.T) {
	s := NewChannelSession("s1", "alice", 0)

	assert.Equal(t, SessionID("s1"), s.ID())
	assert.Equal(t, "alice", s.Name())
	assert.Equal(t, DefaultEventBuffer, cap(s.events))
}

func TestSessionRegistry(t *testing.T) {
	r := NewSessionRegistry()
	a := NewChannelSession("a", "alice", 0)
	b := NewChannelSession("b", "bob", 0)

	r.Register(a)
	r.Register(b)
	assert.Equal(t, 2, r.Count())

	got, ok := r.Get("a")
	require.True(t, ok)
	assert.Same(t, a, got)

	r.Unregister("a")
	_, ok = r.Get("a")
	assert.False(t, ok)
	assert.Equal(t, 1, r.Count())
}

func TestSideAndReasonStrings(t *testing.T) {
	assert.Equal(t, "Left", SideLeft.String())
	assert.Equal(t, "Right", SideRight.String())
	assert.Equal(t, "None", SideNone.String())
	assert.Equal(t, "Opponent left", EndReasonLeft.String())
	assert.Equal(t, "Lobby expired", EndReasonExpired.String())
}
