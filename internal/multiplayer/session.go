package multiplayer

import "sync"

// SessionHandle is how the coordinator and matches talk to a connected
// player without knowing about SSH or Bubble Tea.
type SessionHandle interface {
	// ID returns the unique session identifier.
	ID() SessionID

	// Name returns the player's display name.
	Name() string

	// Send delivers an event without blocking.
	Send(evt SessionEvent)

	// Done is closed when the session ends.
	Done() <-chan struct{}
}

// DefaultEventBuffer is the event queue length of a ChannelSession.
const DefaultEventBuffer = 64

// ChannelSession is a SessionHandle backed by a buffered channel.
// The terminal frontend reads Events; the coordinator writes.
type ChannelSession struct {
	id       SessionID
	name     string
	events   chan SessionEvent
	done     chan struct{}
	doneOnce sync.Once
}

// NewChannelSession creates a session handle. A non-positive buffer uses
// DefaultEventBuffer.
func NewChannelSession(id SessionID, name string, buffer int) *ChannelSession {
	if buffer < 1 {
		buffer = DefaultEventBuffer
	}
	return &ChannelSession{
		id:     id,
		name:   name,
		events: make(chan SessionEvent, buffer),
		done:   make(chan struct{}),
	}
}

// ID implements SessionHandle.
func (s *ChannelSession) ID() SessionID {
	return s.id
}

// Name implements SessionHandle.
func (s *ChannelSession) Name() string {
	return s.name
}

// Send implements SessionHandle. When the queue is full the oldest event
// is dropped: a slow reader misses frames, never the newest state.
func (s *ChannelSession) Send(evt SessionEvent) {
	select {
	case <-s.done:
		return
	default:
	}

	for range 2 {
		select {
		case s.events <- evt:
			return
		default:
		}
		select {
		case <-s.events:
		default:
		}
	}
}

// Events returns the queue the frontend reads from.
func (s *ChannelSession) Events() <-chan SessionEvent {
	return s.events
}

// Done implements SessionHandle.
func (s *ChannelSession) Done() <-chan struct{} {
	return s.done
}

// Close ends the session. Safe to call more than once.
func (s *ChannelSession) Close() {
	s.doneOnce.Do(func() {
		close(s.done)
	})
}

// SessionRegistry tracks connected sessions. Safe for concurrent use.
type SessionRegistry struct {
	mu       sync.RWMutex
	sessions map[SessionID]SessionHandle
}

// NewSessionRegistry creates an empty registry.
func NewSessionRegistry() *SessionRegistry {
	return &SessionRegistry{
		sessions: make(map[SessionID]SessionHandle),
	}
}

// Register adds a session, replacing any with the same ID.
func (r *SessionRegistry) Register(s SessionHandle) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[s.ID()] = s
}

// Unregister removes a session.
func (r *SessionRegistry) Unregister(id SessionID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
}

// Get looks a session up by ID.
func (r *SessionRegistry) Get(id SessionID) (SessionHandle, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[id]
	return s, ok
}

// Count returns the number of registered sessions.
func (r *SessionRegistry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
