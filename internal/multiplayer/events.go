package multiplayer

import (
	"github.com/vovakirdan/pingpong/internal/core"
	"github.com/vovakirdan/pingpong/internal/games/pong"
)

// SessionEvent is sent from the coordinator or a match to a session.
type SessionEvent interface {
	sessionEvent()
}

// LobbyCreatedEvent tells the host its join code.
type LobbyCreatedEvent struct {
	Code string
}

func (LobbyCreatedEvent) sessionEvent() {}

// LobbyErrorEvent reports a failed lobby operation.
type LobbyErrorEvent struct {
	Message string
}

func (LobbyErrorEvent) sessionEvent() {}

// LobbyClosedEvent tells a waiting host its lobby is gone.
type LobbyClosedEvent struct {
	Code   string
	Reason EndReason
}

func (LobbyClosedEvent) sessionEvent() {}

// MatchStartedEvent is sent to both players when a match begins.
type MatchStartedEvent struct {
	MatchID  MatchID
	Code     string
	Side     Side
	Opponent string
}

func (MatchStartedEvent) sessionEvent() {}

// FrameEvent carries the state after one simulated frame.
type FrameEvent struct {
	MatchID  MatchID
	Snapshot pong.Snapshot
}

func (FrameEvent) sessionEvent() {}

// MatchEndedEvent is sent to both players when a match stops.
type MatchEndedEvent struct {
	MatchID MatchID
	Reason  EndReason
	Stats   pong.Stats
}

func (MatchEndedEvent) sessionEvent() {}

// CoordinatorMessage is sent from a session to the coordinator.
type CoordinatorMessage interface {
	coordinatorMessage()
}

// CreateLobbyMsg opens a new lobby hosted by the session.
type CreateLobbyMsg struct {
	SessionID SessionID
}

func (CreateLobbyMsg) coordinatorMessage() {}

// JoinLobbyMsg joins the lobby with the given code and starts the match.
type JoinLobbyMsg struct {
	SessionID SessionID
	Code      string
}

func (JoinLobbyMsg) coordinatorMessage() {}

// LeaveMsg closes the session's lobby or quits its match.
type LeaveMsg struct {
	SessionID SessionID
}

func (LeaveMsg) coordinatorMessage() {}

// InputMsg forwards a key press to a match.
type InputMsg struct {
	MatchID MatchID
	Side    Side
	Action  core.Action
}

func (InputMsg) coordinatorMessage() {}

// SessionDisconnectedMsg is sent when a session's connection closes.
type SessionDisconnectedMsg struct {
	SessionID SessionID
}

func (SessionDisconnectedMsg) coordinatorMessage() {}
