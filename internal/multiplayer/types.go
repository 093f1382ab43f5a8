// Package multiplayer runs head-to-head games between two remote sessions.
//
// A host opens a lobby and shares its join code. When a second session
// joins, the coordinator starts a Match: one authoritative GameState with
// a human on each paddle, stepped on the server and streamed to both
// players as snapshots. Sessions only ever send key presses.
package multiplayer

// SessionID uniquely identifies a connected player (e.g. one SSH session).
type SessionID string

// MatchID uniquely identifies a running match.
type MatchID string

// Side is the paddle a session controls.
type Side int

const (
	SideNone  Side = iota
	SideLeft       // Paddle one, the lobby host
	SideRight      // Paddle two, the joiner
)

// String returns a human-readable name for the side.
func (s Side) String() string {
	switch s {
	case SideLeft:
		return "Left"
	case SideRight:
		return "Right"
	default:
		return "None"
	}
}

// EndReason describes why a lobby or match ended.
type EndReason int

const (
	EndReasonLeft       EndReason = iota // A player quit the match
	EndReasonDisconnect                  // A player's connection dropped
	EndReasonExpired                     // Nobody joined in time
	EndReasonShutdown                    // The server is stopping
)

// String returns a human-readable message for the reason.
func (r EndReason) String() string {
	switch r {
	case EndReasonLeft:
		return "Opponent left"
	case EndReasonDisconnect:
		return "Opponent disconnected"
	case EndReasonExpired:
		return "Lobby expired"
	case EndReasonShutdown:
		return "Server shutting down"
	default:
		return "Unknown"
	}
}
