package multiplayer

import (
	"sync"
	"time"

	"github.com/vovakirdan/pingpong/internal/core"
	"github.com/vovakirdan/pingpong/internal/games/pong"
)

// MatchConfig holds everything a match needs besides its players.
type MatchConfig struct {
	Game     pong.Config
	TickRate int
	Keys     core.KeyTiming
	Seed     int64
}

// MatchResult describes a finished match.
type MatchResult struct {
	MatchID   MatchID
	Code      string
	Left      SessionHandle
	Right     SessionHandle
	Reason    EndReason
	Stats     pong.Stats
	StartedAt time.Time
	EndedAt   time.Time
}

type sideInput struct {
	side   Side
	action core.Action
}

type leaveRequest struct {
	session SessionID
	reason  EndReason
}

// Match is a running head-to-head game. All simulation happens on the
// goroutine executing Run; other goroutines only queue input.
type Match struct {
	id    MatchID
	code  string
	left  SessionHandle
	right SessionHandle

	state     *pong.GameState
	leftKeys  *core.KeyState
	rightKeys *core.KeyState
	tickRate  int
	startedAt time.Time

	inputs   chan sideInput
	leaves   chan leaveRequest
	done     chan struct{}
	doneOnce sync.Once
}

// NewMatch creates a match with left on paddle one and right on paddle two.
func NewMatch(id MatchID, code string, cfg MatchConfig, left, right SessionHandle) *Match {
	leftKeys := core.NewKeyState(cfg.Keys, nil)
	rightKeys := core.NewKeyState(cfg.Keys, nil)
	tickRate := cfg.TickRate
	if tickRate <= 0 {
		tickRate = core.DefaultTickRate
	}

	return &Match{
		id:    id,
		code:  code,
		left:  left,
		right: right,
		state: pong.New(cfg.Game,
			pong.HumanControlled{Input: leftKeys},
			pong.HumanControlled{Input: rightKeys},
			cfg.Seed,
		),
		leftKeys:  leftKeys,
		rightKeys: rightKeys,
		tickRate:  tickRate,
		startedAt: time.Now(),
		inputs:    make(chan sideInput, 64),
		leaves:    make(chan leaveRequest, 2),
		done:      make(chan struct{}),
	}
}

// ID returns the match identifier.
func (m *Match) ID() MatchID {
	return m.id
}

// Code returns the join code the match was started from.
func (m *Match) Code() string {
	return m.code
}

// Players returns the left and right sessions.
func (m *Match) Players() (SessionHandle, SessionHandle) {
	return m.left, m.right
}

// SideOf returns the side a session plays, or SideNone.
func (m *Match) SideOf(id SessionID) Side {
	switch id {
	case m.left.ID():
		return SideLeft
	case m.right.ID():
		return SideRight
	}
	return SideNone
}

// SendInput queues a key press. Presses are dropped if the queue is full.
func (m *Match) SendInput(side Side, action core.Action) {
	select {
	case m.inputs <- sideInput{side: side, action: action}:
	default:
	}
}

// Leave asks the match to end because a player left.
func (m *Match) Leave(id SessionID, reason EndReason) {
	select {
	case m.leaves <- leaveRequest{session: id, reason: reason}:
	default:
	}
}

// Run steps the match at its tick rate until a player leaves, a session
// closes or Stop is called, then reports the result to onComplete.
func (m *Match) Run(onComplete func(MatchResult)) {
	ticker := time.NewTicker(time.Second / time.Duration(m.tickRate))
	defer ticker.Stop()

	go m.watchSessions()

	for {
		select {
		case <-ticker.C:
			m.step()

		case req := <-m.leaves:
			m.finish(req.reason, onComplete)
			return

		case <-m.done:
			m.finish(EndReasonShutdown, onComplete)
			return
		}
	}
}

// step applies queued input, simulates one frame and broadcasts it.
func (m *Match) step() {
	m.drainInputs()
	m.state.Update()

	frame := FrameEvent{MatchID: m.id, Snapshot: m.state.Snapshot()}
	m.left.Send(frame)
	m.right.Send(frame)
}

func (m *Match) drainInputs() {
	for {
		select {
		case in := <-m.inputs:
			switch in.side {
			case SideLeft:
				m.leftKeys.Press(in.action)
			case SideRight:
				m.rightKeys.Press(in.action)
			}
		default:
			return
		}
	}
}

func (m *Match) finish(reason EndReason, onComplete func(MatchResult)) {
	m.doneOnce.Do(func() {
		close(m.done)
	})

	result := MatchResult{
		MatchID:   m.id,
		Code:      m.code,
		Left:      m.left,
		Right:     m.right,
		Reason:    reason,
		Stats:     m.state.Stats(),
		StartedAt: m.startedAt,
		EndedAt:   time.Now(),
	}
	if onComplete != nil {
		onComplete(result)
	}
}

// watchSessions turns a closed session into a disconnect.
func (m *Match) watchSessions() {
	select {
	case <-m.left.Done():
		m.Leave(m.left.ID(), EndReasonDisconnect)
	case <-m.right.Done():
		m.Leave(m.right.ID(), EndReasonDisconnect)
	case <-m.done:
	}
}

// Stop ends the match. Safe to call more than once.
func (m *Match) Stop() {
	m.doneOnce.Do(func() {
		close(m.done)
	})
}
