package core

import "time"

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone Action = iota
	ActionUp          // W, Up arrow - move paddle up
	ActionDown        // S, Down arrow - move paddle down
	ActionQuit        // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Terminals only report presses (and auto-repeats), never releases. A
// held key sends one press, then nothing for the terminal's repeat delay
// (typically 250-600ms), then a steady stream of repeats.
const (
	// DefaultInitialHold is how long a fresh press counts as held. It spans
	// the repeat delay so a held key moves without a stall.
	DefaultInitialHold = 500 * time.Millisecond

	// DefaultRepeatHold is how long each auto-repeat press extends the hold.
	DefaultRepeatHold = 150 * time.Millisecond
)

// KeyTiming sets how long terminal presses count as held.
type KeyTiming struct {
	Initial time.Duration // After a fresh press
	Repeat  time.Duration // After a press while the key is already down
}

// DefaultKeyTiming returns the built-in hold windows.
func DefaultKeyTiming() KeyTiming {
	return KeyTiming{Initial: DefaultInitialHold, Repeat: DefaultRepeatHold}
}

// KeyState tracks which actions are currently held.
// A fresh press keeps an action down for the initial window; auto-repeat
// presses extend it by the repeat window. Pressing a direction releases
// the opposite one, so a tap reverses or stops a paddle at once.
type KeyState struct {
	timing   KeyTiming
	now      func() time.Time
	deadline map[Action]time.Time
}

// NewKeyState creates a key tracker. Non-positive windows use the
// defaults; a nil clock uses time.Now.
func NewKeyState(timing KeyTiming, now func() time.Time) *KeyState {
	if timing.Initial <= 0 {
		timing.Initial = DefaultInitialHold
	}
	if timing.Repeat <= 0 {
		timing.Repeat = DefaultRepeatHold
	}
	if now == nil {
		now = time.Now
	}
	return &KeyState{
		timing:   timing,
		now:      now,
		deadline: make(map[Action]time.Time),
	}
}

// Press records a press of the action at the current time.
func (k *KeyState) Press(a Action) {
	if a == ActionNone {
		return
	}

	hold := k.timing.Initial
	if k.IsKeyDown(a) {
		hold = k.timing.Repeat
	}
	k.deadline[a] = k.now().Add(hold)

	switch a {
	case ActionUp:
		k.Release(ActionDown)
	case ActionDown:
		k.Release(ActionUp)
	}
}

// Release forgets the action immediately.
func (k *KeyState) Release(a Action) {
	delete(k.deadline, a)
}

// IsKeyDown reports whether the action's hold window is still open.
func (k *KeyState) IsKeyDown(a Action) bool {
	until, ok := k.deadline[a]
	return ok && k.now().Before(until)
}
