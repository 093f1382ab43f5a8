package core

import (
	"testing"
	"time"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestKeyState() (*KeyState, *fakeClock) {
	clock := &fakeClock{t: time.Unix(1000, 0)}
	return NewKeyState(KeyTiming{Initial: 500 * time.Millisecond, Repeat: 100 * time.Millisecond}, clock.Now), clock
}

func TestKeyStateInitialWindow(t *testing.T) {
	ks, clock := newTestKeyState()

	if ks.IsKeyDown(ActionUp) {
		t.Fatal("Nothing pressed yet")
	}

	ks.Press(ActionUp)
	if !ks.IsKeyDown(ActionUp) {
		t.Error("Key should be down right after press")
	}
	if ks.IsKeyDown(ActionDown) {
		t.Error("Other keys should stay up")
	}

	clock.advance(499 * time.Millisecond)
	if !ks.IsKeyDown(ActionUp) {
		t.Error("Key should be down inside the initial window")
	}

	clock.advance(time.Millisecond)
	if ks.IsKeyDown(ActionUp) {
		t.Error("Key should be up once the initial window passes")
	}
}

func TestKeyStateHeldKeyHasNoGap(t *testing.T) {
	ks, clock := newTestKeyState()

	// One press, a 450ms repeat delay, then repeats every 33ms.
	ks.Press(ActionDown)
	press := map[time.Duration]bool{0: true}
	for at := 450 * time.Millisecond; at < time.Second; at += 33 * time.Millisecond {
		press[at] = true
	}

	for ms := time.Duration(0); ms < time.Second; ms += time.Millisecond {
		if press[ms] && ms > 0 {
			ks.Press(ActionDown)
		}
		if !ks.IsKeyDown(ActionDown) {
			t.Fatalf("held key reported up at %v", ms)
		}
		clock.advance(time.Millisecond)
	}
}

func TestKeyStateRepeatUsesShortWindow(t *testing.T) {
	ks, clock := newTestKeyState()

	ks.Press(ActionDown)
	clock.advance(450 * time.Millisecond)
	ks.Press(ActionDown)

	clock.advance(99 * time.Millisecond)
	if !ks.IsKeyDown(ActionDown) {
		t.Error("Repeat should extend the hold")
	}
	clock.advance(time.Millisecond)
	if ks.IsKeyDown(ActionDown) {
		t.Error("Key should be up once the repeat window passes")
	}

	// Released key: next press is fresh again.
	ks.Press(ActionDown)
	clock.advance(400 * time.Millisecond)
	if !ks.IsKeyDown(ActionDown) {
		t.Error("Fresh press should use the initial window")
	}
}

func TestKeyStateOppositeDirectionReleases(t *testing.T) {
	ks, _ := newTestKeyState()

	ks.Press(ActionUp)
	ks.Press(ActionDown)

	if ks.IsKeyDown(ActionUp) {
		t.Error("Pressing down should release up")
	}
	if !ks.IsKeyDown(ActionDown) {
		t.Error("Down should be held")
	}

	ks.Release(ActionDown)
	if ks.IsKeyDown(ActionDown) {
		t.Error("Release should clear the key immediately")
	}
}

func TestKeyStateDefaults(t *testing.T) {
	ks := NewKeyState(KeyTiming{}, nil)
	if ks.timing != DefaultKeyTiming() {
		t.Errorf("timing = %+v, expected %+v", ks.timing, DefaultKeyTiming())
	}
	ks.Press(ActionNone)
	if len(ks.deadline) != 0 {
		t.Error("ActionNone should not be tracked")
	}
}

func TestActionString(t *testing.T) {
	if ActionUp.String() != "Up" {
		t.Errorf("ActionUp.String() = %q", ActionUp.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("Action(99).String() = %q", Action(99).String())
	}
}
