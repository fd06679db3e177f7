package action

import (
	"errors"
	"time"
)

// ErrClockUninitialized is returned by Tick when no time source has produced a reading yet
var ErrClockUninitialized = errors.New("action: tick before clock initialized")

// ButtonState is the per-action press lifecycle
// JustPressed and JustReleased are transient and collapse on the next Tick
type ButtonState uint8

const (
	Released ButtonState = iota
	JustPressed
	Pressed
	JustReleased
)

// IsPressed returns true for JustPressed and Pressed
func (b ButtonState) IsPressed() bool {
	return b == JustPressed || b == Pressed
}

func (b ButtonState) String() string {
	switch b {
	case Released:
		return "released"
	case JustPressed:
		return "just_pressed"
	case Pressed:
		return "pressed"
	case JustReleased:
		return "just_released"
	}
	return "unknown"
}

// collapse drops the transient flag, keeping the pressed bit
func (b ButtonState) collapse() ButtonState {
	switch b {
	case JustPressed:
		return Pressed
	case JustReleased:
		return Released
	}
	return b
}

// Timing tracks how long an action has been in its current and previous state
type Timing struct {
	// Started is zero until the first tick after a flip
	Started time.Time
	// Current is the time spent in the current state, as of the last tick
	Current time.Duration
	// Previous is the total time spent in the state before the last flip
	Previous time.Duration
}

func (t *Timing) tick(now time.Time) {
	if t.Started.IsZero() {
		t.Started = now
		return
	}
	d := now.Sub(t.Started)
	if d < 0 {
		d = 0
	}
	t.Current = d
}

func (t *Timing) flip() {
	t.Previous = t.Current
	t.Current = 0
	t.Started = time.Time{}
}

type slot struct {
	state  ButtonState
	timing Timing
}

// State holds the press state of every action of one owner
// Storage is a dense slice indexed by action ordinal; out-of-range actions read as released
// Not safe for concurrent use, each State has exactly one writer
type State[A Action] struct {
	slots []slot
}

// NewState creates a State with n released slots
func NewState[A Action](n int) *State[A] {
	if n < 0 {
		n = 0
	}
	return &State[A]{slots: make([]slot, n)}
}

// Len returns the number of action slots
func (s *State[A]) Len() int {
	return len(s.slots)
}

func (s *State[A]) slot(a A) *slot {
	i := int(a)
	if i < 0 || i >= len(s.slots) {
		return nil
	}
	return &s.slots[i]
}

// Tick collapses transient flags and advances timings
// Must run once per frame before Update; a zero now means the clock never ticked
func (s *State[A]) Tick(now time.Time) error {
	if now.IsZero() {
		return ErrClockUninitialized
	}
	for i := range s.slots {
		s.slots[i].state = s.slots[i].state.collapse()
		s.slots[i].timing.tick(now)
	}
	return nil
}

// Update applies this frame's pressed set
// Newly pressed become JustPressed, newly released become JustReleased, unchanged lose transients
func (s *State[A]) Update(pressed []A) {
	in := make([]bool, len(s.slots))
	for _, a := range pressed {
		if i := int(a); i >= 0 && i < len(in) {
			in[i] = true
		}
	}

	for i := range s.slots {
		sl := &s.slots[i]
		switch {
		case in[i] && !sl.state.IsPressed():
			sl.state = JustPressed
			sl.timing.flip()
		case !in[i] && sl.state.IsPressed():
			sl.state = JustReleased
			sl.timing.flip()
		default:
			sl.state = sl.state.collapse()
		}
	}
}

// Press marks a pressed, bypassing input evaluation
// No-op if already pressed
func (s *State[A]) Press(a A) {
	sl := s.slot(a)
	if sl == nil || sl.state.IsPressed() {
		return
	}
	sl.state = JustPressed
	sl.timing.flip()
}

// Release marks a released, bypassing input evaluation
// No-op if already released
func (s *State[A]) Release(a A) {
	sl := s.slot(a)
	if sl == nil || !sl.state.IsPressed() {
		return
	}
	sl.state = JustReleased
	sl.timing.flip()
}

// ReleaseAll releases every pressed action
func (s *State[A]) ReleaseAll() {
	for i := range s.slots {
		s.Release(A(i))
	}
}

// ButtonState returns the raw lifecycle state of a
func (s *State[A]) ButtonState(a A) ButtonState {
	if sl := s.slot(a); sl != nil {
		return sl.state
	}
	return Released
}

func (s *State[A]) Pressed(a A) bool {
	return s.ButtonState(a).IsPressed()
}

func (s *State[A]) JustPressed(a A) bool {
	return s.ButtonState(a) == JustPressed
}

func (s *State[A]) Released(a A) bool {
	return !s.ButtonState(a).IsPressed()
}

func (s *State[A]) JustReleased(a A) bool {
	return s.ButtonState(a) == JustReleased
}

// Timing returns a copy of the timing record of a
func (s *State[A]) Timing(a A) Timing {
	if sl := s.slot(a); sl != nil {
		return sl.timing
	}
	return Timing{}
}

// CurrentDuration returns time spent in the current state as of the last tick
func (s *State[A]) CurrentDuration(a A) time.Duration {
	return s.Timing(a).Current
}

// PreviousDuration returns time spent in the state before the last flip
func (s *State[A]) PreviousDuration(a A) time.Duration {
	return s.Timing(a).Previous
}

// GetPressed returns pressed actions in declaration order
func (s *State[A]) GetPressed() []A {
	return s.collect(func(b ButtonState) bool { return b.IsPressed() })
}

// GetJustPressed returns actions pressed since the last tick
func (s *State[A]) GetJustPressed() []A {
	return s.collect(func(b ButtonState) bool { return b == JustPressed })
}

// GetJustReleased returns actions released since the last tick
func (s *State[A]) GetJustReleased() []A {
	return s.collect(func(b ButtonState) bool { return b == JustReleased })
}

func (s *State[A]) collect(match func(ButtonState) bool) []A {
	var out []A
	for i := range s.slots {
		if match(s.slots[i].state) {
			out = append(out, A(i))
		}
	}
	return out
}
