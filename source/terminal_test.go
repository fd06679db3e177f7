package source

import (
	"slices"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/inputmanager/engine"
	"github.com/lixenwraith/inputmanager/input"
)

var _ engine.SnapshotProvider = (*Terminal)(nil)

func heldKeys(s *input.Snapshot) []input.KeyCode {
	var keys []input.KeyCode
	s.Keyboard.Range(func(k input.KeyCode) bool {
		keys = append(keys, k)
		return true
	})
	slices.Sort(keys)
	return keys
}

func TestTranslateKey(t *testing.T) {
	tests := []struct {
		name string
		key  tcell.Key
		ch   rune
		mod  tcell.ModMask
		want []input.KeyCode
	}{
		{"letter", tcell.KeyRune, 'w', 0, []input.KeyCode{input.KeyW}},
		{"uppercase adds shift", tcell.KeyRune, 'W', 0, []input.KeyCode{input.KeyW, input.KeyLShift}},
		{"shifted symbol", tcell.KeyRune, '!', 0, []input.KeyCode{input.Key1, input.KeyLShift}},
		{"space", tcell.KeyRune, ' ', 0, []input.KeyCode{input.KeySpace}},
		{"alt letter", tcell.KeyRune, 'x', tcell.ModAlt, []input.KeyCode{input.KeyX, input.KeyLAlt}},
		{"arrow", tcell.KeyUp, 0, 0, []input.KeyCode{input.KeyUp}},
		{"shift arrow", tcell.KeyLeft, 0, tcell.ModShift, []input.KeyCode{input.KeyLeft, input.KeyLShift}},
		{"ctrl letter", tcell.KeyCtrlA, 0, tcell.ModCtrl, []input.KeyCode{input.KeyA, input.KeyLControl}},
		{"ctrl space", tcell.KeyCtrlSpace, 0, tcell.ModCtrl, []input.KeyCode{input.KeySpace, input.KeyLControl}},
		{"backspace is not ctrl-h", tcell.KeyBackspace, 0, 0, []input.KeyCode{input.KeyBackspace}},
		{"enter", tcell.KeyEnter, 0, 0, []input.KeyCode{input.KeyEnter}},
		{"backtab", tcell.KeyBacktab, 0, 0, []input.KeyCode{input.KeyTab, input.KeyLShift}},
		{"function", tcell.KeyF2, 0, 0, []input.KeyCode{input.KeyF2}},
		{"unmapped rune", tcell.KeyRune, 'é', 0, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := translateKey(tcell.NewEventKey(tt.key, tt.ch, tt.mod))
			slices.Sort(got)
			want := slices.Clone(tt.want)
			slices.Sort(want)
			if !slices.Equal(got, want) {
				t.Errorf("got %v, want %v", got, want)
			}
		})
	}
}

func TestKeyHoldWindow(t *testing.T) {
	term := NewTerminal(100 * time.Millisecond)
	ev := tcell.NewEventKey(tcell.KeyRune, 'A', tcell.ModNone)
	if !term.HandleEvent(ev) {
		t.Fatal("key event not handled")
	}
	at := ev.When()

	if got := heldKeys(term.Snapshot(at.Add(50 * time.Millisecond))); !slices.Equal(got, []input.KeyCode{input.KeyA, input.KeyLShift}) {
		t.Errorf("inside window held %v", got)
	}
	if got := heldKeys(term.Snapshot(at.Add(100 * time.Millisecond))); len(got) != 0 {
		t.Errorf("after window held %v", got)
	}
	// Expired keys were pruned, an earlier time does not resurrect them
	if got := heldKeys(term.Snapshot(at)); len(got) != 0 {
		t.Errorf("pruned keys came back: %v", got)
	}
}

func TestRepeatExtendsHold(t *testing.T) {
	term := NewTerminal(100 * time.Millisecond)
	first := tcell.NewEventKey(tcell.KeyRune, 'd', tcell.ModNone)
	term.HandleEvent(first)
	time.Sleep(5 * time.Millisecond)
	repeat := tcell.NewEventKey(tcell.KeyRune, 'd', tcell.ModNone)
	term.HandleEvent(repeat)

	probe := first.When().Add(100 * time.Millisecond)
	if !probe.Before(repeat.When().Add(100 * time.Millisecond)) {
		t.Skip("clock did not advance between events")
	}
	if !term.Snapshot(probe).Keyboard.Pressed(input.KeyD) {
		t.Error("repeat did not extend the hold")
	}
}

func TestMouseButtons(t *testing.T) {
	term := NewTerminal(0)
	if term.Hold() != DefaultHold {
		t.Errorf("Hold = %v, want default", term.Hold())
	}

	term.HandleEvent(tcell.NewEventMouse(4, 7, tcell.ButtonPrimary|tcell.ButtonSecondary, tcell.ModCtrl))
	now := time.Now()
	snap := term.Snapshot(now)
	if !snap.Mouse.Pressed(input.MouseLeft) || !snap.Mouse.Pressed(input.MouseRight) {
		t.Error("held buttons missing")
	}
	if snap.Mouse.Pressed(input.MouseMiddle) {
		t.Error("middle reported held")
	}
	if !snap.Keyboard.Pressed(input.KeyLControl) {
		t.Error("mouse modifier not held")
	}
	if snap.Gamepad != nil {
		t.Error("terminal has no gamepad")
	}
	if x, y := term.MousePosition(); x != 4 || y != 7 {
		t.Errorf("position = %d,%d", x, y)
	}

	// Button release arrives as a motion event with an empty mask
	term.HandleEvent(tcell.NewEventMouse(5, 7, tcell.ButtonNone, tcell.ModNone))
	if term.Snapshot(now).Mouse.Len() != 0 {
		t.Error("release did not clear buttons")
	}

	term.HandleEvent(tcell.NewEventMouse(5, 7, tcell.WheelUp, tcell.ModNone))
	if term.Snapshot(now).Mouse.Len() != 0 {
		t.Error("wheel counted as a button")
	}
}

func TestResetAndIgnoredEvents(t *testing.T) {
	term := NewTerminal(time.Second)
	if term.HandleEvent(tcell.NewEventResize(80, 24)) {
		t.Error("resize reported handled")
	}
	if term.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'é', tcell.ModNone)) {
		t.Error("unmapped key reported handled")
	}

	term.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone))
	term.HandleEvent(tcell.NewEventMouse(0, 0, tcell.ButtonMiddle, tcell.ModNone))
	term.Reset()
	snap := term.Snapshot(time.Now())
	if snap.Keyboard.Len() != 0 || snap.Mouse.Len() != 0 {
		t.Error("Reset left inputs held")
	}
}
