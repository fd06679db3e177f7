package input

import (
	"errors"
	"strings"
	"testing"
)

func TestCombinationNormalization(t *testing.T) {
	a := Keys(Key2, Key1, Key2)
	b := Chord(Key(Key1), Key(Key2))

	if a.Len() != 2 {
		t.Fatalf("duplicate input not removed, Len() = %d", a.Len())
	}
	if !a.Equal(b) {
		t.Errorf("order must not matter: %s vs %s", a, b)
	}
	if a.String() != "1+2" {
		t.Errorf("String() = %q, want %q", a.String(), "1+2")
	}
}

func TestNewCombinationEmpty(t *testing.T) {
	if _, err := NewCombination(); !errors.Is(err, ErrEmptyCombination) {
		t.Errorf("NewCombination() error = %v, want ErrEmptyCombination", err)
	}
	var zero Combination
	if zero.Satisfied(NewStreams(KeyboardSnapshot(Key1))) {
		t.Error("zero combination must never be satisfied")
	}
}

func TestCombinationSetRelations(t *testing.T) {
	one := Keys(Key1)
	oneTwo := Keys(Key1, Key2)
	twoThree := Keys(Key2, Key3)
	ctrlOne := Keys(KeyLControl, Key1)

	tests := []struct {
		name     string
		a, b     Combination
		subset   bool
		proper   bool
		overlaps bool
	}{
		{"single in chord", one, oneTwo, true, true, true},
		{"chord in single", oneTwo, one, false, false, true},
		{"equal", oneTwo, Keys(Key2, Key1), true, false, true},
		{"shared key", oneTwo, twoThree, false, false, true},
		{"shared modifier target", ctrlOne, oneTwo, false, false, true},
		{"disjoint", one, Keys(Key3), false, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.IsSubset(tt.b); got != tt.subset {
				t.Errorf("IsSubset = %v, want %v", got, tt.subset)
			}
			if got := tt.a.IsProperSubset(tt.b); got != tt.proper {
				t.Errorf("IsProperSubset = %v, want %v", got, tt.proper)
			}
			if got := tt.a.Overlaps(tt.b); got != tt.overlaps {
				t.Errorf("Overlaps = %v, want %v", got, tt.overlaps)
			}
		})
	}
}

func TestSatisfiedMixedModalities(t *testing.T) {
	snap := NewSnapshot()
	snap.Keyboard.Press(KeyLShift)
	snap.Mouse.Press(MouseLeft)

	shiftClick := Chord(Key(KeyLShift), Mouse(MouseLeft))
	if !shiftClick.Satisfied(NewStreams(snap)) {
		t.Error("shift+click should be satisfied")
	}

	snap.Mouse.Release(MouseLeft)
	if shiftClick.Satisfied(NewStreams(snap)) {
		t.Error("shift+click must not be satisfied after release")
	}
}

func TestSatisfiedMissingModality(t *testing.T) {
	snap := &Snapshot{}
	streams := NewStreams(snap)
	for _, c := range []Combination{
		Keys(KeyA),
		Single(Mouse(MouseRight)),
		Single(Pad(PadSouth)),
	} {
		if c.Satisfied(streams) {
			t.Errorf("%s satisfied with no devices", c)
		}
	}
	if Keys(KeyA).Satisfied(NewStreams(nil)) {
		t.Error("nil snapshot must read as nothing pressed")
	}
}

func TestGamepadAssociation(t *testing.T) {
	snap := NewSnapshot()
	snap.Gamepad.Press(GamepadButton{Gamepad: 1, Button: PadSouth})

	jump := Single(Pad(PadSouth))

	if !jump.Satisfied(NewStreams(snap)) {
		t.Error("unassociated owner should accept any gamepad")
	}
	if !jump.Satisfied(Streams{Snapshot: snap, Associated: 1}) {
		t.Error("owner associated with gamepad 1 should see its button")
	}
	if jump.Satisfied(Streams{Snapshot: snap, Associated: 0}) {
		t.Error("owner associated with gamepad 0 must not see gamepad 1")
	}

	pinned := Single(PadOn(1, PadSouth))
	if !pinned.Satisfied(Streams{Snapshot: snap, Associated: 0}) {
		t.Error("pinned input ignores association")
	}
	if Single(PadOn(2, PadSouth)).Satisfied(NewStreams(snap)) {
		t.Error("pinned input on another gamepad must not be satisfied")
	}
}

func TestParseCombination(t *testing.T) {
	tests := []struct {
		spec string
		want Combination
	}{
		{"1", Keys(Key1)},
		{"Ctrl+Alt+1", Keys(KeyLControl, KeyLAlt, Key1)},
		{" lcontrol + key1 ", Keys(KeyLControl, Key1)},
		{"shift+mouse:left", Chord(Key(KeyLShift), Mouse(MouseLeft))},
		{"pad:a", Single(Pad(PadSouth))},
		{"pad2:start+pad2:select", Chord(PadOn(2, PadStart), PadOn(2, PadSelect))},
		{"-", Keys(KeyMinus)},
	}
	for _, tt := range tests {
		got, err := ParseCombination(tt.spec)
		if err != nil {
			t.Errorf("ParseCombination(%q) error: %v", tt.spec, err)
			continue
		}
		if !got.Equal(tt.want) {
			t.Errorf("ParseCombination(%q) = %s, want %s", tt.spec, got, tt.want)
		}
	}
}

func TestParseRoundTripsString(t *testing.T) {
	c := Chord(Key(KeyLControl), Mouse(MouseRight), PadOn(3, PadDPadUp), Pad(PadNorth))
	back, err := ParseCombination(c.String())
	if err != nil {
		t.Fatalf("ParseCombination(%q): %v", c.String(), err)
	}
	if !back.Equal(c) {
		t.Errorf("round trip %s -> %s", c, back)
	}
}

func TestParseErrors(t *testing.T) {
	for _, spec := range []string{"", "ctrl+", "mouse:wheel", "joystick:x", "pad-1:south", "lcontrl"} {
		_, err := ParseCombination(spec)
		if err == nil {
			t.Errorf("ParseCombination(%q) expected error", spec)
			continue
		}
		if !errors.Is(err, ErrUnknownInput) && !errors.Is(err, ErrEmptyCombination) {
			t.Errorf("ParseCombination(%q) error %v has no sentinel", spec, err)
		}
	}

	_, err := ParseCombination("lcontrl+1")
	if err == nil || !strings.Contains(err.Error(), `did you mean "lcontrol"`) {
		t.Errorf("expected suggestion for lcontrl, got %v", err)
	}
}

func TestKeyByRune(t *testing.T) {
	tests := []struct {
		r    rune
		want KeyCode
	}{
		{'a', KeyA},
		{'Q', KeyQ},
		{'7', Key7},
		{' ', KeySpace},
		{'/', KeySlash},
	}
	for _, tt := range tests {
		got, ok := KeyByRune(tt.r)
		if !ok || got != tt.want {
			t.Errorf("KeyByRune(%q) = %v,%v want %v", tt.r, got, ok, tt.want)
		}
	}
	if _, ok := KeyByRune('é'); ok {
		t.Error("non-ASCII rune should not map to a key")
	}
}
