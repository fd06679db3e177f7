package input

import (
	"cmp"
	"strconv"
)

// Kind tags the modality of a RawInput
type Kind uint8

const (
	KindNone Kind = iota
	KindKeyboard
	KindMouse
	KindGamepad
)

func (k Kind) String() string {
	switch k {
	case KindKeyboard:
		return "keyboard"
	case KindMouse:
		return "mouse"
	case KindGamepad:
		return "gamepad"
	}
	return "none"
}

// RawInput identifies one physical control
// Comparable and usable as a map key; equality is structural
type RawInput struct {
	Kind Kind
	Code uint16
	// Gamepad is meaningful for KindGamepad only; AnyGamepad defers to the owner's association
	Gamepad Gamepad
}

// Key returns the RawInput for a keyboard key
func Key(k KeyCode) RawInput {
	return RawInput{Kind: KindKeyboard, Code: uint16(k)}
}

// Mouse returns the RawInput for a mouse button
func Mouse(b MouseButton) RawInput {
	return RawInput{Kind: KindMouse, Code: uint16(b)}
}

// Pad returns a gamepad button RawInput resolved against the owner's associated gamepad
func Pad(b GamepadButtonType) RawInput {
	return RawInput{Kind: KindGamepad, Code: uint16(b), Gamepad: AnyGamepad}
}

// PadOn returns a gamepad button RawInput pinned to gamepad g
func PadOn(g Gamepad, b GamepadButtonType) RawInput {
	return RawInput{Kind: KindGamepad, Code: uint16(b), Gamepad: g}
}

// KeyCode returns the key of a keyboard input
func (r RawInput) KeyCode() (KeyCode, bool) {
	return KeyCode(r.Code), r.Kind == KindKeyboard
}

// MouseButton returns the button of a mouse input
func (r RawInput) MouseButton() (MouseButton, bool) {
	return MouseButton(r.Code), r.Kind == KindMouse
}

// PadButton returns the button position of a gamepad input
func (r RawInput) PadButton() (GamepadButtonType, bool) {
	return GamepadButtonType(r.Code), r.Kind == KindGamepad
}

// String returns the config spelling: "lcontrol", "mouse:left", "pad:south", "pad1:south"
func (r RawInput) String() string {
	switch r.Kind {
	case KindKeyboard:
		return KeyCode(r.Code).String()
	case KindMouse:
		return "mouse:" + MouseButton(r.Code).String()
	case KindGamepad:
		if r.Gamepad == AnyGamepad {
			return "pad:" + GamepadButtonType(r.Code).String()
		}
		return "pad" + strconv.Itoa(int(r.Gamepad)) + ":" + GamepadButtonType(r.Code).String()
	}
	return "none"
}

// compareRaw orders by kind, gamepad, code; used for canonical combination order
func compareRaw(a, b RawInput) int {
	if c := cmp.Compare(a.Kind, b.Kind); c != 0 {
		return c
	}
	if c := cmp.Compare(a.Gamepad, b.Gamepad); c != 0 {
		return c
	}
	return cmp.Compare(a.Code, b.Code)
}
