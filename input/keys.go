package input

import "strconv"

// KeyCode identifies a physical keyboard key, layout-independent
type KeyCode uint16

const (
	KeyNone KeyCode = iota

	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9

	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ

	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12

	KeyEscape
	KeyEnter
	KeyTab
	KeyBackspace
	KeySpace
	KeyInsert
	KeyDelete
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown

	KeyUp
	KeyDown
	KeyLeft
	KeyRight

	KeyMinus
	KeyEqual
	KeyBracketLeft
	KeyBracketRight
	KeyBackslash
	KeySemicolon
	KeyApostrophe
	KeyGrave
	KeyComma
	KeyPeriod
	KeySlash

	// Modifiers are ordinary keys; a modifier binding is a chord
	KeyLControl
	KeyRControl
	KeyLShift
	KeyRShift
	KeyLAlt
	KeyRAlt
	KeyLSuper
	KeyRSuper

	keyCount
)

// String returns the canonical name, or "KeyCode(n)" for unknown codes
func (k KeyCode) String() string {
	if name, ok := keyToName[k]; ok {
		return name
	}
	return "KeyCode(" + strconv.Itoa(int(k)) + ")"
}

// Valid reports whether k is a declared key other than KeyNone
func (k KeyCode) Valid() bool {
	return k > KeyNone && k < keyCount
}

// DigitKey returns Key0..Key9 for a digit rune
func DigitKey(r rune) (KeyCode, bool) {
	if r < '0' || r > '9' {
		return KeyNone, false
	}
	return Key0 + KeyCode(r-'0'), true
}

// LetterKey returns KeyA..KeyZ for an ASCII letter of either case
func LetterKey(r rune) (KeyCode, bool) {
	switch {
	case r >= 'a' && r <= 'z':
		return KeyA + KeyCode(r-'a'), true
	case r >= 'A' && r <= 'Z':
		return KeyA + KeyCode(r-'A'), true
	}
	return KeyNone, false
}
