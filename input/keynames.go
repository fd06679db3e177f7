package input

// keyToName maps KeyCode constants to canonical config string names
// Digits and letters are filled in by init
var keyToName = map[KeyCode]string{
	KeyF1:  "f1",
	KeyF2:  "f2",
	KeyF3:  "f3",
	KeyF4:  "f4",
	KeyF5:  "f5",
	KeyF6:  "f6",
	KeyF7:  "f7",
	KeyF8:  "f8",
	KeyF9:  "f9",
	KeyF10: "f10",
	KeyF11: "f11",
	KeyF12: "f12",

	KeyEscape:    "escape",
	KeyEnter:     "enter",
	KeyTab:       "tab",
	KeyBackspace: "backspace",
	KeySpace:     "space",
	KeyInsert:    "insert",
	KeyDelete:    "delete",
	KeyHome:      "home",
	KeyEnd:       "end",
	KeyPageUp:    "page_up",
	KeyPageDown:  "page_down",

	KeyUp:    "up",
	KeyDown:  "down",
	KeyLeft:  "left",
	KeyRight: "right",

	KeyMinus:        "minus",
	KeyEqual:        "equal",
	KeyBracketLeft:  "bracket_left",
	KeyBracketRight: "bracket_right",
	KeyBackslash:    "backslash",
	KeySemicolon:    "semicolon",
	KeyApostrophe:   "apostrophe",
	KeyGrave:        "grave",
	KeyComma:        "comma",
	KeyPeriod:       "period",
	KeySlash:        "slash",

	KeyLControl: "lcontrol",
	KeyRControl: "rcontrol",
	KeyLShift:   "lshift",
	KeyRShift:   "rshift",
	KeyLAlt:     "lalt",
	KeyRAlt:     "ralt",
	KeyLSuper:   "lsuper",
	KeyRSuper:   "rsuper",
}

// nameToKey is the reverse lookup, built from keyToName plus aliases
var nameToKey map[string]KeyCode

// punctToKey maps printable punctuation runes to their keys
var punctToKey = map[rune]KeyCode{
	' ':  KeySpace,
	'-':  KeyMinus,
	'=':  KeyEqual,
	'[':  KeyBracketLeft,
	']':  KeyBracketRight,
	'\\': KeyBackslash,
	';':  KeySemicolon,
	'\'': KeyApostrophe,
	'`':  KeyGrave,
	',':  KeyComma,
	'.':  KeyPeriod,
	'/':  KeySlash,
}

func init() {
	for r := '0'; r <= '9'; r++ {
		k, _ := DigitKey(r)
		keyToName[k] = string(r)
	}
	for r := 'a'; r <= 'z'; r++ {
		k, _ := LetterKey(r)
		keyToName[k] = string(r)
	}

	nameToKey = make(map[string]KeyCode, len(keyToName)+32)
	for k, v := range keyToName {
		nameToKey[v] = k
	}
	for r, k := range punctToKey {
		if r != ' ' {
			nameToKey[string(r)] = k
		}
	}

	// Aliases
	for r := '0'; r <= '9'; r++ {
		k, _ := DigitKey(r)
		nameToKey["key"+string(r)] = k
	}
	nameToKey["esc"] = KeyEscape
	nameToKey["return"] = KeyEnter
	nameToKey["del"] = KeyDelete
	nameToKey["pgup"] = KeyPageUp
	nameToKey["pgdn"] = KeyPageDown
	nameToKey["ctrl"] = KeyLControl
	nameToKey["control"] = KeyLControl
	nameToKey["lctrl"] = KeyLControl
	nameToKey["rctrl"] = KeyRControl
	nameToKey["shift"] = KeyLShift
	nameToKey["alt"] = KeyLAlt
	nameToKey["super"] = KeyLSuper
	nameToKey["meta"] = KeyLSuper
	nameToKey["cmd"] = KeyLSuper
}

// KeyName returns the canonical string name for a KeyCode
// Returns empty string for KeyNone and undeclared codes
func KeyName(k KeyCode) string {
	return keyToName[k]
}

// KeyByName resolves a canonical name or alias to a KeyCode
// Returns KeyNone and false if name is unknown
func KeyByName(name string) (KeyCode, bool) {
	k, ok := nameToKey[name]
	return k, ok
}

// KeyByRune resolves a printable rune to the key producing it, ignoring shift state
func KeyByRune(r rune) (KeyCode, bool) {
	if k, ok := LetterKey(r); ok {
		return k, true
	}
	if k, ok := DigitKey(r); ok {
		return k, true
	}
	k, ok := punctToKey[r]
	return k, ok
}

// keyNames returns all lookup names, used for suggestions
func keyNames() []string {
	names := make([]string, 0, len(nameToKey))
	for name := range nameToKey {
		names = append(names, name)
	}
	return names
}
