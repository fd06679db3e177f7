package source

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/inputmanager/input"
)

var specialKeys = map[tcell.Key]input.KeyCode{
	tcell.KeyUp:         input.KeyUp,
	tcell.KeyDown:       input.KeyDown,
	tcell.KeyLeft:       input.KeyLeft,
	tcell.KeyRight:      input.KeyRight,
	tcell.KeyHome:       input.KeyHome,
	tcell.KeyEnd:        input.KeyEnd,
	tcell.KeyPgUp:       input.KeyPageUp,
	tcell.KeyPgDn:       input.KeyPageDown,
	tcell.KeyInsert:     input.KeyInsert,
	tcell.KeyDelete:     input.KeyDelete,
	tcell.KeyEscape:     input.KeyEscape,
	tcell.KeyEnter:      input.KeyEnter,
	tcell.KeyTab:        input.KeyTab,
	tcell.KeyBackspace:  input.KeyBackspace,
	tcell.KeyBackspace2: input.KeyBackspace,
	tcell.KeyF1:         input.KeyF1,
	tcell.KeyF2:         input.KeyF2,
	tcell.KeyF3:         input.KeyF3,
	tcell.KeyF4:         input.KeyF4,
	tcell.KeyF5:         input.KeyF5,
	tcell.KeyF6:         input.KeyF6,
	tcell.KeyF7:         input.KeyF7,
	tcell.KeyF8:         input.KeyF8,
	tcell.KeyF9:         input.KeyF9,
	tcell.KeyF10:        input.KeyF10,
	tcell.KeyF11:        input.KeyF11,
	tcell.KeyF12:        input.KeyF12,
}

// shiftedRunes maps US-layout shifted symbols back to the unshifted key
var shiftedRunes = map[rune]input.KeyCode{
	'!': input.Key1,
	'@': input.Key2,
	'#': input.Key3,
	'$': input.Key4,
	'%': input.Key5,
	'^': input.Key6,
	'&': input.Key7,
	'*': input.Key8,
	'(': input.Key9,
	')': input.Key0,
	'_': input.KeyMinus,
	'+': input.KeyEqual,
	'{': input.KeyBracketLeft,
	'}': input.KeyBracketRight,
	'|': input.KeyBackslash,
	':': input.KeySemicolon,
	'"': input.KeyApostrophe,
	'~': input.KeyGrave,
	'<': input.KeyComma,
	'>': input.KeyPeriod,
	'?': input.KeySlash,
}

// translateKey returns the physical keys implied by one key event, modifiers included
// Unknown keys yield nil
func translateKey(ev *tcell.EventKey) []input.KeyCode {
	mods := modifierKeys(ev.Modifiers())

	var key input.KeyCode
	switch k := ev.Key(); {
	case k == tcell.KeyRune:
		r := ev.Rune()
		if kc, ok := input.KeyByRune(r); ok {
			key = kc
			if r >= 'A' && r <= 'Z' {
				mods = appendKey(mods, input.KeyLShift)
			}
		} else if kc, ok := shiftedRunes[r]; ok {
			key = kc
			mods = appendKey(mods, input.KeyLShift)
		}
	case k == tcell.KeyBacktab:
		key = input.KeyTab
		mods = appendKey(mods, input.KeyLShift)
	default:
		// Backspace, Tab, Enter and Escape alias Ctrl-H, I, M and [, so the table wins
		if kc, ok := specialKeys[k]; ok {
			key = kc
		} else if k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
			key = input.KeyA + input.KeyCode(k-tcell.KeyCtrlA)
			mods = appendKey(mods, input.KeyLControl)
		} else if k == tcell.KeyCtrlSpace {
			key = input.KeySpace
			mods = appendKey(mods, input.KeyLControl)
		}
	}

	if key == input.KeyNone {
		return nil
	}
	return append(mods, key)
}

// modifierKeys maps tcell modifiers onto the left-hand modifier keys
func modifierKeys(m tcell.ModMask) []input.KeyCode {
	var keys []input.KeyCode
	if m&tcell.ModCtrl != 0 {
		keys = append(keys, input.KeyLControl)
	}
	if m&tcell.ModAlt != 0 {
		keys = append(keys, input.KeyLAlt)
	}
	if m&tcell.ModShift != 0 {
		keys = append(keys, input.KeyLShift)
	}
	if m&tcell.ModMeta != 0 {
		keys = append(keys, input.KeyLSuper)
	}
	return keys
}

func appendKey(keys []input.KeyCode, k input.KeyCode) []input.KeyCode {
	for _, x := range keys {
		if x == k {
			return keys
		}
	}
	return append(keys, k)
}

// translateButtons expands a tcell button mask; wheel directions are not buttons
func translateButtons(m tcell.ButtonMask) []input.MouseButton {
	var buttons []input.MouseButton
	if m&tcell.ButtonPrimary != 0 {
		buttons = append(buttons, input.MouseLeft)
	}
	if m&tcell.ButtonMiddle != 0 {
		buttons = append(buttons, input.MouseMiddle)
	}
	if m&tcell.ButtonSecondary != 0 {
		buttons = append(buttons, input.MouseRight)
	}
	if m&tcell.Button4 != 0 {
		buttons = append(buttons, input.MouseBack)
	}
	if m&tcell.Button5 != 0 {
		buttons = append(buttons, input.MouseForward)
	}
	return buttons
}
