package input

import "strconv"

// Gamepad identifies one connected controller
type Gamepad int

// AnyGamepad marks a gamepad input that is not pinned to a controller
// It resolves to the owner's associated gamepad, or to every gamepad when none is associated
const AnyGamepad Gamepad = -1

func (g Gamepad) String() string {
	if g == AnyGamepad {
		return "any"
	}
	return "gamepad" + strconv.Itoa(int(g))
}

// GamepadButtonType is a controller-independent button position
type GamepadButtonType uint8

const (
	PadNone GamepadButtonType = iota
	PadSouth
	PadEast
	PadNorth
	PadWest
	PadC
	PadZ
	PadLeftTrigger
	PadLeftTrigger2
	PadRightTrigger
	PadRightTrigger2
	PadSelect
	PadStart
	PadMode
	PadLeftThumb
	PadRightThumb
	PadDPadUp
	PadDPadDown
	PadDPadLeft
	PadDPadRight
)

var padNames = map[GamepadButtonType]string{
	PadSouth:         "south",
	PadEast:          "east",
	PadNorth:         "north",
	PadWest:          "west",
	PadC:             "c",
	PadZ:             "z",
	PadLeftTrigger:   "left_trigger",
	PadLeftTrigger2:  "left_trigger2",
	PadRightTrigger:  "right_trigger",
	PadRightTrigger2: "right_trigger2",
	PadSelect:        "select",
	PadStart:         "start",
	PadMode:          "mode",
	PadLeftThumb:     "left_thumb",
	PadRightThumb:    "right_thumb",
	PadDPadUp:        "dpad_up",
	PadDPadDown:      "dpad_down",
	PadDPadLeft:      "dpad_left",
	PadDPadRight:     "dpad_right",
}

// padAliases maps face button letters of common layouts to positions
var padAliases = map[string]GamepadButtonType{
	"a":  PadSouth,
	"b":  PadEast,
	"x":  PadWest,
	"y":  PadNorth,
	"l1": PadLeftTrigger,
	"l2": PadLeftTrigger2,
	"r1": PadRightTrigger,
	"r2": PadRightTrigger2,
	"l3": PadLeftThumb,
	"r3": PadRightThumb,
}

func (b GamepadButtonType) String() string {
	if name, ok := padNames[b]; ok {
		return name
	}
	return "none"
}

// PadButtonByName resolves a position name or layout alias
func PadButtonByName(name string) (GamepadButtonType, bool) {
	for b, n := range padNames {
		if n == name {
			return b, true
		}
	}
	b, ok := padAliases[name]
	return b, ok
}

// GamepadButton is one button on one specific controller, as reported by a snapshot
type GamepadButton struct {
	Gamepad Gamepad
	Button  GamepadButtonType
}
