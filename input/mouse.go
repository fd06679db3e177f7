package input

// MouseButton represents mouse button identity
type MouseButton uint8

const (
	MouseNone MouseButton = iota
	MouseLeft
	MouseMiddle
	MouseRight
	MouseBack    // Button 4 (if supported)
	MouseForward // Button 5 (if supported)
)

var mouseNames = map[MouseButton]string{
	MouseLeft:    "left",
	MouseMiddle:  "middle",
	MouseRight:   "right",
	MouseBack:    "back",
	MouseForward: "forward",
}

// String returns the config name of the button
func (b MouseButton) String() string {
	if name, ok := mouseNames[b]; ok {
		return name
	}
	return "none"
}

// MouseByName resolves a config name to a MouseButton
func MouseByName(name string) (MouseButton, bool) {
	for b, n := range mouseNames {
		if n == name {
			return b, true
		}
	}
	return MouseNone, false
}
