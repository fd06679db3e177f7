package input

// Buttons is the set of currently held buttons of one modality
type Buttons[T comparable] struct {
	held map[T]struct{}
}

// NewButtons creates an empty button set
func NewButtons[T comparable]() *Buttons[T] {
	return &Buttons[T]{held: make(map[T]struct{})}
}

// Press marks b held
func (b *Buttons[T]) Press(button T) {
	if b.held == nil {
		b.held = make(map[T]struct{})
	}
	b.held[button] = struct{}{}
}

// Release marks b not held, nil-safe
func (b *Buttons[T]) Release(button T) {
	if b == nil {
		return
	}
	delete(b.held, button)
}

// Pressed reports whether button is held, nil-safe
func (b *Buttons[T]) Pressed(button T) bool {
	if b == nil {
		return false
	}
	_, ok := b.held[button]
	return ok
}

// Reset releases every button, nil-safe
func (b *Buttons[T]) Reset() {
	if b == nil {
		return
	}
	clear(b.held)
}

// Len returns the number of held buttons, nil-safe
func (b *Buttons[T]) Len() int {
	if b == nil {
		return 0
	}
	return len(b.held)
}

// Range calls fn for each held button until fn returns false, nil-safe
func (b *Buttons[T]) Range(fn func(T) bool) {
	if b == nil {
		return
	}
	for button := range b.held {
		if !fn(button) {
			return
		}
	}
}

// Clone returns an independent copy, nil stays nil
func (b *Buttons[T]) Clone() *Buttons[T] {
	if b == nil {
		return nil
	}
	out := &Buttons[T]{held: make(map[T]struct{}, len(b.held))}
	for k := range b.held {
		out.held[k] = struct{}{}
	}
	return out
}

// Snapshot is one tick's view of every input modality
// A nil modality means the device class is absent and contributes nothing pressed
// Treated as read-only once handed to the resolver
type Snapshot struct {
	Keyboard *Buttons[KeyCode]
	Mouse    *Buttons[MouseButton]
	Gamepad  *Buttons[GamepadButton]
}

// NewSnapshot creates a snapshot with every modality present and empty
func NewSnapshot() *Snapshot {
	return &Snapshot{
		Keyboard: NewButtons[KeyCode](),
		Mouse:    NewButtons[MouseButton](),
		Gamepad:  NewButtons[GamepadButton](),
	}
}

// KeyboardSnapshot creates a snapshot with only a keyboard, holding keys
func KeyboardSnapshot(keys ...KeyCode) *Snapshot {
	kb := NewButtons[KeyCode]()
	for _, k := range keys {
		kb.Press(k)
	}
	return &Snapshot{Keyboard: kb}
}

// Press marks a raw input held, creating the modality if absent
// Unpinned gamepad inputs are recorded on gamepad 0
func (s *Snapshot) Press(r RawInput) {
	switch r.Kind {
	case KindKeyboard:
		if s.Keyboard == nil {
			s.Keyboard = NewButtons[KeyCode]()
		}
		s.Keyboard.Press(KeyCode(r.Code))
	case KindMouse:
		if s.Mouse == nil {
			s.Mouse = NewButtons[MouseButton]()
		}
		s.Mouse.Press(MouseButton(r.Code))
	case KindGamepad:
		if s.Gamepad == nil {
			s.Gamepad = NewButtons[GamepadButton]()
		}
		g := r.Gamepad
		if g == AnyGamepad {
			g = 0
		}
		s.Gamepad.Press(GamepadButton{Gamepad: g, Button: GamepadButtonType(r.Code)})
	}
}

// Streams pairs a snapshot with the gamepad associated to the owner being evaluated
type Streams struct {
	Snapshot *Snapshot
	// Associated is AnyGamepad when the owner accepts input from any controller
	Associated Gamepad
}

// NewStreams creates streams over snap with no gamepad association
func NewStreams(snap *Snapshot) Streams {
	return Streams{Snapshot: snap, Associated: AnyGamepad}
}

// Pressed reports whether r is held in this tick's snapshot
// Missing snapshot or modality reads as not pressed
func (s Streams) Pressed(r RawInput) bool {
	if s.Snapshot == nil {
		return false
	}
	switch r.Kind {
	case KindKeyboard:
		return s.Snapshot.Keyboard.Pressed(KeyCode(r.Code))
	case KindMouse:
		return s.Snapshot.Mouse.Pressed(MouseButton(r.Code))
	case KindGamepad:
		button := GamepadButtonType(r.Code)
		g := r.Gamepad
		if g == AnyGamepad {
			g = s.Associated
		}
		if g != AnyGamepad {
			return s.Snapshot.Gamepad.Pressed(GamepadButton{Gamepad: g, Button: button})
		}
		found := false
		s.Snapshot.Gamepad.Range(func(gb GamepadButton) bool {
			found = gb.Button == button
			return !found
		})
		return found
	}
	return false
}
