// Package source turns terminal events into per-frame input snapshots
package source

import (
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/inputmanager/input"
)

// DefaultHold covers the gap between the first key event and terminal autorepeat
const DefaultHold = 150 * time.Millisecond

// Terminal collects tcell key and mouse events
// Terminals report key presses but never releases, so a key counts as held until
// hold elapses without a repeat. Mouse buttons follow tcell's button masks exactly.
// HandleEvent runs on the event goroutine, Snapshot on the frame loop
type Terminal struct {
	mu   sync.Mutex
	hold time.Duration

	keys  map[input.KeyCode]time.Time // release deadline
	mouse []input.MouseButton

	mouseX, mouseY int
}

// NewTerminal creates a collector; hold <= 0 selects DefaultHold
func NewTerminal(hold time.Duration) *Terminal {
	if hold <= 0 {
		hold = DefaultHold
	}
	return &Terminal{
		hold: hold,
		keys: make(map[input.KeyCode]time.Time),
	}
}

// Hold returns the key hold window
func (t *Terminal) Hold() time.Duration {
	return t.hold
}

// HandleEvent records key and mouse events, returning false for other event types
func (t *Terminal) HandleEvent(ev tcell.Event) bool {
	switch e := ev.(type) {
	case *tcell.EventKey:
		keys := translateKey(e)
		if len(keys) == 0 {
			return false
		}
		deadline := e.When().Add(t.hold)
		t.mu.Lock()
		for _, k := range keys {
			if deadline.After(t.keys[k]) {
				t.keys[k] = deadline
			}
		}
		t.mu.Unlock()
		return true

	case *tcell.EventMouse:
		buttons := translateButtons(e.Buttons())
		mods := modifierKeys(e.Modifiers())
		x, y := e.Position()

		t.mu.Lock()
		t.mouse = buttons
		t.mouseX, t.mouseY = x, y
		deadline := e.When().Add(t.hold)
		for _, k := range mods {
			if deadline.After(t.keys[k]) {
				t.keys[k] = deadline
			}
		}
		t.mu.Unlock()
		return true
	}
	return false
}

// Snapshot returns the inputs held at now
// Expired keys are pruned; the gamepad modality is absent
func (t *Terminal) Snapshot(now time.Time) *input.Snapshot {
	kb := input.NewButtons[input.KeyCode]()
	mouse := input.NewButtons[input.MouseButton]()

	t.mu.Lock()
	for k, deadline := range t.keys {
		if now.Before(deadline) {
			kb.Press(k)
		} else {
			delete(t.keys, k)
		}
	}
	for _, b := range t.mouse {
		mouse.Press(b)
	}
	t.mu.Unlock()

	return &input.Snapshot{Keyboard: kb, Mouse: mouse}
}

// MousePosition returns the cell of the last mouse event
func (t *Terminal) MousePosition() (x, y int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.mouseX, t.mouseY
}

// Reset forgets every held input, e.g. after focus loss
func (t *Terminal) Reset() {
	t.mu.Lock()
	clear(t.keys)
	t.mouse = nil
	t.mu.Unlock()
}
