package main

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/inputmanager/action"
	"github.com/lixenwraith/inputmanager/audio"
	"github.com/lixenwraith/inputmanager/config"
	"github.com/lixenwraith/inputmanager/engine"
	"github.com/lixenwraith/inputmanager/input"
	"github.com/lixenwraith/inputmanager/inputmap"
	"github.com/lixenwraith/inputmanager/logger"
	"github.com/lixenwraith/inputmanager/orientation"
	"github.com/lixenwraith/inputmanager/source"
	"github.com/lixenwraith/inputmanager/status"
	"github.com/lixenwraith/inputmanager/wire"
)

const (
	tableTop   = 5
	buttonRow  = 2
	metricsCol = 72
)

// button is an on-screen control clicking an action on the UI owner
type button struct {
	x, y   int
	label  string
	action demoAction
}

func (b button) hit(x, y int) bool {
	return y == b.y && x >= b.x && x < b.x+len(b.label)
}

var arrows = [8]rune{'→', '↗', '↑', '↖', '←', '↙', '↓', '↘'}

type Demo struct {
	screen   tcell.Screen
	cfg      config.Config
	log      *slog.Logger
	manager  *engine.Manager[demoAction, uint8]
	replica  *engine.Manager[demoAction, uint8]
	bindings *inputmap.InputMap[demoAction]
	term     *source.Terminal
	player   *audio.Player
	clock    engine.TimeProvider
	buttons  []button

	// Strategy belongs to the frame goroutine, the event goroutine only requests a change
	cycleStrategy atomic.Bool

	// Frame goroutine only
	snap     *input.Snapshot
	seq      uint32
	wire     bytes.Buffer
	sent     int
	mismatch int
	facing   orientation.Direction
}

func NewDemo(cfg config.Config, bindings *inputmap.InputMap[demoAction]) (*Demo, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.EnableMouse()
	screen.EnableFocus()

	log := logger.L()
	d := &Demo{
		screen:   screen,
		cfg:      cfg,
		log:      log,
		bindings: bindings,
		term:     source.NewTerminal(cfg.Input.Hold.Std()),
		player:   audio.NewPlayer(cfg.Audio),
		clock:    engine.NewMonotonicTimeProvider(),
		facing:   orientation.North,
	}

	d.manager = engine.NewManager[demoAction, uint8](actions, engine.Config{
		Strategy: cfg.Engine.ClashStrategy,
		TickRate: cfg.Engine.TickRate.Std(),
		Logger:   log,
	})
	// The replica stands in for a remote peer fed only through the wire codec
	d.replica = engine.NewManager[demoAction, uint8](actions, engine.Config{
		Logger: log.With("peer", "replica"),
	})

	if err := d.manager.Spawn(ownerPlayer, bindings); err != nil {
		return nil, err
	}
	if err := d.manager.Spawn(ownerUI, nil); err != nil {
		return nil, err
	}
	for _, id := range d.manager.Owners() {
		if err := d.replica.Spawn(id, nil); err != nil {
			return nil, err
		}
	}

	x := 1
	for _, a := range []demoAction{Jump, Fire, AltFire, Pause} {
		label := "[" + actions.Name(a) + "]"
		d.buttons = append(d.buttons, button{x: x, y: buttonRow, label: label, action: a})
		x += len(label) + 1
	}

	if err := d.player.Start(); err != nil {
		// Non-fatal, the demo runs silent
		log.Warn("audio initialization failed", "error", err)
	}
	return d, nil
}

func (d *Demo) run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	errc := make(chan error, 1)
	go func() {
		errc <- d.manager.Run(ctx, d.clock, engine.SnapshotFunc(d.snapshot), d.onFrame)
	}()

	events := make(chan tcell.Event, 100)
	go pumpEvents(ctx, d.screen.PollEvent, events)

	for {
		select {
		case err := <-errc:
			return err
		case ev, ok := <-events:
			if !ok {
				cancel()
				return <-errc
			}
			if !d.handleEvent(ev) {
				cancel()
				return <-errc
			}
		}
	}
}

// pumpEvents forwards polled events until poll returns nil or ctx is done
// events is closed on return
func pumpEvents(ctx context.Context, poll func() tcell.Event, events chan<- tcell.Event) {
	defer close(events)
	for {
		ev := poll()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-ctx.Done():
			return
		}
	}
}

// handleEvent runs on the event goroutine and returns false to quit
func (d *Demo) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() == tcell.KeyF2 {
			on := !d.manager.Enabled()
			d.manager.SetEnabled(on)
			if on {
				d.player.Play(audio.SoundToggleOn)
			} else {
				d.player.Play(audio.SoundToggleOff)
			}
			return true
		}
		if ev.Key() == tcell.KeyF3 {
			d.cycleStrategy.Store(true)
			return true
		}
	case *tcell.EventFocus:
		if !ev.Focused {
			d.term.Reset()
		}
		return true
	case *tcell.EventResize:
		d.screen.Sync()
		return true
	}
	d.term.HandleEvent(ev)
	return true
}

func (d *Demo) snapshot(now time.Time) *input.Snapshot {
	d.snap = d.term.Snapshot(now)
	return d.snap
}

// onFrame runs on the frame goroutine after each Manager frame
func (d *Demo) onFrame(diffs []action.Diff[demoAction, uint8]) {
	now := d.clock.Now()

	if d.cycleStrategy.Swap(false) {
		d.manager.SetStrategy((d.manager.Strategy() + 1) % 3)
	}

	// A held mouse button over a control keeps clicking it, one click per frame
	if d.snap != nil && d.snap.Mouse.Pressed(input.MouseLeft) {
		x, y := d.term.MousePosition()
		for _, b := range d.buttons {
			if b.hit(x, y) {
				d.manager.Click(action.Driver[demoAction, uint8]{Action: b.action, Target: ownerUI})
			}
		}
	}

	d.relay(now, diffs)
	audio.PlayDiffs(d.player, diffs)

	if state, ok := d.manager.State(ownerPlayer); ok {
		d.updateFacing(state)
	}
	d.draw()
}

// relay round-trips the frame's diffs through the wire codec into the replica
func (d *Demo) relay(now time.Time, diffs []action.Diff[demoAction, uint8]) {
	if _, err := d.replica.Frame(now, nil); err != nil {
		d.log.Error("replica frame failed", "error", err)
		return
	}
	if len(diffs) == 0 {
		return
	}

	d.wire.Reset()
	d.seq++
	if err := wire.EncodeDiffs(&d.wire, d.seq, diffs); err != nil {
		d.log.Error("diff encode failed", "error", err, "count", len(diffs))
		return
	}
	d.sent += d.wire.Len()

	seq, decoded, err := wire.DecodeDiffs[demoAction, uint8](&d.wire)
	if err != nil || seq != d.seq {
		d.log.Error("diff decode failed", "error", err, "seq", seq)
		return
	}
	d.replica.ApplyDiffs(decoded)

	for _, id := range d.manager.Owners() {
		local, _ := d.manager.State(id)
		remote, _ := d.replica.State(id)
		for _, a := range actions.Variants() {
			if local.Pressed(a) != remote.Pressed(a) {
				d.mismatch++
				d.log.Warn("replica diverged", "owner", id, "action", actions.Name(a))
			}
		}
	}
}

// updateFacing keeps the last movement direction while no move action is held
func (d *Demo) updateFacing(state *action.State[demoAction]) {
	var dirs []orientation.Direction
	for a, dir := range map[demoAction]orientation.Direction{
		MoveUp:    orientation.North,
		MoveDown:  orientation.South,
		MoveLeft:  orientation.West,
		MoveRight: orientation.East,
	} {
		if state.Pressed(a) {
			dirs = append(dirs, dir)
		}
	}
	if dir, err := orientation.Sum(dirs...); err == nil {
		d.facing = dir
	}
}

func (d *Demo) draw() {
	s := d.screen
	s.Clear()
	w, _ := s.Size()

	title := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorNavy).Bold(true)
	dim := tcell.StyleDefault.Foreground(tcell.ColorGray)
	normal := tcell.StyleDefault.Foreground(tcell.ColorSilver)
	hot := tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	edge := tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)

	header := " Input Demo - F2 toggle input, F3 cycle clash strategy, click the buttons, Esc to quit"
	drawText(s, 0, 0, header+strings.Repeat(" ", max(0, w-len(header))), title)

	for _, b := range d.buttons {
		st := normal.Reverse(true)
		if ui, ok := d.manager.State(ownerUI); ok && ui.Pressed(b.action) {
			st = hot.Reverse(true)
		}
		drawText(s, b.x, b.y, b.label, st)
	}

	drawText(s, 1, tableTop-1, fmt.Sprintf("%-12s %-14s %-9s %-9s %-7s %s", "action", "player", "held", "ui", "replica", "bindings"), dim)
	player, _ := d.manager.State(ownerPlayer)
	ui, _ := d.manager.State(ownerUI)
	remote, _ := d.replica.State(ownerPlayer)
	for i, a := range actions.Variants() {
		st := normal
		switch player.ButtonState(a) {
		case action.JustPressed, action.JustReleased:
			st = edge
		case action.Pressed:
			st = hot
		}
		held := ""
		if player.Pressed(a) {
			held = player.CurrentDuration(a).Truncate(time.Millisecond).String()
		}
		combos := make([]string, 0, 4)
		for _, c := range d.bindings.Get(a) {
			combos = append(combos, c.String())
		}
		line := fmt.Sprintf("%-12s %-14s %-9s %-9s %-7v %s",
			actions.Name(a), player.ButtonState(a), held, ui.ButtonState(a), remote.Pressed(a), strings.Join(combos, " "))
		drawText(s, 1, tableTop+i, line, st)
	}

	y := tableTop + actions.Len() + 1
	deg := d.facing.Rotation().Degrees()
	arrow := arrows[int(math.Round(deg/45))%len(arrows)]
	drawText(s, 1, y, fmt.Sprintf("facing %c %s (%s)", arrow, d.facing, d.facing.Rotation()), normal)

	enabled := "on"
	if !d.manager.Enabled() {
		enabled = "OFF"
	}
	drawText(s, 1, y+1, fmt.Sprintf("input %s | strategy %s | wire seq %d, %d bytes | replica mismatches %d",
		enabled, d.manager.Strategy(), d.seq, d.sent, d.mismatch), normal)

	drawMetrics(s, metricsCol, tableTop-1, "metrics", d.manager.Status(), dim, normal)
	s.Show()
}

func drawMetrics(s tcell.Screen, x, y int, heading string, reg *status.Registry, head, body tcell.Style) {
	drawText(s, x, y, heading, head)
	for i, e := range reg.Entries() {
		drawText(s, x, y+1+i, fmt.Sprintf("%-20s %s", e.Key, e.Value), body)
	}
}

func drawText(s tcell.Screen, x, y int, text string, style tcell.Style) {
	for _, r := range text {
		s.SetContent(x, y, r, nil, style)
		x++
	}
}

func (d *Demo) cleanup() {
	d.player.Stop()
	d.screen.Fini()
}
