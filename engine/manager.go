package engine

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/inputmanager/action"
	"github.com/lixenwraith/inputmanager/clash"
	"github.com/lixenwraith/inputmanager/input"
	"github.com/lixenwraith/inputmanager/inputmap"
	"github.com/lixenwraith/inputmanager/logger"
	"github.com/lixenwraith/inputmanager/status"
)

// ErrDuplicateOwner is returned by Spawn for an id already in use
var ErrDuplicateOwner = errors.New("engine: owner already spawned")

// Metric keys written by Manager
const (
	MetricTicks        = "input.ticks"
	MetricCandidates   = "input.candidates"
	MetricClashes      = "input.clashes"
	MetricSuppressed   = "input.suppressed"
	MetricDiffs        = "input.diffs"
	MetricDiffsDropped = "input.diffs_dropped"
	MetricEnabled      = "input.enabled"
	MetricOwners       = "input.owners"
	MetricFrameMillis  = "input.frame_ms"
	MetricStrategy     = "input.strategy"
)

// Config is the Manager setup; zero values select defaults
type Config struct {
	// Strategy applies to every owner whose map has no override
	Strategy clash.Strategy
	// TickRate is the Run loop interval, DefaultTickRate when zero
	TickRate time.Duration
	Logger   *slog.Logger
	Status   *status.Registry
}

const DefaultTickRate = 16 * time.Millisecond

// owner is one entity carrying action state
// A nil bindings map means the owner is driven only by clicks and diff replay
type owner[A action.Action, ID comparable] struct {
	id       ID
	state    *action.State[A]
	bindings *inputmap.InputMap[A]

	// actions pressed by clicks in the previous frame, for mapless release
	clickHeld []A
}

// Manager drives action state for every owner through the per-frame pipeline
// Frame, Spawn, Despawn, ApplyDiffs belong to the frame loop goroutine
// Click and SetEnabled are safe from any goroutine
type Manager[A action.Action, ID comparable] struct {
	reg      *action.Registry[A]
	strategy clash.Strategy
	tickRate time.Duration
	log      *slog.Logger

	owners []*owner[A, ID]
	index  map[ID]*owner[A, ID]

	enabled atomic.Bool
	applied bool // enabled value seen by the last frame

	clickMu sync.Mutex
	clicks  []action.Driver[A, ID]

	statusReg     *status.Registry
	statTicks     *atomic.Int64
	statCands     *atomic.Int64
	statClashes   *atomic.Int64
	statSuppress  *atomic.Int64
	statDiffs     *atomic.Int64
	statDropped   *atomic.Int64
	statOwners    *atomic.Int64
	statEnabled   *atomic.Bool
	statFrameTime *status.AtomicFloat
}

// NewManager creates an enabled Manager for the actions declared in reg
func NewManager[A action.Action, ID comparable](reg *action.Registry[A], cfg Config) *Manager[A, ID] {
	if cfg.TickRate <= 0 {
		cfg.TickRate = DefaultTickRate
	}
	if cfg.Logger == nil {
		cfg.Logger = logger.L()
	}
	if cfg.Status == nil {
		cfg.Status = status.NewRegistry()
	}

	m := &Manager[A, ID]{
		reg:           reg,
		strategy:      cfg.Strategy,
		tickRate:      cfg.TickRate,
		log:           cfg.Logger.With("component", "input"),
		index:         make(map[ID]*owner[A, ID]),
		applied:       true,
		statusReg:     cfg.Status,
		statTicks:     cfg.Status.Ints.Get(MetricTicks),
		statCands:     cfg.Status.Ints.Get(MetricCandidates),
		statClashes:   cfg.Status.Ints.Get(MetricClashes),
		statSuppress:  cfg.Status.Ints.Get(MetricSuppressed),
		statDiffs:     cfg.Status.Ints.Get(MetricDiffs),
		statDropped:   cfg.Status.Ints.Get(MetricDiffsDropped),
		statOwners:    cfg.Status.Ints.Get(MetricOwners),
		statEnabled:   cfg.Status.Bools.Get(MetricEnabled),
		statFrameTime: cfg.Status.Floats.Get(MetricFrameMillis),
	}
	m.enabled.Store(true)
	m.statEnabled.Store(true)
	cfg.Status.Strings.Get(MetricStrategy).Store(cfg.Strategy.String())
	return m
}

// Registry returns the action registry the Manager was built with
func (m *Manager[A, ID]) Registry() *action.Registry[A] {
	return m.reg
}

// Status returns the metrics registry
func (m *Manager[A, ID]) Status() *status.Registry {
	return m.statusReg
}

// Strategy returns the default clash strategy
func (m *Manager[A, ID]) Strategy() clash.Strategy {
	return m.strategy
}

// SetStrategy changes the default clash strategy from the next frame
func (m *Manager[A, ID]) SetStrategy(s clash.Strategy) {
	m.strategy = s
	m.statusReg.Strings.Get(MetricStrategy).Store(s.String())
	m.log.Debug("clash strategy changed", "strategy", s)
}

// Spawn registers an owner with fresh released state
// bindings may be nil for owners driven only by clicks or replayed diffs
func (m *Manager[A, ID]) Spawn(id ID, bindings *inputmap.InputMap[A]) error {
	if _, ok := m.index[id]; ok {
		return fmt.Errorf("%w: %v", ErrDuplicateOwner, id)
	}
	o := &owner[A, ID]{
		id:       id,
		state:    m.reg.NewState(),
		bindings: bindings,
	}
	m.owners = append(m.owners, o)
	m.index[id] = o
	m.statOwners.Store(int64(len(m.owners)))

	if bindings != nil {
		m.log.Debug("owner spawned", "id", id, "bindings", bindings.Len())
		for _, c := range bindings.Conflicts() {
			m.log.Debug("binding conflict",
				"id", id,
				"first", m.reg.Name(c.First), "first_combo", c.FirstCombo,
				"second", m.reg.Name(c.Second), "second_combo", c.SecondCombo)
		}
	} else {
		m.log.Debug("owner spawned", "id", id, "bindings", 0)
	}
	return nil
}

// Despawn removes an owner, false when id is unknown
func (m *Manager[A, ID]) Despawn(id ID) bool {
	o, ok := m.index[id]
	if !ok {
		return false
	}
	delete(m.index, id)
	m.owners = slices.DeleteFunc(m.owners, func(x *owner[A, ID]) bool { return x == o })
	m.statOwners.Store(int64(len(m.owners)))
	m.log.Debug("owner despawned", "id", id)
	return true
}

// State returns the action state of id; callers read it between frames
func (m *Manager[A, ID]) State(id ID) (*action.State[A], bool) {
	o, ok := m.index[id]
	if !ok {
		return nil, false
	}
	return o.state, true
}

// Bindings returns the input map of id, nil for mapless owners
func (m *Manager[A, ID]) Bindings(id ID) (*inputmap.InputMap[A], bool) {
	o, ok := m.index[id]
	if !ok {
		return nil, false
	}
	return o.bindings, true
}

// Owners returns owner ids in spawn order
func (m *Manager[A, ID]) Owners() []ID {
	ids := make([]ID, len(m.owners))
	for i, o := range m.owners {
		ids[i] = o.id
	}
	return ids
}

// SetEnabled is the toggle control
// Disabling releases every owner's actions on the next frame and skips input until re-enabled
func (m *Manager[A, ID]) SetEnabled(on bool) {
	if m.enabled.Swap(on) != on {
		m.statEnabled.Store(on)
		m.log.Debug("input toggled", "enabled", on)
	}
}

func (m *Manager[A, ID]) Enabled() bool {
	return m.enabled.Load()
}

// Click queues a UI click pressing d.Action on d.Target during the next frame
// The press lasts while clicks keep arriving each frame
func (m *Manager[A, ID]) Click(d action.Driver[A, ID]) {
	m.clickMu.Lock()
	m.clicks = append(m.clicks, d)
	m.clickMu.Unlock()
}

func (m *Manager[A, ID]) takeClicks() []action.Driver[A, ID] {
	m.clickMu.Lock()
	defer m.clickMu.Unlock()
	c := m.clicks
	m.clicks = nil
	return c
}

// Frame runs one pipeline step: tick, then release on toggle-off or update from snap,
// then pending clicks, then diff generation
// A zero now fails with action.ErrClockUninitialized before any state changes
func (m *Manager[A, ID]) Frame(now time.Time, snap *input.Snapshot) ([]action.Diff[A, ID], error) {
	if now.IsZero() {
		return nil, action.ErrClockUninitialized
	}
	start := time.Now()

	for _, o := range m.owners {
		if err := o.state.Tick(now); err != nil {
			return nil, err
		}
	}
	m.statTicks.Add(1)

	clicks := m.takeClicks()
	enabled := m.enabled.Load()
	switch {
	case !enabled && m.applied:
		for _, o := range m.owners {
			o.state.ReleaseAll()
			o.clickHeld = nil
		}
		m.log.Debug("input disabled, actions released", "owners", len(m.owners))
	case enabled:
		m.update(snap, clicks)
	}
	m.applied = enabled

	var diffs []action.Diff[A, ID]
	for _, o := range m.owners {
		diffs = action.AppendDiffs(diffs, o.id, o.state)
	}
	m.statDiffs.Add(int64(len(diffs)))
	m.statFrameTime.Store(float64(time.Since(start).Microseconds()) / 1000)
	return diffs, nil
}

func (m *Manager[A, ID]) update(snap *input.Snapshot, clicks []action.Driver[A, ID]) {
	clicked := make(map[*owner[A, ID]][]A)
	for _, c := range clicks {
		o, ok := m.index[c.Target]
		if !ok {
			m.log.Debug("click for unknown owner", "target", c.Target, "action", m.reg.Name(c.Action))
			continue
		}
		if m.reg.Valid(c.Action) {
			clicked[o] = append(clicked[o], c.Action)
		}
	}

	for _, o := range m.owners {
		held := clicked[o]
		if o.bindings != nil {
			res := o.bindings.Resolve(o.bindings.Streams(snap), m.strategy)
			m.statCands.Add(int64(len(res.Pressed) + len(res.Suppressed)))
			m.statClashes.Add(int64(len(res.Clashes)))
			m.statSuppress.Add(int64(len(res.Suppressed)))
			// Clicks join the resolved set so a held click does not flicker through release
			o.state.Update(append(res.Pressed, held...))
		} else {
			// Mapless owners keep replayed state; only click-driven actions are touched
			for _, a := range held {
				o.state.Press(a)
			}
			for _, a := range o.clickHeld {
				if !slices.Contains(held, a) {
					o.state.Release(a)
				}
			}
		}
		o.clickHeld = held
	}
}

// ApplyDiffs replays diffs onto owners matched by id and returns how many applied
// Diffs for unknown ids are dropped
func (m *Manager[A, ID]) ApplyDiffs(diffs []action.Diff[A, ID]) int {
	applied := 0
	for _, d := range diffs {
		o, ok := m.index[d.ID]
		if !ok {
			m.statDropped.Add(1)
			m.log.Debug("diff for unknown owner dropped", "id", d.ID, "kind", d.Kind)
			continue
		}
		action.ApplyDiff(o.state, d)
		applied++
	}
	return applied
}
