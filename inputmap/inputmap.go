package inputmap

import (
	"slices"

	"github.com/lixenwraith/inputmanager/action"
	"github.com/lixenwraith/inputmanager/clash"
	"github.com/lixenwraith/inputmanager/input"
)

// InputMap binds each action to an ordered list of input combinations
// Insertion order is kept for display; resolution only looks at length and declaration order
type InputMap[A action.Action] struct {
	bindings [][]input.Combination // indexed by action ordinal

	gamepad input.Gamepad

	strategy    clash.Strategy
	hasStrategy bool
	rule        clash.Rule
}

// New creates an empty map that accepts input from any gamepad
func New[A action.Action]() *InputMap[A] {
	return &InputMap[A]{gamepad: input.AnyGamepad}
}

// MaxActions bounds action ordinals; bindings are stored densely by ordinal
const MaxActions = 1 << 16

func (m *InputMap[A]) list(a A) *[]input.Combination {
	i := int(a)
	if i < 0 || i >= MaxActions {
		return nil
	}
	if i >= len(m.bindings) {
		m.bindings = append(m.bindings, make([][]input.Combination, i+1-len(m.bindings))...)
	}
	return &m.bindings[i]
}

// Insert appends combo to a's bindings; duplicates are kept and harmless
// a must be a dense ordinal below MaxActions, other values and empty combos are ignored
func (m *InputMap[A]) Insert(a A, combo input.Combination) {
	if combo.Len() == 0 {
		return
	}
	if l := m.list(a); l != nil {
		*l = append(*l, combo)
	}
}

// InsertInput binds a single raw input
func (m *InputMap[A]) InsertInput(a A, r input.RawInput) {
	m.Insert(a, input.Single(r))
}

// InsertChord binds a chord of first and rest
func (m *InputMap[A]) InsertChord(a A, first input.RawInput, rest ...input.RawInput) {
	m.Insert(a, input.Chord(first, rest...))
}

// InsertMultiple binds each combo in order
func (m *InputMap[A]) InsertMultiple(a A, combos ...input.Combination) {
	for _, c := range combos {
		m.Insert(a, c)
	}
}

// Get returns a copy of a's bindings in insertion order
func (m *InputMap[A]) Get(a A) []input.Combination {
	i := int(a)
	if i < 0 || i >= len(m.bindings) {
		return nil
	}
	return slices.Clone(m.bindings[i])
}

// Remove deletes the first binding of a equal to combo
func (m *InputMap[A]) Remove(a A, combo input.Combination) bool {
	i := int(a)
	if i < 0 || i >= len(m.bindings) {
		return false
	}
	idx := slices.IndexFunc(m.bindings[i], combo.Equal)
	if idx < 0 {
		return false
	}
	m.bindings[i] = slices.Delete(m.bindings[i], idx, idx+1)
	return true
}

// Clear removes every binding of a
func (m *InputMap[A]) Clear(a A) {
	if i := int(a); i >= 0 && i < len(m.bindings) {
		m.bindings[i] = nil
	}
}

// Merge appends every binding of other; gamepad and clash settings of m are kept
func (m *InputMap[A]) Merge(other *InputMap[A]) {
	for i, combos := range other.bindings {
		m.InsertMultiple(A(i), combos...)
	}
}

// Len returns the total number of bindings
func (m *InputMap[A]) Len() int {
	n := 0
	for _, combos := range m.bindings {
		n += len(combos)
	}
	return n
}

// Actions returns actions with at least one binding, in declaration order
func (m *InputMap[A]) Actions() []A {
	var out []A
	for i, combos := range m.bindings {
		if len(combos) > 0 {
			out = append(out, A(i))
		}
	}
	return out
}

// SetGamepad restricts unpinned gamepad bindings to g
func (m *InputMap[A]) SetGamepad(g input.Gamepad) {
	m.gamepad = g
}

// ClearGamepad accepts unpinned gamepad bindings from any gamepad
func (m *InputMap[A]) ClearGamepad() {
	m.gamepad = input.AnyGamepad
}

// Gamepad returns the associated gamepad, false when none is set
func (m *InputMap[A]) Gamepad() (input.Gamepad, bool) {
	return m.gamepad, m.gamepad != input.AnyGamepad
}

// SetClashStrategy overrides the strategy passed by the caller for this map
func (m *InputMap[A]) SetClashStrategy(s clash.Strategy) {
	m.strategy = s
	m.hasStrategy = true
}

// ClearClashStrategy drops the override
func (m *InputMap[A]) ClearClashStrategy() {
	m.hasStrategy = false
}

// ClashStrategy returns the override, false when the caller's strategy applies
func (m *InputMap[A]) ClashStrategy() (clash.Strategy, bool) {
	return m.strategy, m.hasStrategy
}

// SetClashRule selects the clash predicate, RuleSubset by default
func (m *InputMap[A]) SetClashRule(r clash.Rule) {
	m.rule = r
}

func (m *InputMap[A]) ClashRule() clash.Rule {
	return m.rule
}

// Streams pairs snap with this map's gamepad association
func (m *InputMap[A]) Streams(snap *input.Snapshot) input.Streams {
	return input.Streams{Snapshot: snap, Associated: m.gamepad}
}

// Candidates returns every action with at least one satisfied binding, in declaration order
func (m *InputMap[A]) Candidates(streams input.Streams) []clash.Candidate[A] {
	var out []clash.Candidate[A]
	for i, combos := range m.bindings {
		var satisfied []input.Combination
		for _, c := range combos {
			if c.Satisfied(streams) {
				satisfied = append(satisfied, c)
			}
		}
		if len(satisfied) > 0 {
			out = append(out, clash.Candidate[A]{Action: A(i), Satisfied: satisfied})
		}
	}
	return out
}

func (m *InputMap[A]) effective(strategy clash.Strategy) clash.Strategy {
	if m.hasStrategy {
		return m.strategy
	}
	return strategy
}

// Resolve evaluates bindings and resolves clashes, reporting suppressed actions
// A map-level strategy override takes precedence over strategy
func (m *InputMap[A]) Resolve(streams input.Streams, strategy clash.Strategy) clash.Result[A] {
	return clash.ResolveDetailed(m.Candidates(streams), m.effective(strategy), m.rule)
}

// WhichPressed returns the actions pressed this tick under strategy, in declaration order
func (m *InputMap[A]) WhichPressed(streams input.Streams, strategy clash.Strategy) []A {
	return m.Resolve(streams, strategy).Pressed
}

// Pressed reports whether a is in WhichPressed
func (m *InputMap[A]) Pressed(a A, streams input.Streams, strategy clash.Strategy) bool {
	return slices.Contains(m.WhichPressed(streams, strategy), a)
}
