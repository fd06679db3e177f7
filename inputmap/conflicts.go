package inputmap

import (
	"github.com/lixenwraith/inputmanager/action"
	"github.com/lixenwraith/inputmanager/clash"
	"github.com/lixenwraith/inputmanager/input"
)

// Conflict is a pair of bindings of distinct actions that clash whenever both are held
type Conflict[A action.Action] struct {
	First       A
	FirstCombo  input.Combination
	Second      A
	SecondCombo input.Combination
}

// Conflicts lists every binding pair that would reach clash resolution under the map's rule
// Static check over bindings only; useful to warn about keymaps before they run
func (m *InputMap[A]) Conflicts() []Conflict[A] {
	var out []Conflict[A]
	for i := range m.bindings {
		for j := i + 1; j < len(m.bindings); j++ {
			for _, ci := range m.bindings[i] {
				for _, cj := range m.bindings[j] {
					if clash.Combinations(ci, cj, m.rule) {
						out = append(out, Conflict[A]{
							First:       A(i),
							FirstCombo:  ci,
							Second:      A(j),
							SecondCombo: cj,
						})
					}
				}
			}
		}
	}
	return out
}
