package clash

import (
	"cmp"
	"slices"

	"github.com/lixenwraith/inputmanager/action"
	"github.com/lixenwraith/inputmanager/input"
)

// Candidate is an action with at least one satisfied combination this tick
type Candidate[A action.Action] struct {
	Action    A
	Satisfied []input.Combination
}

// Longest returns the input count of the longest satisfied combination
func (c Candidate[A]) Longest() int {
	longest := 0
	for _, combo := range c.Satisfied {
		longest = max(longest, combo.Len())
	}
	return longest
}

// Pair is two clashing candidates, First declared before Second
type Pair[A action.Action] struct {
	First, Second Candidate[A]
}

// Result is the outcome of one resolution pass
type Result[A action.Action] struct {
	// Pressed survivors in declaration order
	Pressed []A
	// Suppressed candidates dropped by at least one clash, in declaration order
	Suppressed []A
	// Clashes detected; empty for PressAll, which skips detection
	Clashes []Pair[A]
}

// Combinations reports whether two satisfied combinations of distinct actions clash under rule
// Equal combinations never clash, and two single inputs never clash
func Combinations(a, b input.Combination, rule Rule) bool {
	if !a.IsChord() && !b.IsChord() {
		return false
	}
	if a.Equal(b) {
		return false
	}
	switch rule {
	case RuleOverlap:
		return a.Overlaps(b)
	default:
		return a.IsProperSubset(b) || b.IsProperSubset(a)
	}
}

// Detect returns every unordered pair of distinct candidates with a clashing combination pair
// Candidates are compared in declaration order
func Detect[A action.Action](candidates []Candidate[A], rule Rule) []Pair[A] {
	sorted := sortCandidates(candidates)

	var pairs []Pair[A]
	for i := 0; i < len(sorted); i++ {
		for j := i + 1; j < len(sorted); j++ {
			if sorted[i].Action == sorted[j].Action {
				continue
			}
			if candidatesClash(sorted[i], sorted[j], rule) {
				pairs = append(pairs, Pair[A]{First: sorted[i], Second: sorted[j]})
			}
		}
	}
	return pairs
}

func candidatesClash[A action.Action](a, b Candidate[A], rule Rule) bool {
	for _, ca := range a.Satisfied {
		for _, cb := range b.Satisfied {
			if Combinations(ca, cb, rule) {
				return true
			}
		}
	}
	return false
}

// loser returns the action the strategy drops from a clashing pair
func loser[A action.Action](p Pair[A], strategy Strategy) (A, bool) {
	switch strategy {
	case PrioritizeLongest:
		la, lb := p.First.Longest(), p.Second.Longest()
		switch {
		case la < lb:
			return p.First.Action, true
		case lb < la:
			return p.Second.Action, true
		}
	case UseActionOrder:
		return p.Second.Action, true
	}
	var zero A
	return zero, false
}

// Resolve returns the pressed set for this tick in declaration order
func Resolve[A action.Action](candidates []Candidate[A], strategy Strategy, rule Rule) []A {
	return ResolveDetailed(candidates, strategy, rule).Pressed
}

// ResolveDetailed resolves clashes and reports what was dropped and why
// Every pair decision is made against the full candidate set; a dropped action is never revived
func ResolveDetailed[A action.Action](candidates []Candidate[A], strategy Strategy, rule Rule) Result[A] {
	sorted := sortCandidates(candidates)

	var res Result[A]
	dropped := make(map[A]bool)
	if strategy != PressAll {
		res.Clashes = Detect(sorted, rule)
		for _, p := range res.Clashes {
			if a, ok := loser(p, strategy); ok {
				dropped[a] = true
			}
		}
	}

	for i, c := range sorted {
		if i > 0 && sorted[i-1].Action == c.Action {
			continue
		}
		if dropped[c.Action] {
			res.Suppressed = append(res.Suppressed, c.Action)
		} else {
			res.Pressed = append(res.Pressed, c.Action)
		}
	}
	return res
}

func sortCandidates[A action.Action](candidates []Candidate[A]) []Candidate[A] {
	sorted := slices.Clone(candidates)
	slices.SortStableFunc(sorted, func(a, b Candidate[A]) int {
		return cmp.Compare(a.Action, b.Action)
	})
	return sorted
}
