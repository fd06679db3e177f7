package input

import (
	"errors"
	"slices"
	"strings"
)

// ErrEmptyCombination is returned when a combination would contain no inputs
var ErrEmptyCombination = errors.New("input: empty combination")

// Combination is an unordered, deduplicated set of raw inputs bound as one unit
// Length 1 is a simple binding, longer is a chord
// Inputs are kept in canonical order so equal sets have equal representation
// The zero value is empty, never satisfied, and only exists as a placeholder
type Combination struct {
	inputs []RawInput
}

// Single returns a one-input combination
func Single(r RawInput) Combination {
	return Combination{inputs: []RawInput{r}}
}

// Chord returns the combination of first and rest; the signature rules out empty chords
func Chord(first RawInput, rest ...RawInput) Combination {
	c, _ := NewCombination(append([]RawInput{first}, rest...)...)
	return c
}

// Keys returns the chord of keyboard keys, or the zero Combination for no keys
func Keys(keys ...KeyCode) Combination {
	raws := make([]RawInput, len(keys))
	for i, k := range keys {
		raws[i] = Key(k)
	}
	c, _ := NewCombination(raws...)
	return c
}

// NewCombination normalizes raws into a combination
func NewCombination(raws ...RawInput) (Combination, error) {
	if len(raws) == 0 {
		return Combination{}, ErrEmptyCombination
	}
	inputs := slices.Clone(raws)
	slices.SortFunc(inputs, compareRaw)
	inputs = slices.Compact(inputs)
	return Combination{inputs: inputs}, nil
}

// Len returns the number of distinct inputs
func (c Combination) Len() int {
	return len(c.inputs)
}

// IsChord reports whether more than one input is required
func (c Combination) IsChord() bool {
	return len(c.inputs) > 1
}

// Inputs returns a copy of the inputs in canonical order
func (c Combination) Inputs() []RawInput {
	return slices.Clone(c.inputs)
}

// Contains reports whether r is part of the combination
func (c Combination) Contains(r RawInput) bool {
	_, found := slices.BinarySearchFunc(c.inputs, r, compareRaw)
	return found
}

// Equal reports set equality
func (c Combination) Equal(other Combination) bool {
	return slices.Equal(c.inputs, other.inputs)
}

// IsSubset reports whether every input of c is in other
func (c Combination) IsSubset(other Combination) bool {
	if len(c.inputs) > len(other.inputs) {
		return false
	}
	for _, r := range c.inputs {
		if !other.Contains(r) {
			return false
		}
	}
	return true
}

// IsProperSubset reports c ⊂ other with c != other
func (c Combination) IsProperSubset(other Combination) bool {
	return len(c.inputs) < len(other.inputs) && c.IsSubset(other)
}

// Overlaps reports whether the two sets share at least one physical input
func (c Combination) Overlaps(other Combination) bool {
	for _, r := range c.inputs {
		if other.Contains(r) {
			return true
		}
	}
	return false
}

// Satisfied reports whether every input is held in streams
func (c Combination) Satisfied(streams Streams) bool {
	if len(c.inputs) == 0 {
		return false
	}
	for _, r := range c.inputs {
		if !streams.Pressed(r) {
			return false
		}
	}
	return true
}

// String joins input names with '+', parseable by ParseCombination
func (c Combination) String() string {
	parts := make([]string, len(c.inputs))
	for i, r := range c.inputs {
		parts[i] = r.String()
	}
	return strings.Join(parts, "+")
}
