package action

import (
	"fmt"
	"strings"
)

// Action is the constraint for user action enumerations
// Values are dense ordinals 0..n-1 in declaration order, lower ordinal = higher priority
type Action interface {
	~uint8 | ~uint16 | ~uint32 | ~int
}

// Registry describes a closed action enumeration: variant count, names, declaration order
// Built once at init from a literal name list, read-only afterwards
type Registry[A Action] struct {
	names []string
	index map[string]A
}

// NewRegistry creates a registry where names[i] is the name of A(i)
// Panics on empty or duplicate names, the list is a programmer-supplied literal
func NewRegistry[A Action](names ...string) *Registry[A] {
	r := &Registry[A]{
		names: make([]string, len(names)),
		index: make(map[string]A, len(names)),
	}
	for i, name := range names {
		key := normalizeName(name)
		if key == "" {
			panic(fmt.Sprintf("action: empty name at ordinal %d", i))
		}
		if _, dup := r.index[key]; dup {
			panic(fmt.Sprintf("action: duplicate name %q", name))
		}
		r.names[i] = name
		r.index[key] = A(i)
	}
	return r
}

// Len returns the number of variants
func (r *Registry[A]) Len() int {
	return len(r.names)
}

// Valid reports whether a is a declared variant
func (r *Registry[A]) Valid(a A) bool {
	return int(a) >= 0 && int(a) < len(r.names)
}

// Name returns the declared name of a
func (r *Registry[A]) Name(a A) string {
	if !r.Valid(a) {
		return fmt.Sprintf("action(%d)", int(a))
	}
	return r.names[a]
}

// Parse resolves a name to its variant, case-insensitive, '-' and ' ' fold to '_'
func (r *Registry[A]) Parse(name string) (A, bool) {
	a, ok := r.index[normalizeName(name)]
	return a, ok
}

// Names returns variant names in declaration order
func (r *Registry[A]) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

// Variants returns all variants in declaration order
func (r *Registry[A]) Variants() []A {
	out := make([]A, len(r.names))
	for i := range out {
		out[i] = A(i)
	}
	return out
}

// NewState creates a State with one slot per variant, all released
func (r *Registry[A]) NewState() *State[A] {
	return NewState[A](len(r.names))
}

func normalizeName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	return strings.NewReplacer("-", "_", " ", "_").Replace(name)
}
