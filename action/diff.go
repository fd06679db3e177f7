package action

// DiffKind discriminates press and release events
type DiffKind uint8

const (
	DiffPressed DiffKind = iota + 1
	DiffReleased
)

func (k DiffKind) String() string {
	switch k {
	case DiffPressed:
		return "pressed"
	case DiffReleased:
		return "released"
	}
	return "unknown"
}

// Diff is one action transition of the owner identified by ID
// ID must be stable across processes when diffs cross a transport
type Diff[A Action, ID comparable] struct {
	Kind   DiffKind
	Action A
	ID     ID
}

// AppendDiffs appends one Pressed diff per just-pressed action, then one Released per just-released
// Valid between Update and the next Tick
func AppendDiffs[A Action, ID comparable](dst []Diff[A, ID], id ID, s *State[A]) []Diff[A, ID] {
	for _, a := range s.GetJustPressed() {
		dst = append(dst, Diff[A, ID]{Kind: DiffPressed, Action: a, ID: id})
	}
	for _, a := range s.GetJustReleased() {
		dst = append(dst, Diff[A, ID]{Kind: DiffReleased, Action: a, ID: id})
	}
	return dst
}

// GenerateDiffs returns the transitions of s for this frame
func GenerateDiffs[A Action, ID comparable](id ID, s *State[A]) []Diff[A, ID] {
	return AppendDiffs(nil, id, s)
}

// ApplyDiff replays d onto s without checking d.ID, callers match identifiers
func ApplyDiff[A Action, ID comparable](s *State[A], d Diff[A, ID]) {
	switch d.Kind {
	case DiffPressed:
		s.Press(d.Action)
	case DiffReleased:
		s.Release(d.Action)
	}
}

// Driver binds a clickable UI element to an action on a target owner
// When the element is clicked the action is pressed on the target's State
type Driver[A Action, ID comparable] struct {
	Action A
	Target ID
}
