package clash

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownStrategy is returned when parsing an unrecognized strategy or rule name
var ErrUnknownStrategy = errors.New("clash: unknown strategy")

// Strategy decides which of two clashing actions survives
type Strategy uint8

const (
	// PressAll keeps every candidate regardless of clashes
	PressAll Strategy = iota
	// PrioritizeLongest keeps the action whose longest satisfied combination has more inputs
	PrioritizeLongest
	// UseActionOrder keeps the earlier-declared action
	UseActionOrder
)

var strategyNames = [...]string{
	PressAll:          "press_all",
	PrioritizeLongest: "prioritize_longest",
	UseActionOrder:    "use_action_order",
}

func (s Strategy) String() string {
	if int(s) < len(strategyNames) {
		return strategyNames[s]
	}
	return fmt.Sprintf("strategy(%d)", uint8(s))
}

// ParseStrategy resolves a config name, case-insensitive
func ParseStrategy(name string) (Strategy, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range strategyNames {
		if n == name {
			return Strategy(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}

// MarshalText implements encoding.TextMarshaler for config files
func (s Strategy) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler for config files
func (s *Strategy) UnmarshalText(text []byte) error {
	v, err := ParseStrategy(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// Rule is the predicate deciding whether two satisfied combinations clash
type Rule uint8

const (
	// RuleSubset clashes when one combination is a proper subset of the other and one is a chord
	RuleSubset Rule = iota
	// RuleOverlap clashes when distinct combinations share any input and one is a chord
	RuleOverlap
)

var ruleNames = [...]string{
	RuleSubset:  "subset",
	RuleOverlap: "overlap",
}

func (r Rule) String() string {
	if int(r) < len(ruleNames) {
		return ruleNames[r]
	}
	return fmt.Sprintf("rule(%d)", uint8(r))
}

// ParseRule resolves a config name, case-insensitive
func ParseRule(name string) (Rule, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range ruleNames {
		if n == name {
			return Rule(i), nil
		}
	}
	return 0, fmt.Errorf("%w: rule %q", ErrUnknownStrategy, name)
}

func (r Rule) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

func (r *Rule) UnmarshalText(text []byte) error {
	v, err := ParseRule(string(text))
	if err != nil {
		return err
	}
	*r = v
	return nil
}
