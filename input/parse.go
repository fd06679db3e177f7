package input

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/sahilm/fuzzy"
)

// ErrUnknownInput is wrapped by parse errors for unrecognized input names
var ErrUnknownInput = errors.New("input: unknown input name")

// ParseCombination parses "ctrl+alt+1", "mouse:left", "pad:south+pad:east"
// Tokens are case-insensitive and separated by '+'
func ParseCombination(spec string) (Combination, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return Combination{}, ErrEmptyCombination
	}

	parts := strings.Split(spec, "+")
	raws := make([]RawInput, 0, len(parts))
	for _, part := range parts {
		r, err := ParseRawInput(part)
		if err != nil {
			return Combination{}, fmt.Errorf("combination %q: %w", spec, err)
		}
		raws = append(raws, r)
	}
	return NewCombination(raws...)
}

// ParseRawInput parses one token
//
// Supported forms:
//   - key names and aliases: "a", "1", "f5", "space", "lcontrol", "ctrl", "esc"
//   - mouse buttons: "mouse:left", "mouse:right"
//   - gamepad buttons: "pad:south" (owner's gamepad), "pad2:start" (pinned to gamepad 2)
func ParseRawInput(token string) (RawInput, error) {
	token = strings.ToLower(strings.TrimSpace(token))
	if token == "" {
		return RawInput{}, fmt.Errorf("%w: empty token", ErrUnknownInput)
	}

	prefix, name, hasPrefix := strings.Cut(token, ":")
	if !hasPrefix {
		if k, ok := KeyByName(token); ok {
			return Key(k), nil
		}
		return RawInput{}, unknownInput(token, keyNames())
	}

	switch {
	case prefix == "mouse":
		if b, ok := MouseByName(name); ok {
			return Mouse(b), nil
		}
		return RawInput{}, unknownInput(token, prefixed("mouse:", mouseNameList()))

	case strings.HasPrefix(prefix, "pad"):
		b, ok := PadButtonByName(name)
		if !ok {
			return RawInput{}, unknownInput(token, prefixed(prefix+":", padNameList()))
		}
		idx := strings.TrimPrefix(prefix, "pad")
		if idx == "" {
			return Pad(b), nil
		}
		n, err := strconv.Atoi(idx)
		if err != nil || n < 0 {
			return RawInput{}, fmt.Errorf("%w: bad gamepad index in %q", ErrUnknownInput, token)
		}
		return PadOn(Gamepad(n), b), nil
	}

	return RawInput{}, fmt.Errorf("%w: unknown device prefix %q", ErrUnknownInput, prefix)
}

func unknownInput(token string, candidates []string) error {
	if hint, ok := Suggest(token, candidates); ok {
		return fmt.Errorf("%w: %q (did you mean %q?)", ErrUnknownInput, token, hint)
	}
	return fmt.Errorf("%w: %q", ErrUnknownInput, token)
}

// Suggest returns the closest fuzzy match for term among candidates
func Suggest(term string, candidates []string) (string, bool) {
	if term == "" || len(candidates) == 0 {
		return "", false
	}
	sorted := slices.Clone(candidates)
	slices.Sort(sorted)

	matches := fuzzy.Find(term, sorted)
	if len(matches) == 0 {
		return "", false
	}
	return matches[0].Str, true
}

func prefixed(prefix string, names []string) []string {
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = prefix + n
	}
	return out
}

func mouseNameList() []string {
	out := make([]string, 0, len(mouseNames))
	for _, n := range mouseNames {
		out = append(out, n)
	}
	return out
}

func padNameList() []string {
	out := make([]string, 0, len(padNames)+len(padAliases))
	for _, n := range padNames {
		out = append(out, n)
	}
	for n := range padAliases {
		out = append(out, n)
	}
	return out
}
