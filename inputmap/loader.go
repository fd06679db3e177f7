package inputmap

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/inputmanager/action"
	"github.com/lixenwraith/inputmanager/clash"
	"github.com/lixenwraith/inputmanager/input"
)

// ErrUnknownAction is wrapped when a binding file names an action the registry does not declare
var ErrUnknownAction = errors.New("inputmap: unknown action")

// Format selects the binding file syntax
type Format uint8

const (
	FormatTOML Format = iota
	FormatYAML
)

// FormatFromPath picks the format from the file extension, TOML by default
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	}
	return FormatTOML
}

// File is the on-disk shape of a binding file
//
//	gamepad = 0
//	clash_strategy = "prioritize_longest"
//	[bindings]
//	jump = ["space", "pad:south"]
type File struct {
	Gamepad       *int                `toml:"gamepad,omitempty" yaml:"gamepad,omitempty"`
	ClashStrategy string              `toml:"clash_strategy,omitempty" yaml:"clash_strategy,omitempty"`
	ClashRule     string              `toml:"clash_rule,omitempty" yaml:"clash_rule,omitempty"`
	Bindings      map[string][]string `toml:"bindings" yaml:"bindings"`
}

// LoadFile reads and parses a binding file, format chosen by extension
func LoadFile[A action.Action](path string, reg *action.Registry[A]) (*InputMap[A], error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("bindings %s: %w", path, err)
	}
	m, err := Load(data, FormatFromPath(path), reg)
	if err != nil {
		return nil, fmt.Errorf("bindings %s: %w", path, err)
	}
	return m, nil
}

// Load parses binding data into a new InputMap
// Unknown keys, action names, and input names are errors
func Load[A action.Action](data []byte, format Format, reg *action.Registry[A]) (*InputMap[A], error) {
	var f File
	if err := decode(data, format, &f); err != nil {
		return nil, err
	}
	return Build(&f, reg)
}

func decode(data []byte, format Format, f *File) error {
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(f); err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("yaml parse: %w", err)
		}
	default:
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(f); err != nil {
			return fmt.Errorf("toml parse: %w", err)
		}
	}
	return nil
}

// Build converts a decoded file into an InputMap against reg
func Build[A action.Action](f *File, reg *action.Registry[A]) (*InputMap[A], error) {
	m := New[A]()

	if f.Gamepad != nil {
		if *f.Gamepad < 0 {
			return nil, fmt.Errorf("gamepad: negative index %d", *f.Gamepad)
		}
		m.SetGamepad(input.Gamepad(*f.Gamepad))
	}
	if f.ClashStrategy != "" {
		s, err := clash.ParseStrategy(f.ClashStrategy)
		if err != nil {
			return nil, err
		}
		m.SetClashStrategy(s)
	}
	if f.ClashRule != "" {
		r, err := clash.ParseRule(f.ClashRule)
		if err != nil {
			return nil, err
		}
		m.SetClashRule(r)
	}

	for name, specs := range f.Bindings {
		a, ok := reg.Parse(name)
		if !ok {
			return nil, unknownAction(name, reg)
		}
		for _, spec := range specs {
			combo, err := input.ParseCombination(spec)
			if err != nil {
				return nil, fmt.Errorf("[bindings] %s: %w", name, err)
			}
			m.Insert(a, combo)
		}
	}
	return m, nil
}

func unknownAction[A action.Action](name string, reg *action.Registry[A]) error {
	names := reg.Names()
	for i, n := range names {
		names[i] = strings.ToLower(n)
	}
	if hint, ok := input.Suggest(strings.ToLower(name), names); ok {
		return fmt.Errorf("%w: %q (did you mean %q?)", ErrUnknownAction, name, hint)
	}
	return fmt.Errorf("%w: %q", ErrUnknownAction, name)
}

// ToFile converts m into its on-disk shape using reg for action names
func ToFile[A action.Action](m *InputMap[A], reg *action.Registry[A]) *File {
	f := &File{Bindings: make(map[string][]string)}
	if g, ok := m.Gamepad(); ok {
		n := int(g)
		f.Gamepad = &n
	}
	if s, ok := m.ClashStrategy(); ok {
		f.ClashStrategy = s.String()
	}
	if m.rule != clash.RuleSubset {
		f.ClashRule = m.rule.String()
	}
	for _, a := range m.Actions() {
		for _, combo := range m.Get(a) {
			f.Bindings[reg.Name(a)] = append(f.Bindings[reg.Name(a)], combo.String())
		}
	}
	return f
}

// Encode serializes m in the given format
func Encode[A action.Action](m *InputMap[A], reg *action.Registry[A], format Format) ([]byte, error) {
	f := ToFile(m, reg)
	switch format {
	case FormatYAML:
		return yaml.Marshal(f)
	default:
		return toml.Marshal(f)
	}
}
