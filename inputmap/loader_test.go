package inputmap

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/lixenwraith/inputmanager/action"
	"github.com/lixenwraith/inputmanager/clash"
	"github.com/lixenwraith/inputmanager/input"
)

type move uint8

const (
	Jump move = iota
	Run
	Crouch
	Slide
)

var moves = action.NewRegistry[move]("jump", "run", "crouch", "slide")

const tomlBindings = `
gamepad = 1
clash_strategy = "use_action_order"

[bindings]
jump = ["space", "pad:south"]
run = ["lshift"]
slide = ["lshift+c"]
`

const yamlBindings = `
clash_rule: overlap
bindings:
  jump: [space]
  Crouch: ["c", "mouse:right"]
`

func TestLoadTOML(t *testing.T) {
	m, err := Load([]byte(tomlBindings), FormatTOML, moves)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if g, ok := m.Gamepad(); !ok || g != 1 {
		t.Errorf("Gamepad = %v, %v", g, ok)
	}
	if s, ok := m.ClashStrategy(); !ok || s != clash.UseActionOrder {
		t.Errorf("ClashStrategy = %v, %v", s, ok)
	}
	if m.ClashRule() != clash.RuleSubset {
		t.Errorf("ClashRule = %v", m.ClashRule())
	}

	jump := m.Get(Jump)
	if len(jump) != 2 || !jump[0].Equal(input.Keys(input.KeySpace)) || !jump[1].Equal(input.Single(input.Pad(input.PadSouth))) {
		t.Errorf("jump bindings = %v", jump)
	}
	if got := m.Actions(); !slices.Equal(got, []move{Jump, Run, Slide}) {
		t.Errorf("Actions = %v", got)
	}

	// UseActionOrder from the file beats the caller's strategy
	snap := input.KeyboardSnapshot(input.KeyLShift, input.KeyC)
	if got := m.WhichPressed(m.Streams(snap), clash.PrioritizeLongest); !slices.Equal(got, []move{Run}) {
		t.Errorf("WhichPressed = %v, want [Run]", got)
	}
}

func TestLoadYAML(t *testing.T) {
	m, err := Load([]byte(yamlBindings), FormatYAML, moves)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if m.ClashRule() != clash.RuleOverlap {
		t.Errorf("ClashRule = %v", m.ClashRule())
	}
	if _, ok := m.ClashStrategy(); ok {
		t.Error("no strategy in file, override should be unset")
	}
	if got := m.Get(Crouch); len(got) != 2 {
		t.Errorf("crouch bindings = %v", got)
	}
}

func TestLoadEmpty(t *testing.T) {
	for _, f := range []Format{FormatTOML, FormatYAML} {
		m, err := Load(nil, f, moves)
		if err != nil {
			t.Errorf("format %d: %v", f, err)
			continue
		}
		if m.Len() != 0 {
			t.Errorf("format %d: %d bindings from empty input", f, m.Len())
		}
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name   string
		data   string
		format Format
		target error
		hint   string
	}{
		{"unknown action", "[bindings]\njmp = [\"space\"]\n", FormatTOML, ErrUnknownAction, `did you mean "jump"`},
		{"unknown input", "[bindings]\njump = [\"spcae\"]\n", FormatTOML, input.ErrUnknownInput, ""},
		{"unknown strategy", "clash_strategy = \"loudest\"\n", FormatTOML, clash.ErrUnknownStrategy, ""},
		{"unknown field toml", "gamepads = 1\n", FormatTOML, nil, ""},
		{"unknown field yaml", "gamepads: 1\n", FormatYAML, nil, ""},
		{"negative gamepad", "gamepad = -2\n", FormatTOML, nil, "negative"},
		{"empty combination", "[bindings]\nrun = [\"\"]\n", FormatTOML, input.ErrEmptyCombination, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load([]byte(tt.data), tt.format, moves)
			if err == nil {
				t.Fatal("expected error")
			}
			if tt.target != nil && !errors.Is(err, tt.target) {
				t.Errorf("error %v does not wrap %v", err, tt.target)
			}
			if tt.hint != "" && !strings.Contains(err.Error(), tt.hint) {
				t.Errorf("error %q missing %q", err, tt.hint)
			}
		})
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	m := New[move]()
	m.SetGamepad(2)
	m.SetClashStrategy(clash.PrioritizeLongest)
	m.SetClashRule(clash.RuleOverlap)
	m.Insert(Jump, input.Keys(input.KeySpace))
	m.InsertInput(Jump, input.PadOn(0, input.PadSouth))
	m.InsertChord(Slide, input.Key(input.KeyLControl), input.Mouse(input.MouseLeft))

	for _, f := range []Format{FormatTOML, FormatYAML} {
		data, err := Encode(m, moves, f)
		if err != nil {
			t.Fatalf("format %d: Encode: %v", f, err)
		}
		back, err := Load(data, f, moves)
		if err != nil {
			t.Fatalf("format %d: Load(%s): %v", f, data, err)
		}
		if g, _ := back.Gamepad(); g != 2 {
			t.Errorf("format %d: gamepad %v", f, g)
		}
		if back.ClashRule() != clash.RuleOverlap {
			t.Errorf("format %d: rule %v", f, back.ClashRule())
		}
		for _, a := range []move{Jump, Run, Crouch, Slide} {
			want, got := m.Get(a), back.Get(a)
			if !slices.EqualFunc(want, got, input.Combination.Equal) {
				t.Errorf("format %d: %s = %v, want %v", f, moves.Name(a), got, want)
			}
		}
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bindings.yml")
	if err := os.WriteFile(path, []byte(yamlBindings), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFile(path, moves); err != nil {
		t.Errorf("LoadFile: %v", err)
	}

	_, err := LoadFile(filepath.Join(dir, "missing.toml"), moves)
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file error = %v", err)
	}
}

func TestFormatFromPath(t *testing.T) {
	for path, want := range map[string]Format{
		"keys.toml": FormatTOML,
		"keys.YAML": FormatYAML,
		"keys.yml":  FormatYAML,
		"keys":      FormatTOML,
	} {
		if got := FormatFromPath(path); got != want {
			t.Errorf("FormatFromPath(%q) = %d", path, got)
		}
	}
}
