package main

import (
	"log/slog"
	"slices"
	"testing"
	"time"

	"github.com/lixenwraith/inputmanager/clash"
	"github.com/lixenwraith/inputmanager/config"
	"github.com/lixenwraith/inputmanager/engine"
	"github.com/lixenwraith/inputmanager/input"
)

func TestBuiltinBindingsFollowEngineStrategy(t *testing.T) {
	cfg := config.Default()
	cfg.Engine.ClashRule = clash.RuleOverlap
	bindings, err := loadBindings(cfg)
	if err != nil {
		t.Fatalf("loadBindings: %v", err)
	}
	if _, ok := bindings.ClashStrategy(); ok {
		t.Fatal("built-in bindings override the engine strategy")
	}
	if bindings.ClashRule() != clash.RuleOverlap {
		t.Errorf("ClashRule = %v, want configured overlap", bindings.ClashRule())
	}

	held := input.KeyboardSnapshot(input.KeyLShift, input.KeySpace)
	tests := []struct {
		strategy clash.Strategy
		want     []demoAction
	}{
		{clash.PressAll, []demoAction{Jump, Sprint, HighJump}},
		{clash.PrioritizeLongest, []demoAction{HighJump}},
		{clash.UseActionOrder, []demoAction{Jump, Sprint}},
	}
	for _, tt := range tests {
		t.Run(tt.strategy.String(), func(t *testing.T) {
			m := engine.NewManager[demoAction, uint8](actions, engine.Config{
				Strategy: tt.strategy,
				Logger:   slog.New(slog.DiscardHandler),
			})
			if err := m.Spawn(ownerPlayer, bindings); err != nil {
				t.Fatal(err)
			}
			if _, err := m.Frame(time.Now(), held); err != nil {
				t.Fatalf("Frame: %v", err)
			}
			state, _ := m.State(ownerPlayer)
			if got := state.GetPressed(); !slices.Equal(got, tt.want) {
				t.Errorf("pressed %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStrategyCycleReachesPlayer(t *testing.T) {
	bindings, err := loadBindings(config.Default())
	if err != nil {
		t.Fatal(err)
	}
	m := engine.NewManager[demoAction, uint8](actions, engine.Config{
		Strategy: clash.PrioritizeLongest,
		Logger:   slog.New(slog.DiscardHandler),
	})
	m.Spawn(ownerPlayer, bindings)
	state, _ := m.State(ownerPlayer)
	held := input.KeyboardSnapshot(input.KeyLShift, input.KeySpace)

	now := time.Now()
	m.Frame(now, held)
	before := state.GetPressed()

	m.SetStrategy((m.Strategy() + 1) % 3)
	m.Frame(now.Add(engine.DefaultTickRate), held)
	if after := state.GetPressed(); slices.Equal(before, after) {
		t.Errorf("strategy %s left pressed set at %v", m.Strategy(), after)
	}
}
