// Package audio plays short tones as feedback for action transitions
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/inputmanager/action"
)

type Config struct {
	Enabled    bool    `toml:"enabled"`
	Volume     float64 `toml:"volume"`      // 0..1
	SampleRate int     `toml:"sample_rate"` // Hz
}

func DefaultConfig() Config {
	return Config{Enabled: true, Volume: 0.4, SampleRate: 44100}
}

// Player mixes feedback sounds into one speaker stream
// Safe for concurrent use; without Start sounds queue on the mixer and are never heard
type Player struct {
	mu      sync.Mutex
	cfg     Config
	mixer   *beep.Mixer
	started bool
}

func NewPlayer(cfg Config) *Player {
	if cfg.SampleRate <= 0 {
		cfg.SampleRate = DefaultConfig().SampleRate
	}
	return &Player{cfg: cfg, mixer: &beep.Mixer{}}
}

// Start opens the speaker; a disabled player succeeds without touching audio devices
func (p *Player) Start() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.started || !p.cfg.Enabled {
		return nil
	}
	rate := beep.SampleRate(p.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(50*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.started = true
	return nil
}

// Stop silences pending sounds and closes the speaker
func (p *Player) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.started {
		p.mixer.Clear()
		return
	}
	speaker.Clear()
	speaker.Close()
	p.mixer.Clear()
	p.started = false
}

func (p *Player) SetEnabled(on bool) {
	p.mu.Lock()
	p.cfg.Enabled = on
	p.mu.Unlock()
}

// Play queues sound t
func (p *Player) Play(t SoundType) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.cfg.Enabled {
		return
	}
	s := Sound(t, p.cfg)
	if s == nil {
		return
	}
	if p.started {
		speaker.Lock()
		p.mixer.Add(s)
		speaker.Unlock()
		return
	}
	p.mixer.Add(s)
}

// Pending returns the number of sounds still in the mixer
func (p *Player) Pending() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.started {
		speaker.Lock()
		defer speaker.Unlock()
	}
	return p.mixer.Len()
}

// PlayDiffs plays one press or release cue per frame, press wins
func PlayDiffs[A action.Action, ID comparable](p *Player, diffs []action.Diff[A, ID]) {
	var pressed, released bool
	for _, d := range diffs {
		switch d.Kind {
		case action.DiffPressed:
			pressed = true
		case action.DiffReleased:
			released = true
		}
	}
	switch {
	case pressed:
		p.Play(SoundPress)
	case released:
		p.Play(SoundRelease)
	}
}
