// Package config loads the demo's TOML settings
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/lixenwraith/inputmanager/audio"
	"github.com/lixenwraith/inputmanager/clash"
	"github.com/lixenwraith/inputmanager/engine"
	"github.com/lixenwraith/inputmanager/logger"
	"github.com/lixenwraith/inputmanager/source"
)

// MinTickRate bounds how fast the frame loop may run
const MinTickRate = time.Millisecond

var ErrInvalid = errors.New("config: invalid")

// Duration is a time.Duration spelled "16ms" in TOML
type Duration time.Duration

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(strings.TrimSpace(string(text)))
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

type Config struct {
	Engine  EngineConfig  `toml:"engine"`
	Input   InputConfig   `toml:"input"`
	Logging LoggingConfig `toml:"logging"`
	Audio   audio.Config  `toml:"audio"`
}

type EngineConfig struct {
	TickRate      Duration       `toml:"tick_rate"`
	ClashStrategy clash.Strategy `toml:"clash_strategy"`
	ClashRule     clash.Rule     `toml:"clash_rule"`
}

type InputConfig struct {
	// Bindings is a TOML or YAML binding file; empty selects built-in bindings
	Bindings string   `toml:"bindings"`
	Hold     Duration `toml:"hold"`
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
	// File receives log output; empty discards it so the terminal UI stays clean
	File string `toml:"file"`
}

func Default() Config {
	return Config{
		Engine: EngineConfig{
			TickRate:      Duration(engine.DefaultTickRate),
			ClashStrategy: clash.PrioritizeLongest,
			ClashRule:     clash.RuleSubset,
		},
		Input: InputConfig{
			Hold: Duration(source.DefaultHold),
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Audio: audio.DefaultConfig(),
	}
}

// Load reads path over the defaults
// A missing or blank file yields the defaults; unknown keys are errors
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	if err := Decode(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Decode parses TOML data into cfg, keeping fields the data does not set, then validates
func Decode(data []byte, cfg *Config) error {
	if len(bytes.TrimSpace(data)) > 0 {
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(cfg); err != nil {
			return err
		}
	}
	return cfg.Validate()
}

func (c Config) Validate() error {
	if c.Engine.TickRate.Std() < MinTickRate {
		return fmt.Errorf("%w: engine.tick_rate %s below %s", ErrInvalid, c.Engine.TickRate.Std(), MinTickRate)
	}
	if c.Input.Hold.Std() < 0 {
		return fmt.Errorf("%w: input.hold %s is negative", ErrInvalid, c.Input.Hold.Std())
	}
	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("%w: logging.level %q", ErrInvalid, c.Logging.Level)
	}
	switch strings.ToLower(c.Logging.Format) {
	case "console", "text", "json":
	default:
		return fmt.Errorf("%w: logging.format %q", ErrInvalid, c.Logging.Format)
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("%w: audio.volume %v outside 0..1", ErrInvalid, c.Audio.Volume)
	}
	if c.Audio.SampleRate <= 0 {
		return fmt.Errorf("%w: audio.sample_rate %d", ErrInvalid, c.Audio.SampleRate)
	}
	return nil
}

// Logger converts the logging section; output is left to the caller
func (c Config) Logger() logger.Config {
	return logger.Config{Level: c.Logging.Level, Format: c.Logging.Format}
}

// Encode writes cfg as TOML
func Encode(cfg Config) ([]byte, error) {
	return toml.Marshal(cfg)
}
