// Command input-demo shows live action state for keyboard and mouse input in a terminal
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/lixenwraith/inputmanager/config"
	"github.com/lixenwraith/inputmanager/inputmap"
	"github.com/lixenwraith/inputmanager/logger"
)

var (
	configPath   = flag.String("config", "input-demo.toml", "settings file, defaults when missing")
	bindingsPath = flag.String("bindings", "", "binding file (.toml, .yaml), overrides [input] bindings")
	dumpBindings = flag.Bool("dump-bindings", false, "print the active bindings as TOML and exit")
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	if *bindingsPath != "" {
		cfg.Input.Bindings = *bindingsPath
	}

	logOut, closeLog, err := openLog(cfg.Logging.File)
	if err != nil {
		fmt.Fprintf(os.Stderr, "log file: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()
	lc := cfg.Logger()
	lc.Output = logOut
	logger.Init(lc)

	bindings, err := loadBindings(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	if *dumpBindings {
		data, err := inputmap.Encode(bindings, actions, inputmap.FormatTOML)
		if err != nil {
			fmt.Fprintf(os.Stderr, "encode bindings: %v\n", err)
			os.Exit(1)
		}
		os.Stdout.Write(data)
		return
	}

	demo, err := NewDemo(cfg, bindings)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer demo.cleanup()

	if err := demo.run(); err != nil {
		logger.L().Error("demo stopped", "error", err)
	}
}

// openLog keeps log output off the terminal the demo draws on
func openLog(path string) (io.Writer, func(), error) {
	if path == "" {
		return io.Discard, func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { f.Close() }, nil
}

// loadBindings reads the configured binding file or falls back to the built-in set
// The configured clash rule applies to the built-in set only, a file carries its own
func loadBindings(cfg config.Config) (*inputmap.InputMap[demoAction], error) {
	if cfg.Input.Bindings != "" {
		return inputmap.LoadFile(cfg.Input.Bindings, actions)
	}
	m, err := inputmap.Load([]byte(defaultBindings), inputmap.FormatTOML, actions)
	if err != nil {
		return nil, fmt.Errorf("built-in bindings: %w", err)
	}
	m.SetClashRule(cfg.Engine.ClashRule)
	return m, nil
}
