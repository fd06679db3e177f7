// Package logger configures the process-wide slog logger
package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"
)

type Config struct {
	Level  string // debug, info, warn, error
	Format string // console, text, json
	Output io.Writer
}

var (
	once sync.Once
	lg   *slog.Logger
)

// Init installs the logger built from cfg as slog default, first call wins
func Init(cfg Config) {
	once.Do(func() {
		lg = slog.New(NewHandler(cfg))
		slog.SetDefault(lg)
	})
}

// L returns the process logger, initializing a console logger on stderr if Init was never called
func L() *slog.Logger {
	once.Do(func() {
		lg = slog.New(NewHandler(Config{Level: "info", Format: "console"}))
	})
	return lg
}

// NewHandler builds a handler without touching global state
func NewHandler(cfg Config) slog.Handler {
	if cfg.Output == nil {
		cfg.Output = os.Stderr
	}
	level := ParseLevel(cfg.Level)
	switch strings.ToLower(cfg.Format) {
	case "json":
		return slog.NewJSONHandler(cfg.Output, &slog.HandlerOptions{Level: level})
	case "text":
		return slog.NewTextHandler(cfg.Output, &slog.HandlerOptions{Level: level})
	default:
		return &consoleHandler{w: cfg.Output, mu: new(sync.Mutex), level: level}
	}
}

// ParseLevel maps a config string to a level, info when unrecognized
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// consoleHandler writes one readable line per record:
//
//	12:00:00 DEBUG owner spawned  id=player bindings=6
type consoleHandler struct {
	w     io.Writer
	mu    *sync.Mutex
	level slog.Level
	attrs []slog.Attr
	group string
}

func (h *consoleHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

func (h *consoleHandler) Handle(_ context.Context, r slog.Record) error {
	var b strings.Builder
	b.WriteString(r.Time.Format(time.TimeOnly))
	b.WriteByte(' ')
	b.WriteString(levelTag(r.Level))
	b.WriteByte(' ')
	b.WriteString(r.Message)

	for _, a := range h.attrs {
		b.WriteString(formatAttr(h.group, a))
	}
	r.Attrs(func(a slog.Attr) bool {
		b.WriteString(formatAttr(h.group, a))
		return true
	})
	b.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.w, b.String())
	return err
}

func (h *consoleHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	c := *h
	c.attrs = append(append([]slog.Attr{}, h.attrs...), attrs...)
	return &c
}

func (h *consoleHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	c := *h
	c.attrs = append([]slog.Attr{}, h.attrs...)
	c.group = name
	if h.group != "" {
		c.group = h.group + "." + name
	}
	return &c
}

func levelTag(l slog.Level) string {
	switch {
	case l >= slog.LevelError:
		return "ERROR"
	case l >= slog.LevelWarn:
		return "WARN "
	case l >= slog.LevelInfo:
		return "INFO "
	default:
		return "DEBUG"
	}
}

func formatAttr(group string, a slog.Attr) string {
	key := a.Key
	if group != "" {
		key = group + "." + key
	}
	return fmt.Sprintf("  %s=%v", key, a.Value)
}
