package logger

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}
	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestConsoleHandler(t *testing.T) {
	var buf bytes.Buffer
	h := NewHandler(Config{Level: "debug", Format: "console", Output: &buf})

	h = h.WithAttrs([]slog.Attr{slog.String("component", "engine")}).WithGroup("owner")
	r := slog.NewRecord(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC), slog.LevelDebug, "spawned", 0)
	r.AddAttrs(slog.Int("bindings", 6))
	if err := h.Handle(context.Background(), r); err != nil {
		t.Fatalf("Handle: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"12:00:00", "DEBUG", "spawned", "owner.component=engine", "owner.bindings=6"} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q missing %q", out, want)
		}
	}
	if !strings.HasSuffix(out, "\n") {
		t.Errorf("output %q not newline terminated", out)
	}
}

func TestHandlerLevelFilter(t *testing.T) {
	for _, format := range []string{"console", "text", "json"} {
		h := NewHandler(Config{Level: "warn", Format: format, Output: &bytes.Buffer{}})
		if h.Enabled(context.Background(), slog.LevelInfo) {
			t.Errorf("%s: info enabled at warn level", format)
		}
		if !h.Enabled(context.Background(), slog.LevelError) {
			t.Errorf("%s: error disabled at warn level", format)
		}
	}
}

func TestJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	slog.New(NewHandler(Config{Format: "json", Output: &buf})).Info("frame", "diffs", 2)
	if !strings.Contains(buf.String(), `"diffs":2`) {
		t.Errorf("json output = %q", buf.String())
	}
}
