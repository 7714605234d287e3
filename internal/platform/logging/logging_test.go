package logging_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jsamuelsen11/crowdfund-search/internal/platform/config"
	"github.com/jsamuelsen11/crowdfund-search/internal/platform/logging"
)

func newLogger(level, format string) (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return logging.New(config.LogConfig{Level: level, Format: format}, &buf), &buf
}

// --- New ---

func TestNew_Format(t *testing.T) {
	t.Parallel()

	tests := []struct {
		format string
		want   string
	}{
		{"json", `"msg":"searching campaigns"`},
		{"text", `msg="searching campaigns"`},
		{"TEXT", `msg="searching campaigns"`},
		{"", `"msg":"searching campaigns"`},
		{"xml", `"msg":"searching campaigns"`},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			t.Parallel()
			logger, buf := newLogger("info", tt.format)
			logger.Info("searching campaigns", slog.Int("page", 2))

			if !strings.Contains(buf.String(), tt.want) {
				t.Errorf("output = %q, want it to contain %q", buf.String(), tt.want)
			}
		})
	}
}

func TestNew_Level(t *testing.T) {
	t.Parallel()

	tests := []struct {
		level     string
		enabled   slog.Level
		disabled  slog.Level
		hasSource bool
	}{
		{level: "debug", enabled: slog.LevelDebug, disabled: slog.LevelDebug - 1, hasSource: true},
		{level: "DEBUG", enabled: slog.LevelDebug, disabled: slog.LevelDebug - 1, hasSource: true},
		{level: "info", enabled: slog.LevelInfo, disabled: slog.LevelDebug},
		{level: "warn", enabled: slog.LevelWarn, disabled: slog.LevelInfo},
		{level: "error", enabled: slog.LevelError, disabled: slog.LevelWarn},
		{level: "verbose", enabled: slog.LevelInfo, disabled: slog.LevelDebug},
		{level: "", enabled: slog.LevelInfo, disabled: slog.LevelDebug},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			t.Parallel()
			logger, buf := newLogger(tt.level, "json")
			ctx := context.Background()

			if !logger.Enabled(ctx, tt.enabled) {
				t.Errorf("Enabled(%v) = false, want true", tt.enabled)
			}
			if logger.Enabled(ctx, tt.disabled) {
				t.Errorf("Enabled(%v) = true, want false", tt.disabled)
			}

			logger.Log(ctx, tt.enabled, "campaign search failed")
			if got := strings.Contains(buf.String(), `"source"`); got != tt.hasSource {
				t.Errorf("source present = %v, want %v; output = %q", got, tt.hasSource, buf.String())
			}
		})
	}
}

// --- OpenFile ---

func TestOpenFile_AppendsToFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "browse.log")
	cfg := config.LogConfig{Level: "info", Format: "json"}

	for _, page := range []int{1, 2} {
		logger, closeLog, err := logging.OpenFile(cfg, path)
		if err != nil {
			t.Fatalf("OpenFile() error = %v", err)
		}
		logger.Info("page loaded", slog.Int("page", page))
		if err := closeLog(); err != nil {
			t.Fatalf("close error = %v", err)
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d log lines, want 2: %q", len(lines), data)
	}
	var last map[string]any
	if err := json.Unmarshal([]byte(lines[1]), &last); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if last["page"] != float64(2) {
		t.Errorf("page = %v, want 2", last["page"])
	}
}

func TestOpenFile_EmptyPathDiscards(t *testing.T) {
	t.Parallel()

	logger, closeLog, err := logging.OpenFile(config.LogConfig{Level: "debug"}, "")
	if err != nil {
		t.Fatalf("OpenFile() error = %v", err)
	}
	if logger.Enabled(context.Background(), slog.LevelError) {
		t.Error("logger for empty path is enabled, want discard")
	}
	if err := closeLog(); err != nil {
		t.Errorf("close error = %v", err)
	}
}

func TestOpenFile_MissingDirectory(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "missing", "browse.log")
	if _, _, err := logging.OpenFile(config.LogConfig{}, path); err == nil {
		t.Error("OpenFile() error = nil, want error for missing directory")
	}
}

// --- Context ---

func TestFromContext(t *testing.T) {
	t.Parallel()

	if logging.FromContext(context.Background()) != slog.Default() {
		t.Error("FromContext on bare context returned something other than slog.Default()")
	}

	first, _ := newLogger("info", "json")
	second, buf := newLogger("info", "json")
	ctx := logging.WithLogger(context.Background(), first)
	ctx = logging.WithLogger(ctx, second.With(slog.String("request_id", "req-9")))

	logging.FromContext(ctx).InfoContext(ctx, "searching campaigns")
	if !strings.Contains(buf.String(), "req-9") {
		t.Errorf("output = %q, want the most recently stored logger", buf.String())
	}
}

func TestDiscard(t *testing.T) {
	t.Parallel()

	logger := logging.Discard()
	if logger.Enabled(context.Background(), slog.LevelError) {
		t.Error("Discard() logger reports error level enabled, want all levels disabled")
	}
	logger.Error("dropped")
}
