// Package logging builds the service's slog loggers and carries a
// request-scoped logger through context.
//
//	logger := logging.New(cfg.Log, os.Stderr)
//	ctx = logging.WithLogger(ctx, logger.With(slog.String("request_id", id)))
//	logging.FromContext(ctx).InfoContext(ctx, "searching campaigns", slog.Int("page", 2))
//
// Error records name the operation and carry the full error chain:
//
//	logger.ErrorContext(ctx, "campaign search failed",
//	    slog.String("operation", "Search"),
//	    slog.Int("page", q.Page),
//	    slog.Any("error", err),
//	)
//
// Loggers built by New run every attribute through the rules in redact.go,
// so bearer tokens and cookies never reach the output.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/jsamuelsen11/crowdfund-search/internal/platform/config"
)

type contextKey struct{}

// New returns a logger writing to w at cfg.Level. Format "text" selects the
// text handler and anything else JSON. An unknown level logs at info, and
// debug loggers include source locations.
func New(cfg config.LogConfig, w io.Writer) *slog.Logger {
	level := parseLevel(cfg.Level)
	opts := &slog.HandlerOptions{
		Level:       level,
		AddSource:   level <= slog.LevelDebug,
		ReplaceAttr: newRedactAttr(),
	}

	if strings.EqualFold(cfg.Format, "text") {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

// OpenFile returns a logger appending to the file at path and a func that
// closes it. An empty path yields Discard. The terminal browser uses this
// since its screen belongs to the UI.
func OpenFile(cfg config.LogConfig, path string) (*slog.Logger, func() error, error) {
	if path == "" {
		return Discard(), func() error { return nil }, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}
	return New(cfg, f), f.Close, nil
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// WithLogger returns a copy of ctx carrying logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, logger)
}

// FromContext returns the logger stored by WithLogger, or slog.Default().
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(contextKey{}).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

func parseLevel(s string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo
	}
	return level
}
