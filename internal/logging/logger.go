package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/google/uuid"

	"ytranscript/internal/config"
)

// Options describes logger construction parameters.
type Options struct {
	Level     string
	Format    string
	Output    io.Writer
	SessionID string
}

// New constructs a slog logger using the provided options.
func New(opts Options) (*slog.Logger, error) {
	level := parseLevel(opts.Level)
	levelVar := new(slog.LevelVar)
	levelVar.Set(level)

	output := opts.Output
	if output == nil {
		output = os.Stderr
	}

	addSource := level <= slog.LevelDebug

	format := strings.ToLower(strings.TrimSpace(opts.Format))
	if format == "" {
		format = "console"
	}

	var handler slog.Handler
	switch format {
	case "json":
		handler = newJSONHandler(output, levelVar, addSource)
	case "console":
		handler = newConsoleHandler(output, levelVar, addSource)
	default:
		return nil, fmt.Errorf("log format: unsupported value %q", opts.Format)
	}

	sessionID := strings.TrimSpace(opts.SessionID)
	if sessionID == "" {
		sessionID = NewSessionID()
	}
	return slog.New(newSessionIDHandler(handler, sessionID)), nil
}

// NewFromConfig creates a logger using application config values. Overrides
// from command-line flags win when non-empty.
func NewFromConfig(cfg *config.Config, output io.Writer, levelOverride, formatOverride string) (*slog.Logger, error) {
	opts := Options{Level: "warn", Format: "console", Output: output}
	if cfg != nil {
		opts.Level = cfg.Logging.Level
		opts.Format = cfg.Logging.Format
	}
	if v := strings.TrimSpace(levelOverride); v != "" {
		opts.Level = v
	}
	if v := strings.TrimSpace(formatOverride); v != "" {
		opts.Format = v
	}
	return New(opts)
}

// NewSessionID returns a fresh identifier for one process invocation.
func NewSessionID() string {
	return uuid.NewString()
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	case "warn", "warning", "":
		return slog.LevelWarn
	default:
		return slog.LevelWarn
	}
}
