// Package logging builds the application logger. The terminal belongs to the
// UI, so records go to a rotated JSON log file instead of stderr.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	lj "gopkg.in/natefinch/lumberjack.v2"
)

// Options controls logger initialization.
type Options struct {
	Level string // debug, info, warn, error; empty means info
	File  string // rotated log file; empty discards all records
}

// Logger is the application logger plus the file it writes to.
type Logger struct {
	*slog.Logger
	closer io.Closer
}

// New builds a logger and installs it as slog.Default.
func New(opts Options) (*Logger, error) {
	level, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, err
	}

	path := strings.TrimSpace(opts.File)
	if path == "" {
		logger := &Logger{Logger: slog.New(slog.NewJSONHandler(io.Discard, nil))}
		slog.SetDefault(logger.Logger)
		return logger, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	w := &lj.Logger{Filename: path, MaxSize: 5, MaxBackups: 3, MaxAge: 28, Compress: true}
	h := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	logger := &Logger{
		Logger: slog.New(h).With(slog.String("app", "gutter")),
		closer: w,
	}
	slog.SetDefault(logger.Logger)
	return logger, nil
}

// Close flushes and closes the log file.
func (l *Logger) Close() error {
	if l == nil || l.closer == nil {
		return nil
	}
	return l.closer.Close()
}

// WithComponent returns a logger with the component attribute set.
func WithComponent(l *slog.Logger, name string) *slog.Logger {
	if l == nil {
		l = slog.Default()
	}
	return l.With(slog.String("component", name))
}

// ParseLevel converts a level name to a slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
	}
}
