package loggers

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
)

// Logger is a wrapper around zerolog.Logger for convenience.
type Logger = zerolog.Logger

func init() {
	zerolog.TimestampFunc = func() time.Time {
		return time.Now().UTC()
	}
}

// New creates a new zerolog logger writing to stdout based on the provided log level string.
// Returns an error if the log level string cannot be parsed.
func New(level string) (Logger, error) {
	return NewWithWriter(level, os.Stdout)
}

// NewWithWriter is New with an explicit destination.
func NewWithWriter(level string, w io.Writer) (Logger, error) {
	zerologLevel, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), err
	}

	// Create logger with JSON output, timestamp, and specified level
	logger := zerolog.New(w).
		Level(zerologLevel).
		With().
		Timestamp().
		Caller().
		Logger()

	return logger, nil
}

// NewFile creates a logger writing to log_analyzer-<unix>.log inside dir, creating
// dir when needed. The returned closer releases the file.
func NewFile(level string, dir string, now time.Time) (Logger, io.Closer, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("failed to create log directory %q: %w", dir, err)
	}

	path := filepath.Join(dir, fmt.Sprintf("log_analyzer-%d.log", now.Unix()))
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("failed to open log file %q: %w", path, err)
	}

	logger, err := NewWithWriter(level, file)
	if err != nil {
		_ = file.Close()
		return zerolog.Nop(), nil, err
	}
	return logger, file, nil
}

// Ctx extracts a logger from the context.
// Returns a no-op logger if no logger is found in context.
var Ctx = func(ctx context.Context) *Logger {
	return zerolog.Ctx(ctx)
}
