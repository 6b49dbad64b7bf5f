// Package logging builds the application's zerolog logger.
package logging

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Config holds logging configuration.
type Config struct {
	Level  string // debug, info, warn, error
	Format string // json, text
	Output io.Writer

	// ErrorFile, when set, receives every event at error level or above in
	// JSON, in addition to Output.
	ErrorFile string
}

// New creates a logger. The returned close function releases the error file
// sink, if any.
func New(cfg Config) (zerolog.Logger, func() error, error) {
	output := cfg.Output
	if output == nil {
		output = os.Stdout
	}

	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		level = zerolog.InfoLevel
	}

	if cfg.Format == "text" {
		output = zerolog.ConsoleWriter{Out: output, TimeFormat: time.RFC3339}
	}

	closer := func() error { return nil }
	if cfg.ErrorFile != "" {
		f, err := os.OpenFile(cfg.ErrorFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return zerolog.Nop(), closer, fmt.Errorf("opening error log: %w", err)
		}
		output = zerolog.MultiLevelWriter(output, errorLevelWriter{w: f})
		closer = f.Close
	}

	logger := zerolog.New(output).
		Level(level).
		With().
		Timestamp().
		Logger()

	return logger, closer, nil
}

// errorLevelWriter drops events below error level.
type errorLevelWriter struct {
	w io.Writer
}

func (e errorLevelWriter) Write(p []byte) (int, error) {
	return e.w.Write(p)
}

func (e errorLevelWriter) WriteLevel(level zerolog.Level, p []byte) (int, error) {
	if level < zerolog.ErrorLevel {
		return len(p), nil
	}
	return e.w.Write(p)
}
