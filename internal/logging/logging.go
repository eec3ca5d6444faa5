// Package logging configures zerolog for nahw.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Config controls logger output.
type Config struct {
	// Level is a zerolog level name (debug, info, warn, error).
	Level string
	// File, when set, receives log output instead of stderr. The TUI uses
	// this so log lines never interleave with the rendered screen.
	File string
	// Console renders human-readable output instead of JSON.
	Console bool
}

var (
	mu     sync.RWMutex
	base   = zerolog.Nop()
	closer io.Closer
)

// Init installs the process logger. It may be called more than once; the
// previous log file, if any, is closed.
func Init(cfg Config) error {
	level := zerolog.InfoLevel
	if strings.TrimSpace(cfg.Level) != "" {
		parsed, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(cfg.Level)))
		if err != nil {
			return fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
		}
		level = parsed
	}

	var out io.Writer = os.Stderr
	var file *os.File
	if cfg.File != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.File), 0o755); err != nil {
			return fmt.Errorf("failed to create log dir: %w", err)
		}
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		file = f
		out = f
	}
	if cfg.Console {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.Kitchen, NoColor: file != nil}
	}

	logger := zerolog.New(out).Level(level).With().Timestamp().Logger()

	mu.Lock()
	defer mu.Unlock()
	if closer != nil {
		_ = closer.Close()
		closer = nil
	}
	if file != nil {
		closer = file
	}
	base = logger
	return nil
}

// Close flushes and closes the log file opened by Init.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	base = zerolog.Nop()
	if closer == nil {
		return nil
	}
	err := closer.Close()
	closer = nil
	return err
}

// Logger returns the process logger.
func Logger() zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return base
}

// Component returns a child logger tagged with a component name.
func Component(name string) zerolog.Logger {
	return Logger().With().Str("component", name).Logger()
}
