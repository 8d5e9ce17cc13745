// Package logging builds the charmbracelet logger shared by every frontend.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/astroflap/internal/config"
)

// DefaultFile is where terminal play logs go when no file is configured,
// so log lines never land on top of the game screen.
const DefaultFile = "astroflap.log"

// New creates a logger writing to w with the configured level and timestamps.
func New(w io.Writer, prefix string, cfg config.LogSettings) (*log.Logger, error) {
	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("logging: %w", err)
	}

	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: cfg.Timestamps,
		Level:           level,
		Prefix:          prefix,
	}), nil
}

// NewStderr creates a logger on stderr. Used by the SSH server and the
// desktop window, which do not own the terminal.
func NewStderr(prefix string, cfg config.LogSettings) (*log.Logger, error) {
	return New(os.Stderr, prefix, cfg)
}

// NewFile creates a logger appending to cfg.File, or to ~/.astroflap/astroflap.log
// when unset. The returned closer must be called on exit.
func NewFile(prefix string, cfg config.LogSettings) (*log.Logger, io.Closer, error) {
	path := cfg.File
	if path == "" {
		path = config.UserPath(DefaultFile)
		if path == "" {
			return nil, nil, fmt.Errorf("logging: cannot resolve home directory for %s", DefaultFile)
		}
	}

	path, err := config.ExpandHome(path)
	if err != nil {
		return nil, nil, fmt.Errorf("logging: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("logging: cannot create log directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("logging: cannot open %s: %w", path, err)
	}

	logger, err := New(f, prefix, cfg)
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	return logger, f, nil
}

// Discard returns a logger that drops everything. Used by tests and as a
// fallback when the log file cannot be opened.
func Discard() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.FatalLevel})
}
