// Package logging builds the process logger. Output goes to a file because the
// TUI owns stdout and stderr while it runs.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"
)

// New opens path for appending and returns a logger writing JSON lines to it,
// plus a func that closes the file. An empty path discards all output.
func New(path, level string) (*log.Logger, func() error, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, nil, fmt.Errorf("log level: %w", err)
	}

	logger := log.New()
	logger.SetLevel(lvl)
	logger.SetFormatter(&log.JSONFormatter{})

	if path == "" {
		logger.SetOutput(io.Discard)
		return logger, func() error { return nil }, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}
	logger.SetOutput(f)
	return logger, f.Close, nil
}
