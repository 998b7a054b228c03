// Package logger sets up debug logging for programs that own the terminal.
// The screen is never a log target: output is discarded unless debug
// logging is enabled, in which case it goes to a file.
package logger

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

const (
	// DefaultDir is where log files are written when no directory is given
	DefaultDir = "logs"
	// FileName is the active log file inside the log directory
	FileName = "scb-demo.log"
	// MaxSize is the size at which the active file is rotated on startup
	MaxSize = 10 * 1024 * 1024
)

// Setup returns a logger for the given directory. With debug off the logger
// discards and the returned file is nil. With debug on the caller owns the
// returned file and must close it.
func Setup(dir string, debug bool) (*slog.Logger, *os.File, error) {
	if !debug {
		return slog.New(slog.DiscardHandler), nil, nil
	}
	if dir == "" {
		dir = DefaultDir
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, nil, fmt.Errorf("failed to create log directory %s: %w", dir, err)
	}

	path := filepath.Join(dir, FileName)
	if err := rotate(path); err != nil {
		return nil, nil, err
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file %s: %w", path, err)
	}

	handler := slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})
	log := slog.New(handler)
	log.Info("logger initialized", "path", path)
	return log, f, nil
}

// rotate moves an oversized log aside under a timestamped name
func rotate(path string) error {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to stat log file %s: %w", path, err)
	}
	if info.Size() <= MaxSize {
		return nil
	}

	ext := filepath.Ext(path)
	stamp := time.Now().Format("20060102-150405")
	rotated := path[:len(path)-len(ext)] + "-" + stamp + ext
	if err := os.Rename(path, rotated); err != nil {
		return fmt.Errorf("failed to rotate log file %s: %w", path, err)
	}
	return nil
}
