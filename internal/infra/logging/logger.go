// Package logging provides slog-backed logging for taskboard.
// Entries go to stderr or to an append-only log file chosen in [log].
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/runoshun/taskboard/internal/domain"
)

// Ensure Logger implements domain.Logger interface.
var _ domain.Logger = (*Logger)(nil)

// Logger wraps slog.Logger behind domain.Logger.
// Fields are ordered to minimize memory padding.
type Logger struct {
	slog  *slog.Logger
	file  *os.File
	mu    sync.Mutex
	level slog.Level
}

// New creates a Logger writing text records to w.
// A nil writer disables logging.
func New(w io.Writer, level slog.Level) *Logger {
	if w == nil {
		w = io.Discard
	}
	return &Logger{
		slog:  slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})),
		level: level,
	}
}

// NewFile creates a Logger appending to the file at path.
// The parent directory is created if needed.
func NewFile(path string, level slog.Level) (*Logger, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o640) //nolint:gosec // Log file readable by owner and group
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	l := New(f, level)
	l.file = f
	return l, nil
}

// FromConfig creates a Logger for the [log] section.
// An empty file writes to stderr.
func FromConfig(cfg domain.LogConfig) (*Logger, error) {
	level := ParseLevel(cfg.Level)
	if cfg.File == "" {
		return New(os.Stderr, level), nil
	}
	return NewFile(cfg.File, level)
}

// ParseLevel parses a log level string into slog.Level.
func ParseLevel(levelStr string) slog.Level {
	switch levelStr {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Slog returns the underlying slog.Logger.
func (l *Logger) Slog() *slog.Logger {
	return l.slog
}

// Close closes the log file, if any.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	l.slog = slog.New(slog.NewTextHandler(io.Discard, nil))
	return err
}

// log writes one record. taskID 0 marks an entry that is not tied to a task.
func (l *Logger) log(level slog.Level, taskID int, category, msg string) {
	if level < l.level {
		return
	}

	l.mu.Lock()
	logger := l.slog
	l.mu.Unlock()

	attrs := make([]slog.Attr, 0, 2)
	if taskID > 0 {
		attrs = append(attrs, slog.String("task", domain.TaskSlug(taskID)))
	}
	attrs = append(attrs, slog.String("category", category))
	logger.LogAttrs(context.Background(), level, msg, attrs...)
}

// Info logs an info message.
func (l *Logger) Info(taskID int, category, msg string) {
	l.log(slog.LevelInfo, taskID, category, msg)
}

// Debug logs a debug message.
func (l *Logger) Debug(taskID int, category, msg string) {
	l.log(slog.LevelDebug, taskID, category, msg)
}

// Warn logs a warning message.
func (l *Logger) Warn(taskID int, category, msg string) {
	l.log(slog.LevelWarn, taskID, category, msg)
}

// Error logs an error message.
func (l *Logger) Error(taskID int, category, msg string) {
	l.log(slog.LevelError, taskID, category, msg)
}
