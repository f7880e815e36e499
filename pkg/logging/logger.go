// Package logging provides a structured event logger for the framework.
// A terminal UI owns stdout and stderr, so events go to a file as JSON
// lines. The zero-configured logger discards everything; applications
// opt in with a path when debugging layout, focus, or render behavior.
package logging

import (
	"encoding/json"
	"os"
	"sync"
	"time"
)

// Level is log severity.
type Level string

const (
	LevelDebug Level = "debug"
	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
)

// Category names the engine subsystem that produced an event.
type Category string

const (
	CategoryTree   Category = "tree"
	CategoryLayout Category = "layout"
	CategoryFocus  Category = "focus"
	CategoryRender Category = "render"
	CategoryInput  Category = "input"
	CategoryLoop   Category = "loop"
)

// Event is one structured log record.
type Event struct {
	Timestamp time.Time      `json:"timestamp"`
	Level     Level          `json:"level"`
	Category  Category       `json:"category"`
	Message   string         `json:"message"`
	Details   map[string]any `json:"details,omitempty"`
}

// Logger writes events to a file. A nil Logger is valid and discards
// all events, so callers never need a nil check.
type Logger struct {
	mu   sync.Mutex
	file *os.File
	enc  *json.Encoder
}

// NewLogger opens (appending) the given path for event output.
func NewLogger(path string) (*Logger, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}
	return &Logger{file: f, enc: json.NewEncoder(f)}, nil
}

// Close flushes and closes the underlying file.
func (l *Logger) Close() error {
	if l == nil || l.file == nil {
		return nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	err := l.file.Close()
	l.file = nil
	l.enc = nil
	return err
}

// Log writes one event.
func (l *Logger) Log(level Level, cat Category, msg string, details map[string]any) {
	if l == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.enc == nil {
		return
	}
	_ = l.enc.Encode(Event{
		Timestamp: time.Now(),
		Level:     level,
		Category:  cat,
		Message:   msg,
		Details:   details,
	})
}

// Debug logs at debug level.
func (l *Logger) Debug(cat Category, msg string, details map[string]any) {
	l.Log(LevelDebug, cat, msg, details)
}

// Info logs at info level.
func (l *Logger) Info(cat Category, msg string, details map[string]any) {
	l.Log(LevelInfo, cat, msg, details)
}

// Warn logs at warn level.
func (l *Logger) Warn(cat Category, msg string, details map[string]any) {
	l.Log(LevelWarn, cat, msg, details)
}

// Error logs at error level.
func (l *Logger) Error(cat Category, msg string, details map[string]any) {
	l.Log(LevelError, cat, msg, details)
}
