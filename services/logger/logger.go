package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Level định nghĩa các mức độ log
type Level int

const (
	DebugLevel Level = iota
	InfoLevel
	ErrorLevel
)

// ParseLevel maps "debug", "info" or "error" to a Level, defaulting to info.
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return DebugLevel
	case "error":
		return ErrorLevel
	default:
		return InfoLevel
	}
}

// Logger takes a message followed by alternating key/value pairs.
type Logger interface {
	Info(msg string, args ...any)
	Error(msg string, args ...any)
	Debug(msg string, args ...any)
}

// DefaultLogger implements Logger on top of slog.
type DefaultLogger struct {
	l *slog.Logger
}

func NewDefaultLogger(level Level) *DefaultLogger {
	return NewLogger(os.Stdout, level)
}

// NewLogger writes JSON records to w.
func NewLogger(w io.Writer, level Level) *DefaultLogger {
	h := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level.slog()})
	return &DefaultLogger{l: slog.New(h)}
}

// Slog exposes the underlying logger for middleware that needs it directly.
func (l *DefaultLogger) Slog() *slog.Logger {
	return l.l
}

func (l *DefaultLogger) Info(msg string, args ...any) {
	l.l.Info(msg, args...)
}

func (l *DefaultLogger) Error(msg string, args ...any) {
	l.l.Error(msg, args...)
}

func (l *DefaultLogger) Debug(msg string, args ...any) {
	l.l.Debug(msg, args...)
}

func (lv Level) slog() slog.Level {
	switch lv {
	case DebugLevel:
		return slog.LevelDebug
	case ErrorLevel:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Nop discards everything. Used by tests.
type Nop struct{}

func (Nop) Info(string, ...any)  {}
func (Nop) Error(string, ...any) {}
func (Nop) Debug(string, ...any) {}
