package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Logger wraps slog for consistent logging across the application
type Logger struct {
	*slog.Logger
}

// New creates a new logger instance
func New() *Logger {
	return NewWithLevel(slog.LevelInfo)
}

// NewWithLevel creates a new logger with specified level
func NewWithLevel(level slog.Level) *Logger {
	return NewWithWriter(os.Stdout, level)
}

// NewWithWriter creates a JSON logger writing to w
func NewWithWriter(w io.Writer, level slog.Level) *Logger {
	return &Logger{
		Logger: slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
			Level: level,
		})),
	}
}

// ParseLevel maps LOG_LEVEL values to slog levels, falling back to info
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// SetDefault installs the logger as the process-wide slog default
func (l *Logger) SetDefault() {
	slog.SetDefault(l.Logger)
}

// WithField returns a logger with a pre-set field
func (l *Logger) WithField(key string, value interface{}) *Logger {
	return &Logger{
		Logger: l.With(key, value),
	}
}

// WithFields returns a logger with multiple pre-set fields
func (l *Logger) WithFields(fields map[string]interface{}) *Logger {
	args := make([]interface{}, 0, len(fields)*2)
	for k, v := range fields {
		args = append(args, k, v)
	}
	return &Logger{
		Logger: l.With(args...),
	}
}
