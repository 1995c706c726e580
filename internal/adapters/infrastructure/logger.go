package infrastructure

import (
	"log/slog"

	"xisms.app/internal/ports"
	"xisms.app/pkg/logger"
)

// SlogLoggerAdapter implements the Logger port using slog. The zero value
// logs through slog's default logger.
type SlogLoggerAdapter struct {
	logger *slog.Logger
}

// NewSlogLoggerAdapter creates an adapter bound to l
func NewSlogLoggerAdapter(l *logger.Logger) *SlogLoggerAdapter {
	if l == nil {
		return &SlogLoggerAdapter{}
	}
	return &SlogLoggerAdapter{logger: l.Logger}
}

func (l *SlogLoggerAdapter) target() *slog.Logger {
	if l.logger == nil {
		return slog.Default()
	}
	return l.logger
}

// Debug logs a debug message
func (l *SlogLoggerAdapter) Debug(msg string, fields ...ports.Field) {
	l.target().Debug(msg, toArgs(fields)...)
}

// Info logs an info message
func (l *SlogLoggerAdapter) Info(msg string, fields ...ports.Field) {
	l.target().Info(msg, toArgs(fields)...)
}

// Warn logs a warning message
func (l *SlogLoggerAdapter) Warn(msg string, fields ...ports.Field) {
	l.target().Warn(msg, toArgs(fields)...)
}

// Error logs an error message
func (l *SlogLoggerAdapter) Error(msg string, fields ...ports.Field) {
	l.target().Error(msg, toArgs(fields)...)
}

func toArgs(fields []ports.Field) []interface{} {
	args := make([]interface{}, 0, len(fields)*2)
	for _, field := range fields {
		if err, ok := field.Value.(error); ok {
			args = append(args, field.Key, err.Error())
			continue
		}
		args = append(args, field.Key, field.Value)
	}
	return args
}

// MultiLogger fans every entry out to each wrapped logger
type MultiLogger []ports.Logger

func (m MultiLogger) Debug(msg string, fields ...ports.Field) {
	for _, l := range m {
		l.Debug(msg, fields...)
	}
}

func (m MultiLogger) Info(msg string, fields ...ports.Field) {
	for _, l := range m {
		l.Info(msg, fields...)
	}
}

func (m MultiLogger) Warn(msg string, fields ...ports.Field) {
	for _, l := range m {
		l.Warn(msg, fields...)
	}
}

func (m MultiLogger) Error(msg string, fields ...ports.Field) {
	for _, l := range m {
		l.Error(msg, fields...)
	}
}
