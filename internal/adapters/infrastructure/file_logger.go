package infrastructure

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"xisms.app/internal/ports"
	"xisms.app/pkg/errors"
)

// FileLoggerAdapter appends structured JSON lines to a file
type FileLoggerAdapter struct {
	file     *os.File
	minLevel slog.Level
	mutex    sync.Mutex
}

// NewFileLoggerAdapter opens (or creates) logPath for appending. Entries below
// minLevel are dropped.
func NewFileLoggerAdapter(logPath string, minLevel slog.Level) (*FileLoggerAdapter, error) {
	if logPath == "" {
		return nil, errors.NewConfigurationError("log file path cannot be empty", nil)
	}

	if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
		return nil, errors.NewConfigurationError("failed to create log directory", err)
	}

	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, errors.NewConfigurationError("failed to open log file", err)
	}

	return &FileLoggerAdapter{
		file:     file,
		minLevel: minLevel,
	}, nil
}

func (f *FileLoggerAdapter) Debug(msg string, fields ...ports.Field) {
	f.write(slog.LevelDebug, msg, fields)
}

func (f *FileLoggerAdapter) Info(msg string, fields ...ports.Field) {
	f.write(slog.LevelInfo, msg, fields)
}

func (f *FileLoggerAdapter) Warn(msg string, fields ...ports.Field) {
	f.write(slog.LevelWarn, msg, fields)
}

func (f *FileLoggerAdapter) Error(msg string, fields ...ports.Field) {
	f.write(slog.LevelError, msg, fields)
}

// Close flushes and closes the underlying file
func (f *FileLoggerAdapter) Close() error {
	f.mutex.Lock()
	defer f.mutex.Unlock()
	return f.file.Close()
}

func (f *FileLoggerAdapter) write(level slog.Level, msg string, fields []ports.Field) {
	if level < f.minLevel {
		return
	}

	entry := map[string]interface{}{
		"time":  time.Now().UTC().Format(time.RFC3339Nano),
		"level": level.String(),
		"msg":   msg,
	}
	for _, field := range fields {
		if err, ok := field.Value.(error); ok {
			entry[field.Key] = err.Error()
			continue
		}
		entry[field.Key] = field.Value
	}

	line, err := json.Marshal(entry)
	if err != nil {
		line = []byte(fmt.Sprintf(`{"level":"ERROR","msg":"failed to marshal log entry","error":%q}`, err.Error()))
	}

	f.mutex.Lock()
	defer f.mutex.Unlock()

	if _, err := f.file.Write(append(line, '\n')); err != nil {
		fmt.Fprintf(os.Stderr, "failed to write log entry: %v\n", err)
	}
}
