// internal/logger/logger.go
package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"time"
)

var (
	mu            sync.RWMutex
	defaultLogger = slog.New(slog.NewTextHandler(io.Discard, nil))
)

// Init installs the package logger. It may be called again to reconfigure.
// A nil output discards everything.
func Init(cfg Config, output io.Writer) {
	if output == nil {
		output = io.Discard
	}
	cfg.process()

	opts := slog.HandlerOptions{
		Level:     cfg.level,
		AddSource: true,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			switch a.Key {
			case slog.SourceKey:
				if source, ok := a.Value.Any().(*slog.Source); ok {
					source.File = filepath.Base(source.File)
				}
			case slog.TimeKey:
				a.Value = slog.StringValue(a.Value.Time().Format(time.TimeOnly))
			}
			return a
		},
	}
	handler := newFilteringHandler(slog.NewTextHandler(output, &opts), &cfg)

	mu.Lock()
	defaultLogger = slog.New(handler)
	mu.Unlock()
}

// OpenOutput resolves the configured log destination.
// The returned close function is safe to call for stderr.
func OpenOutput(path string) (io.Writer, func() error, error) {
	if path == "" || path == "-" {
		return os.Stderr, func() error { return nil }, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file %q: %w", path, err)
	}
	return f, f.Close, nil
}

// Get returns the current logger.
func Get() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return defaultLogger
}

// logAt builds a record whose source points at the caller of the exported wrapper.
func logAt(level slog.Level, tag string, format string, args ...interface{}) {
	l := Get()
	if !l.Enabled(context.Background(), level) {
		return
	}

	var pcs [1]uintptr
	runtime.Callers(3, pcs[:]) // runtime.Callers, logAt, wrapper

	r := slog.NewRecord(time.Now(), level, fmt.Sprintf(format, args...), pcs[0])
	if tag != "" {
		r.AddAttrs(slog.String(tagKey, tag))
	}
	_ = l.Handler().Handle(context.Background(), r)
}

// Debugf logs a debug message using Printf-style formatting.
func Debugf(format string, args ...interface{}) { logAt(slog.LevelDebug, "", format, args...) }

// Infof logs an info message using Printf-style formatting.
func Infof(format string, args ...interface{}) { logAt(slog.LevelInfo, "", format, args...) }

// Warnf logs a warning message using Printf-style formatting.
func Warnf(format string, args ...interface{}) { logAt(slog.LevelWarn, "", format, args...) }

// Errorf logs an error message using Printf-style formatting.
func Errorf(format string, args ...interface{}) { logAt(slog.LevelError, "", format, args...) }

// DebugTagf logs a tagged debug message.
func DebugTagf(tag, format string, args ...interface{}) {
	logAt(slog.LevelDebug, tag, format, args...)
}

// InfoTagf logs a tagged info message.
func InfoTagf(tag, format string, args ...interface{}) {
	logAt(slog.LevelInfo, tag, format, args...)
}

// WarnTagf logs a tagged warning.
func WarnTagf(tag, format string, args ...interface{}) {
	logAt(slog.LevelWarn, tag, format, args...)
}
