// Package logging provides a small leveled logging abstraction for hoard.
// It wraps the standard log package so the rest of the code depends on a
// narrow interface that can later be backed by slog or another
// structured logger.
package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"sort"
	"strings"
)

// Level represents a log level.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// String returns the string representation of the level.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Logger is the interface hoard logs through.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)

	// WithField returns a new logger that includes the given field on
	// every line.
	WithField(key string, value any) Logger

	// SetLevel sets the minimum level that will be emitted.
	SetLevel(level Level)
}

// New creates a logger writing to stderr at LevelInfo.
func New() Logger {
	return NewWithOutput(os.Stderr)
}

// NewWithOutput creates a logger writing to w at LevelInfo.
func NewWithOutput(w io.Writer) Logger {
	return &stdLogger{
		logger: log.New(w, "", log.LstdFlags),
		level:  LevelInfo,
	}
}

// stdLogger implements Logger on top of the standard log package.
type stdLogger struct {
	logger *log.Logger
	level  Level
	fields map[string]any
}

func (l *stdLogger) log(level Level, msg string, args ...any) {
	if level < l.level {
		return
	}

	formatted := msg
	if len(args) > 0 {
		formatted = fmt.Sprintf(msg, args...)
	}

	if len(l.fields) == 0 {
		l.logger.Printf("[%s] %s", level, formatted)
		return
	}

	// Sorted so the same call always produces the same line.
	keys := make([]string, 0, len(l.fields))
	for k := range l.fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%s=%v", k, l.fields[k])
	}
	l.logger.Printf("[%s] %s [%s]", level, formatted, b.String())
}

func (l *stdLogger) Debug(msg string, args ...any) { l.log(LevelDebug, msg, args...) }
func (l *stdLogger) Info(msg string, args ...any)  { l.log(LevelInfo, msg, args...) }
func (l *stdLogger) Warn(msg string, args ...any)  { l.log(LevelWarn, msg, args...) }
func (l *stdLogger) Error(msg string, args ...any) { l.log(LevelError, msg, args...) }

func (l *stdLogger) WithField(key string, value any) Logger {
	fields := make(map[string]any, len(l.fields)+1)
	for k, v := range l.fields {
		fields[k] = v
	}
	fields[key] = value

	return &stdLogger{
		logger: l.logger,
		level:  l.level,
		fields: fields,
	}
}

func (l *stdLogger) SetLevel(level Level) {
	l.level = level
}

// Nop is a logger that discards everything. Useful in tests and when
// verbose output is off.
type Nop struct{}

func (Nop) Debug(string, ...any)           {}
func (Nop) Info(string, ...any)            {}
func (Nop) Warn(string, ...any)            {}
func (Nop) Error(string, ...any)           {}
func (n Nop) WithField(string, any) Logger { return n }
func (Nop) SetLevel(Level)                 {}
