// Package log provides structured logging for storybook.
// Entries are written as "timestamp [LEVEL] [category] message key=value"
// to a file sink, kept in a bounded in-memory buffer for the log overlay,
// and published to subscribers. Logging is off until Init is called, which
// the root command only does under --debug or STORYBOOK_DEBUG.
package log

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/zjrosen/storybook/internal/pubsub"
)

// Level represents log severity.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

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

// Category groups related log messages.
type Category string

const (
	CatConfig  Category = "config"  // Configuration loading/saving
	CatStory   Category = "story"   // Story parsing and navigation
	CatVortex  Category = "vortex"  // Spiral layout generation and rendering
	CatWatcher Category = "watcher" // Story file watcher events
	CatUI      Category = "ui"      // UI component updates
	CatMode    Category = "mode"    // Mode controller transitions
	CatCache   Category = "cache"   // Layout cache hits and misses
)

// DefaultBufferSize is the number of recent entries kept in memory.
const DefaultBufferSize = 500

// Logger provides structured logging.
type Logger struct {
	mu       sync.Mutex
	file     *os.File
	writer   io.Writer
	enabled  bool
	minLevel Level
	buffer   []string
	bufSize  int
	next     int
	full     bool
	broker   *pubsub.Broker[string]
}

var (
	defaultLogger *Logger
	initMu        sync.Mutex
)

// Init opens path for appending and installs it as the global logger.
// bufferSize bounds the in-memory history served by GetRecentLogs.
// Returns a cleanup function that closes the file.
func Init(path string, bufferSize int) (func(), error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644) //nolint:gosec // G304: debug log path comes from the user
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}

	l := newLogger(f, bufferSize)
	l.file = f

	initMu.Lock()
	defaultLogger = l
	initMu.Unlock()

	return func() {
		initMu.Lock()
		defer initMu.Unlock()
		if defaultLogger == l {
			defaultLogger.broker.Close()
		}
		_ = f.Close()
	}, nil
}

// InitWriter installs a logger that writes to w. Used by tests and by
// commands that want log lines on stderr.
func InitWriter(w io.Writer, bufferSize int) {
	initMu.Lock()
	defer initMu.Unlock()
	defaultLogger = newLogger(w, bufferSize)
}

func newLogger(w io.Writer, bufferSize int) *Logger {
	if bufferSize <= 0 {
		bufferSize = DefaultBufferSize
	}
	return &Logger{
		writer:   w,
		enabled:  true,
		minLevel: LevelDebug,
		buffer:   make([]string, bufferSize),
		bufSize:  bufferSize,
		broker:   pubsub.NewBroker[string](),
	}
}

// SetEnabled toggles logging on/off.
func SetEnabled(enabled bool) {
	if l := current(); l != nil {
		l.mu.Lock()
		l.enabled = enabled
		l.mu.Unlock()
	}
}

// SetMinLevel sets the minimum log level.
func SetMinLevel(level Level) {
	if l := current(); l != nil {
		l.mu.Lock()
		l.minLevel = level
		l.mu.Unlock()
	}
}

// Debug logs at debug level.
func Debug(cat Category, msg string, fields ...any) {
	write(LevelDebug, cat, msg, fields...)
}

// Info logs at info level.
func Info(cat Category, msg string, fields ...any) {
	write(LevelInfo, cat, msg, fields...)
}

// Warn logs at warning level.
func Warn(cat Category, msg string, fields ...any) {
	write(LevelWarn, cat, msg, fields...)
}

// Error logs at error level.
func Error(cat Category, msg string, fields ...any) {
	write(LevelError, cat, msg, fields...)
}

// ErrorErr logs an error with the error value.
func ErrorErr(cat Category, msg string, err error, fields ...any) {
	if err != nil {
		fields = append(fields, "error", err.Error())
	} else {
		fields = append(fields, "error", "<nil>")
	}
	write(LevelError, cat, msg, fields...)
}

func current() *Logger {
	initMu.Lock()
	defer initMu.Unlock()
	return defaultLogger
}

func write(level Level, cat Category, msg string, fields ...any) {
	l := current()
	if l == nil {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.enabled || level < l.minLevel {
		return
	}

	entry := format(time.Now(), level, cat, msg, fields...)

	if l.writer != nil {
		_, _ = io.WriteString(l.writer, entry+"\n")
	}

	l.buffer[l.next] = entry
	l.next = (l.next + 1) % l.bufSize
	if l.next == 0 {
		l.full = true
	}

	l.broker.Publish(pubsub.LoggedEvent, entry)
}

// format renders one entry:
// 2025-12-06T10:45:00 [ERROR] [story] message key=value key2=value2
func format(ts time.Time, level Level, cat Category, msg string, fields ...any) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s [%s] [%s] %s", ts.Format("2006-01-02T15:04:05"), level, cat, msg)
	for i := 0; i+1 < len(fields); i += 2 {
		fmt.Fprintf(&b, " %v=%v", fields[i], fields[i+1])
	}
	if len(fields)%2 != 0 {
		fmt.Fprintf(&b, " %v=<missing>", fields[len(fields)-1])
	}
	return b.String()
}

// GetRecentLogs returns up to n of the most recent entries, oldest first.
func GetRecentLogs(n int) []string {
	l := current()
	if l == nil || n <= 0 {
		return nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	count := l.next
	if l.full {
		count = l.bufSize
	}
	n = min(n, count)

	out := make([]string, 0, n)
	start := (l.next - n + l.bufSize) % l.bufSize
	for i := range n {
		out = append(out, l.buffer[(start+i)%l.bufSize])
	}
	return out
}

// ClearBuffer drops the in-memory history. The file sink is untouched.
func ClearBuffer() {
	l := current()
	if l == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.buffer = make([]string, l.bufSize)
	l.next = 0
	l.full = false
}

// LogEvent is a pubsub event containing a log entry.
type LogEvent = pubsub.Event[string]

// LogListener wraps a continuous listener for log events.
type LogListener = pubsub.ContinuousListener[string]

// NewListener subscribes to new log entries until ctx is cancelled.
// Returns nil when logging was never initialized.
func NewListener(ctx context.Context) *LogListener {
	l := current()
	if l == nil {
		return nil
	}
	return pubsub.NewContinuousListener(ctx, l.broker)
}
