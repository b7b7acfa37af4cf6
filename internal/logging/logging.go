package logging

import (
	"io"
	"log/slog"
	"slices"

	"github.com/leg100/flick/internal/pubsub"
	"golang.org/x/exp/maps"
)

const DefaultLevel = "info"

var levels = map[string]slog.Level{
	"debug":      slog.LevelDebug,
	DefaultLevel: slog.LevelInfo,
	"warn":       slog.LevelWarn,
	"error":      slog.LevelError,
}

// Interface is the logging interface the widgets depend upon.
type Interface interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// ValidLevels returns valid strings for choosing a log level. Returns the
// default log level first.
func ValidLevels() []string {
	keys := maps.Keys(levels)
	slices.SortFunc(keys, func(a, b string) int {
		if a == DefaultLevel {
			return -1
		}
		if b == DefaultLevel {
			return 1
		}
		// Sort remaining in alphabetical order.
		if a < b {
			return -1
		}
		return 1
	})
	return keys
}

type Options struct {
	// The log level of the logger
	Level string
	// Any additional writers the log handler should write to.
	AdditionalWriters []io.Writer
}

// NewLogger constructs Logger, a slog wrapper that additionally keeps log
// records in memory and emits them as events.
func NewLogger(opts Options) *Logger {
	logger := &Logger{}
	// the broker is written to while the writer holds its lock, so it cannot
	// log via this logger
	broker := pubsub.NewBroker[Message](nil)
	writer := &writer{broker: broker}

	handler := slog.NewTextHandler(
		io.MultiWriter(append(opts.AdditionalWriters, writer)...),
		&slog.HandlerOptions{
			Level: levels[opts.Level],
		},
	)

	logger.logger = slog.New(handler)
	logger.Broker = broker
	logger.writer = writer

	return logger
}

// Logger wraps slog, emitting log records as events.
type Logger struct {
	logger *slog.Logger
	writer *writer

	*pubsub.Broker[Message]
}

func (l *Logger) Debug(msg string, args ...any) {
	l.logger.Debug(msg, args...)
}

func (l *Logger) Info(msg string, args ...any) {
	l.logger.Info(msg, args...)
}

func (l *Logger) Warn(msg string, args ...any) {
	l.logger.Warn(msg, args...)
}

func (l *Logger) Error(msg string, args ...any) {
	l.logger.Error(msg, args...)
}

// Slog returns the underlying slog logger.
func (l *Logger) Slog() *slog.Logger {
	return l.logger
}

// List lists the log messages received thus far.
func (l *Logger) List() []Message {
	return l.writer.list()
}
