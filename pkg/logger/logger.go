// Package logger centralizes all logger code for this project
// Logging should be done by methods provided in this package only
// Any external library code for logging should go here so that we have a single place
// to manage logs and related code.
//
// Currently we use github.com/go-kit/log for logging.
package logger

import (
	"context"
	"io"
	"os"
	"sync"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"
)

type contextKey string

const loggerKey contextKey = "defaultLogger"

// Logger is the logging interface used across services
type Logger interface {
	Info(keyvals ...interface{}) error
	Error(keyvals ...interface{}) error
}

// WithLogger has all methods of Logger and an additional With method
type WithLogger interface {
	Logger
	With(keyvals ...interface{}) WithLogger
}

type defaultLogger struct {
	logger log.Logger
}

var (
	dl   WithLogger
	dlMu sync.Mutex
)

// Info logs info level logs. This is default method for logging in our app
func (l defaultLogger) Info(keyvals ...interface{}) error {
	return level.Info(l.logger).Log(keyvals...)
}

// Error is used when logging error level logs.
func (l defaultLogger) Error(keyvals ...interface{}) error {
	return level.Error(l.logger).Log(keyvals...)
}

// With returns a logger which adds keyvals to every log line
func (l defaultLogger) With(keyvals ...interface{}) WithLogger {
	l.logger = log.With(l.logger, keyvals...)
	return l
}

// Get returns standard defaultLogger for this application
func Get() WithLogger {
	dlMu.Lock()
	defer dlMu.Unlock()
	if dl == nil {
		dl = New(os.Stderr, level.AllowAll())
	}
	return dl
}

// Setup replaces standard logger with one that logs to stderr at given level.
// Level is one of "error", "info" or "all".
func Setup(lvl string) error {
	opt, err := ParseLevel(lvl)
	if err != nil {
		return err
	}
	dlMu.Lock()
	dl = New(os.Stderr, opt)
	dlMu.Unlock()
	return nil
}

// ParseLevel converts level name to a go-kit level filter
func ParseLevel(lvl string) (level.Option, error) {
	switch lvl {
	case "error":
		return level.AllowError(), nil
	case "info":
		return level.AllowInfo(), nil
	case "all", "":
		return level.AllowAll(), nil
	}
	return nil, errors.Errorf("unknown log level %q", lvl)
}

// New returns a logfmt logger writing to w
func New(w io.Writer, opt level.Option) WithLogger {
	logger := log.NewLogfmtLogger(log.NewSyncWriter(w))
	logger = level.NewFilter(logger, opt)
	logger = log.With(logger, "ts", log.DefaultTimestampUTC)
	return defaultLogger{logger}
}

// FromContext returns a defaultLogger with context
func FromContext(ctx context.Context) Logger {
	logger, ok := ctx.Value(loggerKey).(Logger)
	if !ok {
		logger = Get()
	}
	return logger
}

// NewContext creates a new context containing defaultLogger
func NewContext(ctx context.Context, logger Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}
