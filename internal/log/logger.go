// Package log is a thin facade over logrus with the small surface the
// rest of the application uses: leveled package-level functions, a debug
// toggle, and structured fields.
package log

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Field is a single structured logging field.
type Field struct {
	Key   string
	Value interface{}
}

// F constructs a Field.
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

// Logger wraps a logrus logger.
type Logger struct {
	l *logrus.Logger
}

// Option configures a Logger.
type Option func(*Logger)

// WithOutput sets the destination for log output.
func WithOutput(w io.Writer) Option {
	return func(lg *Logger) {
		lg.l.SetOutput(w)
	}
}

// WithDebug enables debug-level output.
func WithDebug(debug bool) Option {
	return func(lg *Logger) {
		if debug {
			lg.l.SetLevel(logrus.DebugLevel)
		} else {
			lg.l.SetLevel(logrus.InfoLevel)
		}
	}
}

// NewLogger creates a logger with timestamped text output.
func NewLogger(opts ...Option) *Logger {
	l := logrus.New()
	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	lg := &Logger{l: l}
	for _, opt := range opts {
		opt(lg)
	}
	return lg
}

var std = NewLogger()

// SetDebug toggles debug output on the package-level logger.
func SetDebug(debug bool) {
	WithDebug(debug)(std)
}

// SetOutput redirects the package-level logger. The TUI owns the
// terminal, so interactive runs point this at a file or io.Discard.
func SetOutput(w io.Writer) {
	WithOutput(w)(std)
}

// LogWithFields returns an entry carrying structured fields.
func LogWithFields(fields ...Field) *logrus.Entry {
	return std.withFields(fields...)
}

func (lg *Logger) withFields(fields ...Field) *logrus.Entry {
	fs := make(logrus.Fields, len(fields))
	for _, f := range fields {
		fs[f.Key] = f.Value
	}
	return lg.l.WithFields(fs)
}

// Info logs at info level.
func Info(args ...interface{}) { std.Info(args...) }

// Infof logs a formatted message at info level.
func Infof(format string, args ...interface{}) { std.Infof(format, args...) }

// Debug logs at debug level.
func Debug(args ...interface{}) { std.Debug(args...) }

// Debugf logs a formatted message at debug level.
func Debugf(format string, args ...interface{}) { std.Debugf(format, args...) }

// Warn logs at warning level.
func Warn(args ...interface{}) { std.Warn(args...) }

// Warnf logs a formatted message at warning level.
func Warnf(format string, args ...interface{}) { std.Warnf(format, args...) }

// Error logs at error level.
func Error(args ...interface{}) { std.Error(args...) }

// Errorf logs a formatted message at error level.
func Errorf(format string, args ...interface{}) { std.Errorf(format, args...) }

// Info logs at info level.
func (lg *Logger) Info(args ...interface{}) { lg.l.Info(args...) }

// Infof logs a formatted message at info level.
func (lg *Logger) Infof(format string, args ...interface{}) { lg.l.Infof(format, args...) }

// Debug logs at debug level.
func (lg *Logger) Debug(args ...interface{}) { lg.l.Debug(args...) }

// Debugf logs a formatted message at debug level.
func (lg *Logger) Debugf(format string, args ...interface{}) { lg.l.Debugf(format, args...) }

// Warn logs at warning level.
func (lg *Logger) Warn(args ...interface{}) { lg.l.Warn(args...) }

// Warnf logs a formatted message at warning level.
func (lg *Logger) Warnf(format string, args ...interface{}) { lg.l.Warnf(format, args...) }

// Error logs at error level.
func (lg *Logger) Error(args ...interface{}) { lg.l.Error(args...) }

// Errorf logs a formatted message at error level.
func (lg *Logger) Errorf(format string, args ...interface{}) { lg.l.Errorf(format, args...) }
