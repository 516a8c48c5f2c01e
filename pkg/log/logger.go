// Package log provides structured logging for featdrift operations.
//
// The package is a thin layer over Go's log/slog: a JSON handler wrapped so
// that errors created with cockroachdb/errors carry their stack trace into a
// dedicated log attribute. Library packages obtain named loggers through
// GetLoggerWithName and emit structured fields; applications that never call
// Setup simply inherit the process-wide slog default.
package log

import (
	"fmt"
	"log/slog"
	"os"
)

// Setup installs the library's JSON logging handler as the slog default.
// loglevel is one of "debug", "info", "warn", "error".
func Setup(loglevel string) {
	ops := slog.HandlerOptions{
		AddSource: true,
		Level:     ToLogLevel(loglevel),
	}
	handler := slog.NewJSONHandler(os.Stdout, &ops)
	slog.SetDefault(slog.New(WrapByErrFmtHandler(handler)))
}

// ToLogLevel converts a level name to a slog.Level.
func ToLogLevel(level string) slog.Level {
	switch level {
	case "info":
		return slog.LevelInfo
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		panic(fmt.Sprintf("invalid log level :%s", level))
	}
}

const (
	// ErrAttrKey is the attribute key under which errors are logged.
	ErrAttrKey = "error"
	// StacktraceAttrKey is the attribute key for extracted stack traces.
	StacktraceAttrKey = "stacktrace"
	// LoggerNameKey identifies the component that emitted a record.
	LoggerNameKey = "logger"
)

// ErrAttr is a wrapper to pass err to slog.
func ErrAttr(err error) slog.Attr {
	return slog.Any(ErrAttrKey, err)
}

// GetLogger returns the process default logger.
func GetLogger() *slog.Logger {
	return slog.Default()
}

// GetLoggerWithName returns a logger tagged with a component name,
// e.g. "inspection.permutation".
func GetLoggerWithName(name string) *slog.Logger {
	return slog.Default().With(LoggerNameKey, name)
}
