package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
)

var (
	// process-wide logger
	defaultLogger *slog.Logger
)

// picks the handler from ENVIRONMENT so packages can log before config is parsed
func init() {
	Configure(os.Getenv("ENVIRONMENT"), nil)
}

// rebuilds the default logger for the given environment.
// a nil writer means stdout in production and stderr otherwise
func Configure(environment string, w io.Writer) {
	var handler slog.Handler

	if environment == "production" {
		if w == nil {
			w = os.Stdout
		}

		handler = slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})
	} else {
		if w == nil {
			w = os.Stderr
		}

		handler = slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug})
	}

	defaultLogger = slog.New(handler)
}

func Default() *slog.Logger {
	return defaultLogger
}

// returns a child logger carrying the given attributes
func With(args ...any) *slog.Logger {
	return defaultLogger.With(args...)
}

// returns the request-scoped logger, or the default one
func FromContext(ctx context.Context) *slog.Logger {
	if ctx == nil {
		return defaultLogger
	}

	if l, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
		return l
	}

	return defaultLogger
}

// stores a request-scoped logger on the context
func WithContext(ctx context.Context, l *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, l)
}

type loggerKey struct{}

func Debug(msg string, args ...any) {
	defaultLogger.Debug(msg, args...)
}

func Info(msg string, args ...any) {
	defaultLogger.Info(msg, args...)
}

func Warn(msg string, args ...any) {
	defaultLogger.Warn(msg, args...)
}

func Error(msg string, args ...any) {
	defaultLogger.Error(msg, args...)
}

// logs msg at error level with err attached
func ErrorErr(err error, msg string, args ...any) {
	args = append(args, "error", err)
	defaultLogger.Error(msg, args...)
}

// logs and exits, only for process entrypoints
func Fatal(msg string, args ...any) {
	defaultLogger.Error(msg, args...)
	os.Exit(1)
}

func FatalErr(err error, msg string, args ...any) {
	args = append(args, "error", err)
	defaultLogger.Error(msg, args...)
	os.Exit(1)
}
