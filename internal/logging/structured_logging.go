package logging

import (
	"context"
	"io"
	"log/slog"

	"launchdash.dev/internal/appconf"
)

type loggerKey struct{}

// NewStructuredLogger writes JSON lines at level and above.
func NewStructuredLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}

// NewLogger returns the server's logger: JSON in production, text elsewhere,
// debug level when verbose.
func NewLogger(w io.Writer, env appconf.Environment, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	if env == appconf.Production {
		return NewStructuredLogger(w, level)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func attrArgs(attrs []slog.Attr, keep func(slog.Attr) bool) []any {
	args := make([]any, 0, len(attrs))
	for _, attr := range attrs {
		if keep == nil || keep(attr) {
			args = append(args, attr)
		}
	}
	return args
}

// LogError records err under the "error" key. A nil logger discards.
func LogError(logger *slog.Logger, message string, err error, attrs ...slog.Attr) {
	if logger == nil {
		return
	}
	args := append([]any{slog.String("error", err.Error())}, attrArgs(attrs, nil)...)
	logger.Error(message, args...)
}

func isZeroDuration(attr slog.Attr) bool {
	return attr.Key == "duration" && attr.Value.Kind() == slog.KindDuration && attr.Value.Duration() == 0
}

// LogOperation is an info record named after the operation. An unmeasured
// (zero) duration is left out.
func LogOperation(logger *slog.Logger, operation string, attrs ...slog.Attr) {
	if logger == nil {
		return
	}
	logger.Info(operation, attrArgs(attrs, func(a slog.Attr) bool { return !isZeroDuration(a) })...)
}

// LogHTTPRequest is the access log record.
func LogHTTPRequest(logger *slog.Logger, method, path string, status int, durationMs float64, attrs ...slog.Attr) {
	if logger == nil {
		return
	}
	args := append([]any{
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status", status),
		slog.Float64("duration_ms", durationMs),
	}, attrArgs(attrs, nil)...)
	logger.Info("http_request", args...)
}

// WithLogger scopes logger to a request. Handlers read it back with FromContext.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// FromContext falls back to slog.Default outside a request.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok && logger != nil {
		return logger
	}
	return slog.Default()
}
