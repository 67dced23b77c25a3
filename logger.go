package queryset

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with queryset-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithPath adds a path expression field to the logger.
func (l *Logger) WithPath(path string) *Logger {
	return &Logger{
		Logger: l.Logger.With("path", path),
	}
}

// WithCount adds a count field to the logger.
func (l *Logger) WithCount(count int) *Logger {
	return &Logger{
		Logger: l.Logger.With("count", count),
	}
}

// LogFilter logs a filter or exclude operation.
func (l *Logger) LogFilter(ctx context.Context, op string, queries, in, out int) {
	l.DebugContext(ctx, op+" completed",
		"queries", queries,
		"in", in,
		"out", out,
	)
}

// LogOrder logs an order operation.
func (l *Logger) LogOrder(ctx context.Context, fields []string, count int) {
	l.DebugContext(ctx, "order completed",
		"fields", fields,
		"count", count,
	)
}

// LogAggregate logs an aggregate operation over n values.
func (l *Logger) LogAggregate(ctx context.Context, op, path string, n int) {
	l.DebugContext(ctx, "aggregate completed",
		"op", op,
		"path", path,
		"values", n,
	)
}

// LogDistinct logs a distinct operation.
func (l *Logger) LogDistinct(ctx context.Context, fields []string, in, out int) {
	l.DebugContext(ctx, "distinct completed",
		"fields", fields,
		"in", in,
		"out", out,
	)
}

// LogInvalidTarget logs a query clause whose target could not be converted.
func (l *Logger) LogInvalidTarget(ctx context.Context, path string, err error) {
	l.DebugContext(ctx, "query target ignored",
		"path", path,
		"error", err,
	)
}

// LogLoad logs a load operation.
func (l *Logger) LogLoad(ctx context.Context, count int, err error) {
	if err != nil {
		l.WarnContext(ctx, "load failed",
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "load completed",
			"count", count,
		)
	}
}

// LogDump logs a dump operation.
func (l *Logger) LogDump(ctx context.Context, count, bytes int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "dump failed",
			"count", count,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "dump completed",
			"count", count,
			"bytes", bytes,
		)
	}
}
