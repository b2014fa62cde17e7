package logger

import (
	"log/slog"
	"time"
)

// slowCommandThreshold flags handlers that finished but took long enough
// to stand out in the command lane.
const slowCommandThreshold = 2 * time.Second

// LogCommand records a finished command or component interaction on the
// cmd lane, picking the level from the outcome.
func LogCommand(name string, duration time.Duration, err error, attrs ...any) {
	base := append([]any{
		slog.String("type", "cmd"),
		slog.String("name", name),
		slog.Duration("took", duration),
	}, attrs...)

	switch {
	case err != nil:
		slog.Error("Command failed", append(base,
			slog.Any("error", err),
			slog.String("status", "failed"),
		)...)
	case duration > slowCommandThreshold:
		slog.Warn("Command executed slowly", append(base,
			slog.String("status", "slow"),
		)...)
	default:
		slog.Info("Command completed", append(base,
			slog.String("status", "success"),
		)...)
	}
}

// LogQuery records one database round trip on the db lane. Successes go
// to debug so routine traffic stays out of the default output.
func LogQuery(operation, query string, duration time.Duration, err error) {
	attrs := []any{
		slog.String("type", "db"),
		slog.String("operation", operation),
		slog.String("query", query),
		slog.Duration("took", duration),
	}

	if err != nil {
		slog.Error("Query failed", append(attrs, slog.Any("error", err))...)
		return
	}

	slog.Debug("Query executed", attrs...)
}

// LogSystem records a lifecycle event on the sys lane.
func LogSystem(msg string, attrs ...any) {
	slog.Info(msg, append([]any{slog.String("type", "sys")}, attrs...)...)
}

// LogError records a failure outside a command or query context.
func LogError(msg string, err error, attrs ...any) {
	slog.Error(msg, append([]any{
		slog.String("type", "error"),
		slog.Any("error", err),
	}, attrs...)...)
}
