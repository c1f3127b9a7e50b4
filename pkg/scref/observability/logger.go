// Package observability provides logging, metrics, and tracing helpers
// for scref registries: structured logging via slog, metrics and
// tracing via OpenTelemetry.
//
// All features are opt-in and have no-op implementations when disabled.
package observability

import (
	"log/slog"
	"time"
)

// EnrichLogger adds registry context to a logger.
// Returns a new logger with slot and guard_id fields.
func EnrichLogger(logger *slog.Logger, slot int, guardID string) *slog.Logger {
	if logger == nil {
		return nil
	}
	return logger.With(
		slog.Int("slot", slot),
		slog.String("guard_id", guardID),
	)
}

// LogRegister logs a successful slot registration.
func LogRegister(logger *slog.Logger, slot int, guardID string) {
	if logger == nil {
		return
	}
	logger.Debug("capability registered",
		slog.Int("slot", slot),
		slog.String("guard_id", guardID),
	)
}

// LogRelease logs a guard release freeing a slot.
func LogRelease(logger *slog.Logger, slot int, guardID string) {
	if logger == nil {
		return
	}
	logger.Debug("capability released",
		slog.Int("slot", slot),
		slog.String("guard_id", guardID),
	)
}

// LogRegistryFull logs a rejected registration.
func LogRegistryFull(logger *slog.Logger, capacity int) {
	if logger == nil {
		return
	}
	logger.Warn("registry full",
		slog.Int("capacity", capacity),
	)
}

// LogNotifyComplete logs a finished notification sweep.
func LogNotifyComplete(logger *slog.Logger, delivered int, durationMs float64) {
	if logger == nil {
		return
	}
	logger.Debug("notify completed",
		slog.Int("delivered", delivered),
		slog.Float64("duration_ms", durationMs),
	)
}

// LogNotifyError logs a capability failure during a sweep.
func LogNotifyError(logger *slog.Logger, slot int, err error) {
	if logger == nil {
		return
	}
	logger.Error("capability failed",
		slog.Int("slot", slot),
		slog.String("error", err.Error()),
	)
}

// LogJournalError logs a journal append failure (non-fatal).
func LogJournalError(logger *slog.Logger, op string, err error) {
	if logger == nil {
		return
	}
	logger.Warn("journal append failed",
		slog.String("operation", op),
		slog.String("error", err.Error()),
	)
}

// TimedOperation measures the duration of an operation.
// Returns a function that, when called, returns the elapsed time in
// milliseconds.
//
// Example:
//
//	done := TimedOperation()
//	// ... do work ...
//	durationMs := done()
func TimedOperation() func() float64 {
	start := time.Now()
	return func() float64 {
		return float64(time.Since(start).Milliseconds())
	}
}
