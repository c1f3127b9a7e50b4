package registry

import (
	"log/slog"

	"github.com/randalmurphal/scref/pkg/scref/config"
	"github.com/randalmurphal/scref/pkg/scref/journal"
	"github.com/randalmurphal/scref/pkg/scref/observability"
)

// settings holds configuration shared by all registry instances.
// It is deliberately not generic so options stay plain functions.
type settings struct {
	logger  *slog.Logger
	onError func(slot int, err error)
	metrics observability.MetricsRecorder
	spans   observability.SpanManager
	journal journal.Store
}

// defaultSettings returns the default registry configuration:
// no logging, no journal, no-op metrics and tracing.
func defaultSettings() settings {
	return settings{
		metrics: observability.NoopMetrics{},
		spans:   observability.NoopSpanManager{},
	}
}

// Option configures registry behavior.
type Option func(*settings)

// WithLogger enables structured logging of registrations, releases,
// and notification sweeps.
func WithLogger(logger *slog.Logger) Option {
	return func(s *settings) {
		s.logger = logger
	}
}

// WithOnError installs a hook called when a capability returns an
// error during a notification sweep. The sweep continues regardless.
func WithOnError(fn func(slot int, err error)) Option {
	return func(s *settings) {
		if fn != nil {
			s.onError = fn
		}
	}
}

// WithMetrics enables OpenTelemetry metrics.
// Uses the global OTel meter provider.
func WithMetrics(enabled bool) Option {
	return func(s *settings) {
		if enabled {
			s.metrics = observability.NewMetricsRecorder()
		} else {
			s.metrics = observability.NoopMetrics{}
		}
	}
}

// WithTracing enables OpenTelemetry tracing of notification sweeps and
// registration attempts. Uses the global OTel tracer provider.
func WithTracing(enabled bool) Option {
	return func(s *settings) {
		if enabled {
			s.spans = observability.NewSpanManager()
		} else {
			s.spans = observability.NoopSpanManager{}
		}
	}
}

// WithJournal records lifecycle events (register, release, reject,
// notify) to the given store. Journal failures are logged and never
// fail the operation being recorded.
func WithJournal(store journal.Store) Option {
	return func(s *settings) {
		s.journal = store
	}
}

// OptionsFromConfig derives options from a loaded configuration map.
//
// Recognized keys:
//   - "metrics" (bool): enable OTel metrics
//   - "tracing" (bool): enable OTel tracing
//
// Capacity is read separately by NewFromConfig under the "capacity"
// key.
func OptionsFromConfig(cfg config.Config) []Option {
	var opts []Option
	if cfg.Has("metrics") {
		opts = append(opts, WithMetrics(cfg.Bool("metrics", false)))
	}
	if cfg.Has("tracing") {
		opts = append(opts, WithTracing(cfg.Bool("tracing", false)))
	}
	return opts
}
