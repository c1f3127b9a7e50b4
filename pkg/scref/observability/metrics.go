package observability

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// MetricsRecorder records registry metrics.
// Use NewMetricsRecorder() for OTel metrics or NoopMetrics{} when disabled.
type MetricsRecorder interface {
	// RecordRegister records a successful registration into a slot.
	RecordRegister(ctx context.Context, slot int)

	// RecordRegisterRejected records a registration rejected for
	// capacity exhaustion.
	RecordRegisterRejected(ctx context.Context)

	// RecordRelease records a guard release freeing a slot.
	RecordRelease(ctx context.Context, slot int)

	// RecordNotify records a notification sweep with its delivery
	// count, duration, and number of failing capabilities.
	RecordNotify(ctx context.Context, delivered int, duration time.Duration, errCount int)
}

// otelMetrics implements MetricsRecorder using OpenTelemetry.
type otelMetrics struct {
	registrations metric.Int64Counter
	rejections    metric.Int64Counter
	releases      metric.Int64Counter
	deliveries    metric.Int64Counter
	notifyLatency metric.Float64Histogram
	notifyErrors  metric.Int64Counter
}

var (
	defaultMetrics     *otelMetrics
	defaultMetricsOnce sync.Once
	defaultMetricsErr  error
)

// getDefaultMetrics returns the default OTel metrics instance.
// Lazily initializes the metrics on first call.
func getDefaultMetrics() (*otelMetrics, error) {
	defaultMetricsOnce.Do(func() {
		defaultMetrics, defaultMetricsErr = newOtelMetrics()
	})
	return defaultMetrics, defaultMetricsErr
}

// newOtelMetrics creates a new OTel metrics instance.
func newOtelMetrics() (*otelMetrics, error) {
	meter := otel.Meter("scref")

	registrations, err := meter.Int64Counter("scref.registry.registrations",
		metric.WithDescription("Number of successful registrations"),
	)
	if err != nil {
		return nil, err
	}

	rejections, err := meter.Int64Counter("scref.registry.rejections",
		metric.WithDescription("Number of registrations rejected for capacity exhaustion"),
	)
	if err != nil {
		return nil, err
	}

	releases, err := meter.Int64Counter("scref.registry.releases",
		metric.WithDescription("Number of guard releases freeing a slot"),
	)
	if err != nil {
		return nil, err
	}

	deliveries, err := meter.Int64Counter("scref.notify.deliveries",
		metric.WithDescription("Number of capability deliveries across notification sweeps"),
	)
	if err != nil {
		return nil, err
	}

	notifyLatency, err := meter.Float64Histogram("scref.notify.latency_ms",
		metric.WithDescription("Notification sweep latency in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	notifyErrors, err := meter.Int64Counter("scref.notify.errors",
		metric.WithDescription("Number of capability errors during notification sweeps"),
	)
	if err != nil {
		return nil, err
	}

	return &otelMetrics{
		registrations: registrations,
		rejections:    rejections,
		releases:      releases,
		deliveries:    deliveries,
		notifyLatency: notifyLatency,
		notifyErrors:  notifyErrors,
	}, nil
}

// NewMetricsRecorder returns a MetricsRecorder that uses OpenTelemetry.
// If metrics initialization fails, returns a no-op recorder.
//
// The recorder uses the global OTel meter provider. Configure the
// provider before calling this function:
//
//	import "go.opentelemetry.io/otel"
//	otel.SetMeterProvider(yourProvider)
func NewMetricsRecorder() MetricsRecorder {
	m, err := getDefaultMetrics()
	if err != nil {
		slog.Warn("metrics initialization failed, using no-op recorder",
			slog.String("error", err.Error()))
		return NoopMetrics{}
	}
	return m
}

// RecordRegister records a successful registration.
func (m *otelMetrics) RecordRegister(ctx context.Context, slot int) {
	m.registrations.Add(ctx, 1, metric.WithAttributes(
		attribute.Int("slot", slot),
	))
}

// RecordRegisterRejected records a rejected registration.
func (m *otelMetrics) RecordRegisterRejected(ctx context.Context) {
	m.rejections.Add(ctx, 1)
}

// RecordRelease records a guard release.
func (m *otelMetrics) RecordRelease(ctx context.Context, slot int) {
	m.releases.Add(ctx, 1, metric.WithAttributes(
		attribute.Int("slot", slot),
	))
}

// RecordNotify records a notification sweep.
func (m *otelMetrics) RecordNotify(ctx context.Context, delivered int, duration time.Duration, errCount int) {
	m.deliveries.Add(ctx, int64(delivered))
	m.notifyLatency.Record(ctx, float64(duration.Microseconds())/1000.0)

	if errCount > 0 {
		m.notifyErrors.Add(ctx, int64(errCount))
	}
}
