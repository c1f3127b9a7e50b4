package observability

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// tracer is the scref tracer instance.
// Uses the global OTel tracer provider.
var tracer = otel.Tracer("scref")

// SpanManager handles trace span lifecycle.
// Use NewSpanManager() for OTel tracing or NoopSpanManager{} when disabled.
type SpanManager interface {
	// StartNotifySpan starts a span for a notification sweep.
	StartNotifySpan(ctx context.Context, bound int) (context.Context, trace.Span)

	// StartRegisterSpan starts a span for a registration attempt.
	StartRegisterSpan(ctx context.Context) (context.Context, trace.Span)

	// EndSpanWithError completes a span, optionally recording an error.
	EndSpanWithError(span trace.Span, err error)

	// AddSpanEvent adds an event to the current span in context.
	AddSpanEvent(ctx context.Context, name string, attrs ...attribute.KeyValue)
}

// otelSpanManager implements SpanManager using OpenTelemetry.
type otelSpanManager struct{}

// NewSpanManager returns a SpanManager that uses OpenTelemetry.
//
// The span manager uses the global OTel tracer provider. Configure the
// provider before calling this function:
//
//	import "go.opentelemetry.io/otel"
//	otel.SetTracerProvider(yourProvider)
func NewSpanManager() SpanManager {
	return &otelSpanManager{}
}

// StartNotifySpan starts a span for a notification sweep.
func (m *otelSpanManager) StartNotifySpan(ctx context.Context, bound int) (context.Context, trace.Span) {
	return tracer.Start(ctx, "scref.notify",
		trace.WithAttributes(
			attribute.Int("registry.bound", bound),
		),
		trace.WithSpanKind(trace.SpanKindInternal),
	)
}

// StartRegisterSpan starts a span for a registration attempt.
func (m *otelSpanManager) StartRegisterSpan(ctx context.Context) (context.Context, trace.Span) {
	return tracer.Start(ctx, "scref.register",
		trace.WithSpanKind(trace.SpanKindInternal),
	)
}

// EndSpanWithError completes a span, optionally recording an error.
func (m *otelSpanManager) EndSpanWithError(span trace.Span, err error) {
	if span == nil {
		return
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}

// AddSpanEvent adds an event to the current span.
func (m *otelSpanManager) AddSpanEvent(ctx context.Context, name string, attrs ...attribute.KeyValue) {
	span := trace.SpanFromContext(ctx)
	if span == nil || !span.IsRecording() {
		return
	}
	span.AddEvent(name, trace.WithAttributes(attrs...))
}
