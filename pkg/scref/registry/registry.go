// Package registry provides fixed-capacity publish/notify fan-out
// built on scref cells.
//
// A Registry owns N cells, N fixed at construction. Register binds a
// capability into the first empty slot in ascending index order and
// returns the guard governing the subscription; a subscriber stays
// registered exactly as long as it keeps its guard alive. Releasing
// the guard unsubscribes immediately and synchronously, freeing the
// slot for reuse. Notify invokes every bound capability in ascending
// slot order.
//
// Like the cells underneath it, Registry is NOT safe for concurrent
// use; callers that share a registry across goroutines must supply
// their own locking. Journal stores attached via WithJournal are safe
// for concurrent use on their own.
package registry

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/randalmurphal/scref/pkg/scref"
	"github.com/randalmurphal/scref/pkg/scref/config"
	"github.com/randalmurphal/scref/pkg/scref/journal"
	"github.com/randalmurphal/scref/pkg/scref/observability"
)

// DefaultCapacity is used by NewFromConfig when no "capacity" key is
// present.
const DefaultCapacity = 16

// Registry is a fixed-capacity collection of cells used for fan-out
// notification of M-typed messages.
type Registry[M any] struct {
	cells    []*scref.Cell[Capability[M]]
	settings settings
}

// New creates a registry with the given number of slots, all empty.
// The capacity never changes after construction.
func New[M any](capacity int, opts ...Option) (*Registry[M], error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCapacity, capacity)
	}

	s := defaultSettings()
	for _, opt := range opts {
		opt(&s)
	}

	cells := make([]*scref.Cell[Capability[M]], capacity)
	for i := range cells {
		cells[i] = scref.NewCell[Capability[M]]()
	}

	return &Registry[M]{cells: cells, settings: s}, nil
}

// NewFromConfig creates a registry configured from a loaded config
// map. The "capacity" key sets the slot count (DefaultCapacity when
// absent); "metrics" and "tracing" toggle the respective recorders.
// Explicit opts are applied last and win over config-derived ones.
func NewFromConfig[M any](cfg config.Config, opts ...Option) (*Registry[M], error) {
	capacity := cfg.Int("capacity", DefaultCapacity)
	all := append(OptionsFromConfig(cfg), opts...)
	return New[M](capacity, all...)
}

// Register binds a capability into the first empty slot, scanning in
// ascending index order, and returns the guard governing the
// subscription. Releasing the guard unsubscribes and frees the slot.
//
// Returns ErrFull when every slot is bound. This is recoverable:
// callers may retry after any outstanding guard is released.
func (r *Registry[M]) Register(capability Capability[M]) (*scref.Guard, error) {
	if capability == nil {
		return nil, ErrNilCapability
	}

	ctx, span := r.settings.spans.StartRegisterSpan(context.Background())

	for i, cell := range r.cells {
		if cell.IsBound() {
			continue
		}

		guard, err := cell.Bind(capability)
		if err != nil {
			// The slot reported empty; a bind failure here means the
			// single-threaded contract was violated by the caller.
			return nil, err
		}

		slot := i
		guardID := guard.ID()
		guard.OnRelease(func() {
			observability.LogRelease(r.settings.logger, slot, guardID)
			r.settings.metrics.RecordRelease(context.Background(), slot)
			r.appendJournal(context.Background(), journal.OpRelease, slot, guardID, "")
		})

		observability.LogRegister(r.settings.logger, slot, guardID)
		r.settings.metrics.RecordRegister(ctx, slot)
		r.appendJournal(ctx, journal.OpRegister, slot, guardID, "")
		r.settings.spans.AddSpanEvent(ctx, "slot.bound", attribute.Int("slot", slot))
		r.settings.spans.EndSpanWithError(span, nil)

		return guard, nil
	}

	observability.LogRegistryFull(r.settings.logger, len(r.cells))
	r.settings.metrics.RecordRegisterRejected(ctx)
	r.appendJournal(ctx, journal.OpReject, -1, "", "")
	r.settings.spans.EndSpanWithError(span, ErrFull)

	return nil, ErrFull
}

// Notify invokes the capability of every currently bound slot with
// msg, in ascending slot index order, each exactly once. Empty slots
// are skipped. No result is aggregated: capability errors go to the
// OnError hook and the logger, and the sweep always visits every
// bound slot.
func (r *Registry[M]) Notify(ctx context.Context, msg M) {
	ctx, span := r.settings.spans.StartNotifySpan(ctx, r.Bound())
	done := observability.TimedOperation()

	delivered := 0
	errCount := 0
	for i, cell := range r.cells {
		slot := i
		cell.With(func(capability Capability[M]) {
			delivered++
			if err := capability.Notify(ctx, msg); err != nil {
				errCount++
				observability.LogNotifyError(r.settings.logger, slot, err)
				if r.settings.onError != nil {
					r.settings.onError(slot, err)
				}
			}
		})
	}

	durationMs := done()
	observability.LogNotifyComplete(r.settings.logger, delivered, durationMs)
	r.settings.metrics.RecordNotify(ctx, delivered, durationFromMs(durationMs), errCount)
	r.appendJournal(ctx, journal.OpNotify, -1, "", fmt.Sprintf("delivered=%d errors=%d", delivered, errCount))

	r.settings.spans.EndSpanWithError(span, nil)
}

// Capacity returns the fixed number of slots.
func (r *Registry[M]) Capacity() int {
	return len(r.cells)
}

// Bound returns the number of currently bound slots.
func (r *Registry[M]) Bound() int {
	n := 0
	for _, cell := range r.cells {
		if cell.IsBound() {
			n++
		}
	}
	return n
}

// durationFromMs converts a TimedOperation result back to a Duration
// for the metrics recorder.
func durationFromMs(ms float64) time.Duration {
	return time.Duration(ms * float64(time.Millisecond))
}

// appendJournal records a lifecycle event, best effort.
func (r *Registry[M]) appendJournal(ctx context.Context, op journal.Op, slot int, guardID, detail string) {
	if r.settings.journal == nil {
		return
	}
	if err := r.settings.journal.Append(ctx, journal.NewEntry(op, slot, guardID, detail)); err != nil {
		observability.LogJournalError(r.settings.logger, string(op), err)
	}
}
