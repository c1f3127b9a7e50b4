package registry

import "context"

// Capability is the behavior invoked on a bound subscriber during a
// notification sweep. M is the message type fanned out by the
// registry.
//
// Implementations may be any type: a struct collecting messages, an
// adapter around a channel, or a plain function via CapabilityFunc.
// A returned error is reported to the registry's error hook and
// logger; it never stops the sweep.
type Capability[M any] interface {
	Notify(ctx context.Context, msg M) error
}

// CapabilityFunc adapts a function to the Capability interface.
type CapabilityFunc[M any] func(ctx context.Context, msg M) error

// Notify implements Capability.
func (f CapabilityFunc[M]) Notify(ctx context.Context, msg M) error {
	return f(ctx, msg)
}
