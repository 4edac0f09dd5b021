package emit

import (
	"context"
)

// Dispatch bundles all four invocation strategies over one registry, so a
// single emitter can be driven with any of the four semantics per call site.
// Emit is the primary operation and behaves exactly like the dedicated
// ignore-each strategy; the other three are bound to the same registry.
type Dispatch[K comparable, A, R any] struct {
	ignore     IgnoreEach[K, A]
	each       AwaitEach[K, A]
	all        AwaitAll[K, A, R]
	allSettled AwaitAllSettled[K, A, R]
}

// Dispatching builds the composite strategy over reg. It is the strategy
// NewDefault binds.
func Dispatching[K comparable, A, R any](reg *Registry[K, A, R]) *Dispatch[K, A, R] {
	return &Dispatch[K, A, R]{
		ignore:     IgnoringEach(reg),
		each:       AwaitingEach(reg),
		all:        AwaitingAll(reg),
		allSettled: AwaitingAllSettled(reg),
	}
}

// Emit invokes every listener synchronously with ignore-each semantics.
func (d *Dispatch[K, A, R]) Emit(event K, args A) error {
	return d.ignore(event, args)
}

// AwaitEach invokes the listeners sequentially, settling each result before
// invoking the next listener.
func (d *Dispatch[K, A, R]) AwaitEach(ctx context.Context, event K, args A) error {
	return d.each(ctx, event, args)
}

// AwaitAll starts every listener, then gathers their values in registration
// order, failing on the first rejection.
func (d *Dispatch[K, A, R]) AwaitAll(ctx context.Context, event K, args A) ([]R, error) {
	return d.all(ctx, event, args)
}

// AwaitAllSettled starts every listener and reports a per-listener Outcome in
// registration order.
func (d *Dispatch[K, A, R]) AwaitAllSettled(ctx context.Context, event K, args A) ([]Outcome[R], error) {
	return d.allSettled(ctx, event, args)
}
