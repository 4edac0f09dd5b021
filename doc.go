// Package emit implements a typed in-process publish/subscribe core: a
// per-event listener registry driven by a pluggable invocation strategy that
// decides how listeners are run and how their results are reported back to
// the caller.
//
// An emitter is typed once, with an event key type, an argument type and a
// listener result type. Listeners are registered with On (persistent) or
// Once (single-shot, unregisters itself on its first invocation) and are
// always invoked in registration order.
//
//	em := emit.NewDefault[string, int, int]()
//
//	em.On("tick", emit.Sync(func(n int) (int, error) {
//		return n * 2, nil
//	}))
//
//	em.Once("tick", emit.Async(func(n int) (int, error) {
//		return slowSquare(n)
//	}))
//
//	// Fire-and-forget, synchronous:
//	if err := em.Emit.Emit("tick", 21); err != nil {
//		// a listener failed while running
//	}
//
//	// Gather every listener's value, in registration order:
//	vals, err := em.Emit.AwaitAll(ctx, "tick", 21)
//
// Four strategies are available. IgnoreEach runs every listener in order and
// discards their results without awaiting them. AwaitEach waits for each
// listener's result to settle before invoking the next one. AwaitAll starts
// every listener first, then gathers their values and fails on the first
// rejection. AwaitAllSettled starts every listener and reports a per-listener
// Outcome instead of failing the aggregate. NewDefault binds the composite
// Dispatch strategy exposing all four over one registry; the New* dedicated
// constructors bind exactly one, so the emitter's type states its semantics:
//
//	gather := emit.NewAwaitingAll[string, int, int]()
//	gather.On("tick", emit.Sync(double))
//	vals, err := gather.Emit(ctx, "tick", 21)
//
// The strategy is produced by a factory over the emitter's registry, which is
// also the extension point: any func(*Registry) S can be handed to New to
// bind a custom aggregation policy to a fresh registry.
package emit
