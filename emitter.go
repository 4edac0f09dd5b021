package emit

type (
	// Emitter composes one Registry with one bound strategy value; both are
	// created together and live together. On and Once mutate the registry,
	// Emit carries the emission semantics the emitter was built with.
	//
	// Emit is the strategy value itself, not a method: a callable func value
	// for the dedicated strategies, a *Dispatch for the composite one. It can
	// be captured and stored on its own, so a wrapper may re-expose On/Once
	// publicly while keeping emission private to its internals, without
	// rebinding or losing type information.
	Emitter[K comparable, A, R, S any] struct {
		registry *Registry[K, A, R]

		Emit S
	}
)

// New builds an emitter with a fresh registry bound to the strategy produced
// by factory. Any func over *Registry works as a factory, which is the hook
// for custom aggregation policies.
func New[K comparable, A, R, S any](
	factory func(*Registry[K, A, R]) S,
	opts ...Option,
) *Emitter[K, A, R, S] {
	reg := NewRegistry[K, A, R](opts...)
	return &Emitter[K, A, R, S]{
		registry: reg,
		Emit:     factory(reg),
	}
}

// On registers a persistent listener for the given event. Chainable.
func (e *Emitter[K, A, R, S]) On(event K, handler Handler[A, R]) *Emitter[K, A, R, S] {
	e.registry.Add(event, handler)
	return e
}

// Once registers a single-shot listener for the given event. Chainable.
func (e *Emitter[K, A, R, S]) Once(event K, handler Handler[A, R]) *Emitter[K, A, R, S] {
	e.registry.AddOnce(event, handler)
	return e
}

// Off unregisters the earliest matching listener for the given event.
// Chainable; a no-op when the handler was never registered.
func (e *Emitter[K, A, R, S]) Off(event K, handler Handler[A, R]) *Emitter[K, A, R, S] {
	e.registry.Remove(event, handler)
	return e
}

// RemoveAll drops every listener registered for the given event.
func (e *Emitter[K, A, R, S]) RemoveAll(event K) {
	e.registry.RemoveAll(event)
}

// Len returns the number of listeners currently registered for the given
// event.
func (e *Emitter[K, A, R, S]) Len(event K) int {
	return e.registry.Len(event)
}

// NewDefault builds an emitter bound to the composite Dispatch strategy:
// Emit.Emit runs ignore-each, with AwaitEach, AwaitAll and AwaitAllSettled
// available on the same registry.
func NewDefault[K comparable, A, R any](opts ...Option) *Emitter[K, A, R, *Dispatch[K, A, R]] {
	return New(Dispatching[K, A, R], opts...)
}

// NewIgnoringEach builds an emitter whose Emit supports only the ignore-each
// semantics.
func NewIgnoringEach[K comparable, A, R any](opts ...Option) *Emitter[K, A, R, IgnoreEach[K, A]] {
	return New(IgnoringEach[K, A, R], opts...)
}

// NewAwaitingEach builds an emitter whose Emit supports only the
// sequential-await semantics.
func NewAwaitingEach[K comparable, A, R any](opts ...Option) *Emitter[K, A, R, AwaitEach[K, A]] {
	return New(AwaitingEach[K, A, R], opts...)
}

// NewAwaitingAll builds an emitter whose Emit supports only the gather-all
// semantics.
func NewAwaitingAll[K comparable, A, R any](opts ...Option) *Emitter[K, A, R, AwaitAll[K, A, R]] {
	return New(AwaitingAll[K, A, R], opts...)
}

// NewAwaitingAllSettled builds an emitter whose Emit supports only the
// settle-all semantics.
func NewAwaitingAllSettled[K comparable, A, R any](opts ...Option) *Emitter[K, A, R, AwaitAllSettled[K, A, R]] {
	return New(AwaitingAllSettled[K, A, R], opts...)
}
