package emit

type (
	// Handler reacts to one emission of its event. The error return reports a
	// failure raised while the handler itself was running; the Result carries
	// its deferred value, which may still reject later. The two failure
	// channels are kept apart because the strategies treat them differently.
	Handler[A, R any] func(args A) (Result[R], error)
)

// Sync adapts a plain function into a Handler whose outcome is known by the
// time it returns. An error from fn surfaces on the immediate channel.
func Sync[A, R any](fn func(args A) (R, error)) Handler[A, R] {
	return func(args A) (Result[R], error) {
		val, err := fn(args)
		if err != nil {
			return nil, err
		}
		return Done(val), nil
	}
}

// Async adapts a plain function into a Handler that runs fn on its own
// goroutine. Errors and panics from fn surface as rejections of the returned
// Result.
func Async[A, R any](fn func(args A) (R, error)) Handler[A, R] {
	return func(args A) (Result[R], error) {
		return Go(func() (R, error) {
			return fn(args)
		}), nil
	}
}
