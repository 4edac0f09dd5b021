package emit

// IgnoreEach emits an event fully synchronously: every listener is invoked in
// registration order and its result is discarded without being awaited. The
// first synchronous listener failure propagates to the caller and the
// listeners after it are never invoked.
type IgnoreEach[K comparable, A any] func(event K, args A) error

// IgnoringEach builds the ignore-each strategy over reg. It is also the
// primary operation of the composite Dispatch strategy.
func IgnoringEach[K comparable, A, R any](reg *Registry[K, A, R]) IgnoreEach[K, A] {
	return func(event K, args A) error {
		seq := reg.Invocations(event, args)
		for seq.Next() {
			// deferred results are dropped unawaited; their work keeps
			// running, only the synchronous failure channel matters here
		}
		return seq.Err()
	}
}
