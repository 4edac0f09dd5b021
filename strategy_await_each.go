package emit

import (
	"context"
)

// AwaitEach emits an event sequentially: a listener is not invoked until the
// previous listener's result has settled. A synchronous failure or a
// rejection from listener k aborts the traversal, so listeners k+1..n are
// never invoked and the failure propagates to the caller.
type AwaitEach[K comparable, A any] func(ctx context.Context, event K, args A) error

// AwaitingEach builds the sequential-await strategy over reg.
func AwaitingEach[K comparable, A, R any](reg *Registry[K, A, R]) AwaitEach[K, A] {
	return func(ctx context.Context, event K, args A) error {
		seq := reg.Invocations(event, args)
		for seq.Next() {
			if _, err := seq.Result().Wait(ctx); err != nil {
				return err
			}
		}
		return seq.Err()
	}
}
