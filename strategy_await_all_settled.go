package emit

import (
	"context"
)

// AwaitAllSettled emits an event eagerly, like AwaitAll, but reports a
// per-listener Outcome instead of failing the aggregate: rejections are
// captured in the outcome slice, ordered by registration, and never turn into
// an aggregate error. A synchronous failure during the start phase still
// propagates immediately, uncaptured, and the listeners after it are never
// started.
type AwaitAllSettled[K comparable, A, R any] func(ctx context.Context, event K, args A) ([]Outcome[R], error)

// AwaitingAllSettled builds the settle-all strategy over reg.
func AwaitingAllSettled[K comparable, A, R any](reg *Registry[K, A, R]) AwaitAllSettled[K, A, R] {
	return func(ctx context.Context, event K, args A) ([]Outcome[R], error) {
		pending, err := startAll(reg, event, args)
		if err != nil {
			return nil, err
		}

		outcomes := make([]Outcome[R], len(pending))
		for i, res := range pending {
			val, err := res.Wait(ctx)
			if err != nil {
				outcomes[i] = Rejected[R](err)
				continue
			}
			outcomes[i] = Fulfilled(val)
		}
		return outcomes, nil
	}
}
