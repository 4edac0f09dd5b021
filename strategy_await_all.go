package emit

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// AwaitAll emits an event eagerly: every listener is started before any
// result is awaited, then all results are gathered into a slice ordered by
// registration. The first rejection fails the aggregate; listeners already
// started still run to completion. A synchronous failure during the start
// phase propagates immediately, the listeners after it are never started and
// the aggregate machinery is bypassed.
type AwaitAll[K comparable, A, R any] func(ctx context.Context, event K, args A) ([]R, error)

// AwaitingAll builds the gather-all strategy over reg.
func AwaitingAll[K comparable, A, R any](reg *Registry[K, A, R]) AwaitAll[K, A, R] {
	return func(ctx context.Context, event K, args A) ([]R, error) {
		pending, err := startAll(reg, event, args)
		if err != nil {
			return nil, err
		}

		vals := make([]R, len(pending))
		grp, grpCtx := errgroup.WithContext(ctx)
		for i, res := range pending {
			i, res := i, res
			grp.Go(func() error {
				val, err := res.Wait(grpCtx)
				if err != nil {
					return err
				}
				vals[i] = val
				return nil
			})
		}
		if err := grp.Wait(); err != nil {
			return nil, err
		}
		return vals, nil
	}
}

// startAll drains the invocation sequence up front, starting every listener
// before anything is awaited.
func startAll[K comparable, A, R any](reg *Registry[K, A, R], event K, args A) ([]Result[R], error) {
	seq := reg.Invocations(event, args)

	var pending []Result[R]
	for seq.Next() {
		pending = append(pending, seq.Result())
	}
	if err := seq.Err(); err != nil {
		return nil, err
	}
	return pending, nil
}
