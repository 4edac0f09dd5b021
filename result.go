package emit

import (
	"context"
	"sync"

	"github.com/pkg/errors"
)

type (
	// Result is the deferred outcome of a single listener invocation. Wait
	// blocks until the result settles or ctx is done. Abandoning the wait
	// never stops the listener behind it; its work runs to completion and the
	// result is dropped.
	Result[R any] interface {
		Wait(ctx context.Context) (R, error)
	}

	settled[R any] struct {
		val R
		err error
	}

	// Promise is a single-assignment Result that settles when Resolve or
	// Reject is called. Settling an already settled Promise is a no-op.
	Promise[R any] struct {
		once sync.Once
		done chan struct{}
		val  R
		err  error
	}
)

func (s settled[R]) Wait(_ context.Context) (R, error) {
	return s.val, s.err
}

// Done returns an already fulfilled Result carrying val.
func Done[R any](val R) Result[R] {
	return settled[R]{val: val}
}

// Fail returns an already rejected Result carrying err.
func Fail[R any](err error) Result[R] {
	return settled[R]{err: err}
}

// NewPromise returns an unsettled Promise.
func NewPromise[R any]() *Promise[R] {
	return &Promise[R]{done: make(chan struct{})}
}

// Resolve fulfills the promise with val.
func (p *Promise[R]) Resolve(val R) {
	p.once.Do(func() {
		p.val = val
		close(p.done)
	})
}

// Reject rejects the promise with err.
func (p *Promise[R]) Reject(err error) {
	p.once.Do(func() {
		p.err = err
		close(p.done)
	})
}

func (p *Promise[R]) Wait(ctx context.Context) (R, error) {
	select {
	case <-p.done:
		return p.val, p.err
	case <-ctx.Done():
		var zero R
		return zero, errors.Wrap(ctx.Err(), "awaiting result")
	}
}

// Go runs fn on its own goroutine and returns the Result it will settle. A
// panic inside fn surfaces as a rejection wrapping ErrListenerPanic instead
// of crashing the process from a detached goroutine.
func Go[R any](fn func() (R, error)) Result[R] {
	p := NewPromise[R]()
	go func() {
		defer func() {
			if rec := recover(); rec != nil {
				p.Reject(errors.Wrapf(ErrListenerPanic, "%v", rec))
			}
		}()
		val, err := fn()
		if err != nil {
			p.Reject(err)
			return
		}
		p.Resolve(val)
	}()
	return p
}
