package emit

// Sequence is a lazy, finite, non-restartable traversal over the listeners
// currently registered for one event. Each Next call is the only trigger for
// invoking the corresponding handler; nothing runs ahead of the consumer.
//
// The traversal reads the live listener list through a position cursor:
// entries appended mid-emission are picked up by the same traversal, and a
// once entry unregisters itself as part of producing its element, before the
// element becomes observable through Result. Handlers are invoked without the
// registry lock held, so a listener may register, remove or re-emit while the
// traversal is in flight.
type Sequence[K comparable, A, R any] struct {
	reg   *Registry[K, A, R]
	event K
	args  A
	pos   int
	spent bool
	res   Result[R]
	err   error
}

// Invocations returns the lazy invocation sequence for event with args. It is
// the single primitive every strategy consumes.
func (r *Registry[K, A, R]) Invocations(event K, args A) *Sequence[K, A, R] {
	return &Sequence[K, A, R]{reg: r, event: event, args: args}
}

// Next invokes the next registered listener and reports whether it produced
// an element. It returns false when the sequence is exhausted or when a
// listener failed synchronously; Err tells the two apart. After a failure the
// remaining listeners are never invoked.
func (s *Sequence[K, A, R]) Next() bool {
	if s.spent {
		return false
	}

	e, ok := s.reg.take(s.event, s.pos)
	if !ok {
		s.spent = true
		s.res = nil
		return false
	}
	if !e.once {
		// a removed once entry leaves its successor at the current position
		s.pos++
	}

	res, err := e.handler(s.args)
	if err != nil {
		s.spent = true
		s.res = nil
		s.err = err
		return false
	}
	if res == nil {
		// a listener with nothing to defer still yields a settled element
		var zero R
		res = Done(zero)
	}
	s.res = res
	return true
}

// Result returns the deferred result produced by the latest successful Next.
func (s *Sequence[K, A, R]) Result() Result[R] {
	return s.res
}

// Err returns the synchronous failure that terminated the traversal, if any.
func (s *Sequence[K, A, R]) Err() error {
	return s.err
}
