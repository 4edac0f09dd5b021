package emit

import (
	"sync"

	"github.com/stretchr/testify/mock"
)

type mockListener[A, R any] struct {
	mock.Mock
}

func (m *mockListener[A, R]) Handle(args A) (Result[R], error) {
	ret := m.Called(args)
	res, _ := ret.Get(0).(Result[R])
	return res, ret.Error(1)
}

// spyListener records every invocation. Handle delegates to fn when set and
// otherwise fulfills immediately with the zero value.
type spyListener[A, R any] struct {
	mu    sync.Mutex
	calls []A
	fn    func(args A) (Result[R], error)
}

func (s *spyListener[A, R]) Handle(args A) (Result[R], error) {
	s.mu.Lock()
	s.calls = append(s.calls, args)
	s.mu.Unlock()

	if s.fn != nil {
		return s.fn(args)
	}
	var zero R
	return Done(zero), nil
}

func (s *spyListener[A, R]) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.calls)
}

func (s *spyListener[A, R]) seen() []A {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]A, len(s.calls))
	copy(out, s.calls)
	return out
}
