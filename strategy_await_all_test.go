package emit

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAwaitAllGathersInRegistrationOrder(t *testing.T) {
	em := NewAwaitingAll[string, int, int]()

	em.On("calc", Sync(func(n int) (int, error) { return 1, nil }))
	em.On("calc", Async(func(n int) (int, error) { return 2, nil }))
	em.On("calc", Sync(func(n int) (int, error) { return 3, nil }))

	vals, err := em.Emit(context.Background(), "calc", 0)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, vals)
}

func TestAwaitAllRejectionFailsAggregateAfterStartingAll(t *testing.T) {
	em := NewAwaitingAll[string, int, int]()
	errBoom := errors.New("boom")

	l1 := &spyListener[int, int]{fn: func(int) (Result[int], error) { return Done(1), nil }}
	l2 := &spyListener[int, int]{fn: func(int) (Result[int], error) { return Fail[int](errBoom), nil }}
	l3 := &spyListener[int, int]{fn: func(int) (Result[int], error) { return Done(3), nil }}
	em.On("calc", l1.Handle).On("calc", l2.Handle).On("calc", l3.Handle)

	vals, err := em.Emit(context.Background(), "calc", 0)
	require.ErrorIs(t, err, errBoom)
	assert.Nil(t, vals)

	// every listener was started before the rejection was observed
	assert.Equal(t, 1, l1.count())
	assert.Equal(t, 1, l2.count())
	assert.Equal(t, 1, l3.count())
}

func TestAwaitAllSynchronousFailureSkipsRemaining(t *testing.T) {
	em := NewAwaitingAll[string, int, int]()
	errBoom := errors.New("boom")

	l1 := &spyListener[int, int]{}
	l3 := &spyListener[int, int]{}
	em.On("calc", l1.Handle)
	em.On("calc", func(int) (Result[int], error) { return nil, errBoom })
	em.On("calc", l3.Handle)

	vals, err := em.Emit(context.Background(), "calc", 0)
	require.ErrorIs(t, err, errBoom)
	assert.Nil(t, vals)
	assert.Equal(t, 1, l1.count())
	assert.Equal(t, 0, l3.count())
}

func TestAwaitAllNoListeners(t *testing.T) {
	em := NewAwaitingAll[string, int, int]()

	vals, err := em.Emit(context.Background(), "calc", 0)
	require.NoError(t, err)
	assert.Empty(t, vals)
}
