package emit

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAwaitAllSettledReportsPerListenerOutcomes(t *testing.T) {
	em := NewAwaitingAllSettled[string, int, int]()
	errBoom := errors.New("boom")

	em.On("calc", Sync(func(n int) (int, error) { return 1, nil }))
	em.On("calc", func(int) (Result[int], error) { return Fail[int](errBoom), nil })
	em.On("calc", Async(func(n int) (int, error) { return 3, nil }))

	outcomes, err := em.Emit(context.Background(), "calc", 0)
	require.NoError(t, err)
	require.Len(t, outcomes, 3)

	assert.True(t, outcomes[0].Status.IsFulfilled())
	assert.Equal(t, 1, outcomes[0].Value)

	assert.True(t, outcomes[1].Status.IsRejected())
	assert.ErrorIs(t, outcomes[1].Reason, errBoom)

	assert.True(t, outcomes[2].Status.IsFulfilled())
	assert.Equal(t, 3, outcomes[2].Value)
}

func TestAwaitAllSettledSynchronousFailureStillPropagates(t *testing.T) {
	em := NewAwaitingAllSettled[string, int, int]()
	errBoom := errors.New("boom")

	l1 := &spyListener[int, int]{}
	l3 := &spyListener[int, int]{}
	em.On("calc", l1.Handle)
	em.On("calc", func(int) (Result[int], error) { return nil, errBoom })
	em.On("calc", l3.Handle)

	outcomes, err := em.Emit(context.Background(), "calc", 0)
	require.ErrorIs(t, err, errBoom)
	assert.Nil(t, outcomes)
	assert.Equal(t, 1, l1.count())
	assert.Equal(t, 0, l3.count())
}

func TestAwaitAllSettledNeverFailsOnRejections(t *testing.T) {
	em := NewAwaitingAllSettled[string, int, int]()

	em.On("calc", func(int) (Result[int], error) { return Fail[int](errors.New("a")), nil })
	em.On("calc", func(int) (Result[int], error) { return Fail[int](errors.New("b")), nil })

	outcomes, err := em.Emit(context.Background(), "calc", 0)
	require.NoError(t, err)
	require.Len(t, outcomes, 2)
	assert.True(t, outcomes[0].Status.IsRejected())
	assert.True(t, outcomes[1].Status.IsRejected())
}

func TestOutcomeString(t *testing.T) {
	assert.Equal(t, "Outcome{status=fulfilled,value=7}", Fulfilled(7).String())
	assert.Equal(t, "Outcome{status=rejected,reason=boom}",
		Rejected[int](errors.New("boom")).String())
}
