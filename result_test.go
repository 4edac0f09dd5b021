package emit

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPromiseResolve(t *testing.T) {
	p := NewPromise[int]()
	p.Resolve(7)

	val, err := p.Wait(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 7, val)
}

func TestPromiseReject(t *testing.T) {
	errBoom := errors.New("boom")
	p := NewPromise[int]()
	p.Reject(errBoom)

	_, err := p.Wait(context.Background())
	require.ErrorIs(t, err, errBoom)
}

func TestPromiseSettlesOnlyOnce(t *testing.T) {
	p := NewPromise[int]()
	p.Resolve(1)
	p.Resolve(2)
	p.Reject(errors.New("late"))

	val, err := p.Wait(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, val)
}

func TestPromiseWaitHonorsContext(t *testing.T) {
	p := NewPromise[int]()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := p.Wait(ctx)
	require.ErrorIs(t, err, context.Canceled)
}

func TestDoneAndFail(t *testing.T) {
	val, err := Done(3).Wait(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, val)

	errBoom := errors.New("boom")
	_, err = Fail[int](errBoom).Wait(context.Background())
	require.ErrorIs(t, err, errBoom)
}

func TestGoSettlesWithValue(t *testing.T) {
	res := Go(func() (int, error) { return 5, nil })

	val, err := res.Wait(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 5, val)
}

func TestGoSettlesWithError(t *testing.T) {
	errBoom := errors.New("boom")
	res := Go(func() (int, error) { return 0, errBoom })

	_, err := res.Wait(context.Background())
	require.ErrorIs(t, err, errBoom)
}

func TestGoRecoversPanicIntoRejection(t *testing.T) {
	res := Go(func() (int, error) { panic("kaput") })

	_, err := res.Wait(context.Background())
	require.ErrorIs(t, err, ErrListenerPanic)
	assert.Contains(t, err.Error(), "kaput")
}
