package circuitbreaker

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func Test_circuitBreaker_Call(t *testing.T) {
	t.Parallel()
	okFn := func() error { return nil }
	errBroker := errors.New("broker down")
	failFn := func() error { return errBroker }

	clock := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	cb := New(10, time.Second, 0.3, 2).(*circuitBreaker)
	cb.now = func() time.Time { return clock }

	for i := 0; i < 20; i++ {
		require.NoError(t, cb.Call(okFn))
	}
	require.Equal(t, Closed, cb.State())

	for i := 0; i < 3; i++ {
		require.ErrorIs(t, cb.Call(failFn), errBroker)
	}
	require.Equal(t, Open, cb.State())
	require.ErrorIs(t, cb.Call(okFn), ErrOpen)

	clock = clock.Add(2 * time.Second)
	require.NoError(t, cb.Call(okFn))
	require.Equal(t, HalfOpen, cb.State())
	require.NoError(t, cb.Call(okFn))
	require.Equal(t, Closed, cb.State())

	for i := 0; i < 3; i++ {
		_ = cb.Call(failFn)
	}
	require.Equal(t, Open, cb.State())
	clock = clock.Add(2 * time.Second)
	require.ErrorIs(t, cb.Call(failFn), errBroker)
	require.Equal(t, Open, cb.State())

	cb.Reset()
	require.Equal(t, Closed, cb.State())
}
