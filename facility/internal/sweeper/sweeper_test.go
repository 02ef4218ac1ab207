package sweeper

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNew_InvalidSchedule(t *testing.T) {
	t.Parallel()
	_, err := New("every now and then", time.UTC, func(context.Context) (int, int, error) {
		return 0, 0, nil
	}, zap.NewNop())
	require.Error(t, err)
}

func TestSweeper_Run(t *testing.T) {
	t.Parallel()
	var calls atomic.Int32
	s, err := New("@every 1h", time.UTC, func(ctx context.Context) (int, int, error) {
		_, ok := ctx.Deadline()
		require.True(t, ok)
		if calls.Add(1) == 2 {
			return 0, 0, errors.New("db down")
		}
		return 1, 2, nil
	}, zap.NewNop())
	require.NoError(t, err)

	s.Run()
	s.Run()
	require.EqualValues(t, 2, calls.Load())
}

func TestSweeper_StartStop(t *testing.T) {
	t.Parallel()
	fired := make(chan struct{}, 1)
	s, err := New("@every 1s", time.UTC, func(context.Context) (int, int, error) {
		select {
		case fired <- struct{}{}:
		default:
		}
		return 0, 0, nil
	}, zap.NewNop())
	require.NoError(t, err)

	s.Start()
	select {
	case <-fired:
	case <-time.After(3 * time.Second):
		t.Fatal("sweep did not fire")
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, s.Stop(ctx))
}
