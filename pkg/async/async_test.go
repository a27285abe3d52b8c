package async_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/streamhub/pkg/async"
)

func TestAsync(t *testing.T) {
	t.Parallel()

	t.Run("returns the computed value", func(t *testing.T) {
		t.Parallel()

		future := async.Async(context.Background(), 21, func(_ context.Context, v int) (int, error) {
			return v * 2, nil
		})

		got, err := future.Await()
		require.NoError(t, err)
		assert.Equal(t, 42, got)
	})

	t.Run("propagates the computation error", func(t *testing.T) {
		t.Parallel()

		boom := errors.New("boom")
		future := async.Async(context.Background(), 0, func(_ context.Context, _ int) (int, error) {
			return 0, boom
		})

		_, err := future.Await()
		require.ErrorIs(t, err, boom)
	})

	t.Run("pre-cancelled context skips the work", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		ran := false
		future := async.Async(ctx, 0, func(_ context.Context, _ int) (int, error) {
			ran = true
			return 0, nil
		})

		_, err := future.Await()
		require.ErrorIs(t, err, context.Canceled)
		assert.False(t, ran)
	})

	t.Run("await with timeout returns ErrTimeout but keeps the future usable", func(t *testing.T) {
		t.Parallel()

		release := make(chan struct{})
		future := async.Async(context.Background(), 7, func(_ context.Context, v int) (int, error) {
			<-release
			return v, nil
		})

		_, err := future.AwaitWithTimeout(10 * time.Millisecond)
		require.ErrorIs(t, err, async.ErrTimeout)
		assert.False(t, future.IsComplete())

		close(release)
		got, err := future.Await()
		require.NoError(t, err)
		assert.Equal(t, 7, got)
		assert.True(t, future.IsComplete())
	})
}

func TestWaitAll(t *testing.T) {
	t.Parallel()

	futures := make([]*async.Future[int], 3)
	for i := range futures {
		futures[i] = async.Async(context.Background(), i, func(_ context.Context, v int) (int, error) {
			return v * v, nil
		})
	}

	results, err := async.WaitAll(futures...)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 4}, results)
}

func TestWaitAny(t *testing.T) {
	t.Parallel()

	t.Run("returns the first completion", func(t *testing.T) {
		t.Parallel()

		slow := async.Async(context.Background(), 0, func(_ context.Context, _ int) (int, error) {
			time.Sleep(200 * time.Millisecond)
			return 1, nil
		})
		fast := async.Async(context.Background(), 0, func(_ context.Context, _ int) (int, error) {
			return 2, nil
		})

		index, value, err := async.WaitAny(slow, fast)
		require.NoError(t, err)
		assert.Equal(t, 1, index)
		assert.Equal(t, 2, value)
	})

	t.Run("no futures", func(t *testing.T) {
		t.Parallel()

		index, _, err := async.WaitAny[int]()
		require.ErrorIs(t, err, async.ErrNoFutures)
		assert.Equal(t, -1, index)
	})
}
