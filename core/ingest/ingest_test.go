package ingest_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/streamhub/core/ingest"
)

// recordingWriter captures every batch it is handed and can be programmed
// to reject a batch (keyed by the value of its first record) a number of
// times before accepting it.
type recordingWriter struct {
	mu      sync.Mutex
	calls   []int // size of each batch, in call order
	rejects map[int]int
	fail    error
}

func (w *recordingWriter) WriteBatch(_ context.Context, _ string, records []int) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.calls = append(w.calls, len(records))

	if w.fail != nil {
		return w.fail
	}
	if len(records) > 0 && w.rejects[records[0]] > 0 {
		w.rejects[records[0]]--
		return fmt.Errorf("queue full: %w", ingest.ErrBatchRejected)
	}
	return nil
}

func (w *recordingWriter) callCount() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.calls)
}

func makeRecords(n int) []int {
	records := make([]int, n)
	for i := range records {
		records[i] = i
	}
	return records
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("rejects nil writer", func(t *testing.T) {
		t.Parallel()

		_, err := ingest.New[int](nil)
		require.ErrorIs(t, err, ingest.ErrNilWriter)
	})

	t.Run("accepts a function writer", func(t *testing.T) {
		t.Parallel()

		ing, err := ingest.New(ingest.BatchWriterFunc[int](
			func(context.Context, string, []int) error { return nil },
		))
		require.NoError(t, err)
		require.NotNil(t, ing)
	})
}

func TestIngestor_Ingest(t *testing.T) {
	t.Parallel()

	t.Run("2600 records with batch size 100 issue exactly 26 writes", func(t *testing.T) {
		t.Parallel()

		writer := &recordingWriter{}
		ing, err := ingest.New[int](writer, ingest.WithBatchSize(100))
		require.NoError(t, err)

		res, err := ing.Ingest(context.Background(), "events", makeRecords(2600))
		require.NoError(t, err)

		assert.Equal(t, 26, writer.callCount())
		assert.Len(t, res.Batches, 26)
		assert.Equal(t, 2600, res.Written())
		for _, b := range res.Batches {
			assert.Equal(t, 100, b.Size, "every write must be size-bounded, never per record")
			assert.Equal(t, 1, b.Attempts)
			assert.NoError(t, b.Err)
		}
	})

	t.Run("uneven tail batch keeps the remainder", func(t *testing.T) {
		t.Parallel()

		writer := &recordingWriter{}
		ing, err := ingest.New[int](writer, ingest.WithBatchSize(100))
		require.NoError(t, err)

		res, err := ing.Ingest(context.Background(), "events", makeRecords(250))
		require.NoError(t, err)

		require.Len(t, res.Batches, 3)
		assert.Equal(t, 100, res.Batches[0].Size)
		assert.Equal(t, 100, res.Batches[1].Size)
		assert.Equal(t, 50, res.Batches[2].Size)
		assert.Equal(t, 200, res.Batches[2].Offset)
	})

	t.Run("rejected batch is retried without re-sending acknowledged ones", func(t *testing.T) {
		t.Parallel()

		// The third batch (records starting at 200) is rejected twice
		// before being accepted.
		writer := &recordingWriter{rejects: map[int]int{200: 2}}
		ing, err := ingest.New[int](writer,
			ingest.WithBatchSize(100),
			ingest.WithInitialBackoff(time.Millisecond),
			ingest.WithMaxBackoff(2*time.Millisecond),
		)
		require.NoError(t, err)

		res, err := ing.Ingest(context.Background(), "events", makeRecords(500))
		require.NoError(t, err)

		// 5 batches + 2 extra attempts for the rejected one.
		assert.Equal(t, 7, writer.callCount())
		assert.Equal(t, 500, res.Written())
		assert.Equal(t, 3, res.Batches[2].Attempts)
		assert.Equal(t, 1, res.Batches[0].Attempts, "acknowledged batches must not be re-sent")
		assert.Equal(t, 1, res.Batches[4].Attempts)
	})

	t.Run("rejection past the retry budget surfaces per batch", func(t *testing.T) {
		t.Parallel()

		writer := &recordingWriter{rejects: map[int]int{0: 100}}
		ing, err := ingest.New[int](writer,
			ingest.WithBatchSize(100),
			ingest.WithMaxRetries(2),
			ingest.WithInitialBackoff(time.Millisecond),
		)
		require.NoError(t, err)

		res, err := ing.Ingest(context.Background(), "events", makeRecords(200))
		require.Error(t, err)
		require.ErrorIs(t, err, ingest.ErrBatchRejected)

		failed := res.Failed()
		require.Len(t, failed, 1)
		assert.Equal(t, 0, failed[0].Index)
		assert.Equal(t, 3, failed[0].Attempts) // initial try + 2 retries
		assert.ErrorIs(t, failed[0].Err, ingest.ErrBatchRejected)

		// The second batch is unaffected by its sibling's rejection.
		assert.NoError(t, res.Batches[1].Err)
		assert.Equal(t, 100, res.Written())
	})

	t.Run("non-rejection errors are permanent for the batch", func(t *testing.T) {
		t.Parallel()

		boom := errors.New("malformed records")
		writer := &recordingWriter{fail: boom}
		ing, err := ingest.New[int](writer, ingest.WithBatchSize(100))
		require.NoError(t, err)

		res, err := ing.Ingest(context.Background(), "events", makeRecords(100))
		require.ErrorIs(t, err, boom)
		require.Len(t, res.Failed(), 1)
		assert.Equal(t, 1, res.Failed()[0].Attempts, "permanent errors must not be retried")
	})

	t.Run("empty destination is rejected", func(t *testing.T) {
		t.Parallel()

		ing, err := ingest.New(ingest.BatchWriterFunc[int](
			func(context.Context, string, []int) error { return nil },
		))
		require.NoError(t, err)

		_, err = ing.Ingest(context.Background(), "", makeRecords(10))
		require.ErrorIs(t, err, ingest.ErrEmptyDestination)
	})

	t.Run("empty input produces an empty result without writes", func(t *testing.T) {
		t.Parallel()

		writer := &recordingWriter{}
		ing, err := ingest.New[int](writer)
		require.NoError(t, err)

		res, err := ing.Ingest(context.Background(), "events", nil)
		require.NoError(t, err)
		assert.Zero(t, writer.callCount())
		assert.Empty(t, res.Batches)
	})

	t.Run("bounded concurrency writes every batch once", func(t *testing.T) {
		t.Parallel()

		writer := &recordingWriter{}
		ing, err := ingest.New[int](writer,
			ingest.WithBatchSize(50),
			ingest.WithConcurrency(4),
		)
		require.NoError(t, err)

		res, err := ing.Ingest(context.Background(), "events", makeRecords(1000))
		require.NoError(t, err)
		assert.Equal(t, 20, writer.callCount())
		assert.Equal(t, 1000, res.Written())
	})
}

func TestIngestor_IngestAsync(t *testing.T) {
	t.Parallel()

	writer := &recordingWriter{}
	ing, err := ingest.New[int](writer, ingest.WithBatchSize(100))
	require.NoError(t, err)

	future := ing.IngestAsync(context.Background(), "events", makeRecords(300))
	res, err := future.Await()
	require.NoError(t, err)
	assert.Equal(t, 300, res.Written())
	assert.Equal(t, 3, writer.callCount())
}
