package ingest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/cenkalti/backoff/v4"
	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/streamhub/pkg/async"
)

// BatchWriter is the destination side of an ingestion run: one call writes
// one size-bounded batch of records to the named destination (a table, an
// index, a collection). Implementations map their store's admission-control
// pushback to ErrBatchRejected so the ingestor can retry with backoff.
type BatchWriter[T any] interface {
	WriteBatch(ctx context.Context, destination string, records []T) error
}

// BatchWriterFunc adapts a plain function to the BatchWriter interface.
type BatchWriterFunc[T any] func(ctx context.Context, destination string, records []T) error

// WriteBatch calls f.
func (f BatchWriterFunc[T]) WriteBatch(ctx context.Context, destination string, records []T) error {
	return f(ctx, destination, records)
}

// Ingestor loads a finite, known-size record set into a write-constrained
// destination as few, size-bounded batches — never one write per record and
// never one giant write. Rejected batches are retried with exponential
// backoff; batches already acknowledged are never re-sent.
type Ingestor[T any] struct {
	writer BatchWriter[T]
	opts   options
}

// New creates an ingestor for the given destination writer.
func New[T any](writer BatchWriter[T], opts ...Option) (*Ingestor[T], error) {
	if writer == nil {
		return nil, ErrNilWriter
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Ingestor[T]{writer: writer, opts: o}, nil
}

// Ingest writes records to destination in ceil(len/batchSize) batches and
// reports a per-batch result list. The returned Result is valid even when
// err is non-nil; err aggregates the batches that ultimately failed.
// A batch that fails permanently does not undo or block batches that
// already succeeded.
func (ing *Ingestor[T]) Ingest(ctx context.Context, destination string, records []T) (*Result, error) {
	if destination == "" {
		return nil, ErrEmptyDestination
	}

	total := len(records)
	numBatches := (total + ing.opts.batchSize - 1) / ing.opts.batchSize

	res := &Result{
		Destination: destination,
		Total:       total,
		Batches:     make([]BatchResult, numBatches),
	}
	if total == 0 {
		return res, nil
	}

	ing.opts.logger.InfoContext(ctx, "ingestion started",
		slog.String("destination", destination),
		slog.Int("records", total),
		slog.Int("batches", numBatches))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(ing.opts.concurrency)

	for i := 0; i < numBatches; i++ {
		start := i * ing.opts.batchSize
		end := min(start+ing.opts.batchSize, total)
		batch := records[start:end]

		br := &res.Batches[i]
		br.Index = i
		br.Offset = start
		br.Size = len(batch)

		g.Go(func() error {
			br.Attempts, br.Err = ing.writeBatch(gctx, destination, batch)
			if br.Err != nil {
				ing.opts.logger.WarnContext(gctx, "batch failed",
					slog.String("destination", destination),
					slog.Int("batch", br.Index),
					slog.Int("attempts", br.Attempts),
					slog.Any("error", br.Err))
			}
			// Batch errors are reported per batch, not used to abort siblings.
			return nil
		})
	}

	_ = g.Wait()

	ing.opts.logger.InfoContext(ctx, "ingestion finished",
		slog.String("destination", destination),
		slog.Int("written", res.Written()),
		slog.Int("failed", len(res.Failed())))

	return res, res.Err()
}

// IngestAsync runs Ingest in the background and returns a future for the
// aggregate result.
func (ing *Ingestor[T]) IngestAsync(ctx context.Context, destination string, records []T) *async.Future[*Result] {
	return async.Async(ctx, records, func(ctx context.Context, recs []T) (*Result, error) {
		return ing.Ingest(ctx, destination, recs)
	})
}

// writeBatch issues one batch write, retrying admission-control rejections
// with exponential backoff. Any other error is permanent for this batch.
func (ing *Ingestor[T]) writeBatch(ctx context.Context, destination string, batch []T) (int, error) {
	attempts := 0

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = ing.opts.initialBackoff
	bo.MaxInterval = ing.opts.maxBackoff
	bo.MaxElapsedTime = 0 // bounded by the retry count, not wall time

	op := func() error {
		attempts++
		err := ing.writer.WriteBatch(ctx, destination, batch)
		switch {
		case err == nil:
			return nil
		case errors.Is(err, ErrBatchRejected):
			return err
		default:
			return backoff.Permanent(err)
		}
	}

	err := backoff.Retry(op, backoff.WithContext(backoff.WithMaxRetries(bo, ing.opts.maxRetries), ctx))
	if err != nil {
		return attempts, fmt.Errorf("write batch to %q: %w", destination, err)
	}
	return attempts, nil
}
