package ingest

import (
	"io"
	"log/slog"
	"time"
)

const (
	// DefaultBatchSize bounds each write issued to the destination.
	DefaultBatchSize = 100

	// DefaultMaxRetries is how many times a rejected batch is retried
	// before its rejection is surfaced in the result.
	DefaultMaxRetries = 5
)

type options struct {
	batchSize      int
	maxRetries     uint64
	initialBackoff time.Duration
	maxBackoff     time.Duration
	concurrency    int
	logger         *slog.Logger
}

// Option configures an Ingestor.
type Option func(*options)

// WithBatchSize sets the maximum number of records per write.
// Default is DefaultBatchSize. Zero or negative values are ignored.
func WithBatchSize(size int) Option {
	return func(o *options) {
		if size > 0 {
			o.batchSize = size
		}
	}
}

// WithMaxRetries sets how many times a rejected batch is retried.
// Zero disables retries; rejections surface immediately.
func WithMaxRetries(n int) Option {
	return func(o *options) {
		if n >= 0 {
			o.maxRetries = uint64(n)
		}
	}
}

// WithInitialBackoff sets the first retry delay after a rejection.
// Default is 100ms, growing exponentially up to the maximum backoff.
func WithInitialBackoff(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.initialBackoff = d
		}
	}
}

// WithMaxBackoff caps the retry delay. Default is 5s.
func WithMaxBackoff(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.maxBackoff = d
		}
	}
}

// WithConcurrency allows up to n batches in flight at once. The default is
// 1 (strictly sequential), the safest setting against a destination with a
// bounded admission queue.
func WithConcurrency(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.concurrency = n
		}
	}
}

// WithLogger configures structured logging for the ingestor.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

func defaultOptions() options {
	return options{
		batchSize:      DefaultBatchSize,
		maxRetries:     DefaultMaxRetries,
		initialBackoff: 100 * time.Millisecond,
		maxBackoff:     5 * time.Second,
		concurrency:    1,
		logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}
