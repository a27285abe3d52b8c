package hub

import (
	"io"
	"log/slog"
)

// DefaultBufferSize is the per-subscription delivery buffer used when no
// WithBufferSize option is given.
const DefaultBufferSize = 64

// OverflowPolicy controls what happens when a subscription's delivery buffer
// is full at the moment an element arrives. The policy is fixed at hub
// construction and applies per subscription, except FailFast which terminates
// the entire hub.
type OverflowPolicy int

const (
	// DropNewest discards the incoming element for the slow subscription.
	DropNewest OverflowPolicy = iota

	// DropOldest evicts the oldest buffered element to make room, so a
	// consumer that never reads sees only the most recent elements.
	DropOldest

	// BlockProducer suspends the push until the subscription has room or the
	// producer's context is cancelled. Only viable with a synchronous producer.
	BlockProducer

	// FailFast terminates the whole hub on the first overflow. Every
	// subscription observes ErrHubFailed wrapping ErrSubscriberOverflow.
	FailFast
)

// String returns a human-readable policy name for logging.
func (p OverflowPolicy) String() string {
	switch p {
	case DropNewest:
		return "drop_newest"
	case DropOldest:
		return "drop_oldest"
	case BlockProducer:
		return "block_producer"
	case FailFast:
		return "fail_fast"
	default:
		return "unknown"
	}
}

type config struct {
	bufferSize int
	policy     OverflowPolicy
	logger     *slog.Logger
}

// Option configures a hub at construction time.
type Option func(*config)

// WithBufferSize sets the per-subscription delivery buffer size.
// Default is DefaultBufferSize. Zero or negative values are ignored.
func WithBufferSize(size int) Option {
	return func(c *config) {
		if size > 0 {
			c.bufferSize = size
		}
	}
}

// WithOverflowPolicy selects the overflow policy for all subscriptions.
// Default is DropNewest.
func WithOverflowPolicy(p OverflowPolicy) Option {
	return func(c *config) {
		c.policy = p
	}
}

// WithLogger configures structured logging for the hub.
// Use slog.New(slog.NewTextHandler(io.Discard, nil)) to disable logging.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

func defaultConfig() config {
	return config{
		bufferSize: DefaultBufferSize,
		policy:     DropNewest,
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}
