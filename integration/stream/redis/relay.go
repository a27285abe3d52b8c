package redis

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/dmitrymomot/streamhub/core/hub"
)

// Relay republishes every element delivered to a hub subscription onto a
// Redis Pub/Sub channel, making a local stream visible to remote consumers.
type Relay struct {
	cfg     config
	client  *redis.Client
	channel string
	sub     *hub.Subscription[string]
}

// NewRelay binds a hub subscription to a Redis channel.
func NewRelay(client *redis.Client, channel string, sub *hub.Subscription[string], opts ...Option) (*Relay, error) {
	if client == nil {
		return nil, ErrNilClient
	}
	if channel == "" {
		return nil, ErrEmptyChannel
	}
	if sub == nil {
		return nil, ErrNilSubscription
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Relay{
		cfg:     cfg,
		client:  client,
		channel: channel,
		sub:     sub,
	}, nil
}

// Run publishes until the subscription ends or ctx is cancelled. On a clean
// end-of-stream it returns nil; after a hub failure it returns the hub's
// terminal error. It blocks; run it in a goroutine.
func (r *Relay) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			r.sub.Close()
			return nil

		case msg, ok := <-r.sub.Receive():
			if !ok {
				err := r.sub.Err()
				r.cfg.logger.Info("relay stopped",
					slog.String("channel", r.channel),
					slog.Any("error", err))
				return err
			}
			if msg.Dropped > 0 {
				r.cfg.logger.Warn("relay fell behind, elements dropped",
					slog.String("channel", r.channel),
					slog.Uint64("dropped", msg.Dropped))
			}
			if err := r.client.Publish(ctx, r.channel, msg.Data).Err(); err != nil {
				r.sub.Close()
				return fmt.Errorf("publish to %q: %w", r.channel, err)
			}
		}
	}
}
