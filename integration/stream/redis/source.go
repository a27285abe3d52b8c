package redis

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/dmitrymomot/streamhub/core/hub"
)

// Source pumps a subscribed Redis Pub/Sub channel into a hub inlet, turning
// a remote publisher into a local multicast source. The Source owns the
// inlet for the duration of Run: it completes the hub on clean shutdown and
// fails it when the subscription is lost.
type Source struct {
	cfg     config
	client  *redis.Client
	channel string
	inlet   *hub.Inlet[string]
}

// NewSource binds a Redis channel to a hub inlet.
func NewSource(client *redis.Client, channel string, inlet *hub.Inlet[string], opts ...Option) (*Source, error) {
	if client == nil {
		return nil, ErrNilClient
	}
	if channel == "" {
		return nil, ErrEmptyChannel
	}
	if inlet == nil {
		return nil, ErrNilInlet
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Source{
		cfg:     cfg,
		client:  client,
		channel: channel,
		inlet:   inlet,
	}, nil
}

// Run subscribes and pumps message payloads into the hub until ctx is
// cancelled (clean shutdown, hub completes) or the subscription drops
// (hub fails with ErrSubscriptionLost). It blocks; run it in a goroutine.
func (s *Source) Run(ctx context.Context) error {
	pubsub := s.client.Subscribe(ctx, s.channel)
	defer pubsub.Close()

	// Wait for the subscription confirmation so that messages published
	// after Run returns control to the caller are never missed.
	if _, err := pubsub.Receive(ctx); err != nil {
		err = fmt.Errorf("subscribe to %q: %w", s.channel, err)
		_ = s.inlet.Fail(err)
		return err
	}

	s.cfg.logger.InfoContext(ctx, "source attached",
		slog.String("channel", s.channel))

	msgs := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			_ = s.inlet.Complete()
			s.cfg.logger.Info("source stopped", slog.String("channel", s.channel))
			return nil

		case msg, ok := <-msgs:
			if !ok {
				err := fmt.Errorf("%w: channel %q", ErrSubscriptionLost, s.channel)
				_ = s.inlet.Fail(err)
				return err
			}
			if err := s.inlet.Push(ctx, msg.Payload); err != nil {
				if errors.Is(err, hub.ErrInletClosed) {
					// Hub ended elsewhere; nothing left to pump into.
					return nil
				}
				return fmt.Errorf("push from %q: %w", s.channel, err)
			}
		}
	}
}
