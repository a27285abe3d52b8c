package mongo

import (
	"context"
	"fmt"
	"time"

	mongodriver "go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

// New creates a MongoDB client and verifies connectivity before returning,
// retrying the ping per the config so callers fail fast with
// ErrFailedToConnectToMongo instead of receiving a broken client.
func New(ctx context.Context, cfg Config) (*mongodriver.Client, error) {
	opts := options.Client().
		ApplyURI(cfg.ConnectionURL).
		SetConnectTimeout(cfg.ConnectTimeout).
		SetMaxPoolSize(cfg.MaxPoolSize).
		SetMinPoolSize(cfg.MinPoolSize).
		SetMaxConnIdleTime(cfg.MaxConnIdleTime).
		SetRetryWrites(cfg.RetryWrites).
		SetRetryReads(cfg.RetryReads)

	client, err := mongodriver.Connect(opts)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToConnectToMongo, err)
	}

	attempts := max(cfg.RetryAttempts, 1)
	for i := 0; i < attempts; i++ {
		pingCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
		err = client.Ping(pingCtx, readpref.Primary())
		cancel()
		if err == nil {
			return client, nil
		}
		if i == attempts-1 {
			break
		}
		select {
		case <-ctx.Done():
			_ = client.Disconnect(context.WithoutCancel(ctx))
			return nil, ctx.Err()
		case <-time.After(cfg.RetryInterval):
		}
	}

	_ = client.Disconnect(context.WithoutCancel(ctx))
	return nil, fmt.Errorf("%w: %w", ErrFailedToConnectToMongo, err)
}

// NewWithDatabase creates a client via New and returns a handle to the named
// database, ready to be wrapped by NewSink.
func NewWithDatabase(ctx context.Context, cfg Config, database string) (*mongodriver.Database, error) {
	client, err := New(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return client.Database(database), nil
}

// Healthcheck returns a probe function that pings the primary, suitable for
// readiness endpoints.
func Healthcheck(client *mongodriver.Client) func(context.Context) error {
	return func(ctx context.Context) error {
		if err := client.Ping(ctx, readpref.Primary()); err != nil {
			return fmt.Errorf("%w: %w", ErrHealthcheckFailed, err)
		}
		return nil
	}
}
