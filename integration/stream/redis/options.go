package redis

import (
	"io"
	"log/slog"
)

type config struct {
	logger *slog.Logger
}

// Option configures a Source or a Relay.
type Option func(*config)

// WithLogger sets the logger used for lifecycle events.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

func defaultConfig() config {
	return config{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}
