package logger

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// Attribute helpers return an empty Attr for nil or zero inputs, so calls
// like log.Info("msg", logger.Error(err)) need no explicit nil checks.

// Error creates an attribute for a single error under the key "error".
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Duration creates an attribute for a duration.
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

// Elapsed logs the duration since the start time.
func Elapsed(start time.Time) slog.Attr {
	return slog.Duration("elapsed", time.Since(start))
}

// Component names the emitting component, e.g. "hub" or "ingest".
func Component(name string) slog.Attr {
	if name == "" {
		return slog.Attr{}
	}
	return slog.String("component", name)
}

// SubscriptionID identifies one hub subscription.
func SubscriptionID(id uuid.UUID) slog.Attr {
	if id == uuid.Nil {
		return slog.Attr{}
	}
	return slog.String("subscription_id", id.String())
}

// Destination names an ingestion target (table, index, collection).
func Destination(name string) slog.Attr {
	if name == "" {
		return slog.Attr{}
	}
	return slog.String("destination", name)
}

// Batch identifies one batch within an ingestion run.
func Batch(index, size int) slog.Attr {
	return slog.Group("batch", slog.Int("index", index), slog.Int("size", size))
}

// Dropped reports discarded elements for a slow subscriber.
func Dropped(n uint64) slog.Attr {
	if n == 0 {
		return slog.Attr{}
	}
	return slog.Uint64("dropped", n)
}
