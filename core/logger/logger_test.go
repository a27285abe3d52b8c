package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/streamhub/core/logger"
)

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("json output carries app attribute", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.New(
			logger.WithApp("feedrelay"),
			logger.WithJSON(),
			logger.WithOutput(&buf),
		)

		log.Info("hello", logger.Destination("events"))

		var record map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
		assert.Equal(t, "feedrelay", record["app"])
		assert.Equal(t, "events", record["destination"])
		assert.Equal(t, "hello", record["msg"])
	})

	t.Run("level filters records", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.New(
			logger.WithLevel(slog.LevelWarn),
			logger.WithOutput(&buf),
		)

		log.Info("dropped")
		assert.Zero(t, buf.Len())

		log.Warn("kept")
		assert.Positive(t, buf.Len())
	})
}

func TestAttrs(t *testing.T) {
	t.Parallel()

	t.Run("nil error renders nothing", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, slog.Attr{}, logger.Error(nil))
	})

	t.Run("error attribute", func(t *testing.T) {
		t.Parallel()
		attr := logger.Error(errors.New("boom"))
		assert.Equal(t, "error", attr.Key)
	})

	t.Run("zero uuid renders nothing", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, slog.Attr{}, logger.SubscriptionID(uuid.Nil))
	})

	t.Run("subscription id attribute", func(t *testing.T) {
		t.Parallel()
		id := uuid.New()
		attr := logger.SubscriptionID(id)
		assert.Equal(t, "subscription_id", attr.Key)
		assert.Equal(t, id.String(), attr.Value.String())
	})

	t.Run("zero dropped renders nothing", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, slog.Attr{}, logger.Dropped(0))
	})

	t.Run("batch group", func(t *testing.T) {
		t.Parallel()
		attr := logger.Batch(3, 100)
		assert.Equal(t, "batch", attr.Key)
	})

	t.Run("elapsed is non-negative", func(t *testing.T) {
		t.Parallel()
		attr := logger.Elapsed(time.Now().Add(-time.Second))
		assert.GreaterOrEqual(t, attr.Value.Duration(), time.Second)
	})
}
