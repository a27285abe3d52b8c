package pg_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/streamhub/integration/database/pg"
)

func TestNewSink(t *testing.T) {
	t.Parallel()

	t.Run("rejects nil pool", func(t *testing.T) {
		t.Parallel()

		_, err := pg.NewSink(nil, "id", "payload")
		require.ErrorIs(t, err, pg.ErrNilPool)
	})

	t.Run("requires at least one column", func(t *testing.T) {
		t.Parallel()

		_, err := pg.NewSink(nil)
		require.Error(t, err)
	})
}
