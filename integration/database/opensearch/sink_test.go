package opensearch_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	opensearchgo "github.com/opensearch-project/opensearch-go/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/streamhub/core/ingest"
	"github.com/dmitrymomot/streamhub/integration/database/opensearch"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *opensearchgo.Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := opensearchgo.NewClient(opensearchgo.Config{
		Addresses:    []string{server.URL},
		DisableRetry: true,
	})
	require.NoError(t, err)
	return client
}

func TestNewSink(t *testing.T) {
	t.Parallel()

	_, err := opensearch.NewSink(nil)
	require.ErrorIs(t, err, opensearch.ErrNilClient)
}

func TestSink_WriteBatch(t *testing.T) {
	t.Parallel()

	docs := []opensearch.Document{
		{"id": 1, "payload": "a"},
		{"id": 2, "payload": "b"},
	}

	t.Run("successful bulk write", func(t *testing.T) {
		t.Parallel()

		var gotLines int
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			body, _ := io.ReadAll(r.Body)
			gotLines = bytes.Count(body, []byte("\n"))
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(map[string]any{"errors": false, "items": []any{}})
		})

		sink, err := opensearch.NewSink(client)
		require.NoError(t, err)

		require.NoError(t, sink.WriteBatch(context.Background(), "events", docs))
		assert.Equal(t, 4, gotLines, "one action line and one source line per document")
	})

	t.Run("http 429 is a retryable rejection", func(t *testing.T) {
		t.Parallel()

		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
		})

		sink, err := opensearch.NewSink(client)
		require.NoError(t, err)

		err = sink.WriteBatch(context.Background(), "events", docs)
		require.ErrorIs(t, err, ingest.ErrBatchRejected)
	})

	t.Run("rejected execution item is a retryable rejection", func(t *testing.T) {
		t.Parallel()

		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{
				"errors": true,
				"items": [
					{"index": {"status": 201}},
					{"index": {"status": 429, "error": {"type": "es_rejected_execution_exception", "reason": "queue capacity reached"}}}
				]
			}`))
		})

		sink, err := opensearch.NewSink(client)
		require.NoError(t, err)

		err = sink.WriteBatch(context.Background(), "events", docs)
		require.ErrorIs(t, err, ingest.ErrBatchRejected)
	})

	t.Run("mapping error item is permanent", func(t *testing.T) {
		t.Parallel()

		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{
				"errors": true,
				"items": [
					{"index": {"status": 400, "error": {"type": "mapper_parsing_exception", "reason": "failed to parse"}}}
				]
			}`))
		})

		sink, err := opensearch.NewSink(client)
		require.NoError(t, err)

		err = sink.WriteBatch(context.Background(), "events", docs)
		require.ErrorIs(t, err, opensearch.ErrBulkFailed)
		require.NotErrorIs(t, err, ingest.ErrBatchRejected)
	})

	t.Run("empty batch issues no request", func(t *testing.T) {
		t.Parallel()

		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			t.Error("no request expected for an empty batch")
		})

		sink, err := opensearch.NewSink(client)
		require.NoError(t, err)

		require.NoError(t, sink.WriteBatch(context.Background(), "events", nil))
	})
}

func TestSink_EndToEndWithIngestor(t *testing.T) {
	t.Parallel()

	var bulkCalls int
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		bulkCalls++
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"errors": false, "items": []any{}})
	})

	sink, err := opensearch.NewSink(client)
	require.NoError(t, err)

	ing, err := ingest.New[opensearch.Document](sink, ingest.WithBatchSize(100))
	require.NoError(t, err)

	records := make([]opensearch.Document, 2600)
	for i := range records {
		records[i] = opensearch.Document{"id": i}
	}

	res, err := ing.Ingest(context.Background(), "events", records)
	require.NoError(t, err)
	assert.Equal(t, 26, bulkCalls, "2600 records at batch size 100 must issue exactly 26 bulk writes")
	assert.Equal(t, 2600, res.Written())
}
