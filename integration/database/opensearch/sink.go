package opensearch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	opensearchgo "github.com/opensearch-project/opensearch-go/v2"

	"github.com/dmitrymomot/streamhub/core/ingest"
)

// Document is one record to index; it is serialized to JSON as-is.
type Document map[string]any

// Sink writes record batches into an OpenSearch index as one _bulk request
// per ingest chunk. It implements ingest.BatchWriter[Document]; the
// destination passed to WriteBatch is the index name.
//
// Admission-queue pushback — an HTTP 429, or per-item rejected-execution
// errors in the bulk response — is surfaced as ingest.ErrBatchRejected so
// the ingestor retries the whole batch with backoff.
type Sink struct {
	client *opensearchgo.Client
}

// NewSink creates a bulk-indexing sink on top of an existing client.
func NewSink(client *opensearchgo.Client) (*Sink, error) {
	if client == nil {
		return nil, ErrNilClient
	}
	return &Sink{client: client}, nil
}

// WriteBatch indexes all records in a single bulk request.
func (s *Sink) WriteBatch(ctx context.Context, destination string, records []Document) error {
	if len(records) == 0 {
		return nil
	}

	body, err := bulkBody(destination, records)
	if err != nil {
		return err
	}

	res, err := s.client.Bulk(bytes.NewReader(body),
		s.client.Bulk.WithContext(ctx),
		s.client.Bulk.WithIndex(destination),
	)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBulkFailed, err)
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusTooManyRequests {
		return fmt.Errorf("%w: bulk request throttled (429)", ingest.ErrBatchRejected)
	}
	if res.IsError() {
		return fmt.Errorf("%w: %s", ErrBulkFailed, res.Status())
	}

	return checkBulkResponse(res.Body)
}

// bulkBody renders the newline-delimited bulk payload: one action line and
// one source line per document.
func bulkBody(index string, records []Document) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)

	action := map[string]map[string]string{"index": {"_index": index}}
	for _, doc := range records {
		if err := enc.Encode(action); err != nil {
			return nil, fmt.Errorf("encode bulk action: %w", err)
		}
		if err := enc.Encode(doc); err != nil {
			return nil, fmt.Errorf("encode document: %w", err)
		}
	}
	return buf.Bytes(), nil
}

type bulkResponse struct {
	Errors bool `json:"errors"`
	Items  []map[string]struct {
		Status int `json:"status"`
		Error  *struct {
			Type   string `json:"type"`
			Reason string `json:"reason"`
		} `json:"error"`
	} `json:"items"`
}

// checkBulkResponse inspects per-item results. A single rejected item fails
// the whole batch as retryable, since the bulk write is retried atomically;
// any other item failure is permanent.
func checkBulkResponse(body io.Reader) error {
	var resp bulkResponse
	if err := json.NewDecoder(body).Decode(&resp); err != nil {
		return fmt.Errorf("decode bulk response: %w", err)
	}
	if !resp.Errors {
		return nil
	}

	for _, item := range resp.Items {
		for _, result := range item {
			if result.Error == nil {
				continue
			}
			if result.Status == http.StatusTooManyRequests ||
				strings.Contains(result.Error.Type, "rejected_execution") {
				return fmt.Errorf("%w: %s", ingest.ErrBatchRejected, result.Error.Reason)
			}
			return fmt.Errorf("%w: %s: %s", ErrBulkFailed, result.Error.Type, result.Error.Reason)
		}
	}

	// errors=true but no item detail; treat as a permanent failure.
	return ErrBulkFailed
}
