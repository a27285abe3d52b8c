package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	mongodriver "go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/dmitrymomot/streamhub/core/ingest"
)

// Document is one record to insert; it is marshaled to BSON as-is.
type Document = bson.M

// Sink writes record batches into a MongoDB collection as one ordered
// InsertMany per ingest chunk. It implements ingest.BatchWriter[Document];
// the destination passed to WriteBatch is the collection name.
//
// Server pushback (timeouts under load) is surfaced as
// ingest.ErrBatchRejected so the ingestor retries the whole batch with
// backoff.
type Sink struct {
	db *mongodriver.Database
}

// NewSink creates a batch-inserting sink on top of an existing database handle.
func NewSink(db *mongodriver.Database) (*Sink, error) {
	if db == nil {
		return nil, ErrNilDatabase
	}
	return &Sink{db: db}, nil
}

// WriteBatch inserts all records in a single ordered InsertMany call.
func (s *Sink) WriteBatch(ctx context.Context, destination string, records []Document) error {
	if len(records) == 0 {
		return nil
	}

	if _, err := s.db.Collection(destination).InsertMany(ctx, records); err != nil {
		return classify(err)
	}
	return nil
}

// classify maps driver errors onto the ingest error taxonomy. Timeouts are
// how an overloaded server pushes back on writers, so they are retryable;
// everything else (duplicate keys, validation failures) is permanent.
func classify(err error) error {
	if mongodriver.IsTimeout(err) {
		return fmt.Errorf("%w: %w", ingest.ErrBatchRejected, err)
	}
	return fmt.Errorf("%w: %w", ErrInsertFailed, err)
}
