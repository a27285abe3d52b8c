// Package ingest loads large, known-size record sets into write-constrained
// destinations without overwhelming their admission queues.
//
// The input is split into size-bounded batches — never one write per record,
// never one giant write — and each batch is issued through a BatchWriter.
// A destination that pushes back (a full write queue, HTTP 429, a
// rejected-execution response) signals it by wrapping ErrBatchRejected;
// the ingestor retries that batch with exponential backoff while batches
// already acknowledged are never re-sent.
//
// # Usage
//
//	writer := pg.NewSink(pool, pg.Columns("id", "payload"))
//
//	ing, err := ingest.New[pg.Row](writer,
//	    ingest.WithBatchSize(500),
//	    ingest.WithMaxRetries(8),
//	)
//	if err != nil {
//	    return err
//	}
//
//	res, err := ing.Ingest(ctx, "events", rows)
//	if err != nil {
//	    for _, b := range res.Failed() {
//	        log.Printf("batch %d (%d records) failed after %d attempts: %v",
//	            b.Index, b.Size, b.Attempts, b.Err)
//	    }
//	}
//
// # Destinations
//
// Ready-made BatchWriter implementations live under integration/database:
// a pgx-based sink for Postgres tables, a bulk-API sink for OpenSearch
// indices, and an InsertMany sink for MongoDB collections. Any function can
// serve as a writer via BatchWriterFunc.
//
// # Concurrency
//
// Batches are written sequentially by default, which is the safest mode
// against a bounded server-side admission queue. WithConcurrency allows a
// small number of batches in flight when the destination tolerates it.
package ingest
