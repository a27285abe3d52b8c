// Package pg provides Postgres client initialization with immediate
// connectivity verification, a batch-insert sink for the ingest package,
// and context helpers for joining application transactions.
//
// # Usage
//
//	var cfg pg.Config
//	config.MustLoad(&cfg)
//
//	pool, err := pg.New(ctx, cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer pool.Close()
//
//	sink, err := pg.NewSink(pool, "id", "payload", "received_at")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	ing, _ := ingest.New[pg.Row](sink, ingest.WithBatchSize(500))
//	res, err := ing.Ingest(ctx, "events", rows)
//
// Each ingest batch becomes one pgx batch round trip, never one statement
// per network call. Server-side resource exhaustion (SQLSTATE class 53) is
// surfaced as ingest.ErrBatchRejected and retried by the ingestor.
package pg
