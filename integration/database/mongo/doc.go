// Package mongo provides MongoDB client initialization with connection
// retry logic and a batch-insert sink for the ingest package.
//
// Both New and NewWithDatabase retry the initial ping to absorb Atlas cold
// starts and brief network interruptions that would otherwise fail
// application startup.
//
// # Usage
//
//	var cfg mongo.Config
//	config.MustLoad(&cfg)
//
//	db, err := mongo.NewWithDatabase(ctx, cfg, "streams")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer db.Client().Disconnect(ctx)
//
//	sink, err := mongo.NewSink(db)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	ing, _ := ingest.New[mongo.Document](sink, ingest.WithBatchSize(500))
//	res, err := ing.Ingest(ctx, "events", docs)
//
// Each ingest batch becomes one ordered InsertMany call. Server timeouts
// under load are surfaced as ingest.ErrBatchRejected and retried by the
// ingestor.
package mongo
