// Package opensearch provides OpenSearch client initialization with an
// immediate connectivity check and a bulk-indexing sink for the ingest
// package.
//
// # Usage
//
//	var cfg opensearch.Config
//	config.MustLoad(&cfg)
//
//	client, err := opensearch.New(ctx, cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	sink, err := opensearch.NewSink(client)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	ing, _ := ingest.New[opensearch.Document](sink, ingest.WithBatchSize(1000))
//	res, err := ing.Ingest(ctx, "events-2026.08", docs)
//
// Each ingest batch becomes one _bulk request. Admission-queue pushback
// (HTTP 429, or per-item rejected-execution errors) is surfaced as
// ingest.ErrBatchRejected and retried by the ingestor; any other item
// failure is permanent.
package opensearch
