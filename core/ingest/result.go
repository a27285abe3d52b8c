package ingest

import "errors"

// BatchResult reports the outcome of one batch write.
type BatchResult struct {
	Index    int   // batch ordinal, 0-based
	Offset   int   // index of the batch's first record in the input
	Size     int   // number of records in the batch
	Attempts int   // write attempts, including retries after rejection
	Err      error // nil when the batch was acknowledged
}

// Result aggregates an ingestion run. Every batch appears exactly once,
// acknowledged or not.
type Result struct {
	Destination string
	Total       int
	Batches     []BatchResult
}

// Written returns the number of records acknowledged by the destination.
func (r *Result) Written() int {
	n := 0
	for _, b := range r.Batches {
		if b.Err == nil {
			n += b.Size
		}
	}
	return n
}

// Failed returns the batches that ultimately failed, in input order.
func (r *Result) Failed() []BatchResult {
	var failed []BatchResult
	for _, b := range r.Batches {
		if b.Err != nil {
			failed = append(failed, b)
		}
	}
	return failed
}

// Err joins the errors of all failed batches, or returns nil when every
// batch was acknowledged.
func (r *Result) Err() error {
	var errs []error
	for _, b := range r.Batches {
		if b.Err != nil {
			errs = append(errs, b.Err)
		}
	}
	return errors.Join(errs...)
}
