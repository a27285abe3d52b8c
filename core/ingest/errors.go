package ingest

import "errors"

var (
	// ErrNilWriter is returned by New when no batch writer is provided.
	ErrNilWriter = errors.New("batch writer is nil")

	// ErrEmptyDestination is returned when Ingest is called without a
	// destination identifier.
	ErrEmptyDestination = errors.New("destination is empty")

	// ErrBatchRejected marks a write rejected by the destination's admission
	// control (a full write queue, a 429, a rejected-execution response).
	// Sinks wrap their transport-specific rejection into this error so the
	// ingestor can retry with backoff instead of failing the batch outright.
	ErrBatchRejected = errors.New("batch rejected by destination")
)
