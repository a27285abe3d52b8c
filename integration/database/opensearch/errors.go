package opensearch

import "errors"

var (
	// ErrHealthcheckFailed is returned when the cluster does not answer the
	// initial ping, preventing a broken client from being handed to callers.
	ErrHealthcheckFailed = errors.New("opensearch healthcheck failed")

	// ErrNilClient is returned by NewSink when the client is nil.
	ErrNilClient = errors.New("opensearch client is nil")

	// ErrBulkFailed is returned when a bulk request fails for a reason other
	// than admission-queue rejection.
	ErrBulkFailed = errors.New("bulk write failed")
)
