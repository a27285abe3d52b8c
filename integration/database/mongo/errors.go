package mongo

import "errors"

var (
	// ErrFailedToConnectToMongo is returned when all connection retry
	// attempts are exhausted without a successful ping.
	ErrFailedToConnectToMongo = errors.New("failed to connect to mongodb")

	// ErrHealthcheckFailed is returned when a health check ping fails.
	ErrHealthcheckFailed = errors.New("mongodb healthcheck failed")

	// ErrNilDatabase is returned by NewSink when the database handle is nil.
	ErrNilDatabase = errors.New("mongodb database is nil")

	// ErrInsertFailed is returned when a batch insert fails for a reason
	// other than server pushback.
	ErrInsertFailed = errors.New("mongodb insert failed")
)
