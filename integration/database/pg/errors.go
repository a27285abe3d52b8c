package pg

import "errors"

var (
	// ErrFailedToParseConnString is returned when the connection string is
	// not a valid pgx pool configuration.
	ErrFailedToParseConnString = errors.New("failed to parse postgres connection string")

	// ErrNotReady is returned when the database does not answer a ping
	// within the configured retry budget.
	ErrNotReady = errors.New("postgres did not become ready within the given time period")

	// ErrNoColumns is returned by NewSink when no column list is given.
	ErrNoColumns = errors.New("sink requires at least one column")

	// ErrNilPool is returned by NewSink when the connection pool is nil.
	ErrNilPool = errors.New("connection pool is nil")

	// ErrRowWidthMismatch is returned when a row's value count does not
	// match the sink's column list.
	ErrRowWidthMismatch = errors.New("row width does not match column list")
)
