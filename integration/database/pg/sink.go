package pg

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dmitrymomot/streamhub/core/ingest"
)

// Row is one record of values in the sink's column order.
type Row []any

// Sink writes record batches into a Postgres table as a single pgx batch
// round trip per ingest chunk. It implements ingest.BatchWriter[Row]; the
// destination passed to WriteBatch is the table name.
type Sink struct {
	pool       *pgxpool.Pool
	columns    []string
	columnsSQL string
	valuesSQL  string
}

// NewSink creates a sink that inserts into the given columns.
func NewSink(pool *pgxpool.Pool, columns ...string) (*Sink, error) {
	if pool == nil {
		return nil, ErrNilPool
	}
	if len(columns) == 0 {
		return nil, ErrNoColumns
	}

	quoted := make([]string, len(columns))
	placeholders := make([]string, len(columns))
	for i, col := range columns {
		quoted[i] = pgx.Identifier{col}.Sanitize()
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}

	return &Sink{
		pool:       pool,
		columns:    columns,
		columnsSQL: strings.Join(quoted, ", "),
		valuesSQL:  strings.Join(placeholders, ", "),
	}, nil
}

// WriteBatch queues one INSERT per record into a single pgx.Batch and sends
// it in one round trip. If the context carries a transaction (WithTx), the
// batch joins it. Resource exhaustion on the server (SQLSTATE class 53) is
// reported as ingest.ErrBatchRejected so the ingestor retries with backoff.
func (s *Sink) WriteBatch(ctx context.Context, destination string, records []Row) error {
	if len(records) == 0 {
		return nil
	}

	stmt := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		pgx.Identifier{destination}.Sanitize(), s.columnsSQL, s.valuesSQL)

	batch := &pgx.Batch{}
	for _, row := range records {
		if len(row) != len(s.columns) {
			return fmt.Errorf("%w: got %d values, want %d", ErrRowWidthMismatch, len(row), len(s.columns))
		}
		batch.Queue(stmt, row...)
	}

	var results pgx.BatchResults
	if tx, ok := TxFromContext(ctx); ok {
		results = tx.SendBatch(ctx, batch)
	} else {
		results = s.pool.SendBatch(ctx, batch)
	}

	for range records {
		if _, err := results.Exec(); err != nil {
			_ = results.Close()
			return classify(err)
		}
	}
	if err := results.Close(); err != nil {
		return classify(err)
	}
	return nil
}

// classify maps server-side resource exhaustion (insufficient resources,
// SQLSTATE class 53: too many connections, out of memory, disk full) to the
// retryable rejection error.
func classify(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && strings.HasPrefix(pgErr.Code, "53") {
		return fmt.Errorf("%w: %s", ingest.ErrBatchRejected, pgErr.Message)
	}
	return err
}
