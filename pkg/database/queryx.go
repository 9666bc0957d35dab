package database

import (
	"context"
	"strings"

	"github.com/gocql/gocql"

	"github.com/loopcard/loyalty-backend/pkg/retry"
)

// Queryx is a wrapper around gocql.Query that provides retry logic via the
// generic retry package.
type Queryx struct {
	query *gocql.Query
	conn  *Connection
}

// NewQuery wraps a gocql.Query to provide retry functionality.
func (c *Connection) NewQuery(stmt string, values ...interface{}) *Queryx {
	return &Queryx{
		query: c.session.Query(stmt, values...),
		conn:  c,
	}
}

func (q *Queryx) retryConfig() *retry.Config {
	var cfg retry.Config
	if q.conn.config.RetryConfig != nil {
		cfg = *q.conn.config.RetryConfig
	} else {
		cfg = *retry.DefaultConfig()
	}
	cfg.ShouldRetry = gocqlShouldRetry
	return &cfg
}

// Exec executes a query with retry logic.
// The query should be marked as Idempotent() for safe retries on CUD operations.
func (q *Queryx) Exec() error {
	return retry.RetryFunc(q.query.Context(), q.query.Exec, q.retryConfig(), q.conn.logger)
}

// Scan executes a query and scans the result, with retry logic.
func (q *Queryx) Scan(dest ...interface{}) error {
	return retry.RetryFunc(q.query.Context(), func() error {
		return q.query.Scan(dest...)
	}, q.retryConfig(), q.conn.logger)
}

// Iter returns an iterator for the query.
// Retries on iterators are handled internally by gocql's paging mechanism.
func (q *Queryx) Iter() *gocql.Iter {
	return q.query.Iter()
}

// WithContext sets the context for the underlying gocql.Query.
func (q *Queryx) WithContext(ctx context.Context) *Queryx {
	q.query = q.query.WithContext(ctx)
	return q
}

// Idempotent marks the query as idempotent.
// This is critical for Exec() to be retried safely.
func (q *Queryx) Idempotent() *Queryx {
	q.query.Idempotent(true)
	return q
}

// gocqlShouldRetry reports whether a gocql error is worth retrying.
// ErrNotFound is a result, not a failure, and must surface immediately.
func gocqlShouldRetry(err error, _ int) bool {
	if err == nil || err == gocql.ErrNotFound {
		return false
	}

	switch err.(type) {
	case *gocql.RequestErrWriteTimeout, *gocql.RequestErrReadTimeout, *gocql.RequestErrUnavailable:
		return true
	}

	msg := err.Error()
	switch {
	case strings.Contains(msg, "no connections available"),
		strings.Contains(msg, "connection refused"),
		strings.Contains(msg, "connection reset by peer"),
		strings.Contains(msg, "i/o timeout"):
		return true
	}
	return false
}
