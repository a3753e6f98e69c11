// Package v2 provides an adapter for gocql v2 (github.com/apache/cassandra-gocql-driver).
package v2

import (
	"context"

	gocql "github.com/apache/cassandra-gocql-driver/v2"

	"github.com/arloliu/cqltest/adapter/cql"
)

// Session wraps a gocql v2 session.
type Session struct {
	session *gocql.Session
}

// Compile-time assertion that Session implements cql.Session.
var _ cql.Session = (*Session)(nil)

// NewSession creates a new v2 adapter from a gocql session.
//
// Parameters:
//   - session: A gocql.Session instance from the Apache driver
//
// Returns:
//   - *Session: An adapter implementing cql.Session
func NewSession(session *gocql.Session) *Session {
	return &Session{session: session}
}

// WrapSession is an alias for NewSession that wraps a gocql v2 session.
//
// Example:
//
//	cluster := gocql.NewCluster("127.0.0.1")
//	session, _ := cluster.CreateSession()
//	err := cqltest.WithKeyspace(ctx, v2.WrapSession(session), opts, fn)
//
// Parameters:
//   - session: A gocql.Session instance from the Apache driver
//
// Returns:
//   - cql.Session: An adapter implementing cql.Session interface
func WrapSession(session *gocql.Session) cql.Session {
	return NewSession(session)
}

// Query creates a new query for the given statement.
//
// Parameters:
//   - stmt: CQL statement with ? placeholders
//   - values: Values to bind to placeholders
//
// Returns:
//   - cql.Query: A query builder
func (s *Session) Query(stmt string, values ...any) cql.Query {
	return &Query{
		query:     s.session.Query(stmt, values...),
		statement: stmt,
		values:    values,
	}
}

// Close terminates the session.
func (s *Session) Close() {
	s.session.Close()
}

// Query wraps a gocql v2 query.
type Query struct {
	query     *gocql.Query
	statement string
	values    []any
	ctx       context.Context
}

// Compile-time assertion that Query implements cql.Query.
var _ cql.Query = (*Query)(nil)

// WithContext associates a context with the query.
//
// Note: This method is deprecated in gocql v2. Consider using
// ExecContext or IterContext instead for context-aware operations.
func (q *Query) WithContext(ctx context.Context) cql.Query {
	// Store context for use in Exec/Scan/Iter; the v2 driver deprecates
	// WithContext in favor of per-call context methods.
	q.ctx = ctx
	return q
}

// Consistency sets the consistency level.
func (q *Query) Consistency(c cql.Consistency) cql.Query {
	q.query = q.query.Consistency(gocql.Consistency(c))
	return q
}

// PageSize sets the page size.
func (q *Query) PageSize(n int) cql.Query {
	q.query = q.query.PageSize(n)
	return q
}

// Exec executes the query.
func (q *Query) Exec() error {
	if q.ctx != nil {
		return q.query.ExecContext(q.ctx)
	}
	return q.query.Exec()
}

// ExecContext executes the query with context.
func (q *Query) ExecContext(ctx context.Context) error {
	return q.query.ExecContext(ctx)
}

// Scan executes and scans a single row.
func (q *Query) Scan(dest ...any) error {
	if q.ctx != nil {
		return q.query.ScanContext(q.ctx, dest...)
	}
	return q.query.Scan(dest...)
}

// ScanContext executes and scans a single row with context.
func (q *Query) ScanContext(ctx context.Context, dest ...any) error {
	return q.query.ScanContext(ctx, dest...)
}

// Iter returns an iterator for results.
func (q *Query) Iter() cql.Iter {
	if q.ctx != nil {
		return &Iter{iter: q.query.IterContext(q.ctx)}
	}
	return &Iter{iter: q.query.Iter()}
}

// IterContext returns an iterator for results with context.
func (q *Query) IterContext(ctx context.Context) cql.Iter {
	return &Iter{iter: q.query.IterContext(ctx)}
}

// MapScan executes and scans into a map.
func (q *Query) MapScan(m map[string]any) error {
	if q.ctx != nil {
		return q.query.MapScanContext(q.ctx, m)
	}
	return q.query.MapScan(m)
}

// MapScanContext executes and scans into a map with context.
func (q *Query) MapScanContext(ctx context.Context, m map[string]any) error {
	return q.query.MapScanContext(ctx, m)
}

// Statement returns the CQL statement.
func (q *Query) Statement() string {
	return q.statement
}

// Values returns the bound values.
func (q *Query) Values() []any {
	return q.values
}

// Iter wraps a gocql v2 iterator.
type Iter struct {
	iter *gocql.Iter
}

// Compile-time assertion that Iter implements cql.Iter.
var _ cql.Iter = (*Iter)(nil)

// Scan reads the next row.
func (i *Iter) Scan(dest ...any) bool {
	return i.iter.Scan(dest...)
}

// MapScan reads the next row into a map.
func (i *Iter) MapScan(m map[string]any) bool {
	return i.iter.MapScan(m)
}

// SliceMap reads all rows into a slice of maps.
func (i *Iter) SliceMap() ([]map[string]any, error) {
	return i.iter.SliceMap()
}

// NumRows returns the number of rows in the current page.
func (i *Iter) NumRows() int {
	return i.iter.NumRows()
}

// Close closes the iterator.
func (i *Iter) Close() error {
	return i.iter.Close()
}
