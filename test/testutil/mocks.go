package testutil

import (
	"context"
	"strings"
	"sync"

	"github.com/arloliu/cqltest/adapter/cql"
)

// MockSession is a scripted in-memory implementation of cql.Session.
//
// It records every executed statement in order and can be told to fail
// statements matching a substring, which is how fixture tests simulate
// creation, body, and teardown failures without a real cluster.
type MockSession struct {
	mu       sync.Mutex
	executed []string
	failures []failureRule
	closed   bool

	// OnQuery, if set, is called for every created query.
	OnQuery func(stmt string, values ...any)
}

type failureRule struct {
	substr string
	err    error
}

// Compile-time assertion that MockSession implements cql.Session.
var _ cql.Session = (*MockSession)(nil)

// NewMockSession creates a new mock CQL session.
func NewMockSession() *MockSession {
	return &MockSession{}
}

// FailWith makes any statement containing substr fail with err.
// Rules are matched in registration order; the first match wins.
func (m *MockSession) FailWith(substr string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failures = append(m.failures, failureRule{substr: substr, err: err})
}

// Executed returns the statements executed so far, in order.
func (m *MockSession) Executed() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]string, len(m.executed))
	copy(out, m.executed)

	return out
}

// ExecutedMatching returns executed statements containing substr, in order.
func (m *MockSession) ExecutedMatching(substr string) []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []string
	for _, stmt := range m.executed {
		if strings.Contains(stmt, substr) {
			out = append(out, stmt)
		}
	}

	return out
}

// Closed reports whether Close has been called.
func (m *MockSession) Closed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.closed
}

// Query returns a mock query for the given statement.
func (m *MockSession) Query(stmt string, values ...any) cql.Query {
	if m.OnQuery != nil {
		m.OnQuery(stmt, values...)
	}

	return &MockQuery{session: m, statement: stmt, values: values}
}

// Close marks the session as closed.
func (m *MockSession) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
}

// exec records the statement and returns any configured failure.
func (m *MockSession) exec(stmt string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.executed = append(m.executed, stmt)
	for _, rule := range m.failures {
		if strings.Contains(stmt, rule.substr) {
			return rule.err
		}
	}

	return nil
}

// MockQuery is the query type produced by MockSession.
type MockQuery struct {
	session   *MockSession
	statement string
	values    []any
}

// Compile-time assertion that MockQuery implements cql.Query.
var _ cql.Query = (*MockQuery)(nil)

// WithContext is a no-op that returns the query.
func (q *MockQuery) WithContext(_ context.Context) cql.Query { return q }

// Consistency is a no-op that returns the query.
func (q *MockQuery) Consistency(_ cql.Consistency) cql.Query { return q }

// PageSize is a no-op that returns the query.
func (q *MockQuery) PageSize(_ int) cql.Query { return q }

// Exec records the statement and returns any configured failure.
func (q *MockQuery) Exec() error {
	return q.session.exec(q.statement)
}

// ExecContext records the statement and returns any configured failure.
func (q *MockQuery) ExecContext(_ context.Context) error {
	return q.Exec()
}

// Scan records the statement and returns any configured failure without
// populating dest.
func (q *MockQuery) Scan(_ ...any) error {
	return q.session.exec(q.statement)
}

// ScanContext records the statement and returns any configured failure.
func (q *MockQuery) ScanContext(_ context.Context, dest ...any) error {
	return q.Scan(dest...)
}

// Iter records the statement and returns an empty iterator.
func (q *MockQuery) Iter() cql.Iter {
	err := q.session.exec(q.statement)
	return &MockIter{err: err}
}

// IterContext records the statement and returns an empty iterator.
func (q *MockQuery) IterContext(_ context.Context) cql.Iter {
	return q.Iter()
}

// MapScan records the statement and returns any configured failure.
func (q *MockQuery) MapScan(_ map[string]any) error {
	return q.session.exec(q.statement)
}

// MapScanContext records the statement and returns any configured failure.
func (q *MockQuery) MapScanContext(_ context.Context, m map[string]any) error {
	return q.MapScan(m)
}

// Statement returns the CQL statement.
func (q *MockQuery) Statement() string { return q.statement }

// Values returns the bound values.
func (q *MockQuery) Values() []any { return q.values }

// MockIter is an empty iterator carrying an optional error.
type MockIter struct {
	err error
}

// Compile-time assertion that MockIter implements cql.Iter.
var _ cql.Iter = (*MockIter)(nil)

// Scan reports no rows.
func (i *MockIter) Scan(_ ...any) bool { return false }

// MapScan reports no rows.
func (i *MockIter) MapScan(_ map[string]any) bool { return false }

// SliceMap returns no rows, or the iterator's error.
func (i *MockIter) SliceMap() ([]map[string]any, error) {
	if i.err != nil {
		return nil, i.err
	}

	return nil, nil
}

// NumRows returns zero.
func (i *MockIter) NumRows() int { return 0 }

// Close returns the iterator's error.
func (i *MockIter) Close() error { return i.err }
