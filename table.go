package cqltest

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/arloliu/cqltest/adapter/cql"
	"github.com/arloliu/cqltest/types"
)

// Table is a temporary table created for the duration of a test.
//
// A table is scoped within its owning keyspace and must not outlive it:
// when nesting WithTable inside WithKeyspace, the table is always dropped
// before the keyspace.
type Table struct {
	keyspace string
	base     string
	session  cql.Session
	logger   types.Logger
	dropped  bool
}

// CreateTable creates a table with a fresh unique name inside the given
// keyspace.
//
// The caller owns the returned handle and is responsible for calling Drop.
// Prefer WithTable when the usage fits a single function scope.
//
// Parameters:
//   - ctx: Context for the CREATE TABLE statement
//   - session: CQL session to issue statements on
//   - keyspace: Name of an existing keyspace owning the table
//   - schema: Column schema, e.g. "pk int PRIMARY KEY, v text"
//   - fixtureOpts: Optional fixture configuration
//
// Returns:
//   - *Table: Handle for the created table
//   - error: Error if the table could not be created
func CreateTable(ctx context.Context, session cql.Session, keyspace, schema string, fixtureOpts ...FixtureOption) (*Table, error) {
	if session == nil {
		return nil, types.ErrNilSession
	}
	if keyspace == "" {
		return nil, types.ErrEmptyKeyspace
	}
	if schema == "" {
		return nil, types.ErrEmptySchema
	}

	cfg := defaultFixtureConfig()
	for _, opt := range fixtureOpts {
		opt(&cfg)
	}

	base := cfg.names.Next()
	name := keyspace + "." + base
	stmt := "CREATE TABLE " + name + " (" + schema + ")"

	cfg.logger.Debug("creating test table", "table", name, "schema", schema)
	if err := session.Query(stmt).ExecContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to create table %s: %w", name, err)
	}

	return &Table{
		keyspace: keyspace,
		base:     base,
		session:  session,
		logger:   cfg.logger,
	}, nil
}

// Name returns the fully qualified table name, "keyspace.table".
func (t *Table) Name() string {
	return t.keyspace + "." + t.base
}

// BaseName returns the table name without the keyspace prefix.
//
// This is the form the storage_service REST API expects in its "cf"
// query parameter.
func (t *Table) BaseName() string {
	return t.base
}

// Keyspace returns the name of the owning keyspace.
func (t *Table) Keyspace() string {
	return t.keyspace
}

// Drop drops the table. Calling Drop more than once is a no-op.
//
// Parameters:
//   - ctx: Context for the DROP TABLE statement
//
// Returns:
//   - error: Error if the table could not be dropped
func (t *Table) Drop(ctx context.Context) error {
	if t.dropped {
		return nil
	}
	t.dropped = true

	name := t.Name()
	t.logger.Debug("dropping test table", "table", name)
	if err := t.session.Query("DROP TABLE " + name).ExecContext(ctx); err != nil {
		return fmt.Errorf("failed to drop table %s: %w", name, err)
	}

	return nil
}

// WithTable creates a temporary table in the given keyspace, runs fn with
// the fully qualified table name, and drops the table afterward regardless
// of fn's outcome.
//
// Failure semantics match WithKeyspace: creation errors abort before fn
// runs, fn's error takes precedence over a drop error, and both are
// combined with errors.Join when they occur together.
//
// Parameters:
//   - ctx: Context for table DDL statements
//   - session: CQL session to issue statements on
//   - keyspace: Name of an existing keyspace owning the table
//   - schema: Column schema, e.g. "pk int PRIMARY KEY, v text"
//   - fn: Test body receiving the qualified "keyspace.table" name
//   - fixtureOpts: Optional fixture configuration
//
// Returns:
//   - error: Creation error, fn's error, drop error, or a join of the latter two
func WithTable(ctx context.Context, session cql.Session, keyspace, schema string, fn func(table string) error, fixtureOpts ...FixtureOption) (err error) {
	tbl, err := CreateTable(ctx, session, keyspace, schema, fixtureOpts...)
	if err != nil {
		return err
	}

	// Deferred so the table is dropped even if fn panics or the test
	// aborts via runtime.Goexit.
	defer func() {
		err = errors.Join(err, tbl.Drop(ctx))
	}()

	return fn(tbl.Name())
}

// StripKeyspace returns the table name without its keyspace prefix.
//
// Parameters:
//   - table: Table name, qualified ("ks.tab") or not ("tab")
//
// Returns:
//   - string: The table name with any "keyspace." prefix removed
func StripKeyspace(table string) string {
	if idx := strings.IndexByte(table, '.'); idx >= 0 {
		return table[idx+1:]
	}

	return table
}
