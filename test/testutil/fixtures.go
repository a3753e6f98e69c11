package testutil

import (
	"context"
	"testing"

	"github.com/arloliu/cqltest"
	"github.com/arloliu/cqltest/adapter/cql"
)

// NewTestKeyspace creates a uniquely named keyspace and registers its drop
// with t.Cleanup.
//
// Cleanup-registered teardown runs in reverse registration order, so a
// table created afterward with NewTestTable is dropped before its
// keyspace, preserving the nesting discipline of the scoped fixtures.
//
// Parameters:
//   - t: Testing context for cleanup registration
//   - session: CQL session to issue statements on
//   - opts: Creation options, e.g. cqltest.DefaultKeyspaceOptions
//
// Returns:
//   - string: Name of the created keyspace
func NewTestKeyspace(t *testing.T, session cql.Session, opts string) string {
	t.Helper()

	ks, err := cqltest.CreateKeyspace(context.Background(), session, opts)
	if err != nil {
		t.Fatalf("failed to create test keyspace: %v", err)
	}

	t.Cleanup(func() {
		if err := ks.Drop(context.Background()); err != nil {
			t.Errorf("failed to drop test keyspace %s: %v", ks.Name(), err)
		}
	})

	return ks.Name()
}

// NewTestTable creates a uniquely named table in the given keyspace and
// registers its drop with t.Cleanup.
//
// Parameters:
//   - t: Testing context for cleanup registration
//   - session: CQL session to issue statements on
//   - keyspace: Name of an existing keyspace owning the table
//   - schema: Column schema, e.g. "pk int PRIMARY KEY, v text"
//
// Returns:
//   - string: Fully qualified "keyspace.table" name
func NewTestTable(t *testing.T, session cql.Session, keyspace, schema string) string {
	t.Helper()

	tbl, err := cqltest.CreateTable(context.Background(), session, keyspace, schema)
	if err != nil {
		t.Fatalf("failed to create test table: %v", err)
	}

	t.Cleanup(func() {
		if err := tbl.Drop(context.Background()); err != nil {
			t.Errorf("failed to drop test table %s: %v", tbl.Name(), err)
		}
	})

	return tbl.Name()
}
