package integration_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/cqltest"
	"github.com/arloliu/cqltest/adapter/cql"
	"github.com/arloliu/cqltest/test/testutil"
)

// keyspaceExists queries the schema tables for the given keyspace name.
func keyspaceExists(t *testing.T, session cql.Session, keyspace string) bool {
	t.Helper()

	var name string
	err := session.Query(
		"SELECT keyspace_name FROM system_schema.keyspaces WHERE keyspace_name = ?",
		keyspace,
	).ScanContext(context.Background(), &name)
	if err != nil {
		return false
	}

	return name == keyspace
}

// tableExists queries the schema tables for the given keyspace/table pair.
func tableExists(t *testing.T, session cql.Session, keyspace, table string) bool {
	t.Helper()

	var name string
	err := session.Query(
		"SELECT table_name FROM system_schema.tables WHERE keyspace_name = ? AND table_name = ?",
		keyspace, cqltest.StripKeyspace(table),
	).ScanContext(context.Background(), &name)

	return err == nil
}

func TestKeyspaceScopeLifecycle(t *testing.T) {
	session, _ := getSharedSession(t)

	var created string
	err := cqltest.WithKeyspace(context.Background(), session, cqltest.DefaultKeyspaceOptions, func(keyspace string) error {
		created = keyspace
		require.True(t, keyspaceExists(t, session, keyspace), "keyspace must exist inside the scope")

		// The keyspace must be usable, not just listed in the schema.
		return cqltest.WithTable(context.Background(), session, keyspace, "pk int PRIMARY KEY, v text", func(table string) error {
			return session.Query("INSERT INTO "+table+" (pk, v) VALUES (?, ?)", 1, "x").ExecContext(context.Background())
		})
	})
	require.NoError(t, err)
	require.False(t, keyspaceExists(t, session, created), "keyspace must be gone after the scope")

	// Operations against the dropped keyspace must fail.
	_, err = cqltest.CreateTable(context.Background(), session, created, "pk int PRIMARY KEY")
	require.Error(t, err)
}

func TestTableDroppedBeforeKeyspace(t *testing.T) {
	session, _ := getSharedSession(t)

	var keyspace, table string
	err := cqltest.WithKeyspace(context.Background(), session, cqltest.DefaultKeyspaceOptions, func(ks string) error {
		keyspace = ks
		return cqltest.WithTable(context.Background(), session, ks, "pk int PRIMARY KEY", func(tbl string) error {
			table = tbl
			require.True(t, tableExists(t, session, ks, tbl))
			return nil
		})
	})
	require.NoError(t, err)
	require.False(t, tableExists(t, session, keyspace, table))
	require.False(t, keyspaceExists(t, session, keyspace))
}

func TestTeardownUnderFailure(t *testing.T) {
	session, _ := getSharedSession(t)
	bodyErr := errors.New("simulated test failure")

	var keyspace, table string
	err := cqltest.WithKeyspace(context.Background(), session, cqltest.DefaultKeyspaceOptions, func(ks string) error {
		keyspace = ks
		return cqltest.WithTable(context.Background(), session, ks, "pk int PRIMARY KEY", func(tbl string) error {
			table = tbl
			return bodyErr
		})
	})
	require.ErrorIs(t, err, bodyErr)
	require.False(t, tableExists(t, session, keyspace, table), "table must be dropped despite body failure")
	require.False(t, keyspaceExists(t, session, keyspace), "keyspace must be dropped despite body failure")
}

func TestCleanupFixtures(t *testing.T) {
	session, _ := getSharedSession(t)

	var keyspace, table string
	t.Run("create", func(t *testing.T) {
		keyspace = testutil.NewTestKeyspace(t, session, cqltest.DefaultKeyspaceOptions)
		table = testutil.NewTestTable(t, session, keyspace, "pk int PRIMARY KEY, v text")

		require.True(t, keyspaceExists(t, session, keyspace))
		require.True(t, tableExists(t, session, keyspace, table))
	})

	// Subtest cleanups have run: table first, then keyspace.
	require.False(t, tableExists(t, session, keyspace, table))
	require.False(t, keyspaceExists(t, session, keyspace))
}
