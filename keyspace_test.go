package cqltest_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/cqltest"
	"github.com/arloliu/cqltest/test/testutil"
	"github.com/arloliu/cqltest/types"
)

func TestWithKeyspaceSuccess(t *testing.T) {
	session := testutil.NewMockSession()

	var inScope string
	err := cqltest.WithKeyspace(context.Background(), session, cqltest.DefaultKeyspaceOptions, func(keyspace string) error {
		inScope = keyspace
		return nil
	})
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(inScope, cqltest.DefaultNamePrefix))

	executed := session.Executed()
	require.Len(t, executed, 2)
	require.Equal(t, "CREATE KEYSPACE "+inScope+" "+cqltest.DefaultKeyspaceOptions, executed[0])
	require.Equal(t, "DROP KEYSPACE "+inScope, executed[1])
}

func TestWithKeyspaceCreateFails(t *testing.T) {
	session := testutil.NewMockSession()
	createErr := errors.New("keyspace already exists")
	session.FailWith("CREATE KEYSPACE", createErr)

	bodyRan := false
	err := cqltest.WithKeyspace(context.Background(), session, cqltest.DefaultKeyspaceOptions, func(string) error {
		bodyRan = true
		return nil
	})
	require.ErrorIs(t, err, createErr)
	require.False(t, bodyRan, "body must not run when creation fails")
	require.Empty(t, session.ExecutedMatching("DROP KEYSPACE"), "no drop after failed create")
}

func TestWithKeyspaceBodyFails(t *testing.T) {
	session := testutil.NewMockSession()
	bodyErr := errors.New("assertion failed")

	err := cqltest.WithKeyspace(context.Background(), session, cqltest.DefaultKeyspaceOptions, func(string) error {
		return bodyErr
	})
	require.ErrorIs(t, err, bodyErr)
	require.Len(t, session.ExecutedMatching("DROP KEYSPACE"), 1, "drop must still run after body failure")
}

func TestWithKeyspaceBodyAndDropFail(t *testing.T) {
	session := testutil.NewMockSession()
	bodyErr := errors.New("assertion failed")
	dropErr := errors.New("drop timed out")
	session.FailWith("DROP KEYSPACE", dropErr)

	err := cqltest.WithKeyspace(context.Background(), session, cqltest.DefaultKeyspaceOptions, func(string) error {
		return bodyErr
	})
	require.ErrorIs(t, err, bodyErr, "body error must be preserved")
	require.ErrorIs(t, err, dropErr, "drop error must be joined")
}

func TestWithKeyspaceDropsOnPanic(t *testing.T) {
	session := testutil.NewMockSession()

	require.Panics(t, func() {
		_ = cqltest.WithKeyspace(context.Background(), session, cqltest.DefaultKeyspaceOptions, func(string) error {
			panic("test body exploded")
		})
	})
	require.Len(t, session.ExecutedMatching("DROP KEYSPACE"), 1, "drop must run during panic unwinding")
}

func TestWithKeyspaceNilSession(t *testing.T) {
	err := cqltest.WithKeyspace(context.Background(), nil, cqltest.DefaultKeyspaceOptions, func(string) error {
		return nil
	})
	require.ErrorIs(t, err, types.ErrNilSession)
}

func TestCreateKeyspaceDropIdempotent(t *testing.T) {
	session := testutil.NewMockSession()

	ks, err := cqltest.CreateKeyspace(context.Background(), session, cqltest.DefaultKeyspaceOptions)
	require.NoError(t, err)

	require.NoError(t, ks.Drop(context.Background()))
	require.NoError(t, ks.Drop(context.Background()))
	require.Len(t, session.ExecutedMatching("DROP KEYSPACE"), 1, "second drop must be a no-op")
}

func TestWithKeyspaceCustomNameGenerator(t *testing.T) {
	session := testutil.NewMockSession()
	names := cqltest.NewNameGenerator(cqltest.WithPrefix("suite_a_"))

	err := cqltest.WithKeyspace(context.Background(), session, cqltest.DefaultKeyspaceOptions, func(keyspace string) error {
		require.True(t, strings.HasPrefix(keyspace, "suite_a_"))
		return nil
	}, cqltest.WithNameGenerator(names))
	require.NoError(t, err)
}
