package testutil_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/cqltest/test/testutil"
)

var errDrop = errors.New("drop failed")

func TestAdminServerRecordsFlushes(t *testing.T) {
	server := testutil.NewAdminServer()
	t.Cleanup(server.Close)

	resp, err := http.Post(server.URL()+"/storage_service/keyspace_flush/ks1?cf=tab_a,tab_b", "", http.NoBody)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	require.Equal(t, http.StatusOK, resp.StatusCode)

	requests := server.Requests()
	require.Len(t, requests, 1)
	require.Equal(t, "ks1", requests[0].Keyspace)
	require.Equal(t, []string{"tab_a", "tab_b"}, requests[0].Tables)
	require.NotEmpty(t, requests[0].ID)
}

func TestMockSessionFailureRules(t *testing.T) {
	session := testutil.NewMockSession()
	session.FailWith("DROP", errDrop)

	require.NoError(t, session.Query("CREATE KEYSPACE ks1").Exec())
	require.ErrorIs(t, session.Query("DROP KEYSPACE ks1").Exec(), errDrop)
	require.Equal(t, []string{"CREATE KEYSPACE ks1", "DROP KEYSPACE ks1"}, session.Executed())
}
