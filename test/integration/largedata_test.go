package integration_test

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/cqltest"
)

// TestLargeStaticCellsAndRows verifies that writing a static cell far above
// the server's large-data thresholds (1 MB per cell, 10 MB per row by
// default) does not bring the node down.
//
// The server's large-data reporting only runs when the memtable is flushed
// to persistent storage, so the test forces a flush of the table through
// the storage_service REST API. A 10 MB element triggers both the large
// static cell and the large static row reports at once. The pass condition
// is node liveness: the flush call completes and a subsequent query against
// the same keyspace still succeeds.
func TestLargeStaticCellsAndRows(t *testing.T) {
	session, cluster := getSharedSession(t)

	if !cluster.HasAdminAPI() {
		t.Skipf("forced flush requires the ScyllaDB REST API (running %s)", cluster.Type)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	admin := cqltest.NewAdminClient(cluster.AdminHost, cqltest.WithAdminPort(cluster.AdminPort))

	schema := "pk int, ck int, user_ids set<text> static, PRIMARY KEY (pk, ck)"
	err := cqltest.WithKeyspace(ctx, session, cqltest.DefaultKeyspaceOptions, func(keyspace string) error {
		return cqltest.WithTable(ctx, session, keyspace, schema, func(table string) error {
			// One 10 MB element exceeds the cell threshold tenfold and
			// the static row threshold at the same time.
			largeSet := []string{strings.Repeat("x", 10*1024*1024)}

			insert := fmt.Sprintf("INSERT INTO %s (pk, ck, user_ids) VALUES (?, ?, ?) USING TIMEOUT 5m", table)
			if err := session.Query(insert, 1, 1, largeSet).ExecContext(ctx); err != nil {
				return fmt.Errorf("failed to insert large static cell: %w", err)
			}

			if err := admin.FlushTable(ctx, keyspace, table); err != nil {
				return fmt.Errorf("failed to force flush: %w", err)
			}

			// Liveness probe: the node must still answer queries for the
			// flushed table after the large-data handler has run.
			var count int
			if err := session.Query("SELECT count(*) FROM "+table).ScanContext(ctx, &count); err != nil {
				return fmt.Errorf("node unresponsive after flush: %w", err)
			}
			require.Equal(t, 1, count)

			return nil
		})
	})
	require.NoError(t, err)
}
