package integration_test

import (
	"context"
	"flag"
	"fmt"
	"os"
	"testing"

	"github.com/arloliu/cqltest/adapter/cql"
	v1 "github.com/arloliu/cqltest/adapter/cql/v1"
	"github.com/arloliu/cqltest/test/testutil"
)

// sharedCluster holds the shared CQL cluster for all integration tests.
// Starting one container per suite avoids the per-test startup cost; tests
// isolate themselves with uniquely named keyspaces instead.
var sharedCluster *testutil.CQLCluster

// TestMain sets up shared test infrastructure for all integration tests.
// Prefers ScyllaDB (required for forced-flush scenarios), falls back to
// Cassandra if AIO is unavailable.
func TestMain(m *testing.M) {
	flag.Parse()

	if testing.Short() {
		return
	}

	// Check if we should skip container setup (for unit tests or CI without Docker)
	if os.Getenv("SKIP_INTEGRATION_TESTS") == "1" {
		fmt.Println("Skipping integration tests (SKIP_INTEGRATION_TESTS=1)")

		return
	}

	ctx := context.Background()

	fmt.Println("Starting shared CQL cluster for integration tests...")
	cluster, err := testutil.StartCQLCluster(ctx, testutil.DefaultCQLClusterOptions())
	if err != nil {
		fmt.Printf("Failed to start shared cluster: %v\n", err)

		return
	}
	sharedCluster = cluster
	fmt.Printf("Shared cluster ready! (using %s)\n", cluster.Type)

	_ = m.Run()

	fmt.Println("Cleaning up shared CQL cluster...")
	_ = cluster.Terminate(ctx)
	fmt.Println("Cleanup complete!")
}

// getSharedSession returns the shared session wrapped in the driver-agnostic
// adapter, plus the cluster for admin endpoint details.
// Note: Do not call session.Close() in tests - the session is shared across
// all tests and will be closed by TestMain's teardown.
func getSharedSession(t *testing.T) (cql.Session, *testutil.CQLCluster) {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	if sharedCluster == nil {
		t.Skip("shared cluster not available (run with -short=false and Docker)")
	}

	return v1.WrapSession(sharedCluster.Session), sharedCluster
}
