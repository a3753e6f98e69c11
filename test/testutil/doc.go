// Package testutil provides testing utilities for the cqltest project:
// container-backed ScyllaDB/Cassandra clusters, testing.TB-flavored
// keyspace/table fixtures, a scripted mock CQL session, and a mock
// administrative REST server.
//
// # Container Helpers
//
// StartCQLCluster starts a single CQL-compatible cluster, preferring
// ScyllaDB and falling back to Cassandra when Linux AIO is exhausted:
//
//	cluster, err := testutil.StartCQLCluster(ctx, testutil.DefaultCQLClusterOptions())
//	if err != nil {
//	    // handle
//	}
//	defer cluster.Terminate(ctx)
//
// ScyllaDB containers also expose the REST API port so tests can drive
// storage_service endpoints through cqltest.AdminClient.
//
// # Fixtures
//
// NewTestKeyspace and NewTestTable wrap the scoped fixtures from the root
// package with t.Cleanup-based teardown:
//
//	keyspace := testutil.NewTestKeyspace(t, session, cqltest.DefaultKeyspaceOptions)
//	table := testutil.NewTestTable(t, session, keyspace, "pk int PRIMARY KEY, v text")
package testutil
