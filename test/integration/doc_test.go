// Package integration_test contains integration tests that exercise the
// cqltest fixtures against a real CQL cluster.
//
// The suite starts one shared container in TestMain (ScyllaDB preferred,
// Cassandra fallback) and isolates tests with uniquely named keyspaces.
//
// Run with Docker available:
//
//	go test ./test/integration/
//
// Skip via short mode or environment:
//
//	go test -short ./test/integration/
//	SKIP_INTEGRATION_TESTS=1 go test ./test/integration/
//
// Scenarios that force flushes through the storage_service REST API are
// skipped automatically when the suite falls back to Cassandra.
package integration_test
