// Package cqltest provides scoped test fixtures for CQL-compatible
// databases (ScyllaDB, Cassandra): unique resource naming, temporary
// keyspaces and tables with guaranteed teardown, and an administrative
// REST client for forced flushes.
//
// # Key Features
//
//   - Unique Names: Collision-free, strictly increasing keyspace/table names
//   - Scoped Fixtures: Keyspaces and tables dropped on scope exit, success or failure
//   - Driver Agnostic: Works with gocql v1 and the Apache gocql v2 driver
//   - Admin REST Client: Forced keyspace/table flushes via the storage_service API
//   - Container Helpers: ScyllaDB/Cassandra testcontainers in test/testutil
//
// # Basic Usage
//
//	cluster := gocql.NewCluster("127.0.0.1")
//	gocqlSession, err := cluster.CreateSession()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	session := v1.WrapSession(gocqlSession)
//
//	err = cqltest.WithKeyspace(ctx, session, cqltest.DefaultKeyspaceOptions, func(keyspace string) error {
//	    return cqltest.WithTable(ctx, session, keyspace, "pk int PRIMARY KEY, v text", func(table string) error {
//	        return session.Query("INSERT INTO "+table+" (pk, v) VALUES (?, ?)", 1, "x").ExecContext(ctx)
//	    })
//	})
//
// Fixtures nest with strict stack discipline: the table above is always
// dropped before its keyspace, even when the body fails or panics.
//
// # Error Handling
//
// Fixture errors follow a fixed convention:
//   - Creation failure: the body never runs, no teardown is attempted.
//   - Body failure: teardown still runs; the body's error is returned first.
//   - Both fail: errors.Join combines them, body error first, so neither
//     is masked.
//
// # Thread Safety
//
// The NameGenerator is mutex-protected, so fixtures may be used from
// parallel tests sharing one generator. Individual Keyspace and Table
// handles are not safe for concurrent use; each test owns its own.
package cqltest
