// Package cql defines driver-agnostic interfaces for CQL session operations.
//
// The interfaces in this package abstract over different gocql driver
// versions, allowing cqltest fixtures to work with either:
//
//   - gocql v1 (github.com/gocql/gocql) via adapter/cql/v1
//   - gocql v2 (github.com/apache/cassandra-gocql-driver/v2) via adapter/cql/v2
//
// # Usage
//
// Wrap your driver session with the appropriate adapter:
//
//	import (
//	    "github.com/gocql/gocql"
//	    v1 "github.com/arloliu/cqltest/adapter/cql/v1"
//	)
//
//	cluster := gocql.NewCluster("127.0.0.1")
//	gocqlSession, err := cluster.CreateSession()
//	session := v1.WrapSession(gocqlSession)
//
// The resulting cql.Session can be passed to any cqltest fixture.
package cql
