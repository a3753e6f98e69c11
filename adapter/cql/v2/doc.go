// Package v2 adapts gocql v2 (github.com/apache/cassandra-gocql-driver/v2)
// sessions to the driver-agnostic cql.Session interface.
//
// Use this adapter if your project depends on the Apache-maintained driver:
//
//	cluster := gocql.NewCluster("127.0.0.1")
//	gocqlSession, err := cluster.CreateSession()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	session := v2.WrapSession(gocqlSession)
package v2
