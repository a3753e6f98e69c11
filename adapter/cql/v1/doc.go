// Package v1 adapts gocql v1 (github.com/gocql/gocql) sessions to the
// driver-agnostic cql.Session interface.
//
// Use this adapter if your project depends on the community gocql driver:
//
//	cluster := gocql.NewCluster("127.0.0.1")
//	gocqlSession, err := cluster.CreateSession()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	session := v1.WrapSession(gocqlSession)
package v1
