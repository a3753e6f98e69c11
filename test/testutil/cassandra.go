package testutil

import (
	"context"
	"fmt"
	"testing"

	"github.com/gocql/gocql"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/cassandra"
)

// CassandraContainer wraps a Cassandra test container.
//
// Cassandra has no storage_service REST API, so scenarios that force
// flushes through cqltest.AdminClient require ScyllaDB.
type CassandraContainer struct {
	Container *cassandra.CassandraContainer
	Host      string
	Session   *gocql.Session
}

// CassandraOptions configures the Cassandra container.
type CassandraOptions struct {
	// Image is the Cassandra image to use. Defaults to "cassandra:4.1".
	Image string
}

// DefaultCassandraOptions returns default options for Cassandra container.
func DefaultCassandraOptions() CassandraOptions {
	return CassandraOptions{
		Image: "cassandra:4.1",
	}
}

// StartCassandra starts a Cassandra container for testing.
//
// The container is automatically terminated when the test completes.
// This is preferred over ScyllaDB for environments with limited AIO
// resources. No keyspace is created; tests create their own via the
// cqltest fixtures.
//
// Parameters:
//   - ctx: Context for container operations
//   - t: Testing context for cleanup registration
//   - opts: Optional configuration (nil uses defaults)
//
// Returns:
//   - *CassandraContainer: Container with connection details and session
//   - error: Error if container fails to start
func StartCassandra(ctx context.Context, t *testing.T, opts *CassandraOptions) (*CassandraContainer, error) {
	t.Helper()

	if opts == nil {
		defaultOpts := DefaultCassandraOptions()
		opts = &defaultOpts
	}

	container, err := cassandra.Run(ctx, opts.Image,
		testcontainers.WithEnv(map[string]string{
			"HEAP_NEWSIZE":     "128M",
			"MAX_HEAP_SIZE":    "512M",
			"CASSANDRA_SNITCH": "SimpleSnitch",
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to start Cassandra container: %w", err)
	}

	t.Cleanup(func() {
		if err := container.Terminate(context.Background()); err != nil {
			t.Logf("failed to terminate Cassandra container: %v", err)
		}
	})

	host, err := container.ConnectionHost(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get connection host: %w", err)
	}

	session, err := newSession(host)
	if err != nil {
		return nil, err
	}

	t.Cleanup(func() {
		session.Close()
	})

	return &CassandraContainer{
		Container: container,
		Host:      host,
		Session:   session,
	}, nil
}
