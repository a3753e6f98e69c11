package testutil

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/gocql/gocql"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/scylladb"
)

// scyllaAdminPort is the in-container REST API port.
const scyllaAdminPort = "10000/tcp"

// ScyllaDBContainer wraps a ScyllaDB test container.
type ScyllaDBContainer struct {
	Container *scylladb.Container
	Host      string
	// AdminHost and AdminPort address the mapped REST API endpoint.
	AdminHost string
	AdminPort int
	Session   *gocql.Session
}

// ScyllaDBOptions configures the ScyllaDB container.
type ScyllaDBOptions struct {
	// Image is the ScyllaDB image to use. Defaults to "scylladb/scylla:6.2".
	Image string
	// Memory is the memory limit for ScyllaDB. Defaults to "512M".
	Memory string
	// SMP is the number of CPU cores for ScyllaDB. Defaults to 1.
	SMP int
}

// DefaultScyllaDBOptions returns default options for ScyllaDB container.
func DefaultScyllaDBOptions() ScyllaDBOptions {
	return ScyllaDBOptions{
		Image:  "scylladb/scylla:6.2",
		Memory: "512M",
		SMP:    1,
	}
}

// StartScyllaDB starts a ScyllaDB container for testing.
//
// The container is automatically terminated when the test completes. The
// REST API port is exposed and mapped so tests can issue storage_service
// requests (forced flushes) against the node. No keyspace is created;
// tests create their own via the cqltest fixtures.
//
// Uses --reactor-backend=epoll to reduce Linux AIO requirements. ScyllaDB
// still needs available AIO slots (fs.aio-max-nr); if your system has
// none left, use Cassandra or StartCQLCluster's automatic fallback.
//
// Parameters:
//   - ctx: Context for container operations
//   - t: Testing context for cleanup registration
//   - opts: Optional configuration (nil uses defaults)
//
// Returns:
//   - *ScyllaDBContainer: Container with connection details and session
//   - error: Error if container fails to start
func StartScyllaDB(ctx context.Context, t *testing.T, opts *ScyllaDBOptions) (*ScyllaDBContainer, error) {
	t.Helper()

	if opts == nil {
		defaultOpts := DefaultScyllaDBOptions()
		opts = &defaultOpts
	}

	// --developer-mode=1 and --overprovisioned=1 relax production checks
	// for resource-constrained CI environments.
	container, err := scylladb.Run(ctx, opts.Image,
		scylladb.WithShardAwareness(),
		scylladb.WithCustomCommands(
			fmt.Sprintf("--memory=%s", opts.Memory),
			fmt.Sprintf("--smp=%d", opts.SMP),
			"--developer-mode=1",
			"--overprovisioned=1",
			"--reactor-backend=epoll",
		),
		testcontainers.WithExposedPorts(scyllaAdminPort),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to start ScyllaDB container: %w", err)
	}

	t.Cleanup(func() {
		if err := container.Terminate(context.Background()); err != nil {
			t.Logf("failed to terminate ScyllaDB container: %v", err)
		}
	})

	host, err := container.NonShardAwareConnectionHost(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get connection host: %w", err)
	}

	adminHost, err := container.Host(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get container host: %w", err)
	}

	adminPort, err := container.MappedPort(ctx, scyllaAdminPort)
	if err != nil {
		return nil, fmt.Errorf("failed to get mapped REST API port: %w", err)
	}

	session, err := newSession(host)
	if err != nil {
		return nil, err
	}

	t.Cleanup(func() {
		session.Close()
	})

	return &ScyllaDBContainer{
		Container: container,
		Host:      host,
		AdminHost: adminHost,
		AdminPort: adminPort.Int(),
		Session:   session,
	}, nil
}

// newSession connects a gocql session to the given host without a default
// keyspace, so fixtures can create and address keyspaces by name.
func newSession(host string) (*gocql.Session, error) {
	cluster := gocql.NewCluster(host)
	cluster.Consistency = gocql.Quorum
	cluster.Timeout = 30 * time.Second
	cluster.ConnectTimeout = 30 * time.Second

	session, err := cluster.CreateSession()
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	return session, nil
}
