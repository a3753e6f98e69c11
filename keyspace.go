package cqltest

import (
	"context"
	"errors"
	"fmt"

	"github.com/arloliu/cqltest/adapter/cql"
	"github.com/arloliu/cqltest/types"
)

// DefaultKeyspaceOptions is a creation-options string suitable for
// single-node test clusters.
const DefaultKeyspaceOptions = "WITH replication = {'class': 'SimpleStrategy', 'replication_factor': 1}"

// Keyspace is a temporary keyspace created for the duration of a test.
//
// The keyspace is owned exclusively by its creator and must be dropped
// exactly once, either via Drop or by letting WithKeyspace manage the
// lifecycle.
type Keyspace struct {
	name    string
	session cql.Session
	logger  types.Logger
	dropped bool
}

// CreateKeyspace creates a keyspace with a fresh unique name.
//
// The caller owns the returned handle and is responsible for calling Drop,
// typically via defer or t.Cleanup. Prefer WithKeyspace when the usage fits
// a single function scope.
//
// Parameters:
//   - ctx: Context for the CREATE KEYSPACE statement
//   - session: CQL session to issue statements on
//   - opts: Creation options, e.g. DefaultKeyspaceOptions
//   - fixtureOpts: Optional fixture configuration
//
// Returns:
//   - *Keyspace: Handle for the created keyspace
//   - error: Error if the keyspace could not be created
func CreateKeyspace(ctx context.Context, session cql.Session, opts string, fixtureOpts ...FixtureOption) (*Keyspace, error) {
	if session == nil {
		return nil, types.ErrNilSession
	}

	cfg := defaultFixtureConfig()
	for _, opt := range fixtureOpts {
		opt(&cfg)
	}

	name := cfg.names.Next()
	stmt := "CREATE KEYSPACE " + name + " " + opts

	cfg.logger.Debug("creating test keyspace", "keyspace", name, "options", opts)
	if err := session.Query(stmt).ExecContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to create keyspace %s: %w", name, err)
	}

	return &Keyspace{
		name:    name,
		session: session,
		logger:  cfg.logger,
	}, nil
}

// Name returns the keyspace name.
func (k *Keyspace) Name() string {
	return k.name
}

// Drop drops the keyspace. Calling Drop more than once is a no-op.
//
// Parameters:
//   - ctx: Context for the DROP KEYSPACE statement
//
// Returns:
//   - error: Error if the keyspace could not be dropped
func (k *Keyspace) Drop(ctx context.Context) error {
	if k.dropped {
		return nil
	}
	k.dropped = true

	k.logger.Debug("dropping test keyspace", "keyspace", k.name)
	if err := k.session.Query("DROP KEYSPACE " + k.name).ExecContext(ctx); err != nil {
		return fmt.Errorf("failed to drop keyspace %s: %w", k.name, err)
	}

	return nil
}

// WithKeyspace creates a temporary keyspace, runs fn with its name, and
// drops the keyspace afterward regardless of fn's outcome.
//
// Failure semantics:
//   - If creation fails, fn never runs and no drop is attempted.
//   - If fn fails, the drop is still attempted and fn's error is returned.
//   - If both fn and the drop fail, the errors are combined with
//     errors.Join, fn's error first.
//
// There are no retries; any failure surfaces directly to the caller.
//
// Parameters:
//   - ctx: Context for keyspace DDL statements
//   - session: CQL session to issue statements on
//   - opts: Creation options, e.g. DefaultKeyspaceOptions
//   - fn: Test body receiving the keyspace name
//   - fixtureOpts: Optional fixture configuration
//
// Returns:
//   - error: Creation error, fn's error, drop error, or a join of the latter two
func WithKeyspace(ctx context.Context, session cql.Session, opts string, fn func(keyspace string) error, fixtureOpts ...FixtureOption) (err error) {
	ks, err := CreateKeyspace(ctx, session, opts, fixtureOpts...)
	if err != nil {
		return err
	}

	// Deferred so the keyspace is dropped even if fn panics or the test
	// aborts via runtime.Goexit.
	defer func() {
		err = errors.Join(err, ks.Drop(ctx))
	}()

	return fn(ks.Name())
}
