package cqltest

import (
	"math/rand"
	"strconv"
	"sync"
	"time"
)

// DefaultNamePrefix is the prefix for generated keyspace and table names.
//
// Generated names only contain lowercase letters, digits, and underscores,
// and start with a letter, so they never need quoting in CQL.
const DefaultNamePrefix = "cql_test_"

// NameGenerator produces collision-free names for ephemeral test resources.
//
// Each name is the configured prefix followed by a millisecond wall-clock
// timestamp. If two names are requested within the same millisecond, the
// second one uses the last issued value plus one, so suffixes are strictly
// increasing for the lifetime of the generator.
//
// NameGenerator is safe for concurrent use; tests running with t.Parallel()
// can share a single generator.
type NameGenerator struct {
	mu         sync.Mutex
	prefix     string
	lastMillis int64
	now        func() time.Time
}

// NameOption configures a NameGenerator.
type NameOption func(*NameGenerator)

// WithPrefix sets the name prefix.
//
// The prefix must be a valid unquoted CQL identifier prefix: lowercase
// letters, digits, and underscores, starting with a letter.
//
// Parameters:
//   - prefix: The prefix to prepend to generated names
//
// Returns:
//   - NameOption: Configuration option
func WithPrefix(prefix string) NameOption {
	return func(g *NameGenerator) {
		g.prefix = prefix
	}
}

// WithClock sets the wall-clock source.
//
// This is intended for tests that need deterministic name generation.
//
// Parameters:
//   - now: Function returning the current time
//
// Returns:
//   - NameOption: Configuration option
func WithClock(now func() time.Time) NameOption {
	return func(g *NameGenerator) {
		g.now = now
	}
}

// NewNameGenerator creates a name generator with the given options.
//
// Parameters:
//   - opts: Optional configuration (prefix, clock)
//
// Returns:
//   - *NameGenerator: A generator ready for use
func NewNameGenerator(opts ...NameOption) *NameGenerator {
	g := &NameGenerator{
		prefix: DefaultNamePrefix,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Next returns the next unique name.
//
// Returns:
//   - string: prefix + decimal millisecond timestamp, unique for the
//     lifetime of the generator
func (g *NameGenerator) Next() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	millis := g.now().UnixMilli()
	if millis <= g.lastMillis {
		millis = g.lastMillis + 1
	}
	g.lastMillis = millis

	return g.prefix + strconv.FormatInt(millis, 10)
}

// defaultNames is the process-wide generator backing UniqueName.
var defaultNames = NewNameGenerator()

// UniqueName returns a unique keyspace or table name from the shared
// process-wide generator.
//
// Returns:
//   - string: A name of the form "cql_test_<ms_timestamp>"
func UniqueName() string {
	return defaultNames.Next()
}

const randomStringChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// RandomString returns a random string of length n composed of uppercase
// letters and digits. Useful as throwaway cell data in tests.
//
// Parameters:
//   - n: Length of the string
//
// Returns:
//   - string: Random string of length n
func RandomString(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = randomStringChars[rand.Intn(len(randomStringChars))]
	}

	return string(b)
}
