package cqltest

import (
	"github.com/arloliu/cqltest/internal/logging"
	"github.com/arloliu/cqltest/types"
)

// fixtureConfig holds shared configuration for scoped fixtures.
type fixtureConfig struct {
	logger types.Logger
	names  *NameGenerator
}

// defaultFixtureConfig returns a config with the no-op logger and the
// shared process-wide name generator.
func defaultFixtureConfig() fixtureConfig {
	return fixtureConfig{
		logger: logging.NewNopLogger(),
		names:  defaultNames,
	}
}

// FixtureOption configures a scoped keyspace or table fixture.
type FixtureOption func(*fixtureConfig)

// WithLogger sets the logger used by the fixture.
//
// Parameters:
//   - logger: Logger for fixture lifecycle events
//
// Returns:
//   - FixtureOption: Configuration option
func WithLogger(logger types.Logger) FixtureOption {
	return func(c *fixtureConfig) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithNameGenerator sets the name generator used by the fixture.
//
// By default fixtures draw names from a shared process-wide generator.
// Inject a dedicated generator to isolate name sequences between test
// suites or to use a custom prefix.
//
// Parameters:
//   - names: Generator for unique resource names
//
// Returns:
//   - FixtureOption: Configuration option
func WithNameGenerator(names *NameGenerator) FixtureOption {
	return func(c *fixtureConfig) {
		if names != nil {
			c.names = names
		}
	}
}
