// Package types provides shared types and errors for the cqltest library.
//
// This is a "leaf" package with no imports from other cqltest packages,
// allowing it to be imported by any package without causing import cycles.
package types

import "errors"

// Logger defines the logging interface used throughout cqltest.
//
// Methods accept a message followed by alternating key/value pairs:
//
//	logger.Debug("creating keyspace", "keyspace", name, "options", opts)
//
// Any structured logger (zap sugared, slog, logrus) can be adapted to this
// interface. When no logger is configured, a no-op implementation is used.
type Logger interface {
	// Debug logs a debug-level message with optional key/value pairs.
	Debug(msg string, args ...any)

	// Info logs an info-level message with optional key/value pairs.
	Info(msg string, args ...any)

	// Warn logs a warning-level message with optional key/value pairs.
	Warn(msg string, args ...any)

	// Error logs an error-level message with optional key/value pairs.
	Error(msg string, args ...any)

	// Fatal logs a fatal-level message with optional key/value pairs.
	// Implementations may exit the process; the no-op logger does not.
	Fatal(msg string, args ...any)
}

// Sentinel errors returned by fixture constructors and managers.
var (
	// ErrNilSession is returned when a fixture is given a nil CQL session.
	ErrNilSession = errors.New("cqltest: session is nil")

	// ErrEmptyKeyspace is returned when a table fixture is given an empty
	// keyspace name.
	ErrEmptyKeyspace = errors.New("cqltest: keyspace name is empty")

	// ErrEmptySchema is returned when a table fixture is given an empty
	// column schema.
	ErrEmptySchema = errors.New("cqltest: table schema is empty")
)

// Consistency represents the Cassandra consistency level.
type Consistency uint16

// Common consistency levels matching gocql.
const (
	Any         Consistency = 0x00
	One         Consistency = 0x01
	Two         Consistency = 0x02
	Three       Consistency = 0x03
	Quorum      Consistency = 0x04
	All         Consistency = 0x05
	LocalQuorum Consistency = 0x06
	EachQuorum  Consistency = 0x07
	Serial      Consistency = 0x08
	LocalSerial Consistency = 0x09
	LocalOne    Consistency = 0x0A
)
