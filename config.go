package cqltest

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config describes an externally managed cluster to run a test suite
// against, the way cql-style harnesses target an already running node
// instead of starting containers.
type Config struct {
	// Hosts are the contact points of the cluster. Required.
	Hosts []string `yaml:"hosts"`

	// Port is the CQL native transport port. Defaults to 9042.
	Port int `yaml:"port"`

	// AdminPort is the REST API port. Defaults to DefaultAdminPort.
	AdminPort int `yaml:"admin_port"`

	// KeyspaceOptions is the creation-options string for test keyspaces.
	// Defaults to DefaultKeyspaceOptions.
	KeyspaceOptions string `yaml:"keyspace_options"`

	// Timeout bounds individual CQL requests. Defaults to 30s.
	Timeout time.Duration `yaml:"-"`
}

// UnmarshalYAML decodes the config, accepting Go duration strings ("45s",
// "2m") for the timeout field. Absent fields keep their current values, so
// decoding into DefaultConfig() preserves defaults.
func (c *Config) UnmarshalYAML(value *yaml.Node) error {
	var raw struct {
		Hosts           []string `yaml:"hosts"`
		Port            int      `yaml:"port"`
		AdminPort       int      `yaml:"admin_port"`
		KeyspaceOptions string   `yaml:"keyspace_options"`
		Timeout         string   `yaml:"timeout"`
	}
	if err := value.Decode(&raw); err != nil {
		return err
	}

	if len(raw.Hosts) > 0 {
		c.Hosts = raw.Hosts
	}
	if raw.Port != 0 {
		c.Port = raw.Port
	}
	if raw.AdminPort != 0 {
		c.AdminPort = raw.AdminPort
	}
	if raw.KeyspaceOptions != "" {
		c.KeyspaceOptions = raw.KeyspaceOptions
	}
	if raw.Timeout != "" {
		timeout, err := time.ParseDuration(raw.Timeout)
		if err != nil {
			return fmt.Errorf("invalid timeout %q: %w", raw.Timeout, err)
		}
		c.Timeout = timeout
	}

	return nil
}

// DefaultConfig returns a config targeting a local single-node cluster.
func DefaultConfig() *Config {
	return &Config{
		Hosts:           []string{"127.0.0.1"},
		Port:            9042,
		AdminPort:       DefaultAdminPort,
		KeyspaceOptions: DefaultKeyspaceOptions,
		Timeout:         30 * time.Second,
	}
}

// LoadConfig reads a YAML config file and applies defaults and environment
// overrides.
//
// Environment overrides:
//   - CQLTEST_HOSTS: comma-separated contact points
//   - CQLTEST_ADMIN_PORT: REST API port
//
// Parameters:
//   - path: Path to the YAML file
//
// Returns:
//   - *Config: Parsed and validated configuration
//   - error: Error if the file cannot be read, parsed, or validated
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyEnv overrides fields from CQLTEST_* environment variables.
func (c *Config) applyEnv() {
	if hosts := os.Getenv("CQLTEST_HOSTS"); hosts != "" {
		c.Hosts = strings.Split(hosts, ",")
		for i := range c.Hosts {
			c.Hosts[i] = strings.TrimSpace(c.Hosts[i])
		}
	}
	if port := os.Getenv("CQLTEST_ADMIN_PORT"); port != "" {
		if n, err := strconv.Atoi(port); err == nil {
			c.AdminPort = n
		}
	}
}

// Validate checks the config for usable values.
//
// Returns:
//   - error: Validation error, or nil if valid
func (c *Config) Validate() error {
	if len(c.Hosts) == 0 {
		return errors.New("cqltest: config requires at least one host")
	}
	for _, host := range c.Hosts {
		if host == "" {
			return errors.New("cqltest: config contains an empty host")
		}
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("cqltest: invalid CQL port %d", c.Port)
	}
	if c.AdminPort <= 0 || c.AdminPort > 65535 {
		return fmt.Errorf("cqltest: invalid admin port %d", c.AdminPort)
	}

	return nil
}

// AdminClient returns an admin client for the first contact point.
//
// Returns:
//   - *AdminClient: Client targeting Hosts[0] on AdminPort
func (c *Config) AdminClient(opts ...AdminOption) *AdminClient {
	merged := append([]AdminOption{WithAdminPort(c.AdminPort)}, opts...)
	return NewAdminClient(c.Hosts[0], merged...)
}
