package cqltest

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/arloliu/cqltest/internal/logging"
	"github.com/arloliu/cqltest/types"
)

// DefaultAdminPort is the ScyllaDB REST API port.
const DefaultAdminPort = 10000

// defaultAdminTimeout bounds admin requests when no custom client is set.
// Flushing a large memtable can take a while on an overloaded test node.
const defaultAdminTimeout = 2 * time.Minute

// AdminClient talks to the administrative REST API of a database node.
//
// It covers the endpoints test scenarios need, currently the forced
// keyspace flush used to trigger server-side size-threshold checks.
// Responses are not validated beyond transport errors; the administrative
// API is treated as fire-and-forget, matching how test harnesses use it.
type AdminClient struct {
	host       string
	port       int
	httpClient *http.Client
	logger     types.Logger
}

// AdminOption configures an AdminClient.
type AdminOption func(*AdminClient)

// WithAdminPort sets the REST API port. Defaults to DefaultAdminPort.
//
// Parameters:
//   - port: TCP port of the node's REST API
//
// Returns:
//   - AdminOption: Configuration option
func WithAdminPort(port int) AdminOption {
	return func(c *AdminClient) {
		c.port = port
	}
}

// WithHTTPClient sets the HTTP client used for requests.
//
// Parameters:
//   - client: HTTP client, e.g. one with a custom timeout or transport
//
// Returns:
//   - AdminOption: Configuration option
func WithHTTPClient(client *http.Client) AdminOption {
	return func(c *AdminClient) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithAdminLogger sets the logger for admin requests.
//
// Parameters:
//   - logger: Logger for request-level events
//
// Returns:
//   - AdminOption: Configuration option
func WithAdminLogger(logger types.Logger) AdminOption {
	return func(c *AdminClient) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewAdminClient creates a client for a node's administrative REST API.
//
// Parameters:
//   - host: Contact point of the node, without port
//   - opts: Optional configuration (port, HTTP client, logger)
//
// Returns:
//   - *AdminClient: Client ready for use
func NewAdminClient(host string, opts ...AdminOption) *AdminClient {
	c := &AdminClient{
		host:       host,
		port:       DefaultAdminPort,
		httpClient: &http.Client{Timeout: defaultAdminTimeout},
		logger:     logging.NewNopLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// BaseURL returns the root URL of the node's REST API.
func (c *AdminClient) BaseURL() string {
	return "http://" + c.host + ":" + strconv.Itoa(c.port)
}

// FlushKeyspace forces a flush of in-memory write buffers to persistent
// storage for a keyspace, or for specific tables within it.
//
// Issues POST /storage_service/keyspace_flush/{keyspace}, with a "cf"
// query parameter listing the tables when any are given. Table names may
// be qualified ("ks.tab"); the keyspace prefix is stripped automatically.
//
// The response status is logged but not treated as an error: the flush
// endpoint is used to provoke server-side behavior, and the interesting
// failure mode (a server crash) shows up in subsequent queries, not in
// this response.
//
// Parameters:
//   - ctx: Context for the HTTP request
//   - keyspace: Keyspace to flush
//   - tables: Optional tables to restrict the flush to
//
// Returns:
//   - error: Error if the request could not be built or sent
func (c *AdminClient) FlushKeyspace(ctx context.Context, keyspace string, tables ...string) error {
	if keyspace == "" {
		return types.ErrEmptyKeyspace
	}

	flushURL := c.BaseURL() + "/storage_service/keyspace_flush/" + url.PathEscape(keyspace)
	if len(tables) > 0 {
		stripped := make([]string, len(tables))
		for i, table := range tables {
			stripped[i] = StripKeyspace(table)
		}
		query := url.Values{"cf": []string{strings.Join(stripped, ",")}}
		flushURL += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, flushURL, http.NoBody)
	if err != nil {
		return fmt.Errorf("failed to build flush request: %w", err)
	}

	c.logger.Debug("forcing keyspace flush", "keyspace", keyspace, "tables", tables)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to flush keyspace %s: %w", keyspace, err)
	}
	defer resp.Body.Close()

	// Drain so the connection can be reused.
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= http.StatusBadRequest {
		c.logger.Warn("keyspace flush returned non-success status",
			"keyspace", keyspace, "status", resp.StatusCode)
	}

	return nil
}

// FlushTable forces a flush of a single table.
//
// The table name may be qualified ("ks.tab") or bare; only the base name
// is sent to the server.
//
// Parameters:
//   - ctx: Context for the HTTP request
//   - keyspace: Keyspace owning the table
//   - table: Table to flush
//
// Returns:
//   - error: Error if the request could not be built or sent
func (c *AdminClient) FlushTable(ctx context.Context, keyspace, table string) error {
	return c.FlushKeyspace(ctx, keyspace, table)
}
