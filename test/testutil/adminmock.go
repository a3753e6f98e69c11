package testutil

import (
	"net"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// FlushRequest records one keyspace flush received by the AdminServer.
type FlushRequest struct {
	// ID uniquely identifies the request for log correlation.
	ID string
	// Keyspace is the keyspace path parameter.
	Keyspace string
	// Tables are the parsed "cf" query parameter values, nil when absent.
	Tables []string
}

// AdminServer is a mock of the storage_service REST API.
//
// It implements POST /storage_service/keyspace_flush/{keyspace} and
// records every flush request, letting unit tests verify AdminClient
// behavior without a real database node.
type AdminServer struct {
	server *httptest.Server

	mu       sync.Mutex
	requests []FlushRequest
}

// NewAdminServer starts a mock admin REST server.
//
// The caller must call Close when done, typically via t.Cleanup.
//
// Returns:
//   - *AdminServer: Running mock server
func NewAdminServer() *AdminServer {
	s := &AdminServer{}

	router := chi.NewRouter()
	router.Post("/storage_service/keyspace_flush/{keyspace}", s.handleFlush)
	s.server = httptest.NewServer(router)

	return s
}

// Close shuts down the server.
func (s *AdminServer) Close() {
	s.server.Close()
}

// URL returns the base URL of the server.
func (s *AdminServer) URL() string {
	return s.server.URL
}

// Host returns the host portion of the server address.
func (s *AdminServer) Host() string {
	host, _, _ := net.SplitHostPort(strings.TrimPrefix(s.server.URL, "http://"))
	return host
}

// Port returns the TCP port the server listens on.
func (s *AdminServer) Port() int {
	_, portStr, _ := net.SplitHostPort(strings.TrimPrefix(s.server.URL, "http://"))
	port, _ := strconv.Atoi(portStr)

	return port
}

// Requests returns the flush requests received so far, in order.
func (s *AdminServer) Requests() []FlushRequest {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]FlushRequest, len(s.requests))
	copy(out, s.requests)

	return out
}

func (s *AdminServer) handleFlush(w http.ResponseWriter, r *http.Request) {
	req := FlushRequest{
		ID:       uuid.NewString(),
		Keyspace: chi.URLParam(r, "keyspace"),
	}
	if cf := r.URL.Query().Get("cf"); cf != "" {
		req.Tables = strings.Split(cf, ",")
	}

	s.mu.Lock()
	s.requests = append(s.requests, req)
	s.mu.Unlock()

	w.WriteHeader(http.StatusOK)
}
