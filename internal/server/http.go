package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/filenotion/filenotion/internal/instrumentation"
)

const (
	// DefaultMCPEndpointPath is the path the streamable HTTP transport is served on.
	DefaultMCPEndpointPath = "/mcp"

	// DefaultHeartbeatInterval keeps long-lived streaming sessions alive
	// through proxies that close idle connections.
	DefaultHeartbeatInterval = 30 * time.Second
)

// HTTPServerConfig holds configuration for the streamable HTTP transport.
type HTTPServerConfig struct {
	// Addr is the address to bind the server to (e.g., ":8080").
	Addr string

	// EndpointPath is the path for the MCP endpoint (default: "/mcp").
	EndpointPath string

	// Metrics records HTTP request metrics when non-nil.
	Metrics *instrumentation.Metrics

	// HealthChecker serves the health endpoints when non-nil.
	HealthChecker *HealthChecker
}

// HTTPServer serves the MCP protocol over the streamable HTTP transport,
// alongside health check endpoints for Kubernetes probes.
type HTTPServer struct {
	mcpServer  *mcpserver.MCPServer
	httpServer *http.Server
	config     HTTPServerConfig
}

// NewHTTPServer creates a new streamable HTTP server for the given MCP server.
func NewHTTPServer(mcpServer *mcpserver.MCPServer, config HTTPServerConfig) (*HTTPServer, error) {
	if mcpServer == nil {
		return nil, fmt.Errorf("mcp server is required")
	}
	if config.Addr == "" {
		return nil, fmt.Errorf("listen address is required")
	}
	if config.EndpointPath == "" {
		config.EndpointPath = DefaultMCPEndpointPath
	}

	return &HTTPServer{
		mcpServer: mcpServer,
		config:    config,
	}, nil
}

// Handler builds the HTTP handler serving the MCP endpoint and health probes.
func (s *HTTPServer) Handler() http.Handler {
	mux := http.NewServeMux()

	streamable := mcpserver.NewStreamableHTTPServer(s.mcpServer,
		mcpserver.WithEndpointPath(s.config.EndpointPath),
		mcpserver.WithHeartbeatInterval(DefaultHeartbeatInterval),
	)

	mux.Handle(s.config.EndpointPath, s.withHTTPMetrics(streamable))

	if s.config.HealthChecker != nil {
		s.config.HealthChecker.RegisterHealthEndpoints(mux)
	}

	return mux
}

// Start starts the HTTP server in a blocking manner.
// Call this in a goroutine if you need non-blocking operation.
func (s *HTTPServer) Start() error {
	s.httpServer = &http.Server{
		Addr:              s.config.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      0, // Streaming responses must not be cut off
		IdleTimeout:       120 * time.Second,
	}

	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (s *HTTPServer) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}

// withHTTPMetrics wraps a handler to record request count and duration.
func (s *HTTPServer) withHTTPMetrics(next http.Handler) http.Handler {
	if s.config.Metrics == nil {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(recorder, r)

		s.config.Metrics.RecordHTTPRequest(r.Context(), r.Method, r.URL.Path, recorder.status, time.Since(start))
	})
}

// statusRecorder captures the response status code for metrics.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// Flush passes through to the underlying writer so streaming keeps working.
func (r *statusRecorder) Flush() {
	if f, ok := r.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}
