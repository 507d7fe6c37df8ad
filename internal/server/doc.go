// Package server provides the MCP server context, health checks, and the
// HTTP transports for the filenotion application.
//
// # Key Components
//
// ServerContext carries the shared dependencies for tool handlers. The
// Notion client is created once at startup from the configured API token
// and injected into the context; when no token is configured the client
// is nil and Notion tools fail with a clear configuration error while the
// file tools keep working.
//
// HTTPServer serves the MCP protocol over the streamable HTTP transport
// on /mcp, with optional per-request metrics and health check endpoints
// (/healthz, /readyz, /healthz/detailed) for Kubernetes probes.
//
// MetricsServer exposes Prometheus metrics on a dedicated port, keeping
// operational metrics off the main application listener.
package server
