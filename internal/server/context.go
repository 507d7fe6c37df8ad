package server

import (
	"context"
	"sync"

	"github.com/filenotion/filenotion/internal/instrumentation"
	"github.com/filenotion/filenotion/internal/notion"
)

// ServerContext holds the shared state for the MCP server.
// The Notion client is injected at construction time; tools receive it
// through this context rather than reaching for global state.
type ServerContext struct {
	ctx          context.Context
	cancel       context.CancelFunc
	notionClient *notion.Client
	metrics      *instrumentation.Metrics
	auditLogger  *instrumentation.AuditLogger
	mu           sync.RWMutex
	shutdown     bool
}

// NewServerContext creates a new server context. If notionToken is empty,
// the server starts without a Notion client and the Notion tools report
// a configuration error on invocation. File tools work either way.
func NewServerContext(ctx context.Context, notionToken string) (*ServerContext, error) {
	shutdownCtx, cancel := context.WithCancel(ctx)

	sc := &ServerContext{
		ctx:      shutdownCtx,
		cancel:   cancel,
		shutdown: false,
	}

	if notionToken != "" {
		client, err := notion.NewClient(shutdownCtx, notionToken)
		if err != nil {
			cancel()
			return nil, err
		}
		sc.notionClient = client
	}

	return sc, nil
}

// Context returns the server context
func (sc *ServerContext) Context() context.Context {
	return sc.ctx
}

// NotionClient returns the Notion client, or nil when no API token was
// configured. Callers must check for nil before use.
func (sc *ServerContext) NotionClient() *notion.Client {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.notionClient
}

// SetNotionClient replaces the Notion client. Used by tests to inject a
// client pointed at a fake API.
func (sc *ServerContext) SetNotionClient(client *notion.Client) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.notionClient = client
}

// NotionConfigured returns whether a Notion client is available.
func (sc *ServerContext) NotionConfigured() bool {
	return sc.NotionClient() != nil
}

// Metrics returns the metrics recorder, or nil if none was set.
func (sc *ServerContext) Metrics() *instrumentation.Metrics {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.metrics
}

// SetMetrics sets the metrics recorder used by tool handlers.
func (sc *ServerContext) SetMetrics(m *instrumentation.Metrics) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.metrics = m
}

// AuditLogger returns the audit logger, or nil if none was set.
func (sc *ServerContext) AuditLogger() *instrumentation.AuditLogger {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.auditLogger
}

// SetAuditLogger sets the audit logger used by tool handlers.
func (sc *ServerContext) SetAuditLogger(al *instrumentation.AuditLogger) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.auditLogger = al
}

// IsShutdown returns whether the server has been shutdown
func (sc *ServerContext) IsShutdown() bool {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.shutdown
}

// Shutdown shuts down the server context
func (sc *ServerContext) Shutdown() error {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	if sc.shutdown {
		return nil
	}

	sc.shutdown = true
	sc.cancel()
	return nil
}
