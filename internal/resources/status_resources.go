package resources

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/filenotion/filenotion/internal/server"
)

// RegisterStatusResources registers server status resources
// These resources let clients inspect the Notion integration without
// invoking a tool
func RegisterStatusResources(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	// Register integration status resource
	statusResource := mcp.NewResource(
		"notion://status",
		"Notion Integration Status",
		mcp.WithResourceDescription("Whether a Notion API token is configured on this server"),
		mcp.WithMIMEType("application/json"),
	)

	s.AddResource(statusResource, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		return handleIntegrationStatus(ctx, request, sc)
	})

	// Register database catalog resource
	databasesResource := mcp.NewResource(
		"notion://databases",
		"Notion Databases",
		mcp.WithResourceDescription("Databases shared with the configured Notion integration"),
		mcp.WithMIMEType("application/json"),
	)

	s.AddResource(databasesResource, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		return handleDatabaseCatalog(ctx, request, sc)
	})

	return nil
}

// handleIntegrationStatus reports whether the Notion client is configured
func handleIntegrationStatus(ctx context.Context, request mcp.ReadResourceRequest, sc *server.ServerContext) ([]mcp.ResourceContents, error) {
	statusData := map[string]interface{}{
		"configured":  sc.NotionConfigured(),
		"description": "Notion integration status",
	}

	jsonData, err := json.MarshalIndent(statusData, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal status data: %w", err)
	}

	return []mcp.ResourceContents{
		&mcp.TextResourceContents{
			URI:      request.Params.URI,
			MIMEType: "application/json",
			Text:     string(jsonData),
		},
	}, nil
}

// handleDatabaseCatalog lists the databases visible to the integration
func handleDatabaseCatalog(ctx context.Context, request mcp.ReadResourceRequest, sc *server.ServerContext) ([]mcp.ResourceContents, error) {
	client := sc.NotionClient()
	if client == nil {
		return nil, fmt.Errorf("no Notion client available: NOTION_API_KEY is not set")
	}

	databases, err := client.SearchDatabases(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list databases: %w", err)
	}

	jsonData, err := json.MarshalIndent(databases, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal database data: %w", err)
	}

	return []mcp.ResourceContents{
		&mcp.TextResourceContents{
			URI:      request.Params.URI,
			MIMEType: "application/json",
			Text:     string(jsonData),
		},
	}, nil
}
