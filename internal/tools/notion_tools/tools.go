package notion_tools

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/filenotion/filenotion/internal/files"
	"github.com/filenotion/filenotion/internal/instrumentation"
	"github.com/filenotion/filenotion/internal/notion"
	"github.com/filenotion/filenotion/internal/server"
	"github.com/filenotion/filenotion/internal/tools/common"
)

// unconfiguredMessage is returned by every Notion tool when no API token
// was configured at startup.
const unconfiguredMessage = "Notion API token not configured. Set the NOTION_API_KEY environment variable and restart the server to enable Notion tools."

// RegisterNotionTools registers all Notion-related tools with the MCP server.
// When readOnly is true, only the database listing tool is registered; the
// page creation tools are left out entirely so clients never see them.
func RegisterNotionTools(s *mcpserver.MCPServer, sc *server.ServerContext, readOnly bool) error {
	if err := registerDatabaseTools(s, sc); err != nil {
		return fmt.Errorf("failed to register database tools: %w", err)
	}

	if !readOnly {
		if err := registerPageTools(s, sc); err != nil {
			return fmt.Errorf("failed to register page tools: %w", err)
		}
	}

	return nil
}

// registerDatabaseTools registers the read-only database listing tool
func registerDatabaseTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	getDatabasesTool := mcp.NewTool("get_notion_databases",
		mcp.WithDescription("List all Notion databases accessible to the configured integration."),
	)

	s.AddTool(getDatabasesTool, common.InstrumentedToolHandlerWithService("get_notion_databases",
		instrumentation.ServiceNotion, instrumentation.OperationSearch, sc,
		getDatabasesHandler(sc)))

	return nil
}

// registerPageTools registers the page creation tools
func registerPageTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	createPageTool := mcp.NewTool("create_notion_page",
		mcp.WithDescription("Create a new page in a Notion database with a title and optional body content."),
		mcp.WithString("database_id",
			mcp.Required(),
			mcp.Description("ID of the Notion database to create the page in"),
		),
		mcp.WithString("title",
			mcp.Required(),
			mcp.Description("Title of the new page"),
		),
		mcp.WithString("content",
			mcp.Description("Optional body text, added to the page as a single paragraph"),
		),
		mcp.WithObject("properties",
			mcp.Description("Optional additional page properties in Notion's property format. Caller-supplied properties override generated ones."),
		),
	)

	s.AddTool(createPageTool, common.InstrumentedToolHandlerWithService("create_notion_page",
		instrumentation.ServiceNotion, instrumentation.OperationCreate, sc,
		createPageHandler(sc)))

	createPageFromFileTool := mcp.NewTool("create_notion_page_from_file",
		mcp.WithDescription("Create a Notion page from a local file. JSON files are pretty-printed, CSV files are rendered as a table preview, everything else is inserted verbatim."),
		mcp.WithString("database_id",
			mcp.Required(),
			mcp.Description("ID of the Notion database to create the page in"),
		),
		mcp.WithString("file_path",
			mcp.Required(),
			mcp.Description("Path to the file to publish"),
		),
		mcp.WithString("page_title",
			mcp.Description("Title for the new page (default: 'File: <filename>')"),
		),
	)

	s.AddTool(createPageFromFileTool, common.InstrumentedToolHandlerWithService("create_notion_page_from_file",
		instrumentation.ServiceNotion, instrumentation.OperationCreate, sc,
		createPageFromFileHandler(sc)))

	return nil
}

func getDatabasesHandler(sc *server.ServerContext) func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		client := sc.NotionClient()
		if client == nil {
			return mcp.NewToolResultError(unconfiguredMessage), nil
		}

		databases, err := client.SearchDatabases(ctx)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to list databases: %v", err)), nil
		}

		return jsonResult(databases)
	}
}

func createPageHandler(sc *server.ServerContext) func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		client := sc.NotionClient()
		if client == nil {
			return mcp.NewToolResultError(unconfiguredMessage), nil
		}

		args := request.GetArguments()

		databaseID := common.StringArg(args, "database_id")
		if databaseID == "" {
			return mcp.NewToolResultError("database_id is required"), nil
		}

		title := common.StringArg(args, "title")
		if title == "" {
			return mcp.NewToolResultError("title is required"), nil
		}

		input := notion.PageInput{
			DatabaseID: databaseID,
			Title:      title,
			Content:    common.StringArg(args, "content"),
		}
		if props, ok := args["properties"].(map[string]interface{}); ok {
			input.Properties = props
		}

		page, err := client.CreatePage(ctx, input)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to create page: %v", err)), nil
		}

		return jsonResult(page)
	}
}

// fileInfo summarizes the source file of a page created from a file.
type fileInfo struct {
	Filename    string `json:"filename"`
	ContentType string `json:"content_type"`
	FileSize    int64  `json:"file_size"`
}

// pageFromFileResult is a PageResult extended with source file metadata.
type pageFromFileResult struct {
	notion.PageResult
	FileInfo fileInfo `json:"file_info"`
}

func createPageFromFileHandler(sc *server.ServerContext) func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		client := sc.NotionClient()
		if client == nil {
			return mcp.NewToolResultError(unconfiguredMessage), nil
		}

		args := request.GetArguments()

		databaseID := common.StringArg(args, "database_id")
		if databaseID == "" {
			return mcp.NewToolResultError("database_id is required"), nil
		}

		path := common.StringArg(args, "file_path")
		if path == "" {
			return mcp.NewToolResultError("file_path is required"), nil
		}

		content, err := readByExtension(path)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		body, err := notion.FormatFileBody(content)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to format file content: %v", err)), nil
		}

		title := common.StringArg(args, "page_title")
		if title == "" {
			title = "File: " + content.Filename
		}

		page, err := client.CreatePage(ctx, notion.PageInput{
			DatabaseID: databaseID,
			Title:      title,
			Content:    body,
		})
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to create page: %v", err)), nil
		}

		return jsonResult(pageFromFileResult{
			PageResult: *page,
			FileInfo: fileInfo{
				Filename:    content.Filename,
				ContentType: content.ContentType,
				FileSize:    content.Size,
			},
		})
	}
}

// readByExtension dispatches on the file extension to pick a reader:
// .json parses as JSON, .csv as comma-delimited, everything else as text.
func readByExtension(path string) (*files.FileContent, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return files.ReadJSON(path)
	case ".csv":
		return files.ReadCSV(path, "", 0)
	default:
		return files.ReadText(path)
	}
}

// jsonResult marshals a value into a tool result.
func jsonResult(v any) (*mcp.CallToolResult, error) {
	result, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to encode result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(result)), nil
}
