package file_tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/filenotion/filenotion/internal/files"
	"github.com/filenotion/filenotion/internal/instrumentation"
	"github.com/filenotion/filenotion/internal/server"
	"github.com/filenotion/filenotion/internal/tools/common"
)

// RegisterFileTools registers all file reading tools with the MCP server.
// These tools are read-only and available regardless of the Notion
// configuration or the server's read-only mode.
func RegisterFileTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	if err := registerReadTools(s, sc); err != nil {
		return fmt.Errorf("failed to register read tools: %w", err)
	}

	if err := registerListTools(s, sc); err != nil {
		return fmt.Errorf("failed to register list tools: %w", err)
	}

	return nil
}

// registerReadTools registers the three format-specific file readers
func registerReadTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	readTextTool := mcp.NewTool("read_text_file",
		mcp.WithDescription("Read the contents of a text file. Returns the file content along with metadata (filename, size, encoding)."),
		mcp.WithString("file_path",
			mcp.Required(),
			mcp.Description("Path to the text file to read"),
		),
	)

	s.AddTool(readTextTool, common.InstrumentedToolHandlerWithService("read_text_file",
		instrumentation.ServiceFiles, instrumentation.OperationReadText, sc,
		readTextHandler()))

	readJSONTool := mcp.NewTool("read_json_file",
		mcp.WithDescription("Read and parse a JSON file. Returns the parsed content along with metadata. Fails if the file is not valid JSON."),
		mcp.WithString("file_path",
			mcp.Required(),
			mcp.Description("Path to the JSON file to read"),
		),
	)

	s.AddTool(readJSONTool, common.InstrumentedToolHandlerWithService("read_json_file",
		instrumentation.ServiceFiles, instrumentation.OperationReadJSON, sc,
		readJSONHandler()))

	readCSVTool := mcp.NewTool("read_csv_file",
		mcp.WithDescription("Read and parse a CSV file. The first row is treated as the header; each subsequent row becomes a record keyed by header name."),
		mcp.WithString("file_path",
			mcp.Required(),
			mcp.Description("Path to the CSV file to read"),
		),
		mcp.WithString("delimiter",
			mcp.Description("Field delimiter, a single character (default: ',')"),
		),
		mcp.WithNumber("max_rows",
			mcp.Description("Maximum number of data rows to return (default: all rows)"),
		),
	)

	s.AddTool(readCSVTool, common.InstrumentedToolHandlerWithService("read_csv_file",
		instrumentation.ServiceFiles, instrumentation.OperationReadCSV, sc,
		readCSVHandler()))

	return nil
}

// registerListTools registers the directory listing tool
func registerListTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	listFilesTool := mcp.NewTool("list_files_in_directory",
		mcp.WithDescription("List the regular files directly inside a directory (non-recursive). Optionally filter by file extension, matched case-insensitively."),
		mcp.WithString("directory_path",
			mcp.Required(),
			mcp.Description("Path to the directory to list"),
		),
		mcp.WithArray("file_extensions",
			mcp.WithStringItems(),
			mcp.Description("File extensions to keep (e.g. ['.json', '.csv']). A missing leading dot is added automatically. Omit for no filter; an empty list matches no files."),
		),
	)

	s.AddTool(listFilesTool, common.InstrumentedToolHandlerWithService("list_files_in_directory",
		instrumentation.ServiceFiles, instrumentation.OperationList, sc,
		listFilesHandler()))

	return nil
}

func readTextHandler() func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := request.GetArguments()

		path := common.StringArg(args, "file_path")
		if path == "" {
			return mcp.NewToolResultError("file_path is required"), nil
		}

		content, err := files.ReadText(path)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		return envelopeResult(content)
	}
}

func readJSONHandler() func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := request.GetArguments()

		path := common.StringArg(args, "file_path")
		if path == "" {
			return mcp.NewToolResultError("file_path is required"), nil
		}

		content, err := files.ReadJSON(path)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		return envelopeResult(content)
	}
}

func readCSVHandler() func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := request.GetArguments()

		path := common.StringArg(args, "file_path")
		if path == "" {
			return mcp.NewToolResultError("file_path is required"), nil
		}

		delimiter := common.StringArg(args, "delimiter")
		maxRows := common.IntArg(args, "max_rows")

		content, err := files.ReadCSV(path, delimiter, maxRows)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		return envelopeResult(content)
	}
}

func listFilesHandler() func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := request.GetArguments()

		path := common.StringArg(args, "directory_path")
		if path == "" {
			return mcp.NewToolResultError("directory_path is required"), nil
		}

		extensions := common.StringSliceArg(args, "file_extensions")

		listing, err := files.ListDirectory(path, extensions)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		return envelopeResult(listing)
	}
}

// envelopeResult marshals a reader envelope into a tool result.
func envelopeResult(v any) (*mcp.CallToolResult, error) {
	result, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to encode result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(result)), nil
}
