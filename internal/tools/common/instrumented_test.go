package common

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/filenotion/filenotion/internal/instrumentation"
	"github.com/filenotion/filenotion/internal/logging"
	"github.com/filenotion/filenotion/internal/server"
)

func newRequest(args map[string]interface{}) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args
	return req
}

func newInstrumentedContext(t *testing.T) (*server.ServerContext, *bytes.Buffer) {
	t.Helper()

	sc, err := server.NewServerContext(context.Background(), "")
	if err != nil {
		t.Fatalf("NewServerContext() error = %v", err)
	}
	t.Cleanup(func() { _ = sc.Shutdown() })

	var buf bytes.Buffer
	sc.SetAuditLogger(instrumentation.NewAuditLogger(
		logging.NewSlogAdapter(slog.New(slog.NewTextHandler(&buf, nil)))))

	return sc, &buf
}

func TestInstrumentedToolHandler_PassthroughWithoutInstrumentation(t *testing.T) {
	sc, err := server.NewServerContext(context.Background(), "")
	if err != nil {
		t.Fatalf("NewServerContext() error = %v", err)
	}
	defer func() { _ = sc.Shutdown() }()

	called := false
	handler := InstrumentedToolHandler("read_text_file", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			called = true
			return mcp.NewToolResultText("ok"), nil
		})

	result, err := handler(context.Background(), newRequest(nil))
	if err != nil {
		t.Fatalf("handler error = %v", err)
	}
	if !called {
		t.Error("wrapped handler was not called")
	}
	if result == nil || result.IsError {
		t.Error("expected success result")
	}
}

func TestInstrumentedToolHandler_AuditsSuccess(t *testing.T) {
	sc, buf := newInstrumentedContext(t)

	handler := InstrumentedToolHandlerWithService("read_text_file",
		instrumentation.ServiceFiles, instrumentation.OperationReadText, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("contents"), nil
		})

	_, err := handler(context.Background(), newRequest(map[string]interface{}{
		"file_path": "/data/notes.txt",
	}))
	if err != nil {
		t.Fatalf("handler error = %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "tool_executed") {
		t.Errorf("expected tool_executed audit entry, got %q", out)
	}
	if !strings.Contains(out, "read_text_file") {
		t.Errorf("expected tool name in audit entry, got %q", out)
	}
	// Default audit configuration hashes the path
	if strings.Contains(out, "/data/notes.txt") {
		t.Errorf("audit entry must not contain the full path, got %q", out)
	}
}

func TestInstrumentedToolHandler_AuditsToolError(t *testing.T) {
	sc, buf := newInstrumentedContext(t)

	// Tool-level failures are returned as error results, not Go errors
	handler := InstrumentedToolHandler("read_json_file", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultError("invalid JSON format"), nil
		})

	result, err := handler(context.Background(), newRequest(nil))
	if err != nil {
		t.Fatalf("handler error = %v", err)
	}
	if result == nil || !result.IsError {
		t.Fatal("expected error result")
	}

	if !strings.Contains(buf.String(), "tool_failed") {
		t.Errorf("expected tool_failed audit entry, got %q", buf.String())
	}
}

func TestInstrumentedToolHandler_AuditsHandlerError(t *testing.T) {
	sc, buf := newInstrumentedContext(t)

	handler := InstrumentedToolHandler("create_notion_page", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return nil, errors.New("transport exploded")
		})

	_, err := handler(context.Background(), newRequest(map[string]interface{}{
		"database_id": "db-1",
	}))
	if err == nil {
		t.Fatal("expected error to propagate")
	}

	out := buf.String()
	if !strings.Contains(out, "tool_failed") {
		t.Errorf("expected tool_failed audit entry, got %q", out)
	}
	if !strings.Contains(out, "db-1") {
		t.Errorf("expected database id in audit entry, got %q", out)
	}
}
