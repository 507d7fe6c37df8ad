package cmd

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/filenotion/filenotion/internal/server"
)

func TestResolveNotionToken(t *testing.T) {
	tests := []struct {
		name      string
		flagValue string
		envValue  string
		expected  string
	}{
		{
			name:      "flag wins over env",
			flagValue: "secret_flag",
			envValue:  "secret_env",
			expected:  "secret_flag",
		},
		{
			name:      "env fallback",
			flagValue: "",
			envValue:  "secret_env",
			expected:  "secret_env",
		},
		{
			name:      "neither set",
			flagValue: "",
			envValue:  "",
			expected:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("NOTION_API_KEY", tt.envValue)

			result := resolveNotionToken(tt.flagValue)
			if result != tt.expected {
				t.Errorf("resolveNotionToken(%q) = %q, want %q", tt.flagValue, result, tt.expected)
			}
		})
	}
}

func TestRegisterAllTools(t *testing.T) {
	serverContext, err := server.NewServerContext(context.Background(), "")
	if err != nil {
		t.Fatalf("failed to create server context: %v", err)
	}
	defer func() { _ = serverContext.Shutdown() }()

	mcpSrv := mcpserver.NewMCPServer("filenotion", "test",
		mcpserver.WithToolCapabilities(true),
		mcpserver.WithResourceCapabilities(false, false),
	)

	if err := registerAllTools(mcpSrv, serverContext, false); err != nil {
		t.Fatalf("registerAllTools failed: %v", err)
	}

	names := make(map[string]bool)
	for _, st := range mcpSrv.ListTools() {
		names[st.Tool.Name] = true
	}

	expected := []string{
		"read_text_file",
		"read_json_file",
		"read_csv_file",
		"list_files_in_directory",
		"get_notion_databases",
		"create_notion_page",
		"create_notion_page_from_file",
	}
	for _, name := range expected {
		if !names[name] {
			t.Errorf("expected tool %q to be registered, got %v", name, names)
		}
	}
}

func TestRegisterAllTools_ReadOnly(t *testing.T) {
	serverContext, err := server.NewServerContext(context.Background(), "")
	if err != nil {
		t.Fatalf("failed to create server context: %v", err)
	}
	defer func() { _ = serverContext.Shutdown() }()

	mcpSrv := mcpserver.NewMCPServer("filenotion", "test",
		mcpserver.WithToolCapabilities(true),
		mcpserver.WithResourceCapabilities(false, false),
	)

	if err := registerAllTools(mcpSrv, serverContext, true); err != nil {
		t.Fatalf("registerAllTools failed: %v", err)
	}

	for _, st := range mcpSrv.ListTools() {
		if strings.HasPrefix(st.Tool.Name, "create_") {
			t.Errorf("read-only mode should not register %q", st.Tool.Name)
		}
	}
}

func TestApplyMetricsEnv(t *testing.T) {
	tests := []struct {
		name        string
		enabledEnv  string
		addrEnv     string
		enabledSet  bool
		addrSet     bool
		config      MetricsConfig
		wantEnabled bool
		wantAddr    string
	}{
		{
			name:        "env disables default-on metrics",
			enabledEnv:  "false",
			config:      MetricsConfig{Enabled: true, Addr: ":9090"},
			wantEnabled: false,
			wantAddr:    ":9090",
		},
		{
			name:        "env enables metrics",
			enabledEnv:  "true",
			config:      MetricsConfig{Enabled: false, Addr: ":9090"},
			wantEnabled: true,
			wantAddr:    ":9090",
		},
		{
			name:        "explicit flag wins over env",
			enabledEnv:  "false",
			enabledSet:  true,
			config:      MetricsConfig{Enabled: true, Addr: ":9090"},
			wantEnabled: true,
			wantAddr:    ":9090",
		},
		{
			name:        "env overrides addr when flag not set",
			addrEnv:     ":9191",
			config:      MetricsConfig{Enabled: true, Addr: ":9090"},
			wantEnabled: true,
			wantAddr:    ":9191",
		},
		{
			name:        "explicit addr flag wins over env",
			addrEnv:     ":9191",
			addrSet:     true,
			config:      MetricsConfig{Enabled: true, Addr: ":7070"},
			wantEnabled: true,
			wantAddr:    ":7070",
		},
		{
			name:        "invalid env value is ignored",
			enabledEnv:  "yes-please",
			config:      MetricsConfig{Enabled: true, Addr: ":9090"},
			wantEnabled: true,
			wantAddr:    ":9090",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("METRICS_ENABLED", tt.enabledEnv)
			t.Setenv("METRICS_ADDR", tt.addrEnv)

			config := tt.config
			applyMetricsEnv(&config, tt.enabledSet, tt.addrSet)

			if config.Enabled != tt.wantEnabled {
				t.Errorf("Enabled = %v, want %v", config.Enabled, tt.wantEnabled)
			}
			if config.Addr != tt.wantAddr {
				t.Errorf("Addr = %q, want %q", config.Addr, tt.wantAddr)
			}
		})
	}
}

func TestDispatchUnknownTool(t *testing.T) {
	serverContext, err := server.NewServerContext(context.Background(), "")
	if err != nil {
		t.Fatalf("failed to create server context: %v", err)
	}
	defer func() { _ = serverContext.Shutdown() }()

	mcpSrv := mcpserver.NewMCPServer("filenotion", "test",
		mcpserver.WithToolCapabilities(true),
		mcpserver.WithResourceCapabilities(false, false),
	)
	if err := registerAllTools(mcpSrv, serverContext, false); err != nil {
		t.Fatalf("registerAllTools failed: %v", err)
	}

	request := `{"jsonrpc":"2.0","id":1,"method":"tools/call","params":{"name":"no_such_tool","arguments":{}}}`
	response := mcpSrv.HandleMessage(context.Background(), []byte(request))
	if response == nil {
		t.Fatal("expected a response for an unknown tool call")
	}

	raw, err := json.Marshal(response)
	if err != nil {
		t.Fatalf("failed to marshal response: %v", err)
	}

	// Unknown tool names come back as a JSON-RPC error envelope, not a
	// dropped message or a panic
	if !strings.Contains(string(raw), `"error"`) {
		t.Errorf("expected an error envelope, got %s", raw)
	}
	if !strings.Contains(string(raw), "not found") {
		t.Errorf("expected a not-found error, got %s", raw)
	}
}

func TestGetCategoryFromToolName(t *testing.T) {
	tests := []struct {
		name     string
		expected string
	}{
		{"read_text_file", "File Tools"},
		{"read_csv_file", "File Tools"},
		{"list_files_in_directory", "File Tools"},
		{"get_notion_databases", "Notion Tools"},
		{"create_notion_page", "Notion Tools"},
		{"mystery_tool", "Other"},
	}

	for _, tt := range tests {
		if got := getCategoryFromToolName(tt.name); got != tt.expected {
			t.Errorf("getCategoryFromToolName(%q) = %q, want %q", tt.name, got, tt.expected)
		}
	}
}
