package mcp

import (
	"fmt"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/futuretea/rancher-api-mcp-server/pkg/api"
	"github.com/futuretea/rancher-api-mcp-server/pkg/config"
)

func testConfig() *config.StaticConfig {
	cfg := config.DefaultConfig()
	cfg.RancherServerURL = "https://rancher.example.com"
	cfg.RancherToken = "tok123"
	return cfg
}

func TestNewServer(t *testing.T) {
	server, err := NewServer(Configuration{StaticConfig: testConfig()})
	if err != nil {
		t.Fatalf("NewServer returned error: %v", err)
	}
	defer server.Close()

	tools := server.GetEnabledTools()
	expectedTools := []string{"cluster_list", "pod_list", "configuration_view"}
	for _, expected := range expectedTools {
		found := false
		for _, actual := range tools {
			if actual == expected {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("Expected tool '%s' not found in registered tools %v", expected, tools)
		}
	}
}

func TestToolsetSelection(t *testing.T) {
	cfg := testConfig()
	cfg.Toolsets = []string{"rancher"}

	server, err := NewServer(Configuration{StaticConfig: cfg})
	if err != nil {
		t.Fatalf("NewServer returned error: %v", err)
	}
	defer server.Close()

	for _, tool := range server.GetEnabledTools() {
		if tool == "configuration_view" {
			t.Error("config toolset should not be registered when only 'rancher' is enabled")
		}
	}
}

func TestDisabledTools(t *testing.T) {
	cfg := testConfig()
	cfg.DisabledTools = []string{"pod_list"}

	server, err := NewServer(Configuration{StaticConfig: cfg})
	if err != nil {
		t.Fatalf("NewServer returned error: %v", err)
	}
	defer server.Close()

	for _, tool := range server.GetEnabledTools() {
		if tool == "pod_list" {
			t.Error("pod_list should be disabled")
		}
	}
}

func TestEnabledToolsAllowlist(t *testing.T) {
	cfg := testConfig()
	cfg.EnabledTools = []string{"cluster_list"}

	server, err := NewServer(Configuration{StaticConfig: cfg})
	if err != nil {
		t.Fatalf("NewServer returned error: %v", err)
	}
	defer server.Close()

	tools := server.GetEnabledTools()
	if len(tools) != 1 || tools[0] != "cluster_list" {
		t.Errorf("expected only cluster_list to be enabled, got %v", tools)
	}
}

func TestNewTextResult(t *testing.T) {
	// Success case
	result := NewTextResult("success message", nil)
	if result.IsError {
		t.Error("Result should not be an error")
	}

	if len(result.Content) != 1 {
		t.Fatalf("Expected 1 content item, got %d", len(result.Content))
	}

	textContent, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatal("Content should be TextContent")
	}

	if textContent.Text != "success message" {
		t.Errorf("Expected 'success message', got '%s'", textContent.Text)
	}

	// Error case
	result = NewTextResult("", fmt.Errorf("test error"))
	if !result.IsError {
		t.Error("Result should be an error")
	}

	textContent, ok = result.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatal("Content should be TextContent")
	}

	if textContent.Text != "test error" {
		t.Errorf("Expected 'test error', got '%s'", textContent.Text)
	}
}

func TestConfigureToolInjectsDefaultFormat(t *testing.T) {
	cfg := testConfig()
	cfg.ListOutput = "json"

	server, err := NewServer(Configuration{StaticConfig: cfg})
	if err != nil {
		t.Fatalf("NewServer returned error: %v", err)
	}
	defer server.Close()

	var gotParams map[string]interface{}
	tool := server.configureTool(newParamCaptureTool(&gotParams))

	if _, err := tool.Handler(nil, map[string]interface{}{}); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	if gotParams["format"] != "json" {
		t.Errorf("expected default format 'json' to be injected, got %v", gotParams["format"])
	}

	// Explicit format wins over the default
	if _, err := tool.Handler(nil, map[string]interface{}{"format": "table"}); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	if gotParams["format"] != "table" {
		t.Errorf("explicit format should not be overridden, got %v", gotParams["format"])
	}
}

func newParamCaptureTool(captured *map[string]interface{}) api.ServerTool {
	return api.ServerTool{
		Tool: mcp.Tool{Name: "capture"},
		Handler: func(client interface{}, params map[string]interface{}) (string, error) {
			*captured = params
			return "", nil
		},
	}
}
