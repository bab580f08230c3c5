package mcp

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestStdioServerConfig_DefaultType tests the type default when unset.
func TestStdioServerConfig_DefaultType(t *testing.T) {
	cfg := &StdioServerConfig{Command: "npx", Args: []string{"server"}}
	require.Equal(t, ServerTypeStdio, cfg.GetType())

	explicit := ServerTypeStdio
	cfg.Type = &explicit
	require.Equal(t, ServerTypeStdio, cfg.GetType())
}

// TestServerConfig_Serialization tests the JSON shape sent to the CLI.
func TestServerConfig_Serialization(t *testing.T) {
	servers := map[string]ServerConfig{
		"files": &StdioServerConfig{Command: "npx", Args: []string{"-y", "@mcp/files"}},
		"web":   &SSEServerConfig{Type: ServerTypeSSE, URL: "https://example.com/sse"},
		"api":   &HTTPServerConfig{Type: ServerTypeHTTP, URL: "https://example.com/mcp"},
	}

	data, err := json.Marshal(map[string]any{"mcpServers": servers})
	require.NoError(t, err)

	var decoded map[string]map[string]map[string]any

	require.NoError(t, json.Unmarshal(data, &decoded))

	files := decoded["mcpServers"]["files"]
	require.Equal(t, "npx", files["command"])
	require.NotContains(t, files, "type")

	web := decoded["mcpServers"]["web"]
	require.Equal(t, "sse", web["type"])
	require.Equal(t, "https://example.com/sse", web["url"])

	api := decoded["mcpServers"]["api"]
	require.Equal(t, "http", api["type"])
}
