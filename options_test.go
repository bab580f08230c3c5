package claudesdk

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestApplyOptions tests that functional options populate the options struct.
func TestApplyOptions(t *testing.T) {
	logger := slog.Default()
	stderrCalls := 0

	options := applyOptions([]Option{
		WithLogger(logger),
		WithSystemPrompt("be brief"),
		WithAppendSystemPrompt("and kind"),
		WithModel("claude-sonnet-4-5"),
		WithPermissionMode(PermissionModeAcceptEdits),
		WithPermissionPromptToolName("mcp__auth__prompt"),
		WithMaxTurns(3),
		WithAllowedTools("Read", "Grep"),
		WithDisallowedTools("Bash"),
		WithContinueConversation(true),
		WithResume("sess-9"),
		WithCwd("/tmp"),
		WithCliPath("/opt/claude"),
		WithEnv(map[string]string{"A": "1"}),
		WithStderr(func(string) { stderrCalls++ }),
	})

	require.Same(t, logger, options.Logger)
	require.Equal(t, "be brief", options.SystemPrompt)
	require.Equal(t, "and kind", options.AppendSystemPrompt)
	require.Equal(t, "claude-sonnet-4-5", options.Model)
	require.Equal(t, PermissionModeAcceptEdits, options.PermissionMode)
	require.Equal(t, "mcp__auth__prompt", options.PermissionPromptToolName)
	require.Equal(t, 3, options.MaxTurns)
	require.Equal(t, []string{"Read", "Grep"}, options.AllowedTools)
	require.Equal(t, []string{"Bash"}, options.DisallowedTools)
	require.True(t, options.ContinueConversation)
	require.Equal(t, "sess-9", options.Resume)
	require.Equal(t, "/tmp", options.Cwd)
	require.Equal(t, "/opt/claude", options.CliPath)
	require.Equal(t, map[string]string{"A": "1"}, options.Env)

	options.Stderr("line")
	require.Equal(t, 1, stderrCalls)
}

// TestApplyOptions_Defaults tests the zero-value defaults.
func TestApplyOptions_Defaults(t *testing.T) {
	options := applyOptions(nil)

	require.Nil(t, options.Logger)
	require.Empty(t, options.PermissionMode)
	require.Zero(t, options.MaxTurns)
	require.Nil(t, options.Transport)
}

// TestWithMCPServers tests MCP server map wiring.
func TestWithMCPServers(t *testing.T) {
	servers := map[string]MCPServerConfig{
		"files": &StdioServerConfig{Command: "npx"},
	}

	options := applyOptions([]Option{WithMCPServers(servers)})

	require.Len(t, options.MCPServers, 1)
	require.Equal(t, ServerTypeStdio, options.MCPServers["files"].GetType())
}
