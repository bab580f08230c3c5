package config

import (
	"log/slog"

	"github.com/parruda/claude-code-sdk-go/internal/mcp"
)

// Options configures the behavior of a Claude Code query.
type Options struct {
	// Logger is the slog logger for debug output.
	// If nil, logging is disabled (silent operation).
	Logger *slog.Logger

	// SystemPrompt replaces the default system prompt.
	SystemPrompt string

	// AppendSystemPrompt is appended to the default system prompt.
	AppendSystemPrompt string

	// AllowedTools is a list of pre-approved tools that can be used without prompting.
	AllowedTools []string

	// DisallowedTools is a list of tools that are explicitly blocked.
	DisallowedTools []string

	// MaxTurns limits the maximum number of conversation turns.
	MaxTurns int

	// Model specifies which Claude model to use (e.g., "claude-sonnet-4-5").
	Model string

	// PermissionMode controls how permissions are handled.
	// The symbolic values are translated to the CLI's camelCase tokens.
	PermissionMode PermissionMode

	// PermissionPromptToolName specifies the tool name to use for permission prompts.
	PermissionPromptToolName string

	// ContinueConversation continues the most recent conversation.
	ContinueConversation bool

	// Resume is a session ID to resume from.
	Resume string

	// MCPServers configures external MCP servers, serialized inline into
	// the --mcp-config flag. Map key is the server name.
	MCPServers map[string]mcp.ServerConfig

	// Cwd sets the working directory for the CLI process.
	// It must exist at connect time.
	Cwd string

	// CliPath is the explicit path to the claude CLI binary.
	// If empty, the CLI is resolved from PATH and common install locations.
	CliPath string

	// Env provides additional environment variables for the CLI process.
	Env map[string]string

	// Stderr is an optional callback invoked for each line of stderr output.
	Stderr func(string)

	// Transport allows injecting a custom transport implementation.
	// If nil, the default CLITransport is created automatically.
	// This field is not serialized to JSON.
	Transport Transport `json:"-"`
}
