package claudesdk

import (
	"log/slog"
)

// Option configures ClaudeCodeOptions using the functional options pattern.
type Option func(*ClaudeCodeOptions)

// applyOptions applies functional options to a ClaudeCodeOptions struct.
func applyOptions(opts []Option) *ClaudeCodeOptions {
	options := &ClaudeCodeOptions{}
	for _, opt := range opts {
		opt(options)
	}

	return options
}

// ===== Basic Configuration =====

// WithLogger sets the logger for debug output.
// If not set, logging is disabled (silent operation).
func WithLogger(logger *slog.Logger) Option {
	return func(o *ClaudeCodeOptions) {
		o.Logger = logger
	}
}

// WithSystemPrompt replaces the default system prompt.
func WithSystemPrompt(prompt string) Option {
	return func(o *ClaudeCodeOptions) {
		o.SystemPrompt = prompt
	}
}

// WithAppendSystemPrompt appends text to the default system prompt.
func WithAppendSystemPrompt(prompt string) Option {
	return func(o *ClaudeCodeOptions) {
		o.AppendSystemPrompt = prompt
	}
}

// WithModel specifies which Claude model to use (e.g., "claude-sonnet-4-5").
func WithModel(model string) Option {
	return func(o *ClaudeCodeOptions) {
		o.Model = model
	}
}

// WithPermissionMode controls how permissions are handled.
func WithPermissionMode(mode PermissionMode) Option {
	return func(o *ClaudeCodeOptions) {
		o.PermissionMode = mode
	}
}

// WithPermissionPromptToolName sets the tool name used for permission prompts.
func WithPermissionPromptToolName(name string) Option {
	return func(o *ClaudeCodeOptions) {
		o.PermissionPromptToolName = name
	}
}

// WithMaxTurns limits the maximum number of conversation turns.
func WithMaxTurns(maxTurns int) Option {
	return func(o *ClaudeCodeOptions) {
		o.MaxTurns = maxTurns
	}
}

// ===== Tools =====

// WithAllowedTools sets the list of pre-approved tools.
func WithAllowedTools(tools ...string) Option {
	return func(o *ClaudeCodeOptions) {
		o.AllowedTools = tools
	}
}

// WithDisallowedTools sets the list of explicitly blocked tools.
func WithDisallowedTools(tools ...string) Option {
	return func(o *ClaudeCodeOptions) {
		o.DisallowedTools = tools
	}
}

// WithMCPServers configures external MCP servers by name.
func WithMCPServers(servers map[string]MCPServerConfig) Option {
	return func(o *ClaudeCodeOptions) {
		o.MCPServers = servers
	}
}

// ===== Sessions =====

// WithContinueConversation continues the most recent conversation.
func WithContinueConversation(cont bool) Option {
	return func(o *ClaudeCodeOptions) {
		o.ContinueConversation = cont
	}
}

// WithResume resumes the conversation with the given session ID.
func WithResume(sessionID string) Option {
	return func(o *ClaudeCodeOptions) {
		o.Resume = sessionID
	}
}

// ===== Environment =====

// WithCwd sets the working directory for the CLI process.
func WithCwd(cwd string) Option {
	return func(o *ClaudeCodeOptions) {
		o.Cwd = cwd
	}
}

// WithCliPath sets the explicit path to the claude CLI binary.
// If not set, the CLI will be searched in PATH and common install locations.
func WithCliPath(path string) Option {
	return func(o *ClaudeCodeOptions) {
		o.CliPath = path
	}
}

// WithEnv sets additional environment variables for the CLI process.
func WithEnv(env map[string]string) Option {
	return func(o *ClaudeCodeOptions) {
		o.Env = env
	}
}

// WithStderr sets a callback invoked for each line of CLI stderr output.
func WithStderr(handler func(string)) Option {
	return func(o *ClaudeCodeOptions) {
		o.Stderr = handler
	}
}

// WithTransport injects a custom transport implementation.
// Primarily useful for testing against a fake CLI.
func WithTransport(transport Transport) Option {
	return func(o *ClaudeCodeOptions) {
		o.Transport = transport
	}
}
