package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/parruda/claude-code-sdk-go/internal/config"
)

// BuildArgs constructs the CLI argument vector for a one-shot query.
//
// The vector always starts with the fixed flags requesting streaming JSON
// output with verbose framing, followed by flags derived from options, and
// always ends with --print carrying the literal prompt text. Absent optional
// fields are simply omitted.
func BuildArgs(prompt string, options *config.Options) []string {
	args := []string{
		"--output-format", "stream-json",
		"--verbose",
	}

	if options.SystemPrompt != "" {
		args = append(args, "--system-prompt", options.SystemPrompt)
	}

	if options.AppendSystemPrompt != "" {
		args = append(args, "--append-system-prompt", options.AppendSystemPrompt)
	}

	if len(options.AllowedTools) > 0 {
		args = append(args, "--allowedTools", strings.Join(options.AllowedTools, ","))
	}

	if len(options.DisallowedTools) > 0 {
		args = append(args, "--disallowedTools", strings.Join(options.DisallowedTools, ","))
	}

	if options.MaxTurns > 0 {
		args = append(args, "--max-turns", strconv.Itoa(options.MaxTurns))
	}

	if options.Model != "" {
		args = append(args, "--model", options.Model)
	}

	if options.PermissionPromptToolName != "" {
		args = append(args, "--permission-prompt-tool", options.PermissionPromptToolName)
	}

	if options.PermissionMode != "" {
		args = append(args, "--permission-mode", options.PermissionMode.CLIToken())
	}

	if options.ContinueConversation {
		args = append(args, "--continue")
	}

	if options.Resume != "" {
		args = append(args, "--resume", options.Resume)
	}

	if len(options.MCPServers) > 0 {
		// Inline JSON config with the mcpServers wrapper
		mcpConfig := map[string]any{"mcpServers": options.MCPServers}

		configJSON, err := json.Marshal(mcpConfig)
		if err == nil {
			args = append(args, "--mcp-config", string(configJSON))
		}
	}

	args = append(args, "--print", prompt)

	return args
}

// BuildEnvironment constructs the environment variables for the CLI process.
// The result is passed explicitly to the spawn call; the SDK never mutates
// the process-wide environment.
func BuildEnvironment(options *config.Options) []string {
	// Start with current environment
	env := os.Environ()

	// Mark the caller's identity for the CLI
	env = append(env, "CLAUDE_CODE_ENTRYPOINT=sdk-go")

	// Add or override with user-provided environment variables
	for key, value := range options.Env {
		env = append(env, fmt.Sprintf("%s=%s", key, value))
	}

	return env
}
