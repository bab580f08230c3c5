package claudesdk

import (
	"github.com/parruda/claude-code-sdk-go/internal/config"
	"github.com/parruda/claude-code-sdk-go/internal/mcp"
	"github.com/parruda/claude-code-sdk-go/internal/message"
)

// Re-export types from internal packages

// ===== Options and Configuration =====

// ClaudeCodeOptions configures the behavior of a Claude Code query.
type ClaudeCodeOptions = config.Options

// PermissionMode represents different permission handling modes.
type PermissionMode = config.PermissionMode

const (
	// PermissionModeDefault uses standard permission prompts.
	PermissionModeDefault = config.PermissionModeDefault
	// PermissionModeAcceptEdits automatically accepts file edits.
	PermissionModeAcceptEdits = config.PermissionModeAcceptEdits
	// PermissionModeBypassPermissions bypasses all permission checks.
	PermissionModeBypassPermissions = config.PermissionModeBypassPermissions
	// PermissionModePlan enables plan mode for implementation planning.
	PermissionModePlan = config.PermissionModePlan
)

// ===== MCP Server Configuration =====

// MCPServerConfig is the interface for MCP server configurations.
type MCPServerConfig = mcp.ServerConfig

// ServerType represents the type of MCP server.
type ServerType = mcp.ServerType

const (
	// ServerTypeStdio uses stdio for communication.
	ServerTypeStdio = mcp.ServerTypeStdio
	// ServerTypeSSE uses Server-Sent Events.
	ServerTypeSSE = mcp.ServerTypeSSE
	// ServerTypeHTTP uses HTTP for communication.
	ServerTypeHTTP = mcp.ServerTypeHTTP
)

// StdioServerConfig configures an MCP server launched as a subprocess.
type StdioServerConfig = mcp.StdioServerConfig

// SSEServerConfig configures an MCP server reached over SSE.
type SSEServerConfig = mcp.SSEServerConfig

// HTTPServerConfig configures an MCP server reached over HTTP.
type HTTPServerConfig = mcp.HTTPServerConfig

// ===== Messages =====

// Message represents any message in the conversation.
type Message = message.Message

// UserMessage represents a message from the user.
type UserMessage = message.UserMessage

// UserMessageContent represents content that can be either a string or []ContentBlock.
type UserMessageContent = message.UserMessageContent

// NewUserMessageContent creates UserMessageContent from a string.
var NewUserMessageContent = message.NewUserMessageContent

// NewUserMessageContentBlocks creates UserMessageContent from blocks.
var NewUserMessageContentBlocks = message.NewUserMessageContentBlocks

// AssistantMessage represents a message from Claude.
type AssistantMessage = message.AssistantMessage

// SystemMessage represents a system event message such as session init.
type SystemMessage = message.SystemMessage

// ResultMessage represents the final result of a query.
type ResultMessage = message.ResultMessage

// Usage reports token consumption for a query.
type Usage = message.Usage

// ===== Content Blocks =====

// ContentBlock represents a block of content in a message.
type ContentBlock = message.ContentBlock

// TextBlock represents plain text content.
type TextBlock = message.TextBlock

// ThinkingBlock represents extended thinking content.
type ThinkingBlock = message.ThinkingBlock

// ToolUseBlock represents a tool invocation by Claude.
type ToolUseBlock = message.ToolUseBlock

// ToolResultBlock represents the result of a tool invocation.
type ToolResultBlock = message.ToolResultBlock
