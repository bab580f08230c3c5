package claudesdk

import "github.com/parruda/claude-code-sdk-go/internal/errors"

// Re-export error types from internal package

// CLINotFoundError indicates the Claude Code CLI binary was not found.
type CLINotFoundError = errors.CLINotFoundError

// CLIConnectionError indicates failure to connect to the CLI.
type CLIConnectionError = errors.CLIConnectionError

// ProcessError indicates the CLI process failed.
type ProcessError = errors.ProcessError

// MessageParseError indicates message parsing failed.
type MessageParseError = errors.MessageParseError

// CLIJSONDecodeError indicates JSON parsing failed for CLI output.
type CLIJSONDecodeError = errors.CLIJSONDecodeError

// ClaudeSDKError is the base interface for all SDK errors.
type ClaudeSDKError = errors.ClaudeSDKError

// Re-export sentinel errors from internal package.
var (
	// ErrTransportNotConnected indicates the transport is not connected.
	ErrTransportNotConnected = errors.ErrTransportNotConnected

	// ErrSessionClosed indicates the transport session has been disconnected
	// and cannot be reused.
	ErrSessionClosed = errors.ErrSessionClosed

	// ErrBufferOverflow indicates the stream reassembly buffer limit was exceeded.
	ErrBufferOverflow = errors.ErrBufferOverflow
)
