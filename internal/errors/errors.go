package errors

import (
	"errors"
	"fmt"
)

// decodeErrorExcerptLen bounds how much of the offending raw text appears
// in a CLIJSONDecodeError message. The full text stays on RawData.
const decodeErrorExcerptLen = 100

// ClaudeSDKError is the base interface for all SDK errors.
type ClaudeSDKError interface {
	error
	IsClaudeSDKError() bool
}

// Compile-time verification that all error types implement ClaudeSDKError.
var (
	_ ClaudeSDKError = (*CLINotFoundError)(nil)
	_ ClaudeSDKError = (*CLIConnectionError)(nil)
	_ ClaudeSDKError = (*ProcessError)(nil)
	_ ClaudeSDKError = (*MessageParseError)(nil)
	_ ClaudeSDKError = (*CLIJSONDecodeError)(nil)
)

// Sentinel errors for commonly checked conditions.
var (
	// ErrTransportNotConnected indicates an operation was attempted before
	// a successful Connect.
	ErrTransportNotConnected = errors.New("transport not connected")

	// ErrSessionClosed indicates the transport session has been disconnected
	// and cannot be reused. Construct a new transport per query.
	ErrSessionClosed = errors.New("session closed: transports are single-use, create a new one per query")

	// ErrBufferOverflow indicates the stream reassembly buffer exceeded its
	// maximum size before a complete JSON value could be parsed.
	ErrBufferOverflow = errors.New("JSON message exceeded maximum buffer size")

	// ErrUnknownMessageType indicates the message type is not recognized by the SDK.
	// Callers should skip these messages rather than treating them as fatal.
	ErrUnknownMessageType = errors.New("unknown message type")
)

// CLIConnectionError indicates failure to connect to the CLI. This covers
// spawn-time failures such as a missing working directory or an OS-level
// error starting the process.
type CLIConnectionError struct {
	Err error
}

func (e *CLIConnectionError) Error() string {
	return fmt.Sprintf("failed to connect to CLI: %v", e.Err)
}

func (e *CLIConnectionError) Unwrap() error {
	return e.Err
}

// IsClaudeSDKError implements ClaudeSDKError.
func (e *CLIConnectionError) IsClaudeSDKError() bool { return true }

// CLINotFoundError indicates the Claude CLI binary could not be resolved.
// Message carries installation guidance for the user.
type CLINotFoundError struct {
	Message       string
	SearchedPaths []string
}

func (e *CLINotFoundError) Error() string {
	if e.Message != "" {
		return e.Message
	}

	return fmt.Sprintf("claude CLI not found in: %v", e.SearchedPaths)
}

// As makes a CLINotFoundError match errors.As checks for *CLIConnectionError.
// Not-found is a specialization of the connection failure family: callers
// handling connection errors also handle discovery failures.
func (e *CLINotFoundError) As(target any) bool {
	if t, ok := target.(**CLIConnectionError); ok {
		*t = &CLIConnectionError{Err: e}

		return true
	}

	return false
}

// IsClaudeSDKError implements ClaudeSDKError.
func (e *CLINotFoundError) IsClaudeSDKError() bool { return true }

// ProcessError indicates the CLI process exited with a non-zero code.
// Stderr holds the full accumulated stderr output.
type ProcessError struct {
	ExitCode int
	Stderr   string
	Err      error
}

func (e *ProcessError) Error() string {
	if e.Stderr != "" {
		return fmt.Sprintf("CLI process failed (exit %d): %s", e.ExitCode, e.Stderr)
	}

	if e.Err != nil {
		return fmt.Sprintf("CLI process failed (exit %d): %v", e.ExitCode, e.Err)
	}

	return fmt.Sprintf("CLI process failed (exit %d)", e.ExitCode)
}

func (e *ProcessError) Unwrap() error {
	return e.Err
}

// IsClaudeSDKError implements ClaudeSDKError.
func (e *ProcessError) IsClaudeSDKError() bool { return true }

// MessageParseError indicates a received JSON value could not be converted
// into a typed message.
type MessageParseError struct {
	Message string
	Err     error
	Data    map[string]any
}

func (e *MessageParseError) Error() string {
	return fmt.Sprintf("failed to parse message: %v", e.Err)
}

func (e *MessageParseError) Unwrap() error {
	return e.Err
}

// IsClaudeSDKError implements ClaudeSDKError.
func (e *MessageParseError) IsClaudeSDKError() bool { return true }

// CLIJSONDecodeError indicates JSON reassembly failed for CLI output.
// RawData preserves the full offending text; the message shows only a
// bounded excerpt of it.
type CLIJSONDecodeError struct {
	RawData string
	Err     error
}

func (e *CLIJSONDecodeError) Error() string {
	excerpt := e.RawData
	if len(excerpt) > decodeErrorExcerptLen {
		excerpt = excerpt[:decodeErrorExcerptLen] + "..."
	}

	return fmt.Sprintf("failed to decode JSON from CLI: %v (raw: %s)", e.Err, excerpt)
}

func (e *CLIJSONDecodeError) Unwrap() error {
	return e.Err
}

// IsClaudeSDKError implements ClaudeSDKError.
func (e *CLIJSONDecodeError) IsClaudeSDKError() bool { return true }
