package errors

import (
	stderrors "errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestCLINotFoundError_Message tests that the guidance message wins over the path list.
func TestCLINotFoundError_Message(t *testing.T) {
	err := &CLINotFoundError{Message: "Claude Code not found. Install with: npm install -g @anthropic-ai/claude-code"}
	require.Contains(t, err.Error(), "npm install -g @anthropic-ai/claude-code")

	err = &CLINotFoundError{SearchedPaths: []string{"$PATH", "/usr/local/bin/claude"}}
	require.Contains(t, err.Error(), "/usr/local/bin/claude")
}

// TestCLINotFoundError_IsConnectionError verifies the not-found/connection
// subtype relationship: errors.As for *CLIConnectionError matches a
// CLINotFoundError.
func TestCLINotFoundError_IsConnectionError(t *testing.T) {
	var err error = &CLINotFoundError{Message: "not found"}

	var connErr *CLIConnectionError

	require.True(t, stderrors.As(err, &connErr))
	require.ErrorContains(t, connErr, "not found")
}

// TestCLIConnectionError_Unwrap tests error unwrapping.
func TestCLIConnectionError_Unwrap(t *testing.T) {
	inner := stderrors.New("spawn failed")
	err := &CLIConnectionError{Err: inner}

	require.ErrorIs(t, err, inner)
	require.Contains(t, err.Error(), "spawn failed")
}

// TestProcessError_Error tests process error formatting.
func TestProcessError_Error(t *testing.T) {
	err := &ProcessError{ExitCode: 2, Stderr: "boom"}
	require.Contains(t, err.Error(), "exit 2")
	require.Contains(t, err.Error(), "boom")

	err = &ProcessError{ExitCode: 1}
	require.Contains(t, err.Error(), "exit 1")
}

// TestCLIJSONDecodeError_ExcerptBounded tests that the message shows only a
// bounded excerpt while RawData keeps the full offending text.
func TestCLIJSONDecodeError_ExcerptBounded(t *testing.T) {
	raw := `{"data":"` + strings.Repeat("x", 5000)
	err := &CLIJSONDecodeError{RawData: raw, Err: ErrBufferOverflow}

	require.Equal(t, raw, err.RawData)
	require.Less(t, len(err.Error()), 300)
	require.Contains(t, err.Error(), "...")
	require.ErrorIs(t, err, ErrBufferOverflow)
}

// TestCLIJSONDecodeError_ShortRawNotTruncated tests short raw data passes through.
func TestCLIJSONDecodeError_ShortRawNotTruncated(t *testing.T) {
	err := &CLIJSONDecodeError{RawData: `{"bad"`, Err: stderrors.New("unexpected end of JSON input")}

	require.Contains(t, err.Error(), `{"bad"`)
	require.NotContains(t, err.Error(), "...")
}

// TestSDKErrorMarker tests the base interface marker on all types.
func TestSDKErrorMarker(t *testing.T) {
	for _, err := range []ClaudeSDKError{
		&CLINotFoundError{},
		&CLIConnectionError{},
		&ProcessError{},
		&MessageParseError{},
		&CLIJSONDecodeError{},
	} {
		require.True(t, err.IsClaudeSDKError())
	}
}
