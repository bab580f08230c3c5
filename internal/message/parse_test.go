package message

import (
	"encoding/json"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/parruda/claude-code-sdk-go/internal/errors"
)

// discardLogger returns a logger for tests that swallows all output.
func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// TestParse_UserMessageString tests parsing a user message with string content.
func TestParse_UserMessageString(t *testing.T) {
	data := map[string]any{
		"type": "user",
		"message": map[string]any{
			"role":    "user",
			"content": "Hello Claude",
		},
	}

	msg, err := Parse(discardLogger(), data)
	require.NoError(t, err)

	userMsg, ok := msg.(*UserMessage)
	require.True(t, ok)
	require.True(t, userMsg.Content.IsString())
	require.Equal(t, "Hello Claude", userMsg.Content.String())
}

// TestParse_UserMessageBlocks tests parsing a user message with block content.
func TestParse_UserMessageBlocks(t *testing.T) {
	data := map[string]any{
		"type": "user",
		"message": map[string]any{
			"role": "user",
			"content": []any{
				map[string]any{
					"type":        "tool_result",
					"tool_use_id": "toolu_123",
					"content":     "file contents",
				},
			},
		},
	}

	msg, err := Parse(discardLogger(), data)
	require.NoError(t, err)

	userMsg, ok := msg.(*UserMessage)
	require.True(t, ok)
	require.False(t, userMsg.Content.IsString())

	blocks := userMsg.Content.Blocks()
	require.Len(t, blocks, 1)

	result, ok := blocks[0].(*ToolResultBlock)
	require.True(t, ok)
	require.Equal(t, "toolu_123", result.ToolUseID)
	require.Len(t, result.Content, 1)
}

// TestParse_AssistantMessage tests parsing an assistant message with mixed blocks.
func TestParse_AssistantMessage(t *testing.T) {
	data := map[string]any{
		"type": "assistant",
		"message": map[string]any{
			"model": "claude-sonnet-4-5",
			"content": []any{
				map[string]any{"type": "text", "text": "Let me read that file."},
				map[string]any{
					"type":  "tool_use",
					"id":    "toolu_456",
					"name":  "Read",
					"input": map[string]any{"file_path": "/tmp/a.txt"},
				},
			},
		},
	}

	msg, err := Parse(discardLogger(), data)
	require.NoError(t, err)

	asst, ok := msg.(*AssistantMessage)
	require.True(t, ok)
	require.Equal(t, "claude-sonnet-4-5", asst.Model)
	require.Len(t, asst.Content, 2)

	text, ok := asst.Content[0].(*TextBlock)
	require.True(t, ok)
	require.Equal(t, "Let me read that file.", text.Text)

	toolUse, ok := asst.Content[1].(*ToolUseBlock)
	require.True(t, ok)
	require.Equal(t, "Read", toolUse.Name)
	require.Equal(t, "/tmp/a.txt", toolUse.Input["file_path"])
}

// TestParse_SystemMessage tests parsing a system init message.
func TestParse_SystemMessage(t *testing.T) {
	data := map[string]any{
		"type":       "system",
		"subtype":    "init",
		"session_id": "abc",
		"tools":      []any{"Read", "Write"},
	}

	msg, err := Parse(discardLogger(), data)
	require.NoError(t, err)

	sys, ok := msg.(*SystemMessage)
	require.True(t, ok)
	require.Equal(t, "init", sys.Subtype)
	require.Equal(t, "abc", sys.Data["session_id"])
}

// TestParse_ResultMessage tests parsing a result message.
func TestParse_ResultMessage(t *testing.T) {
	raw := `{
		"type": "result",
		"subtype": "success",
		"duration_ms": 1500,
		"duration_api_ms": 1200,
		"is_error": false,
		"num_turns": 2,
		"session_id": "sess-1",
		"total_cost_usd": 0.003,
		"usage": {"input_tokens": 10, "output_tokens": 25},
		"result": "4"
	}`

	var data map[string]any

	require.NoError(t, json.Unmarshal([]byte(raw), &data))

	msg, err := Parse(discardLogger(), data)
	require.NoError(t, err)

	result, ok := msg.(*ResultMessage)
	require.True(t, ok)
	require.Equal(t, "success", result.Subtype)
	require.Equal(t, 1500, result.DurationMs)
	require.Equal(t, 2, result.NumTurns)
	require.NotNil(t, result.TotalCostUSD)
	require.InDelta(t, 0.003, *result.TotalCostUSD, 1e-9)
	require.NotNil(t, result.Usage)
	require.Equal(t, 25, result.Usage.OutputTokens)
	require.NotNil(t, result.Result)
	require.Equal(t, "4", *result.Result)
}

// TestParse_UnknownType tests that unknown message types return the skip sentinel.
func TestParse_UnknownType(t *testing.T) {
	data := map[string]any{"type": "telemetry", "value": 1}

	_, err := Parse(discardLogger(), data)
	require.ErrorIs(t, err, errors.ErrUnknownMessageType)
}

// TestParse_MissingType tests that a missing type field is a parse error.
func TestParse_MissingType(t *testing.T) {
	_, err := Parse(discardLogger(), map[string]any{"subtype": "init"})

	require.Error(t, err)
	require.IsType(t, &errors.MessageParseError{}, err)
}

// TestParse_MalformedUserMessage tests that a user message without content fails.
func TestParse_MalformedUserMessage(t *testing.T) {
	data := map[string]any{
		"type":    "user",
		"message": map[string]any{"role": "user"},
	}

	_, err := Parse(discardLogger(), data)

	require.Error(t, err)
	require.IsType(t, &errors.MessageParseError{}, err)
}
