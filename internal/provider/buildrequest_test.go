package provider

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnthropicBuildRequest_SystemIsTopLevelField(t *testing.T) {
	p := &AnthropicProvider{}
	req := &CompletionRequest{
		Model:  "claude-sonnet-4",
		System: "you are a helpful assistant",
		Messages: []ReqMessage{
			{Role: "user", Text: "hi"},
		},
	}

	wire := p.buildRequest(req)
	assert.Equal(t, "you are a helpful assistant", wire.System)
	require.Len(t, wire.Messages, 1)
	assert.Equal(t, "user", wire.Messages[0].Role)
	assert.Equal(t, "hi", wire.Messages[0].Content)
}

func TestAnthropicBuildRequest_ToolResultsLiveInsideUserMessage(t *testing.T) {
	p := &AnthropicProvider{}
	req := &CompletionRequest{
		Model: "claude-sonnet-4",
		Messages: []ReqMessage{
			{Role: "user", Text: "run echo"},
			{Role: "assistant", ToolCalls: []ReqToolCall{{ID: "t1", Name: "echo", Arguments: json.RawMessage(`{"msg":"x"}`)}}},
			{Role: "tool", ToolCallID: "t1", Content: "x"},
		},
	}

	wire := p.buildRequest(req)
	require.Len(t, wire.Messages, 3)
	assert.Equal(t, "assistant", wire.Messages[1].Role)
	assert.Equal(t, "user", wire.Messages[2].Role, "tool results must be nested inside a user message, per spec.md §4.1 Dialect A")

	blocks, ok := wire.Messages[2].Content.([]any)
	require.True(t, ok)
	require.Len(t, blocks, 1)
	block, ok := blocks[0].(anthropicWireBlock)
	require.True(t, ok)
	assert.Equal(t, "tool_result", block.Type)
	assert.Equal(t, "t1", block.ToolUseID)
	assert.Equal(t, "x", block.Content)
}

func TestAnthropicBuildRequest_ConsecutiveToolResultsMergeIntoOneUserMessage(t *testing.T) {
	p := &AnthropicProvider{}
	req := &CompletionRequest{
		Model: "claude-sonnet-4",
		Messages: []ReqMessage{
			{Role: "tool", ToolCallID: "t1", Content: "a"},
			{Role: "tool", ToolCallID: "t2", Content: "b"},
		},
	}

	wire := p.buildRequest(req)
	require.Len(t, wire.Messages, 1)
	blocks, ok := wire.Messages[0].Content.([]any)
	require.True(t, ok)
	assert.Len(t, blocks, 2)
}

func TestAnthropicBuildRequest_ToolSchemaPassedThrough(t *testing.T) {
	p := &AnthropicProvider{}
	req := &CompletionRequest{
		Model: "claude-sonnet-4",
		Tools: []ToolInfo{
			{Name: "echo", Description: "echoes input", Parameters: json.RawMessage(`{"type":"object"}`)},
		},
	}

	wire := p.buildRequest(req)
	require.Len(t, wire.Tools, 1)
	assert.Equal(t, "echo", wire.Tools[0].Name)
	assert.JSONEq(t, `{"type":"object"}`, string(wire.Tools[0].InputSchema))
}

func TestOpenAIBuildRequest_SystemIsFirstMessage(t *testing.T) {
	p := &OpenAIProvider{}
	req := &CompletionRequest{
		Model:  "gpt-4o",
		System: "be terse",
		Messages: []ReqMessage{
			{Role: "user", Text: "hi"},
		},
	}

	wire := p.buildRequest(req)
	require.Len(t, wire.Messages, 2)
	assert.Equal(t, "system", wire.Messages[0].Role)
	assert.Equal(t, "be terse", wire.Messages[0].Content)
	assert.Equal(t, "user", wire.Messages[1].Role)
}

func TestOpenAIBuildRequest_ToolResultsAreSeparateToolRoleMessages(t *testing.T) {
	p := &OpenAIProvider{}
	req := &CompletionRequest{
		Model: "gpt-4o",
		Messages: []ReqMessage{
			{Role: "assistant", ToolCalls: []ReqToolCall{{ID: "t1", Name: "echo", Arguments: json.RawMessage(`{"msg":"x"}`)}}},
			{Role: "tool", ToolCallID: "t1", Content: "x"},
		},
	}

	wire := p.buildRequest(req)
	require.Len(t, wire.Messages, 2)
	require.Len(t, wire.Messages[0].ToolCalls, 1)
	assert.Equal(t, "t1", wire.Messages[0].ToolCalls[0].ID)
	assert.Equal(t, "function", wire.Messages[0].ToolCalls[0].Type)
	assert.Equal(t, `{"msg":"x"}`, wire.Messages[0].ToolCalls[0].Function.Arguments)

	assert.Equal(t, "tool", wire.Messages[1].Role)
	assert.Equal(t, "t1", wire.Messages[1].ToolCallID)
	assert.Equal(t, "x", wire.Messages[1].Content)
}

func TestOpenAIBuildRequest_ToolSchemaPassedThrough(t *testing.T) {
	p := &OpenAIProvider{}
	req := &CompletionRequest{
		Model: "gpt-4o",
		Tools: []ToolInfo{
			{Name: "echo", Description: "echoes input", Parameters: json.RawMessage(`{"type":"object"}`)},
		},
	}

	wire := p.buildRequest(req)
	require.Len(t, wire.Tools, 1)
	assert.Equal(t, "function", wire.Tools[0].Type)
	assert.Equal(t, "echo", wire.Tools[0].Function.Name)
	assert.JSONEq(t, `{"type":"object"}`, string(wire.Tools[0].Function.Parameters))
}
