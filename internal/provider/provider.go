// Package provider implements the two model-provider wire dialects
// (Anthropic-style and OpenAI-style SSE) by parsing raw HTTP responses
// directly into internal/stream events — no SDK mediates the wire format,
// per the core's requirement to own streaming parsing itself.
package provider

import (
	"context"
	"encoding/json"

	"github.com/opencode-ai/opencode/internal/stream"
	"github.com/opencode-ai/opencode/pkg/types"
)

// Provider is an LLM provider: request formatting, SSE parsing, and a
// model catalog for one of the two wire dialects.
type Provider interface {
	// ID returns the provider identifier, e.g. "anthropic".
	ID() string
	// Name returns the human-readable provider name.
	Name() string
	// Models returns the list of available models.
	Models() []types.Model
	// CreateCompletion opens a streaming completion and returns a reader
	// of tagged stream events.
	CreateCompletion(ctx context.Context, req *CompletionRequest) (stream.Reader, error)
}

// ReqToolCall is an assistant message's previously-made tool call,
// included in request history.
type ReqToolCall struct {
	ID        string
	Name      string
	Arguments json.RawMessage
}

// ReqMessage is a provider-agnostic request-history entry built from the
// transcript (internal/session/transcript.go). Exactly one of Text,
// ToolCalls, or (ToolCallID+Content) is populated depending on Role.
type ReqMessage struct {
	Role       string // "user" | "assistant" | "tool"
	Text       string
	ToolCalls  []ReqToolCall // assistant messages with tool_use parts
	ToolCallID string        // tool-result messages
	ToolName   string        // tool-result messages (dialect B needs it absent; kept for logging)
	Content    string        // tool-result text
	IsError    bool
}

// ToolInfo is a tool definition offered to the model.
type ToolInfo struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Parameters  json.RawMessage `json:"parameters"` // JSON Schema
}

// CompletionRequest is a dialect-neutral request; each Provider
// implementation renders it into its own wire format (spec.md §4.1/§4.3).
type CompletionRequest struct {
	Model       string
	System      string
	Messages    []ReqMessage
	Tools       []ToolInfo
	MaxTokens   int
	Temperature float64
	TopP        float64
}

// jsonSchemaProps is the shape of the `properties`/`required` subset of a
// JSON-Schema object we need in order to describe tool parameters to a
// provider that wants its own encoding.
type jsonSchemaProps struct {
	Properties map[string]struct {
		Type        string `json:"type"`
		Description string `json:"description"`
	} `json:"properties"`
	Required []string `json:"required"`
}

func parseToolSchema(raw json.RawMessage) jsonSchemaProps {
	var s jsonSchemaProps
	if len(raw) == 0 {
		return s
	}
	_ = json.Unmarshal(raw, &s)
	return s
}
