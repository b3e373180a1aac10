package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/opencode-ai/opencode/internal/stream"
	"github.com/opencode-ai/opencode/pkg/types"
)

// AnthropicProvider implements Provider for Anthropic-dialect (Dialect A)
// model APIs: system prompt as a top-level field, content blocks tagged
// by type, SSE events named message_start/content_block_*/message_delta/
// message_stop.
type AnthropicProvider struct {
	config     *AnthropicConfig
	models     []types.Model
	httpClient *http.Client
}

// AnthropicConfig holds configuration for an Anthropic-dialect provider.
type AnthropicConfig struct {
	// ID is the provider identifier (e.g. "anthropic"). Empty defaults to "anthropic".
	ID        string
	APIKey    string
	BaseURL   string
	AnthropicVersion string
	HTTPClient *http.Client
}

const defaultAnthropicBaseURL = "https://api.anthropic.com/v1/messages"

// NewAnthropicProvider creates a new Dialect A provider.
func NewAnthropicProvider(ctx context.Context, config *AnthropicConfig) (*AnthropicProvider, error) {
	apiKey := config.APIKey
	if apiKey == "" {
		apiKey = os.Getenv("ANTHROPIC_API_KEY")
	}
	if apiKey == "" {
		return nil, fmt.Errorf("ANTHROPIC_API_KEY not set")
	}

	client := config.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}

	return &AnthropicProvider{
		config:     config,
		models:     anthropicModels(),
		httpClient: client,
	}, nil
}

func (p *AnthropicProvider) ID() string {
	if p.config.ID != "" {
		return p.config.ID
	}
	return "anthropic"
}

func (p *AnthropicProvider) Name() string { return "Anthropic" }

func (p *AnthropicProvider) Models() []types.Model { return p.models }

// anthropicWireRequest mirrors the Dialect A request body: system is a
// top-level string, messages carries only user/assistant roles, and tool
// results live inside a user message's content array (spec.md §4.1).
type anthropicWireRequest struct {
	Model       string                 `json:"model"`
	System      string                 `json:"system,omitempty"`
	Messages    []anthropicWireMessage `json:"messages"`
	Tools       []anthropicWireTool    `json:"tools,omitempty"`
	MaxTokens   int                    `json:"max_tokens"`
	Temperature float64                `json:"temperature,omitempty"`
	TopP        float64                `json:"top_p,omitempty"`
	Stream      bool                   `json:"stream"`
}

type anthropicWireMessage struct {
	Role    string `json:"role"`
	Content any    `json:"content"` // string or []anthropicWireBlock
}

type anthropicWireBlock struct {
	Type      string          `json:"type"` // "text" | "tool_use" | "tool_result"
	Text      string          `json:"text,omitempty"`
	ID        string          `json:"id,omitempty"`
	Name      string          `json:"name,omitempty"`
	Input     json.RawMessage `json:"input,omitempty"`
	ToolUseID string          `json:"tool_use_id,omitempty"`
	Content   string          `json:"content,omitempty"`
	IsError   bool            `json:"is_error,omitempty"`
}

type anthropicWireTool struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	InputSchema json.RawMessage `json:"input_schema"`
}

// buildRequest renders the dialect-neutral request into Dialect A,
// merging consecutive tool_use/tool_result parts that belong to the same
// logical turn into a single message the way Anthropic expects.
func (p *AnthropicProvider) buildRequest(req *CompletionRequest) anthropicWireRequest {
	wire := anthropicWireRequest{
		Model:       req.Model,
		System:      req.System,
		MaxTokens:   req.MaxTokens,
		Temperature: req.Temperature,
		TopP:        req.TopP,
		Stream:      true,
	}

	for _, t := range req.Tools {
		wire.Tools = append(wire.Tools, anthropicWireTool{
			Name:        t.Name,
			Description: t.Description,
			InputSchema: t.Parameters,
		})
	}

	var pendingToolResults []anthropicWireBlock
	flushToolResults := func() {
		if len(pendingToolResults) == 0 {
			return
		}
		blocks := make([]any, len(pendingToolResults))
		for i, b := range pendingToolResults {
			blocks[i] = b
		}
		wire.Messages = append(wire.Messages, anthropicWireMessage{Role: "user", Content: blocks})
		pendingToolResults = nil
	}

	for _, m := range req.Messages {
		switch m.Role {
		case "user":
			flushToolResults()
			wire.Messages = append(wire.Messages, anthropicWireMessage{Role: "user", Content: m.Text})
		case "assistant":
			flushToolResults()
			if len(m.ToolCalls) == 0 {
				wire.Messages = append(wire.Messages, anthropicWireMessage{Role: "assistant", Content: m.Text})
				continue
			}
			var blocks []any
			if m.Text != "" {
				blocks = append(blocks, anthropicWireBlock{Type: "text", Text: m.Text})
			}
			for _, tc := range m.ToolCalls {
				blocks = append(blocks, anthropicWireBlock{Type: "tool_use", ID: tc.ID, Name: tc.Name, Input: tc.Arguments})
			}
			wire.Messages = append(wire.Messages, anthropicWireMessage{Role: "assistant", Content: blocks})
		case "tool":
			pendingToolResults = append(pendingToolResults, anthropicWireBlock{
				Type:      "tool_result",
				ToolUseID: m.ToolCallID,
				Content:   m.Content,
				IsError:   m.IsError,
			})
		}
	}
	flushToolResults()

	return wire
}

// CreateCompletion opens a Dialect A SSE stream.
func (p *AnthropicProvider) CreateCompletion(ctx context.Context, req *CompletionRequest) (stream.Reader, error) {
	wire := p.buildRequest(req)

	body, err := json.Marshal(wire)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	baseURL := p.config.BaseURL
	if baseURL == "" {
		baseURL = defaultAnthropicBaseURL
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, baseURL, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-api-key", p.config.APIKey)
	version := p.config.AnthropicVersion
	if version == "" {
		version = "2023-06-01"
	}
	httpReq.Header.Set("anthropic-version", version)
	httpReq.Header.Set("Accept", "text/event-stream")

	resp, err := p.httpClient.Do(httpReq)
	if err != nil {
		return newErrorReader(stream.StreamError{Message: err.Error(), Retryable: true}), nil
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		defer resp.Body.Close()
		b, _ := io.ReadAll(resp.Body)
		retryable := resp.StatusCode == 429 || resp.StatusCode >= 500
		return newErrorReader(stream.StreamError{
			Message:   fmt.Sprintf("anthropic http %d: %s", resp.StatusCode, string(b)),
			Retryable: retryable,
		}), nil
	}

	return newAnthropicStreamReader(resp.Body), nil
}

func anthropicModels() []types.Model {
	return []types.Model{
		{
			ID: "claude-sonnet-4-20250514", Name: "Claude Sonnet 4", ProviderID: "anthropic",
			ContextLength: 200000, MaxOutputTokens: 64000, SupportsTools: true, SupportsVision: true,
			InputPrice: 3.0, OutputPrice: 15.0,
			Options: types.ModelOptions{PromptCaching: true, ExtendedOutput: true},
		},
		{
			ID: "claude-opus-4-20250514", Name: "Claude Opus 4", ProviderID: "anthropic",
			ContextLength: 200000, MaxOutputTokens: 32000, SupportsTools: true, SupportsVision: true,
			SupportsReasoning: true, InputPrice: 15.0, OutputPrice: 75.0,
			Options: types.ModelOptions{PromptCaching: true},
		},
		{
			ID: "claude-3-5-sonnet-20241022", Name: "Claude 3.5 Sonnet", ProviderID: "anthropic",
			ContextLength: 200000, MaxOutputTokens: 8192, SupportsTools: true, SupportsVision: true,
			InputPrice: 3.0, OutputPrice: 15.0,
			Options: types.ModelOptions{PromptCaching: true},
		},
		{
			ID: "claude-3-5-haiku-20241022", Name: "Claude 3.5 Haiku", ProviderID: "anthropic",
			ContextLength: 200000, MaxOutputTokens: 8192, SupportsTools: true, SupportsVision: true,
			InputPrice: 0.8, OutputPrice: 4.0,
		},
		{
			ID: "claude-haiku-4-5-20251001", Name: "Claude 4.5 Haiku", ProviderID: "anthropic",
			ContextLength: 200000, MaxOutputTokens: 8192, SupportsTools: true, SupportsVision: true,
			InputPrice: 0.8, OutputPrice: 4.0,
		},
		{
			ID: "claude-haiku-4-5", Name: "Claude 4.5 Haiku", ProviderID: "anthropic",
			ContextLength: 200000, MaxOutputTokens: 8192, SupportsTools: true, SupportsVision: true,
			InputPrice: 0.8, OutputPrice: 4.0,
		},
	}
}
