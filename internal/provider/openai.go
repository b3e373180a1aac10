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

// OpenAIProvider implements Provider for OpenAI-dialect (Dialect B) APIs:
// system prompt as the first `{role:"system"}` message, tool calls as
// `tool_calls[].function.{name,arguments}`, SSE deltas under
// `choices[0].delta`. Also serves OpenAI-compatible endpoints (Azure,
// local gateways, ARK) by overriding BaseURL/Headers.
type OpenAIProvider struct {
	config     *OpenAIConfig
	models     []types.Model
	httpClient *http.Client
}

// OpenAIConfig holds configuration for a Dialect B provider.
type OpenAIConfig struct {
	// ID is the provider identifier (e.g. "openai", "ark", "qwen"). Empty defaults to "openai".
	ID         string
	APIKey     string
	BaseURL    string
	ExtraHeaders map[string]string
	HTTPClient *http.Client
}

const defaultOpenAIBaseURL = "https://api.openai.com/v1/chat/completions"

// NewOpenAIProvider creates a new Dialect B provider.
func NewOpenAIProvider(ctx context.Context, config *OpenAIConfig) (*OpenAIProvider, error) {
	apiKey := config.APIKey
	if apiKey == "" {
		apiKey = os.Getenv("OPENAI_API_KEY")
	}
	if apiKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY not set")
	}

	client := config.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}

	return &OpenAIProvider{
		config:     config,
		models:     openAIModels(),
		httpClient: client,
	}, nil
}

func (p *OpenAIProvider) ID() string {
	if p.config.ID != "" {
		return p.config.ID
	}
	return "openai"
}

func (p *OpenAIProvider) Name() string { return "OpenAI" }

func (p *OpenAIProvider) Models() []types.Model { return p.models }

type openAIWireRequest struct {
	Model       string              `json:"model"`
	Messages    []openAIWireMessage `json:"messages"`
	Tools       []openAIWireTool    `json:"tools,omitempty"`
	MaxTokens   int                 `json:"max_tokens,omitempty"`
	Temperature float64             `json:"temperature,omitempty"`
	TopP        float64             `json:"top_p,omitempty"`
	Stream      bool                `json:"stream"`
}

type openAIWireMessage struct {
	Role       string               `json:"role"`
	Content    string               `json:"content,omitempty"`
	ToolCalls  []openAIWireToolCall `json:"tool_calls,omitempty"`
	ToolCallID string               `json:"tool_call_id,omitempty"`
}

type openAIWireToolCall struct {
	ID       string                  `json:"id"`
	Type     string                  `json:"type"`
	Function openAIWireToolCallFunc  `json:"function"`
}

type openAIWireToolCallFunc struct {
	Name      string `json:"name"`
	Arguments string `json:"arguments"`
}

type openAIWireTool struct {
	Type     string                 `json:"type"`
	Function openAIWireToolFunction `json:"function"`
}

type openAIWireToolFunction struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Parameters  json.RawMessage `json:"parameters"`
}

func (p *OpenAIProvider) buildRequest(req *CompletionRequest) openAIWireRequest {
	wire := openAIWireRequest{
		Model:       req.Model,
		MaxTokens:   req.MaxTokens,
		Temperature: req.Temperature,
		TopP:        req.TopP,
		Stream:      true,
	}

	if req.System != "" {
		wire.Messages = append(wire.Messages, openAIWireMessage{Role: "system", Content: req.System})
	}

	for _, m := range req.Messages {
		switch m.Role {
		case "user":
			wire.Messages = append(wire.Messages, openAIWireMessage{Role: "user", Content: m.Text})
		case "assistant":
			msg := openAIWireMessage{Role: "assistant", Content: m.Text}
			for _, tc := range m.ToolCalls {
				msg.ToolCalls = append(msg.ToolCalls, openAIWireToolCall{
					ID:   tc.ID,
					Type: "function",
					Function: openAIWireToolCallFunc{
						Name:      tc.Name,
						Arguments: string(tc.Arguments),
					},
				})
			}
			wire.Messages = append(wire.Messages, msg)
		case "tool":
			content := m.Content
			if m.IsError && content == "" {
				content = "error"
			}
			wire.Messages = append(wire.Messages, openAIWireMessage{
				Role:       "tool",
				Content:    content,
				ToolCallID: m.ToolCallID,
			})
		}
	}

	for _, t := range req.Tools {
		wire.Tools = append(wire.Tools, openAIWireTool{
			Type: "function",
			Function: openAIWireToolFunction{
				Name:        t.Name,
				Description: t.Description,
				Parameters:  t.Parameters,
			},
		})
	}

	return wire
}

// CreateCompletion opens a Dialect B SSE stream.
func (p *OpenAIProvider) CreateCompletion(ctx context.Context, req *CompletionRequest) (stream.Reader, error) {
	wire := p.buildRequest(req)

	body, err := json.Marshal(wire)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	baseURL := p.config.BaseURL
	if baseURL == "" {
		baseURL = defaultOpenAIBaseURL
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, baseURL, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+p.config.APIKey)
	httpReq.Header.Set("Accept", "text/event-stream")
	for k, v := range p.config.ExtraHeaders {
		httpReq.Header.Set(k, v)
	}

	resp, err := p.httpClient.Do(httpReq)
	if err != nil {
		return newErrorReader(stream.StreamError{Message: err.Error(), Retryable: true}), nil
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		defer resp.Body.Close()
		b, _ := io.ReadAll(resp.Body)
		retryable := resp.StatusCode == 429 || resp.StatusCode >= 500
		return newErrorReader(stream.StreamError{
			Message:   fmt.Sprintf("openai http %d: %s", resp.StatusCode, string(b)),
			Retryable: retryable,
		}), nil
	}

	return newOpenAIStreamReader(resp.Body), nil
}

func openAIModels() []types.Model {
	return []types.Model{
		{ID: "gpt-5", Name: "GPT-5", ProviderID: "openai", ContextLength: 272000, MaxOutputTokens: 128000, SupportsTools: true, SupportsVision: true, SupportsReasoning: true, InputPrice: 1.25, OutputPrice: 10.0},
		{ID: "gpt-5-mini", Name: "GPT-5 Mini", ProviderID: "openai", ContextLength: 272000, MaxOutputTokens: 128000, SupportsTools: true, SupportsVision: true, SupportsReasoning: true, InputPrice: 0.25, OutputPrice: 2.0},
		{ID: "gpt-5-nano", Name: "GPT-5 Nano", ProviderID: "openai", ContextLength: 272000, MaxOutputTokens: 128000, SupportsTools: true, SupportsVision: true, InputPrice: 0.05, OutputPrice: 0.4},
		{ID: "gpt-4o", Name: "GPT-4o", ProviderID: "openai", ContextLength: 128000, MaxOutputTokens: 16384, SupportsTools: true, SupportsVision: true, InputPrice: 2.5, OutputPrice: 10.0},
		{ID: "gpt-4o-mini", Name: "GPT-4o Mini", ProviderID: "openai", ContextLength: 128000, MaxOutputTokens: 16384, SupportsTools: true, SupportsVision: true, InputPrice: 0.15, OutputPrice: 0.6},
		{ID: "o1", Name: "O1", ProviderID: "openai", ContextLength: 200000, MaxOutputTokens: 100000, SupportsTools: true, SupportsReasoning: true, InputPrice: 15.0, OutputPrice: 60.0},
		{ID: "o1-mini", Name: "O1 Mini", ProviderID: "openai", ContextLength: 128000, MaxOutputTokens: 65536, SupportsTools: true, SupportsReasoning: true, InputPrice: 1.1, OutputPrice: 4.4},
	}
}
