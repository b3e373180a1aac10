package provider

import (
	"encoding/json"
	"io"

	"github.com/opencode-ai/opencode/internal/stream"
)

// errorReader is a one-shot stream.Reader that immediately yields a
// single StreamError, used when the HTTP request itself fails before any
// SSE frame is read.
type errorReader struct {
	err  stream.StreamError
	sent bool
}

func newErrorReader(err stream.StreamError) *errorReader {
	return &errorReader{err: err}
}

func (r *errorReader) Next() (stream.Event, error) {
	if r.sent {
		return nil, io.EOF
	}
	r.sent = true
	return r.err, nil
}

func (r *errorReader) Close() error { return nil }

// anthropicStreamReader parses Dialect A SSE frames into stream.Events
// per the translation table in spec.md §4.3, maintaining per-stream state
// for the current tool-call block and its accumulated JSON-delta buffer.
type anthropicStreamReader struct {
	body   io.ReadCloser
	sse    *sseScanner
	queue  []stream.Event
	done   bool

	// index -> content block kind ("text" | "tool_use"), and for tool_use
	// blocks, the accumulated partial-JSON input buffer.
	blockKind map[int]string
	blockID   map[int]string
	blockName map[int]string
	toolArgs  map[string]string
	toolName  map[string]string

	finishReason string
	usage        stream.Usage
}

func newAnthropicStreamReader(body io.ReadCloser) *anthropicStreamReader {
	return &anthropicStreamReader{
		body:      body,
		sse:       newSSEScanner(body),
		blockKind: make(map[int]string),
		blockID:   make(map[int]string),
		blockName: make(map[int]string),
		toolArgs:  make(map[string]string),
		toolName:  make(map[string]string),
	}
}

func (r *anthropicStreamReader) Close() error { return r.body.Close() }

func (r *anthropicStreamReader) Next() (stream.Event, error) {
	for {
		if len(r.queue) > 0 {
			ev := r.queue[0]
			r.queue = r.queue[1:]
			return ev, nil
		}
		if r.done {
			return nil, io.EOF
		}

		frame, err := r.sse.next()
		if err != nil {
			if err == io.EOF {
				r.done = true
				return nil, io.EOF
			}
			r.done = true
			return stream.StreamError{Message: err.Error(), Retryable: true}, nil
		}

		r.handleFrame(frame)
	}
}

type anthropicEventEnvelope struct {
	Type         string          `json:"type"`
	Index        int             `json:"index"`
	ContentBlock json.RawMessage `json:"content_block"`
	Delta        json.RawMessage `json:"delta"`
	Usage        json.RawMessage `json:"usage"`
	Message      json.RawMessage `json:"message"`
	Error        json.RawMessage `json:"error"`
}

type anthropicContentBlock struct {
	Type string `json:"type"`
	ID   string `json:"id,omitempty"`
	Name string `json:"name,omitempty"`
}

type anthropicDelta struct {
	Type        string `json:"type"`
	Text        string `json:"text,omitempty"`
	PartialJSON string `json:"partial_json,omitempty"`
	StopReason  string `json:"stop_reason,omitempty"`
}

type anthropicUsage struct {
	InputTokens              int `json:"input_tokens"`
	OutputTokens             int `json:"output_tokens"`
	CacheReadInputTokens     int `json:"cache_read_input_tokens"`
	CacheCreationInputTokens int `json:"cache_creation_input_tokens"`
}

func (r *anthropicStreamReader) handleFrame(f sseFrame) {
	if f.data == "" {
		return
	}
	var env anthropicEventEnvelope
	if err := json.Unmarshal([]byte(f.data), &env); err != nil {
		r.queue = append(r.queue, stream.StreamError{Message: "malformed SSE frame: " + err.Error(), Retryable: false})
		return
	}

	switch env.Type {
	case "message_start":
		var wrapper struct {
			Usage anthropicUsage `json:"usage"`
		}
		_ = json.Unmarshal(env.Message, &wrapper)
		r.usage = r.usage.Add(stream.Usage{Input: wrapper.Usage.InputTokens, CacheRead: wrapper.Usage.CacheReadInputTokens, CacheWrite: wrapper.Usage.CacheCreationInputTokens})

	case "content_block_start":
		var block anthropicContentBlock
		_ = json.Unmarshal(env.ContentBlock, &block)
		r.blockKind[env.Index] = block.Type
		if block.Type == "tool_use" {
			r.blockID[env.Index] = block.ID
			r.blockName[env.Index] = block.Name
			r.toolArgs[block.ID] = ""
			r.toolName[block.ID] = block.Name
		}

	case "content_block_delta":
		var delta anthropicDelta
		_ = json.Unmarshal(env.Delta, &delta)
		switch delta.Type {
		case "text_delta":
			r.queue = append(r.queue, stream.TextDelta{Text: delta.Text})
		case "input_json_delta":
			id := r.blockID[env.Index]
			name := r.blockName[env.Index]
			r.toolArgs[id] += delta.PartialJSON
			r.queue = append(r.queue, stream.ToolCallDelta{ID: id, Name: name, ArgumentsDelta: delta.PartialJSON})
			r.blockName[env.Index] = "" // name only accompanies the first delta
		}

	case "content_block_stop":
		if r.blockKind[env.Index] == "tool_use" {
			id := r.blockID[env.Index]
			raw := r.toolArgs[id]
			if raw == "" {
				raw = "{}"
			}
			var parsed json.RawMessage
			if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
				r.queue = append(r.queue, stream.StreamError{Message: "unparseable tool arguments for " + id + ": " + err.Error(), Retryable: false})
				return
			}
			r.queue = append(r.queue, stream.ToolCallComplete{ID: id, Name: r.toolName[id], Arguments: parsed})
		}

	case "message_delta":
		var delta anthropicDelta
		_ = json.Unmarshal(env.Delta, &delta)
		if delta.StopReason != "" {
			r.finishReason = delta.StopReason
		}
		var wrapper struct {
			Usage anthropicUsage `json:"usage"`
		}
		_ = json.Unmarshal(env.Usage, &wrapper.Usage)
		r.usage = r.usage.Add(stream.Usage{Output: wrapper.Usage.OutputTokens})

	case "message_stop":
		r.queue = append(r.queue, stream.FinishStep{Reason: normalizeFinishReason(r.finishReason), Usage: r.usage})
		r.done = true

	case "error":
		var errBody struct {
			Message string `json:"message"`
			Type    string `json:"type"`
		}
		_ = json.Unmarshal(env.Error, &errBody)
		retryable := errBody.Type == "overloaded_error" || errBody.Type == "rate_limit_error" || errBody.Type == "api_error"
		r.queue = append(r.queue, stream.StreamError{Message: errBody.Message, Retryable: retryable})
		r.done = true

	case "ping":
		// heartbeat, ignore
	}
}

// normalizeFinishReason maps provider-specific stop reasons to the
// canonical set per spec.md §3.
func normalizeFinishReason(reason string) stream.FinishReason {
	switch reason {
	case "end_turn", "stop", "stop_sequence":
		return stream.FinishStop
	case "tool_use", "tool_calls":
		return stream.FinishToolCalls
	case "max_tokens", "length":
		return stream.FinishLength
	case "":
		return stream.FinishStop
	default:
		return stream.FinishStop
	}
}
