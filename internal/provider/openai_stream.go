package provider

import (
	"encoding/json"
	"io"
	"sort"

	"github.com/opencode-ai/opencode/internal/stream"
)

// openAIStreamReader parses Dialect B SSE frames ("data: {...}" chunks,
// terminated by the literal "data: [DONE]") into stream.Events per the
// translation table in spec.md §4.3: `choices[0].delta.content` becomes
// TextDelta; `tool_calls[i].function.{name,arguments}` accumulate by
// index into ToolCallDelta, and are drained into ToolCallComplete events
// (in index order) once a finish_reason arrives.
type openAIStreamReader struct {
	body  io.ReadCloser
	sse   *sseScanner
	queue []stream.Event
	done  bool

	// index -> accumulated call state.
	callOrder []int
	callID    map[int]string
	callName  map[int]string
	callArgs  map[int]string

	usage stream.Usage
}

func newOpenAIStreamReader(body io.ReadCloser) *openAIStreamReader {
	return &openAIStreamReader{
		body:     body,
		sse:      newSSEScanner(body),
		callID:   make(map[int]string),
		callName: make(map[int]string),
		callArgs: make(map[int]string),
	}
}

func (r *openAIStreamReader) Close() error { return r.body.Close() }

func (r *openAIStreamReader) Next() (stream.Event, error) {
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

		if frame.data == "[DONE]" {
			r.drainToolCalls(stream.FinishStop)
			r.done = true
			continue
		}

		r.handleFrame(frame)
	}
}

type openAIChunk struct {
	Choices []struct {
		Delta struct {
			Content   string                  `json:"content"`
			ToolCalls []openAIChunkToolCall   `json:"tool_calls"`
		} `json:"delta"`
		FinishReason string `json:"finish_reason"`
	} `json:"choices"`
	Usage *struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
	} `json:"usage"`
}

type openAIChunkToolCall struct {
	Index    int    `json:"index"`
	ID       string `json:"id"`
	Function struct {
		Name      string `json:"name"`
		Arguments string `json:"arguments"`
	} `json:"function"`
}

func (r *openAIStreamReader) handleFrame(f sseFrame) {
	if f.data == "" {
		return
	}
	var chunk openAIChunk
	if err := json.Unmarshal([]byte(f.data), &chunk); err != nil {
		r.queue = append(r.queue, stream.StreamError{Message: "malformed SSE frame: " + err.Error(), Retryable: false})
		return
	}

	if chunk.Usage != nil {
		r.usage = r.usage.Add(stream.Usage{Input: chunk.Usage.PromptTokens, Output: chunk.Usage.CompletionTokens})
	}

	if len(chunk.Choices) == 0 {
		return
	}
	choice := chunk.Choices[0]

	if choice.Delta.Content != "" {
		r.queue = append(r.queue, stream.TextDelta{Text: choice.Delta.Content})
	}

	for _, tc := range choice.Delta.ToolCalls {
		if _, seen := r.callArgs[tc.Index]; !seen {
			r.callOrder = append(r.callOrder, tc.Index)
			r.callArgs[tc.Index] = ""
		}
		if tc.ID != "" {
			r.callID[tc.Index] = tc.ID
		}
		if tc.Function.Name != "" {
			r.callName[tc.Index] = tc.Function.Name
		}
		if tc.Function.Arguments != "" {
			r.callArgs[tc.Index] += tc.Function.Arguments
			r.queue = append(r.queue, stream.ToolCallDelta{
				ID:             r.callID[tc.Index],
				Name:           tc.Function.Name,
				ArgumentsDelta: tc.Function.Arguments,
			})
		}
	}

	if choice.FinishReason != "" {
		r.drainToolCalls(normalizeFinishReason(choice.FinishReason))
		r.done = true
	}
}

// drainToolCalls emits one ToolCallComplete per accumulated call, in
// ascending tool_calls index order, then the terminal FinishStep.
func (r *openAIStreamReader) drainToolCalls(reason stream.FinishReason) {
	order := append([]int(nil), r.callOrder...)
	sort.Ints(order)
	for _, idx := range order {
		raw := r.callArgs[idx]
		if raw == "" {
			raw = "{}"
		}
		var parsed json.RawMessage
		if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
			r.queue = append(r.queue, stream.StreamError{Message: "unparseable tool arguments: " + err.Error(), Retryable: false})
			return
		}
		r.queue = append(r.queue, stream.ToolCallComplete{ID: r.callID[idx], Name: r.callName[idx], Arguments: parsed})
	}
	if len(order) > 0 && reason == stream.FinishStop {
		reason = stream.FinishToolCalls
	}
	r.queue = append(r.queue, stream.FinishStep{Reason: reason, Usage: r.usage})
}
