package session

import (
	"encoding/json"

	"github.com/opencode-ai/opencode/internal/provider"
	"github.com/opencode-ai/opencode/pkg/types"
)

// buildTranscript renders stored messages and their parts into the
// dialect-neutral ReqMessage history a Provider expects. An assistant
// message with tool parts becomes one "assistant" entry carrying the
// tool_calls, followed by one "tool" entry per resolved tool part (the
// provider's buildRequest merges consecutive tool entries into a single
// wire message, per spec.md §4.1).
func buildTranscript(messages []*types.Message, partsByMessage map[string][]types.Part) []provider.ReqMessage {
	var out []provider.ReqMessage

	for _, msg := range messages {
		parts := partsByMessage[msg.ID]

		switch msg.Role {
		case "user":
			out = append(out, provider.ReqMessage{Role: "user", Text: textOf(parts)})

		case "assistant":
			var toolCalls []provider.ReqToolCall
			var toolResults []provider.ReqMessage

			for _, part := range parts {
				tp, ok := part.(*types.ToolPart)
				if !ok {
					continue
				}
				inputJSON, _ := json.Marshal(tp.Input)
				toolCalls = append(toolCalls, provider.ReqToolCall{
					ID:        tp.ToolCallID,
					Name:      tp.ToolName,
					Arguments: inputJSON,
				})

				if tp.State != "completed" && tp.State != "error" {
					continue
				}
				content := ""
				isError := tp.State == "error"
				if tp.Output != nil {
					content = *tp.Output
				} else if tp.Error != nil {
					content = *tp.Error
				}
				toolResults = append(toolResults, provider.ReqMessage{
					Role:       "tool",
					ToolCallID: tp.ToolCallID,
					ToolName:   tp.ToolName,
					Content:    content,
					IsError:    isError,
				})
			}

			out = append(out, provider.ReqMessage{Role: "assistant", Text: textOf(parts), ToolCalls: toolCalls})
			out = append(out, toolResults...)
		}
	}

	return out
}

// textOf concatenates every TextPart in order; reasoning parts are
// excluded since most providers don't accept prior reasoning back as
// input.
func textOf(parts []types.Part) string {
	var text string
	for _, part := range parts {
		if tp, ok := part.(*types.TextPart); ok {
			text += tp.Text
		}
	}
	return text
}
