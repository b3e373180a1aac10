package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/opencode-ai/opencode/internal/event"
	"github.com/opencode-ai/opencode/internal/stream"
	"github.com/opencode-ai/opencode/pkg/types"
)

// processStream drains reader, turning TextDelta/ToolCallDelta/
// ToolCallComplete events into types.Part updates (persisted and
// published as they arrive) until a FinishStep or StreamError
// terminates the stream.
func (p *Processor) processStream(
	ctx context.Context,
	reader stream.Reader,
	state *sessionState,
	callback ProcessCallback,
) (stream.FinishStep, error) {
	var currentText *types.TextPart
	toolParts := make(map[string]*types.ToolPart)
	toolArgs := make(map[string]string)

	for {
		select {
		case <-ctx.Done():
			return stream.FinishStep{Reason: stream.FinishCancelled}, ctx.Err()
		default:
		}

		ev, err := reader.Next()
		if err != nil {
			return stream.FinishStep{}, err
		}

		switch e := ev.(type) {
		case stream.TextDelta:
			if currentText == nil {
				now := time.Now().UnixMilli()
				currentText = &types.TextPart{
					ID:   generatePartID(),
					Type: "text",
					Time: types.PartTime{Start: &now},
				}
				state.parts = append(state.parts, currentText)
			}
			currentText.Text += e.Text
			p.savePart(ctx, state.message.ID, currentText)
			event.Publish(event.Event{
				Type: event.MessagePartUpdated,
				Data: event.MessagePartUpdatedData{Part: currentText, Delta: e.Text},
			})
			callback(state.message, state.parts)

		case stream.ToolCallDelta:
			tp, ok := toolParts[e.ID]
			if !ok {
				now := time.Now().UnixMilli()
				tp = &types.ToolPart{
					ID:         generatePartID(),
					Type:       "tool",
					ToolCallID: e.ID,
					ToolName:   e.Name,
					State:      "pending",
					Time:       types.PartTime{Start: &now},
				}
				toolParts[e.ID] = tp
				state.parts = append(state.parts, tp)
				p.savePart(ctx, state.message.ID, tp)
				event.Publish(event.Event{Type: event.MessagePartUpdated, Data: event.MessagePartUpdatedData{Part: tp}})
				callback(state.message, state.parts)
			}
			toolArgs[e.ID] += e.ArgumentsDelta

		case stream.ToolCallComplete:
			tp, ok := toolParts[e.ID]
			if !ok {
				now := time.Now().UnixMilli()
				tp = &types.ToolPart{
					ID:         generatePartID(),
					Type:       "tool",
					ToolCallID: e.ID,
					ToolName:   e.Name,
					State:      "pending",
					Time:       types.PartTime{Start: &now},
				}
				toolParts[e.ID] = tp
				state.parts = append(state.parts, tp)
			}

			var input map[string]any
			if len(e.Arguments) > 0 {
				_ = json.Unmarshal(e.Arguments, &input)
			}
			tp.Input = input

			p.savePart(ctx, state.message.ID, tp)
			event.Publish(event.Event{Type: event.MessagePartUpdated, Data: event.MessagePartUpdatedData{Part: tp}})
			callback(state.message, state.parts)

		case stream.FinishStep:
			if currentText != nil {
				now := time.Now().UnixMilli()
				currentText.Time.End = &now
				p.savePart(ctx, state.message.ID, currentText)
			}
			return e, nil

		case stream.StreamError:
			return stream.FinishStep{Reason: stream.FinishError}, fmt.Errorf("%s", e.Message)
		}
	}
}
