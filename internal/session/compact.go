package session

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/opencode-ai/opencode/internal/event"
	"github.com/opencode-ai/opencode/internal/provider"
	"github.com/opencode-ai/opencode/internal/stream"
	"github.com/opencode-ai/opencode/pkg/types"
)

// CompactionPart marks an assistant message as a compaction summary. It
// isn't persisted as a types.Part variant (UnmarshalPart doesn't know its
// "compaction" type tag); it exists only to carry the trigger through
// processCompaction's call sites.
type CompactionPart struct {
	ID      string
	Type    string
	Summary string
	Count   int
	Auto    bool
}

func (p *CompactionPart) PartType() string { return "compaction" }
func (p *CompactionPart) PartID() string   { return p.ID }

// CompactionConfig controls message compaction behavior.
type CompactionConfig struct {
	// MinMessagesToKeep is the minimum number of recent messages to keep.
	MinMessagesToKeep int

	// SummaryMaxTokens is the maximum tokens for the summary.
	SummaryMaxTokens int

	// ContextThreshold is the percentage of context usage that triggers compaction.
	ContextThreshold float64
}

// DefaultCompactionConfig returns the default compaction configuration.
var DefaultCompactionConfig = CompactionConfig{
	MinMessagesToKeep: 4,
	SummaryMaxTokens:  2000,
	ContextThreshold:  0.75,
}

// compactMessages summarizes old messages to free context. This is the
// implicit, loop-driven compaction path (triggered by shouldCompact); the
// explicit /compact command goes through processCompaction instead.
func (p *Processor) compactMessages(
	ctx context.Context,
	sessionID string,
	messages []*types.Message,
) error {
	if len(messages) <= DefaultCompactionConfig.MinMessagesToKeep {
		return nil
	}

	session, err := p.findSession(ctx, sessionID)
	if err != nil {
		return err
	}

	now := time.Now().UnixMilli()
	session.Time.Compacting = &now
	p.storage.Put(ctx, []string{"session", session.ProjectID, session.ID}, session)

	defer func() {
		session.Time.Compacting = nil
		p.storage.Put(ctx, []string{"session", session.ProjectID, session.ID}, session)
	}()

	compactEnd := len(messages) - DefaultCompactionConfig.MinMessagesToKeep
	toCompact := messages[:compactEnd]

	summaryPrompt := buildSummaryPrompt(ctx, p, toCompact)

	model, err := p.providerRegistry.DefaultModel()
	if err != nil {
		return err
	}

	prov, err := p.providerRegistry.Get(model.ProviderID)
	if err != nil {
		return err
	}

	reader, err := prov.CreateCompletion(ctx, &provider.CompletionRequest{
		Model:     model.ID,
		System:    compactionSystemPrompt,
		Messages:  []provider.ReqMessage{{Role: "user", Text: summaryPrompt}},
		MaxTokens: DefaultCompactionConfig.SummaryMaxTokens,
	})
	if err != nil {
		return err
	}
	defer reader.Close()

	summary, err := collectText(reader)
	if err != nil {
		return err
	}

	session.Summary.Diffs = append(session.Summary.Diffs, types.FileDiff{
		Path:   "__compaction__",
		Before: "",
		After:  summary,
	})
	p.storage.Put(ctx, []string{"session", session.ProjectID, session.ID}, session)

	return nil
}

// collectText drains a stream.Reader, concatenating text deltas until
// FinishStep or an error terminates it.
func collectText(reader stream.Reader) (string, error) {
	var text strings.Builder
	for {
		ev, err := reader.Next()
		if err != nil {
			return text.String(), err
		}
		switch e := ev.(type) {
		case stream.TextDelta:
			text.WriteString(e.Text)
		case stream.FinishStep:
			return text.String(), nil
		case stream.StreamError:
			return text.String(), fmt.Errorf("%s", e.Message)
		}
	}
}

// buildSummaryPrompt creates a prompt for summarizing messages.
func buildSummaryPrompt(ctx context.Context, p *Processor, messages []*types.Message) string {
	var prompt strings.Builder

	prompt.WriteString("Please summarize the following conversation, focusing on:\n")
	prompt.WriteString("1. Key decisions and outcomes\n")
	prompt.WriteString("2. Files that were modified\n")
	prompt.WriteString("3. Important context for continuing the work\n\n")
	prompt.WriteString("---\n\n")

	for _, msg := range messages {
		if msg.Role == "user" {
			prompt.WriteString("USER:\n")
		} else {
			prompt.WriteString("ASSISTANT:\n")
		}

		parts, err := p.loadParts(ctx, msg.ID)
		if err != nil {
			continue
		}

		for _, part := range parts {
			switch pt := part.(type) {
			case *types.TextPart:
				prompt.WriteString(pt.Text)
				prompt.WriteString("\n")
			case *types.ToolPart:
				prompt.WriteString(fmt.Sprintf("[Tool: %s]\n", pt.ToolName))
				if pt.Output != nil && *pt.Output != "" {
					output := *pt.Output
					if len(output) > 500 {
						output = output[:500] + "..."
					}
					prompt.WriteString(output)
					prompt.WriteString("\n")
				}
			}
		}

		prompt.WriteString("\n")
	}

	return prompt.String()
}

// estimateTokens provides a rough estimate of token count.
func estimateTokens(text string) int {
	return len(text) / 4
}

// compactionSystemPrompt is the system prompt for generating summaries.
const compactionSystemPrompt = `You are a conversation summarizer. Create a concise summary of the conversation that preserves key context for continuing the discussion.

Focus on:
1. What was accomplished
2. Current work in progress
3. Files involved
4. Next steps
5. Any key user requests or constraints

Be concise but detailed enough that work can continue seamlessly.`

// processCompaction handles an explicit compaction request by summarizing
// the conversation into a dedicated assistant message.
func (p *Processor) processCompaction(
	ctx context.Context,
	sessionID string,
	messages []*types.Message,
	compactionPart *CompactionPart,
	callback ProcessCallback,
) error {
	session, err := p.findSession(ctx, sessionID)
	if err != nil {
		return err
	}

	lastMsg := messages[len(messages)-1]

	providerID := p.defaultProviderID
	modelID := p.defaultModelID
	if lastMsg.Model != nil && lastMsg.Model.ProviderID != "" {
		providerID = lastMsg.Model.ProviderID
		modelID = lastMsg.Model.ModelID
	}

	prov, err := p.providerRegistry.Get(providerID)
	if err != nil {
		return fmt.Errorf("provider not found: %w", err)
	}

	model, err := p.providerRegistry.GetModel(providerID, modelID)
	if err != nil {
		return fmt.Errorf("model not found: %w", err)
	}

	now := time.Now().UnixMilli()
	session.Time.Compacting = &now
	p.storage.Put(ctx, []string{"session", session.ProjectID, session.ID}, session)

	defer func() {
		session.Time.Compacting = nil
		p.storage.Put(ctx, []string{"session", session.ProjectID, session.ID}, session)
	}()

	summaryPrompt := buildSummaryPrompt(ctx, p, messages[:len(messages)-1])
	summaryPrompt += "\n\nSummarize our conversation above. This summary will be the only context available when the conversation continues, so preserve critical information including: what was accomplished, current work in progress, files involved, next steps, and any key user requests or constraints. Be concise but detailed enough that work can continue seamlessly."

	assistantMsg := &types.Message{
		ID:         generatePartID(),
		SessionID:  sessionID,
		Role:       "assistant",
		ParentID:   lastMsg.ID,
		ProviderID: providerID,
		ModelID:    modelID,
		Mode:       lastMsg.Agent,
		IsSummary:  true,
		Path: &types.MessagePath{
			Cwd:  session.Directory,
			Root: session.Directory,
		},
		Time:   types.MessageTime{Created: now},
		Tokens: &types.TokenUsage{},
	}

	if err := p.storage.Put(ctx, []string{"message", sessionID, assistantMsg.ID}, assistantMsg); err != nil {
		return fmt.Errorf("failed to save message: %w", err)
	}

	callback(assistantMsg, nil)
	event.Publish(event.Event{Type: event.MessageCreated, Data: event.MessageCreatedData{Info: assistantMsg}})

	textPart := &types.TextPart{ID: generatePartID(), Type: "text", Text: ""}
	if err := p.savePart(ctx, assistantMsg.ID, textPart); err != nil {
		return fmt.Errorf("failed to save part: %w", err)
	}
	event.Publish(event.Event{Type: event.MessagePartUpdated, Data: event.MessagePartUpdatedData{Part: textPart}})

	reader, err := prov.CreateCompletion(ctx, &provider.CompletionRequest{
		Model:     model.ID,
		System:    compactionSystemPrompt,
		Messages:  []provider.ReqMessage{{Role: "user", Text: summaryPrompt}},
		MaxTokens: DefaultCompactionConfig.SummaryMaxTokens,
	})
	if err != nil {
		return fmt.Errorf("failed to create completion: %w", err)
	}
	defer reader.Close()

	var fullText strings.Builder
loop:
	for {
		ev, err := reader.Next()
		if err != nil {
			return fmt.Errorf("stream error: %w", err)
		}
		switch e := ev.(type) {
		case stream.TextDelta:
			fullText.WriteString(e.Text)
			textPart.Text = fullText.String()
			p.savePart(ctx, assistantMsg.ID, textPart)
			event.Publish(event.Event{
				Type: event.MessagePartUpdated,
				Data: event.MessagePartUpdatedData{Part: textPart, Delta: e.Text},
			})
		case stream.FinishStep:
			break loop
		case stream.StreamError:
			return fmt.Errorf("stream error: %s", e.Message)
		}
	}

	assistantMsg.Tokens = &types.TokenUsage{
		Input:  estimateTokens(summaryPrompt),
		Output: estimateTokens(fullText.String()),
	}
	p.saveMessage(ctx, sessionID, assistantMsg)

	event.Publish(event.Event{Type: event.SessionCompacted, Data: event.SessionCompactedData{SessionID: sessionID}})

	if compactionPart.Auto {
		continueMsg := &types.Message{
			ID:        generatePartID(),
			SessionID: sessionID,
			Role:      "user",
			Agent:     lastMsg.Agent,
			Model:     lastMsg.Model,
			Time:      types.MessageTime{Created: time.Now().UnixMilli()},
		}
		p.storage.Put(ctx, []string{"message", sessionID, continueMsg.ID}, continueMsg)

		continuePart := &types.TextPart{ID: generatePartID(), Type: "text", Text: "Continue if you have next steps"}
		p.savePart(ctx, continueMsg.ID, continuePart)

		event.Publish(event.Event{Type: event.MessageCreated, Data: event.MessageCreatedData{Info: continueMsg}})
		event.Publish(event.Event{Type: event.MessagePartUpdated, Data: event.MessagePartUpdatedData{Part: continuePart}})
	}

	return nil
}
