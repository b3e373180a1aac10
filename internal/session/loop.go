package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/oklog/ulid/v2"

	"github.com/opencode-ai/opencode/internal/event"
	"github.com/opencode-ai/opencode/internal/permission"
	"github.com/opencode-ai/opencode/internal/provider"
	"github.com/opencode-ai/opencode/internal/stream"
	"github.com/opencode-ai/opencode/pkg/types"
)

const (
	// MaxSteps is the default agentic loop round-trip cap, used when an
	// agent doesn't set its own (spec.md §4.8: "at most N tool-turn
	// round-trips per user prompt, default 100").
	MaxSteps = 100
	// MaxRetries is the maximum number of retries for API errors.
	MaxRetries = 3
	// RetryInitialInterval is the initial interval for exponential backoff.
	RetryInitialInterval = time.Second
	// RetryMaxInterval is the maximum interval for exponential backoff.
	RetryMaxInterval = 30 * time.Second
	// RetryMaxElapsedTime is the maximum total time for retries.
	RetryMaxElapsedTime = 2 * time.Minute
	// MaxContextTokens is the threshold for triggering context compaction.
	MaxContextTokens = 150000
)

// newRetryBackoff creates a new exponential backoff with jitter for API retries.
// Uses cenkalti/backoff for better retry behavior including jitter to prevent
// thundering herd problems and context-aware cancellation.
func newRetryBackoff(ctx context.Context) backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = RetryInitialInterval
	b.MaxInterval = RetryMaxInterval
	b.MaxElapsedTime = RetryMaxElapsedTime
	b.RandomizationFactor = 0.5
	b.Multiplier = 2.0
	b.Reset()
	return backoff.WithContext(backoff.WithMaxRetries(b, MaxRetries), ctx)
}

// runLoop drives one session through the Idle -> Streaming ->
// ExecutingTools -> Streaming -> ... -> Idle state machine (spec.md
// §4.8). It returns once the assistant turn finishes (stop, length, a
// non-retryable error, cancellation, or the step cap).
func (p *Processor) runLoop(
	ctx context.Context,
	sessionID string,
	state *sessionState,
	agent *Agent,
	callback ProcessCallback,
) error {
	session, err := p.findSession(ctx, sessionID)
	if err != nil {
		return fmt.Errorf("session not found: %w", err)
	}

	messages, err := p.loadMessages(ctx, sessionID)
	if err != nil {
		return err
	}
	if len(messages) == 0 {
		return fmt.Errorf("no messages in session")
	}

	lastMsg := messages[len(messages)-1]
	if lastMsg.Role != "user" {
		return fmt.Errorf("expected user message, got %s", lastMsg.Role)
	}

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

	if firstUserText := textOfMessage(ctx, p, lastMsg); firstUserText != "" {
		p.ensureTitle(ctx, session, firstUserText)
	}

	now := time.Now().UnixMilli()
	assistantMsg := &types.Message{
		ID:         generatePartID(),
		SessionID:  sessionID,
		Role:       "assistant",
		Agent:      agent.nameOrDefault(),
		ProviderID: providerID,
		ModelID:    modelID,
		ParentID:   lastMsg.ID,
		Mode:       agent.nameOrDefault(),
		Path: &types.MessagePath{
			Cwd:  session.Directory,
			Root: session.Directory,
		},
		Time: types.MessageTime{Created: now},
	}
	state.message = assistantMsg

	if err := p.storage.Put(ctx, []string{"message", sessionID, assistantMsg.ID}, assistantMsg); err != nil {
		return fmt.Errorf("failed to save message: %w", err)
	}

	callback(assistantMsg, nil)
	event.Publish(event.Event{Type: event.MessageCreated, Data: event.MessageCreatedData{Info: assistantMsg}})

	if agent == nil {
		agent = DefaultAgent()
	}

	maxSteps := agent.MaxSteps
	if maxSteps <= 0 {
		maxSteps = MaxSteps
	}

	retryBackoff := newRetryBackoff(ctx)

	for step := 0; ; {
		select {
		case <-ctx.Done():
			assistantMsg.Error = types.NewUnknownError("processing aborted")
			finish := "cancelled"
			assistantMsg.Finish = &finish
			p.saveMessage(ctx, sessionID, assistantMsg)
			return ctx.Err()
		default:
		}

		if step >= maxSteps {
			assistantMsg.Error = types.NewUnknownError(fmt.Sprintf("maximum steps (%d) reached", maxSteps))
			finish := "max_steps"
			assistantMsg.Finish = &finish
			p.saveMessage(ctx, sessionID, assistantMsg)
			return fmt.Errorf("max steps exceeded")
		}

		if p.shouldCompact(messages) {
			if err := p.compactMessages(ctx, sessionID, messages); err != nil {
				// Compaction is best-effort; continue the loop on the
				// original (uncompacted) history rather than failing
				// the user's turn over it.
			}
			if reloaded, err := p.loadMessages(ctx, sessionID); err == nil {
				messages = reloaded
			}
		}

		req, err := p.buildCompletionRequest(ctx, sessionID, messages, assistantMsg, agent, model)
		if err != nil {
			return fmt.Errorf("failed to build request: %w", err)
		}

		reader, err := prov.CreateCompletion(ctx, req)
		if err != nil {
			if retryAfterBackoff(ctx, retryBackoff) {
				continue
			}
			assistantMsg.Error = types.NewUnknownError(err.Error())
			p.saveMessage(ctx, sessionID, assistantMsg)
			return err
		}

		finish, err := p.processStream(ctx, reader, state, callback)
		reader.Close()

		if err != nil {
			if retryAfterBackoff(ctx, retryBackoff) {
				continue
			}
			assistantMsg.Error = types.NewUnknownError(err.Error())
			p.saveMessage(ctx, sessionID, assistantMsg)
			return err
		}

		retryBackoff.Reset()
		assistantMsg.Tokens = addUsage(assistantMsg.Tokens, finish.Usage)

		switch finish.Reason {
		case stream.FinishStop:
			finishStr := "stop"
			assistantMsg.Finish = &finishStr
			p.saveMessage(ctx, sessionID, assistantMsg)
			event.Publish(event.Event{Type: event.SessionIdle, Data: event.SessionIdleData{SessionID: sessionID}})
			return nil

		case stream.FinishToolCalls:
			if err := p.executeToolCalls(ctx, state, agent, callback); err != nil && permissionRejected(err) {
				finishStr := "stop"
				assistantMsg.Finish = &finishStr
				p.saveMessage(ctx, sessionID, assistantMsg)
				event.Publish(event.Event{Type: event.SessionIdle, Data: event.SessionIdleData{SessionID: sessionID}})
				return nil
			}
			step++
			continue

		case stream.FinishLength:
			finishStr := "max_tokens"
			assistantMsg.Finish = &finishStr
			assistantMsg.Error = types.NewUnknownError("output length limit reached")
			p.saveMessage(ctx, sessionID, assistantMsg)
			return nil

		case stream.FinishError:
			if retryAfterBackoff(ctx, retryBackoff) {
				continue
			}
			return fmt.Errorf("stream error: max retries exceeded")

		default:
			finishStr := string(finish.Reason)
			assistantMsg.Finish = &finishStr
			p.saveMessage(ctx, sessionID, assistantMsg)
			return nil
		}
	}
}

// retryAfterBackoff sleeps for the backoff's next interval and reports
// whether the caller should retry. It returns false once the backoff is
// exhausted or the context is done.
func retryAfterBackoff(ctx context.Context, b backoff.BackOff) bool {
	next := b.NextBackOff()
	if next == backoff.Stop {
		return false
	}
	t := time.NewTimer(next)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

func permissionRejected(err error) bool {
	return err != nil && permission.IsRejectedError(err)
}

func addUsage(existing *types.TokenUsage, u stream.Usage) *types.TokenUsage {
	if existing == nil {
		existing = &types.TokenUsage{}
	}
	existing.Input += u.Input
	existing.Output += u.Output
	existing.Cache.Read += u.CacheRead
	existing.Cache.Write += u.CacheWrite
	return existing
}

// nameOrDefault returns the agent's name, or "default" for a nil agent.
func (a *Agent) nameOrDefault() string {
	if a == nil || a.Name == "" {
		return "default"
	}
	return a.Name
}

// findSession finds a session by ID across all projects.
func (p *Processor) findSession(ctx context.Context, sessionID string) (*types.Session, error) {
	var session types.Session
	if err := p.storage.Get(ctx, []string{"session", sessionID}, &session); err == nil {
		return &session, nil
	}

	projects, err := p.storage.List(ctx, []string{"session"})
	if err != nil {
		return nil, err
	}
	for _, projectID := range projects {
		if err := p.storage.Get(ctx, []string{"session", projectID, sessionID}, &session); err == nil {
			return &session, nil
		}
	}

	return nil, fmt.Errorf("session not found: %s", sessionID)
}

// loadMessages loads all messages for a session.
func (p *Processor) loadMessages(ctx context.Context, sessionID string) ([]*types.Message, error) {
	var messages []*types.Message
	err := p.storage.Scan(ctx, []string{"message", sessionID}, func(key string, data json.RawMessage) error {
		var msg types.Message
		if err := json.Unmarshal(data, &msg); err != nil {
			return err
		}
		messages = append(messages, &msg)
		return nil
	})
	return messages, err
}

// saveMessage saves an assistant message.
func (p *Processor) saveMessage(ctx context.Context, sessionID string, msg *types.Message) error {
	now := time.Now().UnixMilli()
	msg.Time.Updated = &now

	if err := p.storage.Put(ctx, []string{"message", sessionID, msg.ID}, msg); err != nil {
		return err
	}

	event.Publish(event.Event{Type: event.MessageUpdated, Data: event.MessageUpdatedData{Info: msg}})
	return nil
}

// savePart saves a part for a message.
func (p *Processor) savePart(ctx context.Context, messageID string, part types.Part) error {
	return p.storage.Put(ctx, []string{"part", messageID, part.PartID()}, part)
}

// shouldCompact checks if messages should be compacted.
func (p *Processor) shouldCompact(messages []*types.Message) bool {
	total := 0
	for _, msg := range messages {
		if msg.Tokens != nil {
			total += msg.Tokens.Input + msg.Tokens.Output
		}
	}
	return total > MaxContextTokens
}

// buildCompletionRequest builds an LLM completion request from stored
// history plus the agent/model configuration for the in-flight turn.
func (p *Processor) buildCompletionRequest(
	ctx context.Context,
	sessionID string,
	messages []*types.Message,
	currentMsg *types.Message,
	agent *Agent,
	model *types.Model,
) (*provider.CompletionRequest, error) {
	session, _ := p.findSession(ctx, sessionID)
	systemPrompt := NewSystemPrompt(session, agent, currentMsg.ProviderID, currentMsg.ModelID)

	partsByMessage := make(map[string][]types.Part, len(messages))
	for _, msg := range messages {
		if msg.Error != nil && !p.hasUsableContent(ctx, msg) {
			continue
		}
		parts, err := p.loadParts(ctx, msg.ID)
		if err != nil {
			continue
		}
		partsByMessage[msg.ID] = parts
	}

	tools := p.resolveTools(agent, model)

	maxTokens := model.MaxOutputTokens
	if maxTokens <= 0 {
		maxTokens = 8192
	}

	return &provider.CompletionRequest{
		Model:       model.ID,
		System:      systemPrompt.Build(),
		Messages:    buildTranscript(messages, partsByMessage),
		Tools:       tools,
		MaxTokens:   maxTokens,
		Temperature: agent.Temperature,
		TopP:        agent.TopP,
	}, nil
}

// loadParts loads all parts for a message.
func (p *Processor) loadParts(ctx context.Context, messageID string) ([]types.Part, error) {
	var parts []types.Part
	err := p.storage.Scan(ctx, []string{"part", messageID}, func(key string, data json.RawMessage) error {
		part, err := types.UnmarshalPart(data)
		if err != nil {
			return err
		}
		parts = append(parts, part)
		return nil
	})
	return parts, err
}

// hasUsableContent checks if a message has content worth including.
func (p *Processor) hasUsableContent(ctx context.Context, msg *types.Message) bool {
	parts, err := p.loadParts(ctx, msg.ID)
	if err != nil {
		return false
	}
	return len(parts) > 0
}

// textOfMessage returns the concatenated text of a stored message's parts.
func textOfMessage(ctx context.Context, p *Processor, msg *types.Message) string {
	parts, err := p.loadParts(ctx, msg.ID)
	if err != nil {
		return ""
	}
	return textOf(parts)
}

// resolveTools returns the provider-facing tool list for tools the agent
// has enabled, or nil if the model doesn't support tool use.
func (p *Processor) resolveTools(agent *Agent, model *types.Model) []provider.ToolInfo {
	if !model.SupportsTools {
		return nil
	}

	var result []provider.ToolInfo
	for _, t := range p.toolRegistry.List() {
		if !agent.ToolEnabled(t.ID()) {
			continue
		}
		result = append(result, provider.ToolInfo{
			Name:        t.ID(),
			Description: t.Description(),
			Parameters:  t.Parameters(),
		})
	}
	return result
}

// generatePartID generates a new ULID for parts.
func generatePartID() string {
	return ulid.Make().String()
}

// ptr returns a pointer to the given value.
func ptr[T any](v T) *T {
	return &v
}
