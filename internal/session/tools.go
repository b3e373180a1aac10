package session

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/opencode-ai/opencode/internal/event"
	"github.com/opencode-ai/opencode/internal/permission"
	"github.com/opencode-ai/opencode/internal/tool"
	"github.com/opencode-ai/opencode/pkg/types"
)

// executeToolCalls runs every pending tool part of the in-flight
// assistant message concurrently (spec.md §4.8: "tool executions for a
// single turn run concurrently"), then waits for all of them. Results
// land back on the same ToolPart values the stream attached to
// state.parts, so ordering is preserved without a separate merge step.
func (p *Processor) executeToolCalls(
	ctx context.Context,
	state *sessionState,
	agent *Agent,
	callback ProcessCallback,
) error {
	var pending []*types.ToolPart
	for _, part := range state.snapshotParts() {
		if tp, ok := part.(*types.ToolPart); ok && tp.State == "pending" {
			pending = append(pending, tp)
		}
	}

	var wg sync.WaitGroup
	errs := make([]error, len(pending))
	for i, tp := range pending {
		wg.Add(1)
		go func(i int, tp *types.ToolPart) {
			defer wg.Done()
			errs[i] = p.executeSingleTool(ctx, state, agent, tp, callback)
		}(i, tp)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil && permission.IsRejectedError(err) {
			return err
		}
	}
	return nil
}

// executeSingleTool executes a single tool call and records its result
// onto toolPart. Errors (not-found, denied, doom-loop, execution
// failure) are all captured on the part as an error ToolResult rather
// than propagated, except permission rejection, which the loop uses to
// stop the turn early.
func (p *Processor) executeSingleTool(
	ctx context.Context,
	state *sessionState,
	agent *Agent,
	toolPart *types.ToolPart,
	callback ProcessCallback,
) error {
	t, ok := p.toolRegistry.Get(toolPart.ToolName)
	if !ok {
		p.failTool(ctx, state, toolPart, callback, fmt.Sprintf("Tool not found: %s", toolPart.ToolName))
		return nil
	}

	if err := p.checkToolPermission(ctx, state, agent, toolPart); err != nil {
		p.failTool(ctx, state, toolPart, callback, err.Error())
		return err
	}

	toolPart.State = "running"
	p.savePart(ctx, state.message.ID, toolPart)
	event.Publish(event.Event{Type: event.MessagePartUpdated, Data: event.MessagePartUpdatedData{Part: toolPart}})
	callback(state.message, state.snapshotParts())

	inputJSON, err := json.Marshal(toolPart.Input)
	if err != nil {
		p.failTool(ctx, state, toolPart, callback, fmt.Sprintf("failed to marshal input: %v", err))
		return nil
	}

	abortCh := make(chan struct{})
	stop := make(chan struct{})
	defer close(stop)
	go func() {
		select {
		case <-ctx.Done():
			close(abortCh)
		case <-stop:
		}
	}()

	toolCtx := &tool.Context{
		SessionID: state.message.SessionID,
		MessageID: state.message.ID,
		CallID:    toolPart.ToolCallID,
		Agent:     agent.nameOrDefault(),
		WorkDir:   "",
		AbortCh:   abortCh,
		Extra: map[string]any{
			"model": state.message.ModelID,
		},
	}
	toolCtx.OnMetadata = func(title string, meta map[string]any) {
		toolPart.Title = &title
		if toolPart.Metadata == nil {
			toolPart.Metadata = make(map[string]any)
		}
		for k, v := range meta {
			toolPart.Metadata[k] = v
		}
		event.Publish(event.Event{Type: event.MessagePartUpdated, Data: event.MessagePartUpdatedData{Part: toolPart}})
		callback(state.message, state.snapshotParts())
	}

	result, err := t.Execute(ctx, inputJSON, toolCtx)
	if err != nil {
		p.failTool(ctx, state, toolPart, callback, err.Error())
		return nil
	}

	now := time.Now().UnixMilli()
	toolPart.State = "completed"
	toolPart.Output = &result.Output
	if result.Title != "" {
		toolPart.Title = &result.Title
	}
	toolPart.Time.End = &now

	if result.Metadata != nil {
		if toolPart.Metadata == nil {
			toolPart.Metadata = make(map[string]any)
		}
		for k, v := range result.Metadata {
			toolPart.Metadata[k] = v
		}
	}

	p.savePart(ctx, state.message.ID, toolPart)
	event.Publish(event.Event{Type: event.MessagePartUpdated, Data: event.MessagePartUpdatedData{Part: toolPart}})
	callback(state.message, state.snapshotParts())

	for _, att := range result.Attachments {
		filePart := &types.FilePart{
			ID:        generatePartID(),
			Type:      "file",
			Filename:  att.Filename,
			MediaType: att.MediaType,
			URL:       att.URL,
		}
		state.appendPart(filePart)
		p.savePart(ctx, state.message.ID, filePart)
	}

	return nil
}

// failTool marks a tool part as failed (spec.md §7: ToolExecutionError,
// ToolNotFound, PermissionDenied are all preserved into the transcript
// as-is rather than retried by the engine).
func (p *Processor) failTool(
	ctx context.Context,
	state *sessionState,
	toolPart *types.ToolPart,
	callback ProcessCallback,
	errMsg string,
) {
	now := time.Now().UnixMilli()
	toolPart.State = "error"
	toolPart.Error = &errMsg
	toolPart.Time.End = &now

	p.savePart(ctx, state.message.ID, toolPart)
	event.Publish(event.Event{Type: event.MessagePartUpdated, Data: event.MessagePartUpdatedData{Part: toolPart}})
	callback(state.message, state.snapshotParts())
}

// checkToolPermission checks if the tool execution is permitted under the
// agent's policy. This runs the five-step evaluation order (deny-list,
// allow-list, explicit map, runtime cache, default) plus the doom-loop
// override in a single Manager.CheckCall, so the two don't disagree about
// which call history a "repeated call" even means.
func (p *Processor) checkToolPermission(
	ctx context.Context,
	state *sessionState,
	agent *Agent,
	toolPart *types.ToolPart,
) error {
	if p.permManager != nil {
		policy := permission.AgentPolicy{
			DeniedTools:  toSet(agent.DisabledTools),
			AllowedTools: toSet(agent.Tools),
			Default:      permission.ActionAllow,
			DoomLoop:     permissionAction(agent.Permission.DoomLoop),
		}
		action, isDoomLoop := p.permManager.CheckCall(state.message.SessionID, toolPart.ToolName, toolPart.Input, policy)

		if action == permission.ActionDeny {
			if isDoomLoop {
				return fmt.Errorf("doom loop detected: %s called repeatedly with the same input", toolPart.ToolName)
			}
			return &permission.RejectedError{
				SessionID: state.message.SessionID,
				CallID:    toolPart.ToolCallID,
				Message:   fmt.Sprintf("denied: %s is not permitted for this agent", toolPart.ToolName),
			}
		}

		if isDoomLoop && action == permission.ActionAsk && p.permissionChecker != nil {
			req := permission.Request{
				Type:      permission.PermDoomLoop,
				Pattern:   []string{toolPart.ToolName},
				SessionID: state.message.SessionID,
				MessageID: state.message.ID,
				CallID:    toolPart.ToolCallID,
				Title:     fmt.Sprintf("Allow repeated %s call?", toolPart.ToolName),
			}
			if err := p.permissionChecker.Ask(ctx, req); err != nil {
				return err
			}
		}
	}

	if p.permissionChecker == nil {
		return nil
	}

	var permType permission.PermissionType
	var action permission.PermissionAction
	var pattern []string

	switch toolPart.ToolName {
	case "bash":
		permType = permission.PermBash
		if cmd, ok := toolPart.Input["command"].(string); ok {
			pattern = []string{cmd}
		}
		action = permissionAction(agent.Permission.Bash)

	case "write", "edit":
		permType = permission.PermEdit
		if path, ok := toolPart.Input["filePath"].(string); ok {
			pattern = []string{path}
		}
		action = permissionAction(agent.Permission.Write)

	default:
		return nil
	}

	req := permission.Request{
		Type:      permType,
		Pattern:   pattern,
		SessionID: state.message.SessionID,
		MessageID: state.message.ID,
		CallID:    toolPart.ToolCallID,
		Title:     fmt.Sprintf("Allow %s?", toolPart.ToolName),
	}

	return p.permissionChecker.Check(ctx, req, action)
}

// toSet converts an ordered tool-id list (Agent.Tools / Agent.DisabledTools)
// into the set form permission.AgentPolicy evaluates against.
func toSet(ids []string) map[string]bool {
	if len(ids) == 0 {
		return nil
	}
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}

// permissionAction maps an AgentPermission string field to a
// permission.PermissionAction, defaulting to Ask.
func permissionAction(v string) permission.PermissionAction {
	switch v {
	case "allow":
		return permission.ActionAllow
	case "deny":
		return permission.ActionDeny
	default:
		return permission.ActionAsk
	}
}

