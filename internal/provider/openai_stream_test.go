package provider

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opencode-ai/opencode/internal/stream"
)

func TestOpenAIStreamReader_TextOnlyTurn(t *testing.T) {
	body := sseBody(
		`data: {"choices":[{"delta":{"content":"Hello from "}}]}`,
		`data: {"choices":[{"delta":{"content":"Qwen!"}}]}`,
		`data: {"choices":[{"delta":{},"finish_reason":"stop"}],"usage":{"prompt_tokens":10,"completion_tokens":5}}`,
		`data: [DONE]`,
	)

	r := newOpenAIStreamReader(body)
	events := drainAll(t, r)

	require.Len(t, events, 3)
	assert.Equal(t, stream.TextDelta{Text: "Hello from "}, events[0])
	assert.Equal(t, stream.TextDelta{Text: "Qwen!"}, events[1])
	finish, ok := events[2].(stream.FinishStep)
	require.True(t, ok)
	assert.Equal(t, stream.FinishStop, finish.Reason)
	assert.Equal(t, stream.Usage{Input: 10, Output: 5}, finish.Usage)
}

func TestOpenAIStreamReader_ToolCallsAccumulateByIndexAndDrainInOrder(t *testing.T) {
	body := sseBody(
		`data: {"choices":[{"delta":{"tool_calls":[{"index":0,"id":"call_1","function":{"name":"echo","arguments":""}}]}}]}`,
		`data: {"choices":[{"delta":{"tool_calls":[{"index":0,"function":{"arguments":"{\"msg\":"}}]}}]}`,
		`data: {"choices":[{"delta":{"tool_calls":[{"index":1,"id":"call_2","function":{"name":"noop","arguments":"{}"}}]}}]}`,
		`data: {"choices":[{"delta":{"tool_calls":[{"index":0,"function":{"arguments":"\"x\"}"}}]}}]}`,
		`data: {"choices":[{"delta":{},"finish_reason":"tool_calls"}]}`,
	)

	r := newOpenAIStreamReader(body)
	events := drainAll(t, r)

	var completes []stream.ToolCallComplete
	var finish stream.FinishStep
	for _, ev := range events {
		switch e := ev.(type) {
		case stream.ToolCallComplete:
			completes = append(completes, e)
		case stream.FinishStep:
			finish = e
		}
	}

	require.Len(t, completes, 2)
	assert.Equal(t, "call_1", completes[0].ID)
	assert.Equal(t, "echo", completes[0].Name)
	var args map[string]string
	require.NoError(t, json.Unmarshal(completes[0].Arguments, &args))
	assert.Equal(t, "x", args["msg"])

	assert.Equal(t, "call_2", completes[1].ID)
	assert.Equal(t, "noop", completes[1].Name)

	assert.Equal(t, stream.FinishToolCalls, finish.Reason)
}

func TestOpenAIStreamReader_FinishReasonStopWithNoToolCallsStaysStop(t *testing.T) {
	body := sseBody(`data: {"choices":[{"delta":{"content":"ok"},"finish_reason":"stop"}]}`)

	r := newOpenAIStreamReader(body)
	events := drainAll(t, r)

	require.Len(t, events, 2)
	finish, ok := events[1].(stream.FinishStep)
	require.True(t, ok)
	assert.Equal(t, stream.FinishStop, finish.Reason)
}
