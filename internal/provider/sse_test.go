package provider

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSSEScanner_SingleFrame(t *testing.T) {
	s := newSSEScanner(strings.NewReader("event: message_start\ndata: {\"type\":\"message_start\"}\n\n"))

	frame, err := s.next()
	require.NoError(t, err)
	assert.Equal(t, "message_start", frame.event)
	assert.Equal(t, `{"type":"message_start"}`, frame.data)

	_, err = s.next()
	assert.ErrorIs(t, err, io.EOF)
}

func TestSSEScanner_MultipleDataLinesJoinedWithNewline(t *testing.T) {
	s := newSSEScanner(strings.NewReader("data: line one\ndata: line two\n\n"))

	frame, err := s.next()
	require.NoError(t, err)
	assert.Equal(t, "line one\nline two", frame.data)
}

func TestSSEScanner_CommentLinesIgnored(t *testing.T) {
	s := newSSEScanner(strings.NewReader(": heartbeat\ndata: {\"a\":1}\n\n"))

	frame, err := s.next()
	require.NoError(t, err)
	assert.Equal(t, `{"a":1}`, frame.data)
}

func TestSSEScanner_MultipleFramesInOrder(t *testing.T) {
	s := newSSEScanner(strings.NewReader("data: first\n\ndata: second\n\n"))

	f1, err := s.next()
	require.NoError(t, err)
	assert.Equal(t, "first", f1.data)

	f2, err := s.next()
	require.NoError(t, err)
	assert.Equal(t, "second", f2.data)

	_, err = s.next()
	assert.ErrorIs(t, err, io.EOF)
}

func TestSSEScanner_FrameWithoutTrailingBlankLineStillDispatchedAtEOF(t *testing.T) {
	s := newSSEScanner(strings.NewReader("data: unterminated"))

	frame, err := s.next()
	require.NoError(t, err)
	assert.Equal(t, "unterminated", frame.data)

	_, err = s.next()
	assert.ErrorIs(t, err, io.EOF)
}

func TestSplitSSEField(t *testing.T) {
	field, value := splitSSEField("data: hello")
	assert.Equal(t, "data", field)
	assert.Equal(t, "hello", value)

	field, value = splitSSEField("event:ping")
	assert.Equal(t, "event", field)
	assert.Equal(t, "ping", value)
}
