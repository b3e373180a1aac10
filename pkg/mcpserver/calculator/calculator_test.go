package calculator

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/opencode-ai/opencode/internal/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func frame(req mcp.JSONRPCRequest) []byte {
	body, _ := json.Marshal(req)
	return []byte(fmt.Sprintf("Content-Length: %d\r\n\r\n%s", len(body), body))
}

func sumFrame(id int64, numbers []float64) []byte {
	args, _ := json.Marshal(map[string]any{"numbers": numbers})
	return frame(mcp.JSONRPCRequest{
		JSONRPC: "2.0",
		ID:      id,
		Method:  "tools/call",
		Params:  mcp.CallToolRequest{Name: "sum", Arguments: args},
	})
}

func readOneFrame(t *testing.T, r io.Reader) mcp.JSONRPCResponse {
	t.Helper()
	data, err := io.ReadAll(r)
	require.NoError(t, err)

	idx := bytes.Index(data, []byte("\r\n\r\n"))
	require.True(t, idx >= 0, "missing frame terminator")

	var resp mcp.JSONRPCResponse
	require.NoError(t, json.Unmarshal(data[idx+4:], &resp))
	return resp
}

func TestServe_Sum(t *testing.T) {
	tests := []struct {
		name     string
		numbers  []float64
		expected string
	}{
		{"positive", []float64{1, 2, 3, 4, 5}, "15"},
		{"negative", []float64{-1, -2, -3}, "-6"},
		{"mixed", []float64{10, -5, 3.5, -2.5}, "6"},
		{"empty", []float64{}, "0"},
		{"single", []float64{42}, "42"},
		{"decimals", []float64{1.1, 2.2, 3.3}, "6.6"},
	}

	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := bytes.NewReader(sumFrame(int64(i+1), tt.numbers))
			var out bytes.Buffer

			require.NoError(t, Serve(in, &out))

			resp := readOneFrame(t, &out)
			require.Nil(t, resp.Error)

			var result mcp.CallToolResponse
			require.NoError(t, json.Unmarshal(resp.Result, &result))
			require.Len(t, result.Content, 1)
			assert.Equal(t, tt.expected, result.Content[0].Text)
			assert.False(t, result.IsError)
		})
	}
}

func TestServe_UnknownTool(t *testing.T) {
	in := bytes.NewReader(frame(mcp.JSONRPCRequest{JSONRPC: "2.0", ID: 1, Method: "tools/call", Params: mcp.CallToolRequest{Name: "multiply"}}))
	var out bytes.Buffer

	require.NoError(t, Serve(in, &out))

	resp := readOneFrame(t, &out)
	var result mcp.CallToolResponse
	require.NoError(t, json.Unmarshal(resp.Result, &result))
	assert.True(t, result.IsError)
}

func TestServe_ToolsList(t *testing.T) {
	in := bytes.NewReader(frame(mcp.JSONRPCRequest{JSONRPC: "2.0", ID: 1, Method: "tools/list"}))
	var out bytes.Buffer

	require.NoError(t, Serve(in, &out))

	resp := readOneFrame(t, &out)
	var result mcp.ListToolsResponse
	require.NoError(t, json.Unmarshal(resp.Result, &result))
	require.Len(t, result.Tools, 1)
	assert.Equal(t, "sum", result.Tools[0].Name)
	assert.Contains(t, result.Tools[0].Description, "sum")
}

func TestServe_Notification_NoResponse(t *testing.T) {
	in := bytes.NewReader(frame(mcp.JSONRPCRequest{JSONRPC: "2.0", Method: "notifications/initialized"}))
	var out bytes.Buffer

	require.NoError(t, Serve(in, &out))
	assert.Empty(t, out.Bytes())
}

func TestNewHTTPHandler_Initialize(t *testing.T) {
	server := httptest.NewServer(NewHTTPHandler())
	defer server.Close()

	req := mcp.JSONRPCRequest{
		JSONRPC: "2.0",
		ID:      1,
		Method:  "initialize",
		Params: mcp.InitializeRequest{
			ProtocolVersion: mcp.ProtocolVersion,
			ClientInfo:      mcp.ClientInfo{Name: "test", Version: "1.0.0"},
		},
	}
	body, _ := json.Marshal(req)

	httpResp, err := http.Post(server.URL, "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	defer httpResp.Body.Close()

	var resp mcp.JSONRPCResponse
	require.NoError(t, json.NewDecoder(httpResp.Body).Decode(&resp))

	var result mcp.InitializeResponse
	require.NoError(t, json.Unmarshal(resp.Result, &result))
	assert.Equal(t, mcp.ProtocolVersion, result.ProtocolVersion)
	assert.Equal(t, "calculator", result.ServerInfo.Name)
}

func TestNewHTTPHandler_ToolsCall(t *testing.T) {
	server := httptest.NewServer(NewHTTPHandler())
	defer server.Close()

	args, _ := json.Marshal(map[string]any{"numbers": []float64{1, 2, 3}})
	req := mcp.JSONRPCRequest{
		JSONRPC: "2.0",
		ID:      2,
		Method:  "tools/call",
		Params:  mcp.CallToolRequest{Name: "sum", Arguments: args},
	}
	body, _ := json.Marshal(req)

	httpResp, err := http.Post(server.URL, "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	defer httpResp.Body.Close()

	var resp mcp.JSONRPCResponse
	require.NoError(t, json.NewDecoder(httpResp.Body).Decode(&resp))

	var result mcp.CallToolResponse
	require.NoError(t, json.Unmarshal(resp.Result, &result))
	require.Len(t, result.Content, 1)
	assert.Equal(t, "6", result.Content[0].Text)
}
