// Package calculator is a minimal MCP server used to exercise the client's
// two wire variants in tests: Content-Length-framed JSON-RPC over stdio, and
// single-request-single-response JSON-RPC over HTTP. It speaks the same
// "sum" tool contract the original fixture did, but over our own wire
// format instead of delegating to an external MCP server library.
package calculator

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/opencode-ai/opencode/internal/mcp"
)

const sumToolDescription = "Calculates the sum of an array of numbers"

var sumInputSchema = json.RawMessage(`{
	"type": "object",
	"properties": {
		"numbers": {
			"type": "array",
			"description": "Array of numbers to sum",
			"items": {"type": "number"}
		}
	},
	"required": ["numbers"]
}`)

// dispatch handles one decoded JSON-RPC request and returns the response to
// write back, or nil for a notification that expects none.
func dispatch(req mcp.JSONRPCRequest) *mcp.JSONRPCResponse {
	switch req.Method {
	case "initialize":
		result, _ := json.Marshal(mcp.InitializeResponse{
			ProtocolVersion: mcp.ProtocolVersion,
			Capabilities: mcp.ServerCapabilities{
				Tools: &mcp.ToolCapability{ListChanged: false},
			},
			ServerInfo: mcp.ServerInfo{Name: "calculator", Version: "1.0.0"},
		})
		return &mcp.JSONRPCResponse{JSONRPC: "2.0", ID: req.ID, Result: result}

	case "notifications/initialized":
		return nil

	case "tools/list":
		result, _ := json.Marshal(mcp.ListToolsResponse{
			Tools: []mcp.Tool{
				{Name: "sum", Description: sumToolDescription, InputSchema: sumInputSchema},
			},
		})
		return &mcp.JSONRPCResponse{JSONRPC: "2.0", ID: req.ID, Result: result}

	case "tools/call":
		paramsJSON, err := json.Marshal(req.Params)
		if err != nil {
			return &mcp.JSONRPCResponse{JSONRPC: "2.0", ID: req.ID, Error: &mcp.JSONRPCError{Code: -32602, Message: err.Error()}}
		}
		var params mcp.CallToolRequest
		if err := json.Unmarshal(paramsJSON, &params); err != nil {
			return &mcp.JSONRPCResponse{JSONRPC: "2.0", ID: req.ID, Error: &mcp.JSONRPCError{Code: -32602, Message: err.Error()}}
		}
		return &mcp.JSONRPCResponse{JSONRPC: "2.0", ID: req.ID, Result: callTool(params)}

	default:
		return &mcp.JSONRPCResponse{JSONRPC: "2.0", ID: req.ID, Error: &mcp.JSONRPCError{Code: -32601, Message: "method not found: " + req.Method}}
	}
}

func callTool(params mcp.CallToolRequest) json.RawMessage {
	if params.Name != "sum" {
		resp, _ := json.Marshal(mcp.CallToolResponse{
			Content: []mcp.Content{{Type: "text", Text: "unknown tool: " + params.Name}},
			IsError: true,
		})
		return resp
	}

	var args struct {
		Numbers []float64 `json:"numbers"`
	}
	if len(params.Arguments) > 0 {
		if err := json.Unmarshal(params.Arguments, &args); err != nil {
			resp, _ := json.Marshal(mcp.CallToolResponse{
				Content: []mcp.Content{{Type: "text", Text: fmt.Sprintf("invalid numbers: %v", err)}},
				IsError: true,
			})
			return resp
		}
	}

	var sum float64
	for _, n := range args.Numbers {
		sum += n
	}

	resp, _ := json.Marshal(mcp.CallToolResponse{
		Content: []mcp.Content{{Type: "text", Text: formatFloat(sum)}},
	})
	return resp
}

// formatFloat formats a float64 as a string, removing trailing zeros.
func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// Serve runs the stdio variant: it reads Content-Length-framed JSON-RPC
// requests from r and writes framed responses to w until r is exhausted or
// a read fails.
func Serve(r io.Reader, w io.Writer) error {
	br := bufio.NewReader(r)

	for {
		length, err := readContentLength(br)
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}

		body := make([]byte, length)
		if _, err := io.ReadFull(br, body); err != nil {
			return err
		}

		var req mcp.JSONRPCRequest
		if err := json.Unmarshal(body, &req); err != nil {
			continue
		}

		resp := dispatch(req)
		if resp == nil {
			continue
		}

		if err := writeFramed(w, resp); err != nil {
			return err
		}
	}
}

// readContentLength reads header lines up to the blank line terminator and
// returns the parsed Content-Length value.
func readContentLength(br *bufio.Reader) (int, error) {
	length := -1
	for {
		line, err := br.ReadString('\n')
		if err != nil {
			return 0, err
		}
		line = strings.TrimRight(line, "\r\n")
		if line == "" {
			if length < 0 {
				return 0, fmt.Errorf("missing Content-Length header")
			}
			return length, nil
		}
		const prefix = "Content-Length:"
		if strings.HasPrefix(line, prefix) {
			n, err := strconv.Atoi(strings.TrimSpace(line[len(prefix):]))
			if err != nil {
				return 0, fmt.Errorf("malformed Content-Length: %w", err)
			}
			length = n
		}
	}
}

func writeFramed(w io.Writer, msg any) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	header := fmt.Sprintf("Content-Length: %d\r\n\r\n", len(body))
	if _, err := io.WriteString(w, header); err != nil {
		return err
	}
	_, err = w.Write(body)
	return err
}

// NewHTTPHandler returns the HTTP variant: each POST body is a single
// JSON-RPC request, each response body a single JSON-RPC response.
func NewHTTPHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}

		var buf bytes.Buffer
		if _, err := io.Copy(&buf, r.Body); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		var req mcp.JSONRPCRequest
		if err := json.Unmarshal(buf.Bytes(), &req); err != nil {
			http.Error(w, "malformed JSON-RPC request", http.StatusBadRequest)
			return
		}

		resp := dispatch(req)
		if resp == nil {
			w.WriteHeader(http.StatusOK)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	})
}
