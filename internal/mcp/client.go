package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"
)

// toolPrefix starts every bridged tool id; the server and tool names follow,
// joined by "_" (spec.md §4.4: "mcp_<server>_<name>").
const toolPrefix = "mcp_"

// Client manages MCP server connections, speaking the wire protocol
// directly over Transport rather than through a third-party MCP SDK, so
// that the exact framing spec.md mandates (Content-Length stdio, single
// request/response HTTP) stays under our control.
type Client struct {
	mu      sync.RWMutex
	servers map[string]*mcpServer
}

// mcpServer represents a connected MCP server.
type mcpServer struct {
	name       string
	config     *Config
	transport  Transport
	tools      []Tool
	resources  []Resource
	prompts    []Prompt
	status     Status
	error      string
	serverInfo *ServerInfo
}

// NewClient creates a new MCP client.
func NewClient() *Client {
	return &Client{
		servers: make(map[string]*mcpServer),
	}
}

// AddServer adds and connects to an MCP server.
func (c *Client) AddServer(ctx context.Context, name string, config *Config) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.servers[name]; ok {
		return fmt.Errorf("server already exists: %s", name)
	}

	if !config.Enabled {
		c.servers[name] = &mcpServer{
			name:   name,
			config: config,
			status: StatusDisabled,
		}
		return nil
	}

	server, err := c.connectServer(ctx, name, config)
	if err != nil {
		c.servers[name] = &mcpServer{
			name:   name,
			config: config,
			status: StatusFailed,
			error:  err.Error(),
		}
		return err
	}

	c.servers[name] = server
	return nil
}

// connectServer builds the transport for config.Type, performs the MCP
// initialize handshake (spec.md §4.7), sends notifications/initialized,
// then lists the server's tools.
func (c *Client) connectServer(ctx context.Context, name string, config *Config) (*mcpServer, error) {
	timeout := time.Duration(config.Timeout) * time.Millisecond
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	transport, err := newTransport(ctx, config)
	if err != nil {
		return nil, err
	}

	server := &mcpServer{
		name:      name,
		config:    config,
		transport: transport,
		status:    StatusConnecting,
	}

	connectCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := server.initialize(connectCtx); err != nil {
		transport.Close()
		return nil, err
	}

	if err := server.listTools(connectCtx); err != nil {
		transport.Close()
		return nil, fmt.Errorf("failed to list tools: %w", err)
	}

	server.status = StatusConnected
	return server, nil
}

// newTransport builds the Transport variant for config.Type.
func newTransport(ctx context.Context, config *Config) (Transport, error) {
	switch config.Type {
	case TransportTypeRemote:
		return NewHTTPTransport(config.URL, config.Headers)

	case TransportTypeLocal, TransportTypeStdio:
		if len(config.Command) == 0 {
			return nil, fmt.Errorf("empty command")
		}
		return NewStdioTransport(ctx, config.Command, config.Environment)

	default:
		return nil, fmt.Errorf("unknown transport type: %s", config.Type)
	}
}

// initialize performs the MCP handshake: send "initialize", capture the
// server's identity and capabilities, then fire the "notifications/initialized"
// notification required before any other request (spec.md §4.7).
func (s *mcpServer) initialize(ctx context.Context) error {
	req := InitializeRequest{
		ProtocolVersion: ProtocolVersion,
		Capabilities:    ClientCapabilities{},
		ClientInfo:      ClientInfo{Name: "opencode", Version: "1.0.0"},
	}

	result, err := s.transport.Send(ctx, "initialize", req)
	if err != nil {
		return fmt.Errorf("initialize failed: %w", err)
	}

	var resp InitializeResponse
	if err := json.Unmarshal(result, &resp); err != nil {
		return fmt.Errorf("malformed initialize response: %w", err)
	}
	s.serverInfo = &ServerInfo{Name: resp.ServerInfo.Name, Version: resp.ServerInfo.Version}

	return s.transport.Notify(ctx, "notifications/initialized", nil)
}

// listTools lists available tools from the server.
func (s *mcpServer) listTools(ctx context.Context) error {
	result, err := s.transport.Send(ctx, "tools/list", nil)
	if err != nil {
		return err
	}

	var resp ListToolsResponse
	if err := json.Unmarshal(result, &resp); err != nil {
		return fmt.Errorf("malformed tools/list response: %w", err)
	}

	s.tools = resp.Tools
	return nil
}

// listResources lists available resources from the server.
func (s *mcpServer) listResources(ctx context.Context) ([]Resource, error) {
	result, err := s.transport.Send(ctx, "resources/list", nil)
	if err != nil {
		return nil, err
	}

	var resp ListResourcesResponse
	if err := json.Unmarshal(result, &resp); err != nil {
		return nil, fmt.Errorf("malformed resources/list response: %w", err)
	}
	return resp.Resources, nil
}

// readResource reads a resource by its server-local URI.
func (s *mcpServer) readResource(ctx context.Context, uri string) (*ReadResourceResponse, error) {
	result, err := s.transport.Send(ctx, "resources/read", ReadResourceRequest{URI: uri})
	if err != nil {
		return nil, err
	}

	var resp ReadResourceResponse
	if err := json.Unmarshal(result, &resp); err != nil {
		return nil, fmt.Errorf("malformed resources/read response: %w", err)
	}
	return &resp, nil
}

// bridgedName builds the namespaced tool id spec.md §4.4 requires:
// "mcp_<server>_<name>".
func bridgedName(server, tool string) string {
	return toolPrefix + sanitizeToolName(server) + "_" + sanitizeToolName(tool)
}

// Tools returns all tools from all connected servers, namespaced by server.
func (c *Client) Tools() []Tool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var allTools []Tool
	for name, server := range c.servers {
		if server.status != StatusConnected {
			continue
		}

		for _, tool := range server.tools {
			allTools = append(allTools, Tool{
				Name:        bridgedName(name, tool.Name),
				Description: tool.Description,
				InputSchema: tool.InputSchema,
			})
		}
	}

	return allTools
}

// resolveTool finds the connected server and original (un-namespaced) tool
// name behind a bridged tool id.
func (c *Client) resolveTool(toolName string) (*mcpServer, string, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if !strings.HasPrefix(toolName, toolPrefix) {
		return nil, "", fmt.Errorf("no server found for tool: %s", toolName)
	}
	rest := strings.TrimPrefix(toolName, toolPrefix)

	for name, server := range c.servers {
		if server.status != StatusConnected {
			continue
		}
		prefix := sanitizeToolName(name) + "_"
		if !strings.HasPrefix(rest, prefix) {
			continue
		}
		sanitizedOriginal := strings.TrimPrefix(rest, prefix)
		for _, t := range server.tools {
			if sanitizeToolName(t.Name) == sanitizedOriginal {
				return server, t.Name, nil
			}
		}
	}

	return nil, "", fmt.Errorf("no server found for tool: %s", toolName)
}

// ExecuteTool executes a tool on the appropriate server.
func (c *Client) ExecuteTool(ctx context.Context, toolName string, args json.RawMessage) (string, error) {
	server, originalName, err := c.resolveTool(toolName)
	if err != nil {
		return "", err
	}

	result, err := server.transport.Send(ctx, "tools/call", CallToolRequest{Name: originalName, Arguments: args})
	if err != nil {
		return "", err
	}

	var resp CallToolResponse
	if err := json.Unmarshal(result, &resp); err != nil {
		return "", fmt.Errorf("malformed tools/call response: %w", err)
	}

	var output strings.Builder
	for _, content := range resp.Content {
		if content.Type == "text" {
			output.WriteString(content.Text)
		}
	}

	if resp.IsError {
		if output.Len() > 0 {
			return "", fmt.Errorf("tool error: %s", output.String())
		}
		return "", fmt.Errorf("tool execution failed")
	}

	return output.String(), nil
}

// ListResources lists all resources from all connected servers.
func (c *Client) ListResources(ctx context.Context) ([]Resource, error) {
	c.mu.RLock()
	servers := make(map[string]*mcpServer, len(c.servers))
	for name, server := range c.servers {
		servers[name] = server
	}
	c.mu.RUnlock()

	var allResources []Resource
	for name, server := range servers {
		if server.status != StatusConnected {
			continue
		}

		resources, err := server.listResources(ctx)
		if err != nil {
			continue // Skip servers that fail
		}

		for _, r := range resources {
			allResources = append(allResources, Resource{
				URI:         fmt.Sprintf("mcp://%s/%s", name, r.URI),
				Name:        r.Name,
				Description: r.Description,
				MimeType:    r.MimeType,
			})
		}
	}

	return allResources, nil
}

// ReadResource reads a resource from a server given its bridged mcp:// URI.
func (c *Client) ReadResource(ctx context.Context, uri string) (*ReadResourceResponse, error) {
	if !strings.HasPrefix(uri, "mcp://") {
		return nil, fmt.Errorf("invalid MCP URI: %s", uri)
	}

	parts := strings.SplitN(strings.TrimPrefix(uri, "mcp://"), "/", 2)
	if len(parts) != 2 {
		return nil, fmt.Errorf("invalid MCP URI format: %s", uri)
	}
	serverName, resourceURI := parts[0], parts[1]

	c.mu.RLock()
	server, ok := c.servers[serverName]
	c.mu.RUnlock()

	if !ok || server.status != StatusConnected {
		return nil, fmt.Errorf("server not connected: %s", serverName)
	}

	return server.readResource(ctx, resourceURI)
}

// Status returns status of all MCP servers.
func (c *Client) Status() []ServerStatus {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var status []ServerStatus
	for name, server := range c.servers {
		s := ServerStatus{Name: name, Status: server.status, ToolCount: len(server.tools)}
		if server.error != "" {
			s.Error = &server.error
		}
		status = append(status, s)
	}
	return status
}

// GetServer returns information about a specific server.
func (c *Client) GetServer(name string) (*ServerStatus, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	server, ok := c.servers[name]
	if !ok {
		return nil, fmt.Errorf("server not found: %s", name)
	}

	s := &ServerStatus{Name: name, Status: server.status, ToolCount: len(server.tools)}
	if server.error != "" {
		s.Error = &server.error
	}
	return s, nil
}

// RemoveServer removes and disconnects a server.
func (c *Client) RemoveServer(name string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	server, ok := c.servers[name]
	if !ok {
		return fmt.Errorf("server not found: %s", name)
	}

	if server.transport != nil {
		server.transport.Close()
	}

	delete(c.servers, name)
	return nil
}

// Close disconnects all servers.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, server := range c.servers {
		if server.transport != nil {
			server.transport.Close()
		}
	}

	c.servers = make(map[string]*mcpServer)
	return nil
}

// ServerCount returns the number of configured servers.
func (c *Client) ServerCount() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.servers)
}

// ConnectedCount returns the number of connected servers.
func (c *Client) ConnectedCount() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	count := 0
	for _, server := range c.servers {
		if server.status == StatusConnected {
			count++
		}
	}
	return count
}

// sanitizeToolName replaces non-alphanumeric chars with underscore.
func sanitizeToolName(name string) string {
	var result strings.Builder
	for _, r := range name {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			result.WriteRune(r)
		} else {
			result.WriteRune('_')
		}
	}
	return result.String()
}
