// Package server provides a thin, optional HTTP/SSE loopback relay of the
// session-facing API: create/list/get/update/delete a session, send or list
// its messages, abort an in-flight turn, respond to a pending permission
// request, and subscribe to session/global events over Server-Sent Events.
//
// This is not a general-purpose application server. Configuration, provider
// auth, LSP, formatting, command registries, file browsing, and TUI remote
// control are intentionally absent — callers that need those are expected to
// talk to the session engine in-process rather than through this relay.
//
// # Core Components
//
//   - HTTP Server: Chi-based router with middleware for CORS, logging, and recovery
//   - Session Management: relays to internal/session.Service
//   - Event Streaming: Server-Sent Events (SSE) for real-time updates
//
// # API Endpoints
//
//   - /session/*: session lifecycle management and messaging
//   - /event, /global/event: real-time event streaming via SSE
//
// # Usage Example
//
//	config := server.DefaultConfig()
//	config.Port = 8080
//	config.Directory = "/path/to/project"
//
//	srv := server.New(config, appConfig, storage, providerRegistry, toolRegistry)
//
//	if err := srv.InitializeMCP(ctx); err != nil {
//		log.Fatal(err)
//	}
//	defer srv.CloseMCP()
//
//	if err := srv.Start(); err != nil {
//		log.Fatal(err)
//	}
package server
