package server

import (
	"github.com/go-chi/chi/v5"
)

// setupRoutes configures the session-facing API surface: the loopback relay
// of the minimal session contract (create/list/get/update/delete, message
// send/list/get, abort, permission response) plus SSE event streams. This is
// deliberately not the full admin/TUI/config/LSP/file-browsing surface the
// CLI's embedded server exposes.
func (s *Server) setupRoutes() {
	r := s.router

	r.Route("/session", func(r chi.Router) {
		r.Get("/", s.listSessions)
		r.Post("/", s.createSession)
		r.Get("/status", s.getSessionStatus)

		r.Route("/{sessionID}", func(r chi.Router) {
			r.Get("/", s.getSession)
			r.Patch("/", s.updateSession)
			r.Delete("/", s.deleteSession)

			r.Get("/message", s.getMessages)
			r.Post("/message", s.sendMessage) // Streaming response
			r.Get("/message/{messageID}", s.getMessage)

			r.Post("/abort", s.abortSession)

			r.Post("/permissions/{permissionID}", s.respondPermission)
		})
	})

	// Event streaming (SSE)
	r.Get("/event", s.sessionEvents)
	r.Get("/global/event", s.globalEvents)
}
