// Package adapthttp is the driving HTTP adapter for the engine.
package adapthttp

import (
	"net/http"

	"healthchat/internal/app"
)

// Server routes requests to application services.
type Server struct {
	measurements *app.MeasurementService
	chat         *app.ChatService
	insights     *app.InsightsService
	webDir       string
}

// New creates a Server wired to the given application services.
func New(ms *app.MeasurementService, cs *app.ChatService, is *app.InsightsService, webDir string) *Server {
	return &Server{measurements: ms, chat: cs, insights: is, webDir: webDir}
}

// Handler returns the root http.Handler for the application.
func (s *Server) Handler() http.Handler {
	api := http.NewServeMux()
	api.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
	})

	api.HandleFunc("/measurements", s.handleMeasurements)
	api.HandleFunc("/chat", s.handleChat)
	api.HandleFunc("/chat/history", s.handleChatHistory)
	api.HandleFunc("/insights", s.handleInsights)

	root := http.NewServeMux()
	root.Handle("/api/", http.StripPrefix("/api", api))
	root.Handle("/", spaFromDisk(s.webDir))

	return s.loggingMiddleware(withNoCache(root))
}
