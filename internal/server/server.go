// Package server provides the HTTP server for the Mudra pointer control system.
package server

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/ayusman/mudra/internal/app"
	"github.com/ayusman/mudra/internal/server/api"
	"github.com/ayusman/mudra/internal/store"
)

// Config holds the server configuration.
type Config struct {
	StaticDir string
	Store     *store.Store
	App       *app.App
}

// Server represents the HTTP server for the Mudra application.
type Server struct {
	config  Config
	mux     *http.ServeMux
	pointer *PointerHandler
	start   time.Time
}

// New creates a new Server with the given configuration.
func New(config Config) *Server {
	s := &Server{
		config:  config,
		mux:     http.NewServeMux(),
		pointer: NewPointerHandler(),
		start:   time.Now(),
	}
	s.setupRoutes()
	return s
}

// setupRoutes configures all HTTP routes for the server.
func (s *Server) setupRoutes() {
	s.mux.HandleFunc("/api/health", s.handleHealth)
	s.mux.HandleFunc("/api/status", s.handleStatus)

	// Register settings and event API handlers if Store is configured
	if s.config.Store != nil {
		var onChange func()
		if s.config.App != nil {
			a := s.config.App
			onChange = func() {
				if err := a.LoadSettings(); err != nil {
					log.Printf("Failed to reload settings: %v", err)
				}
			}
		}
		settingsHandler := api.NewSettingsHandler(s.config.Store, onChange)
		s.mux.Handle("/api/settings", settingsHandler)
		s.mux.Handle("/api/settings/", settingsHandler)

		eventsHandler := api.NewEventsHandler(s.config.Store)
		s.mux.Handle("/api/events", eventsHandler)
	}

	// Register camera stream endpoint if the app exposes a camera
	if s.config.App != nil && s.config.App.Camera() != nil {
		streamHandler := NewStreamHandler(s.config.App.Camera())
		s.mux.Handle("/api/stream", streamHandler)
	}

	// Pointer WebSocket endpoint; updates arrive via Pointer().Publish
	s.mux.Handle("/api/pointer", s.pointer)

	// Serve static files if StaticDir is configured
	if s.config.StaticDir != "" {
		fs := http.FileServer(http.Dir(s.config.StaticDir))
		s.mux.Handle("/", fs)
	}
}

// Pointer returns the WebSocket broadcaster for pointer updates.
func (s *Server) Pointer() *PointerHandler {
	return s.pointer
}

// ServeHTTP implements the http.Handler interface.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// handleHealth handles GET requests to /api/health.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	uptime := time.Since(s.start)

	response := map[string]interface{}{
		"status": "ok",
		"uptime": uptime.String(),
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}

type statusResponse struct {
	Enabled      bool   `json:"enabled"`
	Dragging     bool   `json:"dragging"`
	LastAction   string `json:"last_action,omitempty"`
	ActionActive bool   `json:"action_active"`
}

type statusRequest struct {
	Enabled bool `json:"enabled"`
}

// handleStatus handles GET and POST requests to /api/status. GET reports
// whether pointer control is enabled and the most recent dispatched action;
// POST toggles pointer control.
func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	if s.config.App == nil {
		http.Error(w, "Not available", http.StatusServiceUnavailable)
		return
	}

	switch r.Method {
	case http.MethodGet:
		// fall through to the response below
	case http.MethodPost:
		var req statusRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}
		s.config.App.SetEnabled(req.Enabled)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	response := statusResponse{
		Enabled:  s.config.App.IsEnabled(),
		Dragging: s.config.App.Dispatcher().Dragging(),
	}
	if effect, ok := s.config.App.Dispatcher().LastEffect(); ok {
		response.LastAction = string(effect.Action)
		response.ActionActive = effect.ActiveAt(time.Now())
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}

// ListenAndServe starts the HTTP server on the given address.
func (s *Server) ListenAndServe(addr string) error {
	return http.ListenAndServe(addr, s)
}
