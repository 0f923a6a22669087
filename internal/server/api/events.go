package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/ayusman/mudra/internal/store"
)

// EventsHandler handles HTTP requests for the dispatched-action log.
type EventsHandler struct {
	store *store.Store
}

// NewEventsHandler creates a new EventsHandler with the given store.
func NewEventsHandler(s *store.Store) *EventsHandler {
	return &EventsHandler{store: s}
}

// ServeHTTP implements the http.Handler interface and routes requests to appropriate methods.
func (h *EventsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.list(w, r)
	case http.MethodDelete:
		h.prune(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

type eventResponse struct {
	ID        string  `json:"id"`
	Action    string  `json:"action"`
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	CreatedAt string  `json:"created_at"`
}

type listEventsResponse struct {
	Events []eventResponse `json:"events"`
}

type pruneEventsResponse struct {
	Deleted int64 `json:"deleted"`
}

// toEventResponse converts a store.Event to an eventResponse.
func toEventResponse(e *store.Event) eventResponse {
	return eventResponse{
		ID:        e.ID,
		Action:    e.Action,
		X:         e.X,
		Y:         e.Y,
		CreatedAt: e.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

// list handles GET /api/events?limit=N and returns the most recent events.
func (h *EventsHandler) list(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			writeError(w, http.StatusBadRequest, "Invalid limit")
			return
		}
		limit = n
	}

	events, err := h.store.Events().Recent(limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list events")
		return
	}

	response := listEventsResponse{
		Events: make([]eventResponse, 0, len(events)),
	}
	for _, e := range events {
		response.Events = append(response.Events, toEventResponse(e))
	}

	writeJSON(w, http.StatusOK, response)
}

// prune handles DELETE /api/events?days=N and removes events older than N days.
func (h *EventsHandler) prune(w http.ResponseWriter, r *http.Request) {
	days, err := strconv.Atoi(r.URL.Query().Get("days"))
	if err != nil || days < 0 {
		writeError(w, http.StatusBadRequest, "Invalid days")
		return
	}

	cutoff := time.Now().AddDate(0, 0, -days)
	deleted, err := h.store.Events().DeleteBefore(cutoff)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to prune events")
		return
	}

	writeJSON(w, http.StatusOK, pruneEventsResponse{Deleted: deleted})
}
