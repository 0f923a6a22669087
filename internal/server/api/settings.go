// Package api provides HTTP API handlers for the Mudra pointer control system.
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/ayusman/mudra/internal/store"
)

// Tunable settings exposed over the API, with the value kind each expects.
var knownSettings = map[string]string{
	"pinch_threshold":  "float",
	"spread_threshold": "float",
	"thumb_threshold":  "float",
	"swipe_threshold":  "float",
	"smoothing_gain":   "float",
	"scroll_delta":     "int",
}

// SettingsHandler handles HTTP requests for tunable settings.
type SettingsHandler struct {
	store    *store.Store
	onChange func()
}

// NewSettingsHandler creates a new SettingsHandler with the given store.
// onChange, if non-nil, is invoked after any mutation so the running
// pipeline can pick up the new values.
func NewSettingsHandler(s *store.Store, onChange func()) *SettingsHandler {
	return &SettingsHandler{store: s, onChange: onChange}
}

// ServeHTTP implements the http.Handler interface and routes requests to appropriate methods.
func (h *SettingsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// Expected paths: /api/settings or /api/settings/{key}
	path := strings.TrimPrefix(r.URL.Path, "/api/settings")
	path = strings.TrimPrefix(path, "/")

	if path == "" {
		// Collection endpoint: /api/settings
		switch r.Method {
		case http.MethodGet:
			h.list(w, r)
		case http.MethodPut:
			h.replace(w, r)
		default:
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
		return
	}

	// Item endpoint: /api/settings/{key}
	key := path
	switch r.Method {
	case http.MethodGet:
		h.get(w, r, key)
	case http.MethodPut:
		h.set(w, r, key)
	case http.MethodDelete:
		h.delete(w, r, key)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

type settingValueRequest struct {
	Value string `json:"value"`
}

type settingResponse struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// validateSetting rejects values of the wrong kind for known keys. Unknown
// keys pass through; the pipeline ignores them on load.
func validateSetting(key, value string) error {
	kind, ok := knownSettings[key]
	if !ok {
		return nil
	}

	switch kind {
	case "int":
		if _, err := strconv.Atoi(value); err != nil {
			return errors.New("expected an integer")
		}
	case "float":
		if _, err := strconv.ParseFloat(value, 64); err != nil {
			return errors.New("expected a number")
		}
	}
	return nil
}

// list handles GET /api/settings and returns all stored settings.
func (h *SettingsHandler) list(w http.ResponseWriter, r *http.Request) {
	settings, err := h.store.Settings().All()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list settings")
		return
	}

	writeJSON(w, http.StatusOK, settings)
}

// replace handles PUT /api/settings and stores every key in the body.
func (h *SettingsHandler) replace(w http.ResponseWriter, r *http.Request) {
	var req map[string]string
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	for key, value := range req {
		if err := validateSetting(key, value); err != nil {
			writeError(w, http.StatusBadRequest, key+": "+err.Error())
			return
		}
	}

	for key, value := range req {
		if err := h.store.Settings().Set(key, value); err != nil {
			writeError(w, http.StatusInternalServerError, "Failed to store setting")
			return
		}
	}

	h.notifyChange()
	h.list(w, r)
}

// get handles GET /api/settings/{key} and returns a single setting.
func (h *SettingsHandler) get(w http.ResponseWriter, r *http.Request, key string) {
	value, err := h.store.Settings().Get(key)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Setting not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to get setting")
		return
	}

	writeJSON(w, http.StatusOK, settingResponse{Key: key, Value: value})
}

// set handles PUT /api/settings/{key} and stores a single setting.
func (h *SettingsHandler) set(w http.ResponseWriter, r *http.Request, key string) {
	var req settingValueRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if err := validateSetting(key, req.Value); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.store.Settings().Set(key, req.Value); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to store setting")
		return
	}

	h.notifyChange()
	writeJSON(w, http.StatusOK, settingResponse{Key: key, Value: req.Value})
}

// delete handles DELETE /api/settings/{key} and removes a stored override.
func (h *SettingsHandler) delete(w http.ResponseWriter, r *http.Request, key string) {
	err := h.store.Settings().Delete(key)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Setting not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to delete setting")
		return
	}

	h.notifyChange()
	w.WriteHeader(http.StatusNoContent)
}

func (h *SettingsHandler) notifyChange() {
	if h.onChange != nil {
		h.onChange()
	}
}
