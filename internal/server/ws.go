// Package server provides the HTTP server for the Mudra pointer control system.
package server

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow local connections
	},
}

// PointerUpdate is the per-cycle message broadcast to WebSocket clients.
type PointerUpdate struct {
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	Action    string  `json:"action,omitempty"`
	Hand      bool    `json:"hand"`
	Timestamp int64   `json:"timestamp"`
}

// PointerHandler broadcasts pointer updates via WebSocket. Unlike a polling
// stream, updates are pushed into it by the detection pipeline through
// Publish, so clients see exactly the cycles the dispatcher saw.
type PointerHandler struct {
	clients map[*websocket.Conn]bool
	mu      sync.RWMutex
}

// NewPointerHandler creates a new PointerHandler.
func NewPointerHandler() *PointerHandler {
	return &PointerHandler{
		clients: make(map[*websocket.Conn]bool),
	}
}

// ServeHTTP handles WebSocket upgrade requests.
func (h *PointerHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("websocket upgrade error: %v", err)
		return
	}
	defer conn.Close()

	h.mu.Lock()
	h.clients[conn] = true
	h.mu.Unlock()

	defer func() {
		h.mu.Lock()
		delete(h.clients, conn)
		h.mu.Unlock()
	}()

	// Keep connection alive by reading messages
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}

// Publish sends a pointer update to all connected clients. A zero Timestamp
// is filled with the current time.
func (h *PointerHandler) Publish(update PointerUpdate) {
	if update.Timestamp == 0 {
		update.Timestamp = time.Now().UnixMilli()
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	if len(h.clients) == 0 {
		return
	}

	msg, err := json.Marshal(update)
	if err != nil {
		return
	}

	for conn := range h.clients {
		conn.WriteMessage(websocket.TextMessage, msg)
	}
}

// ClientCount returns the number of connected WebSocket clients.
func (h *PointerHandler) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
