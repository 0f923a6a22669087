package server

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

func TestPointerHandler_Broadcast(t *testing.T) {
	srv := New(Config{})
	ts := httptest.NewServer(srv)
	defer ts.Close()

	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/api/pointer"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("websocket dial error = %v", err)
	}
	defer conn.Close()

	// Registration happens in the server's handler goroutine.
	deadline := time.Now().Add(2 * time.Second)
	for srv.Pointer().ClientCount() == 0 {
		if time.Now().After(deadline) {
			t.Fatal("client never registered")
		}
		time.Sleep(10 * time.Millisecond)
	}

	srv.Pointer().Publish(PointerUpdate{X: 320, Y: 240, Action: "click", Hand: true})

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, msg, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("ReadMessage error = %v", err)
	}

	var update PointerUpdate
	if err := json.Unmarshal(msg, &update); err != nil {
		t.Fatalf("failed to decode update: %v", err)
	}

	if update.X != 320 || update.Y != 240 {
		t.Errorf("position = (%v, %v), want (320, 240)", update.X, update.Y)
	}
	if update.Action != "click" {
		t.Errorf("action = %q, want click", update.Action)
	}
	if !update.Hand {
		t.Error("expected hand present")
	}
	if update.Timestamp == 0 {
		t.Error("expected timestamp to be filled")
	}
}

func TestPointerHandler_PublishWithoutClients(t *testing.T) {
	h := NewPointerHandler()

	// Must not panic or block with nobody connected.
	h.Publish(PointerUpdate{X: 1, Y: 2})

	if h.ClientCount() != 0 {
		t.Errorf("ClientCount = %d, want 0", h.ClientCount())
	}
}
