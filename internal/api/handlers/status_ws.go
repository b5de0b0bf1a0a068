package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/Daikoman-palanarame2/Pokedex/internal/database"
	ws "github.com/gorilla/websocket"
)

var upgrader = ws.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins for development
	},
}

const statusPingInterval = 30 * time.Second

// StatusWebSocketHandler streams database connectivity transitions to the
// client's status banner, replacing the need to poll /health. The stream is
// public: it carries no user data, only the connection state.
type StatusWebSocketHandler struct {
	tracker *database.Tracker
}

func NewStatusWebSocketHandler(tracker *database.Tracker) *StatusWebSocketHandler {
	return &StatusWebSocketHandler{tracker: tracker}
}

type statusMessage struct {
	State       string `json:"state"`
	DBConnected bool   `json:"dbConnected"`
}

func (h *StatusWebSocketHandler) Handle(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("ERROR [status.Handle] websocket upgrade: %v", err)
		return
	}

	states, cancel := h.tracker.Subscribe()
	defer cancel()
	defer conn.Close()

	// Current state first so the client renders immediately.
	if err := writeStatus(conn, h.tracker.State()); err != nil {
		return
	}

	// Reader goroutine: the client never sends data, but reading is what
	// detects a closed connection.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(statusPingInterval)
	defer ticker.Stop()

	for {
		select {
		case state := <-states:
			if err := writeStatus(conn, state); err != nil {
				return
			}
		case <-ticker.C:
			if err := conn.WriteMessage(ws.PingMessage, nil); err != nil {
				return
			}
		case <-done:
			return
		}
	}
}

func writeStatus(conn *ws.Conn, state database.ConnState) error {
	return conn.WriteJSON(statusMessage{
		State:       state.String(),
		DBConnected: state == database.StateConnected,
	})
}
