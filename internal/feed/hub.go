package feed

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// RefreshEvent is pushed to connected clients whenever the external jobs
// cache is rebuilt, so the frontend can re-fetch instead of polling.
type RefreshEvent struct {
	Type  string    `json:"type"` // "jobs.refreshed"
	Count int       `json:"count"`
	At    time.Time `json:"at"`
}

type Hub struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]struct{}
}

type Stats struct {
	WSClients int `json:"ws_clients"`
}

func NewHub() *Hub {
	return &Hub{clients: make(map[*websocket.Conn]struct{})}
}

func (h *Hub) Add(ws *websocket.Conn) {
	h.mu.Lock()
	h.clients[ws] = struct{}{}
	h.mu.Unlock()
}

func (h *Hub) Remove(ws *websocket.Conn) {
	h.mu.Lock()
	delete(h.clients, ws)
	h.mu.Unlock()
	_ = ws.Close()
}

func (h *Hub) Stats() Stats {
	h.mu.Lock()
	defer h.mu.Unlock()
	return Stats{WSClients: len(h.clients)}
}

// BroadcastRefresh fans a refresh event out to every connected client.
// Dead connections are dropped on write failure.
func (h *Hub) BroadcastRefresh(count int) {
	b, err := json.Marshal(RefreshEvent{Type: "jobs.refreshed", Count: count, At: time.Now().UTC()})
	if err != nil {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for ws := range h.clients {
		_ = ws.SetWriteDeadline(time.Now().Add(2 * time.Second))
		if err := ws.WriteMessage(websocket.TextMessage, b); err != nil {
			_ = ws.Close()
			delete(h.clients, ws)
		}
	}
}
