// Package events pushes mutation notifications to connected UI clients over
// websockets, so views re-render after each Domain Store change without
// polling.
package events

import (
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// Event describes one successful store mutation.
type Event struct {
	Entity    string    `json:"entity"` // client | inquiry | order | appointment
	ID        string    `json:"id"`
	Action    string    `json:"action"` // created | updated | advanced | ...
	Timestamp time.Time `json:"timestamp"`
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Hub fans events out to every connected websocket client. Slow clients are
// dropped rather than allowed to block the broadcast loop.
type Hub struct {
	clients    map[*websocket.Conn]bool
	clientsMux sync.Mutex
	broadcast  chan Event
}

func NewHub() *Hub {
	return &Hub{
		clients:   make(map[*websocket.Conn]bool),
		broadcast: make(chan Event, 64),
	}
}

// Run pumps broadcasts to clients. Call in its own goroutine.
func (h *Hub) Run() {
	for event := range h.broadcast {
		h.clientsMux.Lock()
		for conn := range h.clients {
			conn.SetWriteDeadline(time.Now().Add(5 * time.Second))
			if err := conn.WriteJSON(event); err != nil {
				conn.Close()
				delete(h.clients, conn)
			}
		}
		h.clientsMux.Unlock()
	}
}

// Publish queues an event for broadcast. Never blocks the mutation path: if
// the queue is full the event is dropped (clients resync on next query).
func (h *Hub) Publish(entity, id, action string) {
	event := Event{Entity: entity, ID: id, Action: action, Timestamp: time.Now()}
	select {
	case h.broadcast <- event:
	default:
		log.Printf("[Events] broadcast queue full, dropping %s/%s %s", entity, id, action)
	}
}

// HandleWS upgrades the request and registers the client.
func (h *Hub) HandleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[Events] websocket upgrade failed: %v", err)
		return
	}

	h.clientsMux.Lock()
	h.clients[conn] = true
	h.clientsMux.Unlock()

	// Reader loop exists only to notice disconnects.
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				h.clientsMux.Lock()
				delete(h.clients, conn)
				h.clientsMux.Unlock()
				conn.Close()
				return
			}
		}
	}()
}

// ClientCount returns the number of connected clients (health endpoint).
func (h *Hub) ClientCount() int {
	h.clientsMux.Lock()
	defer h.clientsMux.Unlock()
	return len(h.clients)
}
