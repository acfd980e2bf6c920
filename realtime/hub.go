// Package realtime pushes live order events to connected vendor clients.
// Delivery is best-effort; a failed push never fails the order.
package realtime

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type Hub struct {
	mu      sync.Mutex
	clients map[uint]map[*websocket.Conn]bool // keyed by vendor id
}

func NewHub() *Hub {
	return &Hub{clients: make(map[uint]map[*websocket.Conn]bool)}
}

// Serve upgrades the request and keeps the connection registered for the
// vendor until the client goes away.
func (h *Hub) Serve(vendorID uint, w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	h.mu.Lock()
	if h.clients[vendorID] == nil {
		h.clients[vendorID] = make(map[*websocket.Conn]bool)
	}
	h.clients[vendorID][conn] = true
	h.mu.Unlock()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}

	h.mu.Lock()
	delete(h.clients[vendorID], conn)
	h.mu.Unlock()
}

// Broadcast sends the payload to every connection of the vendor.
func (h *Hub) Broadcast(vendorID uint, payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.clients[vendorID] {
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			conn.Close()
			delete(h.clients[vendorID], conn)
		}
	}
}
