package ws

import (
	"context"
	"encoding/json"
	"log"
	"sync"

	"github.com/playpong/backend/internal/game"
)

// Frame is the envelope every viewer receives.
type Frame struct {
	Type string     `json:"type"`
	Data game.State `json:"data"`
}

// Hub maintains the set of connected renderer clients and fans simulation
// frames out to them. Viewers are read-only: the hub never interprets
// anything a client sends.
type Hub struct {
	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	mu         sync.RWMutex
}

// NewHub creates a new Hub.
func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
	}
}

// Run owns the client set until ctx is done, then closes every connection.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			h.closeAll()
			return

		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			total := len(h.clients)
			h.mu.Unlock()
			log.Printf("[WS] Viewer %s connected (%d total)", client.remote, total)

		case client := <-h.unregister:
			h.mu.Lock()
			if _, exists := h.clients[client]; exists {
				delete(h.clients, client)
				close(client.send)
			}
			total := len(h.clients)
			h.mu.Unlock()
			log.Printf("[WS] Viewer %s disconnected (%d total)", client.remote, total)
		}
	}
}

// PublishState marshals a snapshot and fans it out to every viewer. A viewer
// whose send buffer is full drops the frame; the next tick supersedes it.
func (h *Hub) PublishState(s game.State) {
	data, err := json.Marshal(Frame{Type: "state", Data: s})
	if err != nil {
		log.Printf("[WS] Error marshaling frame: %v", err)
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for client := range h.clients {
		select {
		case client.send <- data:
		default:
			log.Printf("[WS] Send buffer full for viewer %s, dropping frame", client.remote)
		}
	}
}

// ViewerCount returns the number of connected viewers.
func (h *Hub) ViewerCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

func (h *Hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for client := range h.clients {
		close(client.send)
		delete(h.clients, client)
	}
	log.Println("[WS] Hub stopped, all viewers closed")
}
