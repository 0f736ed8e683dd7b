package websocket

import (
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
)

var Upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Hub fans sync events out to the watchers of each project. Rooms are keyed
// by project id; a client joins exactly one room for its connection.
type Hub struct {
	rooms      map[string]map[*Client]bool
	mu         sync.RWMutex
	Register   chan *Client
	Unregister chan *Client
}

func NewHub() *Hub {
	return &Hub{
		rooms:      make(map[string]map[*Client]bool),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.Register:
			h.registerClient(client)
		case client := <-h.Unregister:
			h.unregisterClient(client)
		}
	}
}

func (h *Hub) registerClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.rooms[client.ProjectID]; !ok {
		h.rooms[client.ProjectID] = make(map[*Client]bool)
	}
	h.rooms[client.ProjectID][client] = true
	log.Printf("Watcher for project %s registered", client.ProjectID)
}

func (h *Hub) unregisterClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if watchers, ok := h.rooms[client.ProjectID]; ok {
		if _, ok := watchers[client]; ok {
			delete(watchers, client)
			close(client.send)
			if len(watchers) == 0 {
				delete(h.rooms, client.ProjectID)
			}
			log.Printf("Watcher for project %s unregistered", client.ProjectID)
		}
	}
}

// PublishEvent delivers eventData to every watcher of the project. Slow
// watchers are skipped rather than blocking the sync path.
func (h *Hub) PublishEvent(projectID string, eventData []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if watchers, ok := h.rooms[projectID]; ok {
		for client := range watchers {
			select {
			case client.send <- eventData:
			default:
				log.Printf("WARN: Watcher for project %s send buffer is full. Dropping message.", projectID)
			}
		}
	}
}
