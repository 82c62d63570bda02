package services

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/alouani-moncif/secret-word-society-replit/internal/config"
	"github.com/alouani-moncif/secret-word-society-replit/internal/models"
)

// Hub fans room state changes out to every WebSocket subscribed to a room.
// It holds no game state: the persistence layer is the source of truth and
// the hub only pushes snapshots.
type Hub struct {
	// Room connections: roomId -> set of clients
	rooms map[string]map[*Client]bool

	broadcast  chan *BroadcastMessage
	register   chan *Registration
	unregister chan *Registration

	metrics *Metrics

	mu sync.RWMutex
}

type Registration struct {
	RoomID string
	Client *Client
}

type BroadcastMessage struct {
	RoomID  string
	Message *models.WSMessage
}

func NewHub(metrics *Metrics) *Hub {
	return &Hub{
		rooms:      make(map[string]map[*Client]bool),
		broadcast:  make(chan *BroadcastMessage, config.HubBroadcastBufferSize),
		register:   make(chan *Registration),
		unregister: make(chan *Registration),
		metrics:    metrics,
	}
}

func (h *Hub) Run() {
	for {
		select {
		case reg := <-h.register:
			h.registerClient(reg)

		case reg := <-h.unregister:
			h.unregisterClient(reg)

		case msg := <-h.broadcast:
			h.broadcastToRoom(msg)
		}
	}
}

func (h *Hub) registerClient(reg *Registration) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.rooms[reg.RoomID] == nil {
		h.rooms[reg.RoomID] = make(map[*Client]bool)
		h.metrics.IncrementRooms()
	}
	h.rooms[reg.RoomID][reg.Client] = true
	h.metrics.IncrementConnections()

	log.Printf("✓ WebSocket registered: room=%s player=%s (connections in room: %d)",
		reg.RoomID, reg.Client.playerID, len(h.rooms[reg.RoomID]))
}

func (h *Hub) unregisterClient(reg *Registration) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if clients, ok := h.rooms[reg.RoomID]; ok {
		if _, exists := clients[reg.Client]; exists {
			delete(clients, reg.Client)
			reg.Client.Close()
			h.metrics.DecrementConnections()

			// Clean up empty rooms
			if len(clients) == 0 {
				delete(h.rooms, reg.RoomID)
				h.metrics.DecrementRooms()
			}
		}
	}
}

func (h *Hub) broadcastToRoom(msg *BroadcastMessage) {
	h.mu.RLock()
	clients := make([]*Client, 0, len(h.rooms[msg.RoomID]))
	for c := range h.rooms[msg.RoomID] {
		clients = append(clients, c)
	}
	h.mu.RUnlock()

	if len(clients) == 0 {
		return
	}

	data, err := json.Marshal(msg.Message)
	if err != nil {
		log.Printf("Error marshaling message: %v", err)
		h.metrics.IncrementBroadcastErrors()
		return
	}

	for _, c := range clients {
		c.Send(data)
	}
}

// BroadcastToRoom queues a message for every client subscribed to the room.
func (h *Hub) BroadcastToRoom(roomID string, message *models.WSMessage) {
	h.broadcast <- &BroadcastMessage{
		RoomID:  roomID,
		Message: message,
	}
}

// SendToClient sends a message to a single client, bypassing the room fanout.
func (h *Hub) SendToClient(c *Client, message *models.WSMessage) {
	data, err := json.Marshal(message)
	if err != nil {
		log.Printf("Error marshaling message: %v", err)
		return
	}
	c.Send(data)
}

func (h *Hub) Register(roomID string, c *Client) {
	h.register <- &Registration{RoomID: roomID, Client: c}
}

func (h *Hub) Unregister(roomID string, c *Client) {
	h.unregister <- &Registration{RoomID: roomID, Client: c}
}

// RoomConnectionCount reports how many sockets are subscribed to a room.
func (h *Hub) RoomConnectionCount(roomID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[roomID])
}

// GetMetrics returns a point-in-time metrics snapshot.
func (h *Hub) GetMetrics() MetricsSnapshot {
	return h.metrics.Snapshot()
}
