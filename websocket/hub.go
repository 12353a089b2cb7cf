package websocket

import (
	"log"
	"sync"
	"time"
)

// Event is pushed to connected staff dashboards when something they watch
// changes (currently: a booking landing on the calendar).
type Event struct {
	Type      string      `json:"type"`
	Data      interface{} `json:"data,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

// Hub manages the dashboard feed connections.
type Hub struct {
	// Registered clients
	Clients map[*Client]bool

	// Broadcast channel for events to all clients
	Broadcast chan *Event

	// Register requests from clients
	Register chan *Client

	// Unregister requests from clients
	Unregister chan *Client

	mu sync.RWMutex
}

// NewHub creates a new dashboard feed hub
func NewHub() *Hub {
	return &Hub{
		Clients:    make(map[*Client]bool),
		Broadcast:  make(chan *Event, 64),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
	}
}

// Run starts the hub's main loop
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.Register:
			h.mu.Lock()
			h.Clients[client] = true
			h.mu.Unlock()
			log.Printf("🔌 Dashboard client connected: user=%d", client.UserID)

		case client := <-h.Unregister:
			h.mu.Lock()
			if _, ok := h.Clients[client]; ok {
				delete(h.Clients, client)
				close(client.Send)
			}
			h.mu.Unlock()
			log.Printf("🔌 Dashboard client disconnected: user=%d", client.UserID)

		case event := <-h.Broadcast:
			h.broadcastEvent(event)
		}
	}
}

// broadcastEvent sends an event to all connected clients. A client with a
// full send buffer is dropped rather than blocking the hub.
func (h *Hub) broadcastEvent(event *Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for client := range h.Clients {
		select {
		case client.Send <- event:
		default:
			log.Printf("⚠️ Dashboard client %d send buffer full, dropping event", client.UserID)
		}
	}
}

// NotifyBookingCreated queues a booking-created event for all connected
// dashboards. Best effort: if the broadcast buffer is full the event is
// dropped and logged, never blocking the booking flow.
func (h *Hub) NotifyBookingCreated(data interface{}) {
	event := &Event{
		Type:      "booking_created",
		Data:      data,
		Timestamp: time.Now().UTC(),
	}

	select {
	case h.Broadcast <- event:
	default:
		log.Printf("⚠️ Dashboard broadcast channel full, dropping booking event")
	}
}
