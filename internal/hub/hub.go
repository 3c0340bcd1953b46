package hub

import (
	"encoding/json"
	"sync"
)

// Event represents a real-time event to be sent to clients watching a
// match's roster.
type Event struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

// EventRosterUpdated is broadcast after any mutation of a match's signup
// list, so polling clients can refresh right away.
const EventRosterUpdated = "roster_updated"

// Client represents a single client connection (a browser watching a
// match page). It's essentially a channel that the SSE handler will
// listen to.
type Client chan []byte

// Hub manages all watched matches and their clients.
type Hub struct {
	matches map[uint]map[Client]bool
	mu      sync.RWMutex
}

// GlobalHub is the singleton instance of our Hub.
var GlobalHub = NewHub()

// NewHub creates a new Hub.
func NewHub() *Hub {
	return &Hub{
		matches: make(map[uint]map[Client]bool),
	}
}

// Subscribe adds a new client watching a specific match.
func (h *Hub) Subscribe(matchID uint, client Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.matches[matchID]; !ok {
		h.matches[matchID] = make(map[Client]bool)
	}
	h.matches[matchID][client] = true
}

// Unsubscribe removes a client from a match.
func (h *Hub) Unsubscribe(matchID uint, client Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if clients, ok := h.matches[matchID]; ok {
		if _, ok := clients[client]; ok {
			delete(clients, client)
			close(client) // Close the channel to signal the SSE handler to stop.
			if len(clients) == 0 {
				delete(h.matches, matchID)
			}
		}
	}
}

// Broadcast sends an event to all clients watching a specific match.
func (h *Hub) Broadcast(matchID uint, event Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if clients, ok := h.matches[matchID]; ok {
		messageBytes, err := json.Marshal(event)
		if err != nil {
			return
		}

		for client := range clients {
			// Use a non-blocking send to prevent a slow client from blocking the hub.
			select {
			case client <- messageBytes:
			default:
				// Client channel is full, maybe they are disconnected or slow.
				// The unsubscribe logic will handle cleaning this up eventually.
			}
		}
	}
}
