package realtime

import (
	"encoding/json"
	"sync"
)

// Client represents a single websocket client connection.
// We keep it minimal here; the actual network conn is managed in the ws handler.
type Client interface {
	Send(message []byte) bool
	Close()
}

// Hub maintains at most one live connection per user and fans events out to
// them. Delivery is best-effort: a failed or missing connection is ignored,
// clients reconcile by refetching.
type Hub struct {
	mu    sync.RWMutex
	conns map[string]Client
}

// NewHub creates an empty hub. One hub is constructed at server start and
// handed to the handlers that need it.
func NewHub() *Hub {
	return &Hub{conns: make(map[string]Client)}
}

// Register binds a client to a user ID, replacing any prior connection for
// that user. The replaced connection is closed.
func (h *Hub) Register(userID string, client Client) {
	h.mu.Lock()
	prev := h.conns[userID]
	h.conns[userID] = client
	h.mu.Unlock()
	if prev != nil && prev != client {
		prev.Close()
	}
}

// Unregister removes a client wherever it is registered. Lookup runs over
// values, not keys: the disconnect event carries the connection, not the user.
func (h *Hub) Unregister(client Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for userID, c := range h.conns {
		if c == client {
			delete(h.conns, userID)
			return
		}
	}
}

// Send pushes an event to one user if they have a live connection.
func (h *Hub) Send(userID string, ev Envelope) {
	payload, err := json.Marshal(ev)
	if err != nil {
		return
	}
	h.mu.RLock()
	client := h.conns[userID]
	h.mu.RUnlock()
	if client != nil {
		client.Send(payload)
	}
}

// Broadcast pushes an event to every registered connection, optionally
// skipping one user (typically the actor who caused the event).
func (h *Hub) Broadcast(ev Envelope, excludeUserID string) {
	payload, err := json.Marshal(ev)
	if err != nil {
		return
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	for userID, client := range h.conns {
		if userID == excludeUserID {
			continue
		}
		if ok := client.Send(payload); !ok {
			// client write failed; the ws handler cleans it up on its side
		}
	}
}

// Len returns the number of registered connections.
func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.conns)
}
