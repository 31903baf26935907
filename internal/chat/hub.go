// Package chat fans chat events out to connected websocket clients. Every
// client joins the room of its own user id; delivering a message to a chat
// means broadcasting to the rooms of all its participants.
package chat

import (
	"context"
	"sync"
)

type broadcastMessage struct {
	userIDs []int64
	data    []byte
}

// Hub is the connection manager owned by the application root. It replaces
// any global socket state: it is injected where needed and its lifecycle is
// bound to the process via Run's context.
type Hub struct {
	mu    sync.Mutex
	rooms map[int64]map[*Client]bool

	register   chan *Client
	unregister chan *Client
	broadcast  chan broadcastMessage
	done       chan struct{}
}

func NewHub() *Hub {
	return &Hub{
		rooms:      make(map[int64]map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan broadcastMessage, 64),
		done:       make(chan struct{}),
	}
}

// Run processes registrations and broadcasts until ctx is cancelled.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case <-ctx.Done():
			h.closeAll()
			return

		case c := <-h.register:
			h.mu.Lock()
			if h.rooms[c.UserID] == nil {
				h.rooms[c.UserID] = make(map[*Client]bool)
			}
			h.rooms[c.UserID][c] = true
			h.mu.Unlock()

		case c := <-h.unregister:
			h.mu.Lock()
			if conns := h.rooms[c.UserID]; conns != nil && conns[c] {
				delete(conns, c)
				close(c.Send)
				if len(conns) == 0 {
					delete(h.rooms, c.UserID)
				}
			}
			h.mu.Unlock()

		case m := <-h.broadcast:
			h.mu.Lock()
			for _, userID := range m.userIDs {
				for c := range h.rooms[userID] {
					select {
					case c.Send <- m.data:
					default:
						// slow client, drop it instead of blocking the hub
						delete(h.rooms[userID], c)
						close(c.Send)
					}
				}
			}
			h.mu.Unlock()
		}
	}
}

func (h *Hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for userID, conns := range h.rooms {
		for c := range conns {
			close(c.Send)
		}
		delete(h.rooms, userID)
	}
}

// Register adds a connection to its user's room. A no-op once the hub has
// shut down, so a connection racing the shutdown does not hang its goroutine.
func (h *Hub) Register(c *Client) {
	select {
	case h.register <- c:
	case <-h.done:
	}
}

func (h *Hub) Unregister(c *Client) {
	select {
	case h.unregister <- c:
	case <-h.done:
	}
}

// Broadcast delivers data to every connection of every listed user.
func (h *Hub) Broadcast(userIDs []int64, data []byte) {
	select {
	case h.broadcast <- broadcastMessage{userIDs: userIDs, data: data}:
	case <-h.done:
	}
}
