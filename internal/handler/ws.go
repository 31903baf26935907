package handler

import (
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/schedulo-dev/staff-scheduler/backend/internal/chat"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// the session token already gates access; the dashboard may be
		// served from a different origin than the API
		return true
	},
}

// ServeChatSocket upgrades the connection and registers the client with the
// hub. Messages are sent over the REST endpoint; the socket is
// delivery-only.
func (h *Handler) ServeChatSocket(w http.ResponseWriter, r *http.Request) {
	userID, err := h.currentUserID(r)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade already wrote the error response
		return
	}

	client := chat.NewClient(conn, userID)
	h.hub.Register(client)

	go client.WritePump()
	go client.ReadPump(h.hub)
}
