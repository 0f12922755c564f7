package handlers

import (
	"net/http"

	"github.com/CrowderSoup/taskboard/services"
	"github.com/gorilla/websocket"
)

// FeedHandler upgrades a request to a websocket that receives change events.
type FeedHandler struct {
	hub      *services.Hub
	deps     *base
	upgrader websocket.Upgrader
}

func NewFeedHandler(hub *services.Hub, b *base) *FeedHandler {
	return &FeedHandler{
		hub:  hub,
		deps: b,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true // CORS policy is applied by the outer handler
			},
		},
	}
}

func (h *FeedHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		entry(r, h.deps.logger).WithError(err).Warn("Error upgrading to WebSocket")
		return
	}

	client := services.NewClient(h.hub, conn, w.Header().Get(requestIDHeader))
	h.hub.Register(client)
	entry(r, h.deps.logger).Debug("WebSocket client registered")

	go client.WritePump()
	go client.ReadPump()
}
