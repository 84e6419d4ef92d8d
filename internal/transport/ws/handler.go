package ws

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/maverick1978/3dlabmod1/internal/application/notification"
	"github.com/maverick1978/3dlabmod1/internal/domain"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// The channel is intentionally open to any origin: the frontend connects
	// from a different port in development and the endpoint carries no auth.
	CheckOrigin: func(*http.Request) bool { return true },
}

// Handler upgrades HTTP requests to websocket connections and routes
// inbound channel events to the notification service.
type Handler struct {
	hub           *Hub
	notifications notification.Service
}

func NewHandler(hub *Hub, notifications notification.Service) *Handler {
	return &Handler{hub: hub, notifications: notifications}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.hub.log.Warn().Err(err).Msg("ws upgrade failed")
		return
	}
	c := &Client{
		id:   uuid.NewString(),
		hub:  h.hub,
		conn: conn,
		send: make(chan []byte, sendBufferSize),
	}
	select {
	case h.hub.register <- c:
	case <-h.hub.done:
		conn.Close()
		return
	}

	go c.writePump()
	go c.readPump(h.handleEvent(c))
}

// handleEvent dispatches one inbound envelope. Only notification creation is
// accepted from the channel; anything else is ignored.
func (h *Handler) handleEvent(c *Client) func(Envelope) {
	return func(env Envelope) {
		switch env.Event {
		case notification.EventCreated:
			var req domain.CreateNotificationRequest
			if err := json.Unmarshal(env.Data, &req); err != nil {
				h.hub.log.Warn().Str("conn_id", c.id).Err(err).Msg("ws event payload malformed")
				return
			}
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if _, err := h.notifications.Create(ctx, req); err != nil {
				h.hub.log.Warn().Str("conn_id", c.id).Err(err).Msg("ws notification create failed")
			}
		default:
			h.hub.log.Debug().Str("conn_id", c.id).Str("event", env.Event).Msg("ws event ignored")
		}
	}
}
