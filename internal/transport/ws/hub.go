package ws

import (
	"context"
	"encoding/json"

	"github.com/rs/zerolog"
)

// Envelope is the wire frame for every channel message, in both directions.
type Envelope struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

// Hub is the connection registry. All client registration and fan-out goes
// through its run loop, so no shared state needs locking.
type Hub struct {
	clients    map[*Client]struct{}
	register   chan *Client
	unregister chan *Client
	broadcast  chan []byte
	// done is closed when Run returns; register/unregister senders select
	// on it so they never block against a stopped registry.
	done chan struct{}
	log  zerolog.Logger
}

func NewHub(log zerolog.Logger) *Hub {
	return &Hub{
		clients:    make(map[*Client]struct{}),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan []byte, 64),
		done:       make(chan struct{}),
		log:        log,
	}
}

// Run owns the registry until ctx is cancelled. On shutdown every client's
// send channel is closed, which unwinds its write pump.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case <-ctx.Done():
			for c := range h.clients {
				close(c.send)
				delete(h.clients, c)
			}
			return
		case c := <-h.register:
			h.clients[c] = struct{}{}
			h.log.Debug().Str("conn_id", c.id).Int("clients", len(h.clients)).Msg("ws client connected")
		case c := <-h.unregister:
			if _, ok := h.clients[c]; ok {
				delete(h.clients, c)
				close(c.send)
				h.log.Debug().Str("conn_id", c.id).Int("clients", len(h.clients)).Msg("ws client disconnected")
			}
		case msg := <-h.broadcast:
			for c := range h.clients {
				select {
				case c.send <- msg:
				default:
					// Slow consumer: drop the connection rather than
					// block delivery to everyone else.
					delete(h.clients, c)
					close(c.send)
					h.log.Warn().Str("conn_id", c.id).Msg("ws client send buffer full, dropping")
				}
			}
		}
	}
}

// Publish queues an event for every connected client. Delivery is best
// effort; a marshal failure or a stopped hub only logs.
func (h *Hub) Publish(event string, data any) {
	payload, err := json.Marshal(data)
	if err != nil {
		h.log.Error().Err(err).Str("event", event).Msg("ws publish marshal failed")
		return
	}
	msg, err := json.Marshal(Envelope{Event: event, Data: payload})
	if err != nil {
		h.log.Error().Err(err).Str("event", event).Msg("ws publish marshal failed")
		return
	}
	select {
	case <-h.done:
		h.log.Debug().Str("event", event).Msg("ws hub stopped, event dropped")
	case h.broadcast <- msg:
	default:
		h.log.Warn().Str("event", event).Msg("ws broadcast queue full, event dropped")
	}
}
