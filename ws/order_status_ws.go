package ws

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"restaurant/entity"
	"restaurant/repository"
)

// defaultWriteWait bounds each socket write; a client that stops reading is dropped.
const defaultWriteWait = 5 * time.Second

// StatusHub fans order status changes out to websocket clients watching a token.
// All socket writes happen on the Run goroutine.
type StatusHub struct {
	clients    map[string]map[*websocket.Conn]bool // order token -> set of clients
	broadcast  chan entity.Order
	register   chan Subscription
	snapshot   chan Subscription
	unregister chan Subscription
	done       chan struct{}
	writeWait  time.Duration
	mu         sync.Mutex
}

type Subscription struct {
	Conn    *websocket.Conn
	Token   string
	Current entity.Order // read after registering so no change falls between snapshot and stream
}

type StatusMessage struct {
	Type  string       `json:"type"`
	Order entity.Order `json:"order"`
}

type OrderGetter interface {
	Get(ctx context.Context, token string) (*entity.Order, error)
}

func NewStatusHub() *StatusHub {
	return &StatusHub{
		clients:    make(map[string]map[*websocket.Conn]bool),
		broadcast:  make(chan entity.Order, 64),
		register:   make(chan Subscription),
		snapshot:   make(chan Subscription),
		unregister: make(chan Subscription),
		done:       make(chan struct{}),
		writeWait:  defaultWriteWait,
	}
}

// Publish never blocks the caller; when the buffer is full the update is dropped.
func (h *StatusHub) Publish(o entity.Order) {
	select {
	case h.broadcast <- o:
	default:
		log.Warn().Str("token", o.Token).Msg("status hub full, dropping update")
	}
}

func (h *StatusHub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case <-ctx.Done():
			h.mu.Lock()
			for _, conns := range h.clients {
				for conn := range conns {
					conn.Close()
				}
			}
			h.clients = make(map[string]map[*websocket.Conn]bool)
			h.mu.Unlock()
			return

		case sub := <-h.register:
			h.mu.Lock()
			if h.clients[sub.Token] == nil {
				h.clients[sub.Token] = make(map[*websocket.Conn]bool)
			}
			h.clients[sub.Token][sub.Conn] = true
			h.mu.Unlock()

		case sub := <-h.snapshot:
			h.mu.Lock()
			if h.clients[sub.Token][sub.Conn] {
				h.send(sub.Token, sub.Conn, sub.Current)
			}
			h.mu.Unlock()

		case sub := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[sub.Token][sub.Conn]; ok {
				delete(h.clients[sub.Token], sub.Conn)
				if len(h.clients[sub.Token]) == 0 {
					delete(h.clients, sub.Token)
				}
				sub.Conn.Close()
			}
			h.mu.Unlock()

		case o := <-h.broadcast:
			h.mu.Lock()
			for conn := range h.clients[o.Token] {
				h.send(o.Token, conn, o)
			}
			h.mu.Unlock()
		}
	}
}

// send must be called with mu held.
func (h *StatusHub) send(token string, conn *websocket.Conn, o entity.Order) {
	_ = conn.SetWriteDeadline(time.Now().Add(h.writeWait))
	if err := conn.WriteJSON(StatusMessage{Type: "order.status", Order: o}); err != nil {
		log.Debug().Err(err).Str("token", token).Msg("ws write failed")
		conn.Close()
		delete(h.clients[token], conn)
	}
}

// Watchers reports how many sockets follow token.
func (h *StatusHub) Watchers(token string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients[token])
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Handler serves GET /ws/orders/:token.
func (h *StatusHub) Handler(orders OrderGetter) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.Param("token")
		o, err := orders.Get(c.Request.Context(), token)
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "order not found"})
			return
		}
		if err != nil {
			log.Error().Err(err).Str("token", token).Msg("ws order lookup failed")
			c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "internal server error"})
			return
		}

		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			log.Debug().Err(err).Msg("ws upgrade failed")
			return
		}

		sub := Subscription{Conn: conn, Token: o.Token}
		select {
		case h.register <- sub:
		case <-h.done:
			conn.Close()
			return
		}
		go h.listen(sub)
		log.Debug().Str("token", sub.Token).Int("watchers", h.Watchers(sub.Token)).Msg("ws watcher joined")

		// broadcasts from here on reach this socket; re-read so the
		// snapshot is never older than the stream that follows it
		fresh, err := orders.Get(c.Request.Context(), sub.Token)
		if err != nil {
			log.Error().Err(err).Str("token", sub.Token).Msg("ws snapshot reload failed")
			fresh = o
		}
		sub.Current = *fresh
		select {
		case h.snapshot <- sub:
		case <-h.done:
		}
	}
}

// listen drains client frames until the socket closes; clients only watch.
func (h *StatusHub) listen(sub Subscription) {
	defer func() {
		select {
		case h.unregister <- sub:
		case <-h.done:
		}
	}()
	for {
		if _, _, err := sub.Conn.ReadMessage(); err != nil {
			return
		}
	}
}
