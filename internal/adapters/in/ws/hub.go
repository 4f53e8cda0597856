// Package ws implements the Notifier port over a WebSocket hub. Merchant
// terminals connect once and receive every order event as a JSON frame.
package ws

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"takeout/internal/core/ports"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

// writeTimeout bounds each broadcast write so one stalled terminal cannot
// hold the hub lock and delay the remaining clients.
const writeTimeout = 5 * time.Second

// Hub holds the set of connected merchant terminals and fans events out to
// all of them. Delivery is best-effort: a failed write drops the client.
type Hub struct {
	mu       sync.Mutex
	clients  map[*websocket.Conn]struct{}
	upgrader websocket.Upgrader
	logger   *slog.Logger
}

// NewHub creates an empty hub.
func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		clients: make(map[*websocket.Conn]struct{}),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(*http.Request) bool { return true },
		},
		logger: logger.With("component", "ws_hub"),
	}
}

// HandleConnection upgrades the request to a WebSocket and keeps the
// connection registered until the client goes away. Incoming frames are
// read and discarded; the read loop only exists to detect the close.
func (h *Hub) HandleConnection(ctx echo.Context) error {
	conn, err := h.upgrader.Upgrade(ctx.Response(), ctx.Request(), nil)
	if err != nil {
		return err
	}

	h.register(conn)
	defer h.unregister(conn)

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return nil
		}
	}
}

// Broadcast sends the event to every connected client. Clients whose write
// fails are dropped from the set.
func (h *Hub) Broadcast(ctx context.Context, event ports.Event) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for conn := range h.clients {
		_ = conn.SetWriteDeadline(time.Now().Add(writeTimeout))
		if err := conn.WriteJSON(event); err != nil {
			h.logger.WarnContext(ctx, "Dropping unreachable client", "error", err)
			_ = conn.Close()
			delete(h.clients, conn)
		}
	}
}

// ClientCount reports how many terminals are currently connected.
func (h *Hub) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

func (h *Hub) register(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[conn] = struct{}{}
}

func (h *Hub) unregister(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[conn]; ok {
		_ = conn.Close()
		delete(h.clients, conn)
	}
}
