package ws_test

import (
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"takeout/internal/adapters/in/ws"
	"takeout/internal/core/ports"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dialHub(t *testing.T, hub *ws.Hub) *websocket.Conn {
	t.Helper()

	e := echo.New()
	e.GET("/ws", hub.HandleConnection)
	server := httptest.NewServer(e)
	t.Cleanup(server.Close)

	url := "ws" + strings.TrimPrefix(server.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return conn
}

func waitForClients(t *testing.T, hub *ws.Hub, want int) {
	t.Helper()
	require.Eventually(t, func() bool {
		return hub.ClientCount() == want
	}, time.Second, 5*time.Millisecond)
}

func TestHub_BroadcastReachesConnectedClient(t *testing.T) {
	hub := ws.NewHub(slog.Default())
	conn := dialHub(t, hub)
	waitForClients(t, hub, 1)

	hub.Broadcast(t.Context(), ports.Event{
		Type:    ports.EventNewOrder,
		OrderID: 7,
		Content: "n-1001",
	})

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(time.Second)))
	var event ports.Event
	require.NoError(t, conn.ReadJSON(&event))
	assert.Equal(t, ports.EventNewOrder, event.Type)
	assert.Equal(t, int64(7), event.OrderID)
	assert.Equal(t, "n-1001", event.Content)
}

func TestHub_ClosedClientIsDropped(t *testing.T) {
	hub := ws.NewHub(slog.Default())
	conn := dialHub(t, hub)
	waitForClients(t, hub, 1)

	require.NoError(t, conn.Close())
	waitForClients(t, hub, 0)

	// Broadcasting into an empty hub is a no-op.
	hub.Broadcast(t.Context(), ports.Event{Type: ports.EventReminder, OrderID: 7})
}
