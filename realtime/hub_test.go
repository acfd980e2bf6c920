package realtime

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dialHub(t *testing.T, hub *Hub, vendorID uint) *websocket.Conn {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hub.Serve(vendorID, w, r)
	}))
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func waitForClients(t *testing.T, hub *Hub, vendorID uint, n int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		hub.mu.Lock()
		count := len(hub.clients[vendorID])
		hub.mu.Unlock()
		if count == n {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("vendor %d never reached %d registered clients", vendorID, n)
}

func TestBroadcastReachesVendorClients(t *testing.T) {
	hub := NewHub()
	conn := dialHub(t, hub, 1)
	waitForClients(t, hub, 1, 1)

	hub.Broadcast(1, map[string]string{"event": "order_placed", "order_number": "ORD-20240115104530-a1b2c3d4"})

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, msg, err := conn.ReadMessage()
	require.NoError(t, err)
	assert.Contains(t, string(msg), "order_placed")
	assert.Contains(t, string(msg), "ORD-20240115104530-a1b2c3d4")
}

func TestBroadcastIsVendorScoped(t *testing.T) {
	hub := NewHub()
	mine := dialHub(t, hub, 1)
	other := dialHub(t, hub, 2)
	waitForClients(t, hub, 1, 1)
	waitForClients(t, hub, 2, 1)

	hub.Broadcast(1, map[string]string{"event": "order_placed"})

	mine.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, _, err := mine.ReadMessage()
	assert.NoError(t, err)

	// The other vendor's connection stays silent
	other.SetReadDeadline(time.Now().Add(200 * time.Millisecond))
	_, _, err = other.ReadMessage()
	assert.Error(t, err)
}

func TestBroadcastWithNoClientsIsSafe(t *testing.T) {
	hub := NewHub()
	hub.Broadcast(42, map[string]string{"event": "order_placed"})
}

func TestClientDisconnectDeregisters(t *testing.T) {
	hub := NewHub()
	conn := dialHub(t, hub, 1)
	waitForClients(t, hub, 1, 1)

	conn.Close()
	waitForClients(t, hub, 1, 0)
}
