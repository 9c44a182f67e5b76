package events

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

func dialHub(t *testing.T, hub *Hub) *websocket.Conn {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(hub.HandleWS))
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestHubBroadcastsToClient(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	conn := dialHub(t, hub)
	require.Eventually(t, func() bool { return hub.ClientCount() == 1 },
		time.Second, 10*time.Millisecond)

	hub.Publish("order", "o1", "advanced")

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var got Event
	require.NoError(t, conn.ReadJSON(&got))
	assert.Equal(t, "order", got.Entity)
	assert.Equal(t, "o1", got.ID)
	assert.Equal(t, "advanced", got.Action)
	assert.False(t, got.Timestamp.IsZero())
}

func TestHubDropsDisconnectedClient(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	conn := dialHub(t, hub)
	require.Eventually(t, func() bool { return hub.ClientCount() == 1 },
		time.Second, 10*time.Millisecond)

	conn.Close()
	require.Eventually(t, func() bool { return hub.ClientCount() == 0 },
		time.Second, 10*time.Millisecond)

	// Publishing with nobody listening must not block or panic
	hub.Publish("order", "o1", "updated")
}

func TestPublishNeverBlocks(t *testing.T) {
	hub := NewHub() // Run never started, queue will fill

	done := make(chan struct{})
	go func() {
		for i := 0; i < 200; i++ {
			hub.Publish("client", "c1", "updated")
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Publish blocked on a full queue")
	}
}
