package services

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startFeed(t *testing.T) (*Hub, string) {
	t.Helper()
	hub := NewHub()
	go hub.Run()
	t.Cleanup(hub.Stop)

	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		client := NewClient(hub, conn, r.RemoteAddr)
		hub.Register(client)
		go client.WritePump()
		go client.ReadPump()
	}))
	t.Cleanup(srv.Close)

	return hub, "ws" + strings.TrimPrefix(srv.URL, "http")
}

func readMessage(t *testing.T, conn *websocket.Conn) WebSocketMessage {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)

	var msg WebSocketMessage
	require.NoError(t, json.Unmarshal(data, &msg))
	return msg
}

// dialRegistered connects and waits for a pong, which is only written once
// the hub has registered the client.
func dialRegistered(t *testing.T, url string) *websocket.Conn {
	t.Helper()
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	require.NoError(t, conn.WriteJSON(WebSocketMessage{Type: "ping"}))
	assert.Equal(t, "pong", readMessage(t, conn).Type)
	return conn
}

func TestHubBroadcastsEvents(t *testing.T) {
	hub, url := startFeed(t)
	a := dialRegistered(t, url)
	b := dialRegistered(t, url)

	hub.Publish(Event{Type: "task.created", Entity: "task", ID: 7})

	for _, conn := range []*websocket.Conn{a, b} {
		msg := readMessage(t, conn)
		assert.Equal(t, "task.created", msg.Type)
		assert.Equal(t, map[string]any{"entity": "task", "id": float64(7)}, msg.Data)
	}
}

func TestHubIgnoresClientChatter(t *testing.T) {
	hub, url := startFeed(t)
	conn := dialRegistered(t, url)

	require.NoError(t, conn.WriteJSON(WebSocketMessage{Type: "sync", Data: "ignored"}))
	hub.Publish(Event{Type: "user.deleted", Entity: "user", ID: 1})

	assert.Equal(t, "user.deleted", readMessage(t, conn).Type)
}

func TestPublishWithoutRunDoesNotBlock(t *testing.T) {
	hub := NewHub()
	done := make(chan struct{})
	go func() {
		for i := 0; i < publishBuffer*2; i++ {
			hub.Publish(Event{Type: "task.updated", Entity: "task", ID: int64(i)})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Publish blocked with no running hub")
	}
}
