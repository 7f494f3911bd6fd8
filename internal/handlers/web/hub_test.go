package web

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/KirkDiggler/lootwheel/internal/models"
	"github.com/KirkDiggler/lootwheel/internal/services/raffle"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHubFansOutPerRaffle(t *testing.T) {
	hub := NewHub(nil)
	a1 := hub.Subscribe("a")
	a2 := hub.Subscribe("a")
	b := hub.Subscribe("b")

	hub.RenderState("a", models.NewRaffleState())

	for _, sub := range []*Subscriber{a1, a2} {
		select {
		case data := <-sub.Messages():
			var msg Message
			require.NoError(t, json.Unmarshal(data, &msg))
			assert.Equal(t, MessageTypeState, msg.Type)
			assert.Equal(t, "a", msg.RaffleID)
			assert.NotNil(t, msg.State)
		default:
			t.Fatal("expected a message")
		}
	}

	assert.Empty(t, b.Messages())
}

func TestHubDropsFramesForSlowSubscribers(t *testing.T) {
	hub := NewHub(&HubConfig{Buffer: 2})
	sub := hub.Subscribe("a")

	for i := 0; i < 5; i++ {
		hub.RenderFrame("a", &raffle.Frame{Phase: raffle.FramePhaseSpin, Progress: float64(i) / 4})
	}

	assert.Len(t, sub.Messages(), 2)

	var msg Message
	require.NoError(t, json.Unmarshal(<-sub.Messages(), &msg))
	assert.Equal(t, 0.0, msg.Frame.Progress)
}

func TestHubUnsubscribeClosesChannel(t *testing.T) {
	hub := NewHub(nil)
	sub := hub.Subscribe("a")
	assert.Equal(t, 1, hub.SubscriberCount("a"))

	hub.Unsubscribe(sub)
	hub.Unsubscribe(sub)
	assert.Equal(t, 0, hub.SubscriberCount("a"))

	_, ok := <-sub.Messages()
	assert.False(t, ok)

	// rendering with nobody listening is a no-op
	hub.RenderState("a", models.NewRaffleState())
}

func TestHubClose(t *testing.T) {
	hub := NewHub(nil)
	sub := hub.Subscribe("a")

	hub.Close()
	hub.Unsubscribe(sub)

	_, ok := <-sub.Messages()
	assert.False(t, ok)
}

func TestServeConnReturnsWhenHubCloses(t *testing.T) {
	hub := NewHub(nil)
	upgrader := websocket.Upgrader{}
	served := make(chan struct{})

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		hub.ServeConn(conn, "a", nil)
		close(served)
	}))
	defer server.Close()

	// the client never reads, so it never answers the close frame
	client, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(server.URL, "http"), nil)
	require.NoError(t, err)
	defer client.Close()

	require.Eventually(t, func() bool {
		return hub.SubscriberCount("a") == 1
	}, time.Second, 5*time.Millisecond)

	hub.Close()

	select {
	case <-served:
	case <-time.After(2 * time.Second):
		t.Fatal("ServeConn still waiting on the client after the hub closed")
	}
}
