package web

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/KirkDiggler/lootwheel/internal/models"
	"github.com/KirkDiggler/lootwheel/internal/services/raffle"
	"github.com/google/logger"
	"github.com/gorilla/websocket"
)

const (
	// DefaultSubscriberBuffer is how many messages a slow subscriber may lag behind
	DefaultSubscriberBuffer = 64

	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
)

// MessageType tells subscribers what a message carries
type MessageType string

const (
	MessageTypeState MessageType = "state"
	MessageTypeFrame MessageType = "frame"
)

// Message is what the hub sends to subscribers
type Message struct {
	Type     MessageType         `json:"type"`
	RaffleID string              `json:"raffleId"`
	State    *models.RaffleState `json:"state,omitempty"`
	Frame    *raffle.Frame       `json:"frame,omitempty"`
}

// Subscriber receives the messages of one raffle
type Subscriber struct {
	raffleID string
	send     chan []byte
}

// Messages returns the channel of encoded messages. It is closed on unsubscribe.
func (s *Subscriber) Messages() <-chan []byte {
	return s.send
}

// Hub fans raffle updates out to websocket subscribers. It implements
// raffle.Renderer. Messages to a subscriber whose buffer is full are dropped.
type Hub struct {
	buffer int

	mu          sync.Mutex
	subscribers map[string]map[*Subscriber]struct{}
}

// HubConfig configures a Hub
type HubConfig struct {
	// Buffer per subscriber, DefaultSubscriberBuffer when zero
	Buffer int
}

// NewHub creates a new hub
func NewHub(cfg *HubConfig) *Hub {
	buffer := DefaultSubscriberBuffer
	if cfg != nil && cfg.Buffer > 0 {
		buffer = cfg.Buffer
	}

	return &Hub{
		buffer:      buffer,
		subscribers: make(map[string]map[*Subscriber]struct{}),
	}
}

// Subscribe registers a new subscriber for a raffle
func (h *Hub) Subscribe(raffleID string) *Subscriber {
	sub := &Subscriber{
		raffleID: raffleID,
		send:     make(chan []byte, h.buffer),
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	subs, ok := h.subscribers[raffleID]
	if !ok {
		subs = make(map[*Subscriber]struct{})
		h.subscribers[raffleID] = subs
	}
	subs[sub] = struct{}{}
	return sub
}

// Unsubscribe removes a subscriber and closes its channel
func (h *Hub) Unsubscribe(sub *Subscriber) {
	h.mu.Lock()
	defer h.mu.Unlock()

	subs, ok := h.subscribers[sub.raffleID]
	if !ok {
		return
	}
	if _, ok := subs[sub]; !ok {
		return
	}

	delete(subs, sub)
	close(sub.send)
	if len(subs) == 0 {
		delete(h.subscribers, sub.raffleID)
	}
}

// SubscriberCount returns the number of subscribers of a raffle
func (h *Hub) SubscriberCount(raffleID string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subscribers[raffleID])
}

// Close unsubscribes everyone
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for raffleID, subs := range h.subscribers {
		for sub := range subs {
			close(sub.send)
		}
		delete(h.subscribers, raffleID)
	}
}

// RenderState sends the state to the raffle's subscribers
func (h *Hub) RenderState(raffleID string, state *models.RaffleState) {
	h.broadcast(&Message{
		Type:     MessageTypeState,
		RaffleID: raffleID,
		State:    state,
	})
}

// RenderFrame sends an animation frame to the raffle's subscribers
func (h *Hub) RenderFrame(raffleID string, frame *raffle.Frame) {
	h.broadcast(&Message{
		Type:     MessageTypeFrame,
		RaffleID: raffleID,
		Frame:    frame,
	})
}

func (h *Hub) broadcast(msg *Message) {
	h.mu.Lock()
	defer h.mu.Unlock()

	subs := h.subscribers[msg.RaffleID]
	if len(subs) == 0 {
		return
	}

	data, err := json.Marshal(msg)
	if err != nil {
		logger.Errorf("Failed to encode %s message for raffle %s: %v", msg.Type, msg.RaffleID, err)
		return
	}

	for sub := range subs {
		select {
		case sub.send <- data:
		default:
			// subscriber is behind, drop
		}
	}
}

// ServeConn streams the raffle's messages to conn until either side closes.
// initial, when not nil, is written first.
func (h *Hub) ServeConn(conn *websocket.Conn, raffleID string, initial []byte) {
	sub := h.Subscribe(raffleID)

	done := make(chan struct{})
	go func() {
		defer close(done)
		h.readLoop(conn)
	}()

	h.writeLoop(conn, sub, initial, done)
	h.Unsubscribe(sub)

	// closing unblocks readLoop
	conn.Close()
	<-done
}

// readLoop discards client messages and returns when the connection fails
func (h *Hub) readLoop(conn *websocket.Conn) {
	conn.SetReadLimit(512)
	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.Warningf("Websocket read failed: %v", err)
			}
			return
		}
	}
}

func (h *Hub) writeLoop(conn *websocket.Conn, sub *Subscriber, initial []byte, done <-chan struct{}) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	write := func(data []byte) bool {
		conn.SetWriteDeadline(time.Now().Add(writeWait))
		return conn.WriteMessage(websocket.TextMessage, data) == nil
	}

	if initial != nil && !write(initial) {
		return
	}

	for {
		select {
		case data, ok := <-sub.Messages():
			if !ok {
				conn.SetWriteDeadline(time.Now().Add(writeWait))
				conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if !write(data) {
				return
			}
		case <-ticker.C:
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-done:
			return
		}
	}
}
