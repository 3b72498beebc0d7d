package realtime

import (
	"context"
	"sync"
	"time"

	"nhooyr.io/websocket"
	"nhooyr.io/websocket/wsjson"
)

// Event is the typed frame pushed to connected clients. Consumers switch
// on Type ("message:new", "conversation:updated").
type Event struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}

const (
	EventMessageNew          = "message:new"
	EventConversationUpdated = "conversation:updated"
)

// Client is one WebSocket connection of one account. An account may hold
// several clients (multiple tabs); each gets its own send queue.
type Client struct {
	UserID uint
	conn   *websocket.Conn
	send   chan Event

	ctx    context.Context
	cancel context.CancelFunc
}

type Hub struct {
	mu      sync.RWMutex
	clients map[uint]map[*Client]struct{}
}

func NewHub() *Hub {
	return &Hub{
		clients: map[uint]map[*Client]struct{}{},
	}
}

func (h *Hub) Register(userID uint, conn *websocket.Conn) *Client {
	ctx, cancel := context.WithCancel(context.Background())

	c := &Client{
		UserID: userID,
		conn:   conn,
		send:   make(chan Event, 64),
		ctx:    ctx,
		cancel: cancel,
	}

	h.mu.Lock()
	if h.clients[userID] == nil {
		h.clients[userID] = map[*Client]struct{}{}
	}
	h.clients[userID][c] = struct{}{}
	h.mu.Unlock()

	go c.writeLoop()
	go c.keepAliveLoop()

	return c
}

func (h *Hub) Unregister(c *Client) {
	c.cancel()

	h.mu.Lock()
	defer h.mu.Unlock()

	if set, ok := h.clients[c.UserID]; ok {
		delete(set, c)
		if len(set) == 0 {
			delete(h.clients, c.UserID)
		}
	}

	_ = c.conn.Close(websocket.StatusNormalClosure, "bye")
}

// Publish queues ev for every live client of the given accounts. A full
// queue drops the event for that client; there is no replay, consumers
// refetch after a gap.
func (h *Hub) Publish(userIDs []uint, ev Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, uid := range userIDs {
		for c := range h.clients[uid] {
			select {
			case c.send <- ev:
			default:
			}
		}
	}
}

// writeLoop drains the send queue. The queue is never closed — Publish
// may race a disconnect, and a send on a closed channel would panic;
// cancellation alone ends the loop.
func (c *Client) writeLoop() {
	for {
		select {
		case <-c.ctx.Done():
			return
		case ev := <-c.send:
			writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			_ = wsjson.Write(writeCtx, c.conn, ev)
			cancel()
		}
	}
}

func (c *Client) keepAliveLoop() {
	ticker := time.NewTicker(25 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-c.ctx.Done():
			return
		case <-ticker.C:
			pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			_ = c.conn.Ping(pingCtx)
			cancel()
		}
	}
}
