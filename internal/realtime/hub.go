// Package realtime fans interview events out to WebSocket subscribers.
package realtime

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"go-interview-backend/pkg/logger"
	"go-interview-backend/pkg/metrics"

	"nhooyr.io/websocket"
)

// Conn is the write side of a subscriber connection.
type Conn interface {
	WriteText(ctx context.Context, data []byte) error
	Close(reason string) error
}

// Client is one registered subscriber of an interview.
type Client struct {
	ID          string
	InterviewID string
	conn        Conn
}

func NewClient(id, interviewID string, conn Conn) *Client {
	return &Client{ID: id, InterviewID: interviewID, conn: conn}
}

// wsConn adapts a nhooyr connection. Write is safe for concurrent use.
type wsConn struct {
	c *websocket.Conn
}

// NewWebSocketConn wraps an accepted WebSocket connection.
func NewWebSocketConn(c *websocket.Conn) Conn {
	return &wsConn{c: c}
}

func (w *wsConn) WriteText(ctx context.Context, data []byte) error {
	return w.c.Write(ctx, websocket.MessageText, data)
}

func (w *wsConn) Close(reason string) error {
	return w.c.Close(websocket.StatusGoingAway, reason)
}

// Hub tracks subscribers per interview id. Buckets never stay empty.
type Hub struct {
	mu           sync.RWMutex
	buckets      map[string]map[*Client]struct{}
	writeTimeout time.Duration
	onEmpty      func(interviewID string)
	log          *slog.Logger
}

func NewHub(writeTimeout time.Duration) *Hub {
	if writeTimeout <= 0 {
		writeTimeout = 5 * time.Second
	}
	return &Hub{
		buckets:      make(map[string]map[*Client]struct{}),
		writeTimeout: writeTimeout,
		log:          logger.With("hub"),
	}
}

// OnEmpty sets a callback run after the last subscriber of an interview
// leaves. It is called without the hub lock held.
func (h *Hub) OnEmpty(fn func(interviewID string)) {
	h.mu.Lock()
	h.onEmpty = fn
	h.mu.Unlock()
}

// Register adds c to its interview bucket, creating the bucket if needed.
func (h *Hub) Register(c *Client) {
	h.mu.Lock()
	bucket, ok := h.buckets[c.InterviewID]
	if !ok {
		bucket = make(map[*Client]struct{})
		h.buckets[c.InterviewID] = bucket
	}
	bucket[c] = struct{}{}
	size := len(bucket)
	h.mu.Unlock()

	metrics.WSConnectionsActive.Inc()
	h.log.Debug("Subscriber registered",
		slog.String("interview_id", c.InterviewID),
		slog.String("client_id", c.ID),
		slog.Int("subscribers", size))
}

// Unregister removes c. Removing an unknown client is a no-op.
func (h *Hub) Unregister(c *Client) {
	if h.remove(c) {
		h.log.Debug("Subscriber removed",
			slog.String("interview_id", c.InterviewID),
			slog.String("client_id", c.ID))
	}
}

// remove deletes c from its bucket and reports whether it was present.
func (h *Hub) remove(c *Client) bool {
	h.mu.Lock()
	bucket, ok := h.buckets[c.InterviewID]
	if !ok {
		h.mu.Unlock()
		return false
	}
	if _, ok := bucket[c]; !ok {
		h.mu.Unlock()
		return false
	}
	delete(bucket, c)
	emptied := len(bucket) == 0
	if emptied {
		delete(h.buckets, c.InterviewID)
	}
	onEmpty := h.onEmpty
	h.mu.Unlock()

	metrics.WSConnectionsActive.Dec()
	if emptied && onEmpty != nil {
		onEmpty(c.InterviewID)
	}
	return true
}

// Broadcast sends data to every subscriber of interviewID and returns the
// number of successful deliveries. Failed subscribers are closed and
// removed; delivery to the others continues. A cancelled ctx stops the
// broadcast without blaming any subscriber.
func (h *Hub) Broadcast(ctx context.Context, interviewID string, data []byte) int {
	if ctx.Err() != nil {
		return 0
	}

	h.mu.RLock()
	snapshot := make([]*Client, 0, len(h.buckets[interviewID]))
	for c := range h.buckets[interviewID] {
		snapshot = append(snapshot, c)
	}
	h.mu.RUnlock()

	var failed []*Client
	delivered := 0
	for _, c := range snapshot {
		if err := h.Send(ctx, c, data); err != nil {
			if ctx.Err() != nil {
				break
			}
			h.log.Warn("Dropping subscriber after failed send",
				slog.String("interview_id", interviewID),
				slog.String("client_id", c.ID),
				slog.Any("error", err))
			failed = append(failed, c)
			continue
		}
		delivered++
	}

	for _, c := range failed {
		metrics.BroadcastFailures.Inc()
		_ = c.conn.Close("send failed")
		h.remove(c)
	}
	return delivered
}

// Send writes data to a single client with the hub's write timeout.
func (h *Hub) Send(ctx context.Context, c *Client, data []byte) error {
	writeCtx, cancel := context.WithTimeout(ctx, h.writeTimeout)
	defer cancel()
	return c.conn.WriteText(writeCtx, data)
}

// Subscribers returns the bucket size for interviewID.
func (h *Hub) Subscribers(interviewID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.buckets[interviewID])
}

// Buckets returns the number of interviews with at least one subscriber.
func (h *Hub) Buckets() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.buckets)
}

// CloseAll closes every connection and empties the hub.
func (h *Hub) CloseAll(reason string) {
	h.mu.Lock()
	var clients []*Client
	for id, bucket := range h.buckets {
		for c := range bucket {
			clients = append(clients, c)
		}
		delete(h.buckets, id)
	}
	h.mu.Unlock()

	for _, c := range clients {
		metrics.WSConnectionsActive.Dec()
		_ = c.conn.Close(reason)
	}
	if len(clients) > 0 {
		h.log.Info("Closed all subscribers", slog.Int("count", len(clients)))
	}
}
