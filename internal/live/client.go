package live

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
)

const (
	queueSize    = 256
	writeTimeout = 10 * time.Second
	keepAlive    = 30 * time.Second
	readLimit    = 64 << 10
)

// Client is one websocket connection to a Hub. Outgoing messages wait on a
// bounded queue drained by a single writer; the hub closes the queue when it
// drops the client.
type Client struct {
	ID    string
	hub   *Hub
	conn  *websocket.Conn
	queue chan *Message
}

func newClient(hub *Hub, conn *websocket.Conn, id string) *Client {
	return &Client{
		ID:    id,
		hub:   hub,
		conn:  conn,
		queue: make(chan *Message, queueSize),
	}
}

// Serve runs the connection until the peer disconnects, ctx ends or the hub
// drops the client, then unregisters it and closes the socket.
func (c *Client) Serve(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	c.conn.SetReadLimit(readLimit)

	written := make(chan error, 1)
	go func() {
		written <- c.drain(ctx)
		cancel()
	}()

	readErr := c.receive(ctx)
	c.hub.Unregister(c)
	cancel()
	writeErr := <-written

	c.conn.Close(websocket.StatusNormalClosure, "")

	if readErr != nil && !peerLeft(readErr) && ctx.Err() == nil {
		slog.Debug("websocket read failed", "client", c.ID, "error", readErr)
	}
	if writeErr != nil {
		slog.Debug("websocket write failed", "client", c.ID, "error", writeErr)
	}
}

// receive hands every decodable message to the hub. Frames that are not a
// Message are logged and skipped.
func (c *Client) receive(ctx context.Context) error {
	for {
		_, data, err := c.conn.Read(ctx)
		if err != nil {
			return err
		}

		var msg Message
		if err := json.Unmarshal(data, &msg); err != nil {
			slog.Warn("dropping malformed message", "client", c.ID, "error", err)
			continue
		}
		msg.ClientID = c.ID
		c.hub.handleMessage(c, &msg)
	}
}

// drain writes queued messages and keeps the connection alive with pings.
// It returns nil once the queue is closed or ctx ends.
func (c *Client) drain(ctx context.Context) error {
	ticker := time.NewTicker(keepAlive)
	defer ticker.Stop()

	for {
		select {
		case msg, ok := <-c.queue:
			if !ok {
				return nil
			}
			if err := c.write(ctx, func(ctx context.Context) error {
				return wsjson.Write(ctx, c.conn, msg)
			}); err != nil {
				return err
			}
		case <-ticker.C:
			if err := c.write(ctx, c.conn.Ping); err != nil {
				return err
			}
		case <-ctx.Done():
			return nil
		}
	}
}

func (c *Client) write(ctx context.Context, fn func(context.Context) error) error {
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()
	if err := fn(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// Send queues msg without blocking. A client whose queue is full misses the
// message.
func (c *Client) Send(msg *Message) {
	select {
	case c.queue <- msg:
	default:
		slog.Warn("client queue full, dropping message", "client", c.ID, "type", msg.Type)
	}
}

func peerLeft(err error) bool {
	switch websocket.CloseStatus(err) {
	case websocket.StatusNormalClosure, websocket.StatusGoingAway:
		return true
	}
	return false
}
