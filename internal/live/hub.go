package live

import (
	"context"
	"log/slog"
	"sync"
)

// Handler reacts to clients of a Hub.
type Handler interface {
	// Join is called once a client is registered, to bring it up to date.
	Join(c *Client)
	HandleMessage(c *Client, msg *Message)
}

// Hub tracks the connected clients of one editing session.
type Hub struct {
	mu         sync.RWMutex
	clients    map[string]*Client // clientID -> client
	handler    Handler
	register   chan *Client
	unregister chan *Client
	done       chan struct{}
}

func NewHub(handler Handler) *Hub {
	return &Hub{
		clients:    make(map[string]*Client),
		handler:    handler,
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
	}
}

// Run processes registrations until ctx is cancelled, then disconnects every
// client.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case client := <-h.register:
			h.addClient(client)
		case client := <-h.unregister:
			h.removeClient(client)
		case <-ctx.Done():
			h.closeAll()
			return
		}
	}
}

// Register adds a client. It returns false if the hub has stopped.
func (h *Hub) Register(client *Client) bool {
	select {
	case h.register <- client:
		return true
	case <-h.done:
		return false
	}
}

func (h *Hub) Unregister(client *Client) {
	select {
	case h.unregister <- client:
	case <-h.done:
	}
}

// Len returns the number of connected clients.
func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

func (h *Hub) addClient(client *Client) {
	h.mu.Lock()
	h.clients[client.ID] = client
	h.mu.Unlock()

	h.handler.Join(client)
	slog.Info("client joined", "client", client.ID)
}

func (h *Hub) removeClient(client *Client) {
	h.mu.Lock()
	if _, ok := h.clients[client.ID]; !ok {
		h.mu.Unlock()
		return
	}
	delete(h.clients, client.ID)
	close(client.queue)
	h.mu.Unlock()

	slog.Info("client left", "client", client.ID)
}

func (h *Hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for id, c := range h.clients {
		close(c.queue)
		delete(h.clients, id)
	}
}

func (h *Hub) handleMessage(sender *Client, msg *Message) {
	h.handler.HandleMessage(sender, msg)
}

// Broadcast sends msg to every client except excludeClientID.
func (h *Hub) Broadcast(msg *Message, excludeClientID string) {
	// Held for the sends so removeClient cannot close a channel mid-send.
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, c := range h.clients {
		if c.ID != excludeClientID {
			c.Send(msg)
		}
	}
}

// SendTo sends msg to one client if it is still connected.
func (h *Hub) SendTo(client *Client, msg *Message) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if _, ok := h.clients[client.ID]; ok {
		client.Send(msg)
	}
}
