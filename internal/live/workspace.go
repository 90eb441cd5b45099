package live

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/inamate/sceneedit/internal/editor"
	"github.com/inamate/sceneedit/internal/history"
	"github.com/inamate/sceneedit/internal/typeid"
)

// Workspace shares one editor session between HTTP handlers and websocket
// clients. Every access is serialized, and state changes made during an
// access are broadcast to all clients once it completes.
type Workspace struct {
	mu      sync.Mutex
	session *editor.Session
	hub     *Hub

	docDirty       bool
	selectionDirty bool
	viewportDirty  bool
	lastHistory    history.State
}

func NewWorkspace(session *editor.Session) *Workspace {
	w := &Workspace{
		session:     session,
		lastHistory: session.History(),
	}
	w.hub = NewHub(w)

	// Listeners only run inside Do, under w.mu.
	session.Document().Subscribe(func() { w.docDirty = true })
	session.Selection().Subscribe(func() { w.selectionDirty = true })
	session.Viewport().Subscribe(func() { w.viewportDirty = true })

	return w
}

func (w *Workspace) Hub() *Hub {
	return w.hub
}

// Do runs fn with exclusive access to the session and then broadcasts
// whatever fn changed.
func (w *Workspace) Do(fn func(s *editor.Session) error) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	err := fn(w.session)
	w.flush()
	return err
}

func (w *Workspace) flush() {
	var msgs []*Message
	if w.docDirty {
		msgs = append(msgs, w.message(TypeDocSync, w.session.Document().State()))
	}
	if w.selectionDirty {
		msgs = append(msgs, w.message(TypeSelectionSync, w.session.Selection().State()))
	}
	if w.viewportDirty {
		msgs = append(msgs, w.message(TypeViewportSync, w.session.Viewport().State()))
	}
	if h := w.session.History(); h != w.lastHistory {
		w.lastHistory = h
		msgs = append(msgs, w.message(TypeHistorySync, h))
	}
	w.docDirty, w.selectionDirty, w.viewportDirty = false, false, false

	for _, m := range msgs {
		if m != nil {
			w.hub.Broadcast(m, "")
		}
	}
}

func (w *Workspace) message(msgType string, payload any) *Message {
	msg, err := NewMessage(msgType, payload)
	if err != nil {
		slog.Error("marshal sync message", "type", msgType, "error", err)
		return nil
	}
	msg.SessionID = w.session.ID
	return msg
}

// Join sends a new client the welcome and a full state sync. The client is
// already registered, so the sends stay under w.mu to keep them ordered
// before any later flush.
func (w *Workspace) Join(c *Client) {
	w.mu.Lock()
	defer w.mu.Unlock()

	msgs := []*Message{
		w.message(TypeWelcome, WelcomePayload{ClientID: c.ID, SessionID: w.session.ID}),
		w.message(TypeDocSync, w.session.Document().State()),
		w.message(TypeSelectionSync, w.session.Selection().State()),
		w.message(TypeViewportSync, w.session.Viewport().State()),
		w.message(TypeHistorySync, w.session.History()),
	}
	for _, m := range msgs {
		if m != nil {
			w.hub.SendTo(c, m)
		}
	}
}

// checkSession rejects messages addressed to another session. Messages
// without a session id are accepted.
func (w *Workspace) checkSession(msg *Message) error {
	if msg.SessionID == "" {
		return nil
	}
	if err := typeid.Validate(msg.SessionID, typeid.PrefixSession); err != nil {
		return err
	}
	if msg.SessionID != w.session.ID {
		return fmt.Errorf("stale session %s", msg.SessionID)
	}
	return nil
}

func (w *Workspace) HandleMessage(c *Client, msg *Message) {
	err := w.checkSession(msg)
	switch {
	case err != nil:
	case msg.Type == TypeHistoryUndo:
		err = w.Do(func(s *editor.Session) error {
			if !s.Undo() {
				return fmt.Errorf("nothing to undo")
			}
			return nil
		})
	case msg.Type == TypeHistoryRedo:
		err = w.Do(func(s *editor.Session) error {
			if !s.Redo() {
				return fmt.Errorf("nothing to redo")
			}
			return nil
		})
	default:
		slog.Warn("unknown message type", "type", msg.Type, "client", c.ID)
		err = fmt.Errorf("unknown message type: %s", msg.Type)
	}

	if err != nil {
		if reply := w.message(TypeError, ErrorPayload{Message: err.Error()}); reply != nil {
			w.hub.SendTo(c, reply)
		}
	}
}
