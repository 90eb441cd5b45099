package live

import "encoding/json"

type Message struct {
	Type      string          `json:"type"`
	ClientID  string          `json:"clientId,omitempty"`
	SessionID string          `json:"sessionId,omitempty"`
	Payload   json.RawMessage `json:"payload,omitempty"`
}

const (
	TypeError = "error"

	// Connection
	TypeWelcome = "welcome"

	// State sync (server → client)
	TypeDocSync       = "doc.sync"
	TypeSelectionSync = "selection.sync"
	TypeViewportSync  = "viewport.sync"
	TypeHistorySync   = "history.sync"

	// Requests (client → server)
	TypeHistoryUndo = "history.undo"
	TypeHistoryRedo = "history.redo"
)

type WelcomePayload struct {
	ClientID  string `json:"clientId"`
	SessionID string `json:"sessionId"`
}

type ErrorPayload struct {
	Message string `json:"message"`
}

// NewMessage builds a message with payload marshaled as JSON.
func NewMessage(msgType string, payload any) (*Message, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return &Message{Type: msgType, Payload: data}, nil
}
