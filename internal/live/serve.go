package live

import (
	"log/slog"
	"net/http"

	"github.com/coder/websocket"
	"github.com/google/uuid"
)

// ServeWS upgrades the request to a websocket and runs the client until it
// disconnects. originPatterns are host patterns as accepted by websocket.Accept.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request, originPatterns []string) {
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: originPatterns,
	})
	if err != nil {
		slog.Error("websocket accept", "error", err)
		return
	}

	client := newClient(h, conn, uuid.New().String())
	if !h.Register(client) {
		conn.Close(websocket.StatusGoingAway, "server shutting down")
		return
	}

	client.Serve(r.Context())
}
