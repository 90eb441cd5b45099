package api

import (
	"net/http"
	"net/url"

	"github.com/gorilla/mux"

	"github.com/inamate/sceneedit/internal/auth"
	"github.com/inamate/sceneedit/internal/live"
	mw "github.com/inamate/sceneedit/internal/middleware"
)

// NewRouter wires every endpoint of the editor server. The /api and /ws
// routes require a token when tokens is enabled.
func NewRouter(workspace *live.Workspace, origins []string, tokens *auth.Service) *mux.Router {
	h := NewHandler(workspace)

	r := mux.NewRouter()

	// Global middleware
	r.Use(mw.Recovery)
	r.Use(mw.Logger)
	r.Use(mw.CORS(origins))

	r.HandleFunc("/health", h.Health).Methods("GET")

	api := r.PathPrefix("/api").Subrouter()
	api.Use(tokens.Middleware)

	api.HandleFunc("/document", h.GetDocument).Methods("GET")
	api.HandleFunc("/document", h.PutDocument).Methods("PUT", "OPTIONS")

	api.HandleFunc("/nodes", h.AddNode).Methods("POST", "OPTIONS")
	api.HandleFunc("/nodes/{id}", h.MoveNode).Methods("PATCH", "OPTIONS")
	api.HandleFunc("/nodes/{id}", h.RemoveNode).Methods("DELETE")

	api.HandleFunc("/history", h.GetHistory).Methods("GET")
	api.HandleFunc("/history/undo", h.Undo).Methods("POST", "OPTIONS")
	api.HandleFunc("/history/redo", h.Redo).Methods("POST", "OPTIONS")

	api.HandleFunc("/selection", h.GetSelection).Methods("GET")
	api.HandleFunc("/selection", h.PutSelection).Methods("PUT", "OPTIONS")
	api.HandleFunc("/hit-test", h.HitTest).Methods("POST", "OPTIONS")

	api.HandleFunc("/viewport", h.GetViewport).Methods("GET")
	api.HandleFunc("/viewport", h.PutViewport).Methods("PUT", "OPTIONS")
	api.HandleFunc("/viewport/zoom", h.ZoomViewport).Methods("POST", "OPTIONS")

	api.HandleFunc("/constraints/propose", h.ProposeDrag).Methods("POST", "OPTIONS")
	api.HandleFunc("/render", h.Render).Methods("GET")

	// WebSocket endpoint
	patterns := originPatterns(origins)
	r.Handle("/ws", tokens.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		workspace.Hub().ServeWS(w, r, patterns)
	})))

	return r
}

// originPatterns turns allowed origins into the host patterns
// websocket.Accept matches against.
func originPatterns(origins []string) []string {
	patterns := make([]string, 0, len(origins))
	for _, o := range origins {
		if o == "*" {
			patterns = append(patterns, "*")
			continue
		}
		if u, err := url.Parse(o); err == nil && u.Host != "" {
			patterns = append(patterns, u.Host)
		}
	}
	return patterns
}
