package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/inamate/sceneedit/internal/constraint"
	"github.com/inamate/sceneedit/internal/document"
	"github.com/inamate/sceneedit/internal/editor"
	"github.com/inamate/sceneedit/internal/geometry"
	"github.com/inamate/sceneedit/internal/history"
	"github.com/inamate/sceneedit/internal/live"
	"github.com/inamate/sceneedit/internal/render"
	"github.com/inamate/sceneedit/internal/typeid"
)

var (
	ErrNotFound   = errors.New("node not found")
	ErrNodeExists = errors.New("node already exists")
	ErrEmptyPatch = errors.New("patch is empty")
)

type Handler struct {
	workspace *live.Workspace
}

func NewHandler(workspace *live.Workspace) *Handler {
	return &Handler{workspace: workspace}
}

// do runs fn against the shared session.
func (h *Handler) do(fn func(s *editor.Session) error) error {
	return h.workspace.Do(fn)
}

type operationResponse struct {
	Operation editor.Operation `json:"operation"`
	History   history.State    `json:"history"`
}

type historyResponse struct {
	Applied bool          `json:"applied"`
	History history.State `json:"history"`
}

type zoomRequest struct {
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	Direction int     `json:"direction"`
}

type hitTestRequest struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	// Space is "canvas" (default) or "screen".
	Space string `json:"space"`
}

type hitTestResponse struct {
	ID        string                `json:"id"`
	Selection editor.SelectionState `json:"selection"`
	Bounds    geometry.Rect         `json:"bounds"`
}

type proposeRequest struct {
	Start geometry.Point    `json:"start"`
	Size  geometry.Size     `json:"size"`
	Zones []constraint.Spec `json:"zones"`
	Path  []geometry.Point  `json:"path"`
}

type proposeStep struct {
	Position geometry.Point     `json:"position"`
	Outcome  constraint.Outcome `json:"outcome"`
}

type proposeResponse struct {
	Interactive bool           `json:"interactive"`
	Steps       []proposeStep  `json:"steps"`
	Final       geometry.Point `json:"final"`
	Moved       bool           `json:"moved"`
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// --- Document ---

func (h *Handler) GetDocument(w http.ResponseWriter, r *http.Request) {
	var doc document.Model
	h.do(func(s *editor.Session) error {
		doc = s.Document().State()
		return nil
	})
	writeJSON(w, http.StatusOK, doc)
}

func (h *Handler) PutDocument(w http.ResponseWriter, r *http.Request) {
	var doc document.Model
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if doc.Nodes == nil {
		doc = document.NewModel()
	}

	err := h.do(func(s *editor.Session) error {
		return s.LoadDocument(doc)
	})
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, doc)
}

// --- Nodes ---

func (h *Handler) AddNode(w http.ResponseWriter, r *http.Request) {
	var node document.SceneNode
	if err := json.NewDecoder(r.Body).Decode(&node); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	if node.ID == "" {
		node.ID = typeid.NewNodeID()
	}
	if node.Type == "" {
		node.Type = document.NodeTypeRect
	}
	if node.Fill == "" {
		node.Fill = editor.DefaultFill
	}
	if err := document.NewModel(node).Validate(); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	var resp operationResponse
	err := h.do(func(s *editor.Session) error {
		if _, ok := s.Document().GetNodeByID(node.ID); ok {
			return ErrNodeExists
		}
		resp.Operation, _ = s.AddNode(node)
		resp.History = s.History()
		return nil
	})
	if err != nil {
		handleError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, resp)
}

func (h *Handler) MoveNode(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var patch document.Patch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if patch.IsEmpty() {
		handleError(w, ErrEmptyPatch)
		return
	}

	var resp operationResponse
	err := h.do(func(s *editor.Session) error {
		op, ok := s.MoveNode(id, patch)
		if !ok {
			return ErrNotFound
		}
		resp = operationResponse{Operation: op, History: s.History()}
		return nil
	})
	if err != nil {
		handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) RemoveNode(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var resp operationResponse
	err := h.do(func(s *editor.Session) error {
		op, ok := s.RemoveNode(id)
		if !ok {
			return ErrNotFound
		}
		resp = operationResponse{Operation: op, History: s.History()}
		return nil
	})
	if err != nil {
		handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// --- History ---

func (h *Handler) Undo(w http.ResponseWriter, r *http.Request) {
	h.stepHistory(w, (*editor.Session).Undo)
}

func (h *Handler) Redo(w http.ResponseWriter, r *http.Request) {
	h.stepHistory(w, (*editor.Session).Redo)
}

func (h *Handler) stepHistory(w http.ResponseWriter, step func(*editor.Session) bool) {
	var resp historyResponse
	h.do(func(s *editor.Session) error {
		resp.Applied = step(s)
		resp.History = s.History()
		return nil
	})
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) GetHistory(w http.ResponseWriter, r *http.Request) {
	var state history.State
	h.do(func(s *editor.Session) error {
		state = s.History()
		return nil
	})
	writeJSON(w, http.StatusOK, state)
}

// --- Selection ---

func (h *Handler) GetSelection(w http.ResponseWriter, r *http.Request) {
	var state editor.SelectionState
	h.do(func(s *editor.Session) error {
		state = s.Selection().State()
		return nil
	})
	writeJSON(w, http.StatusOK, state)
}

func (h *Handler) PutSelection(w http.ResponseWriter, r *http.Request) {
	var req editor.SelectionState
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	var state editor.SelectionState
	h.do(func(s *editor.Session) error {
		s.Selection().Select(req.SelectedIDs...)
		state = s.Selection().State()
		return nil
	})
	writeJSON(w, http.StatusOK, state)
}

func (h *Handler) HitTest(w http.ResponseWriter, r *http.Request) {
	var req hitTestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	p := geometry.Point{X: req.X, Y: req.Y}
	var resp hitTestResponse
	h.do(func(s *editor.Session) error {
		if req.Space == "screen" {
			resp.ID = s.SelectAtScreen(p)
		} else {
			resp.ID = s.SelectAt(p)
		}
		resp.Selection = s.Selection().State()
		resp.Bounds = s.SelectionBounds()
		return nil
	})
	writeJSON(w, http.StatusOK, resp)
}

// --- Viewport ---

func (h *Handler) GetViewport(w http.ResponseWriter, r *http.Request) {
	var state editor.ViewportState
	h.do(func(s *editor.Session) error {
		state = s.Viewport().State()
		return nil
	})
	writeJSON(w, http.StatusOK, state)
}

func (h *Handler) PutViewport(w http.ResponseWriter, r *http.Request) {
	var req editor.ViewportState
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if req.Zoom <= 0 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "zoom must be positive"})
		return
	}

	var state editor.ViewportState
	h.do(func(s *editor.Session) error {
		s.Viewport().SetZoom(req.Zoom)
		s.Viewport().SetPan(req.PanX, req.PanY)
		state = s.Viewport().State()
		return nil
	})
	writeJSON(w, http.StatusOK, state)
}

func (h *Handler) ZoomViewport(w http.ResponseWriter, r *http.Request) {
	var req zoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	var state editor.ViewportState
	h.do(func(s *editor.Session) error {
		s.Viewport().ZoomAt(geometry.Point{X: req.X, Y: req.Y}, req.Direction)
		state = s.Viewport().State()
		return nil
	})
	writeJSON(w, http.StatusOK, state)
}

// --- Constraints & rendering ---

// ProposeDrag evaluates a drag path against zones without touching the
// document.
func (h *Handler) ProposeDrag(w http.ResponseWriter, r *http.Request) {
	var req proposeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	zones, err := constraint.ParseSpecs(req.Zones)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	drag := constraint.NewDrag(req.Start, req.Size, zones...)
	resp := proposeResponse{
		Interactive: constraint.Interactive(req.Start, req.Size, zones...),
		Steps:       make([]proposeStep, 0, len(req.Path)),
	}
	for _, p := range req.Path {
		pos, outcome := drag.Propose(p)
		resp.Steps = append(resp.Steps, proposeStep{Position: pos, Outcome: outcome})
	}
	resp.Final = drag.Position()
	resp.Moved = drag.Moved()

	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) Render(w http.ResponseWriter, r *http.Request) {
	var commands []render.DrawCommand
	h.do(func(s *editor.Session) error {
		commands = render.Compile(render.SessionScene(s))
		return nil
	})
	writeJSON(w, http.StatusOK, commands)
}

func handleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not found"})
	case errors.Is(err, ErrNodeExists):
		writeJSON(w, http.StatusConflict, map[string]string{"error": err.Error()})
	case errors.Is(err, ErrEmptyPatch):
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
	default:
		slog.Error("handler error", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
	}
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
