package editor

import (
	"fmt"

	"github.com/inamate/sceneedit/internal/config"
	"github.com/inamate/sceneedit/internal/constraint"
	"github.com/inamate/sceneedit/internal/document"
	"github.com/inamate/sceneedit/internal/geometry"
	"github.com/inamate/sceneedit/internal/history"
	"github.com/inamate/sceneedit/internal/typeid"
)

// Options configures a Session.
type Options struct {
	HistoryLimit         int
	PropagateDescendants bool
	Zoom                 ZoomLimits
	Draw                 DrawOptions
}

// DefaultOptions matches the stock editor behavior.
func DefaultOptions() Options {
	return Options{
		Zoom: DefaultZoomLimits,
		Draw: DrawOptions{MinSize: 5, NewID: typeid.NewNodeID},
	}
}

// OptionsFromConfig maps loaded configuration onto session options.
func OptionsFromConfig(cfg *config.Config) Options {
	opts := DefaultOptions()
	opts.HistoryLimit = cfg.HistoryLimit
	opts.PropagateDescendants = cfg.PropagateDescendants
	opts.Zoom = ZoomLimits{Min: cfg.MinZoom, Max: cfg.MaxZoom, Step: cfg.ZoomStep}
	opts.Draw.MinSize = cfg.MinDrawSize
	opts.Draw.ParentToTopmost = cfg.ParentToTopmost
	return opts
}

// Session is one editor instance. It owns the document, selection and
// viewport stores together with the history that undoes document edits.
// A Session is not safe for concurrent use.
type Session struct {
	ID string

	doc       *document.Store
	selection *Selection
	viewport  *Viewport
	history   *history.History
	commands  *Commands
	draw      *DrawTool
}

// NewSession creates a session editing a copy of initial.
func NewSession(initial document.Model, opts Options) *Session {
	if opts.Draw.NewID == nil {
		opts.Draw.NewID = typeid.NewNodeID
	}
	if opts.Zoom == (ZoomLimits{}) {
		opts.Zoom = DefaultZoomLimits
	}

	doc := document.NewStore(initial)
	h := history.New(opts.HistoryLimit)
	commands := NewCommands(doc, h)
	commands.PropagateDescendants = opts.PropagateDescendants

	return &Session{
		ID:        typeid.NewSessionID(),
		doc:       doc,
		selection: NewSelection(),
		viewport:  NewViewport(opts.Zoom),
		history:   h,
		commands:  commands,
		draw:      NewDrawTool(doc, opts.Draw),
	}
}

// --- Stores ---

func (s *Session) Document() *document.Store { return s.doc }
func (s *Session) Selection() *Selection     { return s.selection }
func (s *Session) Viewport() *Viewport       { return s.viewport }
func (s *Session) Commands() *Commands       { return s.commands }
func (s *Session) DrawTool() *DrawTool       { return s.draw }

// History returns the undo/redo stack summary.
func (s *Session) History() history.State {
	return s.history.State()
}

// LoadDocument validates doc and replaces the current document. History and
// selection are reset since they refer to the old document.
func (s *Session) LoadDocument(doc document.Model) error {
	if err := doc.Validate(); err != nil {
		return fmt.Errorf("load document: %w", err)
	}
	s.doc.SetDocument(doc)
	s.history.Clear()
	s.selection.Clear()
	return nil
}

// --- Commands ---

func (s *Session) AddNode(node document.SceneNode) (Operation, bool) {
	return s.commands.AddNode(node)
}

func (s *Session) MoveNode(id document.NodeID, patch document.Patch) (Operation, bool) {
	return s.commands.MoveNode(id, patch)
}

func (s *Session) RemoveNode(id document.NodeID) (Operation, bool) {
	return s.commands.RemoveNode(id)
}

func (s *Session) Undo() bool { return s.commands.Undo() }
func (s *Session) Redo() bool { return s.commands.Redo() }

// DeleteSelection removes every selected node, one undoable operation each,
// then clears the selection. It returns the number of nodes removed.
func (s *Session) DeleteSelection() int {
	removed := 0
	for _, id := range s.selection.IDs() {
		if _, ok := s.commands.RemoveNode(id); ok {
			removed++
		}
	}
	s.selection.Clear()
	return removed
}

// FinishDraw ends the draw tool's drag and adds the resulting node.
func (s *Session) FinishDraw() (Operation, bool) {
	node, ok := s.draw.End()
	if !ok {
		return Operation{}, false
	}
	return s.commands.AddNode(node)
}

// DragNode runs a constrained drag of id along path and commits the final
// accepted position as a single move. Nothing is recorded if the node never
// left its start position.
func (s *Session) DragNode(id document.NodeID, path []geometry.Point, zones ...constraint.Zone) (Operation, bool) {
	node, ok := s.doc.GetNodeByID(id)
	if !ok {
		return Operation{}, false
	}

	drag := constraint.NewDrag(geometry.Point{X: node.X, Y: node.Y}, geometry.Size{Width: node.Width, Height: node.Height}, zones...)
	for _, p := range path {
		drag.Propose(p)
	}
	if !drag.Moved() {
		return Operation{}, false
	}

	end := drag.Position()
	return s.commands.MoveNode(id, document.Position(end.X, end.Y))
}

// --- Queries ---

// SelectAt selects the topmost node under the canvas point p, or clears the
// selection when p hits empty canvas. It returns the hit id.
func (s *Session) SelectAt(p geometry.Point) document.NodeID {
	id := s.doc.State().HitTest(p)
	if id == "" {
		s.selection.Clear()
	} else {
		s.selection.SelectOnly(id)
	}
	return id
}

// SelectAtScreen is SelectAt for a pointer position in screen space.
func (s *Session) SelectAtScreen(p geometry.Point) document.NodeID {
	return s.SelectAt(s.viewport.State().ScreenToCanvas(p))
}

// SelectedNode returns the primary selected node.
func (s *Session) SelectedNode() (document.SceneNode, bool) {
	return s.selection.SelectedNode(s.doc.State())
}

// SelectionBounds returns the union of the selected nodes' bounds.
func (s *Session) SelectionBounds() geometry.Rect {
	return s.doc.State().SelectionBounds(s.selection.IDs())
}
