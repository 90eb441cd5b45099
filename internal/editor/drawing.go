package editor

import (
	"fmt"
	"math"

	"github.com/inamate/sceneedit/internal/document"
	"github.com/inamate/sceneedit/internal/geometry"
)

const (
	DefaultFill   = "#0f172a"
	DefaultStroke = "#38bdf8"
)

// IDFunc generates ids for new nodes.
type IDFunc func() document.NodeID

// DrawOptions configures rectangle drawing.
type DrawOptions struct {
	// MinSize is the smallest drag, per axis, that still creates a node.
	MinSize float64
	// ParentToTopmost parents each new node to the current topmost node.
	ParentToTopmost bool
	NewID           IDFunc
}

// DrawTool turns a pointer drag on empty canvas into a new rectangle. All
// points are canvas coordinates.
type DrawTool struct {
	doc  *document.Store
	opts DrawOptions

	active bool
	origin geometry.Point
	w, h   float64
}

func NewDrawTool(doc *document.Store, opts DrawOptions) *DrawTool {
	return &DrawTool{doc: doc, opts: opts}
}

// Begin starts a drag at p.
func (t *DrawTool) Begin(p geometry.Point) {
	t.active = true
	t.origin = p
	t.w, t.h = 0, 0
}

// Update stretches the drag to p. It is ignored when no drag is active.
func (t *DrawTool) Update(p geometry.Point) {
	if !t.active {
		return
	}
	t.w = p.X - t.origin.X
	t.h = p.Y - t.origin.Y
}

// Active reports whether a drag is in progress.
func (t *DrawTool) Active() bool {
	return t.active
}

// Preview returns the normalized guide rect of the drag in progress.
func (t *DrawTool) Preview() (geometry.Rect, bool) {
	if !t.active {
		return geometry.Rect{}, false
	}
	return geometry.Rect{X: t.origin.X, Y: t.origin.Y, Width: t.w, Height: t.h}.Normalize(), true
}

// Cancel drops the drag without creating anything.
func (t *DrawTool) Cancel() {
	t.active = false
}

// End finishes the drag and returns the node to add. It reports false when
// no drag was active or the drag was too small on either axis.
func (t *DrawTool) End() (document.SceneNode, bool) {
	rect, ok := t.Preview()
	t.active = false
	if !ok || math.Abs(t.w) <= t.opts.MinSize || math.Abs(t.h) <= t.opts.MinSize {
		return document.SceneNode{}, false
	}

	doc := t.doc.State()
	node := document.SceneNode{
		ID:     t.opts.NewID(),
		Type:   document.NodeTypeRect,
		Name:   fmt.Sprintf("Rectangle %d", doc.Len()+1),
		X:      rect.X,
		Y:      rect.Y,
		Width:  rect.Width,
		Height: rect.Height,
		Fill:   DefaultFill,
		Stroke: DefaultStroke,
	}
	if t.opts.ParentToTopmost {
		if top, ok := doc.Topmost(); ok {
			node.ParentID = top.ID
		}
	}
	return node, true
}
