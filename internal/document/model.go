package document

import "github.com/inamate/sceneedit/internal/geometry"

// NodeID identifies a node. Ids are opaque and assigned by the caller.
type NodeID = string

type NodeType string

const (
	NodeTypeRect NodeType = "rect"
)

// SceneNode is a rectangle on the canvas.
type SceneNode struct {
	ID       NodeID   `json:"id"`
	Type     NodeType `json:"type"`
	ParentID NodeID   `json:"parentId,omitempty"`
	Name     string   `json:"name"`

	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Width    float64 `json:"width"`
	Height   float64 `json:"height"`
	Rotation float64 `json:"rotation"`

	Fill   string `json:"fill"`
	Stroke string `json:"stroke,omitempty"`
}

// HasParent reports whether the node names a parent. The parent may not exist.
func (n SceneNode) HasParent() bool {
	return n.ParentID != ""
}

// Bounds returns the unrotated rect the node occupies.
func (n SceneNode) Bounds() geometry.Rect {
	return geometry.Rect{X: n.X, Y: n.Y, Width: n.Width, Height: n.Height}
}

// Model is the scene document. Slice order is z-order: later nodes draw on top.
type Model struct {
	Nodes []SceneNode `json:"nodes"`
}

// NewModel creates a document holding nodes, copied.
func NewModel(nodes ...SceneNode) Model {
	return Model{Nodes: append([]SceneNode{}, nodes...)}
}

// Clone returns a copy that shares no backing array with m.
func (m Model) Clone() Model {
	return NewModel(m.Nodes...)
}

// Len returns the number of nodes.
func (m Model) Len() int {
	return len(m.Nodes)
}

// Index returns the position of id in z-order, or -1.
func (m Model) Index(id NodeID) int {
	for i, n := range m.Nodes {
		if n.ID == id {
			return i
		}
	}
	return -1
}

// NodeByID looks up a node.
func (m Model) NodeByID(id NodeID) (SceneNode, bool) {
	if i := m.Index(id); i >= 0 {
		return m.Nodes[i], true
	}
	return SceneNode{}, false
}

// Children returns the direct children of id in z-order.
func (m Model) Children(id NodeID) []SceneNode {
	var children []SceneNode
	for _, n := range m.Nodes {
		if n.ParentID == id && n.ID != id {
			children = append(children, n)
		}
	}
	return children
}

// Descendants returns every node below id, breadth first. Each node appears
// once even if the parent links form a cycle.
func (m Model) Descendants(id NodeID) []SceneNode {
	visited := map[NodeID]bool{id: true}
	queue := []NodeID{id}

	var result []SceneNode
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, child := range m.Children(current) {
			if visited[child.ID] {
				continue
			}
			visited[child.ID] = true
			result = append(result, child)
			queue = append(queue, child.ID)
		}
	}
	return result
}

// Topmost returns the last node in z-order.
func (m Model) Topmost() (SceneNode, bool) {
	if len(m.Nodes) == 0 {
		return SceneNode{}, false
	}
	return m.Nodes[len(m.Nodes)-1], true
}
