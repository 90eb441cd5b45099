package document

import (
	"slices"

	"github.com/inamate/sceneedit/internal/store"
)

// Store owns the document. Every mutation publishes a new Model value; slices
// held by earlier readers are never written.
type Store struct {
	state *store.Store[Model]
}

// NewStore creates a store holding a copy of initial.
func NewStore(initial Model) *Store {
	return &Store{state: store.New(initial.Clone())}
}

// State returns the current document. Callers must not modify its slice.
func (s *Store) State() Model {
	return s.state.GetState()
}

// Nodes returns the nodes in z-order.
func (s *Store) Nodes() []SceneNode {
	return s.State().Nodes
}

// Subscribe registers a change listener.
func (s *Store) Subscribe(listener store.Listener) func() {
	return s.state.Subscribe(listener)
}

// SetDocument replaces the whole document.
func (s *Store) SetDocument(doc Model) {
	s.state.SetState(doc.Clone())
}

// AddNode appends node on top of the z-order. Duplicate ids are not checked.
func (s *Store) AddNode(node SceneNode) {
	s.state.Update(func(prev Model) Model {
		nodes := make([]SceneNode, len(prev.Nodes), len(prev.Nodes)+1)
		copy(nodes, prev.Nodes)
		return Model{Nodes: append(nodes, node)}
	})
}

// RemoveNode deletes the node with id. Unknown ids are ignored.
func (s *Store) RemoveNode(id NodeID) {
	s.state.Update(func(prev Model) Model {
		if prev.Index(id) < 0 {
			return prev
		}
		return Model{Nodes: slices.DeleteFunc(slices.Clone(prev.Nodes), func(n SceneNode) bool {
			return n.ID == id
		})}
	})
}

// UpdateNode merges patch into the node with id. Unknown ids are ignored.
func (s *Store) UpdateNode(id NodeID, patch Patch) {
	s.state.Update(func(prev Model) Model {
		i := prev.Index(id)
		if i < 0 {
			return prev
		}
		nodes := slices.Clone(prev.Nodes)
		nodes[i] = patch.Apply(nodes[i])
		return Model{Nodes: nodes}
	})
}

// GetNodeByID looks up a node without mutating anything.
func (s *Store) GetNodeByID(id NodeID) (SceneNode, bool) {
	return s.State().NodeByID(id)
}

// Children returns the direct children of id.
func (s *Store) Children(id NodeID) []SceneNode {
	return s.State().Children(id)
}
