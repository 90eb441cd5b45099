package editor

import (
	"slices"

	"github.com/inamate/sceneedit/internal/document"
	"github.com/inamate/sceneedit/internal/store"
)

// SelectionState lists the selected node ids. The first id is the primary
// selection.
type SelectionState struct {
	SelectedIDs []document.NodeID `json:"selectedIds"`
}

// Selection is the observable selection. It is not part of undo history.
type Selection struct {
	state *store.Store[SelectionState]
}

func NewSelection() *Selection {
	return &Selection{state: store.New(SelectionState{SelectedIDs: []document.NodeID{}})}
}

func (s *Selection) State() SelectionState {
	return s.state.GetState()
}

func (s *Selection) IDs() []document.NodeID {
	return s.State().SelectedIDs
}

func (s *Selection) Subscribe(listener store.Listener) func() {
	return s.state.Subscribe(listener)
}

// SelectOnly replaces the selection with id.
func (s *Selection) SelectOnly(id document.NodeID) {
	s.state.SetState(SelectionState{SelectedIDs: []document.NodeID{id}})
}

// Select replaces the selection with ids, dropping empties and duplicates.
func (s *Selection) Select(ids ...document.NodeID) {
	next := make([]document.NodeID, 0, len(ids))
	for _, id := range ids {
		if id != "" && !slices.Contains(next, id) {
			next = append(next, id)
		}
	}
	s.state.SetState(SelectionState{SelectedIDs: next})
}

// Clear empties the selection.
func (s *Selection) Clear() {
	s.state.SetState(SelectionState{SelectedIDs: []document.NodeID{}})
}

// IsSelected reports whether id is part of the selection.
func (s *Selection) IsSelected(id document.NodeID) bool {
	return slices.Contains(s.IDs(), id)
}

// SelectedNode resolves the primary selection against doc. It reports false
// when nothing is selected or the node no longer exists.
func (s *Selection) SelectedNode(doc document.Model) (document.SceneNode, bool) {
	ids := s.IDs()
	if len(ids) == 0 {
		return document.SceneNode{}, false
	}
	return doc.NodeByID(ids[0])
}
