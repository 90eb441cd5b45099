package document

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyID      = errors.New("node id is empty")
	ErrDuplicateID  = errors.New("duplicate node id")
	ErrNegativeSize = errors.New("negative node size")
	ErrUnknownType  = errors.New("unknown node type")
	ErrParentCycle  = errors.New("parent cycle")
	ErrMissingFill  = errors.New("node fill is required")
)

// Validate checks the invariants a loaded document must satisfy. Dangling
// parent references are allowed and treated as "no parent".
func (m Model) Validate() error {
	seen := make(map[NodeID]bool, len(m.Nodes))
	parents := make(map[NodeID]NodeID, len(m.Nodes))

	for _, n := range m.Nodes {
		if n.ID == "" {
			return ErrEmptyID
		}
		if seen[n.ID] {
			return fmt.Errorf("%w: %s", ErrDuplicateID, n.ID)
		}
		seen[n.ID] = true

		if n.Type != NodeTypeRect {
			return fmt.Errorf("%w: %q on %s", ErrUnknownType, n.Type, n.ID)
		}
		if n.Width < 0 || n.Height < 0 {
			return fmt.Errorf("%w: %s", ErrNegativeSize, n.ID)
		}
		if n.Fill == "" {
			return fmt.Errorf("%w: %s", ErrMissingFill, n.ID)
		}
		if n.HasParent() {
			parents[n.ID] = n.ParentID
		}
	}

	for id := range parents {
		visited := map[NodeID]bool{id: true}
		for current, ok := parents[id]; ok; current, ok = parents[current] {
			if visited[current] {
				return fmt.Errorf("%w: %s", ErrParentCycle, id)
			}
			visited[current] = true
		}
	}

	return nil
}
