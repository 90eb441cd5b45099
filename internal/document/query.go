package document

import "github.com/inamate/sceneedit/internal/geometry"

// HitTest returns the ID of the topmost node whose bounds contain p, or "".
// Rotation is ignored; hit boxes are the unrotated frames.
func (m Model) HitTest(p geometry.Point) NodeID {
	// Front to back.
	for i := len(m.Nodes) - 1; i >= 0; i-- {
		n := m.Nodes[i]
		if geometry.IsPointInRect(p, n.Bounds()) {
			return n.ID
		}
	}
	return ""
}

// SelectionBounds returns the combined bounding box of the given node IDs.
// Unknown ids and empty nodes are skipped.
func (m Model) SelectionBounds(ids []NodeID) geometry.Rect {
	var result geometry.Rect
	first := true

	for _, id := range ids {
		node, ok := m.NodeByID(id)
		if !ok || node.Bounds().IsEmpty() {
			continue
		}

		if first {
			result = node.Bounds()
			first = false
		} else {
			result = result.Union(node.Bounds())
		}
	}

	return result
}
