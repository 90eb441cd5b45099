package editor

import "github.com/inamate/sceneedit/internal/document"

// Deltas is how far a parent moved, resized or rotated in one edit. Fields the
// patch does not name contribute zero.
type Deltas struct {
	DX        float64 `json:"dx"`
	DY        float64 `json:"dy"`
	DRotation float64 `json:"dRotation"`
	DWidth    float64 `json:"dWidth"`
	DHeight   float64 `json:"dHeight"`
}

// ComputeDeltas compares the fields named by patch against their current
// values on n. Deltas follow the node as patch.Apply leaves it, so a size
// clamped at zero moves children only as far as the parent really changed.
func ComputeDeltas(n document.SceneNode, patch document.Patch) Deltas {
	next := patch.Apply(n)

	var d Deltas
	if patch.X != nil {
		d.DX = next.X - n.X
	}
	if patch.Y != nil {
		d.DY = next.Y - n.Y
	}
	if patch.Rotation != nil {
		d.DRotation = next.Rotation - n.Rotation
	}
	if patch.Width != nil {
		d.DWidth = next.Width - n.Width
	}
	if patch.Height != nil {
		d.DHeight = next.Height - n.Height
	}
	return d
}

// IsZero reports whether the parent did not change geometrically.
func (d Deltas) IsZero() bool {
	return d == Deltas{}
}

// ChildPatch shifts child by the deltas. Every geometric field is written,
// even when its delta is zero.
func (d Deltas) ChildPatch(child document.SceneNode) document.Patch {
	return document.Patch{
		X:        document.Float(child.X + d.DX),
		Y:        document.Float(child.Y + d.DY),
		Rotation: document.Float(child.Rotation + d.DRotation),
		Width:    document.Float(child.Width + d.DWidth),
		Height:   document.Float(child.Height + d.DHeight),
	}
}

// ChildUpdate is the forward patch for one child of a moved node.
type ChildUpdate struct {
	ID    document.NodeID `json:"id"`
	Patch document.Patch  `json:"patch"`
}

// SyncPlan records how children follow a parent edit: the patches to apply
// going forward and full snapshots to restore going back.
type SyncPlan struct {
	Updates   []ChildUpdate        `json:"childUpdates"`
	Snapshots []document.SceneNode `json:"childSnapshots"`
}

// PlanChildren builds the sync plan for the children of id. With transitive
// set, every descendant gets the same deltas; otherwise only direct children.
func PlanChildren(doc document.Model, id document.NodeID, d Deltas, transitive bool) SyncPlan {
	var children []document.SceneNode
	if transitive {
		children = doc.Descendants(id)
	} else {
		children = doc.Children(id)
	}

	plan := SyncPlan{
		Updates:   make([]ChildUpdate, 0, len(children)),
		Snapshots: make([]document.SceneNode, 0, len(children)),
	}
	for _, child := range children {
		plan.Snapshots = append(plan.Snapshots, child)
		plan.Updates = append(plan.Updates, ChildUpdate{ID: child.ID, Patch: d.ChildPatch(child)})
	}
	return plan
}
