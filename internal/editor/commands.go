package editor

import (
	"github.com/inamate/sceneedit/internal/document"
	"github.com/inamate/sceneedit/internal/history"
	"github.com/inamate/sceneedit/internal/typeid"
)

// Commands is the mutation entry point for the document. Each call records
// one undoable operation in the shared history.
type Commands struct {
	doc     *document.Store
	history *history.History

	// PropagateDescendants makes moves carry every descendant, not just
	// direct children.
	PropagateDescendants bool
}

// NewCommands creates a command layer over doc and h.
func NewCommands(doc *document.Store, h *history.History) *Commands {
	return &Commands{doc: doc, history: h}
}

func (c *Commands) execute(op Operation) Operation {
	op.ID = typeid.NewOpID()
	c.history.Execute(command{doc: c.doc, op: op})
	return op
}

// AddNode adds node on top of the z-order.
func (c *Commands) AddNode(node document.SceneNode) (Operation, bool) {
	return c.execute(Operation{
		Kind:   OpAddNode,
		NodeID: node.ID,
		Node:   &node,
	}), true
}

// RemoveNode deletes the node with id. It reports false, recording nothing,
// when no such node exists. Children are left in place with a dangling parent.
func (c *Commands) RemoveNode(id document.NodeID) (Operation, bool) {
	node, ok := c.doc.GetNodeByID(id)
	if !ok {
		return Operation{}, false
	}
	return c.execute(Operation{
		Kind:   OpRemoveNode,
		NodeID: id,
		Node:   &node,
	}), true
}

// MoveNode merges patch into the node with id and shifts its children by the
// same deltas. It reports false, recording nothing, when no such node exists.
func (c *Commands) MoveNode(id document.NodeID, patch document.Patch) (Operation, bool) {
	doc := c.doc.State()
	node, ok := doc.NodeByID(id)
	if !ok {
		return Operation{}, false
	}

	deltas := ComputeDeltas(node, patch)
	plan := PlanChildren(doc, id, deltas, c.PropagateDescendants)

	return c.execute(Operation{
		Kind:     OpMoveNode,
		NodeID:   id,
		Patch:    patch,
		Previous: patch.Capture(node),
		Deltas:   deltas,
		Children: &plan,
	}), true
}

// Undo reverts the most recent operation.
func (c *Commands) Undo() bool {
	return c.history.Undo()
}

// Redo re-applies the most recently undone operation.
func (c *Commands) Redo() bool {
	return c.history.Redo()
}
