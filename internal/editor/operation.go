package editor

import (
	"errors"
	"fmt"

	"github.com/inamate/sceneedit/internal/document"
)

// OpKind names a document operation.
type OpKind string

const (
	OpAddNode    OpKind = "node.add"
	OpRemoveNode OpKind = "node.remove"
	OpMoveNode   OpKind = "node.move"
)

// Direction selects which way an operation is played.
type Direction int

const (
	Forward Direction = iota
	Backward
)

var ErrUnknownOperation = errors.New("unknown operation type")

// Operation is one recorded document edit. It carries everything needed to
// play the edit in either direction without consulting the document again.
type Operation struct {
	ID     string          `json:"id"`
	Kind   OpKind          `json:"type"`
	NodeID document.NodeID `json:"nodeId"`

	// Node is the added node, or the removed node as it was captured.
	Node *document.SceneNode `json:"node,omitempty"`

	// Patch and Previous are the move payload and the values it overwrote.
	Patch    document.Patch `json:"patch,omitzero"`
	Previous document.Patch `json:"previous,omitzero"`

	Deltas   Deltas    `json:"deltas,omitzero"`
	Children *SyncPlan `json:"children,omitempty"`
}

// Apply plays the operation against doc.
func (op Operation) Apply(doc *document.Store, dir Direction) error {
	switch op.Kind {
	case OpAddNode:
		return op.applyAdd(doc, dir)
	case OpRemoveNode:
		return op.applyRemove(doc, dir)
	case OpMoveNode:
		op.applyMove(doc, dir)
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnknownOperation, op.Kind)
	}
}

func (op Operation) applyAdd(doc *document.Store, dir Direction) error {
	if op.Node == nil {
		return fmt.Errorf("%s %s: missing node", op.Kind, op.NodeID)
	}
	if dir == Forward {
		doc.AddNode(*op.Node)
	} else {
		doc.RemoveNode(op.Node.ID)
	}
	return nil
}

func (op Operation) applyRemove(doc *document.Store, dir Direction) error {
	if op.Node == nil {
		return fmt.Errorf("%s %s: missing node", op.Kind, op.NodeID)
	}
	if dir == Forward {
		doc.RemoveNode(op.NodeID)
	} else {
		// Restored on top of the z-order, not at its old index.
		doc.AddNode(*op.Node)
	}
	return nil
}

func (op Operation) applyMove(doc *document.Store, dir Direction) {
	if dir == Forward {
		doc.UpdateNode(op.NodeID, op.Patch)
		if op.Children != nil {
			for _, u := range op.Children.Updates {
				doc.UpdateNode(u.ID, u.Patch)
			}
		}
		return
	}

	doc.UpdateNode(op.NodeID, op.Previous)
	if op.Children != nil {
		for _, snap := range op.Children.Snapshots {
			doc.UpdateNode(snap.ID, document.Replace(snap))
		}
	}
}

// command binds an operation to the store it edits so the history engine can
// run it.
type command struct {
	doc *document.Store
	op  Operation
}

func (c command) Do()           { c.must(c.op.Apply(c.doc, Forward)) }
func (c command) Undo()         { c.must(c.op.Apply(c.doc, Backward)) }
func (c command) Label() string { return string(c.op.Kind) }

func (c command) must(err error) {
	if err != nil {
		// Operations reaching history are built by Commands and always valid.
		panic(err)
	}
}
