// Package history implements linear undo/redo over opaque commands.
//
// The engine never looks inside a command. It only calls Do and Undo, which
// makes it reusable for anything that can express an edit as an action and
// its exact inverse.
package history

// Command is a reversible edit. Undo must restore exactly the state Do
// started from; Do may be called again after Undo (redo).
type Command interface {
	Do()
	Undo()
}

// Labeler is implemented by commands that can describe themselves.
type Labeler interface {
	Label() string
}

// Func adapts a pair of closures to Command.
type Func struct {
	Name   string
	DoFn   func()
	UndoFn func()
}

func (f Func) Do()           { f.DoFn() }
func (f Func) Undo()         { f.UndoFn() }
func (f Func) Label() string { return f.Name }

// State summarizes the stacks for display (toolbar buttons, menus).
type State struct {
	UndoDepth int    `json:"undoDepth"`
	RedoDepth int    `json:"redoDepth"`
	UndoLabel string `json:"undoLabel,omitempty"`
	RedoLabel string `json:"redoLabel,omitempty"`
}

// History holds the undo and redo stacks. Most recent entries are last.
type History struct {
	undo  []Command
	redo  []Command
	limit int
}

// New creates an empty history. When limit > 0, the oldest undo entries are
// dropped once the undo stack grows past limit; otherwise it is unbounded.
func New(limit int) *History {
	return &History{limit: limit}
}

// Execute runs cmd, records it for undo, and discards the redo stack.
// Branching redo after a new edit is not supported.
func (h *History) Execute(cmd Command) {
	cmd.Do()
	h.push(cmd)
	h.redo = nil
}

// Undo reverts the most recent command. It returns false when there is
// nothing to undo.
func (h *History) Undo() bool {
	if len(h.undo) == 0 {
		return false
	}

	cmd := h.undo[len(h.undo)-1]
	h.undo = h.undo[:len(h.undo)-1]

	cmd.Undo()
	h.redo = append(h.redo, cmd)
	return true
}

// Redo re-applies the most recently undone command. It returns false when
// there is nothing to redo.
func (h *History) Redo() bool {
	if len(h.redo) == 0 {
		return false
	}

	cmd := h.redo[len(h.redo)-1]
	h.redo = h.redo[:len(h.redo)-1]

	cmd.Do()
	h.push(cmd)
	return true
}

func (h *History) push(cmd Command) {
	h.undo = append(h.undo, cmd)
	if h.limit > 0 && len(h.undo) > h.limit {
		// Drop the oldest; copy so the dropped command can be collected.
		h.undo = append([]Command(nil), h.undo[len(h.undo)-h.limit:]...)
	}
}

// CanUndo returns true if undo is available.
func (h *History) CanUndo() bool {
	return len(h.undo) > 0
}

// CanRedo returns true if redo is available.
func (h *History) CanRedo() bool {
	return len(h.redo) > 0
}

// Clear forgets both stacks without running anything.
func (h *History) Clear() {
	h.undo = nil
	h.redo = nil
}

// State reports stack depths and the labels of the next undo/redo entries.
func (h *History) State() State {
	s := State{
		UndoDepth: len(h.undo),
		RedoDepth: len(h.redo),
	}
	if len(h.undo) > 0 {
		s.UndoLabel = label(h.undo[len(h.undo)-1])
	}
	if len(h.redo) > 0 {
		s.RedoLabel = label(h.redo[len(h.redo)-1])
	}
	return s
}

func label(cmd Command) string {
	if l, ok := cmd.(Labeler); ok {
		return l.Label()
	}
	return ""
}
