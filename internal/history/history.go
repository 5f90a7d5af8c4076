// Package history implements the reversible command stack for the timeline
// engine. Every model mutation is wrapped in a Command that captures its
// pre-state at construction time; the History keeps bounded undo and redo
// stacks of executed commands.
package history

import (
	"time"

	"github.com/itsacoffee/aura-video-studio-sub003/internal/log"
)

// DefaultLimit is the undo stack bound when none is configured.
const DefaultLimit = 50

// Command is a reversible, describable unit of model mutation.
//
// A command must capture a deep snapshot of the model slice it affects at
// construction time, before Execute mutates the live model, so that Undo
// can restore it exactly. Execute and Undo either fully apply or do
// nothing; a command that cannot apply is never pushed.
type Command interface {
	// Execute applies the mutation. Called once when the command is first
	// executed and again on every redo.
	Execute()

	// Undo restores the model to its pre-Execute state.
	Undo()

	// Description returns a short human-readable label ("Split clip",
	// "Move 3 clips") for history UIs and diagnostics.
	Description() string

	// Timestamp returns when the command was created.
	Timestamp() time.Time
}

// History maintains bounded undo/redo stacks of executed commands.
// Executing a new command clears the redo stack; exceeding the bound
// evicts the oldest undo entry.
type History struct {
	limit int
	undo  []Command
	redo  []Command
}

// New creates a history with the given undo bound. Non-positive limits
// fall back to DefaultLimit.
func New(limit int) *History {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &History{limit: limit}
}

// Execute runs the command and pushes it onto the undo stack. Any redoable
// commands are discarded: a new command creates a new branch in history.
func (h *History) Execute(cmd Command) {
	cmd.Execute()

	h.undo = append(h.undo, cmd)
	if len(h.undo) > h.limit {
		// Evict oldest first
		h.undo = h.undo[1:]
	}
	h.redo = nil

	log.Debug(log.CatHistory, "executed command",
		"description", cmd.Description(), "undo_depth", len(h.undo))
}

// Undo reverses the most recent command and moves it to the redo stack.
// Returns false when there is nothing to undo.
func (h *History) Undo() bool {
	if len(h.undo) == 0 {
		return false
	}
	cmd := h.undo[len(h.undo)-1]
	h.undo = h.undo[:len(h.undo)-1]

	cmd.Undo()
	h.redo = append(h.redo, cmd)

	log.Debug(log.CatHistory, "undo", "description", cmd.Description())
	return true
}

// Redo re-executes the most recently undone command and moves it back to
// the undo stack. Returns false when there is nothing to redo.
func (h *History) Redo() bool {
	if len(h.redo) == 0 {
		return false
	}
	cmd := h.redo[len(h.redo)-1]
	h.redo = h.redo[:len(h.redo)-1]

	cmd.Execute()
	h.undo = append(h.undo, cmd)

	log.Debug(log.CatHistory, "redo", "description", cmd.Description())
	return true
}

// CanUndo reports whether the undo stack is non-empty.
func (h *History) CanUndo() bool {
	return len(h.undo) > 0
}

// CanRedo reports whether the redo stack is non-empty.
func (h *History) CanRedo() bool {
	return len(h.redo) > 0
}

// UndoDescription returns the label of the command Undo would reverse.
func (h *History) UndoDescription() (string, bool) {
	if len(h.undo) == 0 {
		return "", false
	}
	return h.undo[len(h.undo)-1].Description(), true
}

// RedoDescription returns the label of the command Redo would re-apply.
func (h *History) RedoDescription() (string, bool) {
	if len(h.redo) == 0 {
		return "", false
	}
	return h.redo[len(h.redo)-1].Description(), true
}

// Clear drops both stacks. Used when a new project is loaded.
func (h *History) Clear() {
	h.undo = nil
	h.redo = nil
	log.Debug(log.CatHistory, "history cleared")
}

// Depth returns the current undo stack depth. Exposed for diagnostics.
func (h *History) Depth() int {
	return len(h.undo)
}
