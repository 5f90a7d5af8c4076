package history

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// counterCommand increments a shared counter on Execute and decrements on
// Undo, giving tests a cheap way to observe ordering and balance.
type counterCommand struct {
	name    string
	counter *int
	trace   *[]string
	ts      time.Time
}

func newCounter(name string, counter *int, trace *[]string) *counterCommand {
	return &counterCommand{name: name, counter: counter, trace: trace, ts: time.Now()}
}

func (c *counterCommand) Execute() {
	*c.counter++
	if c.trace != nil {
		*c.trace = append(*c.trace, "exec:"+c.name)
	}
}

func (c *counterCommand) Undo() {
	*c.counter--
	if c.trace != nil {
		*c.trace = append(*c.trace, "undo:"+c.name)
	}
}

func (c *counterCommand) Description() string  { return c.name }
func (c *counterCommand) Timestamp() time.Time { return c.ts }

func TestHistory_ExecuteUndoRedo(t *testing.T) {
	h := New(10)
	counter := 0

	h.Execute(newCounter("a", &counter, nil))
	require.Equal(t, 1, counter)
	require.True(t, h.CanUndo())
	require.False(t, h.CanRedo())

	require.True(t, h.Undo())
	require.Equal(t, 0, counter)
	require.False(t, h.CanUndo())
	require.True(t, h.CanRedo())

	require.True(t, h.Redo())
	require.Equal(t, 1, counter)
	require.True(t, h.CanUndo())
	require.False(t, h.CanRedo())
}

func TestHistory_EmptyStacksNoOp(t *testing.T) {
	h := New(10)
	require.False(t, h.Undo())
	require.False(t, h.Redo())

	_, ok := h.UndoDescription()
	require.False(t, ok)
	_, ok = h.RedoDescription()
	require.False(t, ok)
}

func TestHistory_NewCommandClearsRedo(t *testing.T) {
	h := New(10)
	counter := 0

	h.Execute(newCounter("a", &counter, nil))
	h.Execute(newCounter("b", &counter, nil))
	require.True(t, h.Undo())
	require.True(t, h.CanRedo())

	h.Execute(newCounter("c", &counter, nil))
	require.False(t, h.CanRedo())
	require.False(t, h.Redo())
}

func TestHistory_BoundEvictsOldest(t *testing.T) {
	h := New(50)
	counter := 0

	for i := 0; i < 51; i++ {
		h.Execute(newCounter(fmt.Sprintf("cmd-%d", i), &counter, nil))
	}
	require.Equal(t, 51, counter)
	require.Equal(t, 50, h.Depth())
	require.True(t, h.CanUndo())

	// The oldest (cmd-0) was evicted: undoing everything leaves its effect.
	undone := 0
	for h.Undo() {
		undone++
	}
	require.Equal(t, 50, undone)
	require.False(t, h.CanUndo())
	require.Equal(t, 1, counter)

	desc, ok := h.RedoDescription()
	require.True(t, ok)
	require.Equal(t, "cmd-1", desc)
}

func TestHistory_Clear(t *testing.T) {
	h := New(10)
	counter := 0

	h.Execute(newCounter("a", &counter, nil))
	require.True(t, h.Undo())
	h.Execute(newCounter("b", &counter, nil))

	h.Clear()
	require.False(t, h.CanUndo())
	require.False(t, h.CanRedo())
	require.Equal(t, 0, h.Depth())
}

func TestHistory_Descriptions(t *testing.T) {
	h := New(10)
	counter := 0

	h.Execute(newCounter("move clip", &counter, nil))

	desc, ok := h.UndoDescription()
	require.True(t, ok)
	require.Equal(t, "move clip", desc)

	require.True(t, h.Undo())
	desc, ok = h.RedoDescription()
	require.True(t, ok)
	require.Equal(t, "move clip", desc)
}

func TestBatch_ExecuteOrder_UndoReversed(t *testing.T) {
	counter := 0
	var trace []string

	batch := NewBatch("composite drag",
		newCounter("first", &counter, &trace),
		newCounter("second", &counter, &trace),
	)
	batch.Add(newCounter("third", &counter, &trace))
	require.Equal(t, 3, batch.Len())

	h := New(10)
	h.Execute(batch)
	require.Equal(t, 3, counter)
	require.Equal(t, []string{"exec:first", "exec:second", "exec:third"}, trace)

	trace = nil
	require.True(t, h.Undo())
	require.Equal(t, 0, counter)
	require.Equal(t, []string{"undo:third", "undo:second", "undo:first"}, trace)

	require.Equal(t, "composite drag", batch.Description())
	require.False(t, batch.Timestamp().IsZero())
}

func TestHistory_UndoAllBalances_Property(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		h := New(DefaultLimit)
		counter := 0

		n := rapid.IntRange(1, 40).Draw(t, "n")
		for i := 0; i < n; i++ {
			h.Execute(newCounter(fmt.Sprintf("cmd-%d", i), &counter, nil))

			// Occasionally interleave an undo/redo pair; net effect zero.
			if rapid.Bool().Draw(t, "wiggle") {
				require.True(t, h.Undo())
				require.True(t, h.Redo())
			}
		}
		require.Equal(t, n, counter)

		undone := 0
		for h.Undo() {
			undone++
		}
		require.Equal(t, n, undone)
		require.Equal(t, 0, counter)

		redone := 0
		for h.Redo() {
			redone++
		}
		require.Equal(t, n, redone)
		require.Equal(t, n, counter)
	})
}
