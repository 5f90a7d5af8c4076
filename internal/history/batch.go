package history

import "time"

// Batch groups several commands into a single describable history unit.
// Composite gestures (a drag that moves and trims, a paste that inserts
// several clips) execute as one entry so a single undo reverses the whole
// gesture.
//
// Execute runs sub-commands front-to-back; Undo runs them back-to-front,
// since later sub-commands may depend on state produced by earlier ones.
type Batch struct {
	description string
	timestamp   time.Time
	commands    []Command
}

// NewBatch creates a batch with the given label and initial commands.
func NewBatch(description string, commands ...Command) *Batch {
	return &Batch{
		description: description,
		timestamp:   time.Now(),
		commands:    commands,
	}
}

// Add appends a command to the batch. Must be called before the batch is
// executed through a History.
func (b *Batch) Add(cmd Command) {
	b.commands = append(b.commands, cmd)
}

// Len returns the number of sub-commands.
func (b *Batch) Len() int {
	return len(b.commands)
}

// Execute runs all sub-commands in registration order.
func (b *Batch) Execute() {
	for _, cmd := range b.commands {
		cmd.Execute()
	}
}

// Undo reverses all sub-commands in reverse registration order.
func (b *Batch) Undo() {
	for i := len(b.commands) - 1; i >= 0; i-- {
		b.commands[i].Undo()
	}
}

// Description returns the batch label.
func (b *Batch) Description() string {
	return b.description
}

// Timestamp returns when the batch was created.
func (b *Batch) Timestamp() time.Time {
	return b.timestamp
}

var _ Command = (*Batch)(nil)
