// Package state implements the engine's state manager: a single object
// owning the timeline model and exposing the documented mutation surface.
// There is no ambient global; callers hold an explicit *Store.
//
// Every mutation runs to completion before the next is accepted; the
// engine is single-threaded and event-driven, so the store does no
// locking. Mutations go through reversible commands (see commands.go) and
// publish change events for the rendering layer.
package state

import (
	"context"

	"github.com/itsacoffee/aura-video-studio-sub003/internal/clipboard"
	"github.com/itsacoffee/aura-video-studio-sub003/internal/history"
	"github.com/itsacoffee/aura-video-studio-sub003/internal/log"
	"github.com/itsacoffee/aura-video-studio-sub003/internal/pubsub"
	"github.com/itsacoffee/aura-video-studio-sub003/internal/selection"
	"github.com/itsacoffee/aura-video-studio-sub003/internal/timeline"
)

// DefaultMinClipDuration is the smallest duration a trim may leave behind,
// in seconds.
const DefaultMinClipDuration = 0.1

// Change entities published with model-change events.
const (
	EntityClip       = "clip"
	EntityTrack      = "track"
	EntityMarker     = "marker"
	EntityOverlay    = "overlay"
	EntitySelection  = "selection"
	EntityRippleEdit = "ripple_edit"
	EntityProject    = "project"
)

// Change describes a model mutation for subscribers: which entity kind
// changed and the affected ids. A ResetEvent carries no ids and means
// "re-read everything".
type Change struct {
	Entity string
	IDs    []string
}

// Options configures a Store.
type Options struct {
	// HistoryLimit bounds the undo stack; history.DefaultLimit when zero.
	HistoryLimit int
	// MinClipDuration clamps trims; DefaultMinClipDuration when zero.
	MinClipDuration float64
	// Clipboard backs copy/paste. When nil an in-memory clipboard is used.
	Clipboard *clipboard.Service
}

// Store owns the timeline model and all engine sub-systems.
type Store struct {
	project    *timeline.Project
	selection  *selection.Manager
	history    *history.History
	clipboard  *clipboard.Service
	broker     *pubsub.Broker[Change]
	ctx        context.Context
	rippleEdit bool
	minClipDur float64
}

// NewStore creates a store with a fresh project (the fixed four-track
// layout) and empty history, selection and clipboard.
func NewStore(opts Options) *Store {
	clip := opts.Clipboard
	if clip == nil {
		clip = clipboard.NewService(nil, 0)
	}
	minDur := opts.MinClipDuration
	if minDur <= 0 {
		minDur = DefaultMinClipDuration
	}
	return &Store{
		project:    timeline.NewProject(),
		selection:  selection.NewManager(),
		history:    history.New(opts.HistoryLimit),
		clipboard:  clip,
		broker:     pubsub.NewBroker[Change](),
		ctx:        context.Background(),
		minClipDur: minDur,
	}
}

// Close releases the change broker; subscribers' channels are closed.
func (s *Store) Close() {
	s.broker.Close()
}

// Project returns the live model. Callers must treat it as read-only and
// go through the mutation surface for changes.
func (s *Store) Project() *timeline.Project {
	return s.project
}

// Subscribe returns a channel of model-change events. The subscription is
// released when ctx is cancelled.
func (s *Store) Subscribe(ctx context.Context) <-chan pubsub.Event[Change] {
	return s.broker.Subscribe(ctx)
}

// LoadProject replaces the model wholesale, clearing history and
// selection. Used when a project file is opened.
func (s *Store) LoadProject(p *timeline.Project) {
	s.project = p
	s.history.Clear()
	s.selection.Clear()
	s.publish(pubsub.ResetEvent, EntityProject)
	log.Info(log.CatEngine, "project loaded",
		"tracks", len(p.Tracks), "markers", len(p.Markers), "overlays", len(p.Overlays))
}

// ExportChapters renders the project's chapter markers in the
// "M:SS Title" / "H:MM:SS Title" line format.
func (s *Store) ExportChapters() string {
	return timeline.FormatChapters(s.project.Markers)
}

// RippleEditEnabled reports whether ripple-edit mode is on.
func (s *Store) RippleEditEnabled() bool {
	return s.rippleEdit
}

func (s *Store) publish(eventType pubsub.EventType, entity string, ids ...string) {
	s.broker.Publish(eventType, Change{Entity: entity, IDs: ids})
}

// ----------------------------------------------------------------------
// Command-history surface
// ----------------------------------------------------------------------

// Undo reverses the most recent command. Returns false when the undo
// stack is empty.
func (s *Store) Undo() bool {
	return s.history.Undo()
}

// Redo re-applies the most recently undone command.
func (s *Store) Redo() bool {
	return s.history.Redo()
}

// CanUndo reports whether an undo is available.
func (s *Store) CanUndo() bool {
	return s.history.CanUndo()
}

// CanRedo reports whether a redo is available.
func (s *Store) CanRedo() bool {
	return s.history.CanRedo()
}

// UndoDescription returns the label of the command an undo would
// reverse, for menu display.
func (s *Store) UndoDescription() (string, bool) {
	return s.history.UndoDescription()
}

// RedoDescription returns the label of the command a redo would
// re-apply.
func (s *Store) RedoDescription() (string, bool) {
	return s.history.RedoDescription()
}

// ClearHistory drops both history stacks.
func (s *Store) ClearHistory() {
	s.history.Clear()
}

// ----------------------------------------------------------------------
// Selection surface
// ----------------------------------------------------------------------

// Select replaces the selection with the given clip ids.
func (s *Store) Select(ids []string) {
	s.selection.Set(ids)
	s.publish(pubsub.UpdatedEvent, EntitySelection, s.selection.IDs()...)
}

// ToggleSelect adds or removes a single clip from the selection.
func (s *Store) ToggleSelect(id string) {
	s.selection.Toggle(id)
	s.publish(pubsub.UpdatedEvent, EntitySelection, s.selection.IDs()...)
}

// ClearSelection empties the selection.
func (s *Store) ClearSelection() {
	s.selection.Clear()
	s.publish(pubsub.UpdatedEvent, EntitySelection)
}

// SelectRange selects every clip between two endpoints in flattened
// timeline order, across tracks. No-op returning false when either
// endpoint id is unknown.
func (s *Store) SelectRange(startID, endID string) bool {
	ok := s.selection.SelectRange(s.project.AllClips(), startID, endID)
	if ok {
		s.publish(pubsub.UpdatedEvent, EntitySelection, s.selection.IDs()...)
	}
	return ok
}

// SelectedIDs returns the ordered selection set.
func (s *Store) SelectedIDs() []string {
	return s.selection.IDs()
}

// PrimaryClipID returns the first selected clip id, or "" when the
// selection is empty.
func (s *Store) PrimaryClipID() string {
	return s.selection.PrimaryID()
}
