package state

import (
	"fmt"
	"time"

	"github.com/itsacoffee/aura-video-studio-sub003/internal/edit"
	"github.com/itsacoffee/aura-video-studio-sub003/internal/history"
	"github.com/itsacoffee/aura-video-studio-sub003/internal/pubsub"
	"github.com/itsacoffee/aura-video-studio-sub003/internal/timeline"
)

// commandKind tags the variant of a command. Each variant carries its own
// parameters and pre-state payload in the command struct; a single
// apply/revert pair dispatches on the tag. This keeps commands plain data,
// serializable for diagnostics.
type commandKind int

const (
	cmdAddClip commandKind = iota
	cmdReplaceClip
	cmdUpdateClip
	cmdRemoveClips
	cmdRippleDeleteClips
	cmdSplitClip
	cmdMoveClip
	cmdMoveClips
	cmdTrimClip
	cmdAddEffect
	cmdRemoveEffect
	cmdMoveEffect
	cmdInsertClips
	cmdAddMarker
	cmdRemoveMarker
	cmdAddOverlay
	cmdUpdateOverlay
	cmdRemoveOverlay
	cmdUpdateTrack
	cmdToggleRippleEdit
)

// command is the engine's single reversible mutation unit. Pre-state
// fields are captured at construction time, before the first Execute runs
// against the live model. Because every edit operation is copy-on-write,
// snapshotting a track means keeping its old clip slice reference; nothing
// is deep-cloned here.
type command struct {
	store       *Store
	kind        commandKind
	description string
	timestamp   time.Time

	// Operation parameters. Only the fields relevant to the kind are set.
	// Ids created by the operation (split right half, pasted clips) are
	// pre-generated here so redo reproduces the same model exactly.
	trackID       string
	clipID        string
	clipIDs       []string
	clip          timeline.Clip
	clips         []timeline.Clip
	clipUpdate    timeline.ClipUpdate
	splitTime     float64
	rightID       string
	newStart      float64
	newDuration   float64
	delta         float64
	effect        timeline.Effect
	effectID      string
	effectIndex   int
	effectDir     int
	marker        timeline.ChapterMarker
	markerID      string
	overlay       timeline.TextOverlay
	overlayID     string
	overlayUpdate timeline.OverlayUpdate
	trackUpdate   timeline.TrackUpdate

	// Pre-state payload.
	prevClips     map[string][]timeline.Clip
	prevMarkers   []timeline.ChapterMarker
	prevOverlays  []timeline.TextOverlay
	prevTrackMeta *timeline.Track
	prevSelection []string
	prevRipple    bool
}

var _ history.Command = (*command)(nil)

func (c *command) Execute()             { c.store.apply(c) }
func (c *command) Undo()                { c.store.revert(c) }
func (c *command) Description() string  { return c.description }
func (c *command) Timestamp() time.Time { return c.timestamp }

// newCommand builds a command bound to the store with its timestamp set.
func (s *Store) newCommand(kind commandKind, description string) *command {
	return &command{
		store:       s,
		kind:        kind,
		description: description,
		timestamp:   time.Now(),
	}
}

// snapshotTracks records the current clip slice of each named track.
func (c *command) snapshotTracks(trackIDs ...string) *command {
	if c.prevClips == nil {
		c.prevClips = make(map[string][]timeline.Clip, len(trackIDs))
	}
	for _, id := range trackIDs {
		if _, ok := c.prevClips[id]; ok {
			continue
		}
		if track := c.store.project.TrackByID(id); track != nil {
			c.prevClips[id] = track.Clips
		}
	}
	return c
}

func (c *command) snapshotMarkers() *command {
	c.prevMarkers = c.store.project.Markers
	return c
}

func (c *command) snapshotOverlays() *command {
	c.prevOverlays = c.store.project.Overlays
	return c
}

func (c *command) snapshotSelection() *command {
	c.prevSelection = c.store.selection.IDs()
	return c
}

// apply performs the command's mutation against the live model and
// publishes the matching change event. Every branch is deterministic in
// the command's parameters, so redo reproduces the first execution.
func (s *Store) apply(c *command) {
	switch c.kind {
	case cmdAddClip:
		track := s.project.TrackByID(c.trackID)
		track.Clips = edit.Insert(track.Clips, c.clip)
		s.publish(pubsub.CreatedEvent, EntityClip, c.clip.ID)

	case cmdReplaceClip:
		track, _ := s.project.FindClip(c.clip.ID)
		track.Clips, _ = edit.Replace(track.Clips, c.clip)
		s.publish(pubsub.UpdatedEvent, EntityClip, c.clip.ID)

	case cmdUpdateClip:
		track, _ := s.project.FindClip(c.clipID)
		track.Clips, _ = edit.Update(track.Clips, c.clipID, c.clipUpdate)
		s.publish(pubsub.UpdatedEvent, EntityClip, c.clipID)

	case cmdRemoveClips:
		for trackID := range c.prevClips {
			track := s.project.TrackByID(trackID)
			track.Clips, _ = edit.Delete(track.Clips, c.clipIDs...)
		}
		s.selection.Remove(c.clipIDs...)
		s.publish(pubsub.DeletedEvent, EntityClip, c.clipIDs...)

	case cmdRippleDeleteClips:
		s.project.Tracks, _ = edit.RippleDeleteMany(s.project.Tracks, c.clipIDs)
		s.selection.Remove(c.clipIDs...)
		s.publish(pubsub.DeletedEvent, EntityClip, c.clipIDs...)

	case cmdSplitClip:
		track, _ := s.project.FindClip(c.clipID)
		track.Clips, _ = edit.SplitWithID(track.Clips, c.clipID, c.splitTime, c.rightID)
		s.publish(pubsub.UpdatedEvent, EntityClip, c.clipID, c.rightID)

	case cmdMoveClip:
		track, _ := s.project.FindClip(c.clipID)
		track.Clips, _ = edit.Move(track.Clips, c.clipID, c.newStart)
		s.publish(pubsub.UpdatedEvent, EntityClip, c.clipID)

	case cmdMoveClips:
		for trackID := range c.prevClips {
			track := s.project.TrackByID(trackID)
			track.Clips, _ = edit.MoveBy(track.Clips, c.clipIDs, c.delta)
		}
		s.publish(pubsub.UpdatedEvent, EntityClip, c.clipIDs...)

	case cmdTrimClip:
		track, _ := s.project.FindClip(c.clipID)
		track.Clips, _ = edit.Trim(track.Clips, c.clipID, c.newStart, c.newDuration)
		s.publish(pubsub.UpdatedEvent, EntityClip, c.clipID)

	case cmdAddEffect:
		track, _ := s.project.FindClip(c.clipID)
		track.Clips, _ = edit.AddEffect(track.Clips, c.clipID, c.effect)
		s.publish(pubsub.UpdatedEvent, EntityClip, c.clipID)

	case cmdRemoveEffect:
		track, _ := s.project.FindClip(c.clipID)
		track.Clips, _ = edit.RemoveEffect(track.Clips, c.clipID, c.effectID)
		s.publish(pubsub.UpdatedEvent, EntityClip, c.clipID)

	case cmdMoveEffect:
		track, _ := s.project.FindClip(c.clipID)
		track.Clips, _ = edit.MoveEffect(track.Clips, c.clipID, c.effectIndex, c.effectDir)
		s.publish(pubsub.UpdatedEvent, EntityClip, c.clipID)

	case cmdInsertClips:
		track := s.project.TrackByID(c.trackID)
		for _, clip := range c.clips {
			track.Clips = edit.Insert(track.Clips, clip)
		}
		ids := make([]string, len(c.clips))
		for i, clip := range c.clips {
			ids[i] = clip.ID
		}
		s.publish(pubsub.CreatedEvent, EntityClip, ids...)

	case cmdAddMarker:
		s.project.Markers = timeline.SortMarkers(append(s.project.Markers, c.marker))
		s.publish(pubsub.CreatedEvent, EntityMarker, c.marker.ID)

	case cmdRemoveMarker:
		kept := make([]timeline.ChapterMarker, 0, len(s.project.Markers))
		for _, m := range s.project.Markers {
			if m.ID != c.markerID {
				kept = append(kept, m)
			}
		}
		s.project.Markers = kept
		s.publish(pubsub.DeletedEvent, EntityMarker, c.markerID)

	case cmdAddOverlay:
		s.project.Overlays = timeline.SortOverlays(append(s.project.Overlays, c.overlay))
		s.publish(pubsub.CreatedEvent, EntityOverlay, c.overlay.ID)

	case cmdUpdateOverlay:
		idx := s.project.FindOverlay(c.overlayID)
		updated := clampOverlayTimes(s.project.Overlays[idx].Apply(c.overlayUpdate))
		next := make([]timeline.TextOverlay, len(s.project.Overlays))
		copy(next, s.project.Overlays)
		next[idx] = updated
		s.project.Overlays = timeline.SortOverlays(next)
		s.publish(pubsub.UpdatedEvent, EntityOverlay, c.overlayID)

	case cmdRemoveOverlay:
		kept := make([]timeline.TextOverlay, 0, len(s.project.Overlays))
		for _, o := range s.project.Overlays {
			if o.ID != c.overlayID {
				kept = append(kept, o)
			}
		}
		s.project.Overlays = kept
		s.publish(pubsub.DeletedEvent, EntityOverlay, c.overlayID)

	case cmdUpdateTrack:
		track := s.project.TrackByID(c.trackID)
		*track = track.Apply(c.trackUpdate)
		s.publish(pubsub.UpdatedEvent, EntityTrack, c.trackID)

	case cmdToggleRippleEdit:
		s.rippleEdit = !s.rippleEdit
		s.publish(pubsub.UpdatedEvent, EntityRippleEdit)

	default:
		panic(fmt.Sprintf("state: unknown command kind %d", c.kind))
	}
}

// revert restores the pre-state payload captured at construction.
func (s *Store) revert(c *command) {
	for trackID, clips := range c.prevClips {
		if track := s.project.TrackByID(trackID); track != nil {
			track.Clips = clips
		}
	}
	if c.prevMarkers != nil || c.kind == cmdAddMarker || c.kind == cmdRemoveMarker {
		s.project.Markers = c.prevMarkers
	}
	if c.prevOverlays != nil || isOverlayKind(c.kind) {
		s.project.Overlays = c.prevOverlays
	}
	if c.prevTrackMeta != nil {
		track := s.project.TrackByID(c.prevTrackMeta.ID)
		clips := track.Clips
		*track = *c.prevTrackMeta
		track.Clips = clips
	}
	if c.prevSelection != nil {
		s.selection.Set(c.prevSelection)
	}
	if c.kind == cmdToggleRippleEdit {
		s.rippleEdit = c.prevRipple
	}
	s.publish(pubsub.ResetEvent, EntityProject)
}

func isOverlayKind(kind commandKind) bool {
	return kind == cmdAddOverlay || kind == cmdUpdateOverlay || kind == cmdRemoveOverlay
}
