package state

import (
	"fmt"

	"github.com/itsacoffee/aura-video-studio-sub003/internal/log"
	"github.com/itsacoffee/aura-video-studio-sub003/internal/timeline"
)

// Mutation surface. Each method validates its preconditions against the
// live model, and on success builds a command with its pre-state payload
// and runs it through the history. Boundary and missing-reference
// conditions return false without pushing anything; they are logged so
// no-ops stay observable.

// AddClip inserts a clip into the named track. An empty clip id is
// replaced with a fresh one; a negative start is clamped to zero.
func (s *Store) AddClip(trackID string, clip timeline.Clip) bool {
	track := s.project.TrackByID(trackID)
	if track == nil {
		log.Warn(log.CatEngine, "add clip: unknown track", "track_id", trackID)
		return false
	}
	if clip.SourceIn >= clip.SourceOut {
		log.Warn(log.CatEngine, "add clip: empty source range",
			"source_in", clip.SourceIn, "source_out", clip.SourceOut)
		return false
	}
	if clip.ID == "" {
		clip.ID = timeline.FreshID()
	}
	if clip.TimelineStart < 0 {
		log.Debug(log.CatEngine, "add clip: negative start clamped", "start", clip.TimelineStart)
		clip.TimelineStart = 0
	}
	clip.TrackID = trackID

	cmd := s.newCommand(cmdAddClip, "Add clip").snapshotTracks(trackID)
	cmd.trackID = trackID
	cmd.clip = clip
	s.history.Execute(cmd)
	return true
}

// UpdateClip replaces the clip with the same id wholesale.
func (s *Store) UpdateClip(clip timeline.Clip) bool {
	track, _ := s.project.FindClip(clip.ID)
	if track == nil {
		log.Debug(log.CatEngine, "update clip: unknown id", "clip_id", clip.ID)
		return false
	}
	clip.TrackID = track.ID

	cmd := s.newCommand(cmdReplaceClip, "Update clip").snapshotTracks(track.ID)
	cmd.clip = clip
	s.history.Execute(cmd)
	return true
}

// UpdateClipProperties merges a typed partial update into the clip.
func (s *Store) UpdateClipProperties(clipID string, update timeline.ClipUpdate) bool {
	track, _ := s.project.FindClip(clipID)
	if track == nil {
		log.Debug(log.CatEngine, "update clip properties: unknown id", "clip_id", clipID)
		return false
	}

	cmd := s.newCommand(cmdUpdateClip, "Update clip properties").snapshotTracks(track.ID)
	cmd.clipID = clipID
	cmd.clipUpdate = update
	s.history.Execute(cmd)
	return true
}

// RemoveClip deletes a single clip, leaving a gap.
func (s *Store) RemoveClip(clipID string) bool {
	return s.RemoveClips([]string{clipID})
}

// RemoveClips deletes the listed clips without shifting anything. Unknown
// ids are skipped; the whole call is a no-op only when none resolve.
func (s *Store) RemoveClips(clipIDs []string) bool {
	affected := s.tracksContaining(clipIDs)
	if len(affected) == 0 {
		log.Debug(log.CatEngine, "remove clips: no ids resolved", "count", len(clipIDs))
		return false
	}

	cmd := s.newCommand(cmdRemoveClips, describeCount("Delete", len(clipIDs), "clip")).
		snapshotTracks(affected...).
		snapshotSelection()
	cmd.clipIDs = clipIDs
	s.history.Execute(cmd)
	return true
}

// RippleDeleteClip removes a clip and closes the gap on its track.
func (s *Store) RippleDeleteClip(clipID string) bool {
	return s.RippleDeleteClips([]string{clipID})
}

// RippleDeleteClips removes the listed clips, closing gaps per track.
// Deletions are processed in descending timeline-start order.
func (s *Store) RippleDeleteClips(clipIDs []string) bool {
	affected := s.tracksContaining(clipIDs)
	if len(affected) == 0 {
		log.Debug(log.CatEngine, "ripple delete: no ids resolved", "count", len(clipIDs))
		return false
	}

	cmd := s.newCommand(cmdRippleDeleteClips, describeCount("Ripple delete", len(clipIDs), "clip")).
		snapshotTracks(affected...).
		snapshotSelection()
	cmd.clipIDs = clipIDs
	s.history.Execute(cmd)
	return true
}

// SplitClip divides a clip in two at splitTime. Splitting at or outside
// the clip's bounds is a boundary no-op.
func (s *Store) SplitClip(clipID string, splitTime float64) bool {
	track, idx := s.project.FindClip(clipID)
	if track == nil {
		log.Debug(log.CatEngine, "split: unknown clip", "clip_id", clipID)
		return false
	}
	clip := track.Clips[idx]
	if splitTime <= clip.TimelineStart || splitTime >= clip.TimelineEnd() {
		log.Debug(log.CatEngine, "split: time outside clip bounds",
			"clip_id", clipID, "time", splitTime,
			"start", clip.TimelineStart, "end", clip.TimelineEnd())
		return false
	}

	cmd := s.newCommand(cmdSplitClip, "Split clip").snapshotTracks(track.ID)
	cmd.clipID = clipID
	cmd.splitTime = splitTime
	cmd.rightID = timeline.FreshID()
	s.history.Execute(cmd)
	return true
}

// MoveClip sets a clip's absolute timeline start. Negative targets are
// clamped to zero. Overlaps with other clips are allowed.
func (s *Store) MoveClip(clipID string, newStart float64) bool {
	track, _ := s.project.FindClip(clipID)
	if track == nil {
		log.Debug(log.CatEngine, "move: unknown clip", "clip_id", clipID)
		return false
	}
	if newStart < 0 {
		log.Debug(log.CatEngine, "move: negative start clamped", "clip_id", clipID, "start", newStart)
		newStart = 0
	}

	cmd := s.newCommand(cmdMoveClip, "Move clip").snapshotTracks(track.ID)
	cmd.clipID = clipID
	cmd.newStart = newStart
	s.history.Execute(cmd)
	return true
}

// MoveClips shifts every resolved clip by delta seconds. The delta is
// clamped so no clip ends up before time zero.
func (s *Store) MoveClips(clipIDs []string, delta float64) bool {
	affected := s.tracksContaining(clipIDs)
	if len(affected) == 0 {
		log.Debug(log.CatEngine, "move clips: no ids resolved", "count", len(clipIDs))
		return false
	}

	if delta < 0 {
		// Earliest start among the moved clips bounds how far left we go.
		earliest := -1.0
		for _, trackID := range affected {
			track := s.project.TrackByID(trackID)
			for _, c := range track.Clips {
				if containsID(clipIDs, c.ID) && (earliest < 0 || c.TimelineStart < earliest) {
					earliest = c.TimelineStart
				}
			}
		}
		if earliest >= 0 && earliest+delta < 0 {
			log.Debug(log.CatEngine, "move clips: delta clamped at timeline origin",
				"delta", delta, "earliest", earliest)
			delta = -earliest
		}
	}

	cmd := s.newCommand(cmdMoveClips, describeCount("Move", len(clipIDs), "clip")).
		snapshotTracks(affected...)
	cmd.clipIDs = clipIDs
	cmd.delta = delta
	s.history.Execute(cmd)
	return true
}

// TrimClip sets a clip's start and duration in one step. The duration is
// clamped to the configured minimum; the start is clamped to zero.
func (s *Store) TrimClip(clipID string, newStart, newDuration float64) bool {
	track, _ := s.project.FindClip(clipID)
	if track == nil {
		log.Debug(log.CatEngine, "trim: unknown clip", "clip_id", clipID)
		return false
	}
	if newDuration < s.minClipDur {
		log.Debug(log.CatEngine, "trim: duration clamped to minimum",
			"clip_id", clipID, "duration", newDuration, "min", s.minClipDur)
		newDuration = s.minClipDur
	}
	if newStart < 0 {
		log.Debug(log.CatEngine, "trim: negative start clamped", "clip_id", clipID, "start", newStart)
		newStart = 0
	}

	cmd := s.newCommand(cmdTrimClip, "Trim clip").snapshotTracks(track.ID)
	cmd.clipID = clipID
	cmd.newStart = newStart
	cmd.newDuration = newDuration
	s.history.Execute(cmd)
	return true
}

// AddEffect appends an effect to a clip's chain. An empty effect id gets
// a fresh one.
func (s *Store) AddEffect(clipID string, effect timeline.Effect) bool {
	track, _ := s.project.FindClip(clipID)
	if track == nil {
		log.Debug(log.CatEngine, "add effect: unknown clip", "clip_id", clipID)
		return false
	}
	if effect.ID == "" {
		effect.ID = timeline.FreshID()
	}

	cmd := s.newCommand(cmdAddEffect, fmt.Sprintf("Add %s effect", effect.Kind)).
		snapshotTracks(track.ID)
	cmd.clipID = clipID
	cmd.effect = effect
	s.history.Execute(cmd)
	return true
}

// RemoveEffect removes an effect from a clip's chain by effect id.
func (s *Store) RemoveEffect(clipID, effectID string) bool {
	track, idx := s.project.FindClip(clipID)
	if track == nil {
		log.Debug(log.CatEngine, "remove effect: unknown clip", "clip_id", clipID)
		return false
	}
	if !clipHasEffect(track.Clips[idx], effectID) {
		log.Debug(log.CatEngine, "remove effect: unknown effect",
			"clip_id", clipID, "effect_id", effectID)
		return false
	}

	cmd := s.newCommand(cmdRemoveEffect, "Remove effect").snapshotTracks(track.ID)
	cmd.clipID = clipID
	cmd.effectID = effectID
	s.history.Execute(cmd)
	return true
}

// MoveEffect swaps an effect with its neighbor in the given direction
// (-1 = earlier, +1 = later). Moving past an edge is a no-op.
func (s *Store) MoveEffect(clipID string, index, direction int) bool {
	track, idx := s.project.FindClip(clipID)
	if track == nil {
		log.Debug(log.CatEngine, "move effect: unknown clip", "clip_id", clipID)
		return false
	}
	if direction != -1 && direction != 1 {
		return false
	}
	clip := track.Clips[idx]
	target := index + direction
	if index < 0 || index >= len(clip.Effects) || target < 0 || target >= len(clip.Effects) {
		log.Debug(log.CatEngine, "move effect: at chain edge",
			"clip_id", clipID, "index", index, "direction", direction)
		return false
	}

	cmd := s.newCommand(cmdMoveEffect, "Reorder effects").snapshotTracks(track.ID)
	cmd.clipID = clipID
	cmd.effectIndex = index
	cmd.effectDir = direction
	s.history.Execute(cmd)
	return true
}

// AddMarker adds a chapter marker. An empty id gets a fresh one.
func (s *Store) AddMarker(marker timeline.ChapterMarker) bool {
	if marker.ID == "" {
		marker.ID = timeline.FreshID()
	}
	if marker.Time < 0 {
		log.Debug(log.CatEngine, "add marker: negative time clamped", "time", marker.Time)
		marker.Time = 0
	}

	cmd := s.newCommand(cmdAddMarker, "Add chapter marker").snapshotMarkers()
	cmd.marker = marker
	s.history.Execute(cmd)
	return true
}

// RemoveMarker deletes a chapter marker by id.
func (s *Store) RemoveMarker(markerID string) bool {
	if s.project.FindMarker(markerID) == -1 {
		log.Debug(log.CatEngine, "remove marker: unknown id", "marker_id", markerID)
		return false
	}

	cmd := s.newCommand(cmdRemoveMarker, "Remove chapter marker").snapshotMarkers()
	cmd.markerID = markerID
	s.history.Execute(cmd)
	return true
}

// AddOverlay adds a text overlay. An empty id gets a fresh one; an
// out-time before the in-time is clamped up to the in-time.
func (s *Store) AddOverlay(overlay timeline.TextOverlay) bool {
	if overlay.ID == "" {
		overlay.ID = timeline.FreshID()
	}
	if overlay.OutTime < overlay.InTime {
		log.Warn(log.CatEngine, "add overlay: out before in, clamped",
			"overlay_id", overlay.ID, "in", overlay.InTime, "out", overlay.OutTime)
	}
	overlay = clampOverlayTimes(overlay)

	cmd := s.newCommand(cmdAddOverlay, "Add text overlay").snapshotOverlays()
	cmd.overlay = overlay
	s.history.Execute(cmd)
	return true
}

// UpdateOverlay merges a typed partial update into an overlay.
func (s *Store) UpdateOverlay(overlayID string, update timeline.OverlayUpdate) bool {
	if s.project.FindOverlay(overlayID) == -1 {
		log.Debug(log.CatEngine, "update overlay: unknown id", "overlay_id", overlayID)
		return false
	}

	cmd := s.newCommand(cmdUpdateOverlay, "Update text overlay").snapshotOverlays()
	cmd.overlayID = overlayID
	cmd.overlayUpdate = update
	s.history.Execute(cmd)
	return true
}

// RemoveOverlay deletes a text overlay by id.
func (s *Store) RemoveOverlay(overlayID string) bool {
	if s.project.FindOverlay(overlayID) == -1 {
		log.Debug(log.CatEngine, "remove overlay: unknown id", "overlay_id", overlayID)
		return false
	}

	cmd := s.newCommand(cmdRemoveOverlay, "Remove text overlay").snapshotOverlays()
	cmd.overlayID = overlayID
	s.history.Execute(cmd)
	return true
}

// UpdateTrack merges a typed partial update into a track's mix state.
func (s *Store) UpdateTrack(trackID string, update timeline.TrackUpdate) bool {
	track := s.project.TrackByID(trackID)
	if track == nil {
		log.Debug(log.CatEngine, "update track: unknown id", "track_id", trackID)
		return false
	}

	meta := *track
	cmd := s.newCommand(cmdUpdateTrack, "Update track")
	cmd.trackID = trackID
	cmd.trackUpdate = update
	cmd.prevTrackMeta = &meta
	s.history.Execute(cmd)
	return true
}

// ToggleMute flips a track's mute flag.
func (s *Store) ToggleMute(trackID string) bool {
	track := s.project.TrackByID(trackID)
	if track == nil {
		return false
	}
	return s.UpdateTrack(trackID, timeline.TrackUpdate{Muted: timeline.Ptr(!track.Muted)})
}

// ToggleSolo flips a track's solo flag.
func (s *Store) ToggleSolo(trackID string) bool {
	track := s.project.TrackByID(trackID)
	if track == nil {
		return false
	}
	return s.UpdateTrack(trackID, timeline.TrackUpdate{Solo: timeline.Ptr(!track.Solo)})
}

// ToggleLock flips a track's lock flag.
func (s *Store) ToggleLock(trackID string) bool {
	track := s.project.TrackByID(trackID)
	if track == nil {
		return false
	}
	return s.UpdateTrack(trackID, timeline.TrackUpdate{Locked: timeline.Ptr(!track.Locked)})
}

// ToggleRippleEdit flips ripple-edit mode as an undoable command.
func (s *Store) ToggleRippleEdit() {
	cmd := s.newCommand(cmdToggleRippleEdit, "Toggle ripple edit")
	cmd.prevRipple = s.rippleEdit
	s.history.Execute(cmd)
}

// tracksContaining returns the ids of tracks holding any of the clips.
func (s *Store) tracksContaining(clipIDs []string) []string {
	var affected []string
	seen := make(map[string]struct{})
	for _, id := range clipIDs {
		track, _ := s.project.FindClip(id)
		if track == nil {
			continue
		}
		if _, ok := seen[track.ID]; ok {
			continue
		}
		seen[track.ID] = struct{}{}
		affected = append(affected, track.ID)
	}
	return affected
}

func clipHasEffect(c timeline.Clip, effectID string) bool {
	for _, e := range c.Effects {
		if e.ID == effectID {
			return true
		}
	}
	return false
}

func clampOverlayTimes(o timeline.TextOverlay) timeline.TextOverlay {
	if o.OutTime < o.InTime {
		o.OutTime = o.InTime
	}
	return o
}

func containsID(ids []string, id string) bool {
	for _, existing := range ids {
		if existing == id {
			return true
		}
	}
	return false
}

func describeCount(verb string, n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("%s %s", verb, noun)
	}
	return fmt.Sprintf("%s %d %ss", verb, n, noun)
}
