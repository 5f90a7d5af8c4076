package state

import (
	"github.com/itsacoffee/aura-video-studio-sub003/internal/clipboard"
	"github.com/itsacoffee/aura-video-studio-sub003/internal/history"
	"github.com/itsacoffee/aura-video-studio-sub003/internal/log"
	"github.com/itsacoffee/aura-video-studio-sub003/internal/timeline"
)

// Clipboard surface. Copy is not undoable; paste and duplicate are. A
// paste that lands clips on several tracks runs as one history batch so
// a single undo removes everything it inserted.

// CopyClips places deep copies of the resolved clips on the clipboard,
// in timeline order. Unknown ids are skipped.
func (s *Store) CopyClips(clipIDs []string) bool {
	clips := s.resolveClips(clipIDs)
	if len(clips) == 0 {
		log.Debug(log.CatClipboard, "copy: no ids resolved", "count", len(clipIDs))
		return false
	}

	items := make([]clipboard.Item, len(clips))
	for i, c := range clips {
		items[i] = clipboard.NewClipItem(c)
	}
	s.clipboard.Copy(s.ctx, items)
	return true
}

// CopyScene places the resolved clips on the clipboard as one scene item,
// preserving their relative spacing.
func (s *Store) CopyScene(label string, clipIDs []string) bool {
	clips := s.resolveClips(clipIDs)
	if len(clips) == 0 {
		log.Debug(log.CatClipboard, "copy scene: no ids resolved", "count", len(clipIDs))
		return false
	}
	s.clipboard.Copy(s.ctx, []clipboard.Item{clipboard.NewSceneItem(label, clips)})
	return true
}

// PasteClipboard inserts the clipboard contents starting at insertTime.
// Pasted clips get fresh ids and land on the track recorded at copy time,
// falling back to the first track when it no longer exists. Returns the
// ids of the inserted clips, or nil when the clipboard is empty.
func (s *Store) PasteClipboard(insertTime float64) []string {
	if insertTime < 0 {
		insertTime = 0
	}
	items := s.clipboard.Paste(s.ctx, insertTime)
	if len(items) == 0 {
		log.Debug(log.CatClipboard, "paste: clipboard empty")
		return nil
	}
	return s.insertPasted(flattenItems(items), "Paste")
}

// DuplicateClips copies the resolved clips and immediately pastes them
// after the latest selected clip's end. Returns the new clip ids.
func (s *Store) DuplicateClips(clipIDs []string) []string {
	originals := s.resolveClips(clipIDs)
	if len(originals) == 0 {
		log.Debug(log.CatClipboard, "duplicate: no ids resolved", "count", len(clipIDs))
		return nil
	}
	end := 0.0
	for _, c := range originals {
		if c.TimelineEnd() > end {
			end = c.TimelineEnd()
		}
	}
	items := make([]clipboard.Item, len(originals))
	for i, c := range originals {
		items[i] = clipboard.NewClipItem(c)
	}
	pasted := s.clipboard.Duplicate(s.ctx, items, end)
	return s.insertPasted(flattenItems(pasted), "Duplicate")
}

// ClipboardHasData reports whether a paste would insert anything.
func (s *Store) ClipboardHasData() bool {
	return s.clipboard.HasData(s.ctx)
}

// ClearClipboard empties the clipboard, including its durable copy.
func (s *Store) ClearClipboard() {
	s.clipboard.Clear(s.ctx)
}

// insertPasted groups fully-prepared clips by destination track and runs
// the inserts as a single batch command.
func (s *Store) insertPasted(clips []timeline.Clip, verb string) []string {
	byTrack := make(map[string][]timeline.Clip)
	var order []string
	fallback := s.project.Tracks[0].ID
	for _, clip := range clips {
		trackID := clip.TrackID
		if s.project.TrackByID(trackID) == nil {
			log.Warn(log.CatClipboard, "paste: source track gone, using fallback",
				"track_id", trackID, "fallback", fallback)
			trackID = fallback
			clip.TrackID = trackID
		}
		if _, ok := byTrack[trackID]; !ok {
			order = append(order, trackID)
		}
		byTrack[trackID] = append(byTrack[trackID], clip)
	}

	batch := history.NewBatch(describeCount(verb, len(clips), "clip"))
	for _, trackID := range order {
		cmd := s.newCommand(cmdInsertClips, verb).snapshotTracks(trackID)
		cmd.trackID = trackID
		cmd.clips = byTrack[trackID]
		batch.Add(cmd)
	}
	s.history.Execute(batch)

	ids := make([]string, len(clips))
	for i, clip := range clips {
		ids[i] = clip.ID
	}
	return ids
}

func flattenItems(items []clipboard.Item) []timeline.Clip {
	var clips []timeline.Clip
	for _, item := range items {
		clips = append(clips, item.Clips...)
	}
	return clips
}

// resolveClips maps ids to live clips, dropping unknowns, and returns
// them sorted by timeline position.
func (s *Store) resolveClips(clipIDs []string) []timeline.Clip {
	var clips []timeline.Clip
	for _, id := range clipIDs {
		track, idx := s.project.FindClip(id)
		if track == nil {
			log.Debug(log.CatClipboard, "unknown clip skipped", "clip_id", id)
			continue
		}
		clips = append(clips, track.Clips[idx])
	}
	return timeline.SortClips(clips)
}
