// Package edit implements the invariant-preserving transformations over the
// timeline model: split, delete, ripple delete, move, trim and effect edits.
//
// Every operation is pure: it takes a clip slice and returns a new one,
// never mutating shared references in place. A boundary or missing-id
// condition returns the input slice unchanged together with a false applied
// flag, so callers can observe the no-op without treating it as a failure.
// Only the clip actually touched is cloned; untouched clips are shared with
// the input, which keeps command pre-state snapshots cheap.
package edit

import (
	"github.com/itsacoffee/aura-video-studio-sub003/internal/timeline"
)

// withClip copies the slice, replaces the clip with the given id by fn's
// result, and re-sorts. Returns the input unchanged when the id is absent.
func withClip(clips []timeline.Clip, clipID string, fn func(timeline.Clip) timeline.Clip) ([]timeline.Clip, bool) {
	for i := range clips {
		if clips[i].ID != clipID {
			continue
		}
		out := make([]timeline.Clip, len(clips))
		copy(out, clips)
		out[i] = fn(clips[i].Clone())
		return timeline.SortClips(out), true
	}
	return clips, false
}

// Insert adds a clip to the slice and re-sorts by TimelineStart.
func Insert(clips []timeline.Clip, c timeline.Clip) []timeline.Clip {
	out := make([]timeline.Clip, 0, len(clips)+1)
	out = append(out, clips...)
	out = append(out, c)
	return timeline.SortClips(out)
}

// Update merges a typed partial update into the clip and re-sorts, since
// the update may change TimelineStart.
func Update(clips []timeline.Clip, clipID string, u timeline.ClipUpdate) ([]timeline.Clip, bool) {
	return withClip(clips, clipID, func(c timeline.Clip) timeline.Clip {
		return c.Apply(u)
	})
}

// Replace swaps the clip with the same id for the given value and re-sorts.
func Replace(clips []timeline.Clip, c timeline.Clip) ([]timeline.Clip, bool) {
	return withClip(clips, c.ID, func(timeline.Clip) timeline.Clip {
		return c.Clone()
	})
}

// Move sets a clip's absolute TimelineStart and re-sorts. No collision
// detection is performed; overlaps are allowed to result.
func Move(clips []timeline.Clip, clipID string, newStart float64) ([]timeline.Clip, bool) {
	return withClip(clips, clipID, func(c timeline.Clip) timeline.Clip {
		c.TimelineStart = newStart
		return c
	})
}

// MoveBy shifts every listed clip present in the slice by delta seconds.
// Returns the number of clips moved; ids not present are skipped.
func MoveBy(clips []timeline.Clip, clipIDs []string, delta float64) ([]timeline.Clip, int) {
	wanted := make(map[string]struct{}, len(clipIDs))
	for _, id := range clipIDs {
		wanted[id] = struct{}{}
	}

	moved := 0
	out := make([]timeline.Clip, len(clips))
	for i, c := range clips {
		if _, ok := wanted[c.ID]; ok {
			c = c.Clone()
			c.TimelineStart += delta
			moved++
		}
		out[i] = c
	}
	if moved == 0 {
		return clips, 0
	}
	return timeline.SortClips(out), moved
}

// Trim replaces a clip's TimelineStart and duration in one step. The new
// duration is realized by moving SourceOut; SourceIn is untouched. The
// caller is responsible for clamping newDuration to a positive minimum
// before calling.
func Trim(clips []timeline.Clip, clipID string, newStart, newDuration float64) ([]timeline.Clip, bool) {
	return withClip(clips, clipID, func(c timeline.Clip) timeline.Clip {
		c.TimelineStart = newStart
		c.SourceOut = c.SourceIn + newDuration
		return c
	})
}

// Delete removes the listed clips without shifting anything; a gap remains.
// Ids not present are skipped. Returns the number of clips removed.
func Delete(clips []timeline.Clip, clipIDs ...string) ([]timeline.Clip, int) {
	wanted := make(map[string]struct{}, len(clipIDs))
	for _, id := range clipIDs {
		wanted[id] = struct{}{}
	}

	out := make([]timeline.Clip, 0, len(clips))
	removed := 0
	for _, c := range clips {
		if _, ok := wanted[c.ID]; ok {
			removed++
			continue
		}
		out = append(out, c)
	}
	if removed == 0 {
		return clips, 0
	}
	return timeline.SortClips(out), removed
}
