package edit

import (
	"sort"

	"github.com/itsacoffee/aura-video-studio-sub003/internal/timeline"
)

// RippleDelete removes a clip and closes the resulting gap: every remaining
// clip on the same slice whose TimelineStart is strictly greater than the
// removed clip's shifts left by exactly the removed clip's duration.
func RippleDelete(clips []timeline.Clip, clipID string) ([]timeline.Clip, bool) {
	for i, c := range clips {
		if c.ID != clipID {
			continue
		}
		start := c.TimelineStart
		dur := c.Duration()

		out := make([]timeline.Clip, 0, len(clips)-1)
		for j, o := range clips {
			if j == i {
				continue
			}
			if o.TimelineStart > start {
				o = o.Clone()
				o.TimelineStart -= dur
			}
			out = append(out, o)
		}
		return timeline.SortClips(out), true
	}
	return clips, false
}

// RippleDeleteMany removes several clips, possibly across tracks, closing
// gaps per track. Deletions are processed in descending TimelineStart order
// so each removal's left-shift is computed against a track state not yet
// perturbed by a smaller-start removal; for adjacent deleted clips this is
// equivalent to deleting them one at a time right-to-left.
//
// Returns the new track slice and the number of clips removed. Unknown ids
// are skipped.
func RippleDeleteMany(tracks []timeline.Track, clipIDs []string) ([]timeline.Track, int) {
	type target struct {
		trackIdx int
		clipID   string
		start    float64
	}

	var targets []target
	for _, id := range clipIDs {
		for ti := range tracks {
			found := false
			for _, c := range tracks[ti].Clips {
				if c.ID == id {
					targets = append(targets, target{trackIdx: ti, clipID: id, start: c.TimelineStart})
					found = true
					break
				}
			}
			if found {
				break
			}
		}
	}
	if len(targets) == 0 {
		return tracks, 0
	}

	sort.SliceStable(targets, func(i, j int) bool {
		return targets[i].start > targets[j].start
	})

	out := make([]timeline.Track, len(tracks))
	copy(out, tracks)

	removed := 0
	for _, tgt := range targets {
		clips, ok := RippleDelete(out[tgt.trackIdx].Clips, tgt.clipID)
		if !ok {
			continue
		}
		out[tgt.trackIdx].Clips = clips
		removed++
	}
	return out, removed
}
