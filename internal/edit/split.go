package edit

import (
	"github.com/itsacoffee/aura-video-studio-sub003/internal/timeline"
)

// Split divides a clip into two contiguous clips at splitTime.
//
// The left half keeps the original id and ends at the split boundary; the
// right half gets a fresh id, starts at splitTime, and resumes the source
// range where the left half ended. Durations are conserved:
// left.Duration() + right.Duration() == original.Duration().
//
// Splitting at or outside the clip's bounds is a deliberate boundary no-op:
// the input slice is returned unchanged and applied is false.
func Split(clips []timeline.Clip, clipID string, splitTime float64) ([]timeline.Clip, bool) {
	return SplitWithID(clips, clipID, splitTime, timeline.FreshID())
}

// SplitWithID is Split with a caller-supplied id for the right half.
// Command redo uses it so re-executing a split reproduces the same id.
func SplitWithID(clips []timeline.Clip, clipID string, splitTime float64, rightID string) (out []timeline.Clip, applied bool) {
	for i, c := range clips {
		if c.ID != clipID {
			continue
		}
		if splitTime <= c.TimelineStart || splitTime >= c.TimelineEnd() {
			return clips, false
		}

		offset := splitTime - c.TimelineStart
		boundary := c.SourceIn + offset

		left := c.Clone()
		left.SourceOut = boundary

		right := c.Clone()
		right.ID = rightID
		right.SourceIn = boundary
		right.TimelineStart = splitTime

		out = make([]timeline.Clip, 0, len(clips)+1)
		out = append(out, clips[:i]...)
		out = append(out, left, right)
		out = append(out, clips[i+1:]...)
		return timeline.SortClips(out), true
	}
	return clips, false
}
