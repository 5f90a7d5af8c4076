// Package clipboard implements copy/paste/duplicate of a contiguous run of
// timeline items. Copies are deep clones held in memory and mirrored,
// best-effort, to a durable store so the clipboard survives a reload.
package clipboard

import (
	"time"

	"github.com/itsacoffee/aura-video-studio-sub003/internal/timeline"
)

// ItemKind distinguishes single clips from scene groups.
type ItemKind string

const (
	ItemClip  ItemKind = "clip"
	ItemScene ItemKind = "scene"
)

// Item is one clipboard entry: a single clip or a scene (a group of clips
// manipulated as a unit). For a scene, the clips keep their relative
// offsets; rebasing moves the whole group.
type Item struct {
	Kind  ItemKind        `json:"kind"`
	Label string          `json:"label,omitempty"`
	Clips []timeline.Clip `json:"clips"`
}

// NewClipItem wraps a single clip as a clipboard item.
func NewClipItem(c timeline.Clip) Item {
	return Item{Kind: ItemClip, Label: c.Label, Clips: []timeline.Clip{c.Clone()}}
}

// NewSceneItem wraps a clip group as a single clipboard item.
func NewSceneItem(label string, clips []timeline.Clip) Item {
	return Item{Kind: ItemScene, Label: label, Clips: timeline.CloneClips(clips)}
}

// Clone deep-copies the item.
func (i Item) Clone() Item {
	out := i
	out.Clips = timeline.CloneClips(i.Clips)
	return out
}

// Start returns the earliest TimelineStart among the item's clips.
func (i Item) Start() float64 {
	if len(i.Clips) == 0 {
		return 0
	}
	start := i.Clips[0].TimelineStart
	for _, c := range i.Clips[1:] {
		if c.TimelineStart < start {
			start = c.TimelineStart
		}
	}
	return start
}

// Duration returns the item's timeline span: for a clip, its duration; for
// a scene, the distance from its earliest start to its latest end.
func (i Item) Duration() float64 {
	if len(i.Clips) == 0 {
		return 0
	}
	start := i.Start()
	end := start
	for _, c := range i.Clips {
		if e := c.TimelineEnd(); e > end {
			end = e
		}
	}
	return end - start
}

// RebasedTo returns a clone of the item shifted so its earliest clip
// starts at t, preserving internal offsets. Every clip in the clone gets a
// fresh id so pasting never duplicates ids on the timeline.
func (i Item) RebasedTo(t float64) Item {
	out := i.Clone()
	delta := t - i.Start()
	for j := range out.Clips {
		out.Clips[j].ID = timeline.FreshID()
		out.Clips[j].TimelineStart += delta
	}
	return out
}

// Snapshot is the clipboard's stored value: the copied items plus the
// capture timestamp.
type Snapshot struct {
	Items    []Item    `json:"items"`
	CopiedAt time.Time `json:"copied_at"`
}

// Empty reports whether the snapshot holds no items.
func (s Snapshot) Empty() bool {
	return len(s.Items) == 0
}

// Clone deep-copies the snapshot.
func (s Snapshot) Clone() Snapshot {
	out := Snapshot{CopiedAt: s.CopiedAt}
	if s.Items != nil {
		out.Items = make([]Item, len(s.Items))
		for i, item := range s.Items {
			out.Items[i] = item.Clone()
		}
	}
	return out
}
