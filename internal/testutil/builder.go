// Package testutil provides builders for timeline fixtures used across
// package tests.
package testutil

import (
	"testing"

	"github.com/itsacoffee/aura-video-studio-sub003/internal/timeline"
)

// clipData holds data for a clip to be placed on a track.
type clipData struct {
	trackID string
	clip    timeline.Clip
}

// Builder accumulates fixture data and assembles a project.
type Builder struct {
	t        *testing.T
	clips    []clipData
	markers  []timeline.ChapterMarker
	overlays []timeline.TextOverlay
}

// NewBuilder creates a fixture builder.
func NewBuilder(t *testing.T) *Builder {
	t.Helper()
	return &Builder{t: t}
}

// WithClip places a clip on the named track with optional configuration.
func (b *Builder) WithClip(trackID, clipID string, opts ...ClipOption) *Builder {
	clip := defaultClip(clipID, trackID)
	for _, opt := range opts {
		opt(&clip)
	}
	b.clips = append(b.clips, clipData{trackID: trackID, clip: clip})
	return b
}

// WithMarker adds a chapter marker.
func (b *Builder) WithMarker(id, title string, time float64) *Builder {
	b.markers = append(b.markers, timeline.ChapterMarker{ID: id, Title: title, Time: time})
	return b
}

// WithOverlay adds a text overlay.
func (b *Builder) WithOverlay(id, text string, in, out float64) *Builder {
	b.overlays = append(b.overlays, timeline.TextOverlay{
		ID:      id,
		Kind:    "text",
		Text:    text,
		InTime:  in,
		OutTime: out,
	})
	return b
}

// Build assembles the accumulated data into a fresh project.
func (b *Builder) Build() *timeline.Project {
	b.t.Helper()
	p := timeline.NewProject()
	for _, cd := range b.clips {
		track := p.TrackByID(cd.trackID)
		if track == nil {
			b.t.Fatalf("builder: unknown track %q", cd.trackID)
		}
		track.Clips = timeline.SortClips(append(track.Clips, cd.clip))
	}
	p.Markers = timeline.SortMarkers(b.markers)
	p.Overlays = timeline.SortOverlays(b.overlays)
	return p
}
