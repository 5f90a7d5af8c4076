// Package timeline defines the authoritative data model for the editing
// engine: tracks, clips, chapter markers and text overlays, together with
// the sort helpers that keep every collection ordered after a mutation.
//
// The model has no behavior beyond shape. All structural transformations
// live in the edit package; all orchestration lives in the state package.
package timeline

import (
	"sort"

	"github.com/google/uuid"
)

// TrackType distinguishes video from audio tracks.
type TrackType string

const (
	TrackVideo TrackType = "video"
	TrackAudio TrackType = "audio"
)

// Effect is a named effect applied to a clip. Params carries the numeric
// knobs of the effect (opacity, blur radius, gain, ...). Order within a
// clip's Effects slice is the application order.
type Effect struct {
	ID     string             `yaml:"id"`
	Kind   string             `yaml:"kind"`
	Params map[string]float64 `yaml:"params,omitempty"`
}

// Clone returns a deep copy of the effect.
func (e Effect) Clone() Effect {
	out := e
	if e.Params != nil {
		out.Params = make(map[string]float64, len(e.Params))
		for k, v := range e.Params {
			out.Params[k] = v
		}
	}
	return out
}

// Clip is a timeline placement of the sub-range [SourceIn, SourceOut) of a
// source media file. All times are seconds.
//
// Invariants: SourceIn < SourceOut, TimelineStart >= 0. Clips on a track
// are kept sorted ascending by TimelineStart after every mutation; overlap
// is permitted by the model but produced only by explicit moves.
type Clip struct {
	ID            string   `yaml:"id"`
	SourcePath    string   `yaml:"source_path"`
	SourceIn      float64  `yaml:"source_in"`
	SourceOut     float64  `yaml:"source_out"`
	TimelineStart float64  `yaml:"timeline_start"`
	TrackID       string   `yaml:"track_id"`
	Label         string   `yaml:"label,omitempty"`
	Effects       []Effect `yaml:"effects,omitempty"`
	LayerIndex    int      `yaml:"layer_index,omitempty"`
}

// Duration returns the clip's length in seconds.
func (c Clip) Duration() float64 {
	return c.SourceOut - c.SourceIn
}

// TimelineEnd returns the clip's exclusive end position on the timeline.
func (c Clip) TimelineEnd() float64 {
	return c.TimelineStart + c.Duration()
}

// Clone returns a deep copy of the clip, including its effects.
func (c Clip) Clone() Clip {
	out := c
	if c.Effects != nil {
		out.Effects = make([]Effect, len(c.Effects))
		for i, e := range c.Effects {
			out.Effects[i] = e.Clone()
		}
	}
	return out
}

// Track holds an ordered sequence of clips plus per-track mix state.
// Volume is 0-200 (100 = unity), Pan is -100..100 (0 = center).
type Track struct {
	ID            string    `yaml:"id"`
	Name          string    `yaml:"name"`
	Type          TrackType `yaml:"type"`
	Clips         []Clip    `yaml:"clips"`
	Muted         bool      `yaml:"muted"`
	Solo          bool      `yaml:"solo"`
	Volume        int       `yaml:"volume"`
	Pan           int       `yaml:"pan"`
	Locked        bool      `yaml:"locked"`
	Height        int       `yaml:"height"`
	CompositeMode string    `yaml:"composite_mode,omitempty"`
}

// Clone returns a deep copy of the track and all its clips.
func (t Track) Clone() Track {
	out := t
	out.Clips = CloneClips(t.Clips)
	return out
}

// ChapterMarker is a named point on the global timeline.
// Markers are kept sorted ascending by Time.
type ChapterMarker struct {
	ID    string  `yaml:"id"`
	Title string  `yaml:"title"`
	Time  float64 `yaml:"time"`
}

// TextOverlay is a timed text element. Overlays are kept sorted ascending
// by InTime; InTime <= OutTime is enforced by the state layer on add/update.
type TextOverlay struct {
	ID                string  `yaml:"id"`
	Kind              string  `yaml:"kind"`
	Text              string  `yaml:"text"`
	InTime            float64 `yaml:"in_time"`
	OutTime           float64 `yaml:"out_time"`
	Alignment         string  `yaml:"alignment,omitempty"`
	X                 float64 `yaml:"x"`
	Y                 float64 `yaml:"y"`
	FontSize          int     `yaml:"font_size"`
	FontColor         string  `yaml:"font_color,omitempty"`
	BackgroundColor   string  `yaml:"background_color,omitempty"`
	BackgroundOpacity float64 `yaml:"background_opacity"`
	BorderWidth       int     `yaml:"border_width"`
	BorderColor       string  `yaml:"border_color,omitempty"`
}

// FreshID returns a new unique id for clips, markers and overlays.
func FreshID() string {
	return uuid.NewString()
}

// CloneClips deep-copies a clip slice.
func CloneClips(clips []Clip) []Clip {
	if clips == nil {
		return nil
	}
	out := make([]Clip, len(clips))
	for i, c := range clips {
		out[i] = c.Clone()
	}
	return out
}

// SortClips returns the clips sorted ascending by TimelineStart.
// The sort is stable so clips sharing a start keep their relative order.
// The input slice is not modified.
func SortClips(clips []Clip) []Clip {
	out := make([]Clip, len(clips))
	copy(out, clips)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].TimelineStart < out[j].TimelineStart
	})
	return out
}

// SortMarkers returns the markers sorted ascending by Time.
func SortMarkers(markers []ChapterMarker) []ChapterMarker {
	out := make([]ChapterMarker, len(markers))
	copy(out, markers)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Time < out[j].Time
	})
	return out
}

// SortOverlays returns the overlays sorted ascending by InTime.
func SortOverlays(overlays []TextOverlay) []TextOverlay {
	out := make([]TextOverlay, len(overlays))
	copy(out, overlays)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].InTime < out[j].InTime
	})
	return out
}

// ClipsSorted reports whether the clips are ordered ascending by
// TimelineStart. Exposed for tests and debug assertions.
func ClipsSorted(clips []Clip) bool {
	for i := 1; i < len(clips); i++ {
		if clips[i].TimelineStart < clips[i-1].TimelineStart {
			return false
		}
	}
	return true
}
