package testutil

import "github.com/itsacoffee/aura-video-studio-sub003/internal/timeline"

// defaultClip returns a five second clip starting at zero.
func defaultClip(id, trackID string) timeline.Clip {
	return timeline.Clip{
		ID:         id,
		SourcePath: "/media/" + id + ".mp4",
		SourceIn:   0,
		SourceOut:  5,
		TrackID:    trackID,
		Label:      id,
	}
}

// ClipOption configures a clip during builder setup.
type ClipOption func(*timeline.Clip)

// At sets the clip's timeline start.
func At(start float64) ClipOption {
	return func(c *timeline.Clip) { c.TimelineStart = start }
}

// Source sets the clip's source range.
func Source(in, out float64) ClipOption {
	return func(c *timeline.Clip) {
		c.SourceIn = in
		c.SourceOut = out
	}
}

// SourcePath sets the clip's media path.
func SourcePath(path string) ClipOption {
	return func(c *timeline.Clip) { c.SourcePath = path }
}

// Label sets the clip's display label.
func Label(label string) ClipOption {
	return func(c *timeline.Clip) { c.Label = label }
}

// WithEffect appends an effect to the clip's chain.
func WithEffect(id, kind string, params map[string]float64) ClipOption {
	return func(c *timeline.Clip) {
		c.Effects = append(c.Effects, timeline.Effect{ID: id, Kind: kind, Params: params})
	}
}
