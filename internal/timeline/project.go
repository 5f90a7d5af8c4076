package timeline

// Default track heights in pixels, matching the renderer's initial layout.
const (
	defaultVideoTrackHeight = 60
	defaultAudioTrackHeight = 40
)

// Project is the root of the timeline model: the fixed track set plus the
// global marker and overlay collections.
type Project struct {
	Tracks   []Track         `yaml:"tracks"`
	Markers  []ChapterMarker `yaml:"markers,omitempty"`
	Overlays []TextOverlay   `yaml:"overlays,omitempty"`
}

// NewProject creates a project with the fixed initial track set:
// two video tracks and two audio tracks. Tracks are not created or
// destroyed by any engine operation.
func NewProject() *Project {
	return &Project{
		Tracks: []Track{
			newTrack("track-v1", "V1", TrackVideo),
			newTrack("track-v2", "V2", TrackVideo),
			newTrack("track-a1", "A1", TrackAudio),
			newTrack("track-a2", "A2", TrackAudio),
		},
	}
}

func newTrack(id, name string, typ TrackType) Track {
	height := defaultVideoTrackHeight
	if typ == TrackAudio {
		height = defaultAudioTrackHeight
	}
	return Track{
		ID:            id,
		Name:          name,
		Type:          typ,
		Volume:        100,
		Pan:           0,
		Height:        height,
		CompositeMode: "normal",
	}
}

// Clone returns a deep copy of the whole project.
func (p *Project) Clone() *Project {
	out := &Project{
		Tracks: make([]Track, len(p.Tracks)),
	}
	for i, t := range p.Tracks {
		out.Tracks[i] = t.Clone()
	}
	if p.Markers != nil {
		out.Markers = make([]ChapterMarker, len(p.Markers))
		copy(out.Markers, p.Markers)
	}
	if p.Overlays != nil {
		out.Overlays = make([]TextOverlay, len(p.Overlays))
		copy(out.Overlays, p.Overlays)
	}
	return out
}

// TrackByID returns a pointer into the project's track slice, or nil if the
// id is unknown.
func (p *Project) TrackByID(id string) *Track {
	for i := range p.Tracks {
		if p.Tracks[i].ID == id {
			return &p.Tracks[i]
		}
	}
	return nil
}

// FindClip locates a clip by id across all tracks. Returns the owning track
// and the clip's index within it, or (nil, -1) when the id is not present.
func (p *Project) FindClip(clipID string) (*Track, int) {
	for i := range p.Tracks {
		for j := range p.Tracks[i].Clips {
			if p.Tracks[i].Clips[j].ID == clipID {
				return &p.Tracks[i], j
			}
		}
	}
	return nil, -1
}

// AllClips flattens every track's clips into one slice sorted ascending by
// TimelineStart. Used by cross-track range selection.
func (p *Project) AllClips() []Clip {
	var all []Clip
	for i := range p.Tracks {
		all = append(all, p.Tracks[i].Clips...)
	}
	return SortClips(all)
}

// Duration returns the end time of the last clip across all tracks, or 0
// for an empty project. Overlays and markers past the last clip do not
// extend the duration.
func (p *Project) Duration() float64 {
	var end float64
	for i := range p.Tracks {
		for _, c := range p.Tracks[i].Clips {
			if e := c.TimelineEnd(); e > end {
				end = e
			}
		}
	}
	return end
}

// FindMarker returns the index of the marker with the given id, or -1.
func (p *Project) FindMarker(id string) int {
	for i := range p.Markers {
		if p.Markers[i].ID == id {
			return i
		}
	}
	return -1
}

// FindOverlay returns the index of the overlay with the given id, or -1.
func (p *Project) FindOverlay(id string) int {
	for i := range p.Overlays {
		if p.Overlays[i].ID == id {
			return i
		}
	}
	return -1
}
