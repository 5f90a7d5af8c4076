package timeline

// Typed partial updates. Each entity exposes an update struct listing only
// its legal mutable fields; nil pointers mean "leave unchanged". Structural
// fields (ids, track membership, clip ordering) are never updatable here.

// ClipUpdate lists the mutable fields of a clip.
type ClipUpdate struct {
	SourcePath    *string
	SourceIn      *float64
	SourceOut     *float64
	TimelineStart *float64
	Label         *string
	LayerIndex    *int
}

// Apply returns a copy of the clip with the update merged in.
func (c Clip) Apply(u ClipUpdate) Clip {
	out := c.Clone()
	if u.SourcePath != nil {
		out.SourcePath = *u.SourcePath
	}
	if u.SourceIn != nil {
		out.SourceIn = *u.SourceIn
	}
	if u.SourceOut != nil {
		out.SourceOut = *u.SourceOut
	}
	if u.TimelineStart != nil {
		out.TimelineStart = *u.TimelineStart
	}
	if u.Label != nil {
		out.Label = *u.Label
	}
	if u.LayerIndex != nil {
		out.LayerIndex = *u.LayerIndex
	}
	return out
}

// TrackUpdate lists the mutable fields of a track.
type TrackUpdate struct {
	Name          *string
	Muted         *bool
	Solo          *bool
	Locked        *bool
	Volume        *int
	Pan           *int
	Height        *int
	CompositeMode *string
}

// Apply returns a copy of the track with the update merged in.
// The clip list is shared, not cloned; callers mutating clips go through
// the edit operations instead.
func (t Track) Apply(u TrackUpdate) Track {
	out := t
	if u.Name != nil {
		out.Name = *u.Name
	}
	if u.Muted != nil {
		out.Muted = *u.Muted
	}
	if u.Solo != nil {
		out.Solo = *u.Solo
	}
	if u.Locked != nil {
		out.Locked = *u.Locked
	}
	if u.Volume != nil {
		out.Volume = clampInt(*u.Volume, 0, 200)
	}
	if u.Pan != nil {
		out.Pan = clampInt(*u.Pan, -100, 100)
	}
	if u.Height != nil {
		out.Height = *u.Height
	}
	if u.CompositeMode != nil {
		out.CompositeMode = *u.CompositeMode
	}
	return out
}

// OverlayUpdate lists the mutable fields of a text overlay.
type OverlayUpdate struct {
	Text              *string
	InTime            *float64
	OutTime           *float64
	Alignment         *string
	X                 *float64
	Y                 *float64
	FontSize          *int
	FontColor         *string
	BackgroundColor   *string
	BackgroundOpacity *float64
	BorderWidth       *int
	BorderColor       *string
}

// Apply returns a copy of the overlay with the update merged in.
// Time-ordering enforcement (InTime <= OutTime) is the state layer's job.
func (o TextOverlay) Apply(u OverlayUpdate) TextOverlay {
	out := o
	if u.Text != nil {
		out.Text = *u.Text
	}
	if u.InTime != nil {
		out.InTime = *u.InTime
	}
	if u.OutTime != nil {
		out.OutTime = *u.OutTime
	}
	if u.Alignment != nil {
		out.Alignment = *u.Alignment
	}
	if u.X != nil {
		out.X = *u.X
	}
	if u.Y != nil {
		out.Y = *u.Y
	}
	if u.FontSize != nil {
		out.FontSize = *u.FontSize
	}
	if u.FontColor != nil {
		out.FontColor = *u.FontColor
	}
	if u.BackgroundColor != nil {
		out.BackgroundColor = *u.BackgroundColor
	}
	if u.BackgroundOpacity != nil {
		out.BackgroundOpacity = *u.BackgroundOpacity
	}
	if u.BorderWidth != nil {
		out.BorderWidth = *u.BorderWidth
	}
	if u.BorderColor != nil {
		out.BorderColor = *u.BorderColor
	}
	return out
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Ptr returns a pointer to v. Convenience for building update structs.
func Ptr[T any](v T) *T {
	return &v
}
