package testutil

// WithStandardTimeline adds a small but representative edit: three video
// clips back to back, a second video layer, one audio bed and a pair of
// chapter markers.
func (b *Builder) WithStandardTimeline() *Builder {
	return b.
		WithClip("track-v1", "intro", At(0), Source(0, 5), Label("Intro")).
		WithClip("track-v1", "main", At(5), Source(10, 40), Label("Main take")).
		WithClip("track-v1", "outro", At(35), Source(0, 8), Label("Outro")).
		WithClip("track-v2", "lower-third", At(6), Source(0, 4)).
		WithClip("track-a1", "music", At(0), Source(0, 43), SourcePath("/media/bed.wav")).
		WithMarker("m-intro", "Intro", 0).
		WithMarker("m-main", "Main", 5)
}
