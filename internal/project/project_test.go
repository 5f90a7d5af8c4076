package project_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/itsacoffee/aura-video-studio-sub003/internal/project"
	"github.com/itsacoffee/aura-video-studio-sub003/internal/timeline"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	p := timeline.NewProject()
	track := p.TrackByID("track-v1")
	track.Clips = []timeline.Clip{
		{
			ID:            "c1",
			SourcePath:    "/media/a.mp4",
			SourceOut:     5,
			TimelineStart: 0,
			TrackID:       "track-v1",
			Label:         "intro",
		},
		{
			ID:            "c2",
			SourcePath:    "/media/b.mp4",
			SourceIn:      2,
			SourceOut:     8,
			TimelineStart: 5,
			TrackID:       "track-v1",
		},
	}
	p.Markers = []timeline.ChapterMarker{{ID: "m1", Title: "Intro", Time: 0}}
	p.Overlays = []timeline.TextOverlay{{ID: "o1", Text: "hello", InTime: 1, OutTime: 3}}

	path := filepath.Join(t.TempDir(), "edit.yaml")
	require.NoError(t, project.Save(path, p))

	loaded, err := project.Load(path)
	require.NoError(t, err)
	require.Len(t, loaded.Tracks, len(p.Tracks))
	require.Equal(t, track.Clips, loaded.TrackByID("track-v1").Clips)
	require.Equal(t, p.Markers, loaded.Markers)
	require.Equal(t, p.Overlays, loaded.Overlays)

	v2 := loaded.TrackByID("track-v2")
	require.Equal(t, "V2", v2.Name)
	require.Empty(t, v2.Clips)
}

func TestLoadNormalizesOrderAndTrackIDs(t *testing.T) {
	yaml := `version: 1
tracks:
  - id: track-v1
    name: V1
    type: video
    clips:
      - id: c2
        source_path: /media/b.mp4
        source_in: 0
        source_out: 3
        timeline_start: 10
        track_id: stale-track
      - id: c1
        source_path: /media/a.mp4
        source_in: 0
        source_out: 3
        timeline_start: 0
        track_id: track-v1
markers:
  - id: m2
    title: Later
    time: 60
  - id: m1
    title: Start
    time: 0
`
	path := filepath.Join(t.TempDir(), "edit.yaml")
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0644))

	p, err := project.Load(path)
	require.NoError(t, err)

	clips := p.Tracks[0].Clips
	require.Equal(t, "c1", clips[0].ID)
	require.Equal(t, "c2", clips[1].ID)
	require.Equal(t, "track-v1", clips[1].TrackID)
	require.Equal(t, "m1", p.Markers[0].ID)
}

func TestLoadRejectsBadFiles(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"future version", "version: 99\ntracks:\n  - id: t1\n"},
		{"no tracks", "version: 1\ntracks: []\n"},
		{"missing track id", "version: 1\ntracks:\n  - name: V1\n"},
		{"empty source range", `version: 1
tracks:
  - id: t1
    clips:
      - id: c1
        source_in: 5
        source_out: 5
        timeline_start: 0
`},
		{"not yaml", "{{{"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "edit.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tc.body), 0644))
			_, err := project.Load(path)
			require.Error(t, err)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := project.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestSaveCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "edit.yaml")
	require.NoError(t, project.Save(path, timeline.NewProject()))
	_, err := os.Stat(path)
	require.NoError(t, err)
}
