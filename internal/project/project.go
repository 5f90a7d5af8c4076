// Package project persists timeline projects as YAML files.
package project

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/itsacoffee/aura-video-studio-sub003/internal/log"
	"github.com/itsacoffee/aura-video-studio-sub003/internal/timeline"
)

// FormatVersion is written into every saved project and checked on load.
const FormatVersion = 1

// file is the on-disk envelope around the timeline model.
type file struct {
	Version  int                      `yaml:"version"`
	Tracks   []timeline.Track         `yaml:"tracks"`
	Markers  []timeline.ChapterMarker `yaml:"markers,omitempty"`
	Overlays []timeline.TextOverlay   `yaml:"overlays,omitempty"`
}

// Load reads a project file. Slices are normalized into timeline order
// and clip track ids are rewritten to match the track that holds them, so
// hand-edited files stay consistent.
func Load(path string) (*timeline.Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading project: %w", err)
	}

	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing project: %w", err)
	}
	if f.Version > FormatVersion {
		return nil, fmt.Errorf("project format version %d is newer than supported version %d", f.Version, FormatVersion)
	}
	if len(f.Tracks) == 0 {
		return nil, fmt.Errorf("project has no tracks")
	}

	p := &timeline.Project{
		Tracks:   f.Tracks,
		Markers:  timeline.SortMarkers(f.Markers),
		Overlays: timeline.SortOverlays(f.Overlays),
	}
	for i := range p.Tracks {
		track := &p.Tracks[i]
		if track.ID == "" {
			return nil, fmt.Errorf("track %d has no id", i)
		}
		track.Clips = timeline.SortClips(track.Clips)
		for j := range track.Clips {
			clip := &track.Clips[j]
			if clip.ID == "" {
				return nil, fmt.Errorf("track %s clip %d has no id", track.ID, j)
			}
			if clip.SourceIn >= clip.SourceOut {
				return nil, fmt.Errorf("clip %s has an empty source range", clip.ID)
			}
			if clip.TrackID != track.ID {
				log.Debug(log.CatProject, "clip track id corrected",
					"clip_id", clip.ID, "was", clip.TrackID, "now", track.ID)
				clip.TrackID = track.ID
			}
		}
	}

	log.Info(log.CatProject, "project loaded", "path", path, "tracks", len(p.Tracks))
	return p, nil
}

// Save writes the project atomically: marshal to a temp file in the same
// directory, then rename over the target.
func Save(path string, p *timeline.Project) error {
	f := file{
		Version:  FormatVersion,
		Tracks:   p.Tracks,
		Markers:  p.Markers,
		Overlays: p.Overlays,
	}
	data, err := yaml.Marshal(&f)
	if err != nil {
		return fmt.Errorf("marshaling project: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating project directory: %w", err)
	}

	temp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp.*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tempPath := temp.Name()

	if _, err := temp.Write(data); err != nil {
		_ = temp.Close()
		_ = os.Remove(tempPath)
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := temp.Close(); err != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("closing temp file: %w", err)
	}

	if err := os.Rename(tempPath, path); err != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("renaming temp file: %w", err)
	}

	log.Info(log.CatProject, "project saved", "path", path)
	return nil
}
