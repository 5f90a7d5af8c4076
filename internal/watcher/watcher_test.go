package watcher_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itsacoffee/aura-video-studio-sub003/internal/watcher"
)

func TestWatcher_DebounceMultipleWrites(t *testing.T) {
	dir := t.TempDir()
	projectPath := filepath.Join(dir, "edit.yaml")
	err := os.WriteFile(projectPath, []byte("tracks: []"), 0644)
	require.NoError(t, err, "failed to create project file")

	w, err := watcher.New(watcher.Config{
		ProjectPath: projectPath,
		DebounceDur: 50 * time.Millisecond,
	})
	require.NoError(t, err, "failed to create watcher")
	defer func() { _ = w.Stop() }()

	onChange, err := w.Start()
	require.NoError(t, err, "failed to start watcher")

	// Rapid writes should coalesce into a single notification.
	for i := 0; i < 10; i++ {
		err := os.WriteFile(projectPath, []byte(fmt.Sprintf("tracks: [] # %d", i)), 0644)
		require.NoError(t, err, "failed to write file")
		time.Sleep(10 * time.Millisecond)
	}

	select {
	case <-onChange:
	case <-time.After(200 * time.Millisecond):
		t.Fatal("expected notification but got timeout")
	}

	select {
	case <-onChange:
		t.Fatal("unexpected second notification")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestWatcher_IgnoresUnrelatedFiles(t *testing.T) {
	dir := t.TempDir()
	projectPath := filepath.Join(dir, "edit.yaml")
	otherPath := filepath.Join(dir, "notes.txt")
	err := os.WriteFile(projectPath, []byte("tracks: []"), 0644)
	require.NoError(t, err, "failed to create project file")
	err = os.WriteFile(otherPath, []byte("initial"), 0644)
	require.NoError(t, err, "failed to create other file")

	w, err := watcher.New(watcher.Config{
		ProjectPath: projectPath,
		DebounceDur: 50 * time.Millisecond,
	})
	require.NoError(t, err, "failed to create watcher")
	defer func() { _ = w.Stop() }()

	onChange, err := w.Start()
	require.NoError(t, err, "failed to start watcher")

	err = os.WriteFile(otherPath, []byte("other content"), 0644)
	require.NoError(t, err, "failed to write other file")

	select {
	case <-onChange:
		t.Fatal("should not notify for unrelated files")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestWatcher_NotifiesOnAtomicReplace(t *testing.T) {
	dir := t.TempDir()
	projectPath := filepath.Join(dir, "edit.yaml")
	tmpPath := filepath.Join(dir, "edit.yaml.tmp")
	err := os.WriteFile(projectPath, []byte("tracks: []"), 0644)
	require.NoError(t, err, "failed to create project file")

	w, err := watcher.New(watcher.Config{
		ProjectPath: projectPath,
		DebounceDur: 50 * time.Millisecond,
	})
	require.NoError(t, err, "failed to create watcher")
	defer func() { _ = w.Stop() }()

	onChange, err := w.Start()
	require.NoError(t, err, "failed to start watcher")

	// Save the way editors do: write a temp file and rename it over.
	err = os.WriteFile(tmpPath, []byte("tracks: [] # v2"), 0644)
	require.NoError(t, err, "failed to write temp file")
	err = os.Rename(tmpPath, projectPath)
	require.NoError(t, err, "failed to rename temp file")

	select {
	case <-onChange:
	case <-time.After(200 * time.Millisecond):
		t.Fatal("expected notification for replaced project file")
	}
}

func TestWatcher_Stop(t *testing.T) {
	dir := t.TempDir()
	projectPath := filepath.Join(dir, "edit.yaml")
	err := os.WriteFile(projectPath, []byte("tracks: []"), 0644)
	require.NoError(t, err, "failed to create project file")

	w, err := watcher.New(watcher.Config{
		ProjectPath: projectPath,
		DebounceDur: 50 * time.Millisecond,
	})
	require.NoError(t, err, "failed to create watcher")

	_, err = w.Start()
	require.NoError(t, err, "failed to start watcher")

	done := make(chan struct{})
	go func() {
		err := w.Stop()
		assert.NoError(t, err, "Stop returned error")
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(1 * time.Second):
		t.Fatal("Stop() timed out")
	}
}

func TestDefaultConfig(t *testing.T) {
	projectPath := "/projects/edit.yaml"
	cfg := watcher.DefaultConfig(projectPath)

	assert.Equal(t, projectPath, cfg.ProjectPath)
	assert.Equal(t, 500*time.Millisecond, cfg.DebounceDur)
}
