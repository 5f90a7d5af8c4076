package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const defaultConfigTemplate = `# aura-studio configuration.
# Remove the leading '#' from a setting to override its default.

# Maximum number of undoable edits kept in history.
#history_limit: 50

# Smallest clip duration a trim may leave behind, in seconds.
#min_clip_duration: 0.1

#clipboard:
#  # Sqlite file backing the durable clipboard. Leave empty to keep the
#  # clipboard in memory only.
#  db_path: ~/.config/aura-studio/clipboard.db
#  # How long a clipboard snapshot read from disk stays cached.
#  cache_ttl: 5m

#log:
#  enabled: false
#  level: info
#  path: ~/.config/aura-studio/aura-studio.log
`

// WriteDefaultConfig creates a commented config file at path unless one
// already exists.
func WriteDefaultConfig(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists at %s", path)
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("checking config path: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(defaultConfigTemplate), 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
