// Package config provides configuration types and defaults for the
// timeline engine.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Config holds all configuration options.
type Config struct {
	// HistoryLimit bounds the undo stack.
	HistoryLimit int `mapstructure:"history_limit"`

	// MinClipDuration is the smallest clip a trim may leave, in seconds.
	MinClipDuration float64 `mapstructure:"min_clip_duration"`

	Clipboard ClipboardConfig `mapstructure:"clipboard"`
	Log       LogConfig       `mapstructure:"log"`
}

// ClipboardConfig holds durable clipboard settings.
type ClipboardConfig struct {
	// DBPath is the sqlite file backing the clipboard. Empty disables
	// persistence; the clipboard then lives only in memory.
	DBPath string `mapstructure:"db_path"`

	// CacheTTL bounds how long a clipboard snapshot read from the store
	// stays cached before being re-read. Zero means no expiry.
	CacheTTL time.Duration `mapstructure:"cache_ttl"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	// Enabled turns file logging on.
	Enabled bool `mapstructure:"enabled"`

	// Level is the minimum level written: debug, info, warn, error.
	Level string `mapstructure:"level"`

	// Path is the log file location. Empty uses the default path.
	Path string `mapstructure:"path"`
}

// Defaults returns the configuration used when no file is present.
func Defaults() Config {
	return Config{
		HistoryLimit:    50,
		MinClipDuration: 0.1,
		Clipboard: ClipboardConfig{
			DBPath:   DefaultClipboardDBPath(),
			CacheTTL: 5 * time.Minute,
		},
		Log: LogConfig{
			Enabled: false,
			Level:   "info",
		},
	}
}

// Validate checks the configuration for values the engine cannot run with.
func (c Config) Validate() error {
	if c.HistoryLimit < 1 {
		return fmt.Errorf("history_limit must be at least 1, got %d", c.HistoryLimit)
	}
	if c.MinClipDuration <= 0 {
		return fmt.Errorf("min_clip_duration must be positive, got %g", c.MinClipDuration)
	}
	if c.Clipboard.CacheTTL < 0 {
		return fmt.Errorf("clipboard.cache_ttl must not be negative, got %s", c.Clipboard.CacheTTL)
	}
	switch c.Log.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be one of debug, info, warn, error; got %q", c.Log.Level)
	}
	return nil
}

// DefaultClipboardDBPath returns ~/.config/aura-studio/clipboard.db, or
// empty string if the home directory is unavailable.
func DefaultClipboardDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "aura-studio", "clipboard.db")
}

// DefaultConfigPath returns ~/.config/aura-studio/config.yaml, or empty
// string if the home directory is unavailable.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "aura-studio", "config.yaml")
}
