package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/itsacoffee/aura-video-studio-sub003/internal/config"
	"github.com/itsacoffee/aura-video-studio-sub003/internal/log"
)

var (
	version = "dev"
	cfgFile string
	debug   bool
	cfg     config.Config
)

var rootCmd = &cobra.Command{
	Use:     "aura-studio",
	Short:   "A timeline editing engine for video projects",
	Long:    `Inspect and transform video project files: multi-track timelines with clips, chapter markers and text overlays, with full undo history and a durable clipboard.`,
	Version: version,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: ~/.config/aura-studio/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false,
		"enable debug logging to stderr")
}

func initConfig() {
	defaults := config.Defaults()
	viper.SetDefault("history_limit", defaults.HistoryLimit)
	viper.SetDefault("min_clip_duration", defaults.MinClipDuration)
	viper.SetDefault("clipboard.db_path", defaults.Clipboard.DBPath)
	viper.SetDefault("clipboard.cache_ttl", defaults.Clipboard.CacheTTL)
	viper.SetDefault("log.enabled", defaults.Log.Enabled)
	viper.SetDefault("log.level", defaults.Log.Level)

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Config lookup order:
		// 1. .aura-studio/config.yaml (current directory)
		// 2. ~/.config/aura-studio/config.yaml (user config)
		if _, err := os.Stat(".aura-studio/config.yaml"); err == nil {
			viper.SetConfigFile(".aura-studio/config.yaml")
		} else {
			home, _ := os.UserHomeDir()
			viper.AddConfigPath(filepath.Join(home, ".config", "aura-studio"))
			viper.SetConfigName("config")
			viper.SetConfigType("yaml")
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			fmt.Fprintf(os.Stderr, "warning: reading config: %v\n", err)
		}
		// Continue with defaults when no file exists.
	}

	_ = viper.Unmarshal(&cfg)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: invalid config, using defaults: %v\n", err)
		cfg = config.Defaults()
	}

	initLogging()
}

func initLogging() {
	if debug {
		log.InitWithWriter(os.Stderr)
		log.SetMinLevel(log.LevelDebug)
		log.SetEnabled(true)
		return
	}
	if !cfg.Log.Enabled {
		return
	}
	path := cfg.Log.Path
	if path == "" {
		path = filepath.Join(filepath.Dir(config.DefaultConfigPath()), "aura-studio.log")
	}
	if _, err := log.Init(path); err != nil {
		fmt.Fprintf(os.Stderr, "warning: opening log file: %v\n", err)
		return
	}
	log.SetMinLevel(log.ParseLevel(cfg.Log.Level))
	log.SetEnabled(true)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string (called from main with ldflags).
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}
