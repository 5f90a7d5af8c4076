package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/itsacoffee/aura-video-studio-sub003/internal/project"
	"github.com/itsacoffee/aura-video-studio-sub003/internal/timeline"
)

var chaptersCmd = &cobra.Command{
	Use:   "chapters <project.yaml>",
	Short: "Print a project's chapter markers in YouTube format",
	Long:  `Reads a project file and prints its chapter markers sorted by time, one per line, formatted as M:SS (or H:MM:SS past the hour mark) followed by the title.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := project.Load(args[0])
		if err != nil {
			return fmt.Errorf("loading project: %w", err)
		}
		out := timeline.FormatChapters(p.Markers)
		if out == "" {
			return fmt.Errorf("project has no chapter markers")
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(chaptersCmd)
}
