package cmd

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/itsacoffee/aura-video-studio-sub003/internal/project"
	"github.com/itsacoffee/aura-video-studio-sub003/internal/timeline"
	"github.com/itsacoffee/aura-video-studio-sub003/internal/watcher"
)

var inspectWatch bool

var inspectCmd = &cobra.Command{
	Use:   "inspect <project.yaml>",
	Short: "Summarize a project's tracks, clips, markers and overlays",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		if err := printSummary(cmd.OutOrStdout(), path); err != nil {
			return err
		}
		if !inspectWatch {
			return nil
		}

		w, err := watcher.New(watcher.DefaultConfig(path))
		if err != nil {
			return fmt.Errorf("creating watcher: %w", err)
		}
		defer func() { _ = w.Stop() }()

		onChange, err := w.Start()
		if err != nil {
			return fmt.Errorf("starting watcher: %w", err)
		}

		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

		fmt.Fprintln(cmd.OutOrStdout(), "watching for changes, ctrl-c to stop")
		for {
			select {
			case <-onChange:
				if err := printSummary(cmd.OutOrStdout(), path); err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "reload failed: %v\n", err)
				}
			case <-sig:
				return nil
			}
		}
	},
}

func printSummary(out io.Writer, path string) error {
	p, err := project.Load(path)
	if err != nil {
		return fmt.Errorf("loading project: %w", err)
	}

	fmt.Fprintf(out, "%s\n", path)
	fmt.Fprintf(out, "duration: %s\n", timeline.FormatChapterTime(p.Duration()))
	for i := range p.Tracks {
		t := &p.Tracks[i]
		flags := ""
		if t.Muted {
			flags += " muted"
		}
		if t.Solo {
			flags += " solo"
		}
		if t.Locked {
			flags += " locked"
		}
		fmt.Fprintf(out, "  %-10s %-6s %2d clips%s\n", t.Name, t.Type, len(t.Clips), flags)
		for _, c := range t.Clips {
			label := c.Label
			if label == "" {
				label = c.ID
			}
			fmt.Fprintf(out, "    %8.2f - %8.2f  %s\n", c.TimelineStart, c.TimelineEnd(), label)
		}
	}
	fmt.Fprintf(out, "markers: %d  overlays: %d\n", len(p.Markers), len(p.Overlays))
	return nil
}

func init() {
	inspectCmd.Flags().BoolVarP(&inspectWatch, "watch", "w", false,
		"keep running and re-print the summary when the file changes")
	rootCmd.AddCommand(inspectCmd)
}
