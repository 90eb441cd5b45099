package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/inamate/sceneedit/internal/config"
)

// NewRootCommand creates the root cobra command for sceneedit
func NewRootCommand() *cobra.Command {
	cfg := &config.Config{}

	cmd := &cobra.Command{
		Use:   "sceneedit",
		Short: "Headless 2D scene editor",
		Long: `sceneedit edits a document of rectangles with undo/redo, parent-child
move propagation and constrained dragging. Serve it over HTTP and websockets,
or replay scripted editing sessions from YAML.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			*cfg = *loaded

			var level slog.Level
			if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
				return fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
			return nil
		},
	}

	cmd.AddCommand(NewServeCommand(cfg))
	cmd.AddCommand(NewReplayCommand(cfg))
	cmd.AddCommand(NewTokenCommand(cfg))

	return cmd
}
