package main

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/inamate/sceneedit/internal/config"
	"github.com/inamate/sceneedit/internal/document"
	"github.com/inamate/sceneedit/internal/editor"
	"github.com/inamate/sceneedit/internal/history"
	"github.com/inamate/sceneedit/internal/script"
)

// NewReplayCommand creates the command that replays a YAML script
func NewReplayCommand(cfg *config.Config) *cobra.Command {
	var sample bool

	cmd := &cobra.Command{
		Use:   "replay <script.yaml>",
		Short: "Replay a scripted editing session and print the document",
		Long: `Replay runs every step of a YAML script against a fresh session and prints
the resulting document, selection, viewport and history as JSON.

Example:
  sceneedit replay session.yaml --sample`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := script.Load(args[0])
			if err != nil {
				return err
			}

			fallback := document.NewModel()
			if sample {
				fallback = document.NewSampleDocument()
			}

			session := editor.NewSession(s.Initial(fallback), editor.OptionsFromConfig(cfg))
			results := s.Run(session)
			for _, r := range results {
				slog.Debug("step", "index", r.Index, "op", r.Op, "applied", r.Applied)
			}

			out, err := json.MarshalIndent(replayOutput{
				Script:    s.Name,
				Steps:     results,
				Document:  session.Document().State(),
				Selection: session.Selection().State(),
				Viewport:  session.Viewport().State(),
				History:   session.History(),
			}, "", "  ")
			if err != nil {
				return fmt.Errorf("marshal result: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}

	cmd.Flags().BoolVar(&sample, "sample", false, "Start from the sample document when the script has no nodes")

	return cmd
}

type replayOutput struct {
	Script    string                `json:"script"`
	Steps     []script.StepResult   `json:"steps"`
	Document  document.Model        `json:"document"`
	Selection editor.SelectionState `json:"selection"`
	Viewport  editor.ViewportState  `json:"viewport"`
	History   history.State         `json:"history"`
}
