package commands

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/latticewalk/explorer"
	"github.com/katalvlaran/latticewalk/internal/render"
	"github.com/katalvlaran/latticewalk/internal/report"
)

const (
	runCmdUse   = "run"
	runCmdShort = "Drive a search and print per-round progress"

	mapFlag       = "map"
	mapRadiusFlag = "map-radius"
	keepBadFlag   = "keep-bad"
	roundsFlag    = "rounds"
)

// NewRunCommand creates the run subcommand.
func NewRunCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   runCmdUse,
		Short: runCmdShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSearch(cmd, configPath)
		},
	}

	addSearchFlags(cmd, &configPath)
	cmd.Flags().Bool(mapFlag, false, "draw the discovered region")
	cmd.Flags().Int(mapRadiusFlag, 30, "largest map radius to draw")
	cmd.Flags().Bool(keepBadFlag, false, "keep earlier rejected points on the map")
	cmd.Flags().Bool(roundsFlag, true, "print the per-round table")

	return cmd
}

func runSearch(cmd *cobra.Command, configPath string) error {
	s, err := newSearch(cmd, configPath)
	if err != nil {
		return err
	}

	summary := report.NewSummary(s.cfg.Search.Target)
	canvas := render.NewCanvas(s.cfg.Output.KeepBad)
	_, err = s.drive(cmd.Context(), func(snap explorer.Snapshot) {
		summary.Add(snap)
		canvas.Add(snap)
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if s.cfg.Output.Rounds {
		if err := summary.RenderTable(out); err != nil {
			return err
		}
	}
	if s.cfg.Output.Map {
		if err := canvas.Render(out, s.cfg.Output.MapRadius); err != nil {
			return err
		}
	}

	return summary.RenderStatus(out)
}
