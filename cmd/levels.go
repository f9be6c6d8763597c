package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/golangdaddy/nascar/pkg/road"
)

func newLevelsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "levels",
		Short: "List the level presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := road.ValidatePresets(); err != nil {
				return err
			}
			return printLevels(cmd.OutOrStdout())
		},
	}
}

func printLevels(out io.Writer) error {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "LEVEL\tSPAWN\tSPEED\tRIVAL\tVISIBILITY\tSCORE\tRIVAL MULT\tCURVE\tLAP\tLAPS")
	for _, level := range road.Levels {
		cfg, err := road.Preset(level)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s\t%s\t%g\t%g\t%g\t%d\t%g\t%g\t%g\t%d\n",
			cfg.Level.Title(), cfg.SpawnInterval, cfg.ObstacleSpeed, cfg.RivalBase, cfg.Visibility,
			cfg.ScoreBase, cfg.RivalMultiplier, cfg.CurveAmplitude, cfg.LapDistance, cfg.Laps)
	}
	return w.Flush()
}
