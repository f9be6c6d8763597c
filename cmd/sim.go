package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/golangdaddy/nascar/pkg/config"
	"github.com/golangdaddy/nascar/pkg/game"
	"github.com/golangdaddy/nascar/pkg/log"
	"github.com/golangdaddy/nascar/pkg/models/summary"
	"github.com/golangdaddy/nascar/pkg/race"
	"github.com/golangdaddy/nascar/pkg/road"
)

var simJSON bool

func newSimCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sim",
		Short: "Race one level headless with the autopilot and print the summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := resolved
			if cfg.Level == road.LevelNone {
				cfg.Level = road.LevelEasy
			}
			if cfg.Seed == 0 {
				cfg.Seed = uint64(time.Now().UnixNano())
			}

			bus := race.NewEventBus()
			game.LogEvents(bus, log.Default().Named("events"))
			c := game.NewController(bus,
				game.WithSeed(cfg.Seed),
				game.WithPacing(cfg.Pacing),
				game.WithLogger(log.Default().Named("game")),
			)
			s, err := game.RunHeadless(cmd.Context(), c, cfg.Level, game.Autopilot{Boost: cfg.Boost}, cfg.MaxTicks)
			if err != nil {
				return err
			}
			return printSummary(cmd.OutOrStdout(), s, simJSON)
		},
	}
	cmd.Flags().StringVar(&config.Level, "level", "",
		"level to race (easy, medium, extreme), defaults to easy")
	cmd.Flags().Uint64Var(&config.Seed, "seed", 0,
		"random seed, 0 picks one")
	cmd.Flags().IntVar(&config.MaxTicks, "max-ticks", 100000,
		"give up after this many ticks, 0 for no limit")
	cmd.Flags().BoolVar(&config.Boost, "boost", false,
		"let the autopilot boost on a clear road")
	cmd.Flags().StringVar(&config.RivalPacing, "rival-pacing", race.PacingSurge.String(),
		"how the rival boosts (surge, mirror)")
	cmd.Flags().BoolVar(&simJSON, "json", false,
		"print the summary as JSON")
	return cmd
}

func printSummary(w io.Writer, s summary.Summary, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(s)
	}
	_, err := fmt.Fprintf(w,
		"%s\nlevel:    %s\noutcome:  %s\nscore:    %d\nlaps:     %d/%d\nprogress: %.0f vs %s %.1f\ntime:     %s\n",
		s.Verdict(), s.Level, s.Outcome, s.Score, s.Laps, s.LapsTotal,
		s.PlayerProgress, s.RivalName, s.RivalProgress, s.Duration.Round(time.Millisecond))
	return err
}
