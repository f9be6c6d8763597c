package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/golangdaddy/nascar/pkg/audio"
	"github.com/golangdaddy/nascar/pkg/config"
	"github.com/golangdaddy/nascar/pkg/game"
	"github.com/golangdaddy/nascar/pkg/log"
	"github.com/golangdaddy/nascar/pkg/race"
	"github.com/golangdaddy/nascar/pkg/road"
	"github.com/golangdaddy/nascar/pkg/timeutil"
	"github.com/golangdaddy/nascar/pkg/ui"
)

func newPlayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Open the game window (default)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(resolved)
		},
	}
	cmd.Flags().StringVar(&config.Style, "style", config.StyleVector,
		"renderer style (vector, pixel)")
	cmd.Flags().StringVar(&config.RivalPacing, "rival-pacing", race.PacingSurge.String(),
		"how the rival boosts (surge, mirror)")
	cmd.Flags().BoolVar(&config.Mute, "mute", false,
		"disable sound effects")
	cmd.Flags().Float64Var(&config.Volume, "volume", 0.6,
		"sound effect volume (0..1)")
	cmd.Flags().Uint64Var(&config.Seed, "seed", 0,
		"random seed, 0 picks one")
	cmd.Flags().Float64Var(&config.WindowScale, "window-scale", 1,
		"window size relative to 900x600")
	cmd.Flags().StringVar(&config.Level, "level", "",
		"start straight into a level (easy, medium, extreme)")
	return cmd
}

func runPlay(cfg config.Config) error {
	if err := road.ValidatePresets(); err != nil {
		return err
	}
	logger := log.Default()
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	bus := race.NewEventBus()
	game.LogEvents(bus, logger.Named("events"))

	var player audio.Player = audio.Silent{}
	if !cfg.Mute {
		player = audio.New(logger.Named("audio"), cfg.Volume)
	}
	defer player.Close()
	audio.Attach(bus, player)

	c := game.NewController(bus,
		game.WithSeed(seed),
		game.WithPacing(cfg.Pacing),
		game.WithLogger(logger.Named("game")),
	)
	if cfg.Level != road.LevelNone {
		if err := c.Start(cfg.Level); err != nil {
			return err
		}
	}

	g, err := game.NewGame(c, ui.NewRenderer(cfg.Style, int64(seed)), timeutil.RealClock{}, seed)
	if err != nil {
		return err
	}
	logger.Info("window opening", log.String("style", cfg.Style), log.Uint64("seed", seed))
	return game.Run(g, cfg.WindowScale)
}
