package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/golangdaddy/nascar/pkg/config"
	"github.com/golangdaddy/nascar/pkg/log"
)

const envPrefix = "NASCAR"

// Version is set at build time with -ldflags.
var Version = "dev"

var (
	cfgFile  string
	resolved config.Config
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:     "nascar",
	Short:   "Arcade lap racing against a rival",
	Long:    `Dodge traffic on a curving four lane track and beat the rival over a fixed number of laps.`,
	Version: Version,

	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default is $HOME/.nascar.yml)")
	rootCmd.PersistentFlags().StringVar(&config.LogLevel, "log-level", "info",
		"controls the log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&config.LogFormat, "log-format", config.FormatText,
		"controls the log output format (text, json)")
	rootCmd.PersistentFlags().StringVar(&config.LogFilter, "log-filter", "",
		`zapfilter rules, e.g. "*:*,-game.race"`)

	play := newPlayCmd()
	rootCmd.RunE = play.RunE
	rootCmd.Flags().AddFlagSet(play.Flags())

	rootCmd.AddCommand(play)
	rootCmd.AddCommand(newSimCmd())
	rootCmd.AddCommand(newLevelsCmd())
}

// setup resolves the configuration and installs the default logger.
func setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Resolve()
	if err != nil {
		return err
	}
	logger, err := cfg.Logger(os.Stderr)
	if err != nil {
		return err
	}
	log.ResetDefault(logger)
	resolved = cfg
	log.Debug("configuration resolved",
		log.String("command", cmd.Name()),
		log.Stringer("level", cfg.Level),
		log.String("style", cfg.Style),
		log.Stringer("pacing", cfg.Pacing),
		log.Uint64("seed", cfg.Seed),
	)
	return nil
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".nascar" (without extension).
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".nascar")
	}

	viper.SetEnvPrefix(envPrefix)
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}

	bindFlags(rootCmd, viper.GetViper())
	for _, cmd := range rootCmd.Commands() {
		bindFlags(cmd, viper.GetViper())
	}
}

// Bind each cobra flag to its associated viper configuration
// (config file and environment variable)
func bindFlags(cmd *cobra.Command, v *viper.Viper) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		// Environment variables can't have dashes in them, so bind them to their
		// equivalent keys with underscores, e.g. --log-level to NASCAR_LOG_LEVEL
		if strings.Contains(f.Name, "-") {
			envVarSuffix := strings.ToUpper(strings.ReplaceAll(f.Name, "-", "_"))
			if err := v.BindEnv(f.Name,
				fmt.Sprintf("%s_%s", envPrefix, envVarSuffix)); err != nil {
				fmt.Fprintf(os.Stderr, "Could not bind env var %s: %v", f.Name, err)
			}
		}
		// Apply the viper config value to the flag when the flag is not set and viper
		// has a value
		if !f.Changed && v.IsSet(f.Name) {
			val := v.Get(f.Name)
			if err := cmd.Flags().Set(f.Name, fmt.Sprintf("%v", val)); err != nil {
				fmt.Fprintf(os.Stderr, "Could not set flag value for %s: %v", f.Name, err)
			}
		}
	})
}
