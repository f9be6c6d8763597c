package config

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/golangdaddy/nascar/pkg/log"
	"github.com/golangdaddy/nascar/pkg/race"
	"github.com/golangdaddy/nascar/pkg/road"
)

// this holds the resolved configuration values from CLI
var (
	LogLevel  string // sets the log level (zap log level values)
	LogFormat string // text vs json
	LogFilter string // zapfilter rules, e.g. "*:*,-game.race"

	Level       string  // level to start with, empty shows the level select
	Style       string  // renderer: vector or pixel
	RivalPacing string  // surge or mirror
	Mute        bool    // disable audio
	Volume      float64 // sound effect volume, 0..1
	Seed        uint64  // random seed, 0 picks one from the clock
	WindowScale float64 // window size relative to 900x600

	MaxTicks int  // sim: stop after this many ticks
	Boost    bool // sim: autopilot boosts whenever the lane ahead is clear
)

const (
	StyleVector = "vector"
	StylePixel  = "pixel"

	FormatText = "text"
	FormatJSON = "json"
)

// ErrInvalid is returned for configuration values that cannot be used.
var ErrInvalid = errors.New("invalid configuration")

// Config holds the configuration values which are used by the application
type Config struct {
	LogLevel  log.Level
	LogFormat string
	LogFilter string

	Level       road.Level
	Style       string
	Pacing      race.Pacing
	Mute        bool
	Volume      float64
	Seed        uint64
	WindowScale float64

	MaxTicks int
	Boost    bool
}

// Resolve converts the flag values into a validated Config.
func Resolve() (Config, error) {
	cfg := Config{
		LogFormat:   strings.ToLower(LogFormat),
		LogFilter:   LogFilter,
		Style:       strings.ToLower(Style),
		Mute:        Mute,
		Volume:      Volume,
		Seed:        Seed,
		WindowScale: WindowScale,
		MaxTicks:    MaxTicks,
		Boost:       Boost,
	}
	var err error
	if cfg.LogLevel, err = log.ParseLevel(LogLevel); err != nil {
		return Config{}, fmt.Errorf("%w: log level: %w", ErrInvalid, err)
	}
	if Level != "" {
		if cfg.Level, err = road.ParseLevel(Level); err != nil {
			return Config{}, fmt.Errorf("%w: %w", ErrInvalid, err)
		}
	}
	if cfg.Pacing, err = race.ParsePacing(RivalPacing); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the values that are not parsed from an enumeration.
func (c Config) Validate() error {
	switch c.Style {
	case StyleVector, StylePixel:
	default:
		return fmt.Errorf("%w: style must be %q or %q, got %q", ErrInvalid, StyleVector, StylePixel, c.Style)
	}
	switch c.LogFormat {
	case FormatText, FormatJSON:
	default:
		return fmt.Errorf("%w: log format must be %q or %q, got %q", ErrInvalid, FormatText, FormatJSON, c.LogFormat)
	}
	if c.Volume < 0 || c.Volume > 1 {
		return fmt.Errorf("%w: volume must be within 0..1, got %v", ErrInvalid, c.Volume)
	}
	if c.WindowScale <= 0 || c.WindowScale > 4 {
		return fmt.Errorf("%w: window scale must be within (0, 4], got %v", ErrInvalid, c.WindowScale)
	}
	if c.MaxTicks < 0 {
		return fmt.Errorf("%w: max ticks must not be negative, got %d", ErrInvalid, c.MaxTicks)
	}
	return nil
}

// Logger builds the root logger described by the configuration.
func (c Config) Logger(out io.Writer) (*log.Logger, error) {
	var opts []log.Option
	if c.LogFilter != "" {
		opt, err := log.WithFilter(c.LogFilter)
		if err != nil {
			return nil, fmt.Errorf("%w: log filter: %w", ErrInvalid, err)
		}
		opts = append(opts, opt)
	}
	if c.LogFormat == FormatJSON {
		return log.New(out, c.LogLevel, opts...), nil
	}
	return log.DevLogger(out, c.LogLevel, opts...), nil
}
