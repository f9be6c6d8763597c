package road

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidConfig is returned when a track configuration cannot drive a race.
var ErrInvalidConfig = errors.New("invalid track config")

// Level identifies one of the canonical difficulty presets.
type Level int

const (
	LevelNone Level = iota
	LevelEasy
	LevelMedium
	LevelExtreme
)

// Levels lists the selectable presets in menu order.
var Levels = []Level{LevelEasy, LevelMedium, LevelExtreme}

func (l Level) String() string {
	switch l {
	case LevelEasy:
		return "easy"
	case LevelMedium:
		return "medium"
	case LevelExtreme:
		return "extreme"
	default:
		return "none"
	}
}

// Title is the name shown on menus and the HUD.
func (l Level) Title() string {
	return strings.ToUpper(l.String())
}

func (l Level) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

func (l *Level) UnmarshalText(b []byte) error {
	if string(b) == LevelNone.String() {
		*l = LevelNone
		return nil
	}
	v, err := ParseLevel(string(b))
	if err != nil {
		return err
	}
	*l = v
	return nil
}

// ParseLevel accepts a level name or its menu number.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "easy":
		return LevelEasy, nil
	case "2", "medium":
		return LevelMedium, nil
	case "3", "extreme":
		return LevelExtreme, nil
	}
	return LevelNone, fmt.Errorf("unknown level %q", s)
}

// TrackConfig holds the tuning for one race. It is chosen at level select
// and never changes while the race runs.
type TrackConfig struct {
	Level           Level
	SpawnInterval   time.Duration
	ObstacleSpeed   float64 // pixels per tick at race start
	RivalBase       float64 // rival progress rate
	Visibility      float64 // darkness overlay alpha
	ScoreBase       int     // points per dodged obstacle
	RivalMultiplier float64
	CurveAmplitude  float64
	LapDistance     float64
	Laps            int
}

// Preset returns the canonical configuration for a level.
func Preset(level Level) (TrackConfig, error) {
	switch level {
	case LevelEasy:
		return TrackConfig{
			Level:           LevelEasy,
			SpawnInterval:   1400 * time.Millisecond,
			ObstacleSpeed:   8,
			RivalBase:       0.25,
			Visibility:      30,
			ScoreBase:       12,
			RivalMultiplier: 0.8,
			CurveAmplitude:  100,
			LapDistance:     1600,
			Laps:            3,
		}, nil
	case LevelMedium:
		return TrackConfig{
			Level:           LevelMedium,
			SpawnInterval:   1000 * time.Millisecond,
			ObstacleSpeed:   10,
			RivalBase:       0.4,
			Visibility:      60,
			ScoreBase:       15,
			RivalMultiplier: 1.0,
			CurveAmplitude:  160,
			LapDistance:     2000,
			Laps:            3,
		}, nil
	case LevelExtreme:
		return TrackConfig{
			Level:           LevelExtreme,
			SpawnInterval:   700 * time.Millisecond,
			ObstacleSpeed:   13,
			RivalBase:       0.6,
			Visibility:      110,
			ScoreBase:       18,
			RivalMultiplier: 1.25,
			CurveAmplitude:  220,
			LapDistance:     2400,
			Laps:            4,
		}, nil
	}
	return TrackConfig{}, fmt.Errorf("%w: no preset for level %d", ErrInvalidConfig, level)
}

// Validate checks the values a race divides by or loops on.
func (c TrackConfig) Validate() error {
	switch {
	case c.LapDistance <= 0:
		return fmt.Errorf("%w: lap distance must be positive, got %v", ErrInvalidConfig, c.LapDistance)
	case c.Laps <= 0:
		return fmt.Errorf("%w: laps must be positive, got %d", ErrInvalidConfig, c.Laps)
	case c.SpawnInterval <= 0:
		return fmt.Errorf("%w: spawn interval must be positive, got %v", ErrInvalidConfig, c.SpawnInterval)
	case c.ObstacleSpeed <= 0:
		return fmt.Errorf("%w: obstacle speed must be positive, got %v", ErrInvalidConfig, c.ObstacleSpeed)
	case c.ScoreBase <= 0:
		return fmt.Errorf("%w: score base must be positive, got %d", ErrInvalidConfig, c.ScoreBase)
	case c.RivalBase < 0 || c.RivalMultiplier < 0:
		return fmt.Errorf("%w: rival rates must not be negative", ErrInvalidConfig)
	case c.CurveAmplitude < 0:
		return fmt.Errorf("%w: curve amplitude must not be negative, got %v", ErrInvalidConfig, c.CurveAmplitude)
	case c.Visibility < 0 || c.Visibility > 255:
		return fmt.Errorf("%w: visibility must be within 0..255, got %v", ErrInvalidConfig, c.Visibility)
	}
	return nil
}

// Track builds the geometry for this configuration.
func (c TrackConfig) Track() Track {
	return NewTrack(c.CurveAmplitude)
}

// FinishThreshold is the player progress needed before the finish gate
// shows up on the last lap.
func (c TrackConfig) FinishThreshold() float64 {
	return float64(int(c.LapDistance / 25))
}

// SpeedCap is the highest obstacle speed the ratchet may reach.
func (c TrackConfig) SpeedCap() float64 {
	return c.ObstacleSpeed + 6
}

// ValidatePresets checks every canonical preset. It is meant to run once at startup.
func ValidatePresets() error {
	for _, level := range Levels {
		cfg, err := Preset(level)
		if err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("preset %s: %w", level, err)
		}
	}
	return nil
}
