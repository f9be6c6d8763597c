package road

import (
	"testing"
	"time"

	"gotest.tools/v3/assert"
)

func TestPreset_LiteralValues(t *testing.T) {
	tests := []struct {
		level Level
		want  TrackConfig
	}{
		{
			level: LevelEasy,
			want: TrackConfig{
				Level: LevelEasy, SpawnInterval: 1400 * time.Millisecond, ObstacleSpeed: 8,
				RivalBase: 0.25, Visibility: 30, ScoreBase: 12, RivalMultiplier: 0.8,
				CurveAmplitude: 100, LapDistance: 1600, Laps: 3,
			},
		},
		{
			level: LevelMedium,
			want: TrackConfig{
				Level: LevelMedium, SpawnInterval: 1000 * time.Millisecond, ObstacleSpeed: 10,
				RivalBase: 0.4, Visibility: 60, ScoreBase: 15, RivalMultiplier: 1.0,
				CurveAmplitude: 160, LapDistance: 2000, Laps: 3,
			},
		},
		{
			level: LevelExtreme,
			want: TrackConfig{
				Level: LevelExtreme, SpawnInterval: 700 * time.Millisecond, ObstacleSpeed: 13,
				RivalBase: 0.6, Visibility: 110, ScoreBase: 18, RivalMultiplier: 1.25,
				CurveAmplitude: 220, LapDistance: 2400, Laps: 4,
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.level.String(), func(t *testing.T) {
			got, err := Preset(tt.level)
			assert.NilError(t, err)
			assert.Equal(t, got, tt.want)
		})
	}
}

func TestPreset_UnknownLevel(t *testing.T) {
	_, err := Preset(LevelNone)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestValidatePresets(t *testing.T) {
	assert.NilError(t, ValidatePresets())
}

func TestTrackConfig_Validate(t *testing.T) {
	base, err := Preset(LevelMedium)
	assert.NilError(t, err)

	tests := []struct {
		name   string
		mutate func(*TrackConfig)
	}{
		{name: "zero lap distance", mutate: func(c *TrackConfig) { c.LapDistance = 0 }},
		{name: "negative lap distance", mutate: func(c *TrackConfig) { c.LapDistance = -5 }},
		{name: "no laps", mutate: func(c *TrackConfig) { c.Laps = 0 }},
		{name: "no spawn interval", mutate: func(c *TrackConfig) { c.SpawnInterval = 0 }},
		{name: "still obstacles", mutate: func(c *TrackConfig) { c.ObstacleSpeed = 0 }},
		{name: "no score", mutate: func(c *TrackConfig) { c.ScoreBase = 0 }},
		{name: "negative rival", mutate: func(c *TrackConfig) { c.RivalBase = -1 }},
		{name: "negative amplitude", mutate: func(c *TrackConfig) { c.CurveAmplitude = -1 }},
		{name: "visibility overflow", mutate: func(c *TrackConfig) { c.Visibility = 300 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base
			tt.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}

func TestTrackConfig_Derived(t *testing.T) {
	cfg, err := Preset(LevelEasy)
	assert.NilError(t, err)

	assert.Equal(t, cfg.FinishThreshold(), 64.0)
	assert.Equal(t, cfg.SpeedCap(), 14.0)
	assert.Equal(t, cfg.Track().Amplitude, 100.0)
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    Level
		wantErr bool
	}{
		{in: "easy", want: LevelEasy},
		{in: "1", want: LevelEasy},
		{in: " Medium ", want: LevelMedium},
		{in: "3", want: LevelExtreme},
		{in: "EXTREME", want: LevelExtreme},
		{in: "insane", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if tt.wantErr {
				assert.Assert(t, err != nil)
				return
			}
			assert.NilError(t, err)
			assert.Equal(t, got, tt.want)
		})
	}
}

func TestLevel_Title(t *testing.T) {
	assert.Equal(t, LevelExtreme.Title(), "EXTREME")
	assert.Equal(t, Level(42).String(), "none")
}
