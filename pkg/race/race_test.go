package race

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/golangdaddy/nascar/pkg/data"
	"github.com/golangdaddy/nascar/pkg/log"
	"github.com/golangdaddy/nascar/pkg/models"
	"github.com/golangdaddy/nascar/pkg/models/car"
	"github.com/golangdaddy/nascar/pkg/models/summary"
	"github.com/golangdaddy/nascar/pkg/road"
	"github.com/golangdaddy/nascar/pkg/vehicle"
)

const tick = 16 * time.Millisecond

func newTestSim(t *testing.T, level road.Level, opts ...Option) *Simulation {
	t.Helper()
	cfg, err := road.Preset(level)
	require.NoError(t, err)
	opts = append([]Option{
		WithRand(rand.New(rand.NewPCG(1, 2))),
		WithPacing(PacingMirror),
		WithLogger(log.NewNop()),
	}, opts...)
	s, err := New(cfg, opts...)
	require.NoError(t, err)
	return s
}

// addPassing places an obstacle in the leftmost lane that leaves the play
// area on the next tick.
func addPassing(s *Simulation) *car.Car {
	st := s.State()
	lane := s.Track().Layout(st.TrackDistance).Lanes[0]
	c := st.Obstacles.Add(0, lane)
	c.Y = car.PassedY - st.ObstacleSpeed + 1
	return c
}

func eventTypes(events []Event) []EventType {
	return lo.Map(events, func(e Event, _ int) EventType { return e.Type })
}

func TestNew_RejectsInvalidConfig(t *testing.T) {
	cfg, err := road.Preset(road.LevelEasy)
	require.NoError(t, err)
	cfg.LapDistance = 0

	_, err = New(cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, road.ErrInvalidConfig)
}

func TestStep_DodgeWithoutBoost(t *testing.T) {
	s := newTestSim(t, road.LevelEasy)
	addPassing(s)

	res := s.Step(tick, Input{})

	st := s.State()
	assert.Equal(t, 12, st.Score)
	assert.Equal(t, 1.0, st.PlayerProgress)
	assert.Equal(t, 40.0, st.TrackDistance)
	assert.Zero(t, st.Obstacles.Len())
	assert.Equal(t, []EventType{EventObstaclePassed, EventPraised}, eventTypes(res.Events))
	assert.Equal(t, 12, res.Events[0].Points)
	assert.Contains(t, data.Praise, res.Events[1].Text)
	assert.Equal(t, res.Events[1].Text, st.Praise.Text)
	assert.Equal(t, PraiseLifetime-tick, st.Praise.Remaining)
	assert.False(t, res.Ended)
}

func TestStep_DodgeWhileBoosting(t *testing.T) {
	s := newTestSim(t, road.LevelEasy)
	addPassing(s)

	res := s.Step(tick, Input{Boost: true})

	st := s.State()
	assert.Equal(t, 18, st.Score)
	assert.Equal(t, 65.0, st.TrackDistance)
	assert.Equal(t, []EventType{EventBoostStarted, EventObstaclePassed, EventPraised}, eventTypes(res.Events))
	assert.True(t, st.Boosting)
}

func TestStep_BoostStartedOnRisingEdgeOnly(t *testing.T) {
	s := newTestSim(t, road.LevelEasy)

	var starts int
	for _, boost := range []bool{true, true, false, true} {
		res := s.Step(tick, Input{Boost: boost})
		starts += lo.CountBy(res.Events, func(e Event) bool { return e.Type == EventBoostStarted })
	}
	assert.Equal(t, 2, starts)
}

func TestStep_LapWrap(t *testing.T) {
	s := newTestSim(t, road.LevelEasy)
	st := s.State()
	st.TrackDistance = 1590
	addPassing(s)

	res := s.Step(tick, Input{})

	assert.Equal(t, 1, st.Laps)
	assert.Equal(t, 30.0, st.TrackDistance)
	assert.Equal(t, 12+36, st.Score)
	assert.Equal(t, []EventType{EventObstaclePassed, EventPraised, EventLapCompleted}, eventTypes(res.Events))
	assert.Equal(t, 1, res.Events[2].Lap)
	assert.Equal(t, 36, res.Events[2].Points)
	assert.Equal(t, 48, res.Events[2].Score)
	assert.False(t, res.Ended)
}

func TestStep_LastLapWrapFinishesRace(t *testing.T) {
	s := newTestSim(t, road.LevelEasy)
	st := s.State()
	st.Laps = 2
	st.TrackDistance = 1590
	addPassing(s)

	res := s.Step(tick, Input{})

	assert.True(t, res.Ended)
	assert.True(t, s.Done())
	assert.Equal(t, 3, st.Laps)
	assert.Equal(t, models.FinishCrossed, st.Finish)
	terminal, ok := res.Terminal()
	require.True(t, ok)
	assert.Equal(t, EventRaceFinished, terminal.Type)
	assert.Equal(t, summary.OutcomeLapsComplete, s.Summary().Outcome)
}

func TestStep_FinishApproachesOnce(t *testing.T) {
	s := newTestSim(t, road.LevelEasy)
	st := s.State()
	st.Laps = 2
	st.PlayerProgress = 64

	res := s.Step(tick, Input{})
	assert.Equal(t, []EventType{EventFinishApproaching}, eventTypes(res.Events))
	assert.Equal(t, models.FinishApproaching, st.Finish)
	assert.Equal(t, FinishGateStartY, st.FinishMarkerY)

	res = s.Step(tick, Input{})
	assert.Empty(t, res.Events)
	assert.Equal(t, FinishGateStartY+FinishGateSpeed, st.FinishMarkerY)
}

func TestStep_FinishNotBeforeFinalLap(t *testing.T) {
	s := newTestSim(t, road.LevelEasy)
	st := s.State()
	st.Laps = 1
	st.PlayerProgress = 500

	s.Step(tick, Input{})
	assert.Equal(t, models.FinishHidden, st.Finish)
}

func TestStep_FinishGateCrossing(t *testing.T) {
	s := newTestSim(t, road.LevelEasy)
	st := s.State()
	st.Laps = 2
	st.PlayerProgress = 64
	s.Step(tick, Input{})
	require.Equal(t, models.FinishApproaching, st.Finish)

	var ticks int
	var last Result
	for !s.Done() {
		last = s.Step(tick, Input{})
		ticks++
		require.Less(t, ticks, 1000)
	}

	// -200 + 2*241 = 282 is the first position past the crossing line.
	assert.Equal(t, 241, ticks)
	assert.Equal(t, []EventType{EventRaceFinished}, eventTypes(last.Events))
	assert.Equal(t, models.FinishCrossed, st.Finish)
	assert.Equal(t, 2, st.Laps)
}

func TestStep_RaceEndsAtFinishGate(t *testing.T) {
	s := newTestSim(t, road.LevelEasy)
	st := s.State()

	// One dodge every ten ticks covers a lap in 400 ticks, longer than the
	// gate needs to reach the player once the final lap starts.
	var ticks int
	for !s.Done() {
		if ticks%10 == 0 {
			addPassing(s)
		}
		s.Step(tick, Input{})
		ticks++
		require.Less(t, ticks, 5000)
	}

	assert.Equal(t, models.FinishCrossed, st.Finish)
	assert.Equal(t, st.LapsTotal-1, st.Laps)

	got := s.Summary()
	assert.Equal(t, summary.OutcomeLapsComplete, got.Outcome)
	assert.Equal(t, 2, got.Laps)
	assert.True(t, got.CompletedLaps())
	assert.True(t, got.PlayerWon())
}

func TestStep_Collision(t *testing.T) {
	s := newTestSim(t, road.LevelEasy)
	st := s.State()
	passing := addPassing(s)
	hit := st.Obstacles.Add(1, st.PlayerX)
	hit.Y = vehicle.PlayerY - st.ObstacleSpeed

	res := s.Step(tick, Input{})

	require.True(t, res.Ended)
	assert.Equal(t, []EventType{EventCollision}, eventTypes(res.Events))
	assert.Equal(t, hit.ID, res.Events[0].ObstacleID)
	assert.NotEqual(t, passing.ID, res.Events[0].ObstacleID)
	assert.Zero(t, st.Score, "no pass is scored on a collision tick")
	assert.Zero(t, st.PlayerProgress)
	assert.Equal(t, summary.OutcomeCrashed, s.Summary().Outcome)
}

func TestStep_NoOpAfterEnd(t *testing.T) {
	s := newTestSim(t, road.LevelEasy)
	st := s.State()
	hit := st.Obstacles.Add(1, st.PlayerX)
	hit.Y = vehicle.PlayerY
	s.Step(tick, Input{})
	require.True(t, s.Done())

	before := *st
	res := s.Step(tick, Input{SteerLeft: true, Boost: true})

	assert.True(t, res.Ended)
	assert.Empty(t, res.Events)
	assert.Empty(t, cmp.Diff(before, *st, cmpopts.IgnoreUnexported(models.ObstaclePool{})))
	assert.Nil(t, s.Spawn())
}

func TestStep_IdleTickChangesOnlyRivalAndClock(t *testing.T) {
	s := newTestSim(t, road.LevelMedium)
	st := s.State()
	before := *st

	res := s.Step(tick, Input{})

	assert.Empty(t, res.Events)
	diff := cmp.Diff(before, *st,
		cmpopts.IgnoreFields(models.RaceState{}, "RivalProgress", "Ticks", "Elapsed"),
		cmpopts.IgnoreUnexported(models.ObstaclePool{}),
	)
	assert.Empty(t, diff)
	assert.InDelta(t, 0.04, st.RivalProgress, 1e-9)
	assert.Equal(t, uint64(1), st.Ticks)
}

func TestStep_SteeringIsClampedToRoad(t *testing.T) {
	s := newTestSim(t, road.LevelEasy)
	st := s.State()

	for range 200 {
		s.Step(tick, Input{SteerLeft: true, Boost: true})
	}
	minX, _ := s.Track().Layout(st.TrackDistance).PlayerBounds()
	assert.Equal(t, minX, st.PlayerX)

	for range 200 {
		s.Step(tick, Input{SteerRight: true})
	}
	_, maxX := s.Track().Layout(st.TrackDistance).PlayerBounds()
	assert.Equal(t, maxX, st.PlayerX)
}

func TestStep_Ratchet(t *testing.T) {
	tests := []struct {
		name     string
		progress float64
		speed    float64
		want     float64
	}{
		{name: "multiple of ten", progress: 10, speed: 8, want: 8.4},
		{name: "not a multiple", progress: 11, speed: 8, want: 8},
		{name: "zero progress", progress: 0, speed: 8, want: 8},
		{name: "capped", progress: 20, speed: 13.9, want: 14},
		{name: "fractional progress truncates", progress: 30.5, speed: 8, want: 8.4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestSim(t, road.LevelEasy)
			st := s.State()
			st.PlayerProgress = tt.progress
			st.ObstacleSpeed = tt.speed

			s.Step(100*time.Millisecond, Input{})
			assert.InDelta(t, tt.want, st.ObstacleSpeed, 1e-9)
		})
	}
}

func TestStep_RivalGain(t *testing.T) {
	s := newTestSim(t, road.LevelExtreme)
	st := s.State()

	s.Step(tick, Input{})
	assert.InDelta(t, 0.06, st.RivalProgress, 1e-9)
	assert.False(t, st.RivalBoosting)

	s.Step(tick, Input{Boost: true})
	assert.True(t, st.RivalBoosting, "mirror pacing follows the player")
	assert.InDelta(t, 0.06+0.072, st.RivalProgress, 1e-9)
}

func TestStep_BoundsAndMonotonicCounters(t *testing.T) {
	for _, level := range road.Levels {
		t.Run(level.String(), func(t *testing.T) {
			s := newTestSim(t, level, WithPacing(PacingSurge))
			cfg := s.Config()
			sched := NewSpawnSchedule(cfg.SpawnInterval)
			inputs := rand.New(rand.NewPCG(7, 7))
			st := s.State()

			var score int
			var progress, rival float64
			for i := 0; i < 20000 && !s.Done(); i++ {
				for range sched.Advance(tick) {
					s.Spawn()
				}
				in := Input{
					SteerLeft:  inputs.IntN(3) == 0,
					SteerRight: inputs.IntN(3) == 0,
					Boost:      inputs.IntN(4) == 0,
				}
				res := s.Step(tick, in)

				if !res.Ended {
					minX, maxX := s.Track().Layout(st.TrackDistance).PlayerBounds()
					require.GreaterOrEqual(t, st.PlayerX, minX)
					require.LessOrEqual(t, st.PlayerX, maxX)
					require.GreaterOrEqual(t, st.TrackDistance, 0.0)
					require.Less(t, st.TrackDistance, cfg.LapDistance)
				}
				require.GreaterOrEqual(t, st.Score, score)
				require.GreaterOrEqual(t, st.PlayerProgress, progress)
				require.GreaterOrEqual(t, st.RivalProgress, rival)
				require.LessOrEqual(t, st.ObstacleSpeed, cfg.SpeedCap())
				require.LessOrEqual(t, st.Laps, st.LapsTotal)
				score, progress, rival = st.Score, st.PlayerProgress, st.RivalProgress

				terminals := lo.CountBy(res.Events, func(e Event) bool { return e.Type.Terminal() })
				require.LessOrEqual(t, terminals, 1)
				require.Equal(t, res.Ended, terminals == 1)
			}
		})
	}
}

func TestResult_Terminal(t *testing.T) {
	_, ok := Result{Events: []Event{{Type: EventObstaclePassed}}}.Terminal()
	assert.False(t, ok)

	e, ok := Result{Events: []Event{{Type: EventLapCompleted}, {Type: EventRaceFinished}}}.Terminal()
	assert.True(t, ok)
	assert.Equal(t, EventRaceFinished, e.Type)
}

func TestSimulation_Summary(t *testing.T) {
	s := newTestSim(t, road.LevelMedium)
	st := s.State()
	st.Score = 99
	st.PlayerProgress = 7
	st.RivalProgress = 3
	st.Laps = 1

	got := s.Summary()
	assert.Equal(t, summary.Summary{
		RaceID:         st.ID.String(),
		Level:          road.LevelMedium,
		Score:          99,
		PlayerProgress: 7,
		RivalProgress:  3,
		Laps:           1,
		LapsTotal:      3,
	}, got)
	assert.True(t, got.PlayerWon())
}
