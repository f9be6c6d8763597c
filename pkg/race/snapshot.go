package race

import (
	"time"

	"github.com/samber/lo"

	"github.com/golangdaddy/nascar/pkg/models"
	"github.com/golangdaddy/nascar/pkg/models/car"
	"github.com/golangdaddy/nascar/pkg/road"
	"github.com/golangdaddy/nascar/pkg/vehicle"
)

// Snapshot is a read-only copy of what a renderer needs for one frame.
type Snapshot struct {
	RaceID string
	Level  road.Level

	Player        vehicle.Box
	Boosting      bool
	Obstacles     []vehicle.Box
	RivalOffset   float64
	RivalBoosting bool

	Road          road.Layout
	TrackDistance float64
	LapDistance   float64
	ObstacleSpeed float64

	Score          int
	Laps           int
	LapsTotal      int
	PlayerProgress float64
	RivalProgress  float64

	Praise          string
	PraiseRemaining time.Duration

	Finish        models.FinishState
	FinishMarkerY float64

	Visibility float64
	Ended      bool
}

// Snapshot copies the current race state for rendering.
func (s *Simulation) Snapshot() Snapshot {
	st := s.state
	snap := Snapshot{
		RaceID:         st.ID.String(),
		Level:          st.Level,
		Player:         st.PlayerBox(),
		Boosting:       st.Boosting,
		Obstacles:      lo.Map(st.Obstacles.All(), func(c *car.Car, _ int) vehicle.Box { return c.Box }),
		RivalOffset:    st.RivalOffset(),
		RivalBoosting:  st.RivalBoosting,
		Road:           s.track.Layout(st.TrackDistance),
		TrackDistance:  st.TrackDistance,
		LapDistance:    s.cfg.LapDistance,
		ObstacleSpeed:  st.ObstacleSpeed,
		Score:          st.Score,
		Laps:           st.Laps,
		LapsTotal:      st.LapsTotal,
		PlayerProgress: st.PlayerProgress,
		RivalProgress:  st.RivalProgress,
		Finish:         st.Finish,
		FinishMarkerY:  st.FinishMarkerY,
		Visibility:     s.cfg.Visibility,
		Ended:          s.ended,
	}
	if st.Praise.Active() {
		snap.Praise = st.Praise.Text
		snap.PraiseRemaining = st.Praise.Remaining
	}
	return snap
}
