package race

import (
	"time"

	"github.com/golangdaddy/nascar/pkg/log"
	"github.com/golangdaddy/nascar/pkg/models/car"
	"github.com/golangdaddy/nascar/pkg/road"
)

// SpawnSchedule is the logical spawn timer. It accumulates frame time and
// reports how many obstacles became due.
type SpawnSchedule struct {
	interval time.Duration
	elapsed  time.Duration
}

// NewSpawnSchedule creates a schedule that makes one spawn due per interval.
func NewSpawnSchedule(interval time.Duration) *SpawnSchedule {
	return &SpawnSchedule{interval: interval}
}

// Advance adds dt and returns the number of spawns due.
func (s *SpawnSchedule) Advance(dt time.Duration) int {
	if s.interval <= 0 || dt <= 0 {
		return 0
	}
	s.elapsed += dt
	due := int(s.elapsed / s.interval)
	s.elapsed -= time.Duration(due) * s.interval
	return due
}

// Reset clears the accumulated time.
func (s *SpawnSchedule) Reset() {
	s.elapsed = 0
}

// Spawn places one obstacle in a random lane of the current road layout.
// It returns nil once the race has ended.
func (s *Simulation) Spawn() *car.Car {
	if s.ended {
		return nil
	}
	layout := s.track.Layout(s.state.TrackDistance)
	lane := s.rng.IntN(road.LaneCount)
	c := s.state.Obstacles.Add(lane, layout.Lanes[lane])
	s.logger.Debug("obstacle spawned",
		log.Uint64("id", c.ID),
		log.Int("lane", lane),
		log.Float64("x", c.X),
	)
	return c
}
