package race

import (
	"time"

	"github.com/golangdaddy/nascar/pkg/log"
	"github.com/golangdaddy/nascar/pkg/models"
	"github.com/golangdaddy/nascar/pkg/models/summary"
	"github.com/golangdaddy/nascar/pkg/vehicle"
)

const (
	// ratchetRate is the obstacle speed gained per millisecond on a ratchet tick.
	ratchetRate = 0.004
	// ratchetEvery is the progress step at which obstacles speed up.
	ratchetEvery = 10

	// FinishGateStartY is where the finish gate appears above the screen.
	FinishGateStartY = -200.0
	// FinishGateSpeed is how far the gate descends per tick.
	FinishGateSpeed = 2.0
	// FinishGateCrossY is the gate position at which the player has crossed it.
	FinishGateCrossY = vehicle.PlayerY - 200
)

// progress runs the end-of-tick progression rules and reports whether the race ended.
func (s *Simulation) progress(dt time.Duration) bool {
	s.ratchet(dt)
	if s.wrapLaps() {
		return true
	}
	if s.descendFinishGate() {
		return true
	}
	s.approachFinish()
	return false
}

func (s *Simulation) ratchet(dt time.Duration) {
	st := s.state
	p := int(st.PlayerProgress)
	if p == 0 || p%ratchetEvery != 0 {
		return
	}
	ms := float64(dt) / float64(time.Millisecond)
	st.ObstacleSpeed = min(st.ObstacleSpeed+ratchetRate*ms, s.cfg.SpeedCap())
}

func (s *Simulation) wrapLaps() bool {
	st := s.state
	for st.TrackDistance >= s.cfg.LapDistance {
		st.Laps++
		st.TrackDistance -= s.cfg.LapDistance
		bonus := 3 * s.cfg.ScoreBase
		st.Score += bonus
		s.emit(Event{Type: EventLapCompleted, Lap: st.Laps, Points: bonus})
		s.logger.Info("lap completed",
			log.Int("lap", st.Laps),
			log.Int("laps_total", st.LapsTotal),
			log.Int("score", st.Score),
		)
		if st.Laps >= st.LapsTotal {
			s.finish()
			return true
		}
	}
	return false
}

// descendFinishGate moves a visible gate toward the player.
func (s *Simulation) descendFinishGate() bool {
	st := s.state
	if st.Finish != models.FinishApproaching {
		return false
	}
	st.FinishMarkerY += FinishGateSpeed
	if st.FinishMarkerY > FinishGateCrossY {
		s.finish()
		return true
	}
	return false
}

func (s *Simulation) approachFinish() {
	st := s.state
	if st.Finish != models.FinishHidden || !st.OnFinalLap() {
		return
	}
	if st.PlayerProgress < s.cfg.FinishThreshold() {
		return
	}
	st.Finish = models.FinishApproaching
	st.FinishMarkerY = FinishGateStartY
	s.emit(Event{Type: EventFinishApproaching})
	s.logger.Debug("finish approaching", log.Float64("progress", st.PlayerProgress))
}

func (s *Simulation) finish() {
	st := s.state
	st.Finish = models.FinishCrossed
	s.emit(Event{Type: EventRaceFinished})
	s.end(summary.OutcomeLapsComplete)
	s.logger.Info("race finished",
		log.Int("score", st.Score),
		log.Int("laps", st.Laps),
		log.Float64("player_progress", st.PlayerProgress),
		log.Float64("rival_progress", st.RivalProgress),
	)
}
