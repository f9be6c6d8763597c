package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/golangdaddy/nascar/pkg/road"
	"github.com/golangdaddy/nascar/pkg/vehicle"
)

// FinishState tracks the finish gate on the last lap.
type FinishState int

const (
	FinishHidden FinishState = iota
	FinishApproaching
	FinishCrossed
)

func (f FinishState) String() string {
	switch f {
	case FinishApproaching:
		return "approaching"
	case FinishCrossed:
		return "crossed"
	default:
		return "hidden"
	}
}

// Praise is an encouragement message shown for a short time after a dodge.
type Praise struct {
	Text      string
	Remaining time.Duration
}

// Active reports whether the message is still on screen.
func (p Praise) Active() bool {
	return p.Text != "" && p.Remaining > 0
}

// RaceState is the authoritative state of one race. Only the simulation mutates it.
type RaceState struct {
	ID    uuid.UUID
	Level road.Level

	PlayerX  float64
	Boosting bool

	Obstacles *ObstaclePool

	TrackDistance float64
	Laps          int
	LapsTotal     int

	PlayerProgress float64
	RivalProgress  float64
	RivalBoosting  bool

	Score         int
	ObstacleSpeed float64

	Finish        FinishState
	FinishMarkerY float64

	Praise Praise

	Ticks   uint64
	Elapsed time.Duration
}

// NewRaceState creates the state for a fresh race on the given track.
func NewRaceState(cfg road.TrackConfig) *RaceState {
	return &RaceState{
		ID:            uuid.New(),
		Level:         cfg.Level,
		PlayerX:       vehicle.PlayerStartX,
		Obstacles:     NewObstaclePool(),
		LapsTotal:     cfg.Laps,
		ObstacleSpeed: cfg.ObstacleSpeed,
		Finish:        FinishHidden,
	}
}

// OnFinalLap reports whether the player is running the last lap.
func (s *RaceState) OnFinalLap() bool {
	return s.Laps >= s.LapsTotal-1
}

// PlayerBox returns the player's bounding box.
func (s *RaceState) PlayerBox() vehicle.Box {
	return vehicle.PlayerBox(s.PlayerX)
}

// RivalOffset is the rival's vertical offset relative to the player, in pixels.
func (s *RaceState) RivalOffset() float64 {
	return (s.RivalProgress - s.PlayerProgress) * 6
}
