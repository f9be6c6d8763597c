package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/golangdaddy/nascar/pkg/models/car"
	"github.com/golangdaddy/nascar/pkg/road"
)

func TestNewRaceState(t *testing.T) {
	cfg, err := road.Preset(road.LevelExtreme)
	require.NoError(t, err)

	s := NewRaceState(cfg)

	assert.NotEmpty(t, s.ID.String())
	assert.Equal(t, road.LevelExtreme, s.Level)
	assert.Equal(t, 420.0, s.PlayerX)
	assert.Equal(t, 4, s.LapsTotal)
	assert.Equal(t, 13.0, s.ObstacleSpeed)
	assert.Equal(t, FinishHidden, s.Finish)
	assert.Zero(t, s.Score)
	assert.Zero(t, s.TrackDistance)
	assert.Zero(t, s.Obstacles.Len())
	assert.False(t, s.Praise.Active())
}

func TestNewRaceState_FreshIDs(t *testing.T) {
	cfg, err := road.Preset(road.LevelEasy)
	require.NoError(t, err)

	assert.NotEqual(t, NewRaceState(cfg).ID, NewRaceState(cfg).ID)
}

func TestRaceState_OnFinalLap(t *testing.T) {
	s := &RaceState{LapsTotal: 3}
	assert.False(t, s.OnFinalLap())
	s.Laps = 2
	assert.True(t, s.OnFinalLap())
}

func TestRaceState_RivalOffset(t *testing.T) {
	s := &RaceState{PlayerProgress: 10, RivalProgress: 12.5}
	assert.InDelta(t, 15.0, s.RivalOffset(), 1e-9)
}

func TestObstaclePool(t *testing.T) {
	p := NewObstaclePool()

	a := p.Add(0, 230)
	b := p.Add(3, 590)
	assert.Equal(t, uint64(1), a.ID)
	assert.Equal(t, uint64(2), b.ID)
	assert.Equal(t, -100.0, a.Y)
	assert.Equal(t, 2, p.Len())

	assert.Nil(t, p.RemovePassed())

	a.Y = car.PassedY + 1
	passed := p.RemovePassed()
	require.Len(t, passed, 1)
	assert.Equal(t, a.ID, passed[0].ID)
	assert.Equal(t, []*car.Car{b}, p.All())

	p.Advance(10)
	assert.Equal(t, -90.0, b.Y)

	p.Reset()
	assert.Zero(t, p.Len())
	assert.Equal(t, uint64(1), p.Add(1, 350).ID)
}

func TestObstaclePool_PassedBoundaryIsExclusive(t *testing.T) {
	p := NewObstaclePool()
	c := p.Add(1, 350)
	c.Y = car.PassedY

	assert.Nil(t, p.RemovePassed())
	assert.Equal(t, 1, p.Len())
}

func TestPraise_Active(t *testing.T) {
	assert.False(t, Praise{}.Active())
	assert.False(t, Praise{Text: "Great!"}.Active())
	assert.True(t, Praise{Text: "Great!", Remaining: 1}.Active())
}

func TestFinishState_String(t *testing.T) {
	assert.Equal(t, "hidden", FinishHidden.String())
	assert.Equal(t, "approaching", FinishApproaching.String())
	assert.Equal(t, "crossed", FinishCrossed.String())
}
