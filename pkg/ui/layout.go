package ui

import (
	"fmt"
	"math"

	"github.com/golangdaddy/nascar/pkg/models"
	"github.com/golangdaddy/nascar/pkg/race"
	"github.com/golangdaddy/nascar/pkg/road"
	"github.com/golangdaddy/nascar/pkg/vehicle"
)

const (
	dashLength  = 40.0
	dashSpacing = 80.0

	rivalLeadY  = 200.0
	rivalShiftX = road.RoadWidth/2 - 120
)

// rivalBox places the rival car relative to the player from the progress gap.
func rivalBox(snap race.Snapshot) vehicle.Box {
	return vehicle.NewBox(
		snap.Road.Center+rivalShiftX,
		vehicle.PlayerY-rivalLeadY+snap.RivalOffset,
		vehicle.CarWidth,
		vehicle.CarHeight,
	)
}

// laneDividers returns the x of each painted line between two lanes.
func laneDividers(l road.Layout) []float64 {
	dividers := make([]float64, 0, road.LaneCount-1)
	for i := 1; i < road.LaneCount; i++ {
		prevEnd := l.Lanes[i-1] + vehicle.CarWidth
		dividers = append(dividers, (prevEnd+l.Lanes[i])/2)
	}
	return dividers
}

// dashPhase is the vertical offset of the first lane dash for a scroll position.
func dashPhase(scroll float64) float64 {
	return math.Mod(scroll, dashSpacing) - dashSpacing
}

// wrapScroll keeps a scroll position within [0, period).
func wrapScroll(v, period float64) float64 {
	v = math.Mod(v, period)
	if v < 0 {
		v += period
	}
	return v
}

func finishGateVisible(snap race.Snapshot) bool {
	return snap.Finish == models.FinishApproaching
}

// hudLines are the status lines in the top-left corner.
func hudLines(snap race.Snapshot) []string {
	return []string{
		fmt.Sprintf("SCORE: %d", snap.Score),
		fmt.Sprintf("LEVEL: %s", snap.Level.Title()),
		fmt.Sprintf("LAPS: %d/%d", snap.Laps, snap.LapsTotal),
		fmt.Sprintf("LAP DISTANCE: %d/%d", int(snap.TrackDistance), int(snap.LapDistance)),
	}
}

// praiseAlpha fades the praise message over its last quarter second.
func praiseAlpha(snap race.Snapshot) float64 {
	if snap.Praise == "" {
		return 0
	}
	return math.Min(1, snap.PraiseRemaining.Seconds()*4)
}
