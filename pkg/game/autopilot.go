package game

import (
	"math"

	"github.com/golangdaddy/nascar/pkg/race"
	"github.com/golangdaddy/nascar/pkg/vehicle"
)

// Autopilot drives a race without a player. It heads for the position with
// the most free road ahead.
type Autopilot struct {
	// Boost enables boosting whenever the current position is clear.
	Boost bool
}

// Decide picks the input for the next tick.
func (a Autopilot) Decide(snap race.Snapshot) race.Input {
	minX, maxX := snap.Road.PlayerBounds()
	x := snap.Player.X

	target := x
	best := clearance(snap, x)
	for _, lane := range snap.Road.Lanes {
		candidate := math.Max(minX, math.Min(lane, maxX))
		gap := clearance(snap, candidate)
		if gap > best || (gap == best && math.Abs(candidate-x) < math.Abs(target-x)) {
			best = gap
			target = candidate
		}
	}

	var in race.Input
	step := vehicle.PlayerSpeed / 2
	switch {
	case target < x-step:
		in.SteerLeft = true
	case target > x+step:
		in.SteerRight = true
	}
	in.Boost = a.Boost && !in.SteerLeft && !in.SteerRight && math.IsInf(clearance(snap, x), 1)
	return in
}

// clearance is the free road between the player's nose and the nearest
// obstacle that would hit a car at x.
func clearance(snap race.Snapshot, x float64) float64 {
	probe := vehicle.NewBox(x, snap.Player.Y, vehicle.CarWidth, vehicle.CarHeight)
	gap := math.Inf(1)
	for _, o := range snap.Obstacles {
		if o.X >= probe.Right() || probe.X >= o.Right() {
			continue
		}
		if o.Y >= probe.Bottom() {
			continue
		}
		gap = math.Min(gap, probe.Y-o.Bottom())
	}
	return gap
}
