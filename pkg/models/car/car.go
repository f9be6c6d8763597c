package car

import (
	"github.com/golangdaddy/nascar/pkg/road"
	"github.com/golangdaddy/nascar/pkg/vehicle"
)

// PassedY is the y beyond which an obstacle has left the play area behind the player.
const PassedY = road.ScreenHeight + 50

// Car is an obstacle vehicle. Its x is fixed at spawn time; it only moves down the screen.
type Car struct {
	ID   uint64 `json:"id"`
	Lane int    `json:"lane"`
	vehicle.Box
}

// NewCar creates an obstacle just above the visible area at the given lane position.
func NewCar(id uint64, lane int, x float64) *Car {
	return &Car{
		ID:   id,
		Lane: lane,
		Box:  vehicle.NewBox(x, -vehicle.CarHeight, vehicle.CarWidth, vehicle.CarHeight),
	}
}

// Advance moves the car toward the player.
func (c *Car) Advance(dy float64) {
	c.Y += dy
}

// Passed reports whether the car has left the play area.
func (c *Car) Passed() bool {
	return c.Y > PassedY
}
