package race

import (
	"github.com/golangdaddy/nascar/pkg/models/car"
	"github.com/golangdaddy/nascar/pkg/vehicle"
)

// CheckCollision returns the first obstacle overlapping the player, or nil.
func CheckCollision(player vehicle.Box, obstacles []*car.Car) *car.Car {
	for _, c := range obstacles {
		if player.Intersects(c.Box) {
			return c
		}
	}
	return nil
}
