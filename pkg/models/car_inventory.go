package models

import (
	"github.com/samber/lo"

	"github.com/golangdaddy/nascar/pkg/models/car"
)

// ObstaclePool owns the obstacle vehicles of one race, in spawn order.
type ObstaclePool struct {
	cars   []*car.Car
	nextID uint64
}

// NewObstaclePool creates an empty pool.
func NewObstaclePool() *ObstaclePool {
	return &ObstaclePool{
		cars: make([]*car.Car, 0, 8),
	}
}

// Add places a new obstacle above the play area and returns it.
func (p *ObstaclePool) Add(lane int, x float64) *car.Car {
	p.nextID++
	c := car.NewCar(p.nextID, lane, x)
	p.cars = append(p.cars, c)
	return c
}

// All returns the live obstacles. Callers must not keep the slice across ticks.
func (p *ObstaclePool) All() []*car.Car {
	return p.cars
}

// Len returns the number of live obstacles.
func (p *ObstaclePool) Len() int {
	return len(p.cars)
}

// Advance moves every obstacle down by dy.
func (p *ObstaclePool) Advance(dy float64) {
	for _, c := range p.cars {
		c.Advance(dy)
	}
}

// RemovePassed drops every obstacle that left the play area and returns them.
func (p *ObstaclePool) RemovePassed() []*car.Car {
	passed := lo.Filter(p.cars, func(c *car.Car, _ int) bool { return c.Passed() })
	if len(passed) == 0 {
		return nil
	}
	p.cars = lo.Reject(p.cars, func(c *car.Car, _ int) bool { return c.Passed() })
	return passed
}

// Reset empties the pool.
func (p *ObstaclePool) Reset() {
	p.cars = p.cars[:0]
	p.nextID = 0
}
