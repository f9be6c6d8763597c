package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMockClock(t *testing.T) {
	start := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	c := NewMockClock(start)

	assert.Equal(t, start, c.Now())
	c.Advance(1500 * time.Millisecond)
	assert.Equal(t, 1500*time.Millisecond, c.Since(start))

	later := start.Add(time.Hour)
	c.Set(later)
	assert.Equal(t, later, c.Now())
}

func TestRealClock(t *testing.T) {
	var c Clock = RealClock{}
	start := c.Now()
	assert.True(t, c.Since(start) >= 0)
}

func TestFrameTimer(t *testing.T) {
	c := NewMockClock(time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC))
	f := NewFrameTimer(c)

	assert.Equal(t, FrameTime, f.Tick())

	c.Advance(20 * time.Millisecond)
	assert.Equal(t, 20*time.Millisecond, f.Tick())

	c.Advance(5 * time.Second)
	assert.Equal(t, MaxFrameTime, f.Tick())

	c.Set(c.Now().Add(-time.Second))
	assert.Equal(t, time.Duration(0), f.Tick())
}
