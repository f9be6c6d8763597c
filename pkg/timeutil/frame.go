package timeutil

import "time"

const (
	// FrameTime is the nominal frame duration at 60 ticks per second.
	FrameTime = time.Second / 60
	// MaxFrameTime caps a single frame so a stalled window does not
	// fast-forward the race.
	MaxFrameTime = 100 * time.Millisecond
)

// FrameTimer measures the time between successive frames.
type FrameTimer struct {
	clock Clock
	last  time.Time
}

func NewFrameTimer(clock Clock) *FrameTimer {
	return &FrameTimer{clock: clock}
}

// Tick returns the time since the previous call. The first call returns
// FrameTime; results are capped at MaxFrameTime.
func (f *FrameTimer) Tick() time.Duration {
	now := f.clock.Now()
	if f.last.IsZero() {
		f.last = now
		return FrameTime
	}
	dt := now.Sub(f.last)
	f.last = now
	switch {
	case dt < 0:
		return 0
	case dt > MaxFrameTime:
		return MaxFrameTime
	}
	return dt
}
