package game

import (
	"context"
	"fmt"

	"github.com/golangdaddy/nascar/pkg/models/summary"
	"github.com/golangdaddy/nascar/pkg/road"
	"github.com/golangdaddy/nascar/pkg/timeutil"
)

// RunHeadless races one level with the autopilot at a fixed frame time and
// returns the summary. maxTicks of zero means no limit.
func RunHeadless(ctx context.Context, c *Controller, level road.Level, pilot Autopilot, maxTicks int) (summary.Summary, error) {
	if err := c.Update(Controls{Level: level}, 0); err != nil {
		return summary.Summary{}, err
	}
	for ticks := 0; c.Mode() != ModeSummary; ticks++ {
		if err := ctx.Err(); err != nil {
			return summary.Summary{}, err
		}
		if maxTicks > 0 && ticks >= maxTicks {
			return summary.Summary{}, fmt.Errorf("race still running after %d ticks", maxTicks)
		}
		var ctl Controls
		if snap, ok := c.Snapshot(); ok && c.Mode() == ModeRacing {
			ctl.Race = pilot.Decide(snap)
		}
		if err := c.Update(ctl, timeutil.FrameTime); err != nil {
			return summary.Summary{}, err
		}
	}
	return c.Summary(), nil
}
