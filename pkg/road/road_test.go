package road

import (
	"math"
	"testing"

	"gotest.tools/v3/assert"
)

func TestTrack_CenterXIsPeriodic(t *testing.T) {
	track := NewTrack(160)
	for _, d := range []float64{0, 13.5, 400, 799, 1600, 2399.9} {
		for n := -2; n <= 3; n++ {
			shifted := d + float64(n)*track.Period()
			diff := math.Abs(track.CenterX(d) - track.CenterX(shifted))
			assert.Assert(t, diff < 1e-6, "d=%v n=%d diff=%v", d, n, diff)
		}
	}
}

func TestTrack_CenterXStartsAtScreenCenter(t *testing.T) {
	assert.Equal(t, NewTrack(220).CenterX(0), BaseCenterX)
	assert.Equal(t, NewTrack(0).CenterX(12345), BaseCenterX)
}

func TestTrack_CenterXStaysWithinAmplitude(t *testing.T) {
	track := NewTrack(100)
	for d := 0.0; d < track.Period(); d += 37 {
		x := track.CenterX(d)
		assert.Assert(t, x >= BaseCenterX-100 && x <= BaseCenterX+100, "d=%v x=%v", d, x)
	}
}

func TestTrack_Layout(t *testing.T) {
	l := NewTrack(100).Layout(0)

	assert.Equal(t, l.Center, 450.0)
	assert.Equal(t, l.Left, 190.0)
	assert.Equal(t, l.Right(), 710.0)
	assert.Equal(t, l.Lanes, [LaneCount]float64{230, 350, 470, 590})

	minX, maxX := l.PlayerBounds()
	assert.Equal(t, minX, 196.0)
	assert.Equal(t, maxX, 644.0)
}

func TestTrack_LayoutFollowsCurve(t *testing.T) {
	track := NewTrack(160)
	d := CurveWavelength * math.Pi / 2 // sin == 1
	l := track.Layout(d)

	assert.Assert(t, math.Abs(l.Center-(BaseCenterX+160)) < 1e-9)
	for i, lane := range l.Lanes {
		assert.Assert(t, math.Abs(lane-(l.Left+LaneOffsets[i])) < 1e-9)
	}
}

func TestTrack_ZeroWavelengthFallsBack(t *testing.T) {
	track := Track{Amplitude: 50}
	assert.Equal(t, track.CenterX(CurveWavelength), NewTrack(50).CenterX(CurveWavelength))
}
