package road

import (
	"math"

	"github.com/golangdaddy/nascar/pkg/vehicle"
)

// Play area and road layout in screen pixels.
const (
	ScreenWidth  = 900
	ScreenHeight = 600

	RoadWidth       = 520.0
	CurveWavelength = 800.0
	BaseCenterX     = ScreenWidth / 2.0

	// EdgeMargin keeps the player's car off the painted road edge.
	EdgeMargin = 6.0

	// LaneCount is the number of lanes obstacles can spawn in.
	LaneCount = 4
)

// LaneOffsets are the horizontal offsets of each lane from the road's left edge.
var LaneOffsets = [LaneCount]float64{40, 160, 280, 400}

// Track maps a distance travelled in the current lap to the road layout.
// The road center swings on a sine curve so the whole road shifts sideways.
type Track struct {
	Amplitude  float64
	Wavelength float64
}

// NewTrack creates a track with the given curve amplitude and the standard wavelength.
func NewTrack(amplitude float64) Track {
	return Track{
		Amplitude:  amplitude,
		Wavelength: CurveWavelength,
	}
}

// CenterX returns the road center for the given distance.
func (t Track) CenterX(distance float64) float64 {
	return BaseCenterX + t.Amplitude*math.Sin(distance/t.wavelength())
}

// Period is the distance after which the curve repeats itself.
func (t Track) Period() float64 {
	return 2 * math.Pi * t.wavelength()
}

// Layout computes lane positions and road edges for the given distance.
func (t Track) Layout(distance float64) Layout {
	center := t.CenterX(distance)
	left := center - RoadWidth/2
	l := Layout{
		Left:   left,
		Center: center,
	}
	for i, off := range LaneOffsets {
		l.Lanes[i] = left + off
	}
	return l
}

func (t Track) wavelength() float64 {
	if t.Wavelength <= 0 {
		return CurveWavelength
	}
	return t.Wavelength
}

// Layout is the road at one distance value.
type Layout struct {
	Lanes  [LaneCount]float64 // x of each lane's left edge, left to right
	Left   float64
	Center float64
}

// Right returns the x of the road's right edge.
func (l Layout) Right() float64 {
	return l.Left + RoadWidth
}

// PlayerBounds returns the allowed range for the player car's left edge.
func (l Layout) PlayerBounds() (minX, maxX float64) {
	return l.Left + EdgeMargin, l.Left + RoadWidth - vehicle.CarWidth - EdgeMargin
}
