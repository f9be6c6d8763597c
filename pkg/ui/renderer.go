// Package ui draws the race and the menus around it.
package ui

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/golangdaddy/nascar/pkg/race"
)

// Renderer draws one frame of a race.
type Renderer interface {
	DrawRace(screen *ebiten.Image, snap race.Snapshot)
}

const (
	StyleVector = "vector"
	StylePixel  = "pixel"
)

// NewRenderer returns the renderer for a style name. Unknown styles fall
// back to vector.
func NewRenderer(style string, seed int64) Renderer {
	if style == StylePixel {
		return NewPixelRenderer(seed)
	}
	return NewVectorRenderer(seed)
}

var (
	asphalt     = color.RGBA{50, 50, 55, 255}
	edgeWhite   = color.RGBA{235, 235, 235, 255}
	laneYellow  = color.RGBA{240, 200, 40, 255}
	playerBlue  = color.RGBA{30, 110, 230, 255}
	rivalRed    = color.RGBA{210, 30, 40, 255}
	flameOrange = color.RGBA{255, 140, 20, 255}
	flameYellow = color.RGBA{255, 230, 80, 255}

	obstaclePalette = []color.RGBA{
		{240, 240, 240, 255},
		{40, 170, 80, 255},
		{250, 170, 30, 255},
		{140, 60, 200, 255},
		{20, 20, 20, 255},
	}
)

// obstacleColor picks a stable color for an obstacle from its spawn position.
func obstacleColor(x float64) color.RGBA {
	return obstaclePalette[int(math.Abs(x))%len(obstaclePalette)]
}

func visibilityOverlay(v float64) color.RGBA {
	return color.RGBA{0, 0, 0, uint8(min(max(v, 0), 255))}
}
