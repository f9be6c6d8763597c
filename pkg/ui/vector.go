package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/golangdaddy/nascar/pkg/background"
	"github.com/golangdaddy/nascar/pkg/race"
	"github.com/golangdaddy/nascar/pkg/road"
	"github.com/golangdaddy/nascar/pkg/vehicle"
)

// VectorRenderer draws the race with smooth shapes, a glow under the
// player's car and exhaust flames while boosting.
type VectorRenderer struct {
	seed   int64
	verge  *ebiten.Image
	scroll float64
	frame  int
}

func NewVectorRenderer(seed int64) *VectorRenderer {
	return &VectorRenderer{seed: seed}
}

func (r *VectorRenderer) DrawRace(screen *ebiten.Image, snap race.Snapshot) {
	if r.verge == nil {
		r.verge = background.NewGenerator(road.ScreenWidth, road.ScreenHeight).GenerateVerge(r.seed)
	}
	r.frame++
	if !snap.Ended {
		r.scroll = wrapScroll(r.scroll+snap.ObstacleSpeed/2, road.ScreenHeight)
	}
	drawScrolling(screen, r.verge, r.scroll)

	r.drawRoad(screen, snap)
	if finishGateVisible(snap) {
		drawFinishGate(screen, snap.Road.Left, road.RoadWidth, snap.FinishMarkerY, 20)
	}

	for _, o := range snap.Obstacles {
		drawCarShape(screen, o, obstacleColor(o.X))
	}
	drawCarShape(screen, rivalBox(snap), rivalRed)

	if snap.Boosting {
		r.drawBoost(screen, snap.Player)
	}
	drawCarShape(screen, snap.Player, playerBlue)

	vector.DrawFilledRect(screen, 0, 0, road.ScreenWidth, road.ScreenHeight, visibilityOverlay(snap.Visibility), false)
	DrawHUD(screen, snap)
}

func (r *VectorRenderer) drawRoad(screen *ebiten.Image, snap race.Snapshot) {
	left := float32(snap.Road.Left)
	vector.DrawFilledRect(screen, left, 0, road.RoadWidth, road.ScreenHeight, asphalt, false)
	vector.DrawFilledRect(screen, left, 0, road.EdgeMargin, road.ScreenHeight, edgeWhite, false)
	vector.DrawFilledRect(screen, left+road.RoadWidth-road.EdgeMargin, 0, road.EdgeMargin, road.ScreenHeight, edgeWhite, false)

	phase := dashPhase(r.scroll * 2)
	for _, x := range laneDividers(snap.Road) {
		for y := phase; y < road.ScreenHeight; y += dashSpacing {
			vector.DrawFilledRect(screen, float32(x)-2, float32(y), 4, dashLength, laneYellow, false)
		}
	}
}

func (r *VectorRenderer) drawBoost(screen *ebiten.Image, player vehicle.Box) {
	cx := float32(player.X + player.W/2)
	cy := float32(player.Y + player.H/2)
	vector.DrawFilledCircle(screen, cx, cy, float32(player.H)*0.75, color.RGBA{0, 60, 120, 60}, true)

	flicker := float32(r.frame%6) * 2
	for _, dx := range []float32{-14, 14} {
		fx := cx + dx
		fy := float32(player.Bottom())
		vector.DrawFilledCircle(screen, fx, fy+8+flicker, 9, flameOrange, true)
		vector.DrawFilledCircle(screen, fx, fy+4, 5, flameYellow, true)
	}
}

// drawScrolling tiles a texture vertically at the given offset.
func drawScrolling(screen, img *ebiten.Image, offset float64) {
	h := float64(img.Bounds().Dy())
	for _, y := range []float64{offset - h, offset} {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(0, y)
		screen.DrawImage(img, op)
	}
}

// drawCarShape draws a stock car with its body, windshield and wheels.
func drawCarShape(screen *ebiten.Image, b vehicle.Box, body color.Color) {
	x, y, w, h := float32(b.X), float32(b.Y), float32(b.W), float32(b.H)
	wheel := color.RGBA{25, 25, 25, 255}
	for _, wy := range []float32{y + h*0.12, y + h*0.7} {
		vector.DrawFilledRect(screen, x-3, wy, 8, h*0.18, wheel, false)
		vector.DrawFilledRect(screen, x+w-5, wy, 8, h*0.18, wheel, false)
	}
	vector.DrawFilledRect(screen, x+2, y, w-4, h, body, true)
	vector.StrokeRect(screen, x+2, y, w-4, h, 2, color.RGBA{20, 20, 20, 255}, true)
	vector.DrawFilledRect(screen, x+8, y+h*0.2, w-16, h*0.18, color.RGBA{150, 200, 255, 220}, true)
	vector.DrawFilledRect(screen, x+w/2-3, y+h*0.45, 6, h*0.5, color.RGBA{255, 255, 255, 180}, false)
}

// drawFinishGate draws a checkered band across the road at y.
func drawFinishGate(screen *ebiten.Image, left, width, y, square float64) {
	light := color.RGBA{250, 250, 250, 255}
	dark := color.RGBA{15, 15, 15, 255}
	cols := int(width / square)
	for row := 0; row < 2; row++ {
		for col := 0; col < cols; col++ {
			c := light
			if (row+col)%2 == 1 {
				c = dark
			}
			x := left + float64(col)*square
			vector.DrawFilledRect(screen, float32(x), float32(y+float64(row)*square), float32(square), float32(square), c, false)
		}
	}
}
