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

// pixelScale is how many screen pixels one canvas pixel covers.
const pixelScale = 3

// PixelRenderer draws the race on a low resolution canvas with hand painted
// sprites and scales it up without filtering.
type PixelRenderer struct {
	seed   int64
	canvas *ebiten.Image
	verge  *ebiten.Image
	scroll float64

	player    *ebiten.Image
	rival     *ebiten.Image
	obstacles map[color.RGBA]*ebiten.Image
}

func NewPixelRenderer(seed int64) *PixelRenderer {
	return &PixelRenderer{seed: seed}
}

func (r *PixelRenderer) init() {
	w, h := road.ScreenWidth/pixelScale, road.ScreenHeight/pixelScale
	r.canvas = ebiten.NewImage(w, h)
	r.verge = background.NewGenerator(w, h).GenerateVerge(r.seed)

	sw, sh := int(vehicle.CarWidth)/pixelScale, int(vehicle.CarHeight)/pixelScale
	r.player = newCarSprite(sw, sh, playerBlue, true)
	r.rival = newCarSprite(sw, sh, rivalRed, true)
	r.obstacles = make(map[color.RGBA]*ebiten.Image, len(obstaclePalette))
	for _, c := range obstaclePalette {
		r.obstacles[c] = newCarSprite(sw, sh, c, false)
	}
}

func (r *PixelRenderer) DrawRace(screen *ebiten.Image, snap race.Snapshot) {
	if r.canvas == nil {
		r.init()
	}
	if !snap.Ended {
		r.scroll = wrapScroll(r.scroll+snap.ObstacleSpeed/2/pixelScale, float64(r.canvas.Bounds().Dy()))
	}
	drawScrolling(r.canvas, r.verge, r.scroll)
	r.drawRoad(snap)
	if finishGateVisible(snap) {
		drawFinishGate(r.canvas, snap.Road.Left/pixelScale, road.RoadWidth/pixelScale, snap.FinishMarkerY/pixelScale, 20.0/pixelScale)
	}

	for _, o := range snap.Obstacles {
		r.blit(r.obstacles[obstacleColor(o.X)], o)
	}
	r.blit(r.rival, rivalBox(snap))
	if snap.Boosting {
		p := snap.Player
		for _, dx := range []float64{-4, 4} {
			x := float32((p.X+p.W/2)/pixelScale + dx)
			vector.DrawFilledRect(r.canvas, x-1, float32(p.Bottom()/pixelScale), 3, 3, flameOrange, false)
		}
	}
	r.blit(r.player, snap.Player)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(pixelScale, pixelScale)
	op.Filter = ebiten.FilterNearest
	screen.DrawImage(r.canvas, op)

	vector.DrawFilledRect(screen, 0, 0, road.ScreenWidth, road.ScreenHeight, visibilityOverlay(snap.Visibility), false)
	DrawHUD(screen, snap)
}

func (r *PixelRenderer) drawRoad(snap race.Snapshot) {
	l := scaleLayout(snap.Road)
	w := float32(road.RoadWidth / pixelScale)
	h := float32(r.canvas.Bounds().Dy())
	left := float32(l.Left)
	vector.DrawFilledRect(r.canvas, left, 0, w, h, asphalt, false)
	vector.DrawFilledRect(r.canvas, left, 0, 2, h, edgeWhite, false)
	vector.DrawFilledRect(r.canvas, left+w-2, 0, 2, h, edgeWhite, false)

	phase := dashPhase(r.scroll*2*pixelScale) / pixelScale
	for _, x := range laneDividers(snap.Road) {
		for y := phase; y < float64(h); y += dashSpacing / pixelScale {
			vector.DrawFilledRect(r.canvas, float32(x/pixelScale), float32(y), 1, dashLength/pixelScale, laneYellow, false)
		}
	}
}

func (r *PixelRenderer) blit(sprite *ebiten.Image, b vehicle.Box) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(int(b.X/pixelScale)), float64(int(b.Y/pixelScale)))
	r.canvas.DrawImage(sprite, op)
}

// scaleLayout converts a screen layout to canvas coordinates.
func scaleLayout(l road.Layout) road.Layout {
	out := road.Layout{Left: l.Left / pixelScale, Center: l.Center / pixelScale}
	for i, x := range l.Lanes {
		out.Lanes[i] = x / pixelScale
	}
	return out
}
