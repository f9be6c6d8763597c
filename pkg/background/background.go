package background

import (
	"image"
	"image/color"
	"math"
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"
)

// Generator creates roadside scenery textures
type Generator struct {
	Width  int
	Height int
}

// NewGenerator creates a new background generator
func NewGenerator(width, height int) *Generator {
	return &Generator{
		Width:  width,
		Height: height,
	}
}

var boardColors = []color.RGBA{
	{220, 30, 40, 255},
	{250, 200, 20, 255},
	{30, 90, 200, 255},
	{240, 240, 240, 255},
}

// GenerateVerge creates the infield grass either side of the track. The
// texture wraps vertically so it can be scrolled endlessly.
func (g *Generator) GenerateVerge(seed int64) *ebiten.Image {
	img := ebiten.NewImage(g.Width, g.Height)
	rng := rand.New(rand.NewPCG(uint64(seed), 0x5eed))

	img.Fill(color.RGBA{34, 110, 40, 255})

	// Mown stripes
	for y := 40; y < g.Height; y += 80 {
		stripe := img.SubImage(image.Rect(0, y, g.Width, min(y+40, g.Height))).(*ebiten.Image)
		stripe.Fill(color.RGBA{40, 122, 46, 255})
	}

	for range g.Width * g.Height / 12 {
		shade := uint8(90 + rng.IntN(50))
		img.Set(rng.IntN(g.Width), rng.IntN(g.Height), color.RGBA{30, shade, 34, 255})
	}

	// Barriers get denser toward the screen edges, away from the road.
	step := max(g.Height/25, 4)
	for y := 0; y < g.Height; y += step {
		for x := 0; x < g.Width; x += step/2 + rng.IntN(step) {
			edge := math.Abs(float64(x)-float64(g.Width)/2) / (float64(g.Width) / 2)
			if rng.Float64() > edge*edge*0.5 {
				continue
			}
			if rng.Float64() < 0.3 {
				g.drawBoard(img, x, y, step, rng)
			} else {
				g.drawTyres(img, x, y, max(step/5, 2), rng)
			}
		}
	}

	return img
}

// set plots a pixel, wrapping y so shapes crossing the bottom edge continue at the top.
func (g *Generator) set(img *ebiten.Image, x, y int, c color.Color) {
	if x < 0 || x >= g.Width {
		return
	}
	y %= g.Height
	if y < 0 {
		y += g.Height
	}
	img.Set(x, y, c)
}

// drawTyres draws a short column of stacked tyres seen from above.
func (g *Generator) drawTyres(img *ebiten.Image, x, y, radius int, rng *rand.Rand) {
	rubber := color.RGBA{22, 22, 24, 255}
	rim := color.RGBA{70, 70, 76, 255}
	for i := range 1 + rng.IntN(3) {
		cy := y + i*(2*radius+1)
		for dy := -radius; dy <= radius; dy++ {
			for dx := -radius; dx <= radius; dx++ {
				d := dx*dx + dy*dy
				switch {
				case d <= radius*radius/4:
					g.set(img, x+dx, cy+dy, rim)
				case d <= radius*radius:
					g.set(img, x+dx, cy+dy, rubber)
				}
			}
		}
	}
}

// drawBoard draws an advertising board edge-on, two colour bands with a frame.
func (g *Generator) drawBoard(img *ebiten.Image, x, y, length int, rng *rand.Rand) {
	a := boardColors[rng.IntN(len(boardColors))]
	b := boardColors[rng.IntN(len(boardColors))]
	frame := color.RGBA{40, 40, 40, 255}
	for dy := range length {
		for dx := range 3 {
			c := a
			switch {
			case dx == 0 || dy == 0 || dy == length-1:
				c = frame
			case dy > length/2:
				c = b
			}
			g.set(img, x+dx, y+dy, c)
		}
	}
}
