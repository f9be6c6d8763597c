package ui

import (
	"image/color"
	"math"
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/golangdaddy/nascar/pkg/road"
)

const confettiCount = 160

type confetti struct {
	x, y, vx, vy float64
	size         float32
	clr          color.RGBA
}

// Celebration is the trophy screen shown after the last lap.
type Celebration struct {
	rng      *rand.Rand
	confetti []confetti
}

func NewCelebration(seed uint64) *Celebration {
	return &Celebration{rng: rand.New(rand.NewPCG(seed, seed+1))}
}

// Reset scatters a fresh burst of confetti above the screen.
func (c *Celebration) Reset() {
	palette := []color.RGBA{
		{255, 215, 0, 255}, {230, 40, 60, 255}, {40, 120, 240, 255},
		{60, 200, 90, 255}, {250, 250, 250, 255},
	}
	c.confetti = c.confetti[:0]
	for range confettiCount {
		c.confetti = append(c.confetti, confetti{
			x:    c.rng.Float64() * road.ScreenWidth,
			y:    -c.rng.Float64() * road.ScreenHeight,
			vx:   c.rng.Float64()*2 - 1,
			vy:   2 + c.rng.Float64()*3,
			size: 3 + c.rng.Float32()*4,
			clr:  palette[c.rng.IntN(len(palette))],
		})
	}
}

// Update moves the confetti one frame, recycling pieces that fall off screen.
func (c *Celebration) Update() {
	for i := range c.confetti {
		p := &c.confetti[i]
		p.x += p.vx
		p.y += p.vy
		if p.y > road.ScreenHeight {
			p.y -= road.ScreenHeight + 20
		}
	}
}

// Draw renders the trophy, the confetti and a progress bar for progress in [0, 1].
func (c *Celebration) Draw(screen *ebiten.Image, progress float64, rival string) {
	screen.Fill(color.RGBA{10, 15, 30, 255})

	cx, cy := float32(road.ScreenWidth/2), float32(road.ScreenHeight/2)
	gold := color.RGBA{255, 200, 40, 255}
	shadow := color.RGBA{190, 140, 20, 255}
	bounce := float32(6 * math.Sin(progress*math.Pi*8))

	// Cup, handles, stem and base
	vector.DrawFilledCircle(screen, cx, cy-40+bounce, 70, gold, true)
	vector.DrawFilledRect(screen, cx-70, cy-110+bounce, 140, 70, color.RGBA{10, 15, 30, 255}, false)
	vector.DrawFilledRect(screen, cx-70, cy-110+bounce, 140, 12, gold, false)
	vector.StrokeCircle(screen, cx-78, cy-60+bounce, 22, 8, gold, true)
	vector.StrokeCircle(screen, cx+78, cy-60+bounce, 22, 8, gold, true)
	vector.DrawFilledRect(screen, cx-12, cy+25+bounce, 24, 45, shadow, false)
	vector.DrawFilledRect(screen, cx-55, cy+70+bounce, 110, 22, gold, false)

	for _, p := range c.confetti {
		vector.DrawFilledRect(screen, float32(p.x), float32(p.y), p.size, p.size*0.6, p.clr, false)
	}

	drawText(screen, "CHECKERED FLAG!", road.ScreenWidth/2, 70, 40, gold)
	if rival != "" {
		drawText(screen, "You raced "+rival+" to the line", road.ScreenWidth/2, road.ScreenHeight-110, 20, color.White)
	}

	barW := float32(300)
	vector.StrokeRect(screen, cx-barW/2, road.ScreenHeight-60, barW, 12, 2, color.RGBA{120, 120, 140, 255}, false)
	vector.DrawFilledRect(screen, cx-barW/2, road.ScreenHeight-60, barW*float32(math.Min(math.Max(progress, 0), 1)), 12, gold, false)
}
