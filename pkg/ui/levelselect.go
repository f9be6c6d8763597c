package ui

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/golangdaddy/nascar/pkg/road"
)

const (
	buttonWidth   = 420.0
	buttonHeight  = 56.0
	buttonTop     = 250.0
	buttonSpacing = 80.0
)

// LevelSelect is the opening menu. Levels are chosen with 1, 2, 3 or a click.
type LevelSelect struct {
	frames  int
	presets []road.TrackConfig
}

// NewLevelSelect builds the menu from the level presets.
func NewLevelSelect() (*LevelSelect, error) {
	ls := &LevelSelect{}
	for _, level := range road.Levels {
		cfg, err := road.Preset(level)
		if err != nil {
			return nil, err
		}
		ls.presets = append(ls.presets, cfg)
	}
	return ls, nil
}

// Update returns the level clicked this frame, or LevelNone.
func (ls *LevelSelect) Update() road.Level {
	ls.frames++
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return road.LevelNone
	}
	x, y := ebiten.CursorPosition()
	return ls.levelAt(float64(x), float64(y))
}

func (ls *LevelSelect) levelAt(x, y float64) road.Level {
	left := road.ScreenWidth/2 - buttonWidth/2
	if x < left || x >= left+buttonWidth {
		return road.LevelNone
	}
	for i, cfg := range ls.presets {
		top := buttonTop + float64(i)*buttonSpacing
		if y >= top && y < top+buttonHeight {
			return cfg.Level
		}
	}
	return road.LevelNone
}

// Draw renders the menu
func (ls *LevelSelect) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{15, 20, 35, 255})
	elapsed := float64(ls.frames) / 60

	pulse := 1.0 + 0.08*math.Sin(elapsed*2)
	brightness := math.Min(1, 0.85+0.15*math.Sin(elapsed*1.5))
	titleColor := color.RGBA{uint8(255 * brightness), uint8(200 * brightness), uint8(50 * brightness), 255}
	drawText(screen, "NASCAR", road.ScreenWidth/2, 120, 72*pulse, titleColor)
	drawText(screen, "Lap Racing", road.ScreenWidth/2, 185, 24, color.RGBA{180, 180, 200, 255})

	x := road.ScreenWidth/2 - buttonWidth/2
	for i, cfg := range ls.presets {
		label := fmt.Sprintf("%d  %-8s %d laps  %dpx", i+1, cfg.Level.Title(), cfg.Laps, int(cfg.LapDistance))
		drawButton(screen, label, x, buttonTop+float64(i)*buttonSpacing, buttonWidth, buttonHeight,
			color.RGBA{40, 40, 60, 255}, color.White)
	}

	if int(elapsed*2)%2 == 0 {
		drawText(screen, "Press 1, 2 or 3 to race", road.ScreenWidth/2, road.ScreenHeight-90, 20, color.RGBA{150, 200, 255, 255})
	}
	drawText(screen, "Arrows: steer | Shift: boost | 0: quit", road.ScreenWidth/2, road.ScreenHeight-50, 16, color.RGBA{150, 150, 150, 255})
}
