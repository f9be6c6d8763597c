package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/golangdaddy/nascar/pkg/race"
	"github.com/golangdaddy/nascar/pkg/road"
)

// DrawHUD draws score, level, laps and the praise message over the race.
func DrawHUD(screen *ebiten.Image, snap race.Snapshot) {
	lines := hudLines(snap)
	vector.DrawFilledRect(screen, 8, 8, 250, float32(len(lines))*22+12, color.RGBA{0, 0, 0, 140}, false)
	for i, line := range lines {
		drawTextAt(screen, line, 16, 14+float64(i)*22, glyphHeight, color.White)
	}

	if a := praiseAlpha(snap); a > 0 {
		clr := color.RGBA{uint8(255 * a), uint8(215 * a), 0, uint8(255 * a)}
		drawText(screen, snap.Praise, road.ScreenWidth/2, 90, 32, clr)
	}
	if finishGateVisible(snap) {
		drawText(screen, "FINAL STRETCH!", road.ScreenWidth/2, 140, 24, color.White)
	}
}
