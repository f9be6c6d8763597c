package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/golangdaddy/nascar/pkg/models/summary"
	"github.com/golangdaddy/nascar/pkg/road"
)

// DrawSummary renders the end-of-race screen.
func DrawSummary(screen *ebiten.Image, s summary.Summary) {
	screen.Fill(color.RGBA{20, 20, 30, 255})

	verdictColor := color.RGBA{230, 70, 70, 255}
	if s.PlayerWon() {
		verdictColor = color.RGBA{90, 220, 110, 255}
	}
	drawText(screen, s.Verdict(), road.ScreenWidth/2, 110, 40, verdictColor)

	for i, line := range summaryLines(s) {
		drawText(screen, line, road.ScreenWidth/2, 200+float64(i)*34, 20, color.White)
	}

	drawText(screen, "SPACE: play again | 0: quit", road.ScreenWidth/2, road.ScreenHeight-60, 18, color.RGBA{150, 200, 255, 255})
}

func summaryLines(s summary.Summary) []string {
	result := "CRASHED"
	if s.Outcome == summary.OutcomeLapsComplete {
		result = "FINISHED"
	}
	rival := s.RivalName
	if rival == "" {
		rival = "Rival"
	}
	return []string{
		fmt.Sprintf("LEVEL: %s", s.Level.Title()),
		fmt.Sprintf("SCORE: %d", s.Score),
		fmt.Sprintf("LAPS: %d/%d  (%s)", s.Laps, s.LapsTotal, result),
		fmt.Sprintf("YOUR PROGRESS: %.0f", s.PlayerProgress),
		fmt.Sprintf("%s: %.1f", rival, s.RivalProgress),
		fmt.Sprintf("TIME: %.1fs", s.Duration.Seconds()),
	}
}
