package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/golangdaddy/nascar/pkg/race"
	"github.com/golangdaddy/nascar/pkg/road"
)

var levelKeys = map[ebiten.Key]road.Level{
	ebiten.KeyDigit1:  road.LevelEasy,
	ebiten.KeyDigit2:  road.LevelMedium,
	ebiten.KeyDigit3:  road.LevelExtreme,
	ebiten.KeyNumpad1: road.LevelEasy,
	ebiten.KeyNumpad2: road.LevelMedium,
	ebiten.KeyNumpad3: road.LevelExtreme,
}

// readControls samples the keyboard for one frame.
func readControls() Controls {
	ctl := Controls{
		Race: race.Input{
			SteerLeft:  ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
			SteerRight: ebiten.IsKeyPressed(ebiten.KeyArrowRight),
			Boost:      ebiten.IsKeyPressed(ebiten.KeyShift),
		},
		Quit: inpututil.IsKeyJustPressed(ebiten.KeyDigit0) ||
			inpututil.IsKeyJustPressed(ebiten.KeyNumpad0) ||
			inpututil.IsKeyJustPressed(ebiten.KeyEscape),
		Restart: inpututil.IsKeyJustPressed(ebiten.KeySpace),
	}
	for key, level := range levelKeys {
		if inpututil.IsKeyJustPressed(key) {
			ctl.Level = level
		}
	}
	return ctl
}
