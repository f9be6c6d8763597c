package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// newCarSprite paints a top-down stock car pixel by pixel, bonnet up.
func newCarSprite(w, h int, body color.RGBA, number bool) *ebiten.Image {
	img := ebiten.NewImage(w, h)
	outline := color.RGBA{20, 20, 20, 255}
	glass := color.RGBA{150, 200, 255, 255}
	wheel := color.RGBA{30, 30, 30, 255}
	stripe := color.RGBA{255, 255, 255, 255}

	wheelW := max(w/6, 1)
	wheelH := max(h/6, 2)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			inWheelRow := (y >= h/8 && y < h/8+wheelH) || (y >= h-h/8-wheelH && y < h-h/8)
			switch {
			case inWheelRow && (x < wheelW || x >= w-wheelW):
				img.Set(x, y, wheel)
			case x < wheelW || x >= w-wheelW:
				continue
			case x == wheelW || x == w-wheelW-1 || y == 0 || y == h-1:
				img.Set(x, y, outline)
			case y >= h/5 && y < h/5+h/6 && x > wheelW+1 && x < w-wheelW-2:
				img.Set(x, y, glass)
			case number && y >= h/2 && y < h/2+h/6 && x >= w/2-1 && x <= w/2:
				img.Set(x, y, stripe)
			default:
				img.Set(x, y, body)
			}
		}
	}
	return img
}
