package ui

import (
	"image/color"

	"github.com/hajimehoshi/bitmapfont/v4"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// glyphHeight is the natural height of the bitmap font.
const glyphHeight = 16.0

var face = text.NewGoXFace(bitmapfont.Face)

// drawText draws str centered on (centerX, centerY) at the given pixel size.
func drawText(screen *ebiten.Image, str string, centerX, centerY, size float64, clr color.Color) {
	scale := size / glyphHeight
	width := text.Advance(str, face) * scale

	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(centerX-width/2, centerY-size/2)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, str, face, op)
}

// drawTextAt draws str with its top-left corner at (x, y).
func drawTextAt(screen *ebiten.Image, str string, x, y, size float64, clr color.Color) {
	scale := size / glyphHeight

	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, str, face, op)
}

// drawButton draws a bordered button with a centered label.
func drawButton(screen *ebiten.Image, label string, x, y, width, height float64, bgColor, textColor color.Color) {
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(width), float32(height), bgColor, false)
	vector.StrokeRect(screen, float32(x)+1, float32(y)+1, float32(width)-2, float32(height)-2, 2, color.RGBA{80, 80, 100, 255}, false)
	drawText(screen, label, x+width/2, y+height/2, glyphHeight, textColor)
}
