package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

// DefaultFace — моноширинный шрифт 7x13 из x/image, без загрузки файлов.
var DefaultFace text.Face = text.NewGoXFace(basicfont.Face7x13)

// drawText рисует строку с левым верхним углом в (x, y).
func drawText(screen *ebiten.Image, s string, face text.Face, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, face, op)
}

// drawOutlinedText рисует строку с обводкой толщиной thickness пикселей.
func drawOutlinedText(screen *ebiten.Image, s string, face text.Face, x, y float64, clr, outline color.Color, thickness int) {
	for dy := -thickness; dy <= thickness; dy++ {
		for dx := -thickness; dx <= thickness; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			drawText(screen, s, face, x+float64(dx), y+float64(dy), outline)
		}
	}
	drawText(screen, s, face, x, y, clr)
}
