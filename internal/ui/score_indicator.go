package ui

import (
	"fmt"

	"go-space-shooter/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// ScoreIndicator показывает счет и коротко подсвечивает его после начисления.
type ScoreIndicator struct {
	X, Y      float64
	Face      text.Face
	flash     float64
	lastScore int
}

const scoreFlashDuration = 0.25

func NewScoreIndicator(x, y float64, face text.Face) *ScoreIndicator {
	return &ScoreIndicator{X: x, Y: y, Face: face}
}

// Update запускает подсветку, если счет изменился.
func (i *ScoreIndicator) Update(deltaTime float64, score int) {
	if score != i.lastScore {
		i.lastScore = score
		i.flash = scoreFlashDuration
	}
	if i.flash > 0 {
		i.flash -= deltaTime
	}
}

func (i *ScoreIndicator) Draw(screen *ebiten.Image) {
	clr := config.TextLightColor
	if i.flash > 0 {
		clr = config.ExplosionColor
		clr.A = 255
	}
	drawText(screen, fmt.Sprintf("SCORE %06d", i.lastScore), i.Face, i.X, i.Y, clr)
}
