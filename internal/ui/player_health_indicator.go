// internal/ui/player_health_indicator.go
package ui

import (
	"go-space-shooter/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	HealthSegments   = 7
	HealthBarHeight  = 10.0
	HealthBarSpacing = 2.0
	HealthTotalWidth = 160.0
)

// PlayerHealthIndicator отображает здоровье игрока в виде сегментированного бара.
type PlayerHealthIndicator struct {
	X, Y float32
}

func NewPlayerHealthIndicator(x, y float32) *PlayerHealthIndicator {
	return &PlayerHealthIndicator{X: x, Y: y}
}

// Draw рисует бар; fraction — доля оставшегося здоровья в [0, 1].
func (i *PlayerHealthIndicator) Draw(screen *ebiten.Image, fraction float64) {
	segmentWidth := (HealthTotalWidth - float32(HealthSegments-1)*HealthBarSpacing) / float32(HealthSegments)
	filled := filledSegments(fraction)

	fillColor := config.HealthFullColor
	if fraction < 0.3 {
		fillColor = config.HealthLowColor
	}

	currentX := i.X
	for j := 0; j < HealthSegments; j++ {
		c := config.HealthEmptyColor
		if j < filled {
			c = fillColor
		}
		vector.DrawFilledRect(screen, currentX, i.Y, segmentWidth, HealthBarHeight, c, false)
		vector.StrokeRect(screen, currentX, i.Y, segmentWidth, HealthBarHeight, 1, config.UIBorderColor, false)
		currentX += segmentWidth + HealthBarSpacing
	}
}

// filledSegments округляет вверх: пока игрок жив, горит хотя бы один сегмент.
func filledSegments(fraction float64) int {
	if fraction <= 0 {
		return 0
	}
	if fraction >= 1 {
		return HealthSegments
	}
	n := int(fraction * HealthSegments)
	if float64(n) < fraction*HealthSegments {
		n++
	}
	return n
}
