package defs

import (
	"fmt"
	"image/color"
	"strings"

	"go-space-shooter/internal/component"
)

// Point — точка маршрута в пикселях экрана.
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// HexColor — цвет в формате "#rrggbb".
type HexColor string

// RGBA разбирает цвет; при ошибке возвращает fallback.
func (c HexColor) RGBA(fallback color.RGBA) color.RGBA {
	if c == "" {
		return fallback
	}
	var r, g, b uint8
	if _, err := fmt.Sscanf(strings.TrimPrefix(string(c), "#"), "%02x%02x%02x", &r, &g, &b); err != nil {
		return fallback
	}
	return color.RGBA{r, g, b, 255}
}

func (c HexColor) valid() bool {
	if c == "" {
		return true
	}
	var r, g, b uint8
	s := strings.TrimPrefix(string(c), "#")
	if len(s) != 6 {
		return false
	}
	_, err := fmt.Sscanf(s, "%02x%02x%02x", &r, &g, &b)
	return err == nil
}

// Positions переводит маршрут в позиции компонента движения.
func Positions(points []Point) []component.Position {
	out := make([]component.Position, len(points))
	for i, p := range points {
		out[i] = component.Position{X: p.X, Y: p.Y}
	}
	return out
}
