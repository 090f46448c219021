// internal/system/render.go
package system

import (
	"go-space-shooter/internal/component"
	"go-space-shooter/internal/config"
	"go-space-shooter/internal/entity"
	"go-space-shooter/internal/types"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// RenderSystem рисует сущности
type RenderSystem struct {
	ecs *entity.ECS
}

func NewRenderSystem(ecs *entity.ECS) *RenderSystem {
	return &RenderSystem{ecs: ecs}
}

func (s *RenderSystem) Draw(screen *ebiten.Image) {
	// Сначала взрывы, чтобы корабли и лазеры были поверх
	for _, id := range sortedIDs(s.ecs.Explosions) {
		s.drawEntity(screen, id)
	}
	for _, id := range sortedIDs(s.ecs.Renderables) {
		if _, isExplosion := s.ecs.Explosions[id]; isExplosion {
			continue
		}
		if proj, ok := s.ecs.Projectiles[id]; ok && proj.HasHit() {
			continue
		}
		s.drawEntity(screen, id)
	}
}

func (s *RenderSystem) drawEntity(screen *ebiten.Image, id types.EntityID) {
	render, ok := s.ecs.Renderables[id]
	if !ok {
		return
	}
	pos, ok := s.ecs.Positions[id]
	if !ok {
		return
	}
	x, y := float32(pos.X), float32(pos.Y)

	switch render.Shape {
	case component.ShapeBeam:
		half := float32(config.LaserLength / 2)
		vector.StrokeLine(screen, x, y-half, x, y+half, render.Radius, render.Color, true)
	case component.ShapeShip:
		if render.HasStroke {
			vector.StrokeCircle(screen, x, y, render.Radius+2, float32(config.StrokeWidth), config.EnemyStrokeColor, true)
		}
		vector.DrawFilledCircle(screen, x, y, render.Radius, render.Color, true)
		// Нос корабля смотрит по направлению полета
		nose := render.Radius * 0.8
		if _, isPlayer := s.ecs.Players[id]; isPlayer {
			nose = -nose
		}
		vector.StrokeLine(screen, x, y, x, y+nose, 3, config.TextLightColor, true)
		if health, ok := s.ecs.Healths[id]; ok && health.Fraction() < 1 {
			s.drawHealthBar(screen, x, y-render.Radius-8, render.Radius*2, health.Fraction())
		}
	default:
		vector.DrawFilledCircle(screen, x, y, render.Radius, render.Color, true)
	}
}

func (s *RenderSystem) drawHealthBar(screen *ebiten.Image, centerX, y, width float32, fraction float64) {
	left := centerX - width/2
	vector.DrawFilledRect(screen, left, y, width, 3, config.HealthEmptyColor, false)
	fill := config.HealthFullColor
	if fraction < 0.3 {
		fill = config.HealthLowColor
	}
	vector.DrawFilledRect(screen, left, y, width*float32(fraction), 3, fill, false)
}
