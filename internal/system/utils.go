// internal/system/utils.go
package system

import (
	"go-space-shooter/internal/component"
	"go-space-shooter/internal/config"
	"go-space-shooter/internal/entity"
	"go-space-shooter/internal/types"
)

// laserSpec описывает новый лазер.
type laserSpec struct {
	DefID   string
	OwnerID types.EntityID
	From    component.Position
	Speed   float64 // со знаком: положительная скорость — вниз по экрану
	Damage  float64
	Hostile bool
}

// spawnLaser создает лазер, летящий вертикально.
func spawnLaser(ecs *entity.ECS, spec laserSpec) types.EntityID {
	id := ecs.NewEntity()
	ecs.Positions[id] = &component.Position{X: spec.From.X, Y: spec.From.Y}
	ecs.Velocities[id] = &component.Velocity{X: 0, Y: spec.Speed}
	ecs.Projectiles[id] = &component.Projectile{
		DefID:   spec.DefID,
		OwnerID: spec.OwnerID,
		Damage:  spec.Damage,
		Hostile: spec.Hostile,
	}
	laserColor := config.PlayerLaserColor
	if spec.Hostile {
		laserColor = config.EnemyLaserColor
	}
	ecs.Renderables[id] = &component.Renderable{
		Color:  laserColor,
		Radius: config.LaserRadius,
		Shape:  component.ShapeBeam,
	}
	return id
}

// spawnExplosion создает эффект взрыва в точке.
func spawnExplosion(ecs *entity.ECS, at component.Position, duration float64) types.EntityID {
	id := ecs.NewEntity()
	ecs.Positions[id] = &component.Position{X: at.X, Y: at.Y}
	ecs.Explosions[id] = &component.Explosion{Duration: duration, MaxRadius: config.ExplosionMaxRadius}
	ecs.Renderables[id] = &component.Renderable{Color: config.ExplosionColor, Shape: component.ShapeCircle}
	return id
}

// overlaps проверяет пересечение двух окружностей.
func overlaps(a component.Position, ra float64, b component.Position, rb float64) bool {
	dx := a.X - b.X
	dy := a.Y - b.Y
	r := ra + rb
	return dx*dx+dy*dy <= r*r
}

// isOffscreen сообщает, что точка за пределами экрана с учетом запаса.
func isOffscreen(p component.Position) bool {
	return p.X < -config.OffscreenMargin || p.X > config.ScreenWidth+config.OffscreenMargin ||
		p.Y < -config.OffscreenMargin || p.Y > config.ScreenHeight+config.OffscreenMargin
}
