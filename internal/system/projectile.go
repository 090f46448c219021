// internal/system/projectile.go
package system

import (
	"go-space-shooter/internal/entity"
	"go-space-shooter/internal/event"
	"go-space-shooter/internal/types"
)

// ProjectileSystem двигает лазеры и убирает попавшие и улетевшие за экран.
type ProjectileSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

func NewProjectileSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *ProjectileSystem {
	return &ProjectileSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
	}
}

func (s *ProjectileSystem) Update(deltaTime float64) {
	var gone []types.EntityID
	for id := range s.ecs.Projectiles {
		pos := s.ecs.Positions[id]
		if pos == nil {
			// Лазер без позиции — удаляем сразу
			s.ecs.RemoveEntity(id)
			continue
		}
		if vel, ok := s.ecs.Velocities[id]; ok {
			pos.X += vel.X * deltaTime
			pos.Y += vel.Y * deltaTime
		}
		if isOffscreen(*pos) {
			gone = append(gone, id)
		}
	}

	for _, id := range gone {
		s.ecs.RemoveEntity(id)
		s.eventDispatcher.Dispatch(event.Event{Type: event.LaserDespawned, Data: id})
	}
}

// Cleanup удаляет лазеры, попавшие в цель на этом тике.
func (s *ProjectileSystem) Cleanup() {
	for id, proj := range s.ecs.Projectiles {
		if proj.HasHit() {
			s.ecs.RemoveEntity(id)
		}
	}
}
