// internal/entity/ecs.go
package entity

import (
	"go-space-shooter/internal/component"
	"go-space-shooter/internal/types"
)

type ECS struct {
	GameTime    float64
	NextID      types.EntityID
	Positions   map[types.EntityID]*component.Position
	Velocities  map[types.EntityID]*component.Velocity
	Movers      map[types.EntityID]*component.WaypointMover
	FireTimers  map[types.EntityID]*component.FireTimer
	Healths     map[types.EntityID]*component.Health
	Renderables map[types.EntityID]*component.Renderable
	Enemies     map[types.EntityID]*component.Enemy
	Projectiles map[types.EntityID]*component.Projectile
	Explosions  map[types.EntityID]*component.Explosion
	Players     map[types.EntityID]*component.Player
	Session     *component.GameSession
}

func NewECS() *ECS {
	return &ECS{
		NextID:      1,
		Positions:   make(map[types.EntityID]*component.Position),
		Velocities:  make(map[types.EntityID]*component.Velocity),
		Movers:      make(map[types.EntityID]*component.WaypointMover),
		FireTimers:  make(map[types.EntityID]*component.FireTimer),
		Healths:     make(map[types.EntityID]*component.Health),
		Renderables: make(map[types.EntityID]*component.Renderable),
		Enemies:     make(map[types.EntityID]*component.Enemy),
		Projectiles: make(map[types.EntityID]*component.Projectile),
		Explosions:  make(map[types.EntityID]*component.Explosion),
		Players:     make(map[types.EntityID]*component.Player),
		Session:     component.NewGameSession(nil),
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// RemoveEntity удаляет все компоненты сущности.
func (ecs *ECS) RemoveEntity(id types.EntityID) {
	delete(ecs.Positions, id)
	delete(ecs.Velocities, id)
	delete(ecs.Movers, id)
	delete(ecs.FireTimers, id)
	delete(ecs.Healths, id)
	delete(ecs.Renderables, id)
	delete(ecs.Enemies, id)
	delete(ecs.Projectiles, id)
	delete(ecs.Explosions, id)
	delete(ecs.Players, id)
}

// Exists сообщает, есть ли у сущности позиция (все живые сущности ее имеют).
func (ecs *ECS) Exists(id types.EntityID) bool {
	_, ok := ecs.Positions[id]
	return ok
}
