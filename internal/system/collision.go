package system

import (
	"sort"

	"go-space-shooter/internal/component"
	"go-space-shooter/internal/config"
	"go-space-shooter/internal/entity"
	"go-space-shooter/internal/types"
)

// CollisionHandler получает пары пересекающихся сущностей.
type CollisionHandler interface {
	OnCollision(targetID, otherID types.EntityID)
}

// CollisionSystem ищет пересечения лазеров с кораблями и передает их обработчику.
type CollisionSystem struct {
	ecs     *entity.ECS
	handler CollisionHandler
}

func NewCollisionSystem(ecs *entity.ECS, handler CollisionHandler) *CollisionSystem {
	return &CollisionSystem{ecs: ecs, handler: handler}
}

func (s *CollisionSystem) Update() {
	// Порядок обхода фиксирован, чтобы партия с одним сидом повторялась
	lasers := sortedIDs(s.ecs.Projectiles)
	for _, laserID := range lasers {
		proj, ok := s.ecs.Projectiles[laserID]
		if !ok || proj.HasHit() {
			continue
		}
		laserPos, ok := s.ecs.Positions[laserID]
		if !ok {
			continue
		}

		if proj.Hostile {
			for _, playerID := range sortedIDs(s.ecs.Players) {
				if s.hits(playerID, config.PlayerRadius, *laserPos) {
					s.handler.OnCollision(playerID, laserID)
					break
				}
			}
			continue
		}

		for _, enemyID := range sortedIDs(s.ecs.Enemies) {
			radius := config.EnemyRadius
			if r, ok := s.ecs.Renderables[enemyID]; ok && r.Radius > 0 {
				radius = float64(r.Radius)
			}
			if s.hits(enemyID, radius, *laserPos) {
				s.handler.OnCollision(enemyID, laserID)
				break
			}
		}
	}
}

func (s *CollisionSystem) hits(targetID types.EntityID, radius float64, laserPos component.Position) bool {
	pos, ok := s.ecs.Positions[targetID]
	if !ok {
		return false
	}
	return overlaps(*pos, radius, laserPos, config.LaserRadius)
}

func sortedIDs[T any](m map[types.EntityID]T) []types.EntityID {
	ids := make([]types.EntityID, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
