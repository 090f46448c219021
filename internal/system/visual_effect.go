// internal/system/visual_effect.go
package system

import (
	"go-space-shooter/internal/entity"
	"go-space-shooter/internal/utils"
)

// VisualEffectSystem управляет визуальными эффектами взрывов.
type VisualEffectSystem struct {
	ecs *entity.ECS
}

func NewVisualEffectSystem(ecs *entity.ECS) *VisualEffectSystem {
	return &VisualEffectSystem{ecs: ecs}
}

// Update обновляет все активные взрывы.
func (s *VisualEffectSystem) Update(deltaTime float64) {
	for id, explosion := range s.ecs.Explosions {
		explosion.Timer += deltaTime

		if explosion.Timer >= explosion.Duration {
			// Эффект завершился, удаляем его
			s.ecs.RemoveEntity(id)
			continue
		}

		// Обновляем радиус для анимации
		if renderable, ok := s.ecs.Renderables[id]; ok {
			progress := float32(explosion.Progress())
			renderable.Radius = utils.Lerp(0, float32(explosion.MaxRadius), progress)
			renderable.Color.A = uint8(utils.Lerp(200, 0, progress))
		}
	}
}
