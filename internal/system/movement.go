// internal/system/movement.go
package system

import (
	"go-space-shooter/internal/component"
	"go-space-shooter/internal/entity"
	"go-space-shooter/internal/event"
	"go-space-shooter/internal/types"
)

// MovementSystem ведет врагов по маршрутам и удаляет тех, кто прошел путь до конца.
type MovementSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

func NewMovementSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *MovementSystem {
	return &MovementSystem{ecs: ecs, eventDispatcher: eventDispatcher}
}

func (s *MovementSystem) Update(deltaTime float64) {
	var departed []types.EntityID
	for _, id := range sortedIDs(s.ecs.Movers) {
		mover := s.ecs.Movers[id]
		signal := mover.Advance(deltaTime)
		if pos, ok := s.ecs.Positions[id]; ok {
			*pos = mover.Position()
		}
		switch signal {
		case component.SignalArrivedAtFinal, component.SignalDeparted:
			departed = append(departed, id)
		}
	}

	for _, id := range departed {
		var pos component.Position
		if p, ok := s.ecs.Positions[id]; ok {
			pos = *p
		}
		s.ecs.RemoveEntity(id)
		s.eventDispatcher.Dispatch(event.Event{
			Type: event.EnemyDeparted,
			Data: event.DestroyedData{ID: id, Position: pos},
		})
	}
}
