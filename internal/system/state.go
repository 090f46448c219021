// internal/system/state.go
package system

import (
	"log"

	"go-space-shooter/internal/component"
	"go-space-shooter/internal/entity"
	"go-space-shooter/internal/event"
)

// StateSystem переключает фазу сессии: после гибели игрока партия окончена.
type StateSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

func NewStateSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *StateSystem {
	ss := &StateSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
	}
	eventDispatcher.Subscribe(ss, event.PlayerDestroyed)
	return ss
}

func (s *StateSystem) OnEvent(e event.Event) {
	if e.Type == event.PlayerDestroyed {
		s.SwitchToGameOver()
	}
}

// SwitchToGameOver останавливает партию и убирает врагов и лазеры; взрывы доигрывают.
func (s *StateSystem) SwitchToGameOver() {
	if s.ecs.Session.Phase == component.GameOverPhase {
		return
	}
	s.ecs.Session.Phase = component.GameOverPhase
	for id := range s.ecs.Enemies {
		s.ecs.RemoveEntity(id)
	}
	for id := range s.ecs.Projectiles {
		s.ecs.RemoveEntity(id)
	}
	log.Printf("Game over: score %d, wave %d", s.ecs.Session.Score, s.ecs.Session.Wave)
}

func (s *StateSystem) Current() component.Phase {
	return s.ecs.Session.Phase
}
