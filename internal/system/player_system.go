// internal/system/player_system.go
package system

import (
	"fmt"

	"go-space-shooter/internal/component"
	"go-space-shooter/internal/config"
	"go-space-shooter/internal/defs"
	"go-space-shooter/internal/entity"
	"go-space-shooter/internal/event"
	"go-space-shooter/internal/types"
	"go-space-shooter/internal/utils"
)

// PlayerSystem двигает корабль игрока и выпускает его лазеры.
type PlayerSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

func NewPlayerSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *PlayerSystem {
	return &PlayerSystem{ecs: ecs, eventDispatcher: eventDispatcher}
}

// SpawnPlayer создает корабль игрока внизу экрана.
func (s *PlayerSystem) SpawnPlayer(def defs.PlayerDefinition) (types.EntityID, error) {
	health, err := component.NewHealth(def.Health, 0)
	if err != nil {
		return 0, fmt.Errorf("player: %w", err)
	}
	id := s.ecs.NewEntity()
	s.ecs.Positions[id] = &component.Position{X: config.ScreenWidth / 2, Y: config.PlayerStartY}
	s.ecs.Healths[id] = health
	s.ecs.Players[id] = &component.Player{
		Speed:        def.Speed,
		FiringPeriod: def.FiringPeriod,
		LaserSpeed:   def.LaserSpeed,
		LaserDamage:  def.LaserDamage,
		LaserVolume:  def.LaserVolume,
	}
	s.ecs.Renderables[id] = &component.Renderable{
		Color:     config.PlayerColor,
		Radius:    config.PlayerRadius,
		Shape:     component.ShapeShip,
		HasStroke: true,
	}
	return id, nil
}

func (s *PlayerSystem) Update(deltaTime float64, input component.PlayerInput) {
	var fired []event.FireData
	for id, player := range s.ecs.Players {
		pos, ok := s.ecs.Positions[id]
		if !ok {
			continue
		}

		dir := 0.0
		if input.Left {
			dir--
		}
		if input.Right {
			dir++
		}
		pos.X = utils.Clamp(pos.X+dir*player.Speed*deltaTime, config.PlayerRadius, config.ScreenWidth-config.PlayerRadius)

		if player.FireCooldown > 0 {
			player.FireCooldown -= deltaTime
		}
		if input.Fire && player.FireCooldown <= 0 {
			laserID := spawnLaser(s.ecs, laserSpec{
				DefID:   config.PlayerLaserID,
				OwnerID: id,
				From:    component.Position{X: pos.X, Y: pos.Y - config.PlayerRadius},
				Speed:   -player.LaserSpeed,
				Damage:  player.LaserDamage,
			})
			player.FireCooldown = player.FiringPeriod
			fired = append(fired, event.FireData{ShooterID: id, LaserID: laserID, Position: *pos, Volume: player.LaserVolume})
		}
	}

	for _, data := range fired {
		s.eventDispatcher.Dispatch(event.Event{Type: event.PlayerFired, Data: data})
	}
}
