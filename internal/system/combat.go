package system

import (
	"log"

	"go-space-shooter/internal/component"
	"go-space-shooter/internal/config"
	"go-space-shooter/internal/entity"
	"go-space-shooter/internal/event"
	"go-space-shooter/internal/types"
)

//go:generate go tool mockgen -destination=./mocks/system_mock.go -package=mocks . ScoreReporter,CollisionHandler

// ScoreReporter принимает очки за уничтоженных врагов.
type ScoreReporter interface {
	AddToScore(points int)
}

// CombatSystem управляет стрельбой врагов и обработкой попаданий.
type CombatSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	scores          ScoreReporter
}

func NewCombatSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, scores ScoreReporter) *CombatSystem {
	return &CombatSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		scores:          scores,
	}
}

// Update отсчитывает таймеры выстрелов и выпускает вражеские лазеры.
func (s *CombatSystem) Update(deltaTime float64) {
	var fired []event.FireData
	for _, id := range sortedIDs(s.ecs.FireTimers) {
		if !s.ecs.FireTimers[id].Tick(deltaTime) {
			continue
		}
		enemy, isEnemy := s.ecs.Enemies[id]
		pos, hasPos := s.ecs.Positions[id]
		if !isEnemy || !hasPos {
			continue
		}
		laserID := spawnLaser(s.ecs, laserSpec{
			DefID:   config.EnemyLaserID,
			OwnerID: id,
			From:    *pos,
			Speed:   enemy.LaserSpeed,
			Damage:  enemy.LaserDamage,
			Hostile: true,
		})
		fired = append(fired, event.FireData{ShooterID: id, LaserID: laserID, Position: *pos, Volume: enemy.LaserVolume})
	}

	for _, data := range fired {
		s.eventDispatcher.Dispatch(event.Event{Type: event.EnemyFired, Data: data})
	}
}

// OnCollision обрабатывает столкновение цели с другой сущностью.
// Урон засчитывается только лазером "чужой" стороны: лазер игрока бьет врагов,
// вражеский лазер бьет игрока. Остальные столкновения игнорируются.
func (s *CombatSystem) OnCollision(targetID, otherID types.EntityID) {
	laser, isLaser := s.ecs.Projectiles[otherID]
	if !isLaser || laser.HasHit() {
		return
	}
	health, hasHealth := s.ecs.Healths[targetID]
	if !hasHealth || health.Destroyed() {
		return
	}

	_, isEnemy := s.ecs.Enemies[targetID]
	_, isPlayer := s.ecs.Players[targetID]
	switch {
	case isEnemy && !laser.Hostile:
	case isPlayer && laser.Hostile:
	default:
		return
	}

	destroyed, ok := health.ApplyDamage(laser.Damage)
	laser.Hit()
	if !ok {
		return
	}

	if isEnemy {
		s.destroyEnemy(targetID, destroyed)
	} else {
		s.destroyPlayer(targetID)
	}
}

func (s *CombatSystem) destroyEnemy(id types.EntityID, destroyed component.DestroyedEvent) {
	enemy := s.ecs.Enemies[id]
	var pos component.Position
	if p, ok := s.ecs.Positions[id]; ok {
		pos = *p
	}

	if s.scores != nil {
		s.scores.AddToScore(destroyed.Score)
	} else {
		log.Printf("Enemy %d destroyed but no score reporter is set, %d points lost", id, destroyed.Score)
	}

	s.ecs.RemoveEntity(id)
	spawnExplosion(s.ecs, pos, enemy.ExplosionDuration)
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.EnemyDestroyed,
		Data: event.DestroyedData{ID: id, Position: pos, Score: destroyed.Score, Volume: enemy.DeathVolume},
	})
}

func (s *CombatSystem) destroyPlayer(id types.EntityID) {
	var pos component.Position
	if p, ok := s.ecs.Positions[id]; ok {
		pos = *p
	}
	s.ecs.RemoveEntity(id)
	spawnExplosion(s.ecs, pos, config.DefaultExplosionDuration)
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.PlayerDestroyed,
		Data: event.DestroyedData{ID: id, Position: pos, Volume: config.DefaultDeathVolume},
	})
}
