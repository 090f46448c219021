// internal/system/wave.go
package system

import (
	"log"

	"go-space-shooter/internal/component"
	"go-space-shooter/internal/config"
	"go-space-shooter/internal/defs"
	"go-space-shooter/internal/entity"
	"go-space-shooter/internal/event"
)

type WaveSystem struct {
	ecs             *entity.ECS
	library         *defs.Library
	rng             component.RangeSource
	eventDispatcher *event.Dispatcher
	activeEnemies   int
}

func NewWaveSystem(ecs *entity.ECS, library *defs.Library, rng component.RangeSource, eventDispatcher *event.Dispatcher) *WaveSystem {
	ws := &WaveSystem{
		ecs:             ecs,
		library:         library,
		rng:             rng,
		eventDispatcher: eventDispatcher,
	}
	eventDispatcher.Subscribe(ws, event.EnemyDestroyed, event.EnemyDeparted)
	return ws
}

func (s *WaveSystem) Update(deltaTime float64, wave *component.Wave) {
	if wave == nil || wave.Ended {
		return
	}
	if wave.EnemiesToSpawn > 0 {
		wave.SpawnTimer += deltaTime
		if wave.SpawnTimer >= wave.NextSpawnIn {
			def := s.library.Waves[wave.DefIndex]
			s.spawnEnemy(wave, def)
			wave.EnemiesToSpawn--
			wave.SpawnTimer = 0
			wave.NextSpawnIn = def.TimeBetweenSpawns + s.rng.RangeFloat(0, def.SpawnRandomFactor)
		}
	} else if s.activeEnemies <= 0 {
		wave.Ended = true
		s.eventDispatcher.Dispatch(event.Event{
			Type: event.WaveEnded,
			Data: event.WaveData{Number: wave.Number, Enemies: s.library.Waves[wave.DefIndex].Count},
		})
	}
}

func (s *WaveSystem) ActiveEnemies() int {
	return s.activeEnemies
}

// StartWave готовит волну с порядковым номером waveNumber (с 1).
// После последнего определения волны идут по кругу, если включен looping;
// иначе возвращается nil.
func (s *WaveSystem) StartWave(waveNumber int) *component.Wave {
	count := len(s.library.Waves)
	if waveNumber < 1 || count == 0 {
		return nil
	}
	index := waveNumber - 1
	if index >= count {
		if !s.library.Looping {
			return nil
		}
		index %= count
	}
	def := s.library.Waves[index]

	s.eventDispatcher.Dispatch(event.Event{
		Type: event.WaveStarted,
		Data: event.WaveData{Number: waveNumber, Enemies: def.Count},
	})
	return &component.Wave{
		Number:         waveNumber,
		DefIndex:       index,
		EnemiesToSpawn: def.Count,
	}
}

func (s *WaveSystem) spawnEnemy(wave *component.Wave, waveDef defs.WaveDefinition) {
	def, ok := s.library.Enemy(waveDef.EnemyID)
	if !ok {
		log.Printf("Error: Enemy definition not found for ID: %s", waveDef.EnemyID)
		return
	}

	mover, err := component.NewWaypointMover(defs.Positions(waveDef.Waypoints), waveDef.MoveSpeed)
	if err != nil {
		log.Printf("Error: wave %d cannot spawn %s: %v", wave.Number, def.ID, err)
		return
	}
	timer, err := component.NewFireTimer(def.MinTimeBetweenShots, def.MaxTimeBetweenShots, s.rng)
	if err != nil {
		log.Printf("Error: wave %d cannot spawn %s: %v", wave.Number, def.ID, err)
		return
	}
	health, err := component.NewHealth(def.Health, def.Score)
	if err != nil {
		log.Printf("Error: wave %d cannot spawn %s: %v", wave.Number, def.ID, err)
		return
	}

	id := s.ecs.NewEntity()
	start := mover.Position()
	s.ecs.Positions[id] = &start
	s.ecs.Movers[id] = mover
	s.ecs.FireTimers[id] = timer
	s.ecs.Healths[id] = health
	s.ecs.Renderables[id] = &component.Renderable{
		Color:     def.Color.RGBA(config.EnemyColor),
		Radius:    float32(def.Radius),
		Shape:     component.ShapeShip,
		HasStroke: true,
	}
	s.ecs.Enemies[id] = &component.Enemy{
		DefID:             def.ID,
		WaveNumber:        wave.Number,
		LaserSpeed:        def.LaserSpeed,
		LaserDamage:       def.LaserDamage,
		LaserVolume:       def.LaserVolume,
		DeathVolume:       def.DeathVolume,
		ExplosionDuration: def.ExplosionDuration,
	}
	s.activeEnemies++

	s.eventDispatcher.Dispatch(event.Event{Type: event.EnemySpawned, Data: id})
}

func (s *WaveSystem) OnEvent(e event.Event) {
	switch e.Type {
	case event.EnemyDestroyed, event.EnemyDeparted:
		if s.activeEnemies > 0 {
			s.activeEnemies--
		}
	}
}
