package system

import (
	"testing"

	"go-space-shooter/internal/component"
	"go-space-shooter/internal/defs"
	"go-space-shooter/internal/entity"
	"go-space-shooter/internal/event"
	"go-space-shooter/internal/types"
)

// lowRange всегда возвращает нижнюю границу.
type lowRange struct{}

func (lowRange) RangeFloat(min, max float64) float64 { return min }

// eventLog записывает все события выбранных типов.
type eventLog struct {
	events []event.Event
}

func (l *eventLog) OnEvent(e event.Event) {
	l.events = append(l.events, e)
}

func (l *eventLog) count(t event.EventType) int {
	n := 0
	for _, e := range l.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

func listen(d *event.Dispatcher, eventTypes ...event.EventType) *eventLog {
	l := &eventLog{}
	d.Subscribe(l, eventTypes...)
	return l
}

const testDefinitions = `
looping: false
player:
  health: 200
  speed: 100
  firingPeriod: 0.5
  laserSpeed: 600
  laserDamage: 100
  laserVolume: 0.2
enemies:
  - id: ENEMY_TEST
    health: 500
    score: 150
    minTimeBetweenShots: 0.2
    maxTimeBetweenShots: 3.0
    laserSpeed: 260
    laserDamage: 20
    laserVolume: 0.3
    deathVolume: 0.9
    explosionDuration: 1.0
waves:
  - enemy: ENEMY_TEST
    count: 3
    moveSpeed: 5
    timeBetweenSpawns: 0.5
    spawnRandomFactor: 0
    waypoints:
      - {x: 100, y: 100}
      - {x: 110, y: 100}
`

func testLibrary(t *testing.T) *defs.Library {
	t.Helper()
	lib, err := defs.ParseDefinitions([]byte(testDefinitions))
	if err != nil {
		t.Fatalf("test definitions are invalid: %v", err)
	}
	return lib
}

// addEnemy создает врага с заданным здоровьем без маршрута и таймера.
func addEnemy(t *testing.T, ecs *entity.ECS, at component.Position, health float64, score int) types.EntityID {
	t.Helper()
	h, err := component.NewHealth(health, score)
	if err != nil {
		t.Fatal(err)
	}
	id := ecs.NewEntity()
	ecs.Positions[id] = &at
	ecs.Healths[id] = h
	ecs.Enemies[id] = &component.Enemy{
		DefID:             "ENEMY_TEST",
		LaserSpeed:        260,
		LaserDamage:       20,
		LaserVolume:       0.3,
		DeathVolume:       0.9,
		ExplosionDuration: 1,
	}
	ecs.Renderables[id] = &component.Renderable{Radius: 18, Shape: component.ShapeShip}
	return id
}

func addPlayer(t *testing.T, ecs *entity.ECS, at component.Position, health float64) types.EntityID {
	t.Helper()
	h, err := component.NewHealth(health, 0)
	if err != nil {
		t.Fatal(err)
	}
	id := ecs.NewEntity()
	ecs.Positions[id] = &at
	ecs.Healths[id] = h
	ecs.Players[id] = &component.Player{Speed: 100, FiringPeriod: 0.5, LaserSpeed: 600, LaserDamage: 100}
	return id
}
