// internal/app/game.go
package app

import (
	"fmt"
	"log"

	"go-space-shooter/internal/component"
	"go-space-shooter/internal/defs"
	"go-space-shooter/internal/entity"
	"go-space-shooter/internal/event"
	"go-space-shooter/internal/system"
	"go-space-shooter/internal/types"
	"go-space-shooter/internal/utils"
)

// Game holds the main game state and logic. It knows nothing about the window,
// audio or input devices: the host feeds it ticks and input and listens to its events.
type Game struct {
	ECS                *entity.ECS
	Library            *defs.Library
	EventDispatcher    *event.Dispatcher
	Rng                *utils.PRNGService
	MovementSystem     *system.MovementSystem
	CombatSystem       *system.CombatSystem
	ProjectileSystem   *system.ProjectileSystem
	CollisionSystem    *system.CollisionSystem
	WaveSystem         *system.WaveSystem
	PlayerSystem       *system.PlayerSystem
	StateSystem        *system.StateSystem
	VisualEffectSystem *system.VisualEffectSystem
	RenderSystem       *system.RenderSystem
	PlayerID           types.EntityID

	gameTime    float64
	isPaused    bool
	currentWave *component.Wave
}

// NewGame initializes a new game instance from the definitions and a seed (0 — time based).
func NewGame(library *defs.Library, seed int64) (*Game, error) {
	if library == nil {
		return nil, fmt.Errorf("game: definitions library is nil")
	}

	ecs := entity.NewECS()
	eventDispatcher := event.NewDispatcher()
	rng := utils.NewPRNGService(seed)

	g := &Game{
		ECS:             ecs,
		Library:         library,
		EventDispatcher: eventDispatcher,
		Rng:             rng,
	}
	ecs.Session = component.NewGameSession(func(score int) {
		eventDispatcher.Dispatch(event.Event{Type: event.ScoreChanged, Data: score})
	})

	g.MovementSystem = system.NewMovementSystem(ecs, eventDispatcher)
	g.CombatSystem = system.NewCombatSystem(ecs, eventDispatcher, ecs.Session)
	g.ProjectileSystem = system.NewProjectileSystem(ecs, eventDispatcher)
	g.CollisionSystem = system.NewCollisionSystem(ecs, g.CombatSystem)
	g.WaveSystem = system.NewWaveSystem(ecs, library, rng, eventDispatcher)
	g.PlayerSystem = system.NewPlayerSystem(ecs, eventDispatcher)
	g.StateSystem = system.NewStateSystem(ecs, eventDispatcher)
	g.VisualEffectSystem = system.NewVisualEffectSystem(ecs)
	g.RenderSystem = system.NewRenderSystem(ecs)

	eventDispatcher.Subscribe(&GameEventListener{game: g}, event.WaveEnded)

	playerID, err := g.PlayerSystem.SpawnPlayer(library.Player)
	if err != nil {
		return nil, err
	}
	g.PlayerID = playerID
	g.startWave(1)

	log.Printf("New game, seed %d", rng.Seed())
	return g, nil
}

// Update progresses the game state by one tick.
func (g *Game) Update(deltaTime float64, input component.PlayerInput) {
	if g.isPaused {
		return
	}
	g.gameTime += deltaTime
	g.ECS.GameTime = g.gameTime

	g.VisualEffectSystem.Update(deltaTime)
	if g.ECS.Session.IsOver() {
		return
	}

	g.WaveSystem.Update(deltaTime, g.currentWave)
	g.PlayerSystem.Update(deltaTime, input)
	g.MovementSystem.Update(deltaTime)
	g.CombatSystem.Update(deltaTime)
	g.ProjectileSystem.Update(deltaTime)
	g.CollisionSystem.Update()
	g.ProjectileSystem.Cleanup()
}

func (g *Game) startWave(number int) {
	wave := g.WaveSystem.StartWave(number)
	if wave == nil {
		log.Printf("No more waves after %d", number-1)
		g.currentWave = nil
		return
	}
	g.currentWave = wave
	g.ECS.Session.Wave = number
}

// SetPaused останавливает или возобновляет симуляцию.
func (g *Game) SetPaused(paused bool) {
	g.isPaused = paused
}

func (g *Game) IsPaused() bool {
	return g.isPaused
}

func (g *Game) GetGameTime() float64 {
	return g.gameTime
}

func (g *Game) CurrentWave() *component.Wave {
	return g.currentWave
}

// PlayerHealthFraction возвращает долю здоровья игрока; 0, если корабль уничтожен.
func (g *Game) PlayerHealthFraction() float64 {
	if h, ok := g.ECS.Healths[g.PlayerID]; ok {
		return h.Fraction()
	}
	return 0
}

// GameEventListener обрабатывает события, важные для основного игрового цикла.
type GameEventListener struct {
	game *Game
}

// OnEvent реализует интерфейс event.Listener.
func (l *GameEventListener) OnEvent(e event.Event) {
	switch e.Type {
	case event.WaveEnded:
		if data, ok := e.Data.(event.WaveData); ok {
			l.game.startWave(data.Number + 1)
		}
	}
}
