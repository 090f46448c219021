package app

import (
	"reflect"
	"testing"

	"go-space-shooter/internal/component"
	"go-space-shooter/internal/defs"
	"go-space-shooter/internal/event"
	"go-space-shooter/internal/types"
)

const tick = 1.0 / 60

// Враги не успевают выстрелить: интервал больше длины теста.
const quietDefinitions = `
looping: false
enemies:
  - id: ENEMY_QUIET
    minTimeBetweenShots: 100
    maxTimeBetweenShots: 100
waves:
  - enemy: ENEMY_QUIET
    count: 2
    moveSpeed: 200
    timeBetweenSpawns: 0.2
    waypoints:
      - {x: 100, y: -20}
      - {x: 100, y: 300}
  - enemy: ENEMY_QUIET
    count: 1
    moveSpeed: 200
    waypoints:
      - {x: 400, y: -20}
      - {x: 400, y: 300}
`

func newTestGame(t *testing.T, library *defs.Library) *Game {
	t.Helper()
	g, err := NewGame(library, 42)
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	return g
}

func run(g *Game, seconds float64, input component.PlayerInput) {
	for i := 0; i < int(seconds/tick); i++ {
		g.Update(tick, input)
	}
}

func firstEnemy(g *Game) (types.EntityID, bool) {
	var best types.EntityID
	for id := range g.ECS.Enemies {
		if best == 0 || id < best {
			best = id
		}
	}
	return best, best != 0
}

func TestNewGame(t *testing.T) {
	if _, err := NewGame(nil, 1); err == nil {
		t.Error("nil library must be rejected")
	}

	g := newTestGame(t, defs.DefaultLibrary())
	if !g.ECS.Exists(g.PlayerID) {
		t.Fatal("player must be spawned")
	}
	if g.ECS.Session.Wave != 1 || g.CurrentWave() == nil {
		t.Fatalf("first wave must be started, session %+v", g.ECS.Session)
	}
	if g.PlayerHealthFraction() != 1 {
		t.Errorf("expected full health, got %g", g.PlayerHealthFraction())
	}
}

func TestGameWavesAdvanceAfterDeparture(t *testing.T) {
	lib, err := defs.ParseDefinitions([]byte(quietDefinitions))
	if err != nil {
		t.Fatal(err)
	}
	g := newTestGame(t, lib)
	var started []int
	g.EventDispatcher.Subscribe(event.ListenerFunc(func(e event.Event) {
		started = append(started, e.Data.(event.WaveData).Number)
	}), event.WaveStarted)

	run(g, 10, component.PlayerInput{})

	if g.ECS.Session.Wave != 2 {
		t.Errorf("expected to reach wave 2, got %d", g.ECS.Session.Wave)
	}
	if !reflect.DeepEqual(started, []int{2}) {
		t.Errorf("unexpected wave starts %v", started)
	}
	if g.CurrentWave() != nil {
		t.Error("no wave expected after the last definition without looping")
	}
	if len(g.ECS.Enemies) != 0 {
		t.Errorf("all enemies must have departed, %d left", len(g.ECS.Enemies))
	}
	if g.ECS.Session.Score != 0 {
		t.Errorf("departed enemies give no score, got %d", g.ECS.Session.Score)
	}
}

func TestGameScoresDestroyedEnemy(t *testing.T) {
	g := newTestGame(t, defs.DefaultLibrary())
	var scores []int
	g.EventDispatcher.Subscribe(event.ListenerFunc(func(e event.Event) {
		scores = append(scores, e.Data.(int))
	}), event.ScoreChanged)

	run(g, 1, component.PlayerInput{})
	enemy, ok := firstEnemy(g)
	if !ok {
		t.Fatal("expected an enemy on screen")
	}

	laser := g.ECS.NewEntity()
	at := *g.ECS.Positions[enemy]
	g.ECS.Positions[laser] = &at
	g.ECS.Projectiles[laser] = &component.Projectile{Damage: 1000}

	g.Update(0, component.PlayerInput{})

	if g.ECS.Exists(enemy) {
		t.Fatal("enemy must be destroyed")
	}
	if g.ECS.Exists(laser) {
		t.Error("spent laser must be removed on the same tick")
	}
	if g.ECS.Session.Score != 150 || !reflect.DeepEqual(scores, []int{150}) {
		t.Errorf("expected score 150, got %d (events %v)", g.ECS.Session.Score, scores)
	}
	if len(g.ECS.Explosions) != 1 {
		t.Errorf("expected an explosion, got %d", len(g.ECS.Explosions))
	}
}

func TestGameOverStopsSimulation(t *testing.T) {
	g := newTestGame(t, defs.DefaultLibrary())
	run(g, 0.5, component.PlayerInput{})

	laser := g.ECS.NewEntity()
	at := *g.ECS.Positions[g.PlayerID]
	g.ECS.Positions[laser] = &at
	g.ECS.Projectiles[laser] = &component.Projectile{Damage: 1000, Hostile: true}
	g.Update(0, component.PlayerInput{})

	if !g.ECS.Session.IsOver() {
		t.Fatal("game must be over after the player is destroyed")
	}
	if g.PlayerHealthFraction() != 0 {
		t.Error("destroyed player has no health")
	}
	if len(g.ECS.Enemies) != 0 || len(g.ECS.Projectiles) != 0 {
		t.Error("enemies and lasers must be cleared")
	}

	nextID := g.ECS.NextID
	run(g, 5, component.PlayerInput{Fire: true})
	if g.ECS.NextID != nextID {
		t.Error("nothing must spawn after game over")
	}
	if len(g.ECS.Explosions) != 0 {
		t.Error("explosions must finish after game over")
	}
}

func TestGamePause(t *testing.T) {
	g := newTestGame(t, defs.DefaultLibrary())
	g.SetPaused(true)
	g.Update(1, component.PlayerInput{})
	if g.GetGameTime() != 0 || !g.IsPaused() {
		t.Error("paused game must not advance")
	}
	g.SetPaused(false)
	g.Update(0.5, component.PlayerInput{})
	if g.GetGameTime() != 0.5 {
		t.Errorf("expected game time 0.5, got %g", g.GetGameTime())
	}
}

func TestGameIsDeterministicForSeed(t *testing.T) {
	snapshot := func() (map[types.EntityID]component.Position, types.EntityID, int) {
		g := newTestGame(t, defs.DefaultLibrary())
		run(g, 8, component.PlayerInput{Fire: true, Right: true})
		positions := make(map[types.EntityID]component.Position, len(g.ECS.Positions))
		for id, p := range g.ECS.Positions {
			positions[id] = *p
		}
		return positions, g.ECS.NextID, g.ECS.Session.Score
	}

	p1, id1, s1 := snapshot()
	p2, id2, s2 := snapshot()
	if id1 != id2 || s1 != s2 || !reflect.DeepEqual(p1, p2) {
		t.Errorf("same seed must replay the same game: ids %d/%d, score %d/%d", id1, id2, s1, s2)
	}
}
