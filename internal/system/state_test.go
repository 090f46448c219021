package system

import (
	"testing"

	"go-space-shooter/internal/component"
	"go-space-shooter/internal/entity"
	"go-space-shooter/internal/event"
)

func TestStateSystemGameOver(t *testing.T) {
	ecs := entity.NewECS()
	dispatcher := event.NewDispatcher()
	ss := NewStateSystem(ecs, dispatcher)
	addEnemy(t, ecs, component.Position{X: 10, Y: 10}, 500, 150)
	spawnLaser(ecs, laserSpec{From: component.Position{X: 10, Y: 40}, Speed: 260, Hostile: true})
	spawnExplosion(ecs, component.Position{X: 270, Y: 870}, 1)

	if ss.Current() != component.PlayingPhase {
		t.Fatal("session must start in play")
	}
	dispatcher.Dispatch(event.Event{Type: event.PlayerDestroyed})

	if ss.Current() != component.GameOverPhase {
		t.Fatalf("expected game over, got %v", ss.Current())
	}
	if len(ecs.Enemies) != 0 || len(ecs.Projectiles) != 0 {
		t.Error("enemies and lasers must be cleared")
	}
	if len(ecs.Explosions) != 1 {
		t.Error("explosions must finish playing")
	}
}

func TestVisualEffectSystem(t *testing.T) {
	ecs := entity.NewECS()
	vs := NewVisualEffectSystem(ecs)
	id := spawnExplosion(ecs, component.Position{X: 50, Y: 50}, 1)

	vs.Update(0.5)
	r := ecs.Renderables[id]
	if r.Radius != 21 || r.Color.A != 100 {
		t.Errorf("halfway explosion: radius %g alpha %d", r.Radius, r.Color.A)
	}

	vs.Update(0.5)
	if ecs.Exists(id) {
		t.Error("finished explosion must be removed")
	}
}
