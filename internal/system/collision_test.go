package system

import (
	"testing"

	"go-space-shooter/internal/component"
	"go-space-shooter/internal/entity"
	"go-space-shooter/internal/event"
	"go-space-shooter/internal/system/mocks"

	"go.uber.org/mock/gomock"
)

func TestCollisionSystem(t *testing.T) {
	tests := []struct {
		name    string
		laserAt component.Position
		hostile bool
		want    string // "enemy", "player" или пусто
	}{
		{"player laser on enemy", component.Position{X: 100, Y: 110}, false, "enemy"},
		{"player laser misses", component.Position{X: 300, Y: 300}, false, ""},
		{"player laser over player", component.Position{X: 270, Y: 870}, false, ""},
		{"enemy laser on player", component.Position{X: 275, Y: 860}, true, "player"},
		{"enemy laser over enemy", component.Position{X: 100, Y: 100}, true, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			handler := mocks.NewMockCollisionHandler(ctrl)
			ecs := entity.NewECS()
			enemy := addEnemy(t, ecs, component.Position{X: 100, Y: 100}, 500, 150)
			player := addPlayer(t, ecs, component.Position{X: 270, Y: 870}, 200)
			laser := spawnLaser(ecs, laserSpec{From: tt.laserAt, Speed: 1, Damage: 100, Hostile: tt.hostile})

			switch tt.want {
			case "enemy":
				handler.EXPECT().OnCollision(enemy, laser).Times(1)
			case "player":
				handler.EXPECT().OnCollision(player, laser).Times(1)
			}

			NewCollisionSystem(ecs, handler).Update()
		})
	}
}

func TestCollisionSystemSkipsSpentLasers(t *testing.T) {
	ctrl := gomock.NewController(t)
	handler := mocks.NewMockCollisionHandler(ctrl)
	ecs := entity.NewECS()
	addEnemy(t, ecs, component.Position{X: 100, Y: 100}, 500, 150)
	laser := spawnLaser(ecs, laserSpec{From: component.Position{X: 100, Y: 100}, Speed: -600, Damage: 100})
	ecs.Projectiles[laser].Hit()

	NewCollisionSystem(ecs, handler).Update()
}

func TestCollisionSystemOneTargetPerLaser(t *testing.T) {
	ctrl := gomock.NewController(t)
	handler := mocks.NewMockCollisionHandler(ctrl)
	ecs := entity.NewECS()
	first := addEnemy(t, ecs, component.Position{X: 100, Y: 100}, 500, 150)
	addEnemy(t, ecs, component.Position{X: 102, Y: 100}, 500, 150)
	laser := spawnLaser(ecs, laserSpec{From: component.Position{X: 101, Y: 100}, Speed: -600, Damage: 100})

	handler.EXPECT().OnCollision(first, laser).Times(1)
	NewCollisionSystem(ecs, handler).Update()
}

func TestCollisionWithCombatSystem(t *testing.T) {
	ctrl := gomock.NewController(t)
	scores := mocks.NewMockScoreReporter(ctrl)
	ecs := entity.NewECS()
	dispatcher := event.NewDispatcher()
	cs := NewCombatSystem(ecs, dispatcher, scores)
	enemy := addEnemy(t, ecs, component.Position{X: 100, Y: 100}, 100, 150)
	spawnLaser(ecs, laserSpec{From: component.Position{X: 100, Y: 115}, Speed: -600, Damage: 100})

	scores.EXPECT().AddToScore(gomock.Eq(150))
	NewCollisionSystem(ecs, cs).Update()
	NewProjectileSystem(ecs, dispatcher).Cleanup()

	if ecs.Exists(enemy) {
		t.Error("enemy must be destroyed")
	}
	if len(ecs.Projectiles) != 0 {
		t.Errorf("spent laser must be cleaned up, %d left", len(ecs.Projectiles))
	}
}
