package system

import (
	"testing"

	"go-space-shooter/internal/component"
	"go-space-shooter/internal/entity"
	"go-space-shooter/internal/event"
)

func TestWaveSystemSpawnsAndEnds(t *testing.T) {
	ecs := entity.NewECS()
	dispatcher := event.NewDispatcher()
	log := listen(dispatcher, event.WaveStarted, event.EnemySpawned, event.WaveEnded)
	ws := NewWaveSystem(ecs, testLibrary(t), lowRange{}, dispatcher)

	wave := ws.StartWave(1)
	if wave == nil {
		t.Fatal("first wave must start")
	}
	if log.count(event.WaveStarted) != 1 {
		t.Fatal("expected WaveStarted")
	}

	// Первый враг появляется сразу
	ws.Update(0, wave)
	if len(ecs.Enemies) != 1 {
		t.Fatalf("expected the first enemy immediately, got %d", len(ecs.Enemies))
	}
	ws.Update(0.25, wave)
	if len(ecs.Enemies) != 1 {
		t.Fatal("second enemy must wait for timeBetweenSpawns")
	}
	ws.Update(0.25, wave)
	ws.Update(0.5, wave)
	if len(ecs.Enemies) != 3 || wave.EnemiesToSpawn != 0 {
		t.Fatalf("expected 3 enemies, got %d (to spawn %d)", len(ecs.Enemies), wave.EnemiesToSpawn)
	}
	if log.count(event.EnemySpawned) != 3 || ws.ActiveEnemies() != 3 {
		t.Fatalf("expected 3 spawn events and active enemies, got %d/%d", log.count(event.EnemySpawned), ws.ActiveEnemies())
	}

	for id := range ecs.Enemies {
		if got := *ecs.Positions[id]; got != (component.Position{X: 100, Y: 100}) {
			t.Errorf("enemy %d must start on the first waypoint, got %+v", id, got)
		}
		if h := ecs.Healths[id]; h.Value != 500 || h.Score != 150 {
			t.Errorf("enemy %d has unexpected health %+v", id, h)
		}
		if r := ecs.FireTimers[id].Remaining(); r != 0.2 {
			t.Errorf("enemy %d fire timer must be drawn from its bounds, got %g", id, r)
		}
		if ecs.Movers[id].Speed() != 5 {
			t.Errorf("enemy %d has speed %g", id, ecs.Movers[id].Speed())
		}
	}

	ws.Update(0.1, wave)
	if wave.Ended {
		t.Fatal("wave must not end while enemies are alive")
	}

	dispatcher.Dispatch(event.Event{Type: event.EnemyDestroyed})
	dispatcher.Dispatch(event.Event{Type: event.EnemyDestroyed})
	dispatcher.Dispatch(event.Event{Type: event.EnemyDeparted})
	ws.Update(0.1, wave)
	ws.Update(0.1, wave)

	if !wave.Ended || log.count(event.WaveEnded) != 1 {
		t.Fatalf("expected the wave to end once, ended=%v events=%d", wave.Ended, log.count(event.WaveEnded))
	}
}

func TestWaveSystemStartWave(t *testing.T) {
	lib := testLibrary(t)
	ws := NewWaveSystem(entity.NewECS(), lib, lowRange{}, event.NewDispatcher())

	if ws.StartWave(0) != nil {
		t.Error("wave numbers start at 1")
	}
	if ws.StartWave(2) != nil {
		t.Error("without looping there is no wave after the last definition")
	}

	lib.Looping = true
	wave := ws.StartWave(2)
	if wave == nil || wave.DefIndex != 0 || wave.Number != 2 || wave.EnemiesToSpawn != 3 {
		t.Errorf("looping must reuse the first definition, got %+v", wave)
	}
}

func TestWaveSystemActiveCounterNeverNegative(t *testing.T) {
	dispatcher := event.NewDispatcher()
	ws := NewWaveSystem(entity.NewECS(), testLibrary(t), lowRange{}, dispatcher)
	dispatcher.Dispatch(event.Event{Type: event.EnemyDeparted})
	if ws.ActiveEnemies() != 0 {
		t.Errorf("expected 0 active enemies, got %d", ws.ActiveEnemies())
	}
}
