package event

import (
	"go-space-shooter/internal/component"
	"go-space-shooter/internal/types"
)

const (
	EnemySpawned    EventType = "EnemySpawned"    // Враг появился
	EnemyFired      EventType = "EnemyFired"      // Враг выстрелил
	EnemyDeparted   EventType = "EnemyDeparted"   // Враг прошел весь путь и исчез
	EnemyDestroyed  EventType = "EnemyDestroyed"  // Враг уничтожен
	PlayerFired     EventType = "PlayerFired"     // Игрок выстрелил
	PlayerDestroyed EventType = "PlayerDestroyed" // Игрок уничтожен
	LaserDespawned  EventType = "LaserDespawned"  // Лазер улетел за экран
	ScoreChanged    EventType = "ScoreChanged"
	WaveStarted     EventType = "WaveStarted"
	WaveEnded       EventType = "WaveEnded" // Волна закончилась
)

// FireData — данные событий EnemyFired и PlayerFired.
type FireData struct {
	ShooterID types.EntityID
	LaserID   types.EntityID
	Position  component.Position
	Volume    float64
}

// DestroyedData — данные событий EnemyDestroyed и PlayerDestroyed.
type DestroyedData struct {
	ID       types.EntityID
	Position component.Position
	Score    int
	Volume   float64
}

// WaveData — данные событий WaveStarted и WaveEnded.
type WaveData struct {
	Number  int
	Enemies int
}
