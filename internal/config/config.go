// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 540
	ScreenHeight = 960
	MaxDeltaTime = 0.06

	// Запас за краем экрана, после которого лазер считается невидимым
	OffscreenMargin = 16.0

	EnemyRadius  = 18.0
	PlayerRadius = 16.0
	LaserRadius  = 4.0
	LaserLength  = 14.0

	PlayerSpeed         = 320.0 // pixels per second
	PlayerStartY        = ScreenHeight - 90
	PlayerHealth        = 200.0
	PlayerFiringPeriod  = 0.5
	PlayerLaserSpeed    = 600.0
	PlayerLaserDamage   = 100.0
	PlayerLaserID       = "PLAYER_LASER"
	EnemyLaserID        = "ENEMY_LASER"
	ExplosionMaxRadius  = 42.0
	GameOverRestartWait = 2.0

	ScoreIndicatorX = 16
	ScoreIndicatorY = 28
	WaveIndicatorX  = ScreenWidth - 110
	WaveIndicatorY  = 28
	HealthBarX      = 16
	HealthBarY      = ScreenHeight - 24
)

// Значения по умолчанию для врага, если в определениях поле не задано
const (
	DefaultEnemyHealth         = 500.0
	DefaultEnemyScore          = 150
	DefaultMinTimeBetweenShots = 0.2
	DefaultMaxTimeBetweenShots = 3.0
	DefaultEnemyLaserSpeed     = 260.0
	DefaultEnemyLaserDamage    = 100.0
	DefaultDeathVolume         = 1.0
	DefaultLaserVolume         = 0.3
	DefaultExplosionDuration   = 1.0
)

// Звук
const (
	SampleRate      = 44100
	LaserToneHz     = 880.0
	LaserToneLength = 0.08
	DeathToneHz     = 110.0
	DeathToneLength = 0.45
)

var (
	BackgroundColor  = color.RGBA{8, 8, 24, 255}
	PlayerColor      = color.RGBA{80, 200, 255, 255}
	EnemyColor       = color.RGBA{220, 60, 60, 255}
	EnemyStrokeColor = color.RGBA{255, 180, 180, 255}
	PlayerLaserColor = color.RGBA{120, 255, 120, 255}
	EnemyLaserColor  = color.RGBA{255, 90, 200, 255}
	ExplosionColor   = color.RGBA{255, 200, 60, 200}
	TextLightColor   = color.RGBA{240, 240, 240, 255}
	HealthFullColor  = color.RGBA{50, 205, 50, 255}
	HealthLowColor   = color.RGBA{220, 60, 60, 255}
	HealthEmptyColor = color.RGBA{60, 60, 70, 255}
	UIBorderColor    = color.RGBA{240, 240, 240, 255}
	StrokeWidth      = 2.0
)
