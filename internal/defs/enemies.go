// internal/defs/enemies.go
package defs

import (
	"go-space-shooter/internal/config"

	"gopkg.in/yaml.v3"
)

// EnemyDefinition holds all the static data for a specific type of enemy.
// Fields missing from the document keep the values from config; an explicit zero is kept as is.
type EnemyDefinition struct {
	ID                  string   `yaml:"id"`
	Name                string   `yaml:"name"`
	Health              float64  `yaml:"health"`
	Score               int      `yaml:"score"`
	MinTimeBetweenShots float64  `yaml:"minTimeBetweenShots"`
	MaxTimeBetweenShots float64  `yaml:"maxTimeBetweenShots"`
	LaserSpeed          float64  `yaml:"laserSpeed"`
	LaserDamage         float64  `yaml:"laserDamage"`
	LaserVolume         float64  `yaml:"laserVolume"`
	DeathVolume         float64  `yaml:"deathVolume"`
	ExplosionDuration   float64  `yaml:"explosionDuration"`
	Radius              float64  `yaml:"radius"`
	Color               HexColor `yaml:"color"`
}

func defaultEnemy() EnemyDefinition {
	return EnemyDefinition{
		Health:              config.DefaultEnemyHealth,
		Score:               config.DefaultEnemyScore,
		MinTimeBetweenShots: config.DefaultMinTimeBetweenShots,
		MaxTimeBetweenShots: config.DefaultMaxTimeBetweenShots,
		LaserSpeed:          config.DefaultEnemyLaserSpeed,
		LaserDamage:         config.DefaultEnemyLaserDamage,
		LaserVolume:         config.DefaultLaserVolume,
		DeathVolume:         config.DefaultDeathVolume,
		ExplosionDuration:   config.DefaultExplosionDuration,
		Radius:              config.EnemyRadius,
	}
}

// UnmarshalYAML декодирует определение поверх значений по умолчанию.
func (d *EnemyDefinition) UnmarshalYAML(node *yaml.Node) error {
	type plain EnemyDefinition
	def := plain(defaultEnemy())
	if err := node.Decode(&def); err != nil {
		return err
	}
	*d = EnemyDefinition(def)
	return nil
}

// PlayerDefinition holds the tuning of the player ship and its laser.
type PlayerDefinition struct {
	Health       float64 `yaml:"health"`
	Speed        float64 `yaml:"speed"`
	FiringPeriod float64 `yaml:"firingPeriod"`
	LaserSpeed   float64 `yaml:"laserSpeed"`
	LaserDamage  float64 `yaml:"laserDamage"`
	LaserVolume  float64 `yaml:"laserVolume"`
}

func defaultPlayer() PlayerDefinition {
	return PlayerDefinition{
		Health:       config.PlayerHealth,
		Speed:        config.PlayerSpeed,
		FiringPeriod: config.PlayerFiringPeriod,
		LaserSpeed:   config.PlayerLaserSpeed,
		LaserDamage:  config.PlayerLaserDamage,
		LaserVolume:  config.DefaultLaserVolume,
	}
}

// UnmarshalYAML декодирует настройки игрока поверх значений по умолчанию.
func (d *PlayerDefinition) UnmarshalYAML(node *yaml.Node) error {
	type plain PlayerDefinition
	def := plain(defaultPlayer())
	if err := node.Decode(&def); err != nil {
		return err
	}
	*d = PlayerDefinition(def)
	return nil
}
