// internal/defs/loader.go
package defs

import (
	_ "embed"
	"fmt"
	"log"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed data/definitions.yaml
var defaultDefinitions []byte

// Library — все определения игры, загруженные из одного YAML файла.
type Library struct {
	Looping bool              `yaml:"looping"`
	Player  PlayerDefinition  `yaml:"player"`
	Enemies []EnemyDefinition `yaml:"enemies"`
	Waves   []WaveDefinition  `yaml:"waves"`

	byID map[string]EnemyDefinition
}

// Enemy ищет определение врага по ID.
func (l *Library) Enemy(id string) (EnemyDefinition, bool) {
	def, ok := l.byID[id]
	return def, ok
}

// LoadDefinitions reads the definitions file. An empty path loads the embedded defaults.
func LoadDefinitions(path string) (*Library, error) {
	if path == "" {
		return ParseDefinitions(defaultDefinitions)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read definitions file %s: %w", path, err)
	}
	lib, err := ParseDefinitions(data)
	if err != nil {
		return nil, fmt.Errorf("invalid definitions in %s: %w", path, err)
	}
	return lib, nil
}

// DefaultLibrary returns the embedded definitions. They are part of the binary,
// so a failure here is a programming error.
func DefaultLibrary() *Library {
	lib, err := ParseDefinitions(defaultDefinitions)
	if err != nil {
		panic(fmt.Sprintf("embedded definitions are invalid: %v", err))
	}
	return lib
}

// ParseDefinitions unmarshals and validates a definitions document.
// Missing fields take their defaults; explicit zeros are kept.
func ParseDefinitions(data []byte) (*Library, error) {
	// Без блока player в документе игрок получает настройки по умолчанию
	lib := Library{Player: defaultPlayer()}
	if err := yaml.Unmarshal(data, &lib); err != nil {
		return nil, fmt.Errorf("failed to unmarshal definitions: %w", err)
	}

	if err := validate(&lib); err != nil {
		return nil, err
	}

	lib.byID = make(map[string]EnemyDefinition, len(lib.Enemies))
	for _, def := range lib.Enemies {
		lib.byID[def.ID] = def
	}

	log.Printf("Loaded %d enemy definitions and %d waves", len(lib.Enemies), len(lib.Waves))
	return &lib, nil
}

func validate(lib *Library) error {
	if len(lib.Enemies) == 0 {
		return fmt.Errorf("at least one enemy definition is required")
	}
	if len(lib.Waves) == 0 {
		return fmt.Errorf("at least one wave is required")
	}

	p := lib.Player
	if p.Health <= 0 {
		return fmt.Errorf("player: health must be positive, got %g", p.Health)
	}
	if p.Speed < 0 || p.FiringPeriod < 0 || p.LaserSpeed < 0 || p.LaserDamage < 0 {
		return fmt.Errorf("player: values cannot be negative")
	}
	if p.LaserVolume < 0 || p.LaserVolume > 1 {
		return fmt.Errorf("player: laserVolume must be in [0, 1], got %g", p.LaserVolume)
	}

	seen := make(map[string]bool, len(lib.Enemies))
	for _, e := range lib.Enemies {
		if e.ID == "" {
			return fmt.Errorf("enemy definition without id")
		}
		if seen[e.ID] {
			return fmt.Errorf("enemy %s: duplicate id", e.ID)
		}
		seen[e.ID] = true

		if e.Health <= 0 {
			return fmt.Errorf("enemy %s: health must be positive, got %g", e.ID, e.Health)
		}
		if e.Score < 0 {
			return fmt.Errorf("enemy %s: score cannot be negative, got %d", e.ID, e.Score)
		}
		if e.MinTimeBetweenShots <= 0 || e.MaxTimeBetweenShots < e.MinTimeBetweenShots {
			return fmt.Errorf("enemy %s: shot bounds must satisfy 0 < min <= max, got [%g, %g]",
				e.ID, e.MinTimeBetweenShots, e.MaxTimeBetweenShots)
		}
		if e.LaserVolume < 0 || e.LaserVolume > 1 {
			return fmt.Errorf("enemy %s: laserVolume must be in [0, 1], got %g", e.ID, e.LaserVolume)
		}
		if e.DeathVolume < 0 || e.DeathVolume > 1 {
			return fmt.Errorf("enemy %s: deathVolume must be in [0, 1], got %g", e.ID, e.DeathVolume)
		}
		if !e.Color.valid() {
			return fmt.Errorf("enemy %s: color must look like #rrggbb, got %q", e.ID, e.Color)
		}
	}

	for i, w := range lib.Waves {
		if !seen[w.EnemyID] {
			return fmt.Errorf("wave %d: unknown enemy %q", i+1, w.EnemyID)
		}
		if w.Count < 1 {
			return fmt.Errorf("wave %d: count must be at least 1, got %d", i+1, w.Count)
		}
		if w.MoveSpeed <= 0 {
			return fmt.Errorf("wave %d: moveSpeed must be positive, got %g", i+1, w.MoveSpeed)
		}
		if w.TimeBetweenSpawns < 0 || w.SpawnRandomFactor < 0 {
			return fmt.Errorf("wave %d: spawn timing cannot be negative", i+1)
		}
		if len(w.Waypoints) == 0 {
			return fmt.Errorf("wave %d: waypoints cannot be empty", i+1)
		}
	}
	return nil
}
