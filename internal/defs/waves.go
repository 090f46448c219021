package defs

// WaveDefinition описывает параметры для одной волны врагов.
type WaveDefinition struct {
	EnemyID           string  `yaml:"enemy"`             // Идентификатор врага из enemies
	Count             int     `yaml:"count"`             // Количество врагов в волне
	MoveSpeed         float64 `yaml:"moveSpeed"`         // Скорость движения по маршруту
	TimeBetweenSpawns float64 `yaml:"timeBetweenSpawns"` // Интервал между появлением врагов, сек
	SpawnRandomFactor float64 `yaml:"spawnRandomFactor"` // Случайная добавка к интервалу, [0, factor]
	Waypoints         []Point `yaml:"waypoints"`
}
