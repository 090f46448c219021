package component

// Enemy представляет вражеский корабль.
type Enemy struct {
	DefID             string  // ID из definitions.yaml
	WaveNumber        int     // Номер волны, в которой враг появился
	LaserSpeed        float64 // Скорость вражеского лазера (вниз по экрану)
	LaserDamage       float64
	LaserVolume       float64 // Громкость звука выстрела, [0, 1]
	DeathVolume       float64 // Громкость звука смерти, [0, 1]
	ExplosionDuration float64 // Сколько живет эффект взрыва, сек
}
