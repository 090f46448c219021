// internal/component/player.go
package component

// Player хранит информацию, специфичную для корабля игрока.
type Player struct {
	Speed        float64 // Горизонтальная скорость, пикселей в секунду
	FiringPeriod float64 // Пауза между выстрелами при зажатой кнопке
	FireCooldown float64 // Оставшееся время до следующего выстрела
	LaserSpeed   float64
	LaserDamage  float64
	LaserVolume  float64
}

// PlayerInput — состояние управления на текущем тике.
type PlayerInput struct {
	Left, Right bool
	Fire        bool
}
