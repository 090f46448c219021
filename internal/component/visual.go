// internal/component/visual.go
package component

// Explosion — визуальный эффект взрыва, растущий до MaxRadius за Duration.
type Explosion struct {
	Timer     float64 // Сколько времени эффект уже активен
	Duration  float64 // Общая продолжительность эффекта
	MaxRadius float64
}

// Progress возвращает долю прошедшего времени эффекта в [0, 1].
func (e *Explosion) Progress() float64 {
	if e.Duration <= 0 {
		return 1
	}
	p := e.Timer / e.Duration
	if p > 1 {
		return 1
	}
	return p
}
