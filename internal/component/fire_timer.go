package component

import "errors"

var ErrInvalidFireBounds = errors.New("fire timer: bounds must satisfy 0 < min <= max and a random source is required")

// RangeSource выдает равномерное случайное число из [min, max] включительно.
type RangeSource interface {
	RangeFloat(min, max float64) float64
}

// FireTimer — обратный отсчет до следующего выстрела со случайным интервалом.
type FireTimer struct {
	remaining float64
	min, max  float64
	rng       RangeSource
}

// NewFireTimer создает таймер и сразу вытягивает первый интервал.
func NewFireTimer(min, max float64, rng RangeSource) (*FireTimer, error) {
	if rng == nil || !(min > 0) || max < min {
		return nil, ErrInvalidFireBounds
	}
	t := &FireTimer{min: min, max: max, rng: rng}
	t.Reset()
	return t, nil
}

// Tick уменьшает остаток. Возвращает true, если пора стрелять; в этом случае
// остаток сразу перевытягивается из [min, max]. За один тик не больше одного выстрела.
func (t *FireTimer) Tick(deltaTime float64) bool {
	t.remaining -= deltaTime
	if t.remaining <= 0 {
		t.Reset()
		return true
	}
	return false
}

// Reset перевытягивает остаток из [min, max].
func (t *FireTimer) Reset() {
	t.remaining = t.rng.RangeFloat(t.min, t.max)
}

// Remaining возвращает время до следующего выстрела.
func (t *FireTimer) Remaining() float64 {
	return t.remaining
}

// SetRemaining задает остаток напрямую (например, чтобы первый выстрел был сразу).
func (t *FireTimer) SetRemaining(v float64) {
	t.remaining = v
}

// Bounds возвращает границы интервала между выстрелами.
func (t *FireTimer) Bounds() (min, max float64) {
	return t.min, t.max
}
