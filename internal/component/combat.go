package component

import "errors"

var ErrInvalidHealth = errors.New("health: starting health must be positive and score non-negative")

// DestroyedEvent — терминальный сигнал с очками за уничтожение.
type DestroyedEvent struct {
	Score int
}

// Health — компонент здоровья. Состояние одностороннее: alive -> destroyed.
type Health struct {
	Value     float64 // может временно уйти в минус
	Max       float64
	Score     int
	destroyed bool
}

// NewHealth создает здоровье с начальным значением и наградой за уничтожение.
func NewHealth(health float64, score int) (*Health, error) {
	if !(health > 0) || score < 0 {
		return nil, ErrInvalidHealth
	}
	return &Health{Value: health, Max: health, Score: score}, nil
}

// ApplyDamage вычитает урон. Событие уничтожения возвращается ровно один раз;
// после этого урон больше не обрабатывается.
func (h *Health) ApplyDamage(amount float64) (DestroyedEvent, bool) {
	if h.destroyed {
		return DestroyedEvent{}, false
	}
	h.Value -= amount
	if h.Value <= 0 {
		h.destroyed = true
		return DestroyedEvent{Score: h.Score}, true
	}
	return DestroyedEvent{}, false
}

func (h *Health) Destroyed() bool {
	return h.destroyed
}

// Fraction возвращает долю оставшегося здоровья в [0, 1].
func (h *Health) Fraction() float64 {
	if h.Max <= 0 || h.Value <= 0 {
		return 0
	}
	if h.Value >= h.Max {
		return 1
	}
	return h.Value / h.Max
}
