// internal/utils/prng.go
package utils

import (
	"math/rand"
	"time"
)

// unitSteps — число равных шагов на отрезке [0, 1] для включающей выборки.
const unitSteps = 1 << 53

// PRNGService — это обертка над стандартным генератором случайных чисел Go,
// которая позволяет использовать предсказуемый (seeded) рандом во всей игре.
type PRNGService struct {
	rng  *rand.Rand
	seed int64
}

// NewPRNGService создает новый экземпляр сервиса с указанным сидом.
// Если сид равен 0, используется текущее время.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	source := rand.NewSource(seed)
	return &PRNGService{
		rng:  rand.New(source),
		seed: seed,
	}
}

// Seed возвращает сид, с которым был создан генератор.
func (s *PRNGService) Seed() int64 {
	return s.seed
}

// Intn возвращает случайное целое число в диапазоне [0, n).
func (s *PRNGService) Intn(n int) int {
	return s.rng.Intn(n)
}

// Float64 возвращает случайное число с плавающей точкой в диапазоне [0.0, 1.0).
func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}

// UnitInclusive возвращает случайное число в диапазоне [0.0, 1.0], включая обе границы.
func (s *PRNGService) UnitInclusive() float64 {
	return float64(s.rng.Int63n(unitSteps+1)) / unitSteps
}

// RangeFloat возвращает равномерно распределенное число из [min, max] включительно.
// При min > max границы меняются местами.
func (s *PRNGService) RangeFloat(min, max float64) float64 {
	if min > max {
		min, max = max, min
	}
	v := min + (max-min)*s.UnitInclusive()
	// Округление может вывести значение за границу на один ULP
	if v > max {
		v = max
	}
	if v < min {
		v = min
	}
	return v
}
