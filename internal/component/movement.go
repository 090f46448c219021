// component/movement.go
package component

import (
	"errors"
	"math"
)

var (
	ErrNoWaypoints  = errors.New("waypoint mover: waypoint list is empty")
	ErrInvalidSpeed = errors.New("waypoint mover: speed must be positive")
)

// Position — компонент позиции
type Position struct {
	X, Y float64
}

// Velocity — компонент скорости
type Velocity struct {
	X, Y float64
}

// Signal — результат одного шага WaypointMover.
type Signal int

const (
	SignalMoving         Signal = iota // движется к текущей точке
	SignalArrived                      // достиг промежуточной точки на этом тике
	SignalArrivedAtFinal               // путь пройден, сущность должна исчезнуть (ровно один раз)
	SignalDeparted                     // терминальное состояние, движения больше нет
)

func (s Signal) String() string {
	switch s {
	case SignalMoving:
		return "Moving"
	case SignalArrived:
		return "Arrived"
	case SignalArrivedAtFinal:
		return "ArrivedAtFinal"
	case SignalDeparted:
		return "Departed"
	}
	return "Unknown"
}

// WaypointMover ведет позицию по упорядоченному списку точек с постоянной скоростью.
// Сущность создается прямо на первой точке, поэтому она считается уже достигнутой.
type WaypointMover struct {
	waypoints []Position
	position  Position
	speed     float64
	index     int // индекс последней достигнутой точки
	departed  bool
}

// NewWaypointMover создает движок пути. Список точек копируется и дальше только читается.
func NewWaypointMover(waypoints []Position, speed float64) (*WaypointMover, error) {
	if len(waypoints) == 0 {
		return nil, ErrNoWaypoints
	}
	if !(speed > 0) {
		return nil, ErrInvalidSpeed
	}
	wp := make([]Position, len(waypoints))
	copy(wp, waypoints)
	return &WaypointMover{
		waypoints: wp,
		position:  wp[0],
		speed:     speed,
	}, nil
}

// Advance сдвигает позицию к текущей цели на speed*deltaTime, не перескакивая ее.
func (m *WaypointMover) Advance(deltaTime float64) Signal {
	if m.departed {
		return SignalDeparted
	}
	next := m.index + 1
	if next >= len(m.waypoints) {
		m.departed = true
		return SignalArrivedAtFinal
	}

	target := m.waypoints[next]
	m.position = MoveTowards(m.position, target, m.speed*deltaTime)

	// NOTE: точное сравнение без эпсилона. MoveTowards ставит позицию ровно в цель,
	// когда остаток пути не больше шага, поэтому на практике это срабатывает.
	if arrived(m.position, target) {
		m.index = next
		return SignalArrived
	}
	return SignalMoving
}

// Position возвращает текущую позицию.
func (m *WaypointMover) Position() Position {
	return m.position
}

// Index возвращает индекс последней достигнутой точки.
func (m *WaypointMover) Index() int {
	return m.index
}

// Target возвращает текущую цель; false, если точек больше не осталось.
func (m *WaypointMover) Target() (Position, bool) {
	next := m.index + 1
	if m.departed || next >= len(m.waypoints) {
		return Position{}, false
	}
	return m.waypoints[next], true
}

// Speed возвращает скорость движения, пикселей в секунду.
func (m *WaypointMover) Speed() float64 {
	return m.speed
}

// Departed сообщает, что путь завершен.
func (m *WaypointMover) Departed() bool {
	return m.departed
}

// MoveTowards перемещает from к to не более чем на maxDistance.
// Если остаток пути не больше шага, возвращается ровно to.
func MoveTowards(from, to Position, maxDistance float64) Position {
	dx := to.X - from.X
	dy := to.Y - from.Y
	dist := math.Sqrt(dx*dx + dy*dy)
	if dist == 0 || dist <= maxDistance {
		return to
	}
	if maxDistance <= 0 {
		return from
	}
	return Position{
		X: from.X + dx/dist*maxDistance,
		Y: from.Y + dy/dist*maxDistance,
	}
}

func arrived(pos, target Position) bool {
	return pos.X == target.X && pos.Y == target.Y
}
