// internal/component/projectile.go
package component

import "go-space-shooter/internal/types"

// Projectile представляет летящий лазер.
type Projectile struct {
	DefID   string
	OwnerID types.EntityID
	Damage  float64
	Hostile bool // true — выпущен врагом и может попасть только в игрока
	hit     bool
}

// Hit помечает лазер как попавший; система снарядов удалит его на этом же тике.
func (p *Projectile) Hit() {
	p.hit = true
}

func (p *Projectile) HasHit() bool {
	return p.hit
}
