// internal/component/projectile.go
package component

import (
	"go-arena-shooter/internal/defs"
	"go-arena-shooter/internal/types"
	"image/color"
)

// Projectile представляет летящий снаряд. Вариант назначается при выстреле
// и больше не меняется: по нему резолвер попаданий выбирает ветвь обработки.
type Projectile struct {
	WeaponID string
	Variant  defs.WeaponVariant
	OwnerID  types.EntityID
	Damage   int
	Speed    float64
	Dir      Direction
	Color    color.RGBA

	// Состояние PIERCE: какие цели уже засчитаны и сколько их всего.
	HitTargets map[types.EntityID]struct{}
	HitCount   int
	MaxPierce  int

	// Состояние EXPLOSIVE: детонация одноразовая, каждый задетый взрывом
	// враг учитывается ровно один раз.
	ExplosionRadius float64
	Detonated       bool
	DamagedByBlast  map[types.EntityID]struct{}
}

// Reset очищает всю бухгалтерию, накопленную за жизнь снаряда.
// Вызывается пулом при возврате слота в свободный список.
func (p *Projectile) Reset() {
	p.HitCount = 0
	p.Detonated = false
	for id := range p.HitTargets {
		delete(p.HitTargets, id)
	}
	for id := range p.DamagedByBlast {
		delete(p.DamagedByBlast, id)
	}
}
