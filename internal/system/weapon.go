// internal/system/weapon.go
package system

import (
	"log"

	"go-arena-shooter/internal/component"
	"go-arena-shooter/internal/config"
	"go-arena-shooter/internal/defs"
	"go-arena-shooter/internal/entity"
	"go-arena-shooter/internal/event"
	"go-arena-shooter/internal/types"
)

// WeaponSystem ведёт перезарядку оружейных креплений и выпускает снаряды из
// пула по команде. Сам решает, откуда вылетает снаряд: дуло смещено от центра
// владельца по направлению выстрела.
type WeaponSystem struct {
	ecs        *entity.ECS
	pool       *entity.ProjectilePool
	dispatcher *event.Dispatcher
}

func NewWeaponSystem(ecs *entity.ECS, pool *entity.ProjectilePool, dispatcher *event.Dispatcher) *WeaponSystem {
	return &WeaponSystem{ecs: ecs, pool: pool, dispatcher: dispatcher}
}

func (s *WeaponSystem) Update(deltaTime float64) {
	for _, mount := range s.ecs.WeaponMounts {
		if mount.FireCooldown > 0 {
			mount.FireCooldown -= deltaTime
		}
	}
}

// TryFire выпускает снаряд владельца в направлении dir. Возвращает false,
// если крепление отсутствует, оружие на перезарядке или определение не
// найдено в библиотеке.
func (s *WeaponSystem) TryFire(owner types.EntityID, dir component.Direction) bool {
	mount, hasMount := s.ecs.WeaponMounts[owner]
	if !hasMount {
		return false
	}
	if mount.FireCooldown > 0 {
		return false
	}

	def, ok := defs.WeaponLibrary[mount.WeaponID]
	if !ok {
		log.Printf("WeaponSystem: нет определения оружия %s, выстрел отменён", mount.WeaponID)
		return false
	}

	pos, hasPos := s.ecs.Positions[owner]
	if !hasPos {
		return false
	}

	dx, dy := dir.Vector()
	muzzle := config.PlayerRadius + config.ProjectileRadius + 2
	s.pool.Acquire(&def, entity.SpawnParams{
		X:       pos.X + dx*muzzle,
		Y:       pos.Y + dy*muzzle,
		Dir:     dir,
		OwnerID: owner,
	})

	mount.FireCooldown = 1.0 / def.FireRate

	if s.dispatcher.HasListeners(event.ProjectileFired) {
		s.dispatcher.Dispatch(event.Event{Type: event.ProjectileFired, Data: def.ID})
	}
	return true
}

// SwitchWeapon меняет оружие владельца. Остаток перезарядки сохраняется,
// чтобы сменой оружия нельзя было обнулить кулдаун.
func (s *WeaponSystem) SwitchWeapon(owner types.EntityID, weaponID string) {
	mount, hasMount := s.ecs.WeaponMounts[owner]
	if !hasMount || mount.WeaponID == weaponID {
		return
	}
	if _, ok := defs.WeaponLibrary[weaponID]; !ok {
		log.Printf("WeaponSystem: попытка взять неизвестное оружие %s", weaponID)
		return
	}
	mount.WeaponID = weaponID
}
