// internal/event/types.go
package event

import (
	"go-arena-shooter/internal/defs"
	"go-arena-shooter/internal/types"
)

const (
	WaveStarted          EventType = "WaveStarted"          // Волна началась
	WaveEnded            EventType = "WaveEnded"            // Волна закончилась
	EnemyKilled          EventType = "EnemyKilled"          // Враг убит (здоровье дошло до нуля)
	EnemyRemovedFromGame EventType = "EnemyRemovedFromGame" // Сущность врага удалена из ECS
	ProjectileFired      EventType = "ProjectileFired"      // Снаряд выпущен
	ProjectileHit        EventType = "ProjectileHit"        // Снаряд нанёс урон
	PlayerDamaged        EventType = "PlayerDamaged"        // Игрок получил контактный урон
	PlayerDied           EventType = "PlayerDied"           // Здоровье игрока дошло до нуля
)

// HitInfo — полезная нагрузка события ProjectileHit.
type HitInfo struct {
	Projectile types.EntityID
	Target     types.EntityID
	Damage     int
	Kind       defs.WeaponVariant
	X, Y       float64
	Tick       uint64
}

// KillInfo — полезная нагрузка события EnemyKilled.
type KillInfo struct {
	Enemy    types.EntityID
	DefID    string
	XPReward int
	X, Y     float64
}
