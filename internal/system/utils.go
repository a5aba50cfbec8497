// internal/system/utils.go
package system

import (
	"go-arena-shooter/internal/component"
	"go-arena-shooter/internal/config"
	"go-arena-shooter/internal/entity"
	"go-arena-shooter/internal/types"
)

// ApplyDamage наносит урон сущности, учитывая броню врага.
func ApplyDamage(ecs *entity.ECS, entityID types.EntityID, damage int) {
	health, hasHealth := ecs.Healths[entityID]
	if !hasHealth {
		return
	}

	finalDamage := damage

	// Броня вычитается плоско и только у врагов.
	if enemy, isEnemy := ecs.Enemies[entityID]; isEnemy {
		finalDamage -= enemy.Armor
	}

	// Урон не может быть отрицательным
	if finalDamage < 1 && damage > 0 {
		finalDamage = 1 // Минимальный урон 1, если начальный урон был > 0
	} else if finalDamage < 0 {
		finalDamage = 0
	}

	health.Value -= finalDamage
	if health.Value <= 0 {
		health.Value = 0
	}

	// Добавляем или сбрасываем компонент "вспышки"
	ecs.DamageFlashes[entityID] = &component.DamageFlash{
		Timer:    0,
		Duration: config.DamageFlashDuration,
	}
}
