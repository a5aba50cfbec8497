// internal/system/visual_effect.go
package system

import (
	"go-arena-shooter/internal/entity"
)

// VisualEffectSystem управляет визуальными эффектами, такими как вспышки урона.
type VisualEffectSystem struct {
	ecs *entity.ECS
}

// NewVisualEffectSystem создает новую систему визуальных эффектов.
func NewVisualEffectSystem(ecs *entity.ECS) *VisualEffectSystem {
	return &VisualEffectSystem{ecs: ecs}
}

// Update обновляет все активные визуальные эффекты.
func (s *VisualEffectSystem) Update(deltaTime float64) {
	// Обновляем таймеры вспышек урона
	for id, flash := range s.ecs.DamageFlashes {
		flash.Timer += deltaTime
		if flash.Timer >= flash.Duration {
			delete(s.ecs.DamageFlashes, id)
		}
	}

	// Волны взрывов расширяются до своего максимума и исчезают
	for id, wave := range s.ecs.ExplosionWaves {
		wave.CurrentTimer += deltaTime
		if wave.CurrentTimer >= wave.Duration {
			delete(s.ecs.ExplosionWaves, id)
			delete(s.ecs.Positions, id)
		}
	}
}
