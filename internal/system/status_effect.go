// internal/system/status_effect.go
package system

import "go-arena-shooter/internal/entity"

// StatusEffectSystem управляет жизненным циклом временных эффектов.
type StatusEffectSystem struct {
	ecs *entity.ECS
}

func NewStatusEffectSystem(ecs *entity.ECS) *StatusEffectSystem {
	return &StatusEffectSystem{ecs: ecs}
}

// Update обрабатывает все активные эффекты.
func (s *StatusEffectSystem) Update(deltaTime float64) {
	// Окна неуязвимости после контактного урона
	for id, effect := range s.ecs.Invulnerabilities {
		effect.Timer -= deltaTime
		if effect.Timer <= 0 {
			delete(s.ecs.Invulnerabilities, id)
		}
	}
}
