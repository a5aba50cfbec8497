// internal/system/contact_damage.go
package system

import (
	"go-arena-shooter/internal/component"
	"go-arena-shooter/internal/config"
	"go-arena-shooter/internal/entity"
	"go-arena-shooter/internal/event"
	"go-arena-shooter/internal/types"
)

// ContactGameContext определяет методы, которые ContactDamageSystem требует от Game.
type ContactGameContext interface {
	GetPlayerID() types.EntityID
}

// ContactDamageSystem наносит игроку урон при касании врагом. После удара
// игрок получает окно неуязвимости, поэтому толпа не разбирает его за один тик.
type ContactDamageSystem struct {
	ecs        *entity.ECS
	dispatcher *event.Dispatcher
	game       ContactGameContext
}

func NewContactDamageSystem(ecs *entity.ECS, dispatcher *event.Dispatcher, game ContactGameContext) *ContactDamageSystem {
	return &ContactDamageSystem{ecs: ecs, dispatcher: dispatcher, game: game}
}

func (s *ContactDamageSystem) Update(deltaTime float64) {
	playerID := s.game.GetPlayerID()
	pos, hasPos := s.ecs.Positions[playerID]
	col, hasCol := s.ecs.Colliders[playerID]
	health, hasHealth := s.ecs.Healths[playerID]
	if !hasPos || !hasCol || !hasHealth || health.Value <= 0 {
		return
	}
	if _, invulnerable := s.ecs.Invulnerabilities[playerID]; invulnerable {
		return
	}

	for id, enemy := range s.ecs.Enemies {
		epos, okPos := s.ecs.Positions[id]
		ecol, okCol := s.ecs.Colliders[id]
		if !okPos || !okCol {
			continue
		}

		dx := epos.X - pos.X
		dy := epos.Y - pos.Y
		reach := col.Radius + ecol.Radius
		if dx*dx+dy*dy > reach*reach {
			continue
		}

		ApplyDamage(s.ecs, playerID, enemy.ContactDamage)
		s.ecs.Invulnerabilities[playerID] = &component.Invulnerability{
			Timer: config.InvulnerabilityTime,
		}

		s.dispatcher.Dispatch(event.Event{Type: event.PlayerDamaged, Data: health.Value})
		if health.Value <= 0 {
			s.dispatcher.Dispatch(event.Event{Type: event.PlayerDied})
		}

		// Одно касание за тик: окно неуязвимости уже открыто.
		return
	}
}
