// internal/system/player_system.go
package system

import (
	"go-arena-shooter/internal/config"
	"go-arena-shooter/internal/entity"
	"go-arena-shooter/internal/event"
)

// PlayerSystem отвечает за логику, связанную с игроком, например, за начисление опыта.
type PlayerSystem struct {
	ecs *entity.ECS
}

func NewPlayerSystem(ecs *entity.ECS) *PlayerSystem {
	return &PlayerSystem{ecs: ecs}
}

// OnEvent обрабатывает события, на которые подписана система.
func (s *PlayerSystem) OnEvent(e event.Event) {
	if e.Type != event.EnemyKilled {
		return
	}

	xp := config.XPPerKill
	if info, ok := e.Data.(event.KillInfo); ok && info.XPReward > 0 {
		xp = info.XPReward
	}

	// Находим компонент состояния игрока.
	// Предполагаем, что он только один.
	for _, playerState := range s.ecs.PlayerState {
		playerState.Kills++
		playerState.Score += config.ScorePerKill
		playerState.CurrentXP += xp

		// Жирная награда может поднять сразу несколько уровней
		for playerState.CurrentXP >= playerState.XPToNextLevel {
			playerState.Level++
			playerState.CurrentXP -= playerState.XPToNextLevel
			playerState.XPToNextLevel = config.CalculateXPForNextLevel(playerState.Level)
		}
		break
	}
}
