// internal/system/enemy.go
package system

import (
	"math"

	"go-arena-shooter/internal/entity"
	"go-arena-shooter/internal/types"
)

// EnemyGameContext определяет методы, которые EnemySystem требует от Game.
// Это помогает избежать циклических зависимостей.
type EnemyGameContext interface {
	GetPlayerID() types.EntityID
}

// EnemySystem направляет врагов к игроку по прямой. Скорость только
// выставляется здесь, интегрирует её MovementSystem.
type EnemySystem struct {
	ecs  *entity.ECS
	game EnemyGameContext
}

func NewEnemySystem(ecs *entity.ECS, game EnemyGameContext) *EnemySystem {
	return &EnemySystem{ecs: ecs, game: game}
}

func (s *EnemySystem) Update(deltaTime float64) {
	playerPos, playerAlive := s.ecs.Positions[s.game.GetPlayerID()]

	for id, enemy := range s.ecs.Enemies {
		vel, hasVel := s.ecs.Velocities[id]
		pos, hasPos := s.ecs.Positions[id]
		if !hasVel || !hasPos {
			continue
		}

		// Некого преследовать — враги останавливаются.
		if !playerAlive {
			vel.DX, vel.DY = 0, 0
			continue
		}

		dx := playerPos.X - pos.X
		dy := playerPos.Y - pos.Y
		dist := math.Sqrt(dx*dx + dy*dy)
		if dist < 0.5 {
			vel.DX, vel.DY = 0, 0
			continue
		}

		vel.DX = dx / dist * enemy.MoveSpeed
		vel.DY = dy / dist * enemy.MoveSpeed
	}
}
