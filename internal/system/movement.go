// internal/system/movement.go
package system

import (
	"math"

	"go-arena-shooter/internal/config"
	"go-arena-shooter/internal/entity"
	"go-arena-shooter/internal/types"
	"go-arena-shooter/internal/utils"
)

// MovementGameContext определяет методы, которые MovementSystem требует от Game.
// Это помогает избежать циклических зависимостей.
type MovementGameContext interface {
	GetPlayerID() types.EntityID
}

// MovementSystem обновляет позиции сущностей
type MovementSystem struct {
	ecs  *entity.ECS
	game MovementGameContext
}

func NewMovementSystem(ecs *entity.ECS, game MovementGameContext) *MovementSystem {
	return &MovementSystem{ecs: ecs, game: game}
}

func (s *MovementSystem) Update(deltaTime float64) {
	for id, pos := range s.ecs.Positions {
		if vel, hasVel := s.ecs.Velocities[id]; hasVel {
			pos.X += vel.DX * deltaTime
			pos.Y += vel.DY * deltaTime
		}
	}

	playerID := s.game.GetPlayerID()
	s.clampPlayerToArena(playerID)
	s.pushOutOfBarriers(playerID)
}

// clampPlayerToArena запирает игрока в стенах. Снаряды и враги стенами не
// ограничены: первые гаснут за границей, вторые заходят с краёв при спавне.
func (s *MovementSystem) clampPlayerToArena(playerID types.EntityID) {
	pos, hasPos := s.ecs.Positions[playerID]
	if !hasPos {
		return
	}
	radius := 0.0
	if col, hasCol := s.ecs.Colliders[playerID]; hasCol {
		radius = col.Radius
	}
	minX, minY, maxX, maxY := config.ArenaBounds()
	pos.X = utils.Clamp(pos.X, minX+radius, maxX-radius)
	pos.Y = utils.Clamp(pos.Y, minY+radius, maxY-radius)
}

// pushOutOfBarriers выталкивает игрока и врагов из пилонов по радиусу.
func (s *MovementSystem) pushOutOfBarriers(playerID types.EntityID) {
	for barrierID := range s.ecs.Barriers {
		bpos, hasPos := s.ecs.Positions[barrierID]
		bcol, hasCol := s.ecs.Colliders[barrierID]
		if !hasPos || !hasCol {
			continue
		}

		s.pushEntity(playerID, bpos.X, bpos.Y, bcol.Radius)
		for enemyID := range s.ecs.Enemies {
			s.pushEntity(enemyID, bpos.X, bpos.Y, bcol.Radius)
		}
	}
}

func (s *MovementSystem) pushEntity(id types.EntityID, bx, by, barrierRadius float64) {
	pos, hasPos := s.ecs.Positions[id]
	col, hasCol := s.ecs.Colliders[id]
	if !hasPos || !hasCol {
		return
	}

	dx := pos.X - bx
	dy := pos.Y - by
	minDist := barrierRadius + col.Radius
	distSq := dx*dx + dy*dy
	if distSq >= minDist*minDist {
		return
	}

	dist := math.Sqrt(distSq)
	if dist < 1e-6 {
		// Сущность ровно в центре пилона — выталкиваем вправо.
		pos.X = bx + minDist
		return
	}
	scale := minDist / dist
	pos.X = bx + dx*scale
	pos.Y = by + dy*scale
}
