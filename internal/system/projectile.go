// internal/system/projectile.go
package system

import (
	"go-arena-shooter/internal/config"
	"go-arena-shooter/internal/entity"
	"go-arena-shooter/internal/types"
)

// ProjectileSystem управляет временем жизни снарядов, вылетом за арену и
// контактом с пилонами. Урон по врагам — зона ответственности CollisionSystem
// и решателя.
type ProjectileSystem struct {
	ecs      *entity.ECS
	pool     *entity.ProjectilePool
	resolver *HitResolver
}

func NewProjectileSystem(ecs *entity.ECS, pool *entity.ProjectilePool, resolver *HitResolver) *ProjectileSystem {
	return &ProjectileSystem{ecs: ecs, pool: pool, resolver: resolver}
}

func (s *ProjectileSystem) Update(deltaTime float64, tick uint64) {
	minX, minY, maxX, maxY := config.ArenaBounds()

	for id := range s.ecs.Projectiles {
		// Истёкшее время жизни гасит снаряд без подрыва: детонация требует
		// контакта.
		if lt := s.ecs.Lifetimes[id]; lt != nil {
			lt.Remaining -= deltaTime
			if lt.Remaining <= 0 {
				s.pool.Release(id)
				continue
			}
		}

		pos := s.ecs.Positions[id]
		if pos == nil {
			s.pool.Release(id)
			continue
		}

		// Стены арены останавливают любой снаряд.
		if pos.X < minX || pos.X > maxX || pos.Y < minY || pos.Y > maxY {
			s.pool.Release(id)
			continue
		}

		if s.touchesBarrier(id, pos.X, pos.Y) {
			s.resolver.DetonateAt(id, tick)
		}
	}
}

func (s *ProjectileSystem) touchesBarrier(id types.EntityID, x, y float64) bool {
	col := s.ecs.Colliders[id]
	if col == nil {
		return false
	}
	for barrierID := range s.ecs.Barriers {
		bpos := s.ecs.Positions[barrierID]
		bcol := s.ecs.Colliders[barrierID]
		if bpos == nil || bcol == nil {
			continue
		}
		dx := bpos.X - x
		dy := bpos.Y - y
		reach := col.Radius + bcol.Radius
		if dx*dx+dy*dy <= reach*reach {
			return true
		}
	}
	return false
}
