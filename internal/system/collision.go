// internal/system/collision.go
package system

import (
	"go-arena-shooter/internal/entity"
	"go-arena-shooter/internal/types"
	"go-arena-shooter/pkg/grid"
)

// CollisionSystem — широкая фаза столкновений. Каждый тик перестраивает сетку
// по живым врагам и прогоняет активные снаряды по накрытым ячейкам. Сообщения
// о пересечении уходят в решатель как есть, без дедупликации: враг, занявший
// несколько ячеек, честно попадает в отчёт по разу на ячейку.
type CollisionSystem struct {
	ecs      *entity.ECS
	grid     *grid.Grid
	resolver *HitResolver
}

func NewCollisionSystem(ecs *entity.ECS, g *grid.Grid, resolver *HitResolver) *CollisionSystem {
	return &CollisionSystem{ecs: ecs, grid: g, resolver: resolver}
}

func (s *CollisionSystem) Update(tick uint64) {
	s.RebuildGrid()
	s.Scan(tick)
}

// RebuildGrid заполняет сетку живыми врагами по их текущим позициям.
// Вызывается до любых запросов тика: подрыв от удара о пилон тоже ищет
// жертв в этой сетке и не должен видеть расстановку прошлого кадра.
func (s *CollisionSystem) RebuildGrid() {
	s.grid.Clear()
	for id := range s.ecs.Enemies {
		pos, hasPos := s.ecs.Positions[id]
		col, hasCol := s.ecs.Colliders[id]
		if !hasPos || !hasCol {
			continue
		}
		s.grid.InsertCircle(id, pos.X, pos.Y, col.Radius)
	}
}

// Scan прогоняет активные снаряды по накрытым ячейкам сетки.
func (s *CollisionSystem) Scan(tick uint64) {
	for id, proj := range s.ecs.Projectiles {
		if proj.Detonated {
			continue
		}
		pos, hasPos := s.ecs.Positions[id]
		col, hasCol := s.ecs.Colliders[id]
		if !hasPos || !hasCol {
			continue
		}

		projID := id
		projRadius := col.Radius
		px, py := pos.X, pos.Y

		s.grid.QueryCircle(px, py, projRadius, func(candidate types.EntityID) bool {
			enemyPos, okPos := s.ecs.Positions[candidate]
			enemyCol, okCol := s.ecs.Colliders[candidate]
			if !okPos || !okCol {
				return true
			}

			dx := enemyPos.X - px
			dy := enemyPos.Y - py
			reach := projRadius + enemyCol.Radius
			if dx*dx+dy*dy > reach*reach {
				return true
			}

			s.resolver.HandleOverlap(projID, candidate, tick)

			// Решатель мог вернуть снаряд в пул — дальше ячейки обходить незачем.
			_, stillFlying := s.ecs.Projectiles[projID]
			return stillFlying
		})
	}
}
