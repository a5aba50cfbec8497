// internal/system/area_query.go
package system

import (
	"go-arena-shooter/internal/entity"
	"go-arena-shooter/internal/types"
	"go-arena-shooter/pkg/grid"
)

// EnemiesInRadius вызывает visit для каждого живого врага, чей центр лежит не
// дальше radius от точки (x, y). Граница включается: дистанция, равная
// радиусу, считается попаданием. Сетка может сообщить об одном враге
// несколько раз — вызывающий код обязан дедуплицировать сам.
func EnemiesInRadius(ecs *entity.ECS, g *grid.Grid, x, y, radius float64, visit func(id types.EntityID)) {
	radiusSq := radius * radius
	g.QueryCircle(x, y, radius, func(id types.EntityID) bool {
		if _, isEnemy := ecs.Enemies[id]; !isEnemy {
			return true
		}
		if _, alive := ecs.Healths[id]; !alive {
			return true
		}
		pos, hasPos := ecs.Positions[id]
		if !hasPos {
			return true
		}
		dx := pos.X - x
		dy := pos.Y - y
		if dx*dx+dy*dy <= radiusSq {
			visit(id)
		}
		return true
	})
}
