// internal/app/barrier_generation.go
package app

import (
	"log"

	"go-arena-shooter/internal/component"
	"go-arena-shooter/internal/config"
	"go-arena-shooter/pkg/arena"
)

// generateBarriers создаёт сущности пилонов по сидированной расстановке.
// Сама геометрия живёт в pkg/arena, чтобы просмотрщик показывал ту же
// расстановку без запуска игры.
func (g *Game) generateBarriers() {
	layout := arena.PylonLayout(g.Rng)
	for _, p := range layout {
		g.createBarrierEntity(p.X, p.Y)
	}

	// Арена просторная, сюда мы попадаем только при очень неудачном сиде.
	if len(layout) < config.BarrierCount {
		log.Printf("Удалось разместить только %d из %d пилонов", len(layout), config.BarrierCount)
	}
}

func (g *Game) createBarrierEntity(x, y float64) {
	id := g.ECS.NewEntity()
	g.ECS.Positions[id] = &component.Position{X: x, Y: y}
	g.ECS.Colliders[id] = &component.Collider{Radius: config.BarrierRadius}
	g.ECS.Barriers[id] = &component.Barrier{}
}
