// internal/system/render.go
package system

import (
	"math"

	"go-arena-shooter/internal/config"
	"go-arena-shooter/internal/entity"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// RenderSystem рисует сущности
type RenderSystem struct {
	ecs *entity.ECS
}

func NewRenderSystem(ecs *entity.ECS) *RenderSystem {
	return &RenderSystem{ecs: ecs}
}

func (s *RenderSystem) Draw(screen *ebiten.Image, gameTime float64) {
	// Сначала пилоны: лёгкая пульсация, чтобы препятствия читались на фоне
	for id := range s.ecs.Barriers {
		pos, hasPos := s.ecs.Positions[id]
		col, hasCol := s.ecs.Colliders[id]
		if !hasPos || !hasCol {
			continue
		}
		pulse := float32(col.Radius * (1 + 0.04*math.Sin(gameTime*math.Pi/2)))
		vector.DrawFilledCircle(screen, float32(pos.X), float32(pos.Y), pulse, config.BarrierColor, true)
		vector.StrokeCircle(screen, float32(pos.X), float32(pos.Y), pulse, 1.5, config.BarrierStrokeColor, true)
	}

	// Затем отрисовка сущностей с Renderable
	for id, render := range s.ecs.Renderables {
		if pos, hasPos := s.ecs.Positions[id]; hasPos {
			drawColor := render.Color
			if _, flashing := s.ecs.DamageFlashes[id]; flashing {
				drawColor = config.DamageFlashColor
			}
			if render.HasStroke {
				strokeRadius := render.Radius + 2
				vector.DrawFilledCircle(screen, float32(pos.X), float32(pos.Y), strokeRadius, config.IndicatorStroke, true)
			}
			vector.DrawFilledCircle(screen, float32(pos.X), float32(pos.Y), render.Radius, drawColor, true)
		}
	}

	// Волны взрывов расширяются и тают
	for id, wave := range s.ecs.ExplosionWaves {
		pos, hasPos := s.ecs.Positions[id]
		if !hasPos || wave.Duration <= 0 {
			continue
		}
		progress := wave.CurrentTimer / wave.Duration
		if progress > 1 {
			progress = 1
		}
		radius := float32(progress * wave.MaxRadius)
		waveColor := config.ExplosionColor
		waveColor.A = uint8(float64(waveColor.A) * (1 - progress))
		vector.StrokeCircle(screen, float32(pos.X), float32(pos.Y), radius, 3, waveColor, true)
	}
}
