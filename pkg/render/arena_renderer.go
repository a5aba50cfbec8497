// pkg/render/arena_renderer.go
package render

import (
	"math"

	"go-arena-shooter/internal/config"
	"go-arena-shooter/internal/system"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ArenaRenderer рисует арену: статичный задник (пол, сетка, стены) и поверх
// него все динамические сущности через RenderSystem. Задник рендерится один
// раз в offscreen-картинку и дальше кладётся на экран одним DrawImage.
type ArenaRenderer struct {
	colors     ArenaColors
	cellSize   float64
	background *ebiten.Image
}

func NewArenaRenderer(colors ArenaColors, cellSize float64) *ArenaRenderer {
	r := &ArenaRenderer{
		colors:     colors,
		cellSize:   cellSize,
		background: ebiten.NewImage(config.ScreenWidth, config.ScreenHeight),
	}
	r.renderBackground()
	return r
}

// renderBackground заполняет предрендеренный задник.
func (r *ArenaRenderer) renderBackground() {
	img := r.background
	img.Fill(r.colors.Background)

	minX, minY, maxX, maxY := config.ArenaBounds()
	w := float32(maxX - minX)
	h := float32(maxY - minY)
	vector.DrawFilledRect(img, float32(minX), float32(minY), w, h, r.colors.Floor, false)

	// Линии пола совпадают с ячейками сетки коллизий: сетка коллизий
	// привязана к началу экрана, поэтому первая линия — на ближайшей
	// границе ячейки внутри арены, а не на краю пола.
	for x := math.Ceil(minX/r.cellSize) * r.cellSize; x < maxX; x += r.cellSize {
		vector.StrokeLine(img, float32(x), float32(minY), float32(x), float32(maxY), 1, r.colors.GridLine, false)
	}
	for y := math.Ceil(minY/r.cellSize) * r.cellSize; y < maxY; y += r.cellSize {
		vector.StrokeLine(img, float32(minX), float32(y), float32(maxX), float32(y), 1, r.colors.GridLine, false)
	}

	// Тень по внутреннему периметру, потом сама стена.
	shadow := DarkenColor(r.colors.Border)
	vector.StrokeRect(img, float32(minX)+2, float32(minY)+2, w-4, h-4, r.colors.StrokeWidth, shadow, true)
	vector.StrokeRect(img, float32(minX), float32(minY), w, h, r.colors.StrokeWidth, r.colors.Border, true)
}

// Draw кладёт задник и рисует поверх него сущности текущего кадра.
func (r *ArenaRenderer) Draw(screen *ebiten.Image, rs *system.RenderSystem, gameTime float64) {
	screen.DrawImage(r.background, nil)
	rs.Draw(screen, gameTime)
}
