// internal/ui/player_health_indicator.go
package ui

import (
	"image/color"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-arena-shooter/internal/config"
)

const (
	healthCols          = 5
	healthCircleRadius  = 8.0
	healthCircleSpacing = 4.0
)

// PlayerHealthIndicator отображает здоровье игрока сеткой кружков.
type PlayerHealthIndicator struct {
	X, Y float32
}

// NewPlayerHealthIndicator создает новый индикатор здоровья.
func NewPlayerHealthIndicator(x, y float32) *PlayerHealthIndicator {
	return &PlayerHealthIndicator{X: x, Y: y}
}

// Draw рисует сетку кружков: запас сверх половины показан синим,
// остаток — красным, потерянное здоровье — тёмными ячейками.
func (i *PlayerHealthIndicator) Draw(screen *ebiten.Image, health, maxHealth int, fontFace font.Face) {
	halfHealth := maxHealth / 2

	for j := 0; j < maxHealth; j++ {
		row := j / healthCols
		col := j % healthCols

		cx := i.X + float32(col)*(healthCircleRadius*2+healthCircleSpacing) + healthCircleRadius
		cy := i.Y + float32(row)*(healthCircleRadius*2+healthCircleSpacing) + healthCircleRadius

		var cellColor color.Color
		switch {
		case j >= health:
			cellColor = config.TextDarkColor
		case health > halfHealth && j < health-halfHealth:
			cellColor = config.IntermissionColor
		default:
			cellColor = config.CombatColor
		}

		vector.DrawFilledCircle(screen, cx, cy, healthCircleRadius, cellColor, true)
		vector.StrokeCircle(screen, cx, cy, healthCircleRadius, 1, color.White, true)
	}

	// Числовое значение над сеткой.
	label := strconv.Itoa(health) + "/" + strconv.Itoa(maxHealth)
	gridWidth := healthCols * (healthCircleRadius*2 + healthCircleSpacing)
	bounds := text.BoundString(fontFace, label)
	textX := int(i.X) + (int(gridWidth)-bounds.Dx())/2
	textY := int(i.Y) - 6
	text.Draw(screen, label, fontFace, textX, textY, color.White)
}
