// internal/ui/player_level_indicator.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-arena-shooter/internal/config"
)

// PlayerLevelIndicator отображает уровень и опыт игрока.
type PlayerLevelIndicator struct {
	X, Y float32
}

const (
	xpBarWidth      = 118
	xpBarHeight     = 12
	levelRectWidth  = 16
	levelRectHeight = 12
	levelRectGap    = 9
	levelRectCount  = 5
	borderWidth     = 1
)

var levelBorderColor = color.White

// NewPlayerLevelIndicator создает новый индикатор уровня.
func NewPlayerLevelIndicator(x, y float32) *PlayerLevelIndicator {
	return &PlayerLevelIndicator{X: x, Y: y}
}

// Draw отрисовывает полосу опыта и плашки уровней. Уровни выше
// количества плашек остаются на полностью заполненной шкале.
func (i *PlayerLevelIndicator) Draw(screen *ebiten.Image, level, currentXP, xpToNext int) {
	// 1. Обводка полосы опыта
	vector.StrokeRect(screen, i.X, i.Y, xpBarWidth, xpBarHeight, borderWidth, levelBorderColor, true)

	// 2. Заполненная часть полосы опыта
	fillRatio := 0.0
	if xpToNext > 0 {
		fillRatio = float64(currentXP) / float64(xpToNext)
	}
	if fillRatio > 1.0 {
		fillRatio = 1.0
	}
	fillWidth := float32(float64(xpBarWidth-borderWidth*2) * fillRatio)
	if fillWidth > 0 {
		vector.DrawFilledRect(screen, i.X+borderWidth, i.Y+borderWidth, fillWidth, xpBarHeight-borderWidth*2, config.IntermissionColor, true)
	}

	// 3. Плашки достигнутых уровней
	rectY := i.Y + xpBarHeight + 10
	for j := 0; j < levelRectCount; j++ {
		rectX := i.X + float32(j)*(levelRectWidth+levelRectGap)
		vector.StrokeRect(screen, rectX, rectY, levelRectWidth, levelRectHeight, borderWidth, levelBorderColor, true)
		if j < level {
			vector.DrawFilledRect(screen, rectX+borderWidth, rectY+borderWidth, levelRectWidth-borderWidth*2, levelRectHeight-borderWidth*2, config.IntermissionColor, true)
		}
	}
}
