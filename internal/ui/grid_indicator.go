// internal/ui/grid_indicator.go
package ui

import (
	"go-arena-shooter/internal/config"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// GridIndicator — индикатор режима отображения сетки коллизий в
// просмотрщике арены. Буква G, перечёркнутая, пока сетка выключена.
type GridIndicator struct {
	X, Y float32
	Size float32
	Font rl.Font
}

func NewGridIndicator(x, y, size float32, font rl.Font) *GridIndicator {
	return &GridIndicator{
		X:    x,
		Y:    y,
		Size: size,
		Font: font,
	}
}

// Draw отрисовывает индикатор.
func (i *GridIndicator) Draw(gridVisible bool) {
	text := "G"
	c := config.TextLightColor
	col := rl.NewColor(c.R, c.G, c.B, c.A)
	if !gridVisible {
		col = rl.Gray
	}

	textSize := rl.MeasureTextEx(i.Font, text, i.Size, 1.0)
	textPos := rl.NewVector2(i.X-textSize.X/2, i.Y-textSize.Y/2)
	rl.DrawTextEx(i.Font, text, textPos, i.Size, 1.0, col)

	// Выключенный режим перечёркиваем.
	if !gridVisible {
		lineStart := rl.NewVector2(i.X-textSize.X/2, i.Y+textSize.Y/2)
		lineEnd := rl.NewVector2(i.X+textSize.X/2, i.Y-textSize.Y/2)
		rl.DrawLineEx(lineStart, lineEnd, 2, rl.Red)
	}
}
