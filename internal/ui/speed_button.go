// internal/ui/speed_button.go
package ui

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-arena-shooter/internal/config"
)

// SpeedButton циклически переключает множитель игровой скорости.
// Текущее состояние показывается цветом шевронов.
type SpeedButton struct {
	X, Y           float32
	Size           float32
	LastClickTime  time.Time
	LastToggleTime time.Time
	StateColors    []color.Color
	CurrentState   int
}

func NewSpeedButton(x, y, size float32) *SpeedButton {
	return &SpeedButton{
		X:              x,
		Y:              y,
		Size:           size,
		LastClickTime:  time.Time{},
		LastToggleTime: time.Time{},
		StateColors:    config.SpeedButtonColors,
		CurrentState:   0,
	}
}

// Draw рисует два шеврона перемотки вправо.
func (b *SpeedButton) Draw(screen *ebiten.Image) {
	elapsed := time.Since(b.LastClickTime).Seconds()
	scale := 1.0 + 0.3*math.Exp(-elapsed*8)
	size := b.Size * float32(scale)

	col := b.StateColors[b.CurrentState]
	height := size * 1.2
	width := size
	offset := width * 0.8

	for i := 0; i < 2; i++ {
		baseX := b.X - width + float32(i)*offset
		vector.StrokeLine(screen, baseX, b.Y-height/2, baseX+width, b.Y, 3, col, true)
		vector.StrokeLine(screen, baseX, b.Y+height/2, baseX+width, b.Y, 3, col, true)
	}
}

// Contains проверяет попадание курсора: зона шире видимой фигуры,
// чтобы по кнопке было проще попасть.
func (b *SpeedButton) Contains(mx, my float32) bool {
	dx := mx - b.X
	dy := my - b.Y
	r := b.Size * 1.5
	return dx*dx+dy*dy <= r*r
}

func (b *SpeedButton) ToggleState() {
	b.CurrentState = (b.CurrentState + 1) % len(b.StateColors)
	b.LastClickTime = time.Now()
	b.LastToggleTime = time.Now()
}
