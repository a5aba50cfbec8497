// internal/ui/indicator.go
package ui

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// StateIndicator — кружок фазы волны в левом верхнем углу. Цвет задаёт
// вызывающая сторона (синий — передышка, красный — бой), клик по нему
// досрочно запускает волну.
type StateIndicator struct {
	X, Y          float32
	Radius        float32
	LastClickTime time.Time
}

func NewStateIndicator(x, y, radius float32) *StateIndicator {
	return &StateIndicator{
		X:      x,
		Y:      y,
		Radius: radius,
	}
}

// Draw отрисовывает индикатор с затухающей пульсацией после клика.
func (i *StateIndicator) Draw(screen *ebiten.Image, stateColor color.RGBA) {
	elapsed := time.Since(i.LastClickTime).Seconds()
	scale := 1.0 + 0.3*math.Exp(-elapsed*8)
	currentRadius := i.Radius * float32(scale)

	vector.DrawFilledCircle(screen, i.X, i.Y, currentRadius, stateColor, true)
	vector.StrokeCircle(screen, i.X, i.Y, currentRadius, 1.5, color.White, true)
}

// Contains проверяет попадание курсора в зону индикатора.
func (i *StateIndicator) Contains(mx, my float32) bool {
	dx := mx - i.X
	dy := my - i.Y
	return dx*dx+dy*dy <= i.Radius*i.Radius
}

// HandleClick запускает анимацию пульсации.
func (i *StateIndicator) HandleClick() {
	i.LastClickTime = time.Now()
}
