// internal/ui/pause_button.go
package ui

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// PauseButton — кнопка паузы в правом верхнем углу.
type PauseButton struct {
	X, Y           float32
	Size           float32
	LastClickTime  time.Time
	LastToggleTime time.Time
	IsPaused       bool
}

func NewPauseButton(x, y, size float32) *PauseButton {
	return &PauseButton{
		X:              x,
		Y:              y,
		Size:           size,
		LastClickTime:  time.Time{},
		LastToggleTime: time.Time{},
		IsPaused:       false,
	}
}

// Draw рисует две планки, а в состоянии паузы — треугольник запуска.
func (b *PauseButton) Draw(screen *ebiten.Image) {
	elapsed := time.Since(b.LastClickTime).Seconds()
	scale := 1.0 + 0.3*math.Exp(-elapsed*8)
	size := b.Size * float32(scale)

	if b.IsPaused {
		// Треугольник (play)
		left := b.X - size
		right := b.X + size
		top := b.Y - size*1.2
		bottom := b.Y + size*1.2
		vector.StrokeLine(screen, left, top, left, bottom, 2, color.White, true)
		vector.StrokeLine(screen, left, top, right, b.Y, 2, color.White, true)
		vector.StrokeLine(screen, left, bottom, right, b.Y, 2, color.White, true)
	} else {
		// Две планки (pause)
		width := size * 0.6
		height := size * 2.0
		spacing := size * 0.4
		vector.DrawFilledRect(screen, b.X-width-spacing/2, b.Y-height/2, width, height, color.White, true)
		vector.DrawFilledRect(screen, b.X+spacing/2, b.Y-height/2, width, height, color.White, true)
	}
}

// Contains проверяет попадание курсора в зону кнопки.
func (b *PauseButton) Contains(mx, my float32) bool {
	dx := mx - b.X
	dy := my - b.Y
	return dx*dx+dy*dy <= b.Size*b.Size*4
}

func (b *PauseButton) TogglePause() {
	b.IsPaused = !b.IsPaused
	b.LastClickTime = time.Now()
	b.LastToggleTime = time.Now()
}

func (b *PauseButton) SetPaused(paused bool) {
	b.IsPaused = paused
}
