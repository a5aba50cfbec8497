// internal/ui/button.go
package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Button представляет собой кликабельную кнопку в raylib-просмотрщике.
type Button struct {
	Rect       rl.Rectangle
	Text       string
	TextColor  rl.Color
	BgColor    rl.Color
	HoverColor rl.Color
	Font       rl.Font
	FontSize   float32
}

// NewButton создает новую кнопку в тёмной теме просмотрщика.
func NewButton(rect rl.Rectangle, text string, font rl.Font) *Button {
	return &Button{
		Rect:       rect,
		Text:       text,
		TextColor:  rl.RayWhite,
		BgColor:    rl.NewColor(50, 56, 72, 255),
		HoverColor: rl.NewColor(70, 78, 98, 255),
		Font:       font,
		FontSize:   18,
	}
}

// IsClicked проверяет, был ли сделан клик по кнопке.
func (b *Button) IsClicked(mousePos rl.Vector2) bool {
	return rl.CheckCollisionPointRec(mousePos, b.Rect) && rl.IsMouseButtonPressed(rl.MouseLeftButton)
}

// Draw отрисовывает кнопку.
func (b *Button) Draw(mousePos rl.Vector2) {
	bgColor := b.BgColor
	if rl.CheckCollisionPointRec(mousePos, b.Rect) {
		bgColor = b.HoverColor
	}

	rl.DrawRectangleRec(b.Rect, bgColor)
	rl.DrawRectangleLinesEx(b.Rect, 2, rl.NewColor(70, 100, 120, 255))

	textSize := rl.MeasureTextEx(b.Font, b.Text, b.FontSize, 1)
	textX := b.Rect.X + (b.Rect.Width-textSize.X)/2
	textY := b.Rect.Y + (b.Rect.Height-textSize.Y)/2

	rl.DrawTextEx(b.Font, b.Text, rl.NewVector2(textX, textY), b.FontSize, 1, b.TextColor)
}
