package ui

import (
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"

	"go-arena-shooter/internal/config"
)

// WaveIndicator отображает номер текущей волны римскими цифрами.
type WaveIndicator struct {
	X, Y             float32
	OutlineThickness int
}

// NewWaveIndicator создает новый индикатор волны.
func NewWaveIndicator(x, y float32) *WaveIndicator {
	return &WaveIndicator{
		X:                x,
		Y:                y,
		OutlineThickness: 1,
	}
}

// toRoman конвертирует целое число в римское.
func toRoman(num int) string {
	if num <= 0 {
		return ""
	}
	val := []int{1000, 900, 500, 400, 100, 90, 50, 40, 10, 9, 5, 4, 1}
	syb := []string{"M", "CM", "D", "CD", "C", "XC", "L", "XL", "X", "IX", "V", "IV", "I"}

	var roman strings.Builder
	for i := 0; i < len(val); i++ {
		for num >= val[i] {
			roman.WriteString(syb[i])
			num -= val[i]
		}
	}
	return roman.String()
}

// Draw отрисовывает индикатор на экране.
func (i *WaveIndicator) Draw(screen *ebiten.Image, waveNumber int, fontFace font.Face) {
	if waveNumber <= 0 {
		return
	}

	label := toRoman(waveNumber)

	// Каждая десятая волна подсвечивается красным.
	textColor := config.TextLightColor
	if waveNumber%10 == 0 {
		textColor = config.CombatColor
	}

	bounds := text.BoundString(fontFace, label)
	textX := int(i.X) - bounds.Dx()/2
	textY := int(i.Y)

	// Тёмная обводка, чтобы цифры читались поверх арены.
	t := i.OutlineThickness
	for dy := -t; dy <= t; dy++ {
		for dx := -t; dx <= t; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			text.Draw(screen, label, fontFace, textX+dx, textY+dy, config.TextDarkColor)
		}
	}

	text.Draw(screen, label, fontFace, textX, textY, textColor)
}
