// internal/ui/stats_panel.go
package ui

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-arena-shooter/internal/config"
	"go-arena-shooter/internal/defs"
	"go-arena-shooter/internal/entity"
)

const (
	panelMargin    = 5
	animationSpeed = 10.0
	lineHeight     = 20
	columnSpacing  = 200
)

// CombatSnapshot собирает цифры одного кадра для отладочной панели.
type CombatSnapshot struct {
	Wave          int
	Phase         string
	ActiveEnemies int
	Tick          uint64
	Score         int
	Kills         int
	Level         int
	GateSize      int
	PoolStats     map[defs.WeaponVariant]entity.PoolStats
}

// StatsPanel — выдвижная панель с боевой статистикой и состоянием пула
// снарядов. Висит внизу экрана, вызывается клавишей Tab.
type StatsPanel struct {
	IsVisible bool
	fontFace  font.Face
	currentY  float64
	targetY   float64
}

// NewStatsPanel creates a new statistics panel.
func NewStatsPanel(fontFace font.Face) *StatsPanel {
	return &StatsPanel{
		IsVisible: false,
		fontFace:  fontFace,
		currentY:  config.ScreenHeight,
		targetY:   config.ScreenHeight,
	}
}

// Toggle показывает или прячет панель.
func (p *StatsPanel) Toggle() {
	if p.targetY >= config.ScreenHeight {
		p.IsVisible = true
		p.targetY = config.ScreenHeight - config.StatsPanelHeight
	} else {
		p.targetY = config.ScreenHeight
	}
}

// Update продвигает анимацию выдвижения.
func (p *StatsPanel) Update() {
	if p.currentY == p.targetY {
		return
	}
	diff := p.targetY - p.currentY
	if math.Abs(diff) < animationSpeed {
		p.currentY = p.targetY
	} else if diff > 0 {
		p.currentY += animationSpeed
	} else {
		p.currentY -= animationSpeed
	}

	if p.currentY >= config.ScreenHeight {
		p.IsVisible = false
	}
}

func (p *StatsPanel) Draw(screen *ebiten.Image, snap CombatSnapshot) {
	if !p.IsVisible && p.currentY >= config.ScreenHeight {
		return
	}

	left := panelMargin
	top := int(p.currentY) + panelMargin
	width := config.ScreenWidth - 2*panelMargin
	height := config.StatsPanelHeight - 2*panelMargin

	bgColor := color.RGBA{R: 25, G: 35, B: 45, A: 230}
	vector.DrawFilledRect(screen, float32(left), float32(top), float32(width), float32(height), bgColor, true)
	borderColor := color.RGBA{R: 70, G: 130, B: 180, A: 255}
	vector.StrokeRect(screen, float32(left), float32(top), float32(width), float32(height), 2, borderColor, true)

	col1X := left + 15
	col2X := col1X + columnSpacing + 60
	y := top + 15 + lineHeight

	// Шрифт панели покрывает только ASCII, поэтому подписи английские.
	text.Draw(screen, fmt.Sprintf("Wave: %d (%s)", snap.Wave, snap.Phase), p.fontFace, col1X, y, config.TextLightColor)
	y += lineHeight
	text.Draw(screen, fmt.Sprintf("Enemies alive: %d", snap.ActiveEnemies), p.fontFace, col1X, y, config.TextLightColor)
	y += lineHeight
	text.Draw(screen, fmt.Sprintf("Score: %d   Kills: %d   Level: %d", snap.Score, snap.Kills, snap.Level), p.fontFace, col1X, y, config.TextLightColor)
	y += lineHeight
	text.Draw(screen, fmt.Sprintf("Combat tick: %d   Hit journal pairs: %d", snap.Tick, snap.GateSize), p.fontFace, col1X, y, config.TextLightColor)

	// Таблица пула снарядов по вариантам. Overflow выше нуля — знак, что
	// предсозданных слотов не хватает.
	py := top + 15 + lineHeight
	text.Draw(screen, "Projectile pool", p.fontFace, col2X, py, config.TextLightColor)
	py += lineHeight
	for _, variant := range []defs.WeaponVariant{defs.VariantNormal, defs.VariantPierce, defs.VariantExplosive} {
		st := snap.PoolStats[variant]
		row := fmt.Sprintf("%-10s active %-3d free %-3d reused %-5d overflow %-3d created %d",
			string(variant), st.Active, st.Free, st.Reused, st.Overflow, st.Created)
		text.Draw(screen, row, p.fontFace, col2X, py, config.TextLightColor)
		py += lineHeight
	}
}
