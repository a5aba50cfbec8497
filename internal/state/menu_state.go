// internal/state/menu_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"go-arena-shooter/internal/config"
)

var _ State = (*MenuState)(nil)

// MenuState — титульный экран со схемой управления.
type MenuState struct {
	sm       *StateMachine
	seed     int64
	fontFace font.Face
}

func NewMenuState(sm *StateMachine, seed int64) *MenuState {
	return &MenuState{
		sm:       sm,
		seed:     seed,
		fontFace: basicfont.Face7x13,
	}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		m.sm.SetState(NewGameState(m.sm, m.seed))
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)

	lines := []string{
		"ARENA SHOOTER",
		"",
		"WASD        move",
		"Arrows      fire",
		"1 / 2 / 3   blaster / lance / rocket",
		"Tab         stats panel",
		"P           pause",
		"",
		"Press SPACE to start",
	}

	lineHeight := 22
	startY := config.ScreenHeight/2 - len(lines)*lineHeight/2
	for i, line := range lines {
		bounds := text.BoundString(m.fontFace, line)
		x := (config.ScreenWidth - bounds.Dx()) / 2
		y := startY + i*lineHeight
		col := config.TextLightColor
		if i == 0 {
			col = config.CombatColor
		}
		text.Draw(screen, line, m.fontFace, x, y, col)
	}
}

func (m *MenuState) Exit() {}
