// internal/state/game_over_state.go
package state

import (
	"fmt"
	"image/color"

	"go-arena-shooter/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var _ State = (*GameOverState)(nil)

// GameOverState показывает итог забега поверх застывшей арены.
type GameOverState struct {
	sm   *StateMachine
	prev *GameState
}

func NewGameOverState(sm *StateMachine, prev *GameState) *GameOverState {
	return &GameOverState{
		sm:   sm,
		prev: prev,
	}
}

func (s *GameOverState) Enter() {}

func (s *GameOverState) Update(deltaTime float64) {
	// Волны остановлены, но визуальные эффекты дотлевают.
	s.prev.Game().Update(deltaTime)

	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		s.prev.Game().Reset()
		s.sm.SetState(s.prev)
	}
}

func (s *GameOverState) Draw(screen *ebiten.Image) {
	s.prev.Draw(screen)

	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, color.RGBA{0, 0, 0, 150}, false)

	g := s.prev.Game()
	lines := []string{"GAME OVER", ""}
	if ps, ok := g.ECS.PlayerState[g.GetPlayerID()]; ok {
		lines = append(lines,
			fmt.Sprintf("score  %d", ps.Score),
			fmt.Sprintf("kills  %d", ps.Kills),
			fmt.Sprintf("wave   %d", g.Wave-1),
		)
	}
	lines = append(lines, "", "Press R to restart")

	face := g.FontFace
	lineHeight := 22
	startY := config.ScreenHeight/2 - len(lines)*lineHeight/2
	for i, line := range lines {
		bounds := text.BoundString(face, line)
		x := (config.ScreenWidth - bounds.Dx()) / 2
		y := startY + i*lineHeight
		col := config.TextLightColor
		if i == 0 {
			col = config.GameOverColor
		}
		text.Draw(screen, line, face, x, y, col)
	}
}

func (s *GameOverState) Exit() {}
