// internal/state/pause_state.go
package state

import (
	"image/color"

	"go-arena-shooter/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var _ State = (*PauseState)(nil)

// PauseState замораживает игру: симуляция не обновляется, последний кадр
// рисуется под затемнением.
type PauseState struct {
	sm   *StateMachine
	prev *GameState
}

func NewPauseState(sm *StateMachine, prev *GameState) *PauseState {
	return &PauseState{
		sm:   sm,
		prev: prev,
	}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) ||
		inpututil.IsKeyJustPressed(ebiten.KeyEscape) ||
		inpututil.IsKeyJustPressed(ebiten.KeyF9) {
		s.resume()
		return
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if s.prev.Game().PauseButton.Contains(float32(x), float32(y)) {
			s.resume()
		}
	}
}

func (s *PauseState) resume() {
	s.prev.Game().HandlePauseClick()
	s.sm.SetState(s.prev)
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	s.prev.Draw(screen)

	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, color.RGBA{0, 0, 0, 128}, false)

	label := "PAUSED"
	face := s.prev.Game().FontFace
	bounds := text.BoundString(face, label)
	x := (config.ScreenWidth - bounds.Dx()) / 2
	y := config.ScreenHeight / 2
	text.Draw(screen, label, face, x, y, color.White)
}

func (s *PauseState) Exit() {}
