// internal/system/state.go
package system

import (
	"go-arena-shooter/internal/component"
	"go-arena-shooter/internal/config"
	"go-arena-shooter/internal/entity"
	"go-arena-shooter/internal/event"
)

// StateGameContext определяет методы, которые StateSystem требует от Game.
type StateGameContext interface {
	StartNextWave()
	DrainProjectiles()
}

// StateSystem переключает фазы боя: передышка -> волна -> передышка, и
// фиксирует поражение. Остальные системы читают фазу из ECS.
type StateSystem struct {
	ecs             *entity.ECS
	gameContext     StateGameContext
	eventDispatcher *event.Dispatcher
}

func NewStateSystem(ecs *entity.ECS, gameContext StateGameContext, eventDispatcher *event.Dispatcher) *StateSystem {
	ss := &StateSystem{
		ecs:             ecs,
		gameContext:     gameContext,
		eventDispatcher: eventDispatcher,
	}
	eventDispatcher.Subscribe(event.WaveEnded, ss)
	eventDispatcher.Subscribe(event.PlayerDied, ss)
	return ss
}

func (s *StateSystem) OnEvent(e event.Event) {
	switch e.Type {
	case event.WaveEnded:
		s.switchToIntermission()
	case event.PlayerDied:
		s.switchToGameOver()
	}
}

// Update ведёт таймер передышки и запускает следующую волну по его истечении.
func (s *StateSystem) Update(deltaTime float64) {
	gs := s.ecs.GameState
	if gs == nil || gs.Phase != component.IntermissionPhase {
		return
	}
	gs.PhaseTimer -= deltaTime
	if gs.PhaseTimer <= 0 {
		gs.Phase = component.CombatPhase
		s.gameContext.StartNextWave()
	}
}

func (s *StateSystem) switchToIntermission() {
	gs := s.ecs.GameState
	if gs == nil || gs.Phase == component.GameOverPhase {
		return
	}
	gs.Phase = component.IntermissionPhase
	gs.PhaseTimer = config.IntermissionDuration
	s.ecs.Wave = nil
	// Недолетевшие снаряды не переживают передышку.
	s.gameContext.DrainProjectiles()
}

func (s *StateSystem) switchToGameOver() {
	gs := s.ecs.GameState
	if gs == nil {
		return
	}
	gs.Phase = component.GameOverPhase
	gs.PhaseTimer = 0
}

func (s *StateSystem) Current() component.GamePhase {
	if s.ecs.GameState == nil {
		return component.IntermissionPhase
	}
	return s.ecs.GameState.Phase
}
