// internal/system/state_test.go
package system

import (
	"testing"

	"go-arena-shooter/internal/component"
	"go-arena-shooter/internal/config"
	"go-arena-shooter/internal/entity"
	"go-arena-shooter/internal/event"
)

type stubStateContext struct {
	wavesStarted int
	drains       int
}

func (c *stubStateContext) StartNextWave()    { c.wavesStarted++ }
func (c *stubStateContext) DrainProjectiles() { c.drains++ }

func TestIntermissionCountsDownIntoCombat(t *testing.T) {
	ecs := entity.NewECS()
	dispatcher := event.NewDispatcher()
	game := &stubStateContext{}
	ss := NewStateSystem(ecs, game, dispatcher)

	ecs.GameState.Phase = component.IntermissionPhase
	ecs.GameState.PhaseTimer = 0.5

	ss.Update(0.3)
	if ss.Current() != component.IntermissionPhase {
		t.Fatalf("intermission must hold until the timer runs out")
	}
	if game.wavesStarted != 0 {
		t.Fatalf("wave started too early")
	}

	ss.Update(0.3)
	if ss.Current() != component.CombatPhase {
		t.Fatalf("expected combat phase after the intermission, got %v", ss.Current())
	}
	if game.wavesStarted != 1 {
		t.Fatalf("expected exactly one wave start, got %d", game.wavesStarted)
	}
}

func TestWaveEndedOpensIntermissionAndDrainsProjectiles(t *testing.T) {
	ecs := entity.NewECS()
	dispatcher := event.NewDispatcher()
	game := &stubStateContext{}
	ss := NewStateSystem(ecs, game, dispatcher)

	ecs.GameState.Phase = component.CombatPhase
	ecs.Wave = &component.Wave{Number: 3}

	dispatcher.Dispatch(event.Event{Type: event.WaveEnded, Data: 3})

	if ss.Current() != component.IntermissionPhase {
		t.Fatalf("expected intermission after the wave, got %v", ss.Current())
	}
	if ecs.GameState.PhaseTimer != config.IntermissionDuration {
		t.Fatalf("expected intermission timer %v, got %v", config.IntermissionDuration, ecs.GameState.PhaseTimer)
	}
	if ecs.Wave != nil {
		t.Fatalf("finished wave must be discarded")
	}
	if game.drains != 1 {
		t.Fatalf("leftover projectiles must be drained once, got %d", game.drains)
	}
}

func TestPlayerDeathLocksTheGameOverPhase(t *testing.T) {
	ecs := entity.NewECS()
	dispatcher := event.NewDispatcher()
	game := &stubStateContext{}
	ss := NewStateSystem(ecs, game, dispatcher)

	ecs.GameState.Phase = component.CombatPhase

	dispatcher.Dispatch(event.Event{Type: event.PlayerDied})
	if ss.Current() != component.GameOverPhase {
		t.Fatalf("expected game over after the player's death, got %v", ss.Current())
	}

	// Поздние события волны не выводят из проигрыша.
	dispatcher.Dispatch(event.Event{Type: event.WaveEnded, Data: 3})
	if ss.Current() != component.GameOverPhase {
		t.Fatalf("game over must be final, got %v", ss.Current())
	}

	ss.Update(10)
	if game.wavesStarted != 0 {
		t.Fatalf("no waves may start after game over, got %d", game.wavesStarted)
	}
}
