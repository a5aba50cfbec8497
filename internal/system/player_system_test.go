// internal/system/player_system_test.go
package system

import (
	"testing"

	"go-arena-shooter/internal/component"
	"go-arena-shooter/internal/config"
	"go-arena-shooter/internal/entity"
	"go-arena-shooter/internal/event"
	"go-arena-shooter/internal/types"
)

func newPlayerProgress(ecs *entity.ECS) *component.PlayerStateComponent {
	id := ecs.NewEntity()
	state := &component.PlayerStateComponent{
		Level:         1,
		CurrentXP:     0,
		XPToNextLevel: config.CalculateXPForNextLevel(1),
	}
	ecs.PlayerState[id] = state
	return state
}

func killEvent(xp int) event.Event {
	return event.Event{
		Type: event.EnemyKilled,
		Data: event.KillInfo{Enemy: types.EntityID(404), XPReward: xp},
	}
}

func TestKillRewardsExperienceScoreAndKillCount(t *testing.T) {
	ecs := entity.NewECS()
	state := newPlayerProgress(ecs)
	ps := NewPlayerSystem(ecs)

	ps.OnEvent(killEvent(10))

	if state.CurrentXP != 10 {
		t.Fatalf("expected 10 xp from the reward, got %d", state.CurrentXP)
	}
	if state.Score != config.ScorePerKill {
		t.Fatalf("expected score %d, got %d", config.ScorePerKill, state.Score)
	}
	if state.Kills != 1 {
		t.Fatalf("expected 1 kill, got %d", state.Kills)
	}
	if state.Level != 1 {
		t.Fatalf("a single small reward must not level up, got level %d", state.Level)
	}
}

func TestLevelUpRollsOverSurplusExperience(t *testing.T) {
	ecs := entity.NewECS()
	state := newPlayerProgress(ecs)
	ps := NewPlayerSystem(ecs)

	state.CurrentXP = state.XPToNextLevel - 5
	ps.OnEvent(killEvent(10))

	if state.Level != 2 {
		t.Fatalf("expected level 2, got %d", state.Level)
	}
	if state.CurrentXP != 5 {
		t.Fatalf("expected 5 surplus xp after the level up, got %d", state.CurrentXP)
	}
	if state.XPToNextLevel != config.CalculateXPForNextLevel(2) {
		t.Fatalf("expected next requirement %d, got %d", config.CalculateXPForNextLevel(2), state.XPToNextLevel)
	}
}

func TestHugeRewardGrantsSeveralLevels(t *testing.T) {
	ecs := entity.NewECS()
	state := newPlayerProgress(ecs)
	ps := NewPlayerSystem(ecs)

	reward := config.CalculateXPForNextLevel(1) + config.CalculateXPForNextLevel(2) + 1
	ps.OnEvent(killEvent(reward))

	if state.Level != 3 {
		t.Fatalf("expected level 3 from a double-requirement reward, got %d", state.Level)
	}
	if state.CurrentXP != 1 {
		t.Fatalf("expected 1 surplus xp, got %d", state.CurrentXP)
	}
	if state.XPToNextLevel != config.CalculateXPForNextLevel(3) {
		t.Fatalf("expected requirement for level 3, got %d", state.XPToNextLevel)
	}
}

func TestOtherEventsDoNotTouchProgress(t *testing.T) {
	ecs := entity.NewECS()
	state := newPlayerProgress(ecs)
	ps := NewPlayerSystem(ecs)

	ps.OnEvent(event.Event{Type: event.WaveStarted, Data: 1})

	if state.CurrentXP != 0 || state.Kills != 0 || state.Score != 0 {
		t.Fatalf("unrelated events must not grant rewards: %+v", state)
	}
}
