// internal/app/game_test.go
package app

import (
	"math"
	"testing"

	"go-arena-shooter/internal/component"
	"go-arena-shooter/internal/config"
	"go-arena-shooter/internal/defs"
	"go-arena-shooter/internal/types"
)

func seedGameLibraries() {
	defs.WeaponLibrary = map[string]defs.WeaponDefinition{
		"WEAPON_BLASTER": {
			ID:              "WEAPON_BLASTER",
			Variant:         defs.VariantNormal,
			Damage:          10,
			ProjectileSpeed: 300,
			FireRate:        4,
			Lifetime:        2,
			Visuals:         defs.Visuals{RadiusFactor: 1},
		},
	}
	defs.EnemyLibrary = map[string]defs.EnemyDefinition{
		"ENEMY_TEST": {
			ID:            "ENEMY_TEST",
			Health:        20,
			Speed:         100,
			ContactDamage: 1,
			XPReward:      10,
			Visuals:       defs.Visuals{RadiusFactor: 1},
		},
	}
	defs.WaveLibrary = map[int]defs.WaveDefinition{
		1: {
			Wave:          1,
			Count:         3,
			SpawnInterval: 0.5,
			Entries:       []defs.SpawnEntry{{EnemyID: "ENEMY_TEST", Weight: 1}},
		},
	}
	defs.LastDefinedWave = 1
}

func newTestGame() *Game {
	seedGameLibraries()
	return NewGame(1)
}

// spawnStaticEnemy ставит на арену неподвижного врага вне волновой системы.
func (g *Game) spawnStaticEnemy(x, y float64, hp, contactDamage int) types.EntityID {
	id := g.ECS.NewEntity()
	g.ECS.Positions[id] = &component.Position{X: x, Y: y}
	g.ECS.Velocities[id] = &component.Velocity{}
	g.ECS.Healths[id] = &component.Health{Value: hp, Max: hp}
	g.ECS.Colliders[id] = &component.Collider{Radius: config.EnemyRadius}
	g.ECS.Renderables[id] = &component.Renderable{Radius: config.EnemyRadius}
	g.ECS.Enemies[id] = &component.Enemy{
		DefID:         "ENEMY_TEST",
		MoveSpeed:     0,
		ContactDamage: contactDamage,
		XPReward:      10,
	}
	return id
}

func TestNewGameSpawnsPlayerAndPylons(t *testing.T) {
	g := newTestGame()

	pos, ok := g.ECS.Positions[g.PlayerID]
	if !ok {
		t.Fatalf("player has no position")
	}
	if pos.X != float64(config.ScreenWidth)/2 || pos.Y != float64(config.ScreenHeight)/2 {
		t.Fatalf("player is not in the arena center: (%v, %v)", pos.X, pos.Y)
	}
	if health := g.ECS.Healths[g.PlayerID]; health == nil || health.Value != config.PlayerMaxHealth {
		t.Fatalf("player health is not full: %+v", health)
	}
	if mount := g.ECS.WeaponMounts[g.PlayerID]; mount == nil || mount.WeaponID != "WEAPON_BLASTER" {
		t.Fatalf("player is not holding the starting weapon: %+v", mount)
	}
	if ps := g.ECS.PlayerState[g.PlayerID]; ps == nil || ps.Level != 1 {
		t.Fatalf("player state is not at level 1: %+v", ps)
	}

	if got := len(g.ECS.Barriers); got != config.BarrierCount {
		t.Fatalf("expected %d pylons, got %d", config.BarrierCount, got)
	}

	// Пилоны не наседают ни друг на друга, ни на точку появления игрока.
	var centers []component.Position
	for id := range g.ECS.Barriers {
		bp := g.ECS.Positions[id]
		if bp == nil {
			t.Fatalf("pylon %d has no position", id)
		}
		if d := math.Hypot(bp.X-pos.X, bp.Y-pos.Y); d < config.BarrierMinGap {
			t.Fatalf("pylon %d is %v away from the player spawn, min is %v", id, d, config.BarrierMinGap)
		}
		for _, other := range centers {
			if d := math.Hypot(bp.X-other.X, bp.Y-other.Y); d < config.BarrierMinGap {
				t.Fatalf("two pylons are %v apart, min is %v", d, config.BarrierMinGap)
			}
		}
		centers = append(centers, *bp)
	}
}

func TestIntermissionCountdownStartsFirstWave(t *testing.T) {
	g := newTestGame()

	if g.ECS.GameState.Phase != component.IntermissionPhase {
		t.Fatalf("a fresh game must begin with an intermission")
	}
	g.Update(3.0)
	if g.ECS.GameState.Phase != component.IntermissionPhase {
		t.Fatalf("intermission ended too early")
	}

	g.Update(2.1)

	if g.ECS.GameState.Phase != component.CombatPhase {
		t.Fatalf("combat did not start after the intermission")
	}
	if g.ECS.Wave == nil || g.ECS.Wave.Number != 1 {
		t.Fatalf("wave 1 is not active: %+v", g.ECS.Wave)
	}
	if g.Wave != 2 {
		t.Fatalf("next wave counter should be 2, got %d", g.Wave)
	}
}

func TestBlasterShotWoundsStandingEnemy(t *testing.T) {
	g := newTestGame()
	g.ECS.GameState.Phase = component.CombatPhase
	enemy := g.spawnStaticEnemy(700, 450, 20, 1)

	g.HandleFire(component.DirRight)
	if g.Pool.ActiveCount() != 1 {
		t.Fatalf("expected one projectile in flight, got %d", g.Pool.ActiveCount())
	}

	// Снаряд стартует у дула (~621) и со скоростью 300 долетает до врага
	// на пятом кадре по 50 мс.
	for i := 0; i < 6; i++ {
		g.Update(0.05)
	}

	if health := g.ECS.Healths[enemy]; health == nil || health.Value != 10 {
		t.Fatalf("enemy should have 10 hp left, got %+v", health)
	}
	if g.Pool.ActiveCount() != 0 {
		t.Fatalf("projectile was not returned to the pool")
	}
	if g.HitResolver.GateLen() != 0 {
		t.Fatalf("hit bookkeeping survived the release")
	}
	if st := g.Pool.Stats()[defs.VariantNormal]; st.Reused != 1 {
		t.Fatalf("expected the shot to reuse a prewarmed slot: %+v", st)
	}
}

func TestLethalContactEndsTheRun(t *testing.T) {
	g := newTestGame()
	g.ECS.GameState.Phase = component.CombatPhase
	g.spawnStaticEnemy(605, 450, 20, config.PlayerMaxHealth)

	g.Update(0.05)

	if g.ECS.GameState.Phase != component.GameOverPhase {
		t.Fatalf("lethal contact did not end the run")
	}

	// После поражения ввод движения игнорируется.
	g.SetMoveInput(1, 0)
	if vel := g.ECS.Velocities[g.PlayerID]; vel.DX != 0 || vel.DY != 0 {
		t.Fatalf("dead player accepted movement input: %+v", vel)
	}
}

func TestHandleFireOutsideCombatIsIgnored(t *testing.T) {
	g := newTestGame()

	g.HandleFire(component.DirUp)

	if g.Pool.ActiveCount() != 0 {
		t.Fatalf("firing during the intermission must be rejected")
	}
}

func TestResetRestoresFreshRun(t *testing.T) {
	g := newTestGame()
	g.ECS.GameState.Phase = component.CombatPhase
	g.spawnStaticEnemy(900, 700, 20, 1)
	g.HandleFire(component.DirUp)
	g.ECS.Healths[g.PlayerID].Value = 3
	g.ECS.PlayerState[g.PlayerID].Score = 500

	g.Reset()

	if g.Pool.ActiveCount() != 0 {
		t.Fatalf("projectiles survived the reset")
	}
	if g.HitResolver.GateLen() != 0 {
		t.Fatalf("hit bookkeeping survived the reset")
	}
	if len(g.ECS.Enemies) != 0 {
		t.Fatalf("enemies survived the reset")
	}
	if g.ECS.Wave != nil || g.Wave != 1 {
		t.Fatalf("wave progression was not rewound: wave=%+v next=%d", g.ECS.Wave, g.Wave)
	}
	if g.ECS.GameState.Phase != component.IntermissionPhase || g.ECS.GameState.PhaseTimer != config.IntermissionDuration {
		t.Fatalf("reset must lead into a fresh intermission: %+v", g.ECS.GameState)
	}
	if health := g.ECS.Healths[g.PlayerID]; health.Value != config.PlayerMaxHealth {
		t.Fatalf("player health was not restored: %+v", health)
	}
	if ps := g.ECS.PlayerState[g.PlayerID]; ps.Score != 0 || ps.Level != 1 {
		t.Fatalf("player progression was not rewound: %+v", ps)
	}
	// Расстановка пилонов сохраняется между попытками.
	if got := len(g.ECS.Barriers); got != config.BarrierCount {
		t.Fatalf("pylon layout changed across reset: %d", got)
	}
}

func TestSpeedToggleCyclesMultiplier(t *testing.T) {
	g := newTestGame()

	want := []float64{2, 4, 1}
	for _, expected := range want {
		g.HandleSpeedClick()
		if g.SpeedMultiplier != expected {
			t.Fatalf("expected speed multiplier %v, got %v", expected, g.SpeedMultiplier)
		}
	}
}
