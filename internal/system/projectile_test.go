// internal/system/projectile_test.go
package system

import (
	"testing"

	"go-arena-shooter/internal/component"
	"go-arena-shooter/internal/config"
	"go-arena-shooter/internal/defs"
)

func (f *combatFixture) placeBarrier(x, y float64) {
	id := f.ecs.NewEntity()
	f.ecs.Positions[id] = &component.Position{X: x, Y: y}
	f.ecs.Colliders[id] = &component.Collider{Radius: config.BarrierRadius}
	f.ecs.Barriers[id] = &component.Barrier{}
}

func TestExpiredLifetimeDespawnsWithoutDetonation(t *testing.T) {
	f := newCombatFixture()
	flight := NewProjectileSystem(f.ecs, f.pool, f.resolver)

	bystander := f.spawnEnemy(410, 400, 100)
	f.rebuildGrid()
	proj := f.fire(defs.VariantExplosive, 400, 400)
	f.ecs.Lifetimes[proj].Remaining = 0.01

	flight.Update(0.05, 1)

	if _, ok := f.ecs.Projectiles[proj]; ok {
		t.Fatalf("expired projectile must be returned to the pool")
	}
	if got := f.ecs.Healths[bystander].Value; got != 100 {
		t.Fatalf("lifetime expiry must not detonate the warhead, enemy at %d hp", got)
	}
	if len(f.ecs.ExplosionWaves) != 0 {
		t.Fatalf("no blast visual expected on lifetime expiry")
	}
}

func TestProjectileLeavingArenaIsDespawned(t *testing.T) {
	f := newCombatFixture()
	flight := NewProjectileSystem(f.ecs, f.pool, f.resolver)

	_, _, maxX, _ := config.ArenaBounds()
	proj := f.fire(defs.VariantNormal, maxX+1, 400)

	flight.Update(0.016, 1)

	if _, ok := f.ecs.Projectiles[proj]; ok {
		t.Fatalf("projectile beyond the arena wall must be despawned")
	}
	if f.pool.ActiveCount() != 0 {
		t.Fatalf("despawned projectile must return to the pool")
	}
}

func TestBarrierStopsNormalAndDetonatesExplosive(t *testing.T) {
	f := newCombatFixture()
	flight := NewProjectileSystem(f.ecs, f.pool, f.resolver)

	f.placeBarrier(400, 400)
	victim := f.spawnEnemy(340, 400, 100) // в 30 от точки подрыва перед пилоном
	f.rebuildGrid()

	normal := f.fire(defs.VariantNormal, 400-config.BarrierRadius-4, 400)
	flight.Update(0.016, 1)

	if _, ok := f.ecs.Projectiles[normal]; ok {
		t.Fatalf("normal projectile must despawn on barrier contact")
	}
	if got := f.ecs.Healths[victim].Value; got != 100 {
		t.Fatalf("barrier stop of a normal projectile must not hurt anyone, got %d hp", got)
	}

	rocket := f.fire(defs.VariantExplosive, 400-config.BarrierRadius-4, 400)
	flight.Update(0.016, 2)

	if _, ok := f.ecs.Projectiles[rocket]; ok {
		t.Fatalf("explosive projectile must detonate on barrier contact")
	}
	if got := f.ecs.Healths[victim].Value; got != 90 {
		t.Fatalf("barrier detonation must damage the nearby enemy, got %d hp", got)
	}
	if len(f.ecs.ExplosionWaves) != 1 {
		t.Fatalf("expected a blast visual after barrier detonation, got %d", len(f.ecs.ExplosionWaves))
	}
}

func TestFlyingProjectileTicksDown(t *testing.T) {
	f := newCombatFixture()
	flight := NewProjectileSystem(f.ecs, f.pool, f.resolver)

	proj := f.fire(defs.VariantNormal, 400, 400)
	start := f.ecs.Lifetimes[proj].Remaining

	flight.Update(0.5, 1)

	if _, ok := f.ecs.Projectiles[proj]; !ok {
		t.Fatalf("projectile with remaining lifetime must keep flying")
	}
	if got := f.ecs.Lifetimes[proj].Remaining; got != start-0.5 {
		t.Fatalf("expected lifetime %v, got %v", start-0.5, got)
	}
}
