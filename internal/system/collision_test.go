// internal/system/collision_test.go
package system

import (
	"testing"

	"go-arena-shooter/internal/config"
	"go-arena-shooter/internal/defs"
)

func TestCellSpanningEnemyIsResolvedOncePerTick(t *testing.T) {
	f := newCombatFixture()
	collision := NewCollisionSystem(f.ecs, f.grid, f.resolver)

	// Центр врага на стыке четырёх ячеек, снаряд вплотную к нему.
	enemy := f.spawnEnemy(config.CollisionCell*2, config.CollisionCell*2, 100)
	proj := f.fire(defs.VariantPierce, config.CollisionCell*2-10, config.CollisionCell*2)

	collision.Update(1)

	if got := f.ecs.Healths[enemy].Value; got != 90 {
		t.Fatalf("duplicate per-cell reports must collapse into one hit, enemy at %d hp", got)
	}
	if got := f.ecs.Projectiles[proj].HitCount; got != 1 {
		t.Fatalf("expected pierce counter 1 after one tick, got %d", got)
	}

	// Следующий тик: пара уже в списке пробитых, урон не повторяется.
	collision.Update(2)
	if got := f.ecs.Healths[enemy].Value; got != 90 {
		t.Fatalf("lingering overlap must not damage the same enemy twice, got %d hp", got)
	}
}

func TestNormalProjectileSpendsItselfOnASingleEnemy(t *testing.T) {
	f := newCombatFixture()
	collision := NewCollisionSystem(f.ecs, f.grid, f.resolver)

	left := f.spawnEnemy(190, 200, 100)
	right := f.spawnEnemy(210, 200, 100)
	proj := f.fire(defs.VariantNormal, 200, 200)

	collision.Update(1)

	if _, ok := f.ecs.Projectiles[proj]; ok {
		t.Fatalf("normal projectile overlapping two enemies must still be destroyed")
	}
	damaged := 0
	if f.ecs.Healths[left].Value == 90 {
		damaged++
	}
	if f.ecs.Healths[right].Value == 90 {
		damaged++
	}
	if damaged != 1 {
		t.Fatalf("a normal projectile must damage exactly one enemy, damaged %d", damaged)
	}
}

func TestProjectileOutOfReachTouchesNothing(t *testing.T) {
	f := newCombatFixture()
	collision := NewCollisionSystem(f.ecs, f.grid, f.resolver)

	enemy := f.spawnEnemy(200, 200, 100)
	proj := f.fire(defs.VariantNormal, 200, 260) // дистанция 60 > 5 + 12

	collision.Update(1)

	if got := f.ecs.Healths[enemy].Value; got != 100 {
		t.Fatalf("non-overlapping projectile must not damage, enemy at %d hp", got)
	}
	if _, ok := f.ecs.Projectiles[proj]; !ok {
		t.Fatalf("projectile with no contacts must keep flying")
	}
	if got := f.resolver.GateLen(); got != 0 {
		t.Fatalf("no contact means no gate entries, got %d", got)
	}
}

func TestExplosiveContactDetonatesThroughBroadPhase(t *testing.T) {
	f := newCombatFixture()
	collision := NewCollisionSystem(f.ecs, f.grid, f.resolver)

	trigger := f.spawnEnemy(210, 200, 100)
	near := f.spawnEnemy(230, 200, 100) // в радиусе взрыва от точки подрыва
	far := f.spawnEnemy(400, 200, 100)
	proj := f.fire(defs.VariantExplosive, 200, 200)

	collision.Update(1)

	if _, ok := f.ecs.Projectiles[proj]; ok {
		t.Fatalf("explosive projectile must be destroyed on contact")
	}
	if got := f.ecs.Healths[trigger].Value; got != 90 {
		t.Fatalf("triggering enemy must take blast damage, got %d hp", got)
	}
	if got := f.ecs.Healths[near].Value; got != 90 {
		t.Fatalf("enemy inside the blast radius must take damage, got %d hp", got)
	}
	if got := f.ecs.Healths[far].Value; got != 100 {
		t.Fatalf("enemy far from the blast must be untouched, got %d hp", got)
	}
}
