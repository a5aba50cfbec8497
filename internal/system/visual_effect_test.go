// internal/system/visual_effect_test.go
package system

import (
	"testing"

	"go-arena-shooter/internal/component"
	"go-arena-shooter/internal/entity"
)

func TestDamageFlashFadesOut(t *testing.T) {
	ecs := entity.NewECS()
	vs := NewVisualEffectSystem(ecs)

	id := ecs.NewEntity()
	ecs.DamageFlashes[id] = &component.DamageFlash{Timer: 0, Duration: 0.15}

	vs.Update(0.1)
	if _, ok := ecs.DamageFlashes[id]; !ok {
		t.Fatalf("flash must survive until its duration elapses")
	}

	vs.Update(0.1)
	if _, ok := ecs.DamageFlashes[id]; ok {
		t.Fatalf("flash must be removed after its duration")
	}
}

func TestExplosionWaveExpiresWithItsPosition(t *testing.T) {
	ecs := entity.NewECS()
	vs := NewVisualEffectSystem(ecs)

	id := ecs.NewEntity()
	ecs.Positions[id] = &component.Position{X: 100, Y: 100}
	ecs.ExplosionWaves[id] = &component.ExplosionWave{MaxRadius: 60, Duration: 0.4}

	vs.Update(0.3)
	if _, ok := ecs.ExplosionWaves[id]; !ok {
		t.Fatalf("wave must survive until its duration elapses")
	}

	vs.Update(0.2)
	if _, ok := ecs.ExplosionWaves[id]; ok {
		t.Fatalf("wave must be removed after its duration")
	}
	if _, ok := ecs.Positions[id]; ok {
		t.Fatalf("expired wave must not leak its position component")
	}
}

func TestInvulnerabilityWindowCloses(t *testing.T) {
	ecs := entity.NewECS()
	ss := NewStatusEffectSystem(ecs)

	id := ecs.NewEntity()
	ecs.Invulnerabilities[id] = &component.Invulnerability{Timer: 0.3}

	ss.Update(0.2)
	if _, ok := ecs.Invulnerabilities[id]; !ok {
		t.Fatalf("window must stay open while the timer is positive")
	}

	ss.Update(0.2)
	if _, ok := ecs.Invulnerabilities[id]; ok {
		t.Fatalf("window must close when the timer runs out")
	}
}
