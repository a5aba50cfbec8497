// internal/system/enemy_test.go
package system

import (
	"math"
	"testing"

	"go-arena-shooter/internal/component"
	"go-arena-shooter/internal/config"
	"go-arena-shooter/internal/types"
)

type stubPlayerContext struct {
	id types.EntityID
}

func (c stubPlayerContext) GetPlayerID() types.EntityID { return c.id }

func (f *combatFixture) spawnPlayer(x, y float64) types.EntityID {
	id := f.ecs.NewEntity()
	f.ecs.Positions[id] = &component.Position{X: x, Y: y}
	f.ecs.Velocities[id] = &component.Velocity{}
	f.ecs.Healths[id] = &component.Health{Value: config.PlayerMaxHealth, Max: config.PlayerMaxHealth}
	f.ecs.Colliders[id] = &component.Collider{Radius: config.PlayerRadius}
	return id
}

func (f *combatFixture) spawnChaser(x, y float64, speed float64) types.EntityID {
	id := f.spawnEnemy(x, y, 100)
	f.ecs.Velocities[id] = &component.Velocity{}
	f.ecs.Enemies[id].MoveSpeed = speed
	return id
}

func TestEnemiesSteerTowardThePlayer(t *testing.T) {
	f := newCombatFixture()
	player := f.spawnPlayer(400, 300)
	steering := NewEnemySystem(f.ecs, stubPlayerContext{id: player})

	right := f.spawnChaser(600, 300, 100) // строго справа
	below := f.spawnChaser(400, 500, 50)  // строго снизу

	steering.Update(0.016)

	if vel := f.ecs.Velocities[right]; vel.DX != -100 || vel.DY != 0 {
		t.Fatalf("enemy to the right must move left at full speed, got (%v, %v)", vel.DX, vel.DY)
	}
	if vel := f.ecs.Velocities[below]; vel.DX != 0 || vel.DY != -50 {
		t.Fatalf("enemy below must move up at full speed, got (%v, %v)", vel.DX, vel.DY)
	}
}

func TestSteeringKeepsSpeedOnDiagonals(t *testing.T) {
	f := newCombatFixture()
	player := f.spawnPlayer(400, 300)
	steering := NewEnemySystem(f.ecs, stubPlayerContext{id: player})

	diagonal := f.spawnChaser(500, 400, 100)

	steering.Update(0.016)

	vel := f.ecs.Velocities[diagonal]
	speed := math.Sqrt(vel.DX*vel.DX + vel.DY*vel.DY)
	if math.Abs(speed-100) > 1e-9 {
		t.Fatalf("diagonal pursuit must not exceed the move speed, got %v", speed)
	}
	if vel.DX >= 0 || vel.DY >= 0 {
		t.Fatalf("enemy at the lower right must move up-left, got (%v, %v)", vel.DX, vel.DY)
	}
}

func TestEnemiesStopWhenThePlayerIsGone(t *testing.T) {
	f := newCombatFixture()
	steering := NewEnemySystem(f.ecs, stubPlayerContext{id: types.EntityID(999)})

	chaser := f.spawnChaser(600, 300, 100)
	f.ecs.Velocities[chaser].DX = 77

	steering.Update(0.016)

	if vel := f.ecs.Velocities[chaser]; vel.DX != 0 || vel.DY != 0 {
		t.Fatalf("enemies must stop without a player, got (%v, %v)", vel.DX, vel.DY)
	}
}
