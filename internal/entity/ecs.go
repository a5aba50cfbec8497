// internal/entity/ecs.go
package entity

import (
	"go-arena-shooter/internal/component"
	"go-arena-shooter/internal/types"
)

type ECS struct {
	GameTime          float64
	NextID            types.EntityID
	Positions         map[types.EntityID]*component.Position
	Velocities        map[types.EntityID]*component.Velocity
	Healths           map[types.EntityID]*component.Health
	Colliders         map[types.EntityID]*component.Collider
	Renderables       map[types.EntityID]*component.Renderable
	Projectiles       map[types.EntityID]*component.Projectile
	Lifetimes         map[types.EntityID]*component.Lifetime
	Enemies           map[types.EntityID]*component.Enemy
	Barriers          map[types.EntityID]*component.Barrier
	WeaponMounts      map[types.EntityID]*component.WeaponMount
	DamageFlashes     map[types.EntityID]*component.DamageFlash
	ExplosionWaves    map[types.EntityID]*component.ExplosionWave
	Invulnerabilities map[types.EntityID]*component.Invulnerability
	PlayerState       map[types.EntityID]*component.PlayerStateComponent
	Wave              *component.Wave
	GameState         *component.GameState
}

func NewECS() *ECS {
	return &ECS{
		NextID:            1,
		Positions:         make(map[types.EntityID]*component.Position),
		Velocities:        make(map[types.EntityID]*component.Velocity),
		Healths:           make(map[types.EntityID]*component.Health),
		Colliders:         make(map[types.EntityID]*component.Collider),
		Renderables:       make(map[types.EntityID]*component.Renderable),
		Projectiles:       make(map[types.EntityID]*component.Projectile),
		Lifetimes:         make(map[types.EntityID]*component.Lifetime),
		Enemies:           make(map[types.EntityID]*component.Enemy),
		Barriers:          make(map[types.EntityID]*component.Barrier),
		WeaponMounts:      make(map[types.EntityID]*component.WeaponMount),
		DamageFlashes:     make(map[types.EntityID]*component.DamageFlash),
		ExplosionWaves:    make(map[types.EntityID]*component.ExplosionWave),
		Invulnerabilities: make(map[types.EntityID]*component.Invulnerability),
		PlayerState:       make(map[types.EntityID]*component.PlayerStateComponent),
		Wave:              nil,
		GameState: &component.GameState{
			Phase:      component.IntermissionPhase,
			PhaseTimer: 0,
		},
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}
