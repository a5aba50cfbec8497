// internal/entity/pool.go
package entity

import (
	"go-arena-shooter/internal/component"
	"go-arena-shooter/internal/config"
	"go-arena-shooter/internal/defs"
	"go-arena-shooter/internal/types"
	"log"
)

// SpawnParams задаёт начальное состояние снаряда при выдаче из пула.
type SpawnParams struct {
	X, Y    float64
	Dir     component.Direction
	OwnerID types.EntityID
}

// PoolStats — счётчики одного варианта снарядов.
type PoolStats struct {
	Created  int // всего сконструированных слотов, включая предсозданные
	Overflow int // слоты, созданные из-за пустого свободного списка
	Reused   int // выдачи, обслуженные свободным списком
	Active   int
	Free     int
}

// slot закрепляет за снарядом идентификатор и компоненты на всё время жизни
// пула. Пока снаряд активен, компоненты установлены в картах ECS; в пуле они
// хранятся только в слоте. Сущность не бывает и там, и там одновременно.
type slot struct {
	id         types.EntityID
	projectile *component.Projectile
	position   *component.Position
	velocity   *component.Velocity
	lifetime   *component.Lifetime
	collider   *component.Collider
	renderable *component.Renderable
}

// ProjectilePool переиспользует сущности снарядов по вариантам оружия.
// Пул никогда не уменьшается: при исчерпании свободного списка создаётся
// новый слот с предупреждением в логе, выстрел не отклоняется.
type ProjectilePool struct {
	ecs          *ECS
	free         map[defs.WeaponVariant][]*slot
	active       map[types.EntityID]*slot
	stats        map[defs.WeaponVariant]*PoolStats
	releaseHooks []func(types.EntityID)
}

// NewProjectilePool создаёт пул и предсоздаёт prewarm слотов на каждый
// известный вариант оружия.
func NewProjectilePool(ecs *ECS, prewarm int) *ProjectilePool {
	p := &ProjectilePool{
		ecs:    ecs,
		free:   make(map[defs.WeaponVariant][]*slot),
		active: make(map[types.EntityID]*slot),
		stats:  make(map[defs.WeaponVariant]*PoolStats),
	}
	for _, variant := range []defs.WeaponVariant{defs.VariantNormal, defs.VariantPierce, defs.VariantExplosive} {
		st := p.statsFor(variant)
		for i := 0; i < prewarm; i++ {
			p.free[variant] = append(p.free[variant], p.newSlot())
			st.Created++
		}
	}
	return p
}

// AddReleaseHook регистрирует обработчик, вызываемый на каждом возврате
// слота в пул, включая принудительный слив. Сюда резолвер попаданий
// подключает очистку своей таблицы пар.
func (p *ProjectilePool) AddReleaseHook(hook func(types.EntityID)) {
	p.releaseHooks = append(p.releaseHooks, hook)
}

func (p *ProjectilePool) statsFor(variant defs.WeaponVariant) *PoolStats {
	st, ok := p.stats[variant]
	if !ok {
		st = &PoolStats{}
		p.stats[variant] = st
	}
	return st
}

// newSlot конструирует слот с постоянным идентификатором и компонентами.
// Карты бухгалтерии снаряда выделяются один раз и переживают все его жизни.
func (p *ProjectilePool) newSlot() *slot {
	return &slot{
		id: p.ecs.NewEntity(),
		projectile: &component.Projectile{
			HitTargets:     make(map[types.EntityID]struct{}),
			DamagedByBlast: make(map[types.EntityID]struct{}),
		},
		position:   &component.Position{},
		velocity:   &component.Velocity{},
		lifetime:   &component.Lifetime{},
		collider:   &component.Collider{},
		renderable: &component.Renderable{},
	}
}

// Acquire выдаёт снаряд указанного оружия: берёт слот из свободного списка
// варианта либо создаёт новый при переполнении. Возвращает идентификатор
// активированной сущности.
func (p *ProjectilePool) Acquire(def *defs.WeaponDefinition, params SpawnParams) types.EntityID {
	st := p.statsFor(def.Variant)

	var s *slot
	if freeList := p.free[def.Variant]; len(freeList) > 0 {
		s = freeList[len(freeList)-1]
		p.free[def.Variant] = freeList[:len(freeList)-1]
		st.Reused++
	} else {
		s = p.newSlot()
		st.Created++
		st.Overflow++
		log.Printf("Пул снарядов %s исчерпан, создан слот сверх предсозданных (всего %d)", def.Variant, st.Created)
	}

	dx, dy := params.Dir.Vector()
	radius := config.ProjectileRadius * def.Visuals.RadiusFactor

	proj := s.projectile
	proj.WeaponID = def.ID
	proj.Variant = def.Variant
	proj.OwnerID = params.OwnerID
	proj.Damage = def.Damage
	proj.Speed = def.ProjectileSpeed
	proj.Dir = params.Dir
	proj.Color = def.Visuals.Color
	proj.MaxPierce = def.MaxPierce
	proj.ExplosionRadius = def.ExplosionRadius

	*s.position = component.Position{X: params.X, Y: params.Y}
	*s.velocity = component.Velocity{DX: dx * def.ProjectileSpeed, DY: dy * def.ProjectileSpeed}
	*s.lifetime = component.Lifetime{Remaining: def.Lifetime}
	*s.collider = component.Collider{Radius: radius}
	*s.renderable = component.Renderable{
		Color:     def.Visuals.Color,
		Radius:    float32(radius),
		HasStroke: def.Visuals.StrokeWidth > 0,
	}

	p.ecs.Projectiles[s.id] = proj
	p.ecs.Positions[s.id] = s.position
	p.ecs.Velocities[s.id] = s.velocity
	p.ecs.Lifetimes[s.id] = s.lifetime
	p.ecs.Colliders[s.id] = s.collider
	p.ecs.Renderables[s.id] = s.renderable

	p.active[s.id] = s
	return s.id
}

// Release возвращает снаряд в пул: снимает компоненты с ECS, очищает
// бухгалтерию варианта и прогоняет хуки возврата. Повторный возврат или
// чужая сущность игнорируются.
func (p *ProjectilePool) Release(id types.EntityID) {
	s, ok := p.active[id]
	if !ok {
		log.Printf("ProjectilePool: возврат неактивной сущности %d проигнорирован", id)
		return
	}
	delete(p.active, id)

	delete(p.ecs.Projectiles, id)
	delete(p.ecs.Positions, id)
	delete(p.ecs.Velocities, id)
	delete(p.ecs.Lifetimes, id)
	delete(p.ecs.Colliders, id)
	delete(p.ecs.Renderables, id)

	s.projectile.Reset()
	for _, hook := range p.releaseHooks {
		hook(id)
	}

	p.free[s.projectile.Variant] = append(p.free[s.projectile.Variant], s)
}

// DrainActive принудительно возвращает все активные снаряды. Используется
// при сбросе игры и смене сцены.
func (p *ProjectilePool) DrainActive() {
	for id := range p.active {
		p.Release(id)
	}
}

// ActiveCount возвращает число активных снарядов всех вариантов.
func (p *ProjectilePool) ActiveCount() int {
	return len(p.active)
}

// Stats возвращает снимок счётчиков по вариантам для отладочной панели.
func (p *ProjectilePool) Stats() map[defs.WeaponVariant]PoolStats {
	out := make(map[defs.WeaponVariant]PoolStats, len(p.stats))
	for variant, st := range p.stats {
		snapshot := *st
		snapshot.Free = len(p.free[variant])
		out[variant] = snapshot
	}
	for _, s := range p.active {
		snapshot := out[s.projectile.Variant]
		snapshot.Active++
		out[s.projectile.Variant] = snapshot
	}
	return out
}
