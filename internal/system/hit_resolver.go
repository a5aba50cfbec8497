// internal/system/hit_resolver.go
package system

import (
	"log"

	"go-arena-shooter/internal/component"
	"go-arena-shooter/internal/config"
	"go-arena-shooter/internal/defs"
	"go-arena-shooter/internal/entity"
	"go-arena-shooter/internal/event"
	"go-arena-shooter/internal/types"
	"go-arena-shooter/pkg/grid"
)

// HitResolver применяет эффект контакта снаряда с врагом по варианту оружия.
// Владеет шлюзом дедупликации: очистка записей снаряда подключена к пулу как
// хук возврата, поэтому переиспользование EntityID не наследует чужую историю.
type HitResolver struct {
	ecs        *entity.ECS
	dispatcher *event.Dispatcher
	pool       *entity.ProjectilePool
	grid       *grid.Grid
	gate       *HitGate
}

func NewHitResolver(ecs *entity.ECS, dispatcher *event.Dispatcher, pool *entity.ProjectilePool, g *grid.Grid) *HitResolver {
	r := &HitResolver{
		ecs:        ecs,
		dispatcher: dispatcher,
		pool:       pool,
		grid:       g,
		gate:       NewHitGate(),
	}
	pool.AddReleaseHook(r.gate.PurgeProjectile)
	return r
}

// HandleOverlap обрабатывает одно сообщение широкой фазы о пересечении
// снаряда и врага. Дубликаты того же тика отсекает шлюз; сообщения об уже
// возвращённом снаряде или уже убранном враге тихо игнорируются — за один тик
// это штатная ситуация, а не ошибка.
func (r *HitResolver) HandleOverlap(projectile, target types.EntityID, tick uint64) {
	proj, ok := r.ecs.Projectiles[projectile]
	if !ok {
		return
	}
	if _, isEnemy := r.ecs.Enemies[target]; !isEnemy {
		return
	}
	if _, alive := r.ecs.Healths[target]; !alive {
		return
	}

	if !r.gate.ShouldProcess(projectile, target, tick) {
		return
	}

	switch proj.Variant {
	case defs.VariantNormal:
		r.damageEnemy(proj, projectile, target, tick)
		r.pool.Release(projectile)

	case defs.VariantPierce:
		if _, already := proj.HitTargets[target]; already {
			// Повторный контакт с той же целью не тратит пробитие.
			return
		}
		proj.HitTargets[target] = struct{}{}
		proj.HitCount++
		r.damageEnemy(proj, projectile, target, tick)
		if proj.HitCount >= proj.MaxPierce {
			r.pool.Release(projectile)
		}

	case defs.VariantExplosive:
		r.detonate(proj, projectile, tick)

	default:
		log.Printf("HitResolver: снаряд %d с неизвестным вариантом %q, контакт пропущен", projectile, proj.Variant)
	}
}

// detonate одноразово взрывает снаряд: площадной урон всем врагам в радиусе
// от точки подрыва, затем возврат в пул. Повторный вызов — no-op.
func (r *HitResolver) detonate(proj *component.Projectile, projectile types.EntityID, tick uint64) {
	if proj.Detonated {
		return
	}
	proj.Detonated = true

	pos, hasPos := r.ecs.Positions[projectile]
	if !hasPos {
		log.Printf("HitResolver: у взрывного снаряда %d нет позиции, подрыв отменён", projectile)
		r.pool.Release(projectile)
		return
	}
	blastX, blastY := pos.X, pos.Y

	EnemiesInRadius(r.ecs, r.grid, blastX, blastY, proj.ExplosionRadius, func(victim types.EntityID) {
		if _, already := proj.DamagedByBlast[victim]; already {
			return
		}
		proj.DamagedByBlast[victim] = struct{}{}
		r.damageEnemy(proj, projectile, victim, tick)
	})

	r.spawnExplosionWave(blastX, blastY, proj.ExplosionRadius)
	r.pool.Release(projectile)
}

// DetonateAt подрывает взрывной снаряд в точке контакта с препятствием.
// Для остальных вариантов просто возвращает снаряд в пул.
func (r *HitResolver) DetonateAt(projectile types.EntityID, tick uint64) {
	proj, ok := r.ecs.Projectiles[projectile]
	if !ok {
		return
	}
	if proj.Variant == defs.VariantExplosive {
		r.detonate(proj, projectile, tick)
		return
	}
	r.pool.Release(projectile)
}

func (r *HitResolver) damageEnemy(proj *component.Projectile, projectile, target types.EntityID, tick uint64) {
	ApplyDamage(r.ecs, target, proj.Damage)

	if r.dispatcher.HasListeners(event.ProjectileHit) {
		pos := r.ecs.Positions[target]
		info := event.HitInfo{
			Projectile: projectile,
			Target:     target,
			Damage:     proj.Damage,
			Kind:       proj.Variant,
			Tick:       tick,
		}
		if pos != nil {
			info.X, info.Y = pos.X, pos.Y
		}
		r.dispatcher.Dispatch(event.Event{Type: event.ProjectileHit, Data: info})
	}

	if health := r.ecs.Healths[target]; health != nil && health.Value <= 0 {
		r.killEnemy(target)
	}
}

// killEnemy убирает врага из мира и оповещает подписчиков. Сначала уходит
// EnemyKilled с наградой, затем EnemyRemovedFromGame для счётчиков волны.
func (r *HitResolver) killEnemy(id types.EntityID) {
	enemy := r.ecs.Enemies[id]
	info := event.KillInfo{Enemy: id}
	if enemy != nil {
		info.DefID = enemy.DefID
		info.XPReward = enemy.XPReward
	}
	if pos := r.ecs.Positions[id]; pos != nil {
		info.X, info.Y = pos.X, pos.Y
	}

	delete(r.ecs.Enemies, id)
	delete(r.ecs.Positions, id)
	delete(r.ecs.Velocities, id)
	delete(r.ecs.Healths, id)
	delete(r.ecs.Colliders, id)
	delete(r.ecs.Renderables, id)
	delete(r.ecs.DamageFlashes, id)

	r.dispatcher.Dispatch(event.Event{Type: event.EnemyKilled, Data: info})
	r.dispatcher.Dispatch(event.Event{Type: event.EnemyRemovedFromGame, Data: id})
}

func (r *HitResolver) spawnExplosionWave(x, y, radius float64) {
	id := r.ecs.NewEntity()
	r.ecs.Positions[id] = &component.Position{X: x, Y: y}
	r.ecs.ExplosionWaves[id] = &component.ExplosionWave{
		MaxRadius: radius,
		Duration:  config.ExplosionWaveDuration,
	}
}

// Reset очищает шлюз дедупликации. Вызывается при перезапуске игры после
// слива пула.
func (r *HitResolver) Reset() {
	r.gate.Reset()
}

// GateLen возвращает число записей в шлюзе для отладочной панели.
func (r *HitResolver) GateLen() int {
	return r.gate.Len()
}
