// internal/system/hit_gate.go
package system

import (
	"go-arena-shooter/internal/types"
)

// PairKey идентифицирует пару снаряд-цель в таблице дедупликации.
type PairKey struct {
	Projectile types.EntityID
	Target     types.EntityID
}

// HitGate отсекает повторные сообщения о контакте одной и той же пары
// снаряд-цель внутри одного тика симуляции. Широкая фаза (сетка) честно
// сообщает о каждой ячейке, где пара встретилась, поэтому дубликаты — норма,
// а не ошибка. Запись хранит номер тика последней обработки.
type HitGate struct {
	seen map[PairKey]uint64
}

func NewHitGate() *HitGate {
	return &HitGate{seen: make(map[PairKey]uint64)}
}

// ShouldProcess возвращает true, если пара ещё не обрабатывалась на этом тике,
// и сразу регистрирует её. Второй и последующие вызовы на том же тике
// возвращают false.
func (g *HitGate) ShouldProcess(projectile, target types.EntityID, tick uint64) bool {
	key := PairKey{Projectile: projectile, Target: target}
	if last, ok := g.seen[key]; ok && last == tick {
		return false
	}
	g.seen[key] = tick
	return true
}

// PurgeProjectile удаляет все записи снаряда. Обязателен при возврате снаряда
// в пул: слот переиспользует EntityID, и устаревшая запись заблокировала бы
// первый контакт следующей жизни.
func (g *HitGate) PurgeProjectile(id types.EntityID) {
	for key := range g.seen {
		if key.Projectile == id {
			delete(g.seen, key)
		}
	}
}

// Reset полностью очищает таблицу. Вызывается при перезапуске игры.
func (g *HitGate) Reset() {
	for key := range g.seen {
		delete(g.seen, key)
	}
}

// Len возвращает число записей в таблице.
func (g *HitGate) Len() int {
	return len(g.seen)
}
