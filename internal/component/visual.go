// internal/component/visual.go
package component

// DamageFlash указывает, что сущность должна быть отрисована цветом урона.
type DamageFlash struct {
	Timer    float64 // Сколько времени эффекту осталось жить
	Duration float64 // Общая продолжительность эффекта
}

// ExplosionWave — расширяющееся кольцо детонации. Радиус отрисовки растёт
// от нуля до MaxRadius за Duration, после чего сущность эффекта удаляется.
type ExplosionWave struct {
	MaxRadius    float64
	Duration     float64
	CurrentTimer float64
}
