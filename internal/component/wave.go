// internal/component/wave.go
package component

import "go-arena-shooter/internal/defs"

// Wave — компонент для волны врагов
type Wave struct {
	Number         int              // Номер волны
	EnemiesToSpawn int              // Сколько врагов осталось спавнить
	SpawnTimer     float64          // Таймер спавна
	SpawnInterval  float64          // Интервал между спавнами (в секундах)
	Entries        []defs.SpawnEntry // Взвешенный состав волны
}
