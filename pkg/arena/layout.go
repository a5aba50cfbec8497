// pkg/arena/layout.go
package arena

import (
	"math"

	"go-arena-shooter/internal/config"
	"go-arena-shooter/internal/utils"
)

// Pylon — статичная колонна-препятствие на арене.
type Pylon struct {
	X, Y   float64
	Radius float64
}

// PlayerSpawn возвращает точку появления игрока — центр экрана.
func PlayerSpawn() (float64, float64) {
	return float64(config.ScreenWidth) / 2, float64(config.ScreenHeight) / 2
}

// PylonLayout расставляет пилоны методом отбраковки: кандидат отклоняется,
// если он ближе config.BarrierMinGap к точке появления игрока или к уже
// поставленному пилону. Для одного сида расстановка всегда одинаковая,
// поэтому игра и просмотрщик показывают один и тот же забег.
func PylonLayout(rng *utils.PRNGService) []Pylon {
	minX, minY, maxX, maxY := config.ArenaBounds()
	// Отступ от стен, чтобы между пилоном и стеной оставался проход.
	margin := config.BarrierRadius * 2
	spawnX, spawnY := PlayerSpawn()

	tooClose := func(x, y float64, placed []Pylon) bool {
		if math.Hypot(x-spawnX, y-spawnY) < config.BarrierMinGap {
			return true
		}
		for _, p := range placed {
			if math.Hypot(x-p.X, y-p.Y) < config.BarrierMinGap {
				return true
			}
		}
		return false
	}

	placed := make([]Pylon, 0, config.BarrierCount)
	for attempts := 0; len(placed) < config.BarrierCount && attempts < 500; attempts++ {
		x := minX + margin + rng.Float64()*(maxX-minX-2*margin)
		y := minY + margin + rng.Float64()*(maxY-minY-2*margin)
		if tooClose(x, y, placed) {
			continue
		}
		placed = append(placed, Pylon{X: x, Y: y, Radius: config.BarrierRadius})
	}
	return placed
}
