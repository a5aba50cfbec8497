// internal/config/config.go
package config

import (
	"image/color"
	"math"
)

const (
	ScreenWidth  = 1200
	ScreenHeight = 900
	MaxDeltaTime = 0.06

	ArenaMargin   = 60.0 // отступ игровой зоны от краёв окна
	CollisionCell = 64.0 // размер ячейки сетки коллизий

	BarrierCount  = 5
	BarrierRadius = 26.0
	BarrierMinGap = 140.0 // минимальная дистанция между пилонами и до игрока

	PlayerMaxHealth     = 10
	PlayerSpeed         = 260.0
	PlayerRadius        = 14.0
	InvulnerabilityTime = 1.0 // окно неуязвимости после контактного урона

	EnemyRadius = 12.0
	SpawnMargin = 24.0 // враги появляются на этом расстоянии за границей арены

	ProjectileRadius   = 5.0
	ProjectilePoolSize = 32 // предсозданных слотов на каждый вариант снаряда

	IntermissionDuration    = 5.0
	EnemiesIncrementPerWave = 4 // прирост врагов для волн после последней описанной

	XPPerKill         = 10
	ScorePerKill      = 25
	XPBaseRequirement = 100
	XPGrowthFactor    = 1.4

	DamageFlashDuration   = 0.15
	ExplosionWaveDuration = 0.4

	IndicatorOffsetX  = 30
	IndicatorRadius   = 10.0
	SpeedButtonY      = 30
	SpeedButtonSize   = 18.0
	ClickDebounceTime = 100
	HealthBarOffsetX  = 30.0
	HealthBarOffsetY  = 22.0
	WaveIndicatorY    = 26.0
	LevelIndicatorY   = 84.0 // под двумя рядами кружков здоровья
	StatsPanelHeight  = 150
)

// CalculateXPForNextLevel возвращает количество опыта, необходимое для
// перехода с указанного уровня на следующий.
func CalculateXPForNextLevel(level int) int {
	return int(float64(XPBaseRequirement) * math.Pow(XPGrowthFactor, float64(level-1)))
}

// ArenaBounds возвращает границы игровой зоны в пикселях.
func ArenaBounds() (minX, minY, maxX, maxY float64) {
	return ArenaMargin, ArenaMargin, ScreenWidth - ArenaMargin, ScreenHeight - ArenaMargin
}

var (
	BackgroundColor    = color.RGBA{20, 20, 30, 255}
	ArenaFloorColor    = color.RGBA{32, 36, 48, 255}
	ArenaGridColor     = color.RGBA{44, 50, 64, 255}
	ArenaBorderColor   = color.RGBA{70, 100, 120, 220}
	BarrierColor       = color.RGBA{150, 70, 70, 220}
	BarrierStrokeColor = color.RGBA{255, 255, 255, 255}
	PlayerColor        = color.RGBA{50, 205, 50, 255}
	TextLightColor     = color.RGBA{240, 240, 240, 255}
	TextDarkColor      = color.RGBA{20, 20, 30, 255}
	IntermissionColor  = color.RGBA{70, 130, 180, 220}
	CombatColor        = color.RGBA{220, 60, 60, 220}
	GameOverColor      = color.RGBA{160, 40, 40, 255}
	IndicatorStroke    = color.RGBA{240, 240, 240, 255}
	DamageFlashColor   = color.RGBA{255, 255, 255, 255}
	ExplosionColor     = color.RGBA{255, 140, 40, 200}
	SpeedButtonColors  = []color.Color{
		color.RGBA{70, 130, 180, 220},  // x1
		color.RGBA{220, 60, 60, 220},   // x2
		color.RGBA{194, 178, 128, 255}, // x4, песочно-жёлтый
	}
)
