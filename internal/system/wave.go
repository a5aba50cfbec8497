// internal/system/wave.go
package system

import (
	"log"

	"go-arena-shooter/internal/component"
	"go-arena-shooter/internal/config"
	"go-arena-shooter/internal/defs"
	"go-arena-shooter/internal/entity"
	"go-arena-shooter/internal/event"
	"go-arena-shooter/internal/utils"
)

type WaveSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	rng             *utils.PRNGService
	activeEnemies   int
}

func NewWaveSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, rng *utils.PRNGService) *WaveSystem {
	ws := &WaveSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		rng:             rng,
		activeEnemies:   0,
	}
	eventDispatcher.Subscribe(event.EnemyRemovedFromGame, ws)
	return ws
}

func (s *WaveSystem) Update(deltaTime float64, wave *component.Wave) {
	if wave == nil {
		return
	}
	if wave.EnemiesToSpawn > 0 {
		wave.SpawnTimer += deltaTime
		if wave.SpawnTimer >= wave.SpawnInterval {
			s.spawnEnemy(wave)
			wave.EnemiesToSpawn--
			wave.SpawnTimer = 0
		}
	} else if wave.EnemiesToSpawn == 0 && s.activeEnemies == 0 {
		s.eventDispatcher.Dispatch(event.Event{Type: event.WaveEnded, Data: wave.Number})
	}
}

// ActiveEnemies возвращает число врагов текущей волны, ещё живых на арене.
func (s *WaveSystem) ActiveEnemies() int {
	return s.activeEnemies
}

func (s *WaveSystem) ResetActiveEnemies() {
	s.activeEnemies = 0
}

func (s *WaveSystem) spawnEnemy(wave *component.Wave) {
	enemyID := s.rng.ChooseWeighted(wave.Entries)
	def, ok := defs.EnemyLibrary[enemyID]
	if !ok {
		log.Printf("Error: Enemy definition not found for ID: %s", enemyID)
		return
	}

	x, y := s.spawnPoint()

	id := s.ecs.NewEntity()
	s.ecs.Positions[id] = &component.Position{X: x, Y: y}
	s.ecs.Velocities[id] = &component.Velocity{}
	s.ecs.Healths[id] = &component.Health{Value: def.Health, Max: def.Health}
	s.ecs.Colliders[id] = &component.Collider{Radius: config.EnemyRadius * def.Visuals.RadiusFactor}
	s.ecs.Renderables[id] = &component.Renderable{
		Color:     def.Visuals.Color,
		Radius:    float32(config.EnemyRadius * def.Visuals.RadiusFactor),
		HasStroke: def.Visuals.StrokeWidth > 0,
	}
	s.ecs.Enemies[id] = &component.Enemy{
		DefID:         enemyID,
		MoveSpeed:     def.Speed,
		Armor:         def.Armor,
		ContactDamage: def.ContactDamage,
		XPReward:      def.XPReward,
	}
	s.activeEnemies++
}

// spawnPoint выбирает точку на случайной стороне сразу за стеной арены:
// враги входят снаружи и сразу идут на игрока.
func (s *WaveSystem) spawnPoint() (float64, float64) {
	minX, minY, maxX, maxY := config.ArenaBounds()
	along := s.rng.Float64()
	switch s.rng.Intn(4) {
	case 0: // сверху
		return minX + along*(maxX-minX), minY - config.SpawnMargin
	case 1: // снизу
		return minX + along*(maxX-minX), maxY + config.SpawnMargin
	case 2: // слева
		return minX - config.SpawnMargin, minY + along*(maxY-minY)
	default: // справа
		return maxX + config.SpawnMargin, minY + along*(maxY-minY)
	}
}

func (s *WaveSystem) StartWave(waveNumber int) *component.Wave {
	waveDef, ok := defs.WaveLibrary[waveNumber]
	extra := 0
	if !ok {
		// Волны после последней описанной повторяют её состав, каждая
		// следующая приводит больше врагов.
		last := defs.LastDefinedWave
		if last == 0 {
			log.Printf("Критическая ошибка: библиотека волн пуста, волна %d не началась", waveNumber)
			return nil
		}
		waveDef = defs.WaveLibrary[last]
		extra = (waveNumber - last) * config.EnemiesIncrementPerWave
	}

	s.eventDispatcher.Dispatch(event.Event{Type: event.WaveStarted, Data: waveNumber})

	return &component.Wave{
		Number:         waveNumber,
		EnemiesToSpawn: waveDef.Count + extra,
		SpawnTimer:     0,
		SpawnInterval:  waveDef.SpawnInterval,
		Entries:        waveDef.Entries,
	}
}

func (s *WaveSystem) OnEvent(e event.Event) {
	// Счётчик не уходит в минус, если убрали врага, заведённого вне волны.
	if e.Type == event.EnemyRemovedFromGame && s.activeEnemies > 0 {
		s.activeEnemies--
	}
}
