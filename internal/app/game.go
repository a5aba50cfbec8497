// internal/app/game.go
package app

import (
	"go-arena-shooter/internal/component"
	"go-arena-shooter/internal/config"
	"go-arena-shooter/internal/entity"
	"go-arena-shooter/internal/event"
	"go-arena-shooter/internal/system"
	"go-arena-shooter/internal/types"
	"go-arena-shooter/internal/ui"
	"go-arena-shooter/internal/utils"
	"go-arena-shooter/pkg/arena"
	"go-arena-shooter/pkg/grid"
	"log"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// Game holds the main game state and logic.
type Game struct {
	Wave                int // номер следующей волны
	ECS                 *entity.ECS
	Pool                *entity.ProjectilePool
	Grid                *grid.Grid
	HitResolver         *system.HitResolver
	MovementSystem      *system.MovementSystem
	RenderSystem        *system.RenderSystem
	WaveSystem          *system.WaveSystem
	WeaponSystem        *system.WeaponSystem
	EnemySystem         *system.EnemySystem
	CollisionSystem     *system.CollisionSystem
	ProjectileSystem    *system.ProjectileSystem
	ContactDamageSystem *system.ContactDamageSystem
	StateSystem         *system.StateSystem
	StatusEffectSystem  *system.StatusEffectSystem
	VisualEffectSystem  *system.VisualEffectSystem
	PlayerSystem        *system.PlayerSystem
	EventDispatcher     *event.Dispatcher
	FontFace            font.Face
	Rng                 *utils.PRNGService
	SpeedButton         *ui.SpeedButton
	SpeedMultiplier     float64
	PauseButton         *ui.PauseButton

	// Game state
	gameTime float64
	isPaused bool
	tick     uint64
	PlayerID types.EntityID // ID сущности игрока
}

// NewGame initializes a new game instance. Seed управляет расстановкой
// пилонов и составом волн, что позволяет воспроизводить забеги.
func NewGame(seed int64) *Game {
	ecs := entity.NewECS()
	eventDispatcher := event.NewDispatcher()
	g := &Game{
		Wave:            1,
		ECS:             ecs,
		EventDispatcher: eventDispatcher,
		FontFace:        basicfont.Face7x13,
		Rng:             utils.NewPRNGService(seed),
		gameTime:        0.0,
	}
	g.Pool = entity.NewProjectilePool(ecs, config.ProjectilePoolSize)
	g.Grid = grid.NewGrid(config.ScreenWidth, config.ScreenHeight, config.CollisionCell)
	g.HitResolver = system.NewHitResolver(ecs, eventDispatcher, g.Pool, g.Grid)
	g.MovementSystem = system.NewMovementSystem(ecs, g)
	g.RenderSystem = system.NewRenderSystem(ecs)
	g.WaveSystem = system.NewWaveSystem(ecs, eventDispatcher, g.Rng)
	g.WeaponSystem = system.NewWeaponSystem(ecs, g.Pool, eventDispatcher)
	g.EnemySystem = system.NewEnemySystem(ecs, g)
	g.CollisionSystem = system.NewCollisionSystem(ecs, g.Grid, g.HitResolver)
	g.ProjectileSystem = system.NewProjectileSystem(ecs, g.Pool, g.HitResolver)
	g.ContactDamageSystem = system.NewContactDamageSystem(ecs, eventDispatcher, g)
	g.StateSystem = system.NewStateSystem(ecs, g, eventDispatcher)
	g.StatusEffectSystem = system.NewStatusEffectSystem(ecs)
	g.VisualEffectSystem = system.NewVisualEffectSystem(ecs)
	g.PlayerSystem = system.NewPlayerSystem(ecs)
	g.initUI()

	listener := &GameEventListener{game: g}
	eventDispatcher.Subscribe(event.PlayerDied, listener)

	eventDispatcher.Subscribe(event.EnemyKilled, g.PlayerSystem)

	g.createPlayerEntity()
	g.generateBarriers()

	// Первая волна стартует после стандартной передышки, чтобы игрок
	// успел осмотреться.
	g.ECS.GameState.PhaseTimer = config.IntermissionDuration

	return g
}

// GameEventListener обрабатывает события, важные для основного игрового цикла.
type GameEventListener struct {
	game *Game
}

// OnEvent реализует интерфейс event.Listener.
func (l *GameEventListener) OnEvent(e event.Event) {
	switch e.Type {
	case event.PlayerDied:
		if ps, ok := l.game.ECS.PlayerState[l.game.PlayerID]; ok {
			log.Printf("Забег окончен. Счёт: %d, убийств: %d, волна: %d", ps.Score, ps.Kills, l.game.Wave-1)
		}
	}
}

// Update progresses the game state by one frame.
func (g *Game) Update(deltaTime float64) {
	dt := deltaTime * g.SpeedMultiplier
	g.gameTime += dt
	g.ECS.GameTime = g.gameTime

	g.VisualEffectSystem.Update(dt)

	phase := g.ECS.GameState.Phase
	if phase != component.GameOverPhase {
		g.StatusEffectSystem.Update(dt)
		g.WeaponSystem.Update(dt)
		g.EnemySystem.Update(dt)
		g.MovementSystem.Update(dt)
	}
	if phase == component.CombatPhase {
		g.tick++
		// Сетка строится до полёта снарядов: детонации об пилоны ищут
		// жертв в расстановке текущего кадра.
		g.CollisionSystem.RebuildGrid()
		g.ProjectileSystem.Update(dt, g.tick)
		g.CollisionSystem.Scan(g.tick)
		g.ContactDamageSystem.Update(dt)
		g.WaveSystem.Update(dt, g.ECS.Wave)
	}
	g.StateSystem.Update(dt)
}

// StartNextWave begins the enemy wave.
func (g *Game) StartNextWave() {
	g.ECS.Wave = g.WaveSystem.StartWave(g.Wave)
	g.WaveSystem.ResetActiveEnemies()
	g.Wave++
}

// DrainProjectiles принудительно возвращает все летящие снаряды в пул.
func (g *Game) DrainProjectiles() {
	g.Pool.DrainActive()
}

// GetPlayerID возвращает ID сущности игрока.
func (g *Game) GetPlayerID() types.EntityID {
	return g.PlayerID
}

// HandleFire производит выстрел в указанном направлении. Стрельба
// разрешена только во время боя.
func (g *Game) HandleFire(dir component.Direction) {
	if g.ECS.GameState.Phase != component.CombatPhase {
		return
	}
	g.WeaponSystem.TryFire(g.PlayerID, dir)
}

// HandleWeaponSelect переключает активное оружие игрока.
func (g *Game) HandleWeaponSelect(weaponID string) {
	g.WeaponSystem.SwitchWeapon(g.PlayerID, weaponID)
}

// HandleStateClick досрочно завершает передышку: таймер обнуляется, а сам
// переход фазы делает StateSystem на ближайшем Update.
func (g *Game) HandleStateClick() {
	gs := g.ECS.GameState
	if gs == nil || gs.Phase != component.IntermissionPhase {
		return
	}
	gs.PhaseTimer = 0
}

// SetMoveInput задаёт скорость игрока по осям ввода (-1, 0, 1).
func (g *Game) SetMoveInput(ax, ay float64) {
	vel, ok := g.ECS.Velocities[g.PlayerID]
	if !ok {
		return
	}
	if g.ECS.GameState.Phase == component.GameOverPhase {
		vel.DX, vel.DY = 0, 0
		return
	}
	length := math.Hypot(ax, ay)
	if length < 1e-9 {
		vel.DX, vel.DY = 0, 0
		return
	}
	// Диагональное движение не быстрее осевого.
	vel.DX = ax / length * config.PlayerSpeed
	vel.DY = ay / length * config.PlayerSpeed
}

// Reset начинает новую попытку, сохраняя расстановку пилонов.
func (g *Game) Reset() {
	g.Pool.DrainActive()
	g.HitResolver.Reset()
	g.ClearEnemies()
	g.ClearVisualEffects()
	g.WaveSystem.ResetActiveEnemies()
	g.ECS.Wave = nil
	g.Wave = 1
	g.tick = 0
	g.gameTime = 0
	g.ECS.GameTime = 0

	if pos, ok := g.ECS.Positions[g.PlayerID]; ok {
		pos.X, pos.Y = arena.PlayerSpawn()
	}
	if vel, ok := g.ECS.Velocities[g.PlayerID]; ok {
		vel.DX, vel.DY = 0, 0
	}
	if health, ok := g.ECS.Healths[g.PlayerID]; ok {
		health.Value = health.Max
	}
	if ps, ok := g.ECS.PlayerState[g.PlayerID]; ok {
		ps.Level = 1
		ps.CurrentXP = 0
		ps.XPToNextLevel = config.CalculateXPForNextLevel(1)
		ps.Score = 0
		ps.Kills = 0
	}
	if mount, ok := g.ECS.WeaponMounts[g.PlayerID]; ok {
		mount.WeaponID = "WEAPON_BLASTER"
		mount.FireCooldown = 0
	}
	delete(g.ECS.Invulnerabilities, g.PlayerID)
	delete(g.ECS.DamageFlashes, g.PlayerID)

	g.ECS.GameState.Phase = component.IntermissionPhase
	g.ECS.GameState.PhaseTimer = config.IntermissionDuration
}

// --- Public Accessors & Mutators ---

func (g *Game) ClearEnemies() {
	for id := range g.ECS.Enemies {
		delete(g.ECS.Positions, id)
		delete(g.ECS.Velocities, id)
		delete(g.ECS.Healths, id)
		delete(g.ECS.Colliders, id)
		delete(g.ECS.Renderables, id)
		delete(g.ECS.DamageFlashes, id)
		delete(g.ECS.Enemies, id)
	}
}

func (g *Game) ClearVisualEffects() {
	for id := range g.ECS.ExplosionWaves {
		delete(g.ECS.ExplosionWaves, id)
		delete(g.ECS.Positions, id)
	}
}

func (g *Game) HandleSpeedClick() {
	g.SpeedButton.ToggleState()
	g.SpeedMultiplier = math.Pow(2, float64(g.SpeedButton.CurrentState))
}

func (g *Game) HandlePauseClick() {
	g.isPaused = !g.isPaused
	g.PauseButton.SetPaused(g.isPaused)
}

// IsPaused возвращает текущее состояние паузы.
func (g *Game) IsPaused() bool {
	return g.isPaused
}

func (g *Game) GetGameTime() float64 {
	return g.gameTime
}

// CurrentTick возвращает номер текущего боевого кадра.
func (g *Game) CurrentTick() uint64 {
	return g.tick
}

// --- Private Helper Functions ---

func (g *Game) initUI() {
	// Пауза прижата к правому краю, кнопка скорости левее неё.
	pauseX := float32(config.ScreenWidth - config.IndicatorOffsetX)
	speedX := pauseX - 3*float32(config.SpeedButtonSize)

	g.PauseButton = ui.NewPauseButton(
		pauseX,
		float32(config.IndicatorOffsetX),
		float32(config.IndicatorRadius),
	)
	g.SpeedButton = ui.NewSpeedButton(
		speedX,
		float32(config.SpeedButtonY),
		float32(config.SpeedButtonSize),
	)
	g.SpeedMultiplier = 1.0
}

func (g *Game) createPlayerEntity() {
	g.PlayerID = g.ECS.NewEntity()
	spawnX, spawnY := arena.PlayerSpawn()
	g.ECS.Positions[g.PlayerID] = &component.Position{X: spawnX, Y: spawnY}
	g.ECS.Velocities[g.PlayerID] = &component.Velocity{}
	g.ECS.Healths[g.PlayerID] = &component.Health{
		Value: config.PlayerMaxHealth,
		Max:   config.PlayerMaxHealth,
	}
	g.ECS.Colliders[g.PlayerID] = &component.Collider{Radius: config.PlayerRadius}
	g.ECS.Renderables[g.PlayerID] = &component.Renderable{
		Color:     config.PlayerColor,
		Radius:    float32(config.PlayerRadius),
		HasStroke: true,
	}
	g.ECS.WeaponMounts[g.PlayerID] = &component.WeaponMount{WeaponID: "WEAPON_BLASTER"}
	initialLevel := 1
	g.ECS.PlayerState[g.PlayerID] = &component.PlayerStateComponent{
		Level:         initialLevel,
		CurrentXP:     0,
		XPToNextLevel: config.CalculateXPForNextLevel(initialLevel),
	}
}
