// internal/state/game_state.go
package state

import (
	"fmt"
	"image/color"
	"time"

	game "go-arena-shooter/internal/app"
	"go-arena-shooter/internal/component"
	"go-arena-shooter/internal/config"
	"go-arena-shooter/internal/ui"
	"go-arena-shooter/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var _ State = (*GameState)(nil)

// GameState — основной игровой экран: арена, ввод и HUD.
type GameState struct {
	sm       *StateMachine
	game     *game.Game
	renderer *render.ArenaRenderer

	indicator  *ui.StateIndicator
	statsPanel *ui.StatsPanel
	healthBar  *ui.PlayerHealthIndicator
	levelBar   *ui.PlayerLevelIndicator
	waveLabel  *ui.WaveIndicator
}

func NewGameState(sm *StateMachine, seed int64) *GameState {
	gameLogic := game.NewGame(seed)

	arenaColors := render.ArenaColors{
		Background:  config.BackgroundColor,
		Floor:       config.ArenaFloorColor,
		GridLine:    config.ArenaGridColor,
		Border:      config.ArenaBorderColor,
		StrokeWidth: 2.5,
	}
	renderer := render.NewArenaRenderer(arenaColors, config.CollisionCell)

	// Кружок фазы стоит слева от номера волны в верхней середине экрана.
	indicator := ui.NewStateIndicator(
		float32(config.ScreenWidth)/2-45,
		float32(config.WaveIndicatorY)-4,
		float32(config.IndicatorRadius),
	)

	return &GameState{
		sm:         sm,
		game:       gameLogic,
		renderer:   renderer,
		indicator:  indicator,
		statsPanel: ui.NewStatsPanel(gameLogic.FontFace),
		healthBar:  ui.NewPlayerHealthIndicator(float32(config.HealthBarOffsetX), float32(config.HealthBarOffsetY)),
		levelBar:   ui.NewPlayerLevelIndicator(float32(config.HealthBarOffsetX), float32(config.LevelIndicatorY)),
		waveLabel:  ui.NewWaveIndicator(float32(config.ScreenWidth)/2, float32(config.WaveIndicatorY)),
	}
}

// Game возвращает игровую логику экрана. Нужен обёрткам паузы и конца игры.
func (g *GameState) Game() *game.Game {
	return g.game
}

func (g *GameState) Enter() {}

func (g *GameState) Update(deltaTime float64) {
	g.statsPanel.Update()

	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.statsPanel.Toggle()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyF9) {
		g.game.HandlePauseClick()
		g.sm.SetState(NewPauseState(g.sm, g))
		return
	}

	g.readMoveInput()
	g.readFireInput()
	g.readWeaponInput()

	// Пробел пропускает остаток передышки.
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.game.HandleStateClick()
		g.indicator.HandleClick()
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		g.handleUIClick(float32(x), float32(y))
	}

	g.game.Update(deltaTime)

	if g.game.ECS.GameState.Phase == component.GameOverPhase {
		g.sm.SetState(NewGameOverState(g.sm, g))
		return
	}
}

// readMoveInput собирает зажатые WASD в оси движения.
func (g *GameState) readMoveInput() {
	var ax, ay float64
	if ebiten.IsKeyPressed(ebiten.KeyW) {
		ay--
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) {
		ay++
	}
	if ebiten.IsKeyPressed(ebiten.KeyA) {
		ax--
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) {
		ax++
	}
	g.game.SetMoveInput(ax, ay)
}

// readFireInput держит стрельбу, пока зажата стрелка. Темп ограничивает
// кулдаун оружия, поэтому вызывать можно каждый кадр.
func (g *GameState) readFireInput() {
	switch {
	case ebiten.IsKeyPressed(ebiten.KeyArrowUp):
		g.game.HandleFire(component.DirUp)
	case ebiten.IsKeyPressed(ebiten.KeyArrowDown):
		g.game.HandleFire(component.DirDown)
	case ebiten.IsKeyPressed(ebiten.KeyArrowLeft):
		g.game.HandleFire(component.DirLeft)
	case ebiten.IsKeyPressed(ebiten.KeyArrowRight):
		g.game.HandleFire(component.DirRight)
	}
}

func (g *GameState) readWeaponInput() {
	if inpututil.IsKeyJustPressed(ebiten.Key1) {
		g.game.HandleWeaponSelect("WEAPON_BLASTER")
	}
	if inpututil.IsKeyJustPressed(ebiten.Key2) {
		g.game.HandleWeaponSelect("WEAPON_LANCE")
	}
	if inpututil.IsKeyJustPressed(ebiten.Key3) {
		g.game.HandleWeaponSelect("WEAPON_ROCKET")
	}
}

// handleUIClick разводит клик по кнопкам HUD с защитой от дребезга.
func (g *GameState) handleUIClick(mx, my float32) {
	debounce := time.Duration(config.ClickDebounceTime) * time.Millisecond
	switch {
	case g.game.SpeedButton.Contains(mx, my):
		if time.Since(g.game.SpeedButton.LastToggleTime) >= debounce {
			g.game.HandleSpeedClick()
		}
	case g.game.PauseButton.Contains(mx, my):
		if time.Since(g.game.PauseButton.LastToggleTime) >= debounce {
			g.game.HandlePauseClick()
			g.sm.SetState(NewPauseState(g.sm, g))
		}
	case g.indicator.Contains(mx, my):
		if time.Since(g.indicator.LastClickTime) >= debounce {
			g.game.HandleStateClick()
			g.indicator.HandleClick()
		}
	}
}

// displayWave возвращает номер волны для HUD: во время передышки — номер
// предстоящей волны, дальше — номер текущей.
func (g *GameState) displayWave() int {
	if g.game.ECS.GameState.Phase == component.IntermissionPhase {
		return g.game.Wave
	}
	return g.game.Wave - 1
}

func (g *GameState) snapshot() ui.CombatSnapshot {
	ecs := g.game.ECS
	snap := ui.CombatSnapshot{
		Wave:          g.displayWave(),
		Phase:         phaseLabel(ecs.GameState.Phase),
		ActiveEnemies: len(ecs.Enemies),
		Tick:          g.game.CurrentTick(),
		GateSize:      g.game.HitResolver.GateLen(),
		PoolStats:     g.game.Pool.Stats(),
	}
	if ps, ok := ecs.PlayerState[g.game.GetPlayerID()]; ok {
		snap.Score = ps.Score
		snap.Kills = ps.Kills
		snap.Level = ps.Level
	}
	return snap
}

func phaseLabel(p component.GamePhase) string {
	switch p {
	case component.IntermissionPhase:
		return "intermission"
	case component.CombatPhase:
		return "combat"
	default:
		return "game over"
	}
}

func (g *GameState) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.game.RenderSystem, g.game.GetGameTime())

	ecs := g.game.ECS
	var stateColor color.RGBA
	switch ecs.GameState.Phase {
	case component.IntermissionPhase:
		stateColor = config.IntermissionColor
	case component.CombatPhase:
		stateColor = config.CombatColor
	default:
		stateColor = config.GameOverColor
	}
	g.indicator.Draw(screen, stateColor)
	g.waveLabel.Draw(screen, g.displayWave(), g.game.FontFace)

	if h, ok := ecs.Healths[g.game.GetPlayerID()]; ok {
		g.healthBar.Draw(screen, h.Value, h.Max, g.game.FontFace)
	}
	if ps, ok := ecs.PlayerState[g.game.GetPlayerID()]; ok {
		g.levelBar.Draw(screen, ps.Level, ps.CurrentXP, ps.XPToNextLevel)
	}

	g.game.SpeedButton.Draw(screen)
	g.game.PauseButton.Draw(screen)
	g.statsPanel.Draw(screen, g.snapshot())

	if ecs.GameState.Phase == component.IntermissionPhase {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("next wave in %.1f", ecs.GameState.PhaseTimer))
	}
}

func (g *GameState) Exit() {}
