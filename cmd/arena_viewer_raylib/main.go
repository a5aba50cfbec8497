// cmd/arena_viewer_raylib/main.go
package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"math"
	"time"

	"go-arena-shooter/internal/config"
	"go-arena-shooter/internal/defs"
	"go-arena-shooter/internal/ui"
	"go-arena-shooter/internal/utils"
	"go-arena-shooter/pkg/arena"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Просмотрщик расстановки арены: показывает пилоны для конкретного зерна,
// зону появления врагов и состав волн без запуска самой игры.

// toRL переводит цвет из палитры игры в формат raylib.
func toRL(c color.RGBA) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}

// waveForNumber возвращает состав волны, продлевая последнюю описанную:
// состав повторяется, количество врагов растёт с каждым номером.
func waveForNumber(n int) (defs.WaveDefinition, bool) {
	if def, ok := defs.WaveLibrary[n]; ok {
		return def, true
	}
	last := defs.LastDefinedWave
	if last == 0 {
		return defs.WaveDefinition{}, false
	}
	def := defs.WaveLibrary[last]
	def.Wave = n
	def.Count += (n - last) * config.EnemiesIncrementPerWave
	return def, true
}

func drawArena(pylons []arena.Pylon, showGrid bool) {
	minX, minY, maxX, maxY := config.ArenaBounds()
	w := float32(maxX - minX)
	h := float32(maxY - minY)

	rl.DrawRectangle(int32(minX), int32(minY), int32(w), int32(h), toRL(config.ArenaFloorColor))

	if showGrid {
		// Сетка привязана к началу экрана, как в широкой фазе коллизий.
		cell := config.CollisionCell
		gridColor := toRL(config.ArenaGridColor)
		for x := math.Ceil(minX/cell) * cell; x < maxX; x += cell {
			rl.DrawLineEx(rl.NewVector2(float32(x), float32(minY)), rl.NewVector2(float32(x), float32(maxY)), 1, gridColor)
		}
		for y := math.Ceil(minY/cell) * cell; y < maxY; y += cell {
			rl.DrawLineEx(rl.NewVector2(float32(minX), float32(y)), rl.NewVector2(float32(maxX), float32(y)), 1, gridColor)
		}
	}

	// Полоса за стеной, где появляются враги.
	band := float32(config.SpawnMargin)
	spawnRect := rl.NewRectangle(float32(minX)-band, float32(minY)-band, w+2*band, h+2*band)
	rl.DrawRectangleLinesEx(spawnRect, 1, rl.Fade(rl.SkyBlue, 0.5))

	rl.DrawRectangleLinesEx(rl.NewRectangle(float32(minX), float32(minY), w, h), 2.5, toRL(config.ArenaBorderColor))

	// Пилоны и их зоны минимального зазора.
	for _, p := range pylons {
		rl.DrawCircleLines(int32(p.X), int32(p.Y), float32(config.BarrierMinGap), rl.Fade(rl.Red, 0.25))
		rl.DrawCircleV(rl.NewVector2(float32(p.X), float32(p.Y)), float32(p.Radius), toRL(config.BarrierColor))
		rl.DrawCircleLines(int32(p.X), int32(p.Y), float32(p.Radius), toRL(config.BarrierStrokeColor))
	}

	// Точка появления игрока.
	px, py := arena.PlayerSpawn()
	rl.DrawCircleV(rl.NewVector2(float32(px), float32(py)), float32(config.PlayerRadius), toRL(config.PlayerColor))
}

func drawWavePanel(waveNumber int, font rl.Font) {
	def, ok := waveForNumber(waveNumber)
	if !ok {
		return
	}

	x := float32(10)
	y := float32(70)
	lineH := float32(22)

	total := 0
	for _, e := range def.Entries {
		total += e.Weight
	}

	panelW := float32(460)
	panelH := lineH*float32(len(def.Entries)+1) + 16
	rl.DrawRectangleRec(rl.NewRectangle(x, y, panelW, panelH), rl.NewColor(25, 35, 45, 230))
	rl.DrawRectangleLinesEx(rl.NewRectangle(x, y, panelW, panelH), 2, toRL(config.ArenaBorderColor))

	header := fmt.Sprintf("Wave %d: %d enemies, every %.2fs", def.Wave, def.Count, def.SpawnInterval)
	rl.DrawTextEx(font, header, rl.NewVector2(x+8, y+8), 18, 1, rl.RayWhite)

	rowY := y + 8 + lineH
	for _, e := range def.Entries {
		name := e.EnemyID
		stats := ""
		col := rl.RayWhite
		if enemy, known := defs.EnemyLibrary[e.EnemyID]; known {
			name = enemy.Name
			stats = fmt.Sprintf("hp %d  spd %.0f  dmg %d  xp %d", enemy.Health, enemy.Speed, enemy.ContactDamage, enemy.XPReward)
			col = toRL(enemy.Visuals.Color)
		}
		share := 0.0
		if total > 0 {
			share = float64(e.Weight) / float64(total) * 100
		}
		row := fmt.Sprintf("%-10s %5.1f%%  %s", name, share, stats)
		rl.DrawTextEx(font, row, rl.NewVector2(x+8, rowY), 18, 1, col)
		rowY += lineH
	}
}

func main() {
	seedFlag := flag.Int64("seed", 0, "зерно расстановки пилонов (0 — от текущего времени)")
	dataDir := flag.String("data", "assets/data/", "каталог с определениями")
	flag.Parse()

	if err := defs.LoadAll(*dataDir); err != nil {
		log.Fatalf("Не удалось загрузить определения: %v", err)
	}

	seed := *seedFlag
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	pylons := arena.PylonLayout(utils.NewPRNGService(seed))

	rl.InitWindow(config.ScreenWidth, config.ScreenHeight, "Arena Viewer | Q/E - wave, R - reroll, G - grid")
	rl.SetTargetFPS(60)

	font := rl.GetFontDefault()
	gridToggle := ui.NewGridIndicator(float32(config.ScreenWidth-30), 30, 24, font)

	buttonY := float32(config.ScreenHeight - 44)
	prevButton := ui.NewButton(rl.NewRectangle(float32(config.ScreenWidth)/2-130, buttonY, 40, 28), "<", font)
	nextButton := ui.NewButton(rl.NewRectangle(float32(config.ScreenWidth)/2+90, buttonY, 40, 28), ">", font)
	rerollButton := ui.NewButton(rl.NewRectangle(float32(config.ScreenWidth)/2-70, buttonY, 140, 28), "Reroll", font)

	waveNumber := 1
	showGrid := true

	for !rl.WindowShouldClose() {
		mouse := rl.GetMousePosition()

		if rl.IsKeyPressed(rl.KeyQ) && waveNumber > 1 {
			waveNumber--
		}
		if rl.IsKeyPressed(rl.KeyE) {
			waveNumber++
		}
		if rl.IsKeyPressed(rl.KeyG) {
			showGrid = !showGrid
		}
		if prevButton.IsClicked(mouse) && waveNumber > 1 {
			waveNumber--
		}
		if nextButton.IsClicked(mouse) {
			waveNumber++
		}
		if rl.IsKeyPressed(rl.KeyR) || rerollButton.IsClicked(mouse) {
			seed = time.Now().UnixNano()
			pylons = arena.PylonLayout(utils.NewPRNGService(seed))
		}

		rl.BeginDrawing()
		rl.ClearBackground(toRL(config.BackgroundColor))

		drawArena(pylons, showGrid)
		drawWavePanel(waveNumber, font)

		prevButton.Draw(mouse)
		nextButton.Draw(mouse)
		rerollButton.Draw(mouse)
		gridToggle.Draw(showGrid)

		rl.DrawText(fmt.Sprintf("seed %d", seed), 10, config.ScreenHeight-30, 20, rl.Gray)
		rl.DrawFPS(10, 10)

		rl.EndDrawing()
	}

	rl.CloseWindow()
}
