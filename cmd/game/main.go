// cmd/game/main.go
package main

import (
	"flag"
	"go-arena-shooter/internal/config"
	"go-arena-shooter/internal/defs"
	"go-arena-shooter/internal/state"
	"log"
	"net/http"
	_ "net/http/pprof"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

const startFromGame = false // true — начинать сразу с арены, минуя меню

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	seed := flag.Int64("seed", 0, "зерно генерации арены и волн (0 — от текущего времени)")
	flag.Parse()
	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	go func() {
		log.Println(http.ListenAndServe("localhost:6060", nil))
	}()

	if err := defs.LoadAll("assets/data/"); err != nil {
		log.Fatalf("Не удалось загрузить игровые определения: %v", err)
	}

	log.Printf("Зерно забега: %d", *seed)
	sm := state.NewStateMachine()
	if startFromGame {
		sm.SetState(state.NewGameState(sm, *seed))
	} else {
		sm.SetState(state.NewMenuState(sm, *seed))
	}
	app := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Arena Shooter")
	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}
