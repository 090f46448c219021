// cmd/game/main.go
package main

import (
	"flag"
	"log"
	"time"

	"go-space-shooter/internal/assets"
	"go-space-shooter/internal/config"
	"go-space-shooter/internal/defs"
	"go-space-shooter/internal/state"

	"github.com/hajimehoshi/ebiten/v2"
)

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
	defsPath := flag.String("defs", "", "path to a definitions YAML file (embedded defaults if empty)")
	seed := flag.Int64("seed", 0, "random seed, 0 means time based")
	skipMenu := flag.Bool("play", false, "start the game right away, without the title screen")
	mute := flag.Bool("mute", false, "disable sound")
	flag.Parse()

	library, err := defs.LoadDefinitions(*defsPath)
	if err != nil {
		log.Fatal(err)
	}

	session := state.Session{Library: library, Seed: *seed}
	if !*mute {
		session.Sounds = assets.NewSoundBank()
	}

	sm := state.NewStateMachine()
	if *skipMenu {
		gs, err := state.NewGameState(sm, session)
		if err != nil {
			log.Fatal(err)
		}
		sm.SetState(gs)
	} else {
		sm.SetState(state.NewMenuState(sm, session))
	}

	app := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Go Space Shooter")
	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}
