// internal/state/game_state.go
package state

import (
	"log"

	game "go-space-shooter/internal/app"
	"go-space-shooter/internal/assets"
	"go-space-shooter/internal/component"
	"go-space-shooter/internal/config"
	"go-space-shooter/internal/defs"
	"go-space-shooter/internal/event"
	"go-space-shooter/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Session — параметры, с которыми запускается каждая партия.
type Session struct {
	Library *defs.Library
	Seed    int64
	Sounds  *assets.SoundBank // может быть nil — тогда игра без звука
}

// GameState — состояние игры
type GameState struct {
	sm              *StateMachine
	session         Session
	game            *game.Game
	score           *ui.ScoreIndicator
	wave            *ui.WaveIndicator
	health          *ui.PlayerHealthIndicator
	gameOverElapsed float64
}

func NewGameState(sm *StateMachine, session Session) (*GameState, error) {
	gameLogic, err := game.NewGame(session.Library, session.Seed)
	if err != nil {
		return nil, err
	}
	if session.Sounds != nil {
		gameLogic.EventDispatcher.Subscribe(session.Sounds,
			event.EnemyFired, event.PlayerFired, event.EnemyDestroyed, event.PlayerDestroyed)
	}

	return &GameState{
		sm:      sm,
		session: session,
		game:    gameLogic,
		score:   ui.NewScoreIndicator(config.ScoreIndicatorX, config.ScoreIndicatorY, ui.DefaultFace),
		wave:    ui.NewWaveIndicator(config.WaveIndicatorX, config.WaveIndicatorY, ui.DefaultFace),
		health:  ui.NewPlayerHealthIndicator(config.HealthBarX, config.HealthBarY),
	}, nil
}

func (g *GameState) Enter() {
	// Ничего не делаем при входе
}

func (g *GameState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.sm.SetState(NewPauseState(g.sm, g))
		return
	}

	g.game.Update(deltaTime, readInput())
	g.score.Update(deltaTime, g.game.ECS.Session.Score)

	if g.game.ECS.Session.IsOver() {
		g.gameOverElapsed += deltaTime
		if g.gameOverElapsed >= config.GameOverRestartWait && inpututil.IsKeyJustPressed(ebiten.KeySpace) {
			g.restart()
		}
	}
}

func (g *GameState) restart() {
	next, err := NewGameState(g.sm, g.session)
	if err != nil {
		log.Printf("Failed to restart game: %v", err)
		return
	}
	g.sm.SetState(next)
}

// readInput переводит клавиатуру в управление кораблем.
func readInput() component.PlayerInput {
	return component.PlayerInput{
		Left:  ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA),
		Right: ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD),
		Fire:  ebiten.IsKeyPressed(ebiten.KeySpace),
	}
}

func (g *GameState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	g.game.RenderSystem.Draw(screen)

	g.score.Draw(screen)
	g.wave.Draw(screen, g.game.ECS.Session.Wave)
	g.health.Draw(screen, g.game.PlayerHealthFraction())

	if g.game.ECS.Session.IsOver() {
		drawBanner(screen, "GAME OVER", "SPACE TO RESTART")
	}
}

func (g *GameState) Exit() {
	// Ничего не делаем при выходе
}

// Game возвращает игровую логику, чтобы пауза могла ее остановить.
func (g *GameState) Game() *game.Game {
	return g.game
}
