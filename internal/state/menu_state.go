// internal/state/menu_state.go
package state

import (
	"log"

	"go-space-shooter/internal/config"
	"go-space-shooter/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// MenuState — стартовый экран
type MenuState struct {
	sm      *StateMachine
	session Session
}

func NewMenuState(sm *StateMachine, session Session) *MenuState {
	return &MenuState{sm: sm, session: session}
}

func (m *MenuState) Enter() {
	// Ничего не делаем при входе
}

func (m *MenuState) Update(deltaTime float64) {
	if !inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		return
	}
	gs, err := NewGameState(m.sm, m.session)
	if err != nil {
		log.Printf("Failed to start game: %v", err)
		return
	}
	m.sm.SetState(gs)
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	drawBanner(screen, "GO SPACE SHOOTER", "SPACE TO START")
}

func (m *MenuState) Exit() {
	// Ничего не делаем при выходе
}

// drawBanner рисует заголовок и подсказку по центру экрана.
func drawBanner(screen *ebiten.Image, title, hint string) {
	drawCentered(screen, title, float64(config.ScreenHeight)/2-20)
	drawCentered(screen, hint, float64(config.ScreenHeight)/2+4)
}

func drawCentered(screen *ebiten.Image, s string, y float64) {
	width, _ := text.Measure(s, ui.DefaultFace, 0)
	op := &text.DrawOptions{}
	op.GeoM.Translate((float64(config.ScreenWidth)-width)/2, y)
	op.ColorScale.ScaleWithColor(config.TextLightColor)
	text.Draw(screen, s, ui.DefaultFace, op)
}
