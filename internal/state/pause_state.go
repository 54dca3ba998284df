// internal/state/pause_state.go
package state

import (
	"go-alien-shooter/internal/config"
	"go-alien-shooter/internal/hud"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// PauseState замораживает игру и рисует поверх нее затемнение.
type PauseState struct {
	stateMachine  *StateMachine
	previousState *PlayState
}

func NewPauseState(sm *StateMachine, prevState *PlayState) *PauseState {
	return &PauseState{
		stateMachine:  sm,
		previousState: prevState,
	}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update(deltaTime float64) {
	if pausePressed() {
		s.stateMachine.SetState(s.previousState)
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	s.previousState.Draw(screen)

	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, config.PauseOverlay, false)
	s.previousState.hud.Draw(screen, []hud.Line{
		{Text: "PAUSED", X: config.ScreenWidth / 2, Y: config.ScreenHeight / 2, Anchor: hud.Center, Size: hud.Title},
		{Text: "Press P to resume", X: config.ScreenWidth / 2, Y: config.ScreenHeight/2 + 50, Anchor: hud.Center, Size: hud.Small},
	})
}

func (s *PauseState) Exit() {}
