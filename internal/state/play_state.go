package state

import (
	"go-alien-shooter/internal/app"
	"go-alien-shooter/internal/config"
	"go-alien-shooter/internal/hud"
	"go-alien-shooter/internal/ui"
	"go-alien-shooter/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
)

// Убеждаемся, что PlayState соответствует интерфейсу State
var _ State = (*PlayState)(nil)

// PlayState основной экран: читает клавиатуру, тикает игру и рисует ее.
type PlayState struct {
	sm       *StateMachine
	game     *app.Game
	renderer *render.SceneRenderer
	hud      *ui.HUD
	lives    *ui.LivesIndicator
}

func NewPlayState(sm *StateMachine, game *app.Game, renderer *render.SceneRenderer, hud *ui.HUD) *PlayState {
	return &PlayState{
		sm:       sm,
		game:     game,
		renderer: renderer,
		hud:      hud,
		lives: ui.NewLivesIndicator(
			float32(config.ScreenWidth-config.LivesOffsetX),
			float32(config.HUDMargin+config.HUDFontSize+4),
			config.PlayerColor,
		),
	}
}

func (s *PlayState) Enter() {}

func (s *PlayState) Update(deltaTime float64) {
	in := readInput()
	if in.Pause && !s.game.IsGameOver() {
		s.sm.SetState(NewPauseState(s.sm, s))
		return
	}
	s.game.Update(in)
}

func (s *PlayState) Draw(screen *ebiten.Image) {
	world := s.game.World
	s.renderer.Draw(screen, world)
	s.hud.Draw(screen, hud.Lines(world.Session))
	if !world.IsGameOver() {
		s.lives.Draw(screen, world.Session.Lives, config.MaxLives)
	}
}

func (s *PlayState) Exit() {}
