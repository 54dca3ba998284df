package system

import (
	"go-alien-shooter/internal/component"
	"go-alien-shooter/internal/entity"
	"go-alien-shooter/internal/event"
	"go-alien-shooter/internal/interfaces"
)

// StateSystem следит за переходами Playing <-> GameOver.
type StateSystem struct {
	world           *entity.World
	gameContext     interfaces.GameContext
	eventDispatcher *event.Dispatcher
	announced       bool // GameOver уже разослан для этой партии
}

func NewStateSystem(world *entity.World, gameContext interfaces.GameContext, eventDispatcher *event.Dispatcher) *StateSystem {
	return &StateSystem{
		world:           world,
		gameContext:     gameContext,
		eventDispatcher: eventDispatcher,
	}
}

// Update проверка жизней в конце кадра.
func (s *StateSystem) Update() bool {
	if s.world.Session.Lives <= 0 {
		s.world.Session.Phase = component.GameOver
	}
	return s.Sync()
}

// Sync рассылает GameOver один раз при входе в эту фазу.
// Возвращает true, если партия закончена.
func (s *StateSystem) Sync() bool {
	if !s.world.IsGameOver() {
		return false
	}
	if !s.announced {
		s.announced = true
		s.eventDispatcher.Dispatch(event.Event{Type: event.GameOver, Data: s.world.Session.Score})
	}
	return true
}

// Restart начинает новую партию с начальными значениями.
func (s *StateSystem) Restart() {
	s.world.Reset()
	s.gameContext.StartWave()
	s.announced = false
	s.eventDispatcher.Dispatch(event.Event{Type: event.GameRestarted})
}

func (s *StateSystem) Current() component.Phase {
	return s.world.Session.Phase
}
