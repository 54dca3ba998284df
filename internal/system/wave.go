package system

import (
	"go-alien-shooter/internal/component"
	"go-alien-shooter/internal/config"
	"go-alien-shooter/internal/defs"
	"go-alien-shooter/internal/entity"
	"go-alien-shooter/internal/event"
)

// WaveSystem строит волны пришельцев и переводит игру на следующий уровень.
type WaveSystem struct {
	world           *entity.World
	eventDispatcher *event.Dispatcher
	layout          defs.FormationLayout
}

func NewWaveSystem(world *entity.World, eventDispatcher *event.Dispatcher, layout defs.FormationLayout) *WaveSystem {
	return &WaveSystem{
		world:           world,
		eventDispatcher: eventDispatcher,
		layout:          layout,
	}
}

// CreateAliens строит сетку пришельцев по строкам, слева направо.
func CreateAliens(layout defs.FormationLayout) []*component.Alien {
	aliens := make([]*component.Alien, 0, layout.Size())
	startX := layout.StartX(config.ScreenWidth, config.AlienWidth)
	for r := 0; r < layout.Rows; r++ {
		for c := 0; c < layout.Cols; c++ {
			x := startX + float64(c)*layout.XGap
			y := layout.StartY + float64(r)*layout.YGap
			aliens = append(aliens, component.NewAlien(x, y, r, c))
		}
	}
	return aliens
}

// StartWave заменяет арену новой волной.
func (s *WaveSystem) StartWave() {
	s.world.Aliens = CreateAliens(s.layout)
	s.world.Formation.Generation++
}

// Update проверяет, зачищена ли волна. Если да, повышает уровень
// и скорость строя, строит новую волну и дает бонусную жизнь.
func (s *WaveSystem) Update() bool {
	if s.layout.Size() == 0 || !s.world.WaveCleared() {
		return false
	}
	s.world.Session.Level++
	s.world.Formation.Speed += config.FormationSpeedIncrement
	s.StartWave()
	s.world.GrantLife()

	s.eventDispatcher.Dispatch(event.Event{
		Type: event.WaveCleared,
		Data: event.WaveClearedData{
			Level: s.world.Session.Level,
			Speed: s.world.Formation.Speed,
			Lives: s.world.Session.Lives,
		},
	})
	return true
}
