// internal/system/formation.go
package system

import (
	"go-alien-shooter/internal/config"
	"go-alien-shooter/internal/entity"
	"go-alien-shooter/internal/event"
	"math"
)

// FormationSystem двигает строй пришельцев: шаг в сторону,
// а у края разворот и спуск вниз.
type FormationSystem struct {
	world           *entity.World
	eventDispatcher *event.Dispatcher
}

func NewFormationSystem(world *entity.World, eventDispatcher *event.Dispatcher) *FormationSystem {
	return &FormationSystem{world: world, eventDispatcher: eventDispatcher}
}

// Bounds возвращает левый и правый края живых пришельцев.
// ok == false, если живых нет.
func (s *FormationSystem) Bounds() (left, right float64, ok bool) {
	left, right = math.Inf(1), math.Inf(-1)
	for _, a := range s.world.Aliens {
		if !a.Alive {
			continue
		}
		ok = true
		left = math.Min(left, a.Left())
		right = math.Max(right, a.Right())
	}
	return left, right, ok
}

// Update делает один шаг строя. Возвращает true, если строй
// опустился до корабля и партия закончилась.
func (s *FormationSystem) Update() bool {
	left, right, ok := s.Bounds()
	if !ok {
		return false
	}
	f := &s.world.Formation
	step := float64(f.Direction) * f.Speed * config.FormationLookahead

	if right+step >= config.ScreenWidth-config.FormationEdgeMargin || left+step <= config.FormationEdgeMargin {
		f.Direction = -f.Direction
		return s.drop()
	}

	dx := float64(f.Direction) * f.Speed * config.TimeStep
	for _, a := range s.world.Aliens {
		if a.Alive {
			a.Translate(dx, 0)
		}
	}
	return false
}

// drop опускает живых пришельцев. Если хоть один достал до корабля,
// теряются все жизни сразу.
func (s *FormationSystem) drop() bool {
	playerTop := s.world.Player.Top()
	landed := false
	for _, a := range s.world.Aliens {
		if !a.Alive {
			continue
		}
		a.Translate(0, config.FormationDrop)
		if a.Bottom() >= playerTop {
			landed = true
		}
	}
	if landed {
		s.world.EndGame()
		s.eventDispatcher.Dispatch(event.Event{Type: event.FormationLanded})
	}
	return landed
}
