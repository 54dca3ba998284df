// internal/system/player_system.go
package system

import (
	"go-alien-shooter/internal/component"
	"go-alien-shooter/internal/config"
	"go-alien-shooter/internal/entity"
	"go-alien-shooter/internal/event"
	"go-alien-shooter/internal/input"
)

// PlayerSystem обрабатывает управление кораблем и стрельбу.
type PlayerSystem struct {
	world           *entity.World
	eventDispatcher *event.Dispatcher
}

func NewPlayerSystem(world *entity.World, eventDispatcher *event.Dispatcher) *PlayerSystem {
	return &PlayerSystem{world: world, eventDispatcher: eventDispatcher}
}

// HandleInput двигает корабль и стреляет, если нажат огонь.
func (s *PlayerSystem) HandleInput(in input.Snapshot) {
	if dir := in.Direction(); dir != 0 {
		s.world.Player.Move(dir)
	}
	if in.Fire {
		s.Fire()
	}
}

// Fire выпускает снаряд из центра корабля, если кулдаун истек.
func (s *PlayerSystem) Fire() bool {
	p := s.world.Player
	if !p.CanFire() {
		return false
	}
	b := component.NewBullet(p.CenterX(), p.Top()-config.MuzzleOffset)
	s.world.AddBullet(b)
	p.Cooldown = config.ShootCooldown
	s.eventDispatcher.Dispatch(event.Event{Type: event.BulletFired, Data: b})
	return true
}

// Update тикает кулдаун оружия.
func (s *PlayerSystem) Update() {
	s.world.Player.Update()
}
