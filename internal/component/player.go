// internal/component/player.go
package component

import "go-alien-shooter/internal/config"

// Player корабль игрока. Двигается только по горизонтали.
type Player struct {
	Rect
	Speed    float64 // Единиц за тик
	Cooldown int     // Тиков до следующего выстрела
}

// NewPlayer создает корабль в стартовой позиции внизу экрана.
func NewPlayer() *Player {
	return &Player{
		Rect: Rect{
			X: float64(config.ScreenWidth/2 - config.PlayerWidth/2),
			Y: float64(config.ScreenHeight - config.PlayerBottomOffset),
			W: config.PlayerWidth,
			H: config.PlayerHeight,
		},
		Speed: config.PlayerSpeed,
	}
}

// Move сдвигает корабль на direction шагов и прижимает его к границам экрана.
func (p *Player) Move(direction int) {
	if direction > 1 {
		direction = 1
	} else if direction < -1 {
		direction = -1
	}
	p.X += float64(direction) * p.Speed * config.TimeStep
	maxX := float64(config.ScreenWidth) - p.W
	if p.X < 0 {
		p.X = 0
	} else if p.X > maxX {
		p.X = maxX
	}
}

// Update уменьшает кулдаун выстрела.
func (p *Player) Update() {
	if p.Cooldown > 0 {
		p.Cooldown--
	}
}

// CanFire сообщает, готово ли оружие.
func (p *Player) CanFire() bool {
	return p.Cooldown <= 0
}
