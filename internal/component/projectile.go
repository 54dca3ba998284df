// internal/component/projectile.go
package component

import "go-alien-shooter/internal/config"

// Bullet снаряд игрока, летит строго вверх.
type Bullet struct {
	Rect
	VelocityY float64 // Отрицательная: вверх
}

// NewBullet создает снаряд, центрированный по x, с верхним краем в y.
func NewBullet(x, y float64) *Bullet {
	return &Bullet{
		Rect: Rect{
			X: x - config.BulletWidth/2,
			Y: y,
			W: config.BulletWidth,
			H: config.BulletHeight,
		},
		VelocityY: config.BulletSpeed,
	}
}

func (b *Bullet) Update() {
	b.Y += b.VelocityY * config.TimeStep
}

// OffScreen истинно, когда снаряд целиком ушел за верхний край.
func (b *Bullet) OffScreen() bool {
	return b.Bottom() < 0
}
