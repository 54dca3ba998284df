// internal/system/projectile.go
package system

import (
	"go-alien-shooter/internal/entity"
)

// ProjectileSystem двигает снаряды и убирает улетевшие за экран
type ProjectileSystem struct {
	world *entity.World
}

func NewProjectileSystem(world *entity.World) *ProjectileSystem {
	return &ProjectileSystem{world: world}
}

// Update возвращает количество удаленных снарядов.
func (s *ProjectileSystem) Update() int {
	kept := s.world.Bullets[:0]
	removed := 0
	for _, b := range s.world.Bullets {
		b.Update()
		if b.OffScreen() {
			removed++
			continue
		}
		kept = append(kept, b)
	}
	// Хвост обнуляем, чтобы не держать ссылки на удаленные снаряды
	for i := len(kept); i < len(s.world.Bullets); i++ {
		s.world.Bullets[i] = nil
	}
	s.world.Bullets = kept
	return removed
}
