// internal/entity/world.go
package entity

import (
	"go-alien-shooter/internal/component"
	"go-alien-shooter/internal/config"
)

// World владеет всем изменяемым состоянием партии: кораблем, снарядами,
// строем пришельцев и счетчиками. Сущности друг на друга не ссылаются.
type World struct {
	Player    *component.Player
	Bullets   []*component.Bullet
	Aliens    []*component.Alien // Арена: порядок строк и столбцов не меняется
	Formation component.Formation
	Session   component.Session
}

// NewWorld создает мир в начальном состоянии без пришельцев.
// Волну строит WaveSystem.
func NewWorld() *World {
	w := &World{}
	w.Reset()
	return w
}

// Reset возвращает все счетчики и корабль к стартовым значениям.
func (w *World) Reset() {
	w.Player = component.NewPlayer()
	w.Bullets = nil
	w.Aliens = nil
	w.Formation = component.Formation{
		Direction: 1,
		Speed:     config.FormationSpeed,
	}
	w.Session = component.Session{
		Score: 0,
		Lives: config.StartLives,
		Level: config.StartLevel,
		Phase: component.Playing,
	}
}

func (w *World) IsGameOver() bool {
	return w.Session.Phase == component.GameOver
}

// AddBullet добавляет снаряд в конец списка.
func (w *World) AddBullet(b *component.Bullet) {
	w.Bullets = append(w.Bullets, b)
}

// RemoveBullet удаляет снаряд. Повторное удаление молча игнорируется.
func (w *World) RemoveBullet(b *component.Bullet) bool {
	for i, existing := range w.Bullets {
		if existing == b {
			w.Bullets = append(w.Bullets[:i], w.Bullets[i+1:]...)
			return true
		}
	}
	return false
}

// AliveAliens возвращает живых пришельцев в порядке арены.
func (w *World) AliveAliens() []*component.Alien {
	alive := make([]*component.Alien, 0, len(w.Aliens))
	for _, a := range w.Aliens {
		if a.Alive {
			alive = append(alive, a)
		}
	}
	return alive
}

// WaveCleared истинно, когда все пришельцы текущей волны мертвы.
// Пустая арена тоже считается зачищенной.
func (w *World) WaveCleared() bool {
	for _, a := range w.Aliens {
		if a.Alive {
			return false
		}
	}
	return true
}

// AddScore начисляет очки. Отрицательные значения игнорируются.
func (w *World) AddScore(points int) {
	if points > 0 {
		w.Session.Score += points
	}
}

// LoseLife отнимает одну жизнь и переводит игру в GameOver, если жизней не осталось.
// Возвращает true, если партия закончилась.
func (w *World) LoseLife() bool {
	w.Session.Lives--
	if w.Session.Lives <= 0 {
		w.Session.Phase = component.GameOver
		return true
	}
	return false
}

// EndGame обнуляет жизни и завершает партию.
func (w *World) EndGame() {
	w.Session.Lives = 0
	w.Session.Phase = component.GameOver
}

// GrantLife добавляет бонусную жизнь, если не достигнут максимум.
func (w *World) GrantLife() bool {
	if w.Session.Lives < config.MaxLives {
		w.Session.Lives++
		return true
	}
	return false
}
