// internal/system/collision.go
package system

import (
	"sort"

	"go-alien-shooter/internal/component"
	"go-alien-shooter/internal/config"
	"go-alien-shooter/internal/entity"
	"go-alien-shooter/internal/event"

	"github.com/solarlune/resolv"
)

// Теги для фильтрации фигур в пространстве resolv
var (
	tagAlien  = resolv.NewTag("alien")
	tagBullet = resolv.NewTag("bullet")
)

// spacePadding сдвигает все фигуры внутрь пространства: снаряды у верхнего
// края имеют отрицательный y.
const spacePadding = config.CollisionCellSize

// CollisionSystem разрешает попадания снарядов в пришельцев и
// столкновения пришельцев с кораблем.
type CollisionSystem struct {
	world           *entity.World
	eventDispatcher *event.Dispatcher
	space           *resolv.Space
	owners          map[resolv.IShape]int // Фигура -> индекс в арене
}

func NewCollisionSystem(world *entity.World, eventDispatcher *event.Dispatcher) *CollisionSystem {
	return &CollisionSystem{
		world:           world,
		eventDispatcher: eventDispatcher,
		space: resolv.NewSpace(
			config.ScreenWidth+2*spacePadding,
			config.ScreenHeight+2*spacePadding,
			config.CollisionCellSize,
			config.CollisionCellSize,
		),
		owners: make(map[resolv.IShape]int),
	}
}

// syncAliens пересобирает фигуры живых пришельцев по их текущим позициям.
func (s *CollisionSystem) syncAliens() {
	for shape := range s.owners {
		s.space.Remove(shape)
	}
	clear(s.owners)
	for i, a := range s.world.Aliens {
		if !a.Alive {
			continue
		}
		sh := newShape(a.Rect, tagAlien)
		s.space.Add(sh)
		s.owners[sh] = i
	}
}

func newShape(r component.Rect, tag resolv.Tags) resolv.IShape {
	sh := resolv.NewRectangleFromTopLeft(r.X+spacePadding, r.Y+spacePadding, r.W, r.H)
	sh.Tags().Set(tag)
	return sh
}

// candidates собирает индексы пришельцев из ячеек сетки вокруг снаряда,
// по возрастанию. Точную проверку делает Rect.Overlaps.
func (s *CollisionSystem) candidates(b *component.Bullet) []int {
	query := newShape(b.Rect, tagBullet)
	s.space.Add(query)
	defer s.space.Remove(query)

	var found []int
	query.SelectTouchingCells(1).FilterShapes().ByTags(tagAlien).ForEach(func(sh resolv.IShape) bool {
		if i, ok := s.owners[sh]; ok {
			found = append(found, i)
		}
		return true
	})
	sort.Ints(found)
	return found
}

// ResolveBulletHits проверяет каждый снаряд против живых пришельцев.
// Снаряд уничтожает не более одного пришельца: первого в порядке арены
// (по строкам, затем по столбцам). Возвращает количество сбитых.
func (s *CollisionSystem) ResolveBulletHits() int {
	if len(s.world.Bullets) == 0 {
		return 0
	}
	s.syncAliens()

	hits := 0
	bullets := append([]*component.Bullet(nil), s.world.Bullets...)
	for _, b := range bullets {
		for _, i := range s.candidates(b) {
			a := s.world.Aliens[i]
			if !a.Alive || !a.Overlaps(b.Rect) {
				continue
			}
			a.Alive = false
			s.world.RemoveBullet(b)
			s.world.AddScore(config.ScorePerAlien)
			hits++
			s.eventDispatcher.Dispatch(event.Event{
				Type: event.AlienDestroyed,
				Data: event.AlienDestroyedData{Row: a.Row, Col: a.Col, Score: s.world.Session.Score},
			})
			break
		}
	}
	return hits
}

// ResolvePlayerHits проверяет живых пришельцев против корабля.
// Каждое столкновение убивает пришельца и стоит одной жизни.
// Возвращает true, если партия закончилась.
func (s *CollisionSystem) ResolvePlayerHits() bool {
	player := s.world.Player
	for _, a := range s.world.Aliens {
		if !a.Alive || !a.Overlaps(player.Rect) {
			continue
		}
		a.Alive = false
		s.eventDispatcher.Dispatch(event.Event{Type: event.PlayerHit, Data: s.world.Session.Lives - 1})
		if s.world.LoseLife() {
			return true
		}
	}
	return false
}
