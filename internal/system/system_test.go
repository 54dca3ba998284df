package system

import (
	"testing"

	"go-alien-shooter/internal/component"
	"go-alien-shooter/internal/config"
	"go-alien-shooter/internal/defs"
	"go-alien-shooter/internal/entity"
	"go-alien-shooter/internal/event"
	"go-alien-shooter/internal/input"
)

// counter считает события по типам
type counter map[event.EventType]int

func (c counter) OnEvent(e event.Event) { c[e.Type]++ }

func newTestWorld() (*entity.World, *event.Dispatcher, counter) {
	d := event.NewDispatcher()
	c := counter{}
	d.SubscribeAll(c,
		event.BulletFired, event.AlienDestroyed, event.PlayerHit,
		event.FormationLanded, event.WaveCleared, event.GameOver, event.GameRestarted)
	return entity.NewWorld(), d, c
}

func TestFireSpawnsCenteredBulletAndArmsCooldown(t *testing.T) {
	w, d, c := newTestWorld()
	s := NewPlayerSystem(w, d)

	if !s.Fire() {
		t.Fatal("Expected first shot to fire")
	}
	if len(w.Bullets) != 1 {
		t.Fatalf("Expected 1 bullet, got %d", len(w.Bullets))
	}
	b := w.Bullets[0]
	if b.CenterX() != w.Player.CenterX() {
		t.Errorf("Expected bullet centered at %v, got %v", w.Player.CenterX(), b.CenterX())
	}
	if b.Y != w.Player.Top()-config.MuzzleOffset {
		t.Errorf("Expected bullet top at %v, got %v", w.Player.Top()-config.MuzzleOffset, b.Y)
	}
	if w.Player.Cooldown != config.ShootCooldown {
		t.Errorf("Expected cooldown %d, got %d", config.ShootCooldown, w.Player.Cooldown)
	}

	s.Update()
	if s.Fire() {
		t.Error("Expected shot during cooldown to be ignored")
	}
	if len(w.Bullets) != 1 {
		t.Errorf("Expected still 1 bullet, got %d", len(w.Bullets))
	}
	if c[event.BulletFired] != 1 {
		t.Errorf("Expected 1 BulletFired event, got %d", c[event.BulletFired])
	}
}

func TestFireAgainAfterCooldown(t *testing.T) {
	w, d, _ := newTestWorld()
	s := NewPlayerSystem(w, d)
	s.Fire()
	for i := 0; i < config.ShootCooldown; i++ {
		s.Update()
	}
	if !s.Fire() {
		t.Fatal("Expected weapon ready after cooldown ticks")
	}
	if len(w.Bullets) != 2 {
		t.Errorf("Expected 2 bullets, got %d", len(w.Bullets))
	}
}

func TestHandleInputMovesPlayer(t *testing.T) {
	w, d, _ := newTestWorld()
	s := NewPlayerSystem(w, d)
	start := w.Player.X
	s.HandleInput(input.Snapshot{Left: true})
	if w.Player.X != start-config.PlayerSpeed {
		t.Errorf("Expected x=%v, got %v", start-config.PlayerSpeed, w.Player.X)
	}
	s.HandleInput(input.Snapshot{Right: true, Fire: true})
	if w.Player.X != start || len(w.Bullets) != 1 {
		t.Errorf("Expected x=%v with 1 bullet, got x=%v and %d bullets", start, w.Player.X, len(w.Bullets))
	}
}

func TestProjectilePrunesOffscreenBullets(t *testing.T) {
	w, _, _ := newTestWorld()
	gone := component.NewBullet(100, -5)
	stays := component.NewBullet(200, 300)
	w.AddBullet(gone)
	w.AddBullet(stays)

	removed := NewProjectileSystem(w).Update()

	if removed != 1 {
		t.Errorf("Expected 1 removed bullet, got %d", removed)
	}
	if len(w.Bullets) != 1 || w.Bullets[0] != stays {
		t.Fatalf("Expected only the on-screen bullet to remain, got %d", len(w.Bullets))
	}
	if stays.Y != 300+config.BulletSpeed {
		t.Errorf("Expected bullet at y=%v, got %v", 300+config.BulletSpeed, stays.Y)
	}
}

func TestCreateAliensRowMajor(t *testing.T) {
	aliens := CreateAliens(defs.DefaultFormation)
	if len(aliens) != 32 {
		t.Fatalf("Expected 32 aliens, got %d", len(aliens))
	}
	first, last := aliens[0], aliens[len(aliens)-1]
	if first.X != 133 || first.Y != 60 || first.Row != 0 || first.Col != 0 {
		t.Errorf("Unexpected first alien %+v", *first)
	}
	if last.X != 133+7*70 || last.Y != 60+3*50 || last.Row != 3 || last.Col != 7 {
		t.Errorf("Unexpected last alien %+v", *last)
	}
	for i, a := range aliens {
		if !a.Alive {
			t.Errorf("Alien %d should start alive", i)
		}
		if a.Row*8+a.Col != i {
			t.Errorf("Alien %d has slot (%d,%d), expected row-major order", i, a.Row, a.Col)
		}
	}
}

func TestFormationMovesSideways(t *testing.T) {
	w, d, _ := newTestWorld()
	w.Aliens = []*component.Alien{
		component.NewAlien(100, 60, 0, 0),
		component.NewAlien(200, 60, 0, 1),
	}
	w.Aliens[1].Alive = false

	if NewFormationSystem(w, d).Update() {
		t.Fatal("Formation should not land")
	}
	if w.Aliens[0].X != 101 {
		t.Errorf("Expected alive alien at x=101, got %v", w.Aliens[0].X)
	}
	if w.Aliens[1].X != 200 {
		t.Errorf("Dead alien must not move, got x=%v", w.Aliens[1].X)
	}
}

func TestFormationReversesAndDropsAtEdge(t *testing.T) {
	tests := []struct {
		name      string
		x         float64
		direction int
	}{
		{"right edge", config.ScreenWidth - config.FormationEdgeMargin - config.AlienWidth - 1, 1},
		{"left edge", config.FormationEdgeMargin + 1, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, d, _ := newTestWorld()
			w.Formation.Direction = tt.direction
			w.Aliens = []*component.Alien{component.NewAlien(tt.x, 60, 0, 0)}

			NewFormationSystem(w, d).Update()

			a := w.Aliens[0]
			if w.Formation.Direction != -tt.direction {
				t.Errorf("Expected direction %d, got %d", -tt.direction, w.Formation.Direction)
			}
			if a.X != tt.x || a.Y != 60+config.FormationDrop {
				t.Errorf("Expected alien at (%v, %v), got (%v, %v)", tt.x, 60+config.FormationDrop, a.X, a.Y)
			}
		})
	}
}

func TestFormationLandingEndsGameInstantly(t *testing.T) {
	w, d, c := newTestWorld()
	x := float64(config.ScreenWidth - config.FormationEdgeMargin - config.AlienWidth)
	w.Aliens = []*component.Alien{component.NewAlien(x, w.Player.Top()-config.AlienHeight-10, 0, 0)}

	if !NewFormationSystem(w, d).Update() {
		t.Fatal("Expected formation to land")
	}
	if w.Session.Lives != 0 || !w.IsGameOver() {
		t.Errorf("Expected all lives lost at once, got %d lives in %v", w.Session.Lives, w.Session.Phase)
	}
	if c[event.FormationLanded] != 1 {
		t.Errorf("Expected FormationLanded event, got %d", c[event.FormationLanded])
	}
}

func TestFormationWithoutAliensIsNoop(t *testing.T) {
	w, d, _ := newTestWorld()
	s := NewFormationSystem(w, d)
	if _, _, ok := s.Bounds(); ok {
		t.Error("Expected no bounds for an empty formation")
	}
	if s.Update() {
		t.Error("Empty formation cannot land")
	}
}

func TestBulletDestroysOneAlien(t *testing.T) {
	w, d, c := newTestWorld()
	w.Aliens = []*component.Alien{component.NewAlien(300, 200, 0, 0)}
	b := component.NewBullet(320, 205)
	w.AddBullet(b)

	hits := NewCollisionSystem(w, d).ResolveBulletHits()

	if hits != 1 {
		t.Fatalf("Expected 1 hit, got %d", hits)
	}
	if w.Aliens[0].Alive {
		t.Error("Expected alien to be dead")
	}
	if len(w.Bullets) != 0 {
		t.Errorf("Expected bullet removed, got %d", len(w.Bullets))
	}
	if w.Session.Score != config.ScorePerAlien {
		t.Errorf("Expected score %d, got %d", config.ScorePerAlien, w.Session.Score)
	}
	if c[event.AlienDestroyed] != 1 {
		t.Errorf("Expected 1 AlienDestroyed event, got %d", c[event.AlienDestroyed])
	}
}

func TestBulletHitsFirstAlienInRowMajorOrder(t *testing.T) {
	w, d, _ := newTestWorld()
	// Две клетки, наложенные друг на друга: побеждает меньший индекс арены
	w.Aliens = []*component.Alien{
		component.NewAlien(300, 200, 0, 0),
		component.NewAlien(305, 205, 0, 1),
	}
	w.AddBullet(component.NewBullet(320, 210))
	s := NewCollisionSystem(w, d)

	s.ResolveBulletHits()
	if w.Aliens[0].Alive || !w.Aliens[1].Alive {
		t.Fatalf("Expected only alien (0,0) destroyed, got alive=%v,%v", w.Aliens[0].Alive, w.Aliens[1].Alive)
	}

	w.AddBullet(component.NewBullet(320, 210))
	s.ResolveBulletHits()
	if w.Aliens[1].Alive {
		t.Error("Expected the second bullet to destroy alien (0,1)")
	}
	if w.Session.Score != 2*config.ScorePerAlien {
		t.Errorf("Expected score %d, got %d", 2*config.ScorePerAlien, w.Session.Score)
	}
}

func TestBulletInsideAlienCounts(t *testing.T) {
	tests := []struct {
		name string
		x, y float64
	}{
		{"center", 322, 208},
		{"near left edge", 304, 202},
		{"near right edge", 340, 210},
		{"straddles bottom edge", 320, 222},
		{"straddles top edge", 320, 192},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, d, _ := newTestWorld()
			w.Aliens = []*component.Alien{component.NewAlien(300, 200, 0, 0)}
			b := component.NewBullet(tt.x, tt.y)
			w.AddBullet(b)
			if !b.Overlaps(w.Aliens[0].Rect) {
				t.Fatalf("Bad fixture: bullet %+v does not overlap alien", b.Rect)
			}

			if hits := NewCollisionSystem(w, d).ResolveBulletHits(); hits != 1 {
				t.Errorf("Expected 1 hit, got %d", hits)
			}
			if w.Aliens[0].Alive {
				t.Error("Expected alien to be dead")
			}
		})
	}
}

func TestBulletInsideFirstAlienBeatsStraddledSecond(t *testing.T) {
	w, d, _ := newTestWorld()
	// Снаряд целиком внутри (0,0) и задевает верх (1,0)
	w.Aliens = []*component.Alien{
		component.NewAlien(300, 200, 0, 0),
		component.NewAlien(300, 225, 1, 0),
	}
	w.AddBullet(component.NewBullet(322, 214))

	if hits := NewCollisionSystem(w, d).ResolveBulletHits(); hits != 1 {
		t.Fatalf("Expected 1 hit, got %d", hits)
	}
	if w.Aliens[0].Alive || !w.Aliens[1].Alive {
		t.Errorf("Expected only alien (0,0) destroyed, got alive=%v,%v", w.Aliens[0].Alive, w.Aliens[1].Alive)
	}
}

func TestBulletIgnoresDeadAliens(t *testing.T) {
	w, d, _ := newTestWorld()
	w.Aliens = []*component.Alien{component.NewAlien(300, 200, 0, 0)}
	w.Aliens[0].Alive = false
	w.AddBullet(component.NewBullet(320, 205))

	if hits := NewCollisionSystem(w, d).ResolveBulletHits(); hits != 0 {
		t.Errorf("Expected no hits, got %d", hits)
	}
	if len(w.Bullets) != 1 {
		t.Errorf("Expected bullet to keep flying, got %d bullets", len(w.Bullets))
	}
}

func TestBulletMissesDistantAlien(t *testing.T) {
	w, d, _ := newTestWorld()
	w.Aliens = []*component.Alien{component.NewAlien(100, 100, 0, 0)}
	w.AddBullet(component.NewBullet(600, 400))

	if hits := NewCollisionSystem(w, d).ResolveBulletHits(); hits != 0 {
		t.Errorf("Expected no hits, got %d", hits)
	}
	if !w.Aliens[0].Alive || w.Session.Score != 0 {
		t.Error("Expected untouched alien and score")
	}
}

func TestAlienHittingPlayerCostsOneLife(t *testing.T) {
	w, d, c := newTestWorld()
	p := w.Player
	w.Aliens = []*component.Alien{
		component.NewAlien(p.X, p.Y-10, 3, 0),
		component.NewAlien(100, 100, 0, 0),
	}

	if NewCollisionSystem(w, d).ResolvePlayerHits() {
		t.Fatal("Game should not end with lives left")
	}
	if w.Aliens[0].Alive || !w.Aliens[1].Alive {
		t.Error("Expected only the colliding alien to die")
	}
	if w.Session.Lives != config.StartLives-1 {
		t.Errorf("Expected %d lives, got %d", config.StartLives-1, w.Session.Lives)
	}
	if c[event.PlayerHit] != 1 {
		t.Errorf("Expected 1 PlayerHit event, got %d", c[event.PlayerHit])
	}
}

func TestAlienHittingPlayerOnLastLifeEndsGame(t *testing.T) {
	w, d, _ := newTestWorld()
	w.Session.Lives = 1
	p := w.Player
	w.Aliens = []*component.Alien{component.NewAlien(p.X, p.Y, 3, 0)}

	if !NewCollisionSystem(w, d).ResolvePlayerHits() {
		t.Fatal("Expected game over")
	}
	if !w.IsGameOver() {
		t.Errorf("Expected GameOver phase, got %v", w.Session.Phase)
	}
}

func TestWaveClearAdvancesLevel(t *testing.T) {
	tests := []struct {
		name      string
		lives     int
		wantLives int
	}{
		{"bonus life", 3, 4},
		{"capped", config.MaxLives, config.MaxLives},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, d, c := newTestWorld()
			s := NewWaveSystem(w, d, defs.DefaultFormation)
			s.StartWave()
			w.Session.Lives = tt.lives
			for _, a := range w.Aliens {
				a.Alive = false
			}

			if !s.Update() {
				t.Fatal("Expected wave to advance")
			}
			if w.Session.Level != config.StartLevel+1 {
				t.Errorf("Expected level %d, got %d", config.StartLevel+1, w.Session.Level)
			}
			if w.Formation.Speed != config.FormationSpeed+config.FormationSpeedIncrement {
				t.Errorf("Expected speed %v, got %v", config.FormationSpeed+config.FormationSpeedIncrement, w.Formation.Speed)
			}
			if w.Session.Lives != tt.wantLives {
				t.Errorf("Expected %d lives, got %d", tt.wantLives, w.Session.Lives)
			}
			if len(w.AliveAliens()) != defs.DefaultFormation.Size() {
				t.Errorf("Expected a full new wave, got %d alive", len(w.AliveAliens()))
			}
			if w.Formation.Generation != 2 {
				t.Errorf("Expected generation 2, got %d", w.Formation.Generation)
			}
			if c[event.WaveCleared] != 1 {
				t.Errorf("Expected 1 WaveCleared event, got %d", c[event.WaveCleared])
			}
		})
	}
}

func TestWaveNotClearedWhileAliensLive(t *testing.T) {
	w, d, _ := newTestWorld()
	s := NewWaveSystem(w, d, defs.DefaultFormation)
	s.StartWave()
	w.Aliens[5].Alive = false
	if s.Update() {
		t.Error("Wave should not advance with living aliens")
	}
	if w.Session.Level != config.StartLevel {
		t.Errorf("Expected level %d, got %d", config.StartLevel, w.Session.Level)
	}
}

type waveStarter struct{ s *WaveSystem }

func (w waveStarter) StartWave() { w.s.StartWave() }

func TestStateSystemAnnouncesGameOverOnce(t *testing.T) {
	w, d, c := newTestWorld()
	ws := NewWaveSystem(w, d, defs.DefaultFormation)
	s := NewStateSystem(w, waveStarter{ws}, d)

	if s.Update() {
		t.Fatal("Fresh world is not game over")
	}
	w.Session.Lives = 0
	if !s.Update() || s.Current() != component.GameOver {
		t.Fatal("Expected end-of-frame check to end the game")
	}
	s.Sync()
	s.Update()
	if c[event.GameOver] != 1 {
		t.Errorf("Expected exactly 1 GameOver event, got %d", c[event.GameOver])
	}

	s.Restart()
	if s.Current() != component.Playing || len(w.Aliens) != defs.DefaultFormation.Size() {
		t.Errorf("Expected fresh game after restart, got %v with %d aliens", s.Current(), len(w.Aliens))
	}
	w.EndGame()
	s.Sync()
	if c[event.GameOver] != 2 || c[event.GameRestarted] != 1 {
		t.Errorf("Expected 2 GameOver and 1 GameRestarted, got %d and %d", c[event.GameOver], c[event.GameRestarted])
	}
}
