// internal/app/game.go
package app

import (
	"go-alien-shooter/internal/component"
	"go-alien-shooter/internal/defs"
	"go-alien-shooter/internal/entity"
	"go-alien-shooter/internal/event"
	"go-alien-shooter/internal/input"
	"go-alien-shooter/internal/system"
)

// Game holds the simulation: the world, its systems and the event dispatcher.
// It knows nothing about windows or drawing, frontends feed it one input
// snapshot per tick.
type Game struct {
	World            *entity.World
	PlayerSystem     *system.PlayerSystem
	ProjectileSystem *system.ProjectileSystem
	FormationSystem  *system.FormationSystem
	CollisionSystem  *system.CollisionSystem
	WaveSystem       *system.WaveSystem
	StateSystem      *system.StateSystem
	EventDispatcher  *event.Dispatcher

	tick uint64
}

// NewGame initializes a new game with the default alien layout.
func NewGame() *Game {
	return NewGameWithLayout(defs.DefaultFormation)
}

// NewGameWithLayout initializes a new game whose waves use the given layout.
func NewGameWithLayout(layout defs.FormationLayout) *Game {
	world := entity.NewWorld()
	eventDispatcher := event.NewDispatcher()
	g := &Game{
		World:            world,
		PlayerSystem:     system.NewPlayerSystem(world, eventDispatcher),
		ProjectileSystem: system.NewProjectileSystem(world),
		FormationSystem:  system.NewFormationSystem(world, eventDispatcher),
		CollisionSystem:  system.NewCollisionSystem(world, eventDispatcher),
		WaveSystem:       system.NewWaveSystem(world, eventDispatcher, layout),
		EventDispatcher:  eventDispatcher,
	}
	g.StateSystem = system.NewStateSystem(world, g, eventDispatcher)

	listener := &GameEventListener{game: g}
	eventDispatcher.SubscribeAll(listener, event.WaveCleared, event.FormationLanded, event.GameOver, event.GameRestarted)

	g.StartWave()
	return g
}

// StartWave builds a fresh alien wave. Implements interfaces.GameContext.
func (g *Game) StartWave() {
	g.WaveSystem.StartWave()
}

// Update advances the simulation by one tick.
func (g *Game) Update(in input.Snapshot) {
	g.tick++

	if g.World.IsGameOver() {
		if in.Restart {
			g.Restart()
		}
		return
	}

	g.PlayerSystem.HandleInput(in)
	g.PlayerSystem.Update()
	g.ProjectileSystem.Update()

	g.FormationSystem.Update()
	if g.StateSystem.Sync() {
		return
	}

	g.CollisionSystem.ResolveBulletHits()
	g.CollisionSystem.ResolvePlayerHits()
	if g.StateSystem.Sync() {
		return
	}

	g.WaveSystem.Update()
	g.StateSystem.Update()
}

// Restart resets every piece of session state and builds the first wave.
func (g *Game) Restart() {
	g.StateSystem.Restart()
}

func (g *Game) Phase() component.Phase {
	return g.StateSystem.Current()
}

func (g *Game) IsGameOver() bool {
	return g.World.IsGameOver()
}

// Tick returns the number of ticks processed since the game was created.
func (g *Game) Tick() uint64 {
	return g.tick
}
