package app

import (
	"log"

	"go-alien-shooter/internal/event"
)

// GameEventListener logs the notable session transitions.
type GameEventListener struct {
	game *Game
}

func (l *GameEventListener) OnEvent(e event.Event) {
	switch e.Type {
	case event.WaveCleared:
		if data, ok := e.Data.(event.WaveClearedData); ok {
			log.Printf("Wave cleared: level %d, formation speed %.1f, lives %d", data.Level, data.Speed, data.Lives)
		}
	case event.FormationLanded:
		log.Println("Formation reached the ship")
	case event.GameOver:
		log.Printf("Game over at level %d, final score %d", l.game.World.Session.Level, l.game.World.Session.Score)
	case event.GameRestarted:
		log.Println("Game restarted")
	}
}
