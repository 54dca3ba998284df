// cmd/game/main.go
package main

import (
	"log"
	"time"

	"go-alien-shooter/internal/app"
	"go-alien-shooter/internal/audio"
	"go-alien-shooter/internal/config"
	"go-alien-shooter/internal/state"
	"go-alien-shooter/internal/ui"
	"go-alien-shooter/internal/utils"
	"go-alien-shooter/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	ebaudio "github.com/hajimehoshi/ebiten/v2/audio"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	game := app.NewGame()

	// Звук необязателен: без аудиоустройства играем молча
	effects, err := audio.NewEffects(ebaudio.NewContext(config.SampleRate))
	if err != nil {
		log.Printf("sound disabled: %v", err)
	} else {
		effects.Subscribe(game.EventDispatcher)
	}

	fonts, err := render.NewFontCache()
	if err != nil {
		log.Fatal(err)
	}
	hud, err := ui.NewHUD(fonts, config.TextLightColor)
	if err != nil {
		log.Fatal(err)
	}

	stars := render.NewStarfield(utils.NewPRNGService(config.StarSeed), config.StarCount, config.ScreenWidth, config.ScreenHeight)
	renderer := render.NewSceneRenderer(render.SceneColors{
		Background: config.BackgroundColor,
		Player:     config.PlayerColor,
		Bullet:     config.BulletColor,
		Alien:      config.AlienColor,
		AlienEye:   config.AlienEyeColor,
		Star:       config.StarColor,
	}, stars, config.ScreenWidth, config.ScreenHeight)

	sm := state.NewStateMachine() // Создаём машину состояний
	sm.SetState(state.NewPlayState(sm, game, renderer, hud))
	a := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Alien Shooter")
	ebiten.SetTPS(config.TicksPerSecond)
	if err := ebiten.RunGame(a); err != nil {
		log.Fatal(err)
	}
}
