package main

import (
	"go-alien-shooter/internal/app"
	"go-alien-shooter/internal/component"
	"go-alien-shooter/internal/config"
	"go-alien-shooter/internal/hud"
	"go-alien-shooter/internal/input"
	"go-alien-shooter/internal/rlui"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func readInput() input.Snapshot {
	return input.Snapshot{
		Left:    rl.IsKeyDown(rl.KeyLeft) || rl.IsKeyDown(rl.KeyA),
		Right:   rl.IsKeyDown(rl.KeyRight) || rl.IsKeyDown(rl.KeyD),
		Fire:    rl.IsKeyDown(rl.KeySpace),
		Restart: rl.IsKeyPressed(rl.KeyR),
		Pause:   rl.IsKeyPressed(rl.KeyP),
	}
}

func drawRect(r component.Rect, c rl.Color) {
	rl.DrawRectangle(int32(r.X), int32(r.Y), int32(r.W), int32(r.H), c)
}

func main() {
	// --- Инициализация ---
	rl.InitWindow(config.ScreenWidth, config.ScreenHeight, "Alien Shooter | raylib")
	defer rl.CloseWindow()
	rl.SetTargetFPS(config.TicksPerSecond)

	game := app.NewGame()
	pauseButton := rlui.NewPauseButton(config.ScreenWidth-30, config.ScreenHeight-30, 10, config.TextLightColor, config.PlayerColor)

	background := rlui.ToColor(config.BackgroundColor)
	playerColor := rlui.ToColor(config.PlayerColor)
	bulletColor := rlui.ToColor(config.BulletColor)
	alienColor := rlui.ToColor(config.AlienColor)
	eyeColor := rlui.ToColor(config.AlienEyeColor)
	textColor := rlui.ToColor(config.TextLightColor)
	levelIndicator := rlui.NewLevelIndicator(config.ScreenWidth/2, config.HUDMargin+config.HUDFontSize+4, config.HUDFontSize, playerColor)

	// --- Главный цикл ---
	for !rl.WindowShouldClose() {
		in := readInput()
		if (in.Pause || pauseButton.IsClicked()) && !game.IsGameOver() {
			pauseButton.Toggle()
		}
		if !pauseButton.IsPaused {
			game.Update(in)
		}

		// --- Отрисовка ---
		world := game.World
		rl.BeginDrawing()
		rl.ClearBackground(background)

		p := world.Player
		drawRect(p.Rect, playerColor)
		cx, top := float32(p.CenterX()), float32(p.Top())
		rl.DrawTriangle(
			rl.NewVector2(cx, top-12),
			rl.NewVector2(cx-12, top+4),
			rl.NewVector2(cx+12, top+4),
			playerColor,
		)
		for _, b := range world.Bullets {
			drawRect(b.Rect, bulletColor)
		}
		for _, a := range world.Aliens {
			if !a.Alive {
				continue
			}
			drawRect(a.Rect, alienColor)
			rl.DrawCircle(int32(a.X)+12, int32(a.Y)+10, 3, eyeColor)
			rl.DrawCircle(int32(a.X)+32, int32(a.Y)+10, 3, eyeColor)
		}

		rlui.DrawLines(hud.Lines(world.Session), textColor)
		levelIndicator.Draw(world.Session.Level)
		if !game.IsGameOver() {
			pauseButton.Draw()
		}
		if pauseButton.IsPaused {
			rl.DrawRectangle(0, 0, config.ScreenWidth, config.ScreenHeight, rlui.ToColor(config.PauseOverlay))
			rlui.DrawLines([]hud.Line{
				{Text: "PAUSED", X: config.ScreenWidth / 2, Y: config.ScreenHeight / 2, Anchor: hud.Center, Size: hud.Title},
			}, textColor)
		}
		rl.EndDrawing()
	}
}
