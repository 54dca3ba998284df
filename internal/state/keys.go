package state

import (
	"go-alien-shooter/internal/input"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// readInput снимает состояние клавиатуры на текущем тике.
func readInput() input.Snapshot {
	return input.Snapshot{
		Left:    ebiten.IsKeyPressed(ebiten.KeyLeft) || ebiten.IsKeyPressed(ebiten.KeyA),
		Right:   ebiten.IsKeyPressed(ebiten.KeyRight) || ebiten.IsKeyPressed(ebiten.KeyD),
		Fire:    ebiten.IsKeyPressed(ebiten.KeySpace),
		Restart: inpututil.IsKeyJustPressed(ebiten.KeyR),
		Pause:   pausePressed(),
	}
}

func pausePressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape)
}
