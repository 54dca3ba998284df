// internal/ui/lives_indicator.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	LivesPipRadius  = 4.0
	LivesPipSpacing = 4.0
)

// LivesIndicator рисует запас жизней рядом кружков под надписью "Lives".
type LivesIndicator struct {
	X, Y   float32
	Filled color.Color
	Empty  color.Color
}

// NewLivesIndicator создает индикатор с левым верхним углом в (x, y).
func NewLivesIndicator(x, y float32, filled color.Color) *LivesIndicator {
	return &LivesIndicator{
		X:      x,
		Y:      y,
		Filled: filled,
		Empty:  color.RGBA{40, 40, 60, 255},
	}
}

// Draw рисует maxLives кружков, из них lives закрашены.
func (i *LivesIndicator) Draw(screen *ebiten.Image, lives, maxLives int) {
	for j := 0; j < maxLives; j++ {
		x := i.X + float32(j)*(LivesPipRadius*2+LivesPipSpacing) + LivesPipRadius
		y := i.Y + LivesPipRadius

		clr := i.Empty
		if j < lives {
			clr = i.Filled
		}
		vector.DrawFilledCircle(screen, x, y, LivesPipRadius, clr, true)
		// Белая обводка
		vector.StrokeCircle(screen, x, y, LivesPipRadius, 1, color.White, true)
	}
}
