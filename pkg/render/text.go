package render

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// DrawText draws str with its top-left corner at (x, y).
func DrawText(dst *ebiten.Image, str string, face font.Face, x, y int, clr color.Color) {
	bounds := text.BoundString(face, str)
	text.Draw(dst, str, face, x-bounds.Min.X, y-bounds.Min.Y, clr)
}

// DrawTextCentered draws str centered on (cx, cy).
func DrawTextCentered(dst *ebiten.Image, str string, face font.Face, cx, cy int, clr color.Color) {
	bounds := text.BoundString(face, str)
	x, y := CenteredOrigin(bounds, cx, cy)
	text.Draw(dst, str, face, x, y, clr)
}

// CenteredOrigin returns the dot position that centers a text with the
// given bounds (relative to the dot) on (cx, cy).
func CenteredOrigin(bounds image.Rectangle, cx, cy int) (x, y int) {
	return cx - bounds.Min.X - bounds.Dx()/2, cy - bounds.Min.Y - bounds.Dy()/2
}
