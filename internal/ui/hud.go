package ui

import (
	"image/color"

	"go-alien-shooter/internal/hud"
	"go-alien-shooter/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"
)

// HUD рисует строки интерфейса подготовленными шрифтами.
type HUD struct {
	faces map[hud.Size]font.Face
	color color.Color
}

// NewHUD заранее создает шрифты всех размеров.
func NewHUD(fonts *render.FontCache, clr color.Color) (*HUD, error) {
	h := &HUD{faces: make(map[hud.Size]font.Face), color: clr}
	for _, size := range []hud.Size{hud.Small, hud.Normal, hud.Large, hud.Title} {
		face, err := fonts.Face(size.Points())
		if err != nil {
			return nil, err
		}
		h.faces[size] = face
	}
	return h, nil
}

// Draw выводит строки с нужной привязкой.
func (h *HUD) Draw(screen *ebiten.Image, lines []hud.Line) {
	for _, l := range lines {
		face := h.faces[l.Size]
		switch l.Anchor {
		case hud.Center:
			render.DrawTextCentered(screen, l.Text, face, l.X, l.Y, h.color)
		default:
			render.DrawText(screen, l.Text, face, l.X, l.Y, h.color)
		}
	}
}
