package rlui

import (
	"go-alien-shooter/internal/hud"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// LevelIndicator показывает номер уровня римскими цифрами под строкой HUD.
type LevelIndicator struct {
	X, Y             float32
	FontSize         float32
	Color            rl.Color
	OutlineColor     rl.Color
	OutlineThickness int32
}

func NewLevelIndicator(x, y, fontSize float32, clr rl.Color) *LevelIndicator {
	return &LevelIndicator{
		X:                x,
		Y:                y,
		FontSize:         fontSize,
		Color:            clr,
		OutlineColor:     rl.Black,
		OutlineThickness: 1,
	}
}

func (i *LevelIndicator) Draw(level int) {
	text := hud.Roman(level)
	if text == "" {
		return
	}
	font := rl.GetFontDefault()

	// Центрируем текст
	textSize := rl.MeasureTextEx(font, text, i.FontSize, 1)
	textX := i.X - textSize.X/2

	for y := -i.OutlineThickness; y <= i.OutlineThickness; y++ {
		for x := -i.OutlineThickness; x <= i.OutlineThickness; x++ {
			if x == 0 && y == 0 {
				continue
			}
			rl.DrawTextEx(font, text, rl.NewVector2(textX+float32(x), i.Y+float32(y)), i.FontSize, 1, i.OutlineColor)
		}
	}
	rl.DrawTextEx(font, text, rl.NewVector2(textX, i.Y), i.FontSize, 1, i.Color)
}

// DrawLines выводит строки HUD шрифтом raylib по умолчанию.
func DrawLines(lines []hud.Line, clr rl.Color) {
	for _, l := range lines {
		size := int32(l.Size.Points())
		x, y := int32(l.X), int32(l.Y)
		if l.Anchor == hud.Center {
			x -= rl.MeasureText(l.Text, size) / 2
			y -= size / 2
		}
		rl.DrawText(l.Text, x, y, size, clr)
	}
}
