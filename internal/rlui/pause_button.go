// Package rlui виджеты для raylib-фронтенда.
package rlui

import (
	"image/color"
	"math"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// PauseButton круглая кнопка паузы/продолжения
type PauseButton struct {
	X, Y          float32
	Size          float32
	LastClickTime time.Time
	IsPaused      bool
	PauseColor    color.RGBA
	PlayColor     color.RGBA
}

func NewPauseButton(x, y, size float32, pauseColor, playColor color.RGBA) *PauseButton {
	return &PauseButton{
		X:          x,
		Y:          y,
		Size:       size,
		PauseColor: pauseColor,
		PlayColor:  playColor,
	}
}

func (b *PauseButton) Draw() {
	// Короткий "отскок" после нажатия
	elapsed := time.Since(b.LastClickTime).Seconds()
	scale := 1.0 + 0.3*math.Exp(-elapsed*8)
	size := b.Size * float32(scale)

	if b.IsPaused {
		// Треугольник (play)
		p1 := rl.NewVector2(b.X-size, b.Y-size*1.2)
		p2 := rl.NewVector2(b.X-size, b.Y+size*1.2)
		p3 := rl.NewVector2(b.X+size, b.Y)
		rl.DrawTriangle(p1, p2, p3, ToColor(b.PlayColor))
		return
	}

	// Две полоски (pause)
	clr := ToColor(b.PauseColor)
	width := size * 0.6
	height := size * 2.0
	spacing := size * 0.4
	rl.DrawRectangleV(rl.NewVector2(b.X-width-spacing/2, b.Y-height/2), rl.NewVector2(width, height), clr)
	rl.DrawRectangleV(rl.NewVector2(b.X+spacing/2, b.Y-height/2), rl.NewVector2(width, height), clr)
}

// IsClicked сообщает, нажата ли кнопка мышью на этом кадре.
func (b *PauseButton) IsClicked() bool {
	return rl.IsMouseButtonPressed(rl.MouseLeftButton) &&
		rl.CheckCollisionPointCircle(rl.GetMousePosition(), rl.NewVector2(b.X, b.Y), b.Size*1.5)
}

func (b *PauseButton) Toggle() {
	b.IsPaused = !b.IsPaused
	b.LastClickTime = time.Now()
}

// ToColor переводит цвет палитры в цвет raylib
func ToColor(c color.RGBA) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}
