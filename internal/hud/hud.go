// Package hud раскладывает текст интерфейса по экрану.
// Сам ничего не рисует: ui и альтернативные фронтенды выводят готовые строки.
package hud

import (
	"fmt"

	"go-alien-shooter/internal/component"
	"go-alien-shooter/internal/config"
)

// Anchor точка привязки строки
type Anchor int

const (
	TopLeft Anchor = iota
	Center
)

// Size логический размер шрифта
type Size int

const (
	Small  Size = iota // Подсказка рестарта
	Normal             // Счет, жизни, уровень
	Large              // Итоговый счет
	Title              // GAME OVER
)

// Points возвращает кегль для размера.
func (s Size) Points() float64 {
	switch s {
	case Small:
		return config.PromptFontSize
	case Large:
		return config.ScoreFontSize
	case Title:
		return config.TitleFontSize
	}
	return config.HUDFontSize
}

// Line одна строка интерфейса
type Line struct {
	Text   string
	X, Y   int
	Anchor Anchor
	Size   Size
}

// Lines строит строки HUD для текущей сессии: счет слева сверху,
// жизни справа сверху, уровень по центру, и экран GameOver поверх.
func Lines(s component.Session) []Line {
	lines := []Line{
		{Text: fmt.Sprintf("Score: %d", s.Score), X: config.HUDMargin, Y: config.HUDMargin, Anchor: TopLeft, Size: Normal},
		{Text: fmt.Sprintf("Lives: %d", s.Lives), X: config.ScreenWidth - config.LivesOffsetX, Y: config.HUDMargin, Anchor: TopLeft, Size: Normal},
		{Text: fmt.Sprintf("Level: %d", s.Level), X: config.ScreenWidth / 2, Y: config.HUDMargin, Anchor: Center, Size: Normal},
	}
	if s.Phase == component.GameOver {
		lines = append(lines, GameOverLines(s.Score)...)
	}
	return lines
}

// GameOverLines надписи экрана окончания игры.
func GameOverLines(score int) []Line {
	cx, cy := config.ScreenWidth/2, config.ScreenHeight/2
	return []Line{
		{Text: "GAME OVER", X: cx, Y: cy - 40, Anchor: Center, Size: Title},
		{Text: fmt.Sprintf("Final Score: %d", score), X: cx, Y: cy + 20, Anchor: Center, Size: Large},
		{Text: "Press R to restart or close window to quit", X: cx, Y: cy + 60, Anchor: Center, Size: Small},
	}
}
