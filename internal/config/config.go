// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth    = 800
	ScreenHeight   = 600
	TicksPerSecond = 60
	TimeStep       = 1.0 // Скорости заданы в единицах за тик
	MaxDeltaTime   = 0.06

	PlayerWidth        = 60
	PlayerHeight       = 16
	PlayerBottomOffset = 60
	PlayerSpeed        = 6.0
	ShootCooldown      = 10 // Тиков между выстрелами
	MuzzleOffset       = 10 // Снаряд появляется выше корабля на столько единиц

	BulletWidth  = 6
	BulletHeight = 12
	BulletSpeed  = -10.0

	AlienWidth  = 44
	AlienHeight = 28

	FormationSpeed          = 1.0
	FormationSpeedIncrement = 0.4
	FormationDrop           = 20
	FormationEdgeMargin     = 10
	FormationLookahead      = TicksPerSecond * 0.02 // Упреждение при проверке края

	ScorePerAlien = 10
	StartLives    = 3
	MaxLives      = 5
	StartLevel    = 1

	// Ячейка пространственной сетки для resolv
	CollisionCellSize = 32

	HUDMargin      = 10
	HUDFontSize    = 22
	LivesOffsetX   = 120
	TitleFontSize  = 64
	ScoreFontSize  = 28
	PromptFontSize = 20

	StarCount = 80
	StarSeed  = 1977

	SampleRate = 44100
)

var (
	BackgroundColor = color.RGBA{12, 12, 28, 255}
	PlayerColor     = color.RGBA{0, 200, 255, 255}
	BulletColor     = color.RGBA{255, 240, 60, 255}
	AlienColor      = color.RGBA{200, 50, 120, 255}
	AlienEyeColor   = color.RGBA{255, 255, 255, 255}
	TextLightColor  = color.RGBA{255, 255, 255, 255}
	StarColor       = color.RGBA{200, 200, 220, 255}
	PauseOverlay    = color.RGBA{0, 0, 0, 128}
)
