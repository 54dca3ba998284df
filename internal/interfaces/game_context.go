// internal/interfaces/game_context.go
package interfaces

// GameContext то, что системам нужно от контроллера игры.
// Позволяет избежать циклических зависимостей между app и system.
type GameContext interface {
	StartWave()
}
