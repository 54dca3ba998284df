// internal/event/types.go
package event

const (
	BulletFired     EventType = "BulletFired"     // Игрок выстрелил
	AlienDestroyed  EventType = "AlienDestroyed"  // Пришелец сбит снарядом
	PlayerHit       EventType = "PlayerHit"       // Пришелец врезался в корабль
	FormationLanded EventType = "FormationLanded" // Строй опустился до корабля
	WaveCleared     EventType = "WaveCleared"     // Волна уничтожена, началась следующая
	GameOver        EventType = "GameOver"        // Жизни закончились
	GameRestarted   EventType = "GameRestarted"   // Новая партия
)

// AlienDestroyedData данные события AlienDestroyed
type AlienDestroyedData struct {
	Row, Col int
	Score    int
}

// WaveClearedData данные события WaveCleared
type WaveClearedData struct {
	Level int
	Speed float64
	Lives int
}
