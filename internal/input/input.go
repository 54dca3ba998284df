// Package input описывает состояние клавиатуры за один тик,
// независимо от того, какой бэкенд его прочитал.
package input

// Snapshot нажатые клавиши на текущем тике
type Snapshot struct {
	Left    bool
	Right   bool
	Fire    bool
	Restart bool // Учитывается только в GameOver
	Pause   bool // Нажатие, а не удержание
}

// Direction сводит Left/Right к -1, 0 или +1.
func (s Snapshot) Direction() int {
	dir := 0
	if s.Left {
		dir--
	}
	if s.Right {
		dir++
	}
	return dir
}
