package component

// Phase фаза игровой сессии
type Phase int

const (
	Playing Phase = iota
	GameOver
)

func (p Phase) String() string {
	switch p {
	case Playing:
		return "Playing"
	case GameOver:
		return "GameOver"
	}
	return "Unknown"
}

// Session счетчики текущей партии
type Session struct {
	Score int
	Lives int
	Level int
	Phase Phase
}
