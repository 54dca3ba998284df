package component

import "go-alien-shooter/internal/config"

// Alien представляет одного пришельца из строя.
// Row и Col задаются при создании волны и больше не меняются.
type Alien struct {
	Rect
	Row   int
	Col   int
	Alive bool
}

func NewAlien(x, y float64, row, col int) *Alien {
	return &Alien{
		Rect:  Rect{X: x, Y: y, W: config.AlienWidth, H: config.AlienHeight},
		Row:   row,
		Col:   col,
		Alive: true,
	}
}

// Formation общее движение строя пришельцев.
type Formation struct {
	Direction  int     // -1 влево, +1 вправо
	Speed      float64 // Единиц за тик по горизонтали
	Generation int     // Номер построенной волны
}
