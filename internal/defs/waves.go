package defs

// FormationLayout describes the alien grid of one wave.
type FormationLayout struct {
	Rows   int     // Number of alien rows
	Cols   int     // Number of aliens per row
	XGap   float64 // Horizontal distance between column origins
	YGap   float64 // Vertical distance between row origins
	StartY float64 // Top edge of the first row
}

// DefaultFormation is the layout every wave uses.
var DefaultFormation = FormationLayout{
	Rows:   4,
	Cols:   8,
	XGap:   70,
	YGap:   50,
	StartY: 60,
}

// Size returns the number of aliens the layout produces.
func (l FormationLayout) Size() int {
	if l.Rows <= 0 || l.Cols <= 0 {
		return 0
	}
	return l.Rows * l.Cols
}

// StartX returns the left edge of the first column for a grid centered on
// a screen of the given width.
func (l FormationLayout) StartX(screenWidth, alienWidth int) float64 {
	cols := l.Cols
	if cols < 1 {
		cols = 1
	}
	totalWidth := int(float64(cols-1) * l.XGap)
	return float64((screenWidth-totalWidth)/2 - alienWidth/2)
}
