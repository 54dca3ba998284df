// component/movement.go
package component

// Rect прямоугольник в экранных координатах (левый верхний угол + размеры).
type Rect struct {
	X, Y float64
	W, H float64
}

func (r Rect) Left() float64    { return r.X }
func (r Rect) Right() float64   { return r.X + r.W }
func (r Rect) Top() float64     { return r.Y }
func (r Rect) Bottom() float64  { return r.Y + r.H }
func (r Rect) CenterX() float64 { return r.X + r.W/2 }

// Overlaps проверяет пересечение двух прямоугольников.
// Касание краями пересечением не считается.
func (r Rect) Overlaps(o Rect) bool {
	return r.Left() < o.Right() && o.Left() < r.Right() &&
		r.Top() < o.Bottom() && o.Top() < r.Bottom()
}

// Translate сдвигает прямоугольник на (dx, dy).
func (r *Rect) Translate(dx, dy float64) {
	r.X += dx
	r.Y += dy
}
