package render

import (
	"testing"

	"go-alien-shooter/internal/component"
	"go-alien-shooter/internal/utils"
)

func TestRoundedRectStaysInsideRectAndCutsCorners(t *testing.T) {
	rect := component.Rect{X: 100, Y: 50, W: 44, H: 28}
	vs, is := roundedRect(rect, alienRadius).AppendVerticesAndIndicesForFilling(nil, nil)
	if len(vs) == 0 || len(is) == 0 {
		t.Fatal("Expected a filled path")
	}

	const eps = 0.01
	minX, minY := vs[0].DstX, vs[0].DstY
	maxX, maxY := minX, minY
	for _, v := range vs {
		minX, minY = min(minX, v.DstX), min(minY, v.DstY)
		maxX, maxY = max(maxX, v.DstX), max(maxY, v.DstY)
		// В угол прямоугольника скругленный контур не заходит
		if (v.DstX < 100+eps || v.DstX > 144-eps) && (v.DstY < 50+eps || v.DstY > 78-eps) {
			t.Errorf("Vertex (%v, %v) sits on a sharp corner", v.DstX, v.DstY)
		}
	}
	if minX < 100-eps || minY < 50-eps || maxX > 144+eps || maxY > 78+eps {
		t.Errorf("Path bounds (%v,%v)-(%v,%v) leave the rect", minX, minY, maxX, maxY)
	}
	if maxX-minX < 44-1 || maxY-minY < 28-1 {
		t.Errorf("Path bounds (%v,%v)-(%v,%v) do not span the rect", minX, minY, maxX, maxY)
	}
}

func TestStarfieldIsReproducible(t *testing.T) {
	a := NewStarfield(utils.NewPRNGService(7), 50, 800, 600)
	b := NewStarfield(utils.NewPRNGService(7), 50, 800, 600)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("Star %d differs: %+v vs %+v", i, a[i], b[i])
		}
		if a[i].X < 0 || a[i].X >= 800 || a[i].Y < 0 || a[i].Y >= 600 {
			t.Errorf("Star %d outside the screen: %+v", i, a[i])
		}
	}
}
